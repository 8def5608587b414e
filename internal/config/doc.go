// Package config handles configuration loading and merging for termly.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--no-color, --pack, --margins, --stream, --debug-log)
//  2. Environment variables (TERMLY_NO_COLOR, NO_COLOR, TERMLY_PACK, TERMLY_MARGINS, TERMLY_STREAM, TERMLY_DEBUG)
//  3. YAML config file (.termly.yaml in local directory or ~/.config/termly/.termly.yaml)
//  4. Hardcoded defaults
//
// When a higher-priority source sets a value, it overrides any lower-priority values.
//
// # Key Configuration Options
//
//   - NoColor: Disables ANSI colors in widget text
//   - Pack: Where a region lands on a row with no other live region (indent or leftmost)
//   - Margins: When region margins are re-blanked (always or on-clear)
//   - Stream: Which stream the demo paints on (stderr or stdout)
//   - DebugLog: File that receives region diagnostics
//
// # Environment Variables
//
//   - TERMLY_NO_COLOR: Set to "true" or "1" to disable colors
//   - NO_COLOR: Any non-empty value disables colors (https://no-color.org)
//   - TERMLY_PACK, TERMLY_MARGINS, TERMLY_STREAM: Same values as the flags
//   - TERMLY_DEBUG: Path of the debug log file. Diagnostics never go to the
//     painted stream.
package config
