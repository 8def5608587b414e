// Package magetasks provides the build, test and lint tasks used by the
// Magefile. Long-running steps show a termly spinner and status line while
// their output is captured, and print the output only when a step fails.
package magetasks
