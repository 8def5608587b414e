package region

import (
	"fmt"
	"strings"
)

// PackPolicy decides where a region lands when no other live region
// shares its row.
type PackPolicy int

const (
	// PackIndent anchors the region at the captured cursor column, so it
	// follows whatever was already printed on the line.
	PackIndent PackPolicy = iota
	// PackLeftmost anchors the region at column 0 of the row.
	PackLeftmost
)

func (p PackPolicy) String() string {
	switch p {
	case PackIndent:
		return "indent"
	case PackLeftmost:
		return "leftmost"
	default:
		return fmt.Sprintf("PackPolicy(%d)", int(p))
	}
}

// ParsePackPolicy parses "indent" or "leftmost".
func ParsePackPolicy(s string) (PackPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "indent", "":
		return PackIndent, nil
	case "leftmost", "left":
		return PackLeftmost, nil
	default:
		return PackIndent, fmt.Errorf("unknown pack policy %q (expected indent or leftmost)", s)
	}
}

// MarginPolicy decides whether margins are blanked on every repaint.
type MarginPolicy int

const (
	// MarginsAlways blanks both margins on every update. Content that
	// changes width never leaves residue in the margins.
	MarginsAlways MarginPolicy = iota
	// MarginsOnClear blanks margins only on clearing updates, which avoids
	// flicker for fixed-width widgets.
	MarginsOnClear
)

func (m MarginPolicy) String() string {
	switch m {
	case MarginsAlways:
		return "always"
	case MarginsOnClear:
		return "on-clear"
	default:
		return fmt.Sprintf("MarginPolicy(%d)", int(m))
	}
}

// ParseMarginPolicy parses "always" or "on-clear".
func ParseMarginPolicy(s string) (MarginPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "always", "":
		return MarginsAlways, nil
	case "on-clear", "onclear", "clear":
		return MarginsOnClear, nil
	default:
		return MarginsAlways, fmt.Errorf("unknown margin policy %q (expected always or on-clear)", s)
	}
}
