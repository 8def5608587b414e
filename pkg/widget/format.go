package widget

import (
	"strconv"
	"strings"
	"time"
)

// FormatDuration renders d using a custom layout:
//
//	d...     whole days
//	h, hh    hours within the day
//	m, mm    minutes within the hour
//	s, ss    seconds within the minute
//	f...f    fraction of a second, one digit per f (up to 9), truncated
//	\x       the literal character x
//
// A run of repeated letters zero-pads to the run length. '%' is ignored and
// any other character is copied as is. Negative durations format as zero.
func FormatDuration(d time.Duration, layout string) string {
	d = max(d, 0)
	var sb strings.Builder
	runes := []rune(layout)
	for i := 0; i < len(runes); {
		c := runes[i]
		switch c {
		case '\\':
			if i+1 < len(runes) {
				sb.WriteRune(runes[i+1])
			}
			i += 2
			continue
		case '%':
			i++
			continue
		case 'd', 'h', 'm', 's', 'f':
		default:
			sb.WriteRune(c)
			i++
			continue
		}

		n := 1
		for i+n < len(runes) && runes[i+n] == c {
			n++
		}
		i += n

		switch c {
		case 'd':
			pad(&sb, int64(d/(24*time.Hour)), n)
		case 'h':
			pad(&sb, int64(d/time.Hour%24), n)
		case 'm':
			pad(&sb, int64(d/time.Minute%60), n)
		case 's':
			pad(&sb, int64(d/time.Second%60), n)
		case 'f':
			n = min(n, 9)
			frac := int64(d % time.Second)
			for range 9 - n {
				frac /= 10
			}
			pad(&sb, frac, n)
		}
	}
	return sb.String()
}

func pad(sb *strings.Builder, v int64, width int) {
	s := strconv.FormatInt(v, 10)
	for range width - len(s) {
		sb.WriteByte('0')
	}
	sb.WriteString(s)
}
