package usecase

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatCurrency renders a price as "$1,234.56".
func FormatCurrency(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	dot := strings.IndexByte(s, '.')
	intPart, frac := s[:dot], s[dot:]

	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	if neg {
		return "-$" + b.String() + frac
	}
	return "$" + b.String() + frac
}

// FormatVolume renders a volume with K/M notation above a thousand/million.
func FormatVolume(v int64) string {
	switch {
	case v >= 1_000_000:
		return fmt.Sprintf("%.2fM", float64(v)/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("%.2fK", float64(v)/1_000)
	default:
		return strconv.FormatInt(v, 10)
	}
}

// FormatChange renders a percent change as "UP 1.25%" or "DOWN 0.40%".
func FormatChange(pct float64) string {
	if pct >= 0 {
		return fmt.Sprintf("UP %.2f%%", pct)
	}
	return fmt.Sprintf("DOWN %.2f%%", -pct)
}
