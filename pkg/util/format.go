package util

import (
	"fmt"
	"strconv"
)

// FormatVolume renders a share count in compact form: millions as "N.NM",
// thousands as "N.NK", anything smaller as a plain integer.
func FormatVolume(n float64) string {
	switch {
	case n >= 1e6:
		return fmt.Sprintf("%.1fM", n/1e6)
	case n >= 1e3:
		return fmt.Sprintf("%.1fK", n/1e3)
	default:
		return strconv.Itoa(int(n))
	}
}

// FormatPrice renders a price with two decimals.
func FormatPrice(p float64) string {
	return fmt.Sprintf("%.2f", p)
}
