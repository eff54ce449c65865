package archive

import "fmt"

// sizeUnits caps at TiB: release assets beyond that are nonsensical, and a
// four-digit TiB value is still readable.
var sizeUnits = []string{"KiB", "MiB", "GiB", "TiB"}

// FormatSize renders a byte count in human-readable form. Values below 1024
// stay in whole bytes; larger values get one decimal place in the first
// unit that brings the number under 1024.
func FormatSize(n int64) string {
	return formatSize(n, false)
}

// FormatSizePadded is FormatSize with fixed-width numeric fields so sizes
// line up in tabular listings.
func FormatSizePadded(n int64) string {
	return formatSize(n, true)
}

func formatSize(n int64, padded bool) string {
	if n < 1024 {
		if padded {
			return fmt.Sprintf("%6d B  ", n)
		}
		return fmt.Sprintf("%d B", n)
	}

	// Escalate while the one-decimal rendering would still show 1024.0:
	// 1048570 bytes is 1023.99 KiB, which must display as 1.0 MiB.
	value := float64(n) / 1024
	unit := sizeUnits[0]
	for i := 1; i < len(sizeUnits) && value >= 1023.95; i++ {
		value /= 1024
		unit = sizeUnits[i]
	}

	if padded {
		return fmt.Sprintf("%6.1f %s", value, unit)
	}
	return fmt.Sprintf("%.1f %s", value, unit)
}
