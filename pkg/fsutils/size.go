package fsutils

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	kib int64 = 1 << 10
	mib       = kib << 10
	gib       = mib << 10
	tib       = gib << 10
)

// FormatSize returns a human readable size string using binary units.
// Sizes below 1 KiB are reported in bytes, everything else with 2 decimals.
func FormatSize(size int64) string {
	switch {
	case size < kib:
		return strconv.FormatInt(size, 10) + " bytes"
	case size < mib:
		return formatUnit(size, kib, "KiB")
	case size < gib:
		return formatUnit(size, mib, "MiB")
	case size < tib:
		return formatUnit(size, gib, "GiB")
	default:
		return formatUnit(size, tib, "TiB")
	}
}

func formatUnit(size, unit int64, suffix string) string {
	return strconv.FormatFloat(float64(size)/float64(unit), 'f', 2, 64) + " " + suffix
}

var countPrinter = message.NewPrinter(language.English)

// FormatItemCount formats the number of children of a directory.
func FormatItemCount(n int) string {
	if n == 1 {
		return "1 item"
	}
	return countPrinter.Sprintf("%d items", n)
}
