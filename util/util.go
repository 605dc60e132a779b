package util

import (
	"fmt"
	"math"
	"strings"
)

const DisplaySeparator = " → "

// RoundFloat rounds v to the given number of decimal places.
func RoundFloat(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}

// Percentage returns value/total as a percentage rounded to 2 decimals.
// A zero total yields 0.
func Percentage(value float64, total float64) float64 {
	if total == 0 {
		return 0.0
	}
	return RoundFloat((value/total)*100, 2)
}

// FormatSequenceForDisplay joins items into the human readable form used
// across chart labels and exports.
func FormatSequenceForDisplay(items []string) string {
	return strings.Join(items, DisplaySeparator)
}

// FileSizeString formats a byte count for dataset previews.
func FileSizeString(sizeBytes int64) string {
	if sizeBytes < 1024 {
		return fmt.Sprintf("%d bytes", sizeBytes)
	}
	if sizeBytes < 1024*1024 {
		return fmt.Sprintf("%.2f KB", float64(sizeBytes)/1024)
	}
	return fmt.Sprintf("%.2f MB", float64(sizeBytes)/(1024*1024))
}
