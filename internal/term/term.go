// Package term holds the colored-output and number-formatting helpers
// shared by the CLI.
package term

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
)

// Shared color helpers.
var (
	Bold   = color.New(color.Bold)
	Green  = color.New(color.FgGreen)
	Red    = color.New(color.FgRed)
	Yellow = color.New(color.FgYellow)
	Blue   = color.New(color.FgBlue)
)

// Printf writes a colored formatted line, ignoring write errors.
func Printf(c *color.Color, format string, a ...any) {
	_, _ = c.Printf(format, a...)
}

// Println writes a colored line, ignoring write errors.
func Println(c *color.Color, a ...any) {
	_, _ = c.Println(a...)
}

// FormatNumber formats an integer with comma separators.
func FormatNumber(n int) string {
	s := fmt.Sprintf("%d", n)
	var result strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			_, _ = result.WriteString(",")
		}
		_, _ = result.WriteRune(c)
	}
	return result.String()
}

// FormatDuration formats a duration in the most readable unit.
func FormatDuration(d time.Duration) string {
	if d == 0 {
		return "0"
	}

	ns := d.Nanoseconds()
	switch {
	case ns < 1000:
		return fmt.Sprintf("%dns", ns)
	case ns < 1_000_000:
		return fmt.Sprintf("%.1fµs", float64(ns)/1000.0)
	case ns < 1_000_000_000:
		return fmt.Sprintf("%.2fms", float64(ns)/1_000_000.0)
	default:
		return fmt.Sprintf("%.2fs", float64(ns)/1_000_000_000.0)
	}
}
