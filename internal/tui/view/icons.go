package view

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Icon constants
const (
	IconCheck     = "✔" // U+2714
	IconCross     = "✘" // U+2718
	IconWarning   = "⚠" // U+26A0 without VS16
	IconInfo      = "ℹ" // U+2139 without VS16
	IconHourglass = "⏳" // U+23F3
	IconScroll    = "📜" // U+1F4DC
	IconSignal    = "📶" // U+1F4F6
)

// SafeIcon appends enough spaces after an icon that a wide glyph does not
// swallow the next character: one for single-cell icons, two for wide ones.
func SafeIcon(icon string) string {
	spaces := 1
	if runewidth.StringWidth(icon) >= 2 {
		spaces = 2
	}
	return fmt.Sprintf("%s%s", icon, strings.Repeat(" ", spaces))
}
