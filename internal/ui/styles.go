package ui

import "github.com/fatih/color"

// Styles used across the application output. The "no color" state is checked on every call, so they can be
// shared safely.
var (
	BrightBlack   = color.New(color.FgHiBlack)   //nolint:gochecknoglobals
	BrightRed     = color.New(color.FgHiRed)     //nolint:gochecknoglobals
	BrightGreen   = color.New(color.FgHiGreen)   //nolint:gochecknoglobals
	BrightYellow  = color.New(color.FgHiYellow)  //nolint:gochecknoglobals
	BrightMagenta = color.New(color.FgHiMagenta) //nolint:gochecknoglobals
	BrightCyan    = color.New(color.FgHiCyan)    //nolint:gochecknoglobals
	BrightWhite   = color.New(color.FgHiWhite)   //nolint:gochecknoglobals
	Magenta       = color.New(color.FgMagenta)   //nolint:gochecknoglobals
)

// Paint styles the text with the given color. A nil color leaves the text untouched.
func Paint(c *color.Color, text string) string {
	if c == nil || text == "" {
		return text
	}

	return c.Sprint(text)
}
