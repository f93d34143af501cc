// Package color holds the lipgloss styles used by yuiclaw's human output.
//
// Styles use adaptive colors, so Initialize should be called once at startup
// with the detected background mode. Setting NO_COLOR turns every helper into
// a pass-through.
//
//	fmt.Println(color.Bool(running, "running", "not running"))
package color
