// Package tui implements `yuiclaw status --watch`, a bubbletea view that
// refreshes the status report on an interval until the user quits.
package tui
