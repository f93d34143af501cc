package reporting

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"yuiclaw/internal/color"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

// Format selects how a status value is rendered.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat converts a flag value into a Format. The empty string means table.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatTable:
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w %q (expected table, json or yaml)", ErrUnknownFormat, s)
	}
}

// WriteReport renders r to w in the requested format.
func WriteReport(w io.Writer, r Report, f Format) error {
	switch f {
	case FormatJSON:
		return writeJSON(w, r)
	case FormatYAML:
		return writeYAML(w, r)
	default:
		_, err := io.WriteString(w, RenderReport(r))
		return err
	}
}

// WriteDaemonStatus renders d to w in the requested format.
func WriteDaemonStatus(w io.Writer, d DaemonStatus, f Format) error {
	if d.Channels == nil {
		d.Channels = []ChannelStatus{}
	}
	switch f {
	case FormatJSON:
		return writeJSON(w, d)
	case FormatYAML:
		return writeYAML(w, d)
	default:
		_, err := io.WriteString(w, RenderDaemonStatus(d))
		return err
	}
}

// RenderReport returns the human readable status report.
func RenderReport(r Report) string {
	var b strings.Builder

	b.WriteString(color.Render(color.HeaderStyle, "=== YuiClaw Status ==="))
	b.WriteString("\n\n")

	section(&b, "Components")
	t := newTable(&b)
	t.AppendHeader(table.Row{"COMPONENT", "STATUS"})
	for _, c := range r.Components {
		t.AppendRow(table.Row{c.Name, color.Bool(c.Available, "✓ available", "✗ not found in PATH")})
	}
	t.Render()
	b.WriteString("\n")

	section(&b, "Bridge")
	if r.Bridge.Running {
		fmt.Fprintf(&b, "  Socket: %s (%s)\n", color.Bool(true, "✓ running", ""), r.Bridge.SocketPath)
	} else {
		fmt.Fprintf(&b, "  Socket: %s  (run `yuiclaw start` to launch)\n", color.Bool(false, "", "✗ not running"))
	}
	b.WriteString("\n")

	section(&b, "Channels")
	writeChannels(&b, r.Channels)
	b.WriteString("\n")

	if r.SchedulerAvailable {
		section(&b, "Scheduled Jobs")
		switch {
		case r.JobsErr != "" || len(r.Jobs) == 0:
			b.WriteString(color.Render(color.MutedStyle, "  (no jobs configured, run `yuiclaw init` to set up defaults)"))
			b.WriteString("\n")
		default:
			for _, line := range r.Jobs {
				fmt.Fprintf(&b, "  %s\n", line)
			}
		}
		b.WriteString("\n")
	}

	if r.MemoryAvailable {
		section(&b, "Memory")
		if r.MemoryErr != "" || r.MemoryRoot == "" {
			b.WriteString(color.Render(color.MutedStyle, "  (amem which failed)"))
			b.WriteString("\n")
		} else {
			fmt.Fprintf(&b, "  Root: %s\n", r.MemoryRoot)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// RenderDaemonStatus returns the human readable daemon summary.
func RenderDaemonStatus(d DaemonStatus) string {
	var b strings.Builder

	section(&b, "Daemon")
	fmt.Fprintf(&b, "  Health: %s\n\n", color.Bool(d.Healthy(), "✓ healthy", "✗ degraded"))

	section(&b, "Bridge")
	fmt.Fprintf(&b, "  Running: %s\n\n", color.Bool(d.BridgeRunning, "✓ yes", "✗ no"))

	section(&b, "Channels")
	writeChannels(&b, d.Channels)

	return b.String()
}

func writeChannels(b *strings.Builder, channels []ChannelStatus) {
	if len(channels) == 0 {
		b.WriteString(color.Render(color.MutedStyle, "  (no channel adapters configured)"))
		b.WriteString("\n")
		return
	}
	t := newTable(b)
	t.AppendHeader(table.Row{"CHANNEL", "STATUS"})
	for _, ch := range channels {
		t.AppendRow(table.Row{ch.Label, color.Bool(ch.Connected, "✓ connected", "✗ disconnected")})
	}
	t.Render()
}

func section(b *strings.Builder, name string) {
	b.WriteString(color.Render(color.SectionStyle, "["+name+"]"))
	b.WriteString("\n")
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	return t
}

func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}
