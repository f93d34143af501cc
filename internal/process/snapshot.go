package process

import (
	"strconv"
	"strings"
)

// Record is one row of the process table.
type Record struct {
	// PID is zero when the source listing carried no pid column.
	PID        int
	Executable string
	Args       string
}

// MatchesFlag reports whether the record is the given binary running with flag.
//
// The executable name must equal binary exactly and flag must appear as a
// whole whitespace-separated argument token. A build tool mentioning the
// binary in its own arguments (`cargo run -p acomm -- --discord`) or a longer
// flag sharing the prefix (`--discordx`) never matches.
func (r Record) MatchesFlag(binary, flag string) bool {
	if r.Executable != binary {
		return false
	}
	for _, token := range strings.Fields(r.Args) {
		if token == flag {
			return true
		}
	}
	return false
}

// Snapshot is the process table captured at one instant.
// Take a new one for every decision; never keep one across a wait.
type Snapshot []Record

// HasFlag reports whether any record matches binary and flag.
func (s Snapshot) HasFlag(binary, flag string) bool {
	for _, r := range s {
		if r.MatchesFlag(binary, flag) {
			return true
		}
	}
	return false
}

// PIDsWithFlag returns the pids of all records matching binary and flag.
func (s Snapshot) PIDsWithFlag(binary, flag string) []int {
	var pids []int
	for _, r := range s {
		if r.PID > 0 && r.MatchesFlag(binary, flag) {
			pids = append(pids, r.PID)
		}
	}
	return pids
}

// ParseSnapshot parses `ps` output, one process per line. Lines that carry no
// executable name are dropped.
func ParseSnapshot(output string) Snapshot {
	var snap Snapshot
	for _, line := range strings.Split(output, "\n") {
		if r, ok := ParseLine(line); ok {
			snap = append(snap, r)
		}
	}
	return snap
}

// ParseLine parses one line of `ps -eo pid=,comm=,args=` output.
// The pid column is optional so `ps -eo comm=,args=` lines parse as well.
func ParseLine(line string) (Record, bool) {
	rest := strings.TrimLeft(line, " \t")
	if strings.TrimSpace(rest) == "" {
		return Record{}, false
	}

	var r Record
	first, tail := splitField(rest)
	if pid, err := strconv.Atoi(first); err == nil && tail != "" {
		r.PID = pid
		first, tail = splitField(tail)
	}
	if first == "" {
		return Record{}, false
	}
	r.Executable = first
	r.Args = tail
	return r, true
}

// splitField returns the first whitespace-delimited field and the remainder
// with its leading whitespace removed.
func splitField(s string) (string, string) {
	s = strings.TrimLeft(s, " \t")
	idx := strings.IndexAny(s, " \t")
	if idx < 0 {
		return strings.TrimRight(s, "\r"), ""
	}
	return s[:idx], strings.TrimLeft(s[idx:], " \t")
}
