// Package orchestrator implements the yuiclaw commands on top of the
// process, bridge, adapters and reporting packages.
//
// The Orchestrator owns every side effect the supervisor performs: running
// the sibling tools (acomm, amem, abeat), spawning detached bridge and
// adapter processes, removing the bridge socket and finally replacing the
// current process with the TUI. Each of those is injectable through an
// Option so command flows can be tested without touching the host.
//
// Flows are sequential. The only concurrent work is the PATH lookup of the
// component binaries.
package orchestrator
