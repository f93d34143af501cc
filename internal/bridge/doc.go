// Package bridge decides whether the acomm bridge is usable and, when it is
// not, drives it to a ready state.
//
// Liveness needs two independent observations: an `acomm --bridge` process
// in the process table and a unix socket that accepts a connection. Neither
// alone is trusted. A socket file left behind by a crashed bridge accepts
// nothing, and a freshly started bridge may not have bound its socket yet.
//
// The Coordinator runs a bounded retry loop over those observations. It
// removes stale socket files, starts the bridge when no process exists and
// gives a final verdict from one last probe once its attempt budget is spent.
package bridge
