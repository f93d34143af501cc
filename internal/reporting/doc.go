// Package reporting turns observations of the yuiclaw stack into status
// values and renders them for people and for scripts.
//
// All values here are derived from fresh observations at call time. Nothing
// in this package starts, stops or retries anything.
package reporting
