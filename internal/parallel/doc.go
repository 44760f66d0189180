// Package parallel runs per-frame work on a shared worker pool.
//
// The engine uses it to render large views as horizontal bands: every band
// samples the same read-only pixel buffer and writes a disjoint set of rows
// of the destination, so bands need no synchronization beyond the final wait.
package parallel
