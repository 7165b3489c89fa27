// Package store keeps the process-local set of calendar events. Nothing is
// written to disk; the index lives as long as the process does.
package store
