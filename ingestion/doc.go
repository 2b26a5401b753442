// Package ingestion loads catalog source lists into persistent storage.
//
// The Pipeline type validates incoming resource entries and writes the valid
// ones in concurrent batches using a worker pool. Invalid entries are logged
// and skipped rather than failing the whole load, so one malformed row in a
// source file never blocks a catalog refresh.
package ingestion
