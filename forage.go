// Package forage extracts structured group content (posts, authors,
// timestamps, engagement counts, and threaded comments) from rendered
// Facebook group pages. Two presentation variants of the service (the
// modern React surface and the legacy mbasic surface) are supported by
// separate extraction strategies that converge on one output schema.
//
// This package contains domain types, interfaces, and the pure parsing
// helpers following Ben Johnson's Standard Package Layout. Implementations
// live in subdirectories named after their primary dependency (e.g.,
// rod/, goquery/, sqlite/).
package forage
