// Package commands defines the pgtemporal CLI.
//
// Commands
//
//   - encode  Print the PostgreSQL binary encoding of a date or time literal
//   - decode  Print the literal for a PostgreSQL binary value
//   - types   List the supported types and their OIDs
//
// # Time zones
//
// The persistent --tz flag names the session time zone. It determines the
// zone of timestamptz literals that have no offset, the zone of timestamptz
// values converted to other types, and the zone in which decoded timestamptz
// values are displayed. It defaults to UTC.
package commands
