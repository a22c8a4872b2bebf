// Package commands implements the discvault command line: schema migrations,
// reference data seeding, and offline inspection of the client route table,
// theme tokens and tracklist parsing.
package commands
