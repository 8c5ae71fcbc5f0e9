// Package models defines the client-side records exchanged with the kitchen
// API and the session the CLI keeps between runs.
//
// Records are read-only snapshots: every write goes to the server and the
// local view is refreshed by fetching again.
package models
