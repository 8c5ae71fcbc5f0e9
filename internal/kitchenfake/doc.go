// Package kitchenfake is an in-memory implementation of the kitchen REST API.
//
// It backs the client's integration tests and can be run locally through
// cmd/kitchenfake. Passwords are bcrypt-hashed, bearer tokens are HS256 JWTs
// and errors are RFC 7807 problem documents, so the client sees the same wire
// behaviour it gets from the real service. Nothing is persisted.
package kitchenfake
