// Package cli provides the interactive kitchenkeeper command-line client.
//
// It wires configuration, the local session database, the REST API client,
// the view controller, loaders and a renderer, then runs a REPL. A stored
// session opens straight on the dashboard; otherwise the login form is shown.
//
// Key features:
//   - Sign in / sign up (toggle with "mode"), logout, whoami
//   - Dashboard, recipe and pantry lists, recipe details and search
//   - Add recipes and pantry items, update and delete with confirmation
//   - Expiring-soon report and .xlsx export
//
// Any 401 from the API drops the stored session and returns to the login
// form. The REPL is started via App.Run(ctx), which blocks until the user
// exits. See App and runREPL for details.
package cli
