// Package loaders fetches the data behind each view and hands it to a
// renderer.
//
// Every read takes the navigation ticket issued by the view controller when
// the view was opened. Results are rendered only if that ticket is still
// current; a response for a view the user has already left is discarded.
//
// Writes (create, update, delete) send one request. On success they close the
// open form and reload the current view. On failure they return a *WriteError
// carrying the message to show, and the form and the displayed list stay as
// they were.
package loaders
