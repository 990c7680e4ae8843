// Package store persists bookmarks and history as JSON files in the
// per-user data directory.
//
// Persistence failures are logged and never returned: a broken data
// directory must not end the browsing session. Loads decode into a
// temporary value so a corrupt file leaves the caller's collection
// untouched. Saves go through a temporary file and a rename.
package store
