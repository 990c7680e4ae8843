// Package model defines the core data structures shared across Neodynium.
//
// This package contains the following main types:
//   - Bookmark / Bookmarks: user-saved pages, unique by exact URL
//   - History: the visit list with consecutive-duplicate suppression and a
//     fixed capacity
//   - Page: what the renderer reports back for the current tab
//
// The types live in their own package so that the engine, the persistence
// store, the renderer and the export writers can share them without import
// cycles. All of them serialize to the JSON formats stored on disk.
package model
