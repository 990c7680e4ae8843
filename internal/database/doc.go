// Package database provides the SQLite visit journal.
//
// The JSON history list only keeps the last 100 URLs. The journal keeps
// every navigation with the text the user typed, the resolved URL, the page
// title and the browser session it happened in, so past visits can be
// searched. It uses modernc.org/sqlite, which needs no cgo.
package database
