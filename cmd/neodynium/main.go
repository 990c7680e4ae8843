// Package main provides the entry point for the Neodynium CLI.
//
// Neodynium is a headless browser shell. It turns address bar input into
// URLs, loads pages, keeps bookmarks and history on disk and runs
// extensions that can rewrite navigations or observe page loads.
//
// Usage:
//
//	neodynium open <text>...
//	neodynium bookmark list
//	neodynium history search <term>
//
// See --help for all available options.
package main

func main() {
	Execute()
}
