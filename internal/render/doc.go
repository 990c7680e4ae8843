// Package render loads pages for the browser window.
//
// Renderer is the collaborator the window drives: given a URL it reports
// the final URL and title of the loaded page. Headless is the built-in
// implementation. It fetches http and https URLs over plain HTTP, optionally
// through a SOCKS5 proxy, and reads the document title without executing
// scripts or building a layout. about: URLs render as empty pages without
// touching the network.
package render
