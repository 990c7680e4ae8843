// Package search turns free-text queries into search engine URLs.
//
// The Catalog maps an engine key ("google", "duckduckgo", "bing") to a URL
// template with a single {query} placeholder. The Builder substitutes the
// query with spaces replaced by "+". No other escaping is done.
package search
