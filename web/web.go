// Package web embeds the markup served by the search form server.
// The search page follows the form's markup contract: the four inputs by ID,
// one .search-field container per input and a .search-button trigger.
package web

import _ "embed"

// SearchPage is the raw search page, embedded at compile time. The server
// binds it per request and renders the date minimums and prefilled values
// into it before writing it out.
//
//go:embed search.html
var SearchPage []byte
