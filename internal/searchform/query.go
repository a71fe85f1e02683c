// Package searchform models the lodging search form: the four search inputs,
// the check-in/check-out date rules, per-field focus/hover styling and the
// password reveal toggle used on the auth forms.
//
// Everything here is plain values and event dispatch. Nothing touches a real
// DOM; the HTTP server and the wasm entry point both drive the same Controller
// and render its state onto their own markup.
package searchform

import (
	"net/url"
	"strings"

	"github.com/pkordes/staysearch/internal/domain"
)

// ListingsPath is the page the search form navigates to.
const ListingsPath = "/listings"

// Parameter names understood by the listings page.
const (
	ParamDestination = "destination"
	ParamCheckin     = "checkin"
	ParamCheckout    = "checkout"
	ParamGuests      = "guests"
)

// Param is one name/value pair of the listings query string.
type Param struct {
	Name  string
	Value string
}

// QueryParams returns the parameters to forward for q, always in the order
// destination, checkin, checkout, guests. Destination and guests are trimmed;
// dates are passed through untouched. Parameters that end up empty are left out.
func QueryParams(q domain.SearchQuery) []Param {
	candidates := []Param{
		{ParamDestination, strings.TrimSpace(q.Destination)},
		{ParamCheckin, q.Checkin},
		{ParamCheckout, q.Checkout},
		{ParamGuests, strings.TrimSpace(q.Guests)},
	}
	params := make([]Param, 0, len(candidates))
	for _, p := range candidates {
		if p.Value != "" {
			params = append(params, p)
		}
	}
	return params
}

// EncodeQuery form-encodes params in the order given.
// url.Values.Encode is not used because it sorts keys.
func EncodeQuery(params []Param) string {
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// ListingsURL returns the navigation target for q, e.g.
// "/listings?destination=Paris&checkin=2024-06-01&guests=2".
// An empty query still yields "/listings?".
func ListingsURL(q domain.SearchQuery) string {
	return ListingsPath + "?" + EncodeQuery(QueryParams(q))
}

// ValueEvent is the DOM event that commits a new value for the input
// bound to the query parameter name: "change" for the date inputs and
// "input" for the text inputs.
func ValueEvent(name string) string {
	switch name {
	case ParamCheckin, ParamCheckout:
		return "change"
	default:
		return "input"
	}
}
