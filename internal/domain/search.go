package domain

// SearchQuery is the set of user-supplied search parameters forwarded to the
// listings page. Values are kept exactly as entered; trimming and omission of
// empty parameters happen when the query is encoded.
type SearchQuery struct {
	Destination string `json:"destination,omitempty"`
	Checkin     string `json:"checkin,omitempty"`  // "2006-01-02" formatted date
	Checkout    string `json:"checkout,omitempty"` // "2006-01-02" formatted date
	Guests      string `json:"guests,omitempty"`
}

// DateWindow is the result of applying the check-in/check-out rules to a pair
// of date values. Checkout is empty when the supplied value was cleared.
type DateWindow struct {
	CheckinMin  string `json:"checkin_min"`
	CheckoutMin string `json:"checkout_min"`
	Checkin     string `json:"checkin,omitempty"`
	Checkout    string `json:"checkout,omitempty"`
}
