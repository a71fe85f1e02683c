package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/staysearch/internal/domain"
	"github.com/pkordes/staysearch/internal/searchform"
)

// GetSearchPage handles GET /.
// Optional ?destination=, ?checkin=, ?checkout= and ?guests= prefill the form.
func (s *Server) GetSearchPage(w http.ResponseWriter, r *http.Request) {
	q, err := bindSearchQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	page, err := s.search.RenderPage(r.Context(), q)
	if err != nil {
		s.log.ErrorContext(r.Context(), "render search page", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(page); err != nil {
		s.log.ErrorContext(r.Context(), "write search page", "error", err)
	}
}

// PostSearch handles POST /search, the form's native submit.
// It answers 303 See Other pointing at the listings URL the form would
// navigate to. Nothing is validated; the listings page decides what to do
// with the values.
func (s *Server) PostSearch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "Malformed form body", http.StatusBadRequest)
		return
	}

	q := domain.SearchQuery{
		Destination: r.PostForm.Get(searchform.ParamDestination),
		Checkin:     r.PostForm.Get(searchform.ParamCheckin),
		Checkout:    r.PostForm.Get(searchform.ParamCheckout),
		Guests:      r.PostForm.Get(searchform.ParamGuests),
	}

	http.Redirect(w, r, s.search.ListingsURL(r.Context(), q), http.StatusSeeOther)
}

// GetSearchURL handles GET /api/search/url.
// It returns the listings URL for the four query parameters.
func (s *Server) GetSearchURL(w http.ResponseWriter, r *http.Request) {
	q, err := bindSearchQuery(r.URL.Query())
	if err != nil {
		s.writeJSON(w, r, http.StatusBadRequest, requestBody(err.Error()))
		return
	}

	s.writeJSON(w, r, http.StatusOK, SearchURLResponse{URL: s.search.ListingsURL(r.Context(), q)})
}

// GetSearchConstraints handles GET /api/search/constraints.
// It returns the date minimums and the check-out value that survives a
// check-in change to ?checkin=.
func (s *Server) GetSearchConstraints(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	checkin, err := bindOptionalString(params, searchform.ParamCheckin)
	if err != nil {
		s.writeJSON(w, r, http.StatusBadRequest, requestBody(err.Error()))
		return
	}
	checkout, err := bindOptionalString(params, searchform.ParamCheckout)
	if err != nil {
		s.writeJSON(w, r, http.StatusBadRequest, requestBody(err.Error()))
		return
	}

	window, err := s.search.Window(r.Context(), checkin, checkout)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			s.writeJSON(w, r, http.StatusUnprocessableEntity, validationBody(err))
			return
		}
		s.log.ErrorContext(r.Context(), "date constraints", "error", err)
		s.writeJSON(w, r, http.StatusInternalServerError, internalBody())
		return
	}

	s.writeJSON(w, r, http.StatusOK, ConstraintsResponse(window))
}

// --- binding helpers --------------------------------------------------------

// bindSearchQuery reads the four optional search parameters.
func bindSearchQuery(params url.Values) (domain.SearchQuery, error) {
	var q domain.SearchQuery
	for _, p := range []struct {
		name string
		dest *string
	}{
		{searchform.ParamDestination, &q.Destination},
		{searchform.ParamCheckin, &q.Checkin},
		{searchform.ParamCheckout, &q.Checkout},
		{searchform.ParamGuests, &q.Guests},
	} {
		v, err := bindOptionalString(params, p.name)
		if err != nil {
			return domain.SearchQuery{}, err
		}
		*p.dest = v
	}
	return q, nil
}

// bindOptionalString binds a single form-style query parameter. An absent
// parameter is "", a repeated one is an error.
func bindOptionalString(params url.Values, name string) (string, error) {
	var v *string
	if err := runtime.BindQueryParameter("form", true, false, name, params, &v); err != nil {
		return "", err
	}
	if v == nil {
		return "", nil
	}
	return *v, nil
}
