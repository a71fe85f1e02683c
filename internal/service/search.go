// Package service contains the business logic behind the search form server.
// Services validate inputs and drive the searchform model; no HTTP lives here.
package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-playground/validator/v10"

	"github.com/pkordes/staysearch/internal/domain"
	"github.com/pkordes/staysearch/internal/searchform"
)

// dateRule is the validator tag for a native date input value.
const dateRule = "datetime=" + searchform.DateLayout

// windowInput is the validated form of a date-constraint request.
type windowInput struct {
	Checkin  string `validate:"omitempty,datetime=2006-01-02"`
	Checkout string `validate:"omitempty,datetime=2006-01-02"`
}

// SearchService renders the search page and applies the search form rules on
// the server: the native-submit fallback and the JSON API both go through it.
type SearchService struct {
	page     []byte
	now      func() time.Time
	loc      *time.Location
	scripts  bool
	validate *validator.Validate
	log      *slog.Logger
}

// NewSearchService constructs a SearchService that serves page.
// now and loc decide what "today" is; nil means time.Now and UTC.
// scripts reports whether the page's script assets are served; when false
// the <script> elements are dropped and the form works by native submit.
func NewSearchService(page []byte, now func() time.Time, loc *time.Location, scripts bool, log *slog.Logger) *SearchService {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = slog.Default()
	}
	return &SearchService{
		page:     page,
		now:      now,
		loc:      loc,
		scripts:  scripts,
		validate: validator.New(),
		log:      log,
	}
}

// ListingsURL returns the listings URL a search for q navigates to.
// No validation happens here: the form forwards whatever was entered.
func (s *SearchService) ListingsURL(ctx context.Context, q domain.SearchQuery) string {
	target := searchform.ListingsURL(q)
	s.log.InfoContext(ctx, "search request",
		"destination", q.Destination,
		"checkin", q.Checkin,
		"checkout", q.Checkout,
		"guests", q.Guests,
		"url", target,
	)
	return target
}

// Window applies the load-time minimums and, when checkin is set, the
// check-in change rule to the pair of dates.
// Returns domain.ErrValidation when either date is not YYYY-MM-DD.
func (s *SearchService) Window(ctx context.Context, checkin, checkout string) (domain.DateWindow, error) {
	in := windowInput{Checkin: checkin, Checkout: checkout}
	if err := s.validate.StructCtx(ctx, in); err != nil {
		return domain.DateWindow{}, fmt.Errorf("service.SearchService.Window: %w", validationError(err))
	}

	c := searchform.LoadConstraints(searchform.Today(s.now(), s.loc))
	w := domain.DateWindow{
		CheckinMin:  c.CheckinMin,
		CheckoutMin: c.CheckoutMin,
		Checkin:     checkin,
		Checkout:    checkout,
	}
	if checkin != "" {
		c, w.Checkout = c.ChangeCheckin(checkin, checkout)
		w.CheckoutMin = c.CheckoutMin
	}
	return w, nil
}

// RenderPage returns the search page with today's date minimums applied and
// the inputs prefilled from q. Prefilled dates that are not YYYY-MM-DD are
// dropped; check-in is applied last so a check-out that is not after it is
// cleared, exactly as when the user picks the dates.
func (s *SearchService) RenderPage(ctx context.Context, q domain.SearchQuery) ([]byte, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(s.page))
	if err != nil {
		return nil, fmt.Errorf("service.SearchService.RenderPage: parse page: %w", err)
	}

	form := searchform.Bind(doc, searchform.Options{Now: s.now, Location: s.loc, Logger: s.log})
	form.Load()

	prefill := []searchform.Param{
		{Name: searchform.ParamDestination, Value: q.Destination},
		{Name: searchform.ParamGuests, Value: q.Guests},
		{Name: searchform.ParamCheckout, Value: s.dateOrEmpty(ctx, searchform.ParamCheckout, q.Checkout)},
		{Name: searchform.ParamCheckin, Value: s.dateOrEmpty(ctx, searchform.ParamCheckin, q.Checkin)},
	}
	for _, p := range prefill {
		if p.Value == "" {
			continue
		}
		form.Dispatch(searchform.Event{Kind: searchform.EventChange, Target: p.Name, Value: p.Value})
	}

	searchform.Render(doc, form)
	if !s.scripts {
		doc.Find("script").Remove()
	}

	html, err := doc.Html()
	if err != nil {
		return nil, fmt.Errorf("service.SearchService.RenderPage: render page: %w", err)
	}
	return []byte(html), nil
}

func (s *SearchService) dateOrEmpty(ctx context.Context, name, value string) string {
	if value == "" {
		return ""
	}
	if err := s.validate.VarCtx(ctx, value, dateRule); err != nil {
		s.log.DebugContext(ctx, "dropping malformed prefill date", "field", name, "value", value)
		return ""
	}
	return value
}

// validationError turns validator output into a domain.ErrValidation that
// names each offending field, e.g. "validation error: checkin must be a
// YYYY-MM-DD date".
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, strings.ToLower(fe.Field())+" must be a YYYY-MM-DD date")
	}
	return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(msgs, "; "))
}
