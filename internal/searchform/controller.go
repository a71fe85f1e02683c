package searchform

import (
	"log/slog"
	"time"

	"github.com/pkordes/staysearch/internal/domain"
)

// EventKind identifies a user interaction the Controller reacts to.
type EventKind int

const (
	// EventClick is a click anywhere inside a search field container.
	EventClick EventKind = iota + 1
	EventFocus
	EventBlur
	EventMouseEnter
	EventMouseLeave
	// EventChange carries a new input value in Event.Value.
	EventChange
	// EventTrigger is a click on the search trigger button.
	EventTrigger
	// EventTogglePassword is a click on a password reveal control.
	// Event.Target is the password input ID.
	EventTogglePassword
)

// Event is one interaction. Target is the ID of the input it concerns, or the
// trigger button ID for EventTrigger (empty matches any trigger).
type Event struct {
	Kind   EventKind
	Target string
	Value  string
}

// Outcome tells the caller what to do after an event was dispatched.
type Outcome struct {
	// Handled is false when the event targeted nothing the Controller knows.
	Handled bool
	// PreventDefault asks the caller to suppress the element's native action.
	PreventDefault bool
	// Focus names an input that should receive focus.
	Focus string
	// NavigateTo is set when the event produced a navigation.
	NavigateTo string
	// Changed lists the IDs whose rendering changed, in the order they changed.
	Changed []string
}

// Field is an input known to the Controller.
type Field struct {
	ID string
	// Styled marks inputs that sit in a search field container and so get
	// the focus/hover shading.
	Styled bool
	State  FieldState
	// Min is the min attribute; only the date inputs carry one.
	Min string
}

// Trigger is the element that starts a search.
type Trigger struct {
	ID string
	// NativeSubmit is true when the element would submit its form by itself.
	// Such triggers are left alone.
	NativeSubmit bool
}

// Navigator performs a full-page navigation.
type Navigator interface {
	Navigate(url string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(url string)

// Navigate calls f(url).
func (f NavigatorFunc) Navigate(url string) { f(url) }

// Options configures a Controller. Zero values are usable: no navigation,
// the real clock, UTC and the default logger.
type Options struct {
	Navigator Navigator
	Now       func() time.Time
	Location  *time.Location
	Logger    *slog.Logger
}

// Controller is the search form's event handler set. It owns the state of
// every bound input and is the only thing that changes it: callers dispatch
// events and render whatever the Outcome reports as changed.
//
// A Controller is not safe for concurrent use; like the page it models it is
// driven from a single event loop.
type Controller struct {
	fields    map[string]*Field
	order     []string
	passwords map[string]*PasswordField
	pwOrder   []string
	trigger   *Trigger

	constraints DateConstraints

	nav Navigator
	now func() time.Time
	loc *time.Location
	log *slog.Logger
}

// New returns an empty Controller.
func New(opts Options) *Controller {
	c := &Controller{
		fields:    make(map[string]*Field),
		passwords: make(map[string]*PasswordField),
		nav:       opts.Navigator,
		now:       opts.Now,
		loc:       opts.Location,
		log:       opts.Logger,
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.loc == nil {
		c.loc = time.UTC
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	return c
}

// AddField registers an input with its current value. Registering the same
// ID again updates the value; styled is sticky once set.
func (c *Controller) AddField(id, value string, styled bool) {
	if id == "" {
		return
	}
	if f, ok := c.fields[id]; ok {
		f.State.Value = value
		f.Styled = f.Styled || styled
		return
	}
	c.fields[id] = &Field{ID: id, Styled: styled, State: FieldState{Value: value}}
	c.order = append(c.order, id)
}

// AddPassword registers a password input. An empty Type means "password".
func (c *Controller) AddPassword(f PasswordField) {
	if f.ID == "" {
		return
	}
	if f.Type == "" {
		f.Type = InputPassword
	}
	if _, ok := c.passwords[f.ID]; !ok {
		c.pwOrder = append(c.pwOrder, f.ID)
	}
	c.passwords[f.ID] = &f
}

// SetTrigger registers the search trigger.
func (c *Controller) SetTrigger(t Trigger) {
	c.trigger = &t
}

// Load applies the page-load rules: both date inputs may not precede today.
func (c *Controller) Load() Outcome {
	today := Today(c.now(), c.loc)
	c.constraints = LoadConstraints(today)

	out := Outcome{Handled: true}
	if f, ok := c.fields[ParamCheckin]; ok {
		f.Min = c.constraints.CheckinMin
		out.Changed = append(out.Changed, f.ID)
	}
	if f, ok := c.fields[ParamCheckout]; ok {
		f.Min = c.constraints.CheckoutMin
		out.Changed = append(out.Changed, f.ID)
	}
	return out
}

// Dispatch applies e and reports what changed. Events aimed at unknown
// inputs, passwords or triggers are ignored with Handled false.
func (c *Controller) Dispatch(e Event) Outcome {
	switch e.Kind {
	case EventClick, EventFocus, EventBlur, EventMouseEnter, EventMouseLeave:
		return c.style(e)
	case EventChange:
		return c.change(e.Target, e.Value)
	case EventTrigger:
		return c.submit(e.Target)
	case EventTogglePassword:
		if !c.TogglePasswordVisibility(e.Target) {
			return Outcome{}
		}
		return Outcome{Handled: true, Changed: []string{e.Target}}
	default:
		return Outcome{}
	}
}

func (c *Controller) style(e Event) Outcome {
	f, ok := c.fields[e.Target]
	if !ok || !f.Styled {
		return Outcome{}
	}

	before := f.State.Shade()
	f.State = f.State.Apply(e.Kind)

	out := Outcome{Handled: true}
	if e.Kind == EventClick {
		out.Focus = f.ID
	}
	if f.State.Shade() != before {
		out.Changed = []string{f.ID}
	}
	return out
}

func (c *Controller) change(id, value string) Outcome {
	f, ok := c.fields[id]
	if !ok {
		return Outcome{}
	}
	f.State.Value = value
	out := Outcome{Handled: true, Changed: []string{id}}

	if id != ParamCheckin {
		return out
	}
	checkout, ok := c.fields[ParamCheckout]
	if !ok {
		return out
	}
	c.constraints, checkout.State.Value = c.constraints.ChangeCheckin(value, checkout.State.Value)
	checkout.Min = c.constraints.CheckoutMin
	out.Changed = append(out.Changed, checkout.ID)
	return out
}

func (c *Controller) submit(target string) Outcome {
	if c.trigger == nil || c.trigger.NativeSubmit {
		return Outcome{}
	}
	if target != "" && target != c.trigger.ID {
		return Outcome{}
	}
	return Outcome{
		Handled:        true,
		PreventDefault: true,
		NavigateTo:     c.BuildSearchURL(),
	}
}

// BuildSearchURL reads the four search inputs, builds the listings URL and
// hands it to the Navigator. The URL is also returned.
func (c *Controller) BuildSearchURL() string {
	q := c.Query()
	target := ListingsURL(q)

	c.log.Debug("search",
		"destination", q.Destination,
		"checkin", q.Checkin,
		"checkout", q.Checkout,
		"guests", q.Guests,
		"url", target,
	)

	if c.nav != nil {
		c.nav.Navigate(target)
	}
	return target
}

// TogglePasswordVisibility flips the password input id between masked and
// plain text. It reports false, and does nothing, when id is unknown.
func (c *Controller) TogglePasswordVisibility(id string) bool {
	f, ok := c.passwords[id]
	if !ok {
		return false
	}
	*f = f.Toggle()
	return true
}

// Query returns the current values of the four search inputs.
// Inputs that are not bound read as empty.
func (c *Controller) Query() domain.SearchQuery {
	return domain.SearchQuery{
		Destination: c.value(ParamDestination),
		Checkin:     c.value(ParamCheckin),
		Checkout:    c.value(ParamCheckout),
		Guests:      c.value(ParamGuests),
	}
}

func (c *Controller) value(id string) string {
	if f, ok := c.fields[id]; ok {
		return f.State.Value
	}
	return ""
}

// Field returns a copy of the input id.
func (c *Controller) Field(id string) (Field, bool) {
	f, ok := c.fields[id]
	if !ok {
		return Field{}, false
	}
	return *f, true
}

// Fields returns copies of all inputs in registration order.
func (c *Controller) Fields() []Field {
	out := make([]Field, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.fields[id])
	}
	return out
}

// Password returns a copy of the password input id.
func (c *Controller) Password(id string) (PasswordField, bool) {
	f, ok := c.passwords[id]
	if !ok {
		return PasswordField{}, false
	}
	return *f, true
}

// Passwords returns copies of all password inputs in registration order.
func (c *Controller) Passwords() []PasswordField {
	out := make([]PasswordField, 0, len(c.pwOrder))
	for _, id := range c.pwOrder {
		out = append(out, *c.passwords[id])
	}
	return out
}

// Trigger returns the registered trigger, if any.
func (c *Controller) Trigger() (Trigger, bool) {
	if c.trigger == nil {
		return Trigger{}, false
	}
	return *c.trigger, true
}

// Constraints returns the current date constraints.
func (c *Controller) Constraints() DateConstraints {
	return c.constraints
}
