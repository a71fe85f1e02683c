package searchform

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Markup hooks the form is discovered by.
const (
	SearchFieldSelector  = ".search-field"
	SearchButtonSelector = ".search-button"
	// ToggleForAttr on a reveal control names the password input it reveals.
	ToggleForAttr = "data-toggle-for"
	// EnhanceAttr marks a submit button the browser binding turns into a
	// plain button once it is running. Without the binding it keeps
	// submitting the form.
	EnhanceAttr = "data-enhance"
)

// Bind builds a Controller from the form found in doc:
//   - the inputs #destination, #checkin, #checkout and #guests;
//   - each .search-field container's first input, which gets styling
//     (inputs without an ID are given "search-field-<n>" so Render can find them);
//   - the first .search-button as trigger;
//   - every password input with an ID, paired with the element whose
//     data-toggle-for names it, or else with its next element sibling.
//     Toggles with an inline onclick are not listened to.
//
// Missing pieces are skipped. Bind never fails; an empty document yields a
// Controller that ignores every event.
func Bind(doc *goquery.Document, opts Options) *Controller {
	c := New(opts)

	for _, id := range []string{ParamDestination, ParamCheckin, ParamCheckout, ParamGuests} {
		input := byID(doc.Selection, id)
		if input.Length() == 0 {
			continue
		}
		c.AddField(id, input.AttrOr("value", ""), false)
	}

	doc.Find(SearchFieldSelector).Each(func(i int, container *goquery.Selection) {
		input := container.Find("input").First()
		if input.Length() == 0 {
			return
		}
		id := input.AttrOr("id", "")
		if id == "" {
			id = fmt.Sprintf("search-field-%d", i)
			input.SetAttr("id", id)
		}
		c.AddField(id, input.AttrOr("value", ""), true)
	})

	if button := doc.Find(SearchButtonSelector).First(); button.Length() > 0 {
		c.SetTrigger(Trigger{
			ID:           button.AttrOr("id", ""),
			NativeSubmit: isNativeSubmit(button),
		})
	}

	doc.Find(`input[type="password"]`).Each(func(_ int, input *goquery.Selection) {
		id := input.AttrOr("id", "")
		if id == "" {
			return
		}
		toggle := toggleFor(doc.Selection, input, id)
		_, inline := toggle.Attr("onclick")
		c.AddPassword(PasswordField{
			ID:       id,
			ToggleID: toggle.AttrOr("id", ""),
			Type:     InputPassword,
			Listen:   ListenOnToggle(toggle.Length() > 0, inline),
		})
	})

	return c
}

// Render writes the Controller's state back onto doc: input values, date
// minimums, container backgrounds, password input types and toggle labels.
func Render(doc *goquery.Document, c *Controller) {
	for _, f := range c.Fields() {
		input := byID(doc.Selection, f.ID)
		if input.Length() == 0 {
			continue
		}
		setOrRemove(input, "value", f.State.Value)
		if f.ID == ParamCheckin || f.ID == ParamCheckout {
			setOrRemove(input, "min", f.Min)
		}
		if f.Styled {
			container := input.Closest(SearchFieldSelector)
			setOrRemove(container, "style", withBackground(container.AttrOr("style", ""), f.State.Shade()))
			container.SetAttr("data-state", f.State.Visual().String())
		}
	}

	for _, p := range c.Passwords() {
		if input := byID(doc.Selection, p.ID); input.Length() > 0 {
			input.SetAttr("type", string(p.Type))
		}
		if p.ToggleID == "" {
			continue
		}
		if toggle := byID(doc.Selection, p.ToggleID); toggle.Length() > 0 {
			toggle.SetText(ToggleLabel)
		}
	}
}

// byID matches on the attribute value directly so IDs never need escaping
// for a CSS selector.
func byID(root *goquery.Selection, id string) *goquery.Selection {
	return root.Find("[id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.AttrOr("id", "") == id
	}).First()
}

func toggleFor(root, input *goquery.Selection, id string) *goquery.Selection {
	explicit := root.Find("[" + ToggleForAttr + "]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.AttrOr(ToggleForAttr, "") == id
	}).First()
	if explicit.Length() > 0 {
		return explicit
	}
	return input.Next()
}

// isNativeSubmit reports whether clicking s would submit a form without any
// script: a <button> of type submit (the default) or an <input> of type
// submit/image, owned by a form.
func isNativeSubmit(s *goquery.Selection) bool {
	typ := strings.ToLower(strings.TrimSpace(s.AttrOr("type", "")))
	switch goquery.NodeName(s) {
	case "button":
		if typ != "" && typ != "submit" {
			return false
		}
	case "input":
		if typ != "submit" && typ != "image" {
			return false
		}
	default:
		return false
	}
	if _, ok := s.Attr("form"); ok {
		return true
	}
	return s.Closest("form").Length() > 0
}

func setOrRemove(s *goquery.Selection, attr, value string) {
	if value == "" {
		s.RemoveAttr(attr)
		return
	}
	s.SetAttr(attr, value)
}

// withBackground replaces the background-color declaration in an inline
// style, keeping every other declaration in place.
func withBackground(style, color string) string {
	var decls []string
	for _, d := range strings.Split(style, ";") {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		name, _, _ := strings.Cut(d, ":")
		if strings.EqualFold(strings.TrimSpace(name), "background-color") {
			continue
		}
		decls = append(decls, d)
	}
	if color != "" {
		decls = append(decls, "background-color: "+color)
	}
	return strings.Join(decls, "; ")
}
