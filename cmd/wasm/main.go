//go:build js && wasm

// Package main is the browser build of the search form script. It binds the
// searchform Controller to the live page: DOM events are dispatched to the
// Controller and whatever it reports as changed is written back to the DOM.
//
// Build with:
//
//	GOOS=js GOARCH=wasm go build -o searchform.wasm ./cmd/wasm
package main

import (
	"fmt"
	"syscall/js"

	"github.com/pkordes/staysearch/internal/searchform"
)

// page holds the DOM nodes the Controller's IDs refer to.
type page struct {
	form       *searchform.Controller
	inputs     map[string]js.Value
	containers map[string]js.Value
	passwords  map[string]js.Value
	toggles    map[string]js.Value

	// funcs keeps every callback reachable for the lifetime of the page.
	funcs []js.Func
}

func main() {
	doc := js.Global().Get("document")

	p := &page{
		inputs:     make(map[string]js.Value),
		containers: make(map[string]js.Value),
		passwords:  make(map[string]js.Value),
		toggles:    make(map[string]js.Value),
	}
	p.form = searchform.New(searchform.Options{
		Navigator: searchform.NavigatorFunc(func(url string) {
			js.Global().Get("location").Set("href", url)
		}),
	})

	p.bindInputs(doc)
	p.bindSearchFields(doc)
	p.bindTrigger(doc)
	p.bindPasswords(doc)

	p.apply(p.form.Load(), js.Undefined())

	js.Global().Set("togglePassword", p.fn(func(_ js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		p.dispatch(searchform.Event{Kind: searchform.EventTogglePassword, Target: args[0].String()}, js.Undefined())
		return nil
	}))

	select {}
}

func (p *page) bindInputs(doc js.Value) {
	for _, id := range []string{
		searchform.ParamDestination,
		searchform.ParamCheckin,
		searchform.ParamCheckout,
		searchform.ParamGuests,
	} {
		id := id
		input := doc.Call("getElementById", id)
		if !input.Truthy() {
			continue
		}
		p.inputs[id] = input
		p.form.AddField(id, input.Get("value").String(), false)

		input.Call("addEventListener", searchform.ValueEvent(id), p.fn(func(this js.Value, args []js.Value) any {
			p.dispatch(searchform.Event{
				Kind:   searchform.EventChange,
				Target: id,
				Value:  this.Get("value").String(),
			}, first(args))
			return nil
		}))
	}
}

func (p *page) bindSearchFields(doc js.Value) {
	containers := doc.Call("querySelectorAll", searchform.SearchFieldSelector)
	for i := 0; i < containers.Length(); i++ {
		container := containers.Index(i)
		input := container.Call("querySelector", "input")
		if !input.Truthy() {
			continue
		}
		id := input.Get("id").String()
		if id == "" {
			id = fmt.Sprintf("search-field-%d", i)
			input.Set("id", id)
		}
		p.inputs[id] = input
		p.containers[id] = container
		p.form.AddField(id, input.Get("value").String(), true)

		p.on(container, "click", searchform.EventClick, id)
		p.on(container, "mouseenter", searchform.EventMouseEnter, id)
		p.on(container, "mouseleave", searchform.EventMouseLeave, id)
		p.on(input, "focus", searchform.EventFocus, id)
		p.on(input, "blur", searchform.EventBlur, id)
	}
}

func (p *page) bindTrigger(doc js.Value) {
	button := doc.Call("querySelector", searchform.SearchButtonSelector)
	if !button.Truthy() {
		return
	}
	if button.Call("hasAttribute", searchform.EnhanceAttr).Bool() {
		button.Set("type", "button")
	}
	trigger := searchform.Trigger{ID: button.Get("id").String(), NativeSubmit: isNativeSubmit(button)}
	p.form.SetTrigger(trigger)
	if trigger.NativeSubmit {
		return
	}
	p.on(button, "click", searchform.EventTrigger, trigger.ID)
}

func (p *page) bindPasswords(doc js.Value) {
	inputs := doc.Call("querySelectorAll", `input[type="password"]`)
	for i := 0; i < inputs.Length(); i++ {
		input := inputs.Index(i)
		id := input.Get("id").String()
		if id == "" {
			continue
		}

		escaped := js.Global().Get("CSS").Call("escape", id).String()
		toggle := doc.Call("querySelector", "["+searchform.ToggleForAttr+`="`+escaped+`"]`)
		if !toggle.Truthy() {
			toggle = input.Get("nextElementSibling")
		}

		// A toggle with an inline onclick calls window.togglePassword itself.
		inline := toggle.Truthy() && toggle.Call("hasAttribute", "onclick").Bool()
		f := searchform.PasswordField{
			ID:     id,
			Type:   searchform.InputPassword,
			Listen: searchform.ListenOnToggle(toggle.Truthy(), inline),
		}
		if toggle.Truthy() {
			f.ToggleID = toggle.Get("id").String()
			p.toggles[id] = toggle
		}
		if f.Listen {
			p.on(toggle, "click", searchform.EventTogglePassword, id)
		}
		p.passwords[id] = input
		p.form.AddPassword(f)
	}
}

// on dispatches kind for target whenever el fires event.
func (p *page) on(el js.Value, event string, kind searchform.EventKind, target string) {
	el.Call("addEventListener", event, p.fn(func(_ js.Value, args []js.Value) any {
		p.dispatch(searchform.Event{Kind: kind, Target: target}, first(args))
		return nil
	}))
}

func (p *page) dispatch(e searchform.Event, domEvent js.Value) {
	p.apply(p.form.Dispatch(e), domEvent)
}

func (p *page) apply(out searchform.Outcome, domEvent js.Value) {
	if out.PreventDefault && domEvent.Truthy() {
		domEvent.Call("preventDefault")
	}
	for _, id := range out.Changed {
		p.render(id)
	}
	if out.Focus != "" {
		if input, ok := p.inputs[out.Focus]; ok {
			input.Call("focus")
		}
	}
}

// render writes the Controller's view of id onto the DOM.
func (p *page) render(id string) {
	if f, ok := p.form.Field(id); ok {
		input := p.inputs[id]
		if input.Get("value").String() != f.State.Value {
			input.Set("value", f.State.Value)
		}
		if id == searchform.ParamCheckin || id == searchform.ParamCheckout {
			input.Set("min", f.Min)
		}
		if container, ok := p.containers[id]; ok {
			container.Get("style").Set("backgroundColor", f.State.Shade())
		}
	}
	if pw, ok := p.form.Password(id); ok {
		p.passwords[id].Set("type", string(pw.Type))
		if toggle, ok := p.toggles[id]; ok {
			toggle.Set("textContent", searchform.ToggleLabel)
		}
	}
}

func (p *page) fn(f func(this js.Value, args []js.Value) any) js.Func {
	jf := js.FuncOf(f)
	p.funcs = append(p.funcs, jf)
	return jf
}

// isNativeSubmit reports whether el submits its form without script help.
// The DOM reports a button's type as "submit" when the attribute is absent.
func isNativeSubmit(el js.Value) bool {
	if !el.Get("form").Truthy() {
		return false
	}
	typ := el.Get("type").String()
	switch el.Get("tagName").String() {
	case "BUTTON":
		return typ == "submit"
	case "INPUT":
		return typ == "submit" || typ == "image"
	default:
		return false
	}
}

func first(args []js.Value) js.Value {
	if len(args) == 0 {
		return js.Undefined()
	}
	return args[0]
}
