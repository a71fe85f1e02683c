package searchform

// InputType is the type attribute of a password input.
type InputType string

const (
	InputPassword InputType = "password"
	InputText     InputType = "text"
)

// ToggleLabel is the text shown on a reveal control in both states.
const ToggleLabel = "V"

// PasswordField is a password input together with the control that reveals
// it. The association is explicit: ToggleID names the control, it is never
// inferred from document order at toggle time.
type PasswordField struct {
	ID       string
	ToggleID string
	Type     InputType
	// Listen is set when the binding owns the toggle's click handler. A
	// toggle that calls togglePassword from an inline onclick already
	// toggles on its own.
	Listen bool
}

// ListenOnToggle reports whether a binding should attach its own click
// handler to a password toggle.
func ListenOnToggle(found, inlineHandler bool) bool {
	return found && !inlineHandler
}

// Toggle flips between masked and plain text. Any type other than "password"
// is treated as revealed, so it masks.
func (f PasswordField) Toggle() PasswordField {
	if f.Type == InputPassword {
		f.Type = InputText
	} else {
		f.Type = InputPassword
	}
	return f
}

// Revealed reports whether the value is shown as plain text.
func (f PasswordField) Revealed() bool {
	return f.Type != InputPassword
}
