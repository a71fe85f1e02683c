package searchform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/staysearch/internal/searchform"
)

func apply(s searchform.FieldState, kinds ...searchform.EventKind) searchform.FieldState {
	for _, k := range kinds {
		s = s.Apply(k)
	}
	return s
}

func TestFieldState_transitions(t *testing.T) {
	tests := []struct {
		name   string
		events []searchform.EventKind
		want   searchform.Visual
		shade  string
	}{
		{"initial", nil, searchform.VisualDefault, searchform.ShadeDefault},
		{"hover", []searchform.EventKind{searchform.EventMouseEnter}, searchform.VisualHover, searchform.ShadeHover},
		{"hover then leave", []searchform.EventKind{searchform.EventMouseEnter, searchform.EventMouseLeave}, searchform.VisualDefault, searchform.ShadeDefault},
		{"focus", []searchform.EventKind{searchform.EventFocus}, searchform.VisualFocused, searchform.ShadeFocused},
		{"click focuses", []searchform.EventKind{searchform.EventClick}, searchform.VisualFocused, searchform.ShadeFocused},
		{"hover while focused keeps focus shade", []searchform.EventKind{searchform.EventFocus, searchform.EventMouseEnter}, searchform.VisualFocused, searchform.ShadeFocused},
		{"leave while focused keeps focus shade", []searchform.EventKind{searchform.EventMouseEnter, searchform.EventFocus, searchform.EventMouseLeave}, searchform.VisualFocused, searchform.ShadeFocused},
		{"blur reverts to default", []searchform.EventKind{searchform.EventFocus, searchform.EventBlur}, searchform.VisualDefault, searchform.ShadeDefault},
		{"blur while hovered reverts to default", []searchform.EventKind{searchform.EventMouseEnter, searchform.EventFocus, searchform.EventBlur}, searchform.VisualDefault, searchform.ShadeDefault},
		{"re-enter after blur hovers", []searchform.EventKind{searchform.EventFocus, searchform.EventBlur, searchform.EventMouseEnter}, searchform.VisualHover, searchform.ShadeHover},
		{"change is ignored", []searchform.EventKind{searchform.EventMouseEnter, searchform.EventChange}, searchform.VisualHover, searchform.ShadeHover},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := apply(searchform.FieldState{}, tc.events...)

			assert.Equal(t, tc.want, got.Visual())
			assert.Equal(t, tc.shade, got.Shade())
		})
	}
}

func TestFieldState_applyKeepsValue(t *testing.T) {
	s := apply(searchform.FieldState{Value: "Rome"}, searchform.EventFocus, searchform.EventBlur)

	assert.Equal(t, "Rome", s.Value)
}

func TestVisual_String(t *testing.T) {
	assert.Equal(t, "default", searchform.VisualDefault.String())
	assert.Equal(t, "hover", searchform.VisualHover.String())
	assert.Equal(t, "focused", searchform.VisualFocused.String())
}
