package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyByKeyword(t *testing.T) {
	c := NewClassifier(nil)

	cases := map[string]string{
		"Primary Button":  "button",
		"Text Field":      "input",
		"Profile Card":    "card",
		"Nav/Menu Item":   "menu",
		"Toggle Switch":   "toggle",
		"Alert Banner":    "alert",
		"Confirm Dialog":  "modal",
		"Data Table Row":  "table",
		"Stepper Control": "component",
	}
	for name, want := range cases {
		assert.Equal(t, want, c.Classify(name, nil), "name %q", name)
	}
}

func TestClassifyKeywordOrderWins(t *testing.T) {
	// "button" precedes "icon" in the table, so an icon button is a button.
	c := NewClassifier(nil)
	assert.Equal(t, "button", c.Classify("Icon Button", nil))
}

func TestClassifyInteractiveFromState(t *testing.T) {
	c := NewClassifier(nil)

	props := map[string][]string{"State": {"Default", "Hover"}}
	assert.Equal(t, "interactive", c.Classify("Widget", props))

	noStates := map[string][]string{"Size": {"Large"}}
	assert.Equal(t, "component", c.Classify("Widget", noStates))
}

func TestClassifyCustomRules(t *testing.T) {
	c := NewClassifier([]ClassificationRule{
		{Type: "hero", Keywords: []string{"hero", "banner"}},
	})
	assert.Equal(t, "hero", c.Classify("Homepage Banner", nil))
	// Custom rules replace the default table entirely.
	assert.Equal(t, "component", c.Classify("Primary Button", nil))
}
