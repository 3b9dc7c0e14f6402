package components

import "strings"

// ClassificationRule maps display-name keywords to a semantic component
// type. Rules are evaluated in order; the first keyword hit wins.
type ClassificationRule struct {
	Type     string   `json:"type" toml:"type"`
	Keywords []string `json:"keywords" toml:"keywords"`
}

// DefaultRules is the built-in keyword table. It is data, not code, so
// deployments can override it through configuration.
var DefaultRules = []ClassificationRule{
	{Type: "button", Keywords: []string{"button"}},
	{Type: "input", Keywords: []string{"input", "field"}},
	{Type: "card", Keywords: []string{"card"}},
	{Type: "icon", Keywords: []string{"icon"}},
	{Type: "avatar", Keywords: []string{"avatar"}},
	{Type: "checkbox", Keywords: []string{"checkbox"}},
	{Type: "radio", Keywords: []string{"radio"}},
	{Type: "toggle", Keywords: []string{"toggle", "switch"}},
	{Type: "dropdown", Keywords: []string{"dropdown", "select"}},
	{Type: "menu", Keywords: []string{"menu"}},
	{Type: "tab", Keywords: []string{"tab"}},
	{Type: "alert", Keywords: []string{"alert", "notification"}},
	{Type: "modal", Keywords: []string{"modal", "dialog"}},
	{Type: "tooltip", Keywords: []string{"tooltip"}},
	{Type: "badge", Keywords: []string{"badge"}},
	{Type: "progress", Keywords: []string{"progress"}},
	{Type: "pagination", Keywords: []string{"pagination"}},
	{Type: "slider", Keywords: []string{"slider"}},
	{Type: "table", Keywords: []string{"table"}},
}

// interactiveStates are variant values that imply an interactive component
// when they appear under a State dimension.
var interactiveStates = map[string]bool{
	"hover": true, "focus": true, "active": true, "pressed": true, "disabled": true,
}

type Classifier struct {
	Rules []ClassificationRule
}

func NewClassifier(rules []ClassificationRule) *Classifier {
	if len(rules) == 0 {
		rules = DefaultRules
	}
	return &Classifier{Rules: rules}
}

// Classify resolves a semantic type for a component or set. Keyword rules
// run against the display name first; failing those, a State dimension with
// interactive values classifies as "interactive"; everything else is the
// generic "component".
func (c *Classifier) Classify(name string, variantProps map[string][]string) string {
	lower := strings.ToLower(name)
	for _, rule := range c.Rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Type
			}
		}
	}

	for _, v := range variantProps["State"] {
		if interactiveStates[strings.ToLower(v)] {
			return "interactive"
		}
	}
	return "component"
}

// singleValues adapts one component's variant map into the aggregate shape
// Classify expects.
func singleValues(props map[string]string) map[string][]string {
	out := make(map[string][]string, len(props))
	for k, v := range props {
		out[k] = []string{v}
	}
	return out
}
