package email

import "strings"

// Render substitutes {{variable}} placeholders in a template string. Only the
// declared variable names are substituted; unknown placeholders are left in
// place, matching how the dashboard has always rendered templates.
func Render(template string, variables []string, values map[string]string) string {
	out := template
	for _, name := range variables {
		value, ok := values[name]
		if !ok {
			continue
		}
		out = strings.ReplaceAll(out, "{{"+name+"}}", value)
	}
	return out
}
