package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name      string
		template  string
		variables []string
		values    map[string]string
		want      string
	}{
		{
			name:      "substitutes declared variables",
			template:  "Hello {{name}}, your interview is on {{date}}.",
			variables: []string{"name", "date"},
			values:    map[string]string{"name": "Ada", "date": "2024-06-01"},
			want:      "Hello Ada, your interview is on 2024-06-01.",
		},
		{
			name:      "missing value leaves placeholder",
			template:  "Hello {{name}}, see you on {{date}}.",
			variables: []string{"name", "date"},
			values:    map[string]string{"name": "Ada"},
			want:      "Hello Ada, see you on {{date}}.",
		},
		{
			name:      "undeclared variable is not substituted",
			template:  "Hello {{name}}.",
			variables: []string{},
			values:    map[string]string{"name": "Ada"},
			want:      "Hello {{name}}.",
		},
		{
			name:      "repeated placeholder",
			template:  "{{name}} and {{name}} again",
			variables: []string{"name"},
			values:    map[string]string{"name": "Ada"},
			want:      "Ada and Ada again",
		},
		{
			name:     "no variables",
			template: "Plain text.",
			want:     "Plain text.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.template, tt.variables, tt.values))
		})
	}
}
