package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestExpandEnv(t *testing.T) {
	tests := []struct {
		name  string
		input string
		env   map[string]string
		want  string
	}{
		{
			name:  "simple substitution with {{.VAR}}",
			input: "runtime_address: {{.INTERVIEW_RUNTIME_ADDR}}",
			env:   map[string]string{"INTERVIEW_RUNTIME_ADDR": "runtime:50061"},
			want:  "runtime_address: runtime:50061",
		},
		{
			name:  "literal ${VAR} is NOT expanded",
			input: "objective: find a ${TEAM} partner",
			env:   map[string]string{"TEAM": "sales"},
			want:  "objective: find a ${TEAM} partner",
		},
		{
			name:  "literal $ survives untouched",
			input: "objective: split a $40 cab to the airport",
			env:   map[string]string{},
			want:  "objective: split a $40 cab to the airport",
		},
		{
			name:  "multiple substitutions in one line",
			input: "runtime_address: {{.HOST}}:{{.PORT}}",
			env: map[string]string{
				"HOST": "interview.internal",
				"PORT": "50061",
			},
			want: "runtime_address: interview.internal:50061",
		},
		{
			name:  "missing variable expands to empty",
			input: "webhook_url_env: {{.MISSING_VAR}}",
			env:   map[string]string{},
			want:  "webhook_url_env: ",
		},
		{
			name:  "no substitution when no variables",
			input: "worker_count: 4",
			env:   map[string]string{"UNUSED": "value"},
			want:  "worker_count: 4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			got := ExpandEnv([]byte(tt.input))
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestExpandEnvInvalidTemplate(t *testing.T) {
	// Unterminated action: ExpandEnv must hand the original bytes back so
	// the YAML parser reports the real problem.
	input := []byte("broken: {{.UNTERMINATED")
	got := ExpandEnv(input)
	assert.Equal(t, input, got)
}

func TestExpandEnvFullDocument(t *testing.T) {
	t.Setenv("INTERVIEW_RUNTIME_ADDR", "runtime.internal:50061")

	input := []byte(`
system:
  interview:
    runtime_address: {{.INTERVIEW_RUNTIME_ADDR}}
    max_owner_turns: 3
`)

	var parsed VenndYAMLConfig
	err := yaml.Unmarshal(ExpandEnv(input), &parsed)
	assert.NoError(t, err)
	assert.NotNil(t, parsed.System)
	assert.NotNil(t, parsed.System.Interview)
	assert.Equal(t, "runtime.internal:50061", parsed.System.Interview.RuntimeAddress)
	assert.Equal(t, 3, parsed.System.Interview.MaxOwnerTurns)
}
