package config

import (
	"bytes"
	"os"
	"strings"
	"text/template"
)

// ExpandEnv expands environment variables in YAML content using Go
// templates with {{.VAR_NAME}} syntax. Plain $ stays untouched, so literal
// dollar signs in objectives, passwords, or patterns survive expansion.
//
// Examples:
//   - {{.NOTIFY_WEBHOOK_URL}} → value of NOTIFY_WEBHOOK_URL
//   - {{.REDIS_HOST}}:{{.REDIS_PORT}} → host:port with both expanded
//   - "win-win $10 deal" → preserved literally
//
// Missing variables expand to the empty string; validation catches required
// fields left empty. On template parse or execution errors the original
// data is returned so the YAML parser can produce the clearer message.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return data
	}

	envMap := make(map[string]string)
	for _, env := range os.Environ() {
		if key, value, ok := strings.Cut(env, "="); ok {
			envMap[key] = value
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, envMap); err != nil {
		return data
	}
	return buf.Bytes()
}
