package stringutil

import (
	"bytes"
	"text/template"
)

// Tprintf renders a string from a given template string and field values. If the template cannot be rendered
// (for instance a key is missing) the template text is returned unchanged.
func Tprintf(tmpl string, data map[string]interface{}) string {
	t, err := template.New("").Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return tmpl
	}
	buf := &bytes.Buffer{}
	if err := t.Execute(buf, data); err != nil {
		return tmpl
	}
	return buf.String()
}
