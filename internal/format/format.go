package format

import (
	"strings"
)

var (
	UnknownFormat  = Format{name: "unknown"}
	TextFormat     = Format{name: "text"}
	TableFormat    = Format{name: "table"}
	JSONFormat     = Format{name: "json"}
	YAMLFormat     = Format{name: "yaml"}
	TemplateFormat = Format{name: "template"}
)

// Format is a dedicated type to represent a specific kind of presenter output format.
type Format struct {
	name string
}

func (f Format) String() string {
	return f.name
}

// Parse returns the presenter format specified by the given user input.
func Parse(userInput string) Format {
	switch strings.ToLower(strings.TrimSpace(userInput)) {
	case "", TextFormat.name:
		return TextFormat
	case TableFormat.name:
		return TableFormat
	case JSONFormat.name:
		return JSONFormat
	case YAMLFormat.name, "yml":
		return YAMLFormat
	case TemplateFormat.name:
		return TemplateFormat
	default:
		return UnknownFormat
	}
}

// AvailableFormats is a list of presenter format options available to users.
var AvailableFormats = []Format{
	TextFormat,
	TableFormat,
	JSONFormat,
	YAMLFormat,
	TemplateFormat,
}
