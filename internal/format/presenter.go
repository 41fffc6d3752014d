package format

import (
	"io"

	"github.com/anchore/fmri/fmri"
)

// Presenter writes a rendering of a set of identifiers.
type Presenter interface {
	Present(io.Writer) error
}

type PresentationConfig struct {
	TemplateFilePath string
	WithColor        bool
}

// GetPresenter retrieves a Presenter that matches a CLI option
func GetPresenter(format Format, c PresentationConfig, l *fmri.List) Presenter {
	switch format {
	case TextFormat:
		return newTextPresenter(l)
	case TableFormat:
		return newTablePresenter(l, c.WithColor)
	case JSONFormat:
		return newJSONPresenter(l)
	case YAMLFormat:
		return newYAMLPresenter(l)
	case TemplateFormat:
		return newTemplatePresenter(l, c.TemplateFilePath)
	default:
		return nil
	}
}
