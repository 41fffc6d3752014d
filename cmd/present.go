package cmd

import (
	"fmt"
	"io"

	"github.com/anchore/fmri/fmri"
	"github.com/anchore/fmri/internal/format"
)

func present(out io.Writer, l *fmri.List) error {
	presenter := format.GetPresenter(appConfig.OutputFormat, format.PresentationConfig{
		TemplateFilePath: appConfig.OutputTemplateFile,
		WithColor:        isTerminal(out),
	}, l)
	if presenter == nil {
		return fmt.Errorf("unsupported output format: %s", appConfig.OutputFormat)
	}
	return presenter.Present(out)
}
