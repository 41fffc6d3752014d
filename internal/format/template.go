package format

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/mitchellh/go-homedir"

	"github.com/anchore/fmri/fmri"
)

// templatePresenter formats output according to a user-provided Go text template. Template authors get
// the sprig function library and a document with both the parsed identifiers and their flattened rows.
type templatePresenter struct {
	list               *fmri.List
	pathToTemplateFile string
}

type templateDocument struct {
	FMRIs []fmri.FMRI
	Rows  []Row
}

func newTemplatePresenter(l *fmri.List, pathToTemplateFile string) *templatePresenter {
	return &templatePresenter{
		list:               l,
		pathToTemplateFile: pathToTemplateFile,
	}
}

func (p *templatePresenter) Present(output io.Writer) error {
	expandedPathToTemplateFile, err := homedir.Expand(p.pathToTemplateFile)
	if err != nil {
		return fmt.Errorf("unable to expand path %q", p.pathToTemplateFile)
	}

	templateContents, err := os.ReadFile(expandedPathToTemplateFile)
	if err != nil {
		return fmt.Errorf("unable to get output template: %w", err)
	}

	tmpl, err := template.New(expandedPathToTemplateFile).Funcs(sprig.TxtFuncMap()).Parse(string(templateContents))
	if err != nil {
		return fmt.Errorf("unable to parse template: %w", err)
	}

	doc := templateDocument{
		FMRIs: p.list.FMRIs(),
		Rows:  NewRows(p.list),
	}

	if err := tmpl.Execute(output, doc); err != nil {
		return fmt.Errorf("unable to execute supplied template: %w", err)
	}
	return nil
}
