package format

import (
	"io"

	"gopkg.in/yaml.v2"

	"github.com/anchore/fmri/fmri"
)

type yamlPresenter struct {
	list *fmri.List
}

func newYAMLPresenter(l *fmri.List) *yamlPresenter {
	return &yamlPresenter{list: l}
}

func (p *yamlPresenter) Present(output io.Writer) error {
	doc := NewDocument(p.list)

	by, err := yaml.Marshal(&doc)
	if err != nil {
		return err
	}
	_, err = output.Write(by)
	return err
}
