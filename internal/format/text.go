package format

import (
	"fmt"
	"io"

	"github.com/anchore/fmri/fmri"
)

type textPresenter struct {
	list *fmri.List
}

func newTextPresenter(l *fmri.List) *textPresenter {
	return &textPresenter{list: l}
}

// Present writes one canonical identifier per line.
func (p *textPresenter) Present(output io.Writer) error {
	for _, f := range p.list.FMRIs() {
		if _, err := fmt.Fprintln(output, f.String()); err != nil {
			return err
		}
	}
	return nil
}
