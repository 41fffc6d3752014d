package format

import (
	"encoding/json"
	"io"

	"github.com/anchore/fmri/fmri"
)

type jsonPresenter struct {
	list *fmri.List
}

func newJSONPresenter(l *fmri.List) *jsonPresenter {
	return &jsonPresenter{list: l}
}

// Present writes the structured form of every identifier.
func (p *jsonPresenter) Present(output io.Writer) error {
	doc := NewDocument(p.list)

	enc := json.NewEncoder(output)
	// prevent > and < from being escaped in the payload
	enc.SetEscapeHTML(false)
	enc.SetIndent("", " ")
	return enc.Encode(&doc)
}
