package fmri

import (
	"encoding/json"
	"fmt"

	"github.com/anchore/fmri/fmri/version"
)

type fmriJSON struct {
	Publisher   *Publisher       `json:"publisher"`
	PackageName string           `json:"packageName"`
	Version     *version.Version `json:"version"`
}

func (f FMRI) MarshalJSON() ([]byte, error) {
	doc := fmriJSON{
		PackageName: f.packageName,
		Version:     f.version,
	}
	if f.HasPublisher() {
		p := f.publisher
		doc.Publisher = &p
	}
	return json.Marshal(doc)
}

func (f *FMRI) UnmarshalJSON(data []byte) error {
	var doc fmriJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	decoded, err := New(doc.PackageName)
	if err != nil {
		return fmt.Errorf("unable to decode fmri: %w", err)
	}
	if doc.Publisher != nil {
		decoded.ChangePublisher(*doc.Publisher)
	}
	if doc.Version != nil {
		decoded.ChangeVersion(*doc.Version)
	}

	*f = *decoded
	return nil
}

// MarshalYAML renders the FMRI in its canonical string form.
func (f FMRI) MarshalYAML() (interface{}, error) {
	return f.String(), nil
}

func (f *FMRI) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}

	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*f = *parsed
	return nil
}
