package format

import (
	"github.com/anchore/fmri/fmri"
	"github.com/anchore/fmri/fmri/version"
)

// Document is the structured payload used by the json and yaml presenters.
type Document struct {
	FMRIs []fmri.FMRI `json:"fmris" yaml:"fmris"`
}

// Row is a flattened view of one FMRI, one string per column.
type Row struct {
	FMRI        string
	Publisher   string
	PackageName string
	Component   string
	Build       string
	Branch      string
	Timestamp   string
}

func NewDocument(l *fmri.List) Document {
	fmris := l.FMRIs()
	if fmris == nil {
		fmris = []fmri.FMRI{}
	}
	return Document{FMRIs: fmris}
}

func NewRows(l *fmri.List) []Row {
	var rows []Row
	for _, f := range l.FMRIs() {
		row := Row{
			FMRI:        f.String(),
			Publisher:   f.Publisher().Name(),
			PackageName: f.PackageName(),
		}
		if v := f.Version(); v != nil {
			row.Component = slotText(v, version.ComponentSlot)
			row.Build = slotText(v, version.BuildSlot)
			row.Branch = slotText(v, version.BranchSlot)
			row.Timestamp = slotText(v, version.TimestampSlot)
		}
		rows = append(rows, row)
	}
	return rows
}

func slotText(v *version.Version, slot version.Slot) string {
	s := v.Get(slot)
	if version.IsAbsent(s) {
		return ""
	}
	return s.String()
}

func (r Row) columns() []string {
	return []string{r.PackageName, r.Publisher, r.Component, r.Build, r.Branch, r.Timestamp}
}
