package format

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/anchore/fmri/fmri"
)

type tablePresenter struct {
	list      *fmri.List
	withColor bool
}

func newTablePresenter(l *fmri.List, withColor bool) *tablePresenter {
	return &tablePresenter{
		list:      l,
		withColor: withColor,
	}
}

func (p *tablePresenter) Present(output io.Writer) error {
	rows := NewRows(p.list)

	if len(rows) == 0 {
		_, err := io.WriteString(output, "No packages found\n")
		return err
	}

	table := tablewriter.NewWriter(output)
	table.SetHeader([]string{"Name", "Publisher", "Component", "Build", "Branch", "Timestamp"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetAutoFormatHeaders(true)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, row := range rows {
		if p.withColor {
			table.Rich(row.columns(), []tablewriter.Colors{{tablewriter.Bold}, {tablewriter.FgCyanColor}, {}, {}, {}, {tablewriter.FgHiBlackColor}})
			continue
		}
		table.Append(row.columns())
	}

	table.Render()

	return nil
}
