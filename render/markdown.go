package render

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/streanger/setmatch"
)

// Markdown writes the result as a GitHub-flavored Markdown table.
// Present cells default to a check mark, absent cells stay empty.
func Markdown(w io.Writer, res *setmatch.MatchResult, opts Options) error {
	header, rows := cells(res, opts, textMarkers)
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(header)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	tw.SetCenterSeparator("|")
	tw.AppendBulk(rows)
	tw.Render()
	return nil
}
