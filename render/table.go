package render

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/streanger/setmatch"
)

// Table writes the result as a bordered terminal table, the key column
// right-aligned and the presence columns centered.
func Table(w io.Writer, res *setmatch.MatchResult, opts Options) error {
	header, rows := cells(res, opts, textMarkers)
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(header)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	aligns := make([]int, len(header))
	for i := range aligns {
		aligns[i] = tablewriter.ALIGN_CENTER
	}
	keyCol := 0
	if opts.Index {
		keyCol = 1
	}
	aligns[keyCol] = tablewriter.ALIGN_RIGHT
	tw.SetColumnAlignment(aligns)
	tw.AppendBulk(rows)
	tw.Render()
	return nil
}
