// Package render turns a setmatch.MatchResult into concrete output
// formats: CSV, GitHub-flavored Markdown, a styled sortable HTML page,
// an XLSX workbook and a plain terminal table. All renderers read the
// result, they never modify it.
package render

import (
	"strconv"

	"github.com/streanger/setmatch"
)

// Markers is the pair of symbols a presence cell is rendered with.
type Markers struct {
	True  string
	False string
}

// Per-format defaults. CSV keeps literal booleans, the text-based
// formats use a check mark, XLSX uses the heavy check mark.
var (
	csvMarkers  = Markers{True: "true", False: "false"}
	textMarkers = Markers{True: "✓"}
	xlsxMarkers = Markers{True: "✔"}
)

// Options are the presentational extras shared by all formats.
type Options struct {
	// Index prepends a 1-based "Index" column. This is a view concern:
	// the column exists only in the rendered output, never in the
	// match result.
	Index bool
	// Markers override the format's default presence symbols.
	Markers *Markers
	// Title of the HTML page; other formats ignore it.
	Title string
}

const indexColumn = "Index"

func (o Options) markers(def Markers) Markers {
	if o.Markers != nil {
		return *o.Markers
	}
	return def
}

// cells flattens the result into string cells, applying the markers
// and the optional index column.
func cells(res *setmatch.MatchResult, opts Options, def Markers) (header []string, rows [][]string) {
	m := opts.markers(def)
	if opts.Index {
		header = append(header, indexColumn)
	}
	header = append(header, res.Header...)
	rows = make([][]string, 0, len(res.Rows))
	for i, r := range res.Rows {
		row := make([]string, 0, len(header))
		if opts.Index {
			row = append(row, strconv.Itoa(i+1))
		}
		row = append(row, r.Key)
		for _, present := range r.Presence {
			if present {
				row = append(row, m.True)
			} else {
				row = append(row, m.False)
			}
		}
		rows = append(rows, row)
	}
	return header, rows
}
