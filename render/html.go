package render

import (
	_ "embed"
	"html/template"
	"io"
	"strconv"

	"github.com/streanger/setmatch"
)

//go:embed assets/style.css
var styleCSS string

//go:embed assets/sort.js
var sortJS string

//go:embed assets/sort_index.js
var sortIndexJS string

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>{{.Title}}</title>
    <meta charset="utf-8">
    <style>
{{.Style}}
    </style>
    <script>
{{.Script}}
    </script>
</head>
<body onload=main()>
    <table class="styled-table">
    <thead>
        <tr>
{{- range .Header}}
            <th><button>{{.}}</button></th>
{{- end}}
        </tr>
    </thead>
    <tbody>
{{- range .Rows}}
        <tr>
{{- range .}}
            <td{{if .Marker}} class="marker"{{end}}>{{.Text}}</td>
{{- end}}
        </tr>
{{- end}}
    </tbody>
    </table>
</body>
</html>
`))

type pageData struct {
	Title  string
	Style  template.CSS
	Script template.JS
	Header []string
	Rows   [][]pageCell
}

type pageCell struct {
	Text   string
	Marker bool
}

// HTML writes the result as a styled page whose header buttons re-sort
// the table client-side. With Options.Index the sorter renumbers the
// index column after each re-sort instead of sorting by it.
func HTML(w io.Writer, res *setmatch.MatchResult, opts Options) error {
	m := opts.markers(textMarkers)
	title := opts.Title
	if title == "" {
		title = "setmatch"
	}
	var header []string
	if opts.Index {
		header = append(header, indexColumn)
	}
	header = append(header, res.Header...)
	rows := make([][]pageCell, 0, len(res.Rows))
	for i, r := range res.Rows {
		row := make([]pageCell, 0, len(header))
		if opts.Index {
			row = append(row, pageCell{Text: strconv.Itoa(i + 1)})
		}
		row = append(row, pageCell{Text: r.Key})
		for _, present := range r.Presence {
			if present {
				row = append(row, pageCell{Text: m.True, Marker: true})
			} else {
				row = append(row, pageCell{Text: m.False})
			}
		}
		rows = append(rows, row)
	}
	script := sortJS
	if opts.Index {
		script = sortIndexJS
	}
	return pageTmpl.Execute(w, pageData{
		Title:  title,
		Style:  template.CSS(styleCSS),
		Script: template.JS(script),
		Header: header,
		Rows:   rows,
	})
}
