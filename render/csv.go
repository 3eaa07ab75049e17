package render

import (
	"encoding/csv"
	"io"

	"github.com/streanger/setmatch"
)

// CSV writes the result as comma-separated values, header first.
// Presence cells default to true/false.
func CSV(w io.Writer, res *setmatch.MatchResult, opts Options) error {
	header, rows := cells(res, opts, csvMarkers)
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
