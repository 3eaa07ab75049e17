package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		name, format, output string
		want                 string
		wantErr              bool
	}{
		{name: "explicit", format: "csv", output: "out.dat", want: "csv"},
		{name: "guessed from suffix", output: "out.md", want: "md"},
		{name: "format wins over suffix", format: "html", output: "out.csv", want: "html"},
		{name: "terminal table", want: ""},
		{name: "format without output", format: "csv", wantErr: true},
		{name: "unknown format", format: "pdf", output: "out.pdf", wantErr: true},
		{name: "unknown suffix", output: "out.pdf", wantErr: true},
		{name: "no suffix", output: "out", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveFormat(tt.format, tt.output)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
