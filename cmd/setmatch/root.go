package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/streanger/setmatch"
	"github.com/streanger/setmatch/render"
)

// Output formats writable with --output. Without an output file the
// table is rendered to stdout instead.
const (
	formatCSV  = "csv"
	formatMD   = "md"
	formatHTML = "html"
	formatXLSX = "xlsx"
)

var formats = []string{formatCSV, formatMD, formatHTML, formatXLSX}

var rootCmd = struct {
	cobra.Command
	output  string
	format  string
	index   bool
	verbose bool
	maxSize int64
}{
	Command: cobra.Command{
		Use:     "setmatch [flags] <file|glob>...",
		Short:   "Match sets of strings from files into one membership table",
		Long: `Setmatch loads each given file as a set of lines and builds a table
showing, for every distinct line across all files, which files contain
it. The table is printed to the terminal or written as csv, md, html
or xlsx.`,
		Args:         cobra.MinimumNArgs(1),
		Version:      version,
		SilenceUsage: true,
	},
}

func init() {
	rootCmd.RunE = run
	flags := rootCmd.Flags()
	flags.StringVarP(&rootCmd.output, "output", "o", "",
		"Write the table to this file instead of the terminal")
	flags.StringVarP(&rootCmd.format, "format", "f", "",
		"Output format: "+strings.Join(formats, ", "))
	flags.BoolVarP(&rootCmd.index, "index", "i", false,
		"Prepend an index column")
	flags.BoolVarP(&rootCmd.verbose, "verbose", "v", false,
		"Log progress while loading files")
	flags.Int64Var(&rootCmd.maxSize, "max-size", defaultMaxSize,
		"Skip files larger than this many bytes, 0 disables the limit")
}

func run(cmd *cobra.Command, files []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.apply(cmd)
	format, err := resolveFormat(rootCmd.format, rootCmd.output)
	if err != nil {
		return err
	}

	logger := newLogger(rootCmd.verbose)
	defer logger.Sync()

	loader := setmatch.Loader{MaxSize: rootCmd.maxSize, Log: logger}
	sets, err := loader.Load(files)
	if err != nil {
		return err
	}
	if dups := setmatch.DuplicateNames(sets); len(dups) > 0 {
		logger.Warn("duplicate set names make the header ambiguous",
			zap.Strings("names", dups))
	}
	res, err := setmatch.Match(sets)
	if err != nil {
		return err
	}

	opts := render.Options{Index: rootCmd.index}
	if format == "" {
		return render.Table(os.Stdout, res, opts)
	}
	if err := write(format, res, opts); err != nil {
		return err
	}
	logger.Info("output saved", zap.String("file", rootCmd.output))
	return nil
}

func write(format string, res *setmatch.MatchResult, opts render.Options) error {
	if format == formatXLSX {
		return render.XLSX(rootCmd.output, res, opts)
	}
	out, err := os.Create(rootCmd.output)
	if err != nil {
		return err
	}
	if err := writeTo(out, format, res, opts); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func writeTo(w io.Writer, format string, res *setmatch.MatchResult, opts render.Options) error {
	switch format {
	case formatCSV:
		return render.CSV(w, res, opts)
	case formatMD:
		return render.Markdown(w, res, opts)
	case formatHTML:
		return render.HTML(w, res, opts)
	}
	return fmt.Errorf("unsupported format %q", format)
}

// resolveFormat combines the --format and --output flags. An explicit
// format needs an output file; an output file without format gets the
// format guessed from its suffix.
func resolveFormat(format, output string) (string, error) {
	if format != "" {
		if !slices.Contains(formats, format) {
			return "", fmt.Errorf("unknown format %q, expect one of: %s",
				format, strings.Join(formats, ", "))
		}
		if output == "" {
			return "", errors.New("--format requires --output")
		}
		return format, nil
	}
	if output == "" {
		return "", nil
	}
	suffix := strings.TrimPrefix(filepath.Ext(output), ".")
	if slices.Contains(formats, suffix) {
		return suffix, nil
	}
	return "", fmt.Errorf("--output requires --format or one of the suffixes: .%s",
		strings.Join(formats, ", ."))
}
