package setmatch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/saintfish/chardet"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"
)

var (
	// ErrNoFiles reports a Load call without any file arguments.
	ErrNoFiles = errors.New("setmatch: empty list of files")
	// ErrNothingLoaded reports that none of the given files could be
	// loaded into a set.
	ErrNothingLoaded = errors.New("setmatch: nothing to process")
)

// Loader turns line-delimited text files into named sets. The set name
// is the file name without directory and extension, the members are
// the distinct lines of the file. Files that cannot be loaded are
// logged and skipped, they never abort the whole run.
//
// The zero value loads files of any size and logs nowhere.
type Loader struct {
	// MaxSize makes Load skip files larger than this many bytes.
	// MaxSize <= 0 disables the limit.
	MaxSize int64
	// Log receives progress and skip messages. nil disables logging.
	Log *zap.Logger
}

// Load expands the given glob patterns and loads every matched file
// into a named set, keeping pattern order and dropping duplicate
// paths. A pattern without glob matches is treated as a literal path
// so that a missing file is reported instead of vanishing silently.
//
// Load fails with ErrNoFiles when patterns is empty and with
// ErrNothingLoaded when no file survived loading.
func (ld *Loader) Load(patterns []string) ([]NamedSet, error) {
	if len(patterns) == 0 {
		return nil, ErrNoFiles
	}
	log := ld.Log
	if log == nil {
		log = zap.NewNop()
	}
	var sets []NamedSet
	for _, file := range expandGlobs(patterns, log) {
		if ld.MaxSize > 0 {
			info, err := os.Stat(file)
			if err != nil {
				log.Error("cannot stat file", zap.String("file", file), zap.Error(err))
				continue
			}
			if info.Size() > ld.MaxSize {
				log.Warn("file size is too big",
					zap.String("file", file),
					zap.Int64("size", info.Size()),
					zap.Int64("max", ld.MaxSize))
				continue
			}
		}
		content, err := os.ReadFile(file)
		if err != nil {
			log.Error("cannot read file", zap.String("file", file), zap.Error(err))
			continue
		}
		text, err := decode(content)
		if err != nil {
			log.Error("cannot decode file", zap.String("file", file), zap.Error(err))
			continue
		}
		members := lineSet(text)
		sets = append(sets, NamedSet{Name: stem(file), Members: members})
		log.Info("file loaded", zap.String("file", file), zap.Int("items", members.Len()))
	}
	if len(sets) == 0 {
		return nil, ErrNothingLoaded
	}
	return sets, nil
}

// expandGlobs resolves each pattern and concatenates the results,
// dropping paths already seen so a file counts as one column even when
// several patterns match it.
func expandGlobs(patterns []string, log *zap.Logger) []string {
	var files []string
	seen := make(map[string]struct{})
	add := func(f string) {
		if _, ok := seen[f]; !ok {
			seen[f] = struct{}{}
			files = append(files, f)
		}
	}
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			log.Error("bad file pattern", zap.String("pattern", pattern), zap.Error(err))
			continue
		}
		if len(matches) == 0 {
			add(pattern)
			continue
		}
		for _, m := range matches {
			add(m)
		}
	}
	return files
}

// decode returns content as a string. Valid UTF-8 passes through,
// anything else goes through charset detection.
func decode(content []byte) (string, error) {
	if utf8.Valid(content) {
		return string(content), nil
	}
	best, err := chardet.NewTextDetector().DetectBest(content)
	if err != nil {
		return "", err
	}
	enc, err := ianaindex.IANA.Encoding(best.Charset)
	if err != nil || enc == nil {
		return "", fmt.Errorf("unsupported charset %q", best.Charset)
	}
	decoded, err := enc.NewDecoder().Bytes(content)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// lineSet splits text into lines and collects them into a set. Empty
// lines count as the empty-string member; a trailing line break does
// not produce one.
func lineSet(text string) Set {
	s := make(Set)
	for len(text) > 0 {
		var line string
		if i := strings.IndexByte(text, '\n'); i < 0 {
			line, text = text, ""
		} else {
			line, text = text[:i], text[i+1:]
		}
		s.Add(strings.TrimSuffix(line, "\r"))
	}
	return s
}

// stem returns the file name without directory and extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
