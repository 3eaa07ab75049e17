package setmatch

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// KeyColumn is the label of the leading key column in every header.
const KeyColumn = "key"

// ErrEmptyName reports a named set whose name is empty. Match wraps it
// with the index of the offending set.
var ErrEmptyName = errors.New("setmatch: named set with empty name")

// NamedSet is one input column for Match: the column name and the set
// of strings behind it. Name uniqueness is the caller's business, see
// DuplicateNames.
type NamedSet struct {
	Name    string
	Members Set
}

// Row is one line of a match result: the key and one presence marker
// per input set, in input order.
type Row struct {
	Key      string
	Presence []bool
}

// MatchResult is the canonical (header, table) form every renderer
// consumes. Header holds the key column label followed by the set
// names in input order; every row has exactly len(Header) cells.
// A result is never modified after Match returns it.
type MatchResult struct {
	Header []string
	Rows   []Row
}

// Match builds the membership table for the given named sets. The row
// keys are the union of all members, sorted lexicographically; cell
// (key, i) is true iff key is a member of sets[i]. Match is pure and
// deterministic: identical input yields an identical result.
//
// A set with an empty name fails with ErrEmptyName before anything is
// matched. Zero sets is not an error: the result has the header
// ["key"] and no rows.
func Match(sets []NamedSet) (*MatchResult, error) {
	header := make([]string, 1, len(sets)+1)
	header[0] = KeyColumn
	for i, s := range sets {
		if s.Name == "" {
			return nil, fmt.Errorf("set %d: %w", i, ErrEmptyName)
		}
		header = append(header, s.Name)
	}
	union := unionMembers(sets)
	keys := make([]string, 0, len(union))
	for key := range union {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	rows := make([]Row, len(keys))
	for i, key := range keys {
		presence := make([]bool, len(sets))
		for j, s := range sets {
			presence[j] = s.Members.Has(key)
		}
		rows[i] = Row{Key: key, Presence: presence}
	}
	return &MatchResult{Header: header, Rows: rows}, nil
}

// MatchSets matches anonymous sets, numbering the columns "1".."N".
func MatchSets(members []Set) (*MatchResult, error) {
	sets := make([]NamedSet, len(members))
	for i, m := range members {
		sets[i] = NamedSet{Name: strconv.Itoa(i + 1), Members: m}
	}
	return Match(sets)
}

func unionMembers(sets []NamedSet) Set {
	members := make([]Set, len(sets))
	for i, s := range sets {
		members[i] = s.Members
	}
	return Union(members...)
}

// DuplicateNames returns the set names that occur more than once, in
// order of first occurrence. Match accepts duplicate names and returns
// the ambiguous header as is; callers wanting an unambiguous table
// should warn or reject based on this.
func DuplicateNames(sets []NamedSet) []string {
	count := make(map[string]int, len(sets))
	for _, s := range sets {
		count[s.Name]++
	}
	var dups []string
	for _, s := range sets {
		if count[s.Name] > 1 {
			dups = append(dups, s.Name)
			count[s.Name] = 0
		}
	}
	return dups
}
