package fmri

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/scylladb/go-set/strset"

	"github.com/anchore/fmri/internal/log"
)

const commentPrefix = "#"

// List is an ordered collection of FMRIs.
type List struct {
	fmris []FMRI
}

func NewList(fmris ...FMRI) *List {
	l := &List{}
	l.Add(fmris...)
	return l
}

func (l *List) Add(fmris ...FMRI) {
	l.fmris = append(l.fmris, fmris...)
}

// FMRIs returns a copy of the entries in list order.
func (l *List) FMRIs() []FMRI {
	out := make([]FMRI, len(l.fmris))
	copy(out, l.fmris)
	return out
}

func (l *List) Len() int {
	return len(l.fmris)
}

func (l *List) IsEmpty() bool {
	return len(l.fmris) == 0
}

// Contains reports whether an entry names the same package as f, regardless of publisher and version.
func (l *List) Contains(f FMRI) bool {
	for _, entry := range l.fmris {
		if entry.PackageNameEqual(f) {
			return true
		}
	}
	return false
}

// PackageNames returns the distinct package names, sorted.
func (l *List) PackageNames() []string {
	names := strset.New()
	for _, f := range l.fmris {
		names.Add(f.PackageName())
	}
	list := names.List()
	sort.Strings(list)
	return list
}

// Sort orders the entries from oldest to newest version. Entries that compare equal keep their relative order.
func (l *List) Sort() {
	sort.SliceStable(l.fmris, func(i, j int) bool {
		return l.fmris[i].Compare(l.fmris[j]) < 0
	})
}

// Reverse flips the order of the entries.
func (l *List) Reverse() {
	for i, j := 0, len(l.fmris)-1; i < j; i, j = i+1, j-1 {
		l.fmris[i], l.fmris[j] = l.fmris[j], l.fmris[i]
	}
}

// Newest keeps one entry per package name: the one with the greatest version. On a tie the earlier entry
// wins. Packages appear in the order they were first seen.
func (l *List) Newest() *List {
	index := make(map[string]int)
	var newest []FMRI
	for _, f := range l.fmris {
		idx, ok := index[f.PackageName()]
		if !ok {
			index[f.PackageName()] = len(newest)
			newest = append(newest, f)
			continue
		}
		if f.Compare(newest[idx]) > 0 {
			newest[idx] = f
		}
	}
	return &List{fmris: newest}
}

// Unique drops entries that repeat an earlier entry exactly (same publisher, package name and version text).
func (l *List) Unique() (*List, error) {
	seen := strset.New()
	out := &List{}
	for _, f := range l.fmris {
		fp, err := f.Fingerprint()
		if err != nil {
			return nil, err
		}
		if seen.Has(fp) {
			continue
		}
		seen.Add(fp)
		out.Add(f)
	}
	return out, nil
}

func (l *List) String() string {
	parts := make([]string, len(l.fmris))
	for i, f := range l.fmris {
		parts[i] = f.String()
	}
	return strings.Join(parts, ", ")
}

// Enumerate renders one numbered entry per line.
func (l *List) Enumerate() string {
	var sb strings.Builder
	for i, f := range l.fmris {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, f.String())
	}
	return sb.String()
}

// ParseList parses each non-blank, non-comment line. Every line that fails is reported in the returned error;
// the list holds all lines that parsed.
func ParseList(lines []string) (*List, error) {
	var errs error
	l := &List{}
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		f, err := Parse(line)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("line %d: %w", i+1, err))
			continue
		}
		l.Add(*f)
	}

	if errs != nil {
		log.Warnf("%d identifiers parsed, some lines were rejected", l.Len())
	}
	return l, errs
}

// ReadList parses one identifier per line from the reader (see ParseList).
func ReadList(reader io.Reader) (*List, error) {
	var lines []string
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("unable to read identifiers: %w", err)
	}
	return ParseList(lines)
}
