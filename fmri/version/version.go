package version

import (
	"fmt"
	"strings"

	"github.com/anchore/fmri/fmri/fmrierr"
	"github.com/anchore/fmri/internal/log"
)

const fmriPrefix = "fmri="

// Version is the version clause of an FMRI, e.g. "@2.1.1,5.11-2017.0.0.0:20171212T185746Z". Each slot
// is independently present or absent.
type Version struct {
	component Segments
	build     Segments
	branch    Segments
	timestamp Segments
}

// New parses a version clause. The leading '@' may be omitted.
func New(raw string) (*Version, error) {
	text := raw
	if !strings.HasPrefix(text, string(componentMarker)) {
		text = string(componentMarker) + text
	}

	if err := checkDelimiters(text); err != nil {
		return nil, err
	}

	var v Version
	for _, slot := range Slots {
		s, err := Extract(text, slot.Marker())
		if err != nil {
			log.Debugf("unable to parse version %q: %+v", raw, err)
			return nil, err
		}
		v.set(s)
	}

	return &v, nil
}

// checkDelimiters rejects clauses where a slot marker is repeated.
func checkDelimiters(text string) error {
	for _, slot := range Slots {
		if n := strings.Count(text, string(slot.Marker())); n > 1 {
			return fmrierr.New(fmrierr.MalformedVersionClause, text, fmt.Sprintf("%q appears %d times", slot.Marker(), n))
		}
	}
	return nil
}

// ParseFromRawFMRI returns the version clause of a raw FMRI, or nil if the FMRI has none.
func ParseFromRawFMRI(raw string) (*Version, error) {
	raw = strings.TrimPrefix(raw, fmriPrefix)

	idx := strings.IndexByte(raw, componentMarker)
	if idx < 0 {
		return nil, nil
	}

	return New(raw[idx:])
}

func (v *Version) set(s Segments) {
	switch s.Slot() {
	case ComponentSlot:
		v.component = s
	case BuildSlot:
		v.build = s
	case BranchSlot:
		v.branch = s
	case TimestampSlot:
		v.timestamp = s
	}
}

func orAbsent(s Segments) Segments {
	if s == nil {
		return Absent{}
	}
	return s
}

func (v Version) Component() Segments { return orAbsent(v.component) }
func (v Version) Build() Segments     { return orAbsent(v.build) }
func (v Version) Branch() Segments    { return orAbsent(v.branch) }
func (v Version) Timestamp() Segments { return orAbsent(v.timestamp) }

// Get returns the content of the given slot.
func (v Version) Get(slot Slot) Segments {
	switch slot {
	case ComponentSlot:
		return v.Component()
	case BuildSlot:
		return v.Build()
	case BranchSlot:
		return v.Branch()
	case TimestampSlot:
		return v.Timestamp()
	}
	return Absent{}
}

// IsEmpty reports whether every slot is absent.
func (v Version) IsEmpty() bool {
	for _, slot := range Slots {
		if !IsAbsent(v.Get(slot)) {
			return false
		}
	}
	return true
}

// Compare returns 0 if v == other, -1 if v is older than other, and +1 if v is newer.
// Component, build and branch are examined in that order; a level only counts when both sides have it,
// and the first level that differs decides. The timestamp never participates.
func (v Version) Compare(other Version) int {
	levels := [][2]Segments{
		{v.component, other.component},
		{v.build, other.build},
		{v.branch, other.branch},
	}

	for _, level := range levels {
		left, lok := numeric(level[0])
		right, rok := numeric(level[1])
		if !lok || !rok {
			continue
		}
		if result := left.Compare(right); result != 0 {
			return result
		}
	}

	return 0
}

// Equal reports whether the two versions are ordering-equal (which ignores timestamps and skipped levels).
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// Compare orders two possibly-nil versions; a missing version ties with anything.
func Compare(a, b *Version) int {
	if a == nil || b == nil {
		return 0
	}
	return a.Compare(*b)
}

func (v Version) String() string {
	if v.IsEmpty() {
		return ""
	}

	var sb strings.Builder
	sb.WriteByte(componentMarker)
	for _, slot := range Slots {
		s := v.Get(slot)
		if IsAbsent(s) {
			continue
		}
		if slot != ComponentSlot {
			sb.WriteByte(slot.Marker())
		}
		sb.WriteString(s.String())
	}
	return sb.String()
}
