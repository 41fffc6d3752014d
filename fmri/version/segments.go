package version

import (
	"fmt"
	"strings"

	"github.com/anchore/fmri/fmri/fmrierr"
)

const (
	componentMarker = '@'
	buildMarker     = ','
	branchMarker    = '-'
	timestampMarker = ':'
)

// delimiters terminate the text of any slot.
const delimiters = ",-:"

// Slot names one of the four positions of a version clause.
type Slot int

const (
	NoSlot Slot = iota
	ComponentSlot
	BuildSlot
	BranchSlot
	TimestampSlot
)

var slotStr = []string{
	"absent",
	"component",
	"build",
	"branch",
	"timestamp",
}

var Slots = []Slot{
	ComponentSlot,
	BuildSlot,
	BranchSlot,
	TimestampSlot,
}

func (s Slot) String() string {
	if int(s) >= len(slotStr) || s < 0 {
		return slotStr[0]
	}
	return slotStr[s]
}

// Marker is the character introducing the slot within a version clause.
func (s Slot) Marker() byte {
	switch s {
	case ComponentSlot:
		return componentMarker
	case BuildSlot:
		return buildMarker
	case BranchSlot:
		return branchMarker
	case TimestampSlot:
		return timestampMarker
	}
	return 0
}

func ParseSlot(userStr string) Slot {
	for _, s := range Slots {
		if strings.EqualFold(userStr, s.String()) {
			return s
		}
	}
	return NoSlot
}

func slotFromMarker(marker byte) Slot {
	for _, s := range Slots {
		if s.Marker() == marker {
			return s
		}
	}
	return NoSlot
}

// Segments is the content of one version slot: exactly one of ComponentVersion, BuildVersion,
// BranchVersion, Timestamp or Absent.
type Segments interface {
	Slot() Slot
	String() string
	isSegments()
}

type ComponentVersion struct{ Segment }

type BuildVersion struct{ Segment }

type BranchVersion struct{ Segment }

// Timestamp is kept verbatim, by convention YYYYMMDDTHHMMSSZ.
type Timestamp string

// Absent marks a slot that was not present in the source string.
type Absent struct{}

func (ComponentVersion) Slot() Slot { return ComponentSlot }
func (BuildVersion) Slot() Slot     { return BuildSlot }
func (BranchVersion) Slot() Slot    { return BranchSlot }
func (Timestamp) Slot() Slot        { return TimestampSlot }
func (Absent) Slot() Slot           { return NoSlot }

func (t Timestamp) String() string { return string(t) }
func (Absent) String() string      { return "" }

func (ComponentVersion) isSegments() {}
func (BuildVersion) isSegments()     {}
func (BranchVersion) isSegments()    {}
func (Timestamp) isSegments()        {}
func (Absent) isSegments()           {}

// IsAbsent reports whether the slot holds no value. A nil Segments is treated as absent.
func IsAbsent(s Segments) bool {
	if s == nil {
		return true
	}
	_, ok := s.(Absent)
	return ok
}

// numeric returns the dotted tuple of a component, build or branch slot.
func numeric(s Segments) (Segment, bool) {
	switch v := s.(type) {
	case ComponentVersion:
		return v.Segment, true
	case BuildVersion:
		return v.Segment, true
	case BranchVersion:
		return v.Segment, true
	default:
		return Segment{}, false
	}
}

// Extract locates the slot introduced by marker inside a version clause (beginning at '@') and bounds it
// at the next delimiter. A missing marker yields Absent; anything but digits and '.' inside a numeric
// slot is an error rather than a truncation point.
func Extract(rawVersion string, marker byte) (Segments, error) {
	slot := slotFromMarker(marker)
	if slot == NoSlot {
		return nil, fmrierr.New(fmrierr.MalformedVersionClause, rawVersion, fmt.Sprintf("unknown slot marker %q", marker))
	}

	start := strings.IndexByte(rawVersion, marker)
	if start < 0 {
		return Absent{}, nil
	}

	rest := rawVersion[start+1:]
	end := len(rest)
	for i := 0; i < len(rest); i++ {
		c := rest[i]
		if strings.IndexByte(delimiters, c) >= 0 {
			end = i
			break
		}
		if (c >= '0' && c <= '9') || c == '.' {
			continue
		}
		if slot == TimestampSlot {
			if c == componentMarker {
				return nil, fmrierr.New(fmrierr.MalformedVersionClause, rawVersion, fmt.Sprintf("invalid character %q in timestamp", c))
			}
			continue
		}
		return nil, fmrierr.New(fmrierr.InvalidSegment, rawVersion, fmt.Sprintf("invalid character %q in %s version", c, slot))
	}
	text := rest[:end]

	if text == "" {
		switch {
		case slot == ComponentSlot && end < len(rest):
			// "@,5.11": the component is optional when another slot follows
			return Absent{}, nil
		case slot == TimestampSlot:
			return nil, fmrierr.New(fmrierr.MalformedVersionClause, rawVersion, "empty timestamp")
		default:
			return nil, fmrierr.New(fmrierr.InvalidSegment, rawVersion, fmt.Sprintf("empty %s version", slot))
		}
	}

	if slot == TimestampSlot {
		return Timestamp(text), nil
	}

	segment, err := NewSegment(text)
	if err != nil {
		return nil, fmrierr.Wrap(fmrierr.InvalidSegment, rawVersion, fmt.Errorf("%s version: %w", slot, err))
	}

	switch slot {
	case ComponentSlot:
		return ComponentVersion{segment}, nil
	case BuildSlot:
		return BuildVersion{segment}, nil
	default:
		return BranchVersion{segment}, nil
	}
}
