package version

import (
	"encoding/json"
	"fmt"
)

type segmentsJSON struct {
	Kind    string   `json:"kind"`
	Segment *Segment `json:"segment,omitempty"`
	Value   string   `json:"value,omitempty"`
}

type versionJSON struct {
	Component segmentsJSON `json:"component"`
	Build     segmentsJSON `json:"build"`
	Branch    segmentsJSON `json:"branch"`
	Timestamp segmentsJSON `json:"timestamp"`
}

func toSegmentsJSON(s Segments) segmentsJSON {
	switch v := orAbsent(s).(type) {
	case ComponentVersion:
		return segmentsJSON{Kind: ComponentSlot.String(), Segment: &v.Segment}
	case BuildVersion:
		return segmentsJSON{Kind: BuildSlot.String(), Segment: &v.Segment}
	case BranchVersion:
		return segmentsJSON{Kind: BranchSlot.String(), Segment: &v.Segment}
	case Timestamp:
		return segmentsJSON{Kind: TimestampSlot.String(), Value: string(v)}
	default:
		return segmentsJSON{Kind: NoSlot.String()}
	}
}

// fromSegmentsJSON decodes the content of a slot, rejecting a kind that does not belong in that slot.
func fromSegmentsJSON(slot Slot, s segmentsJSON) (Segments, error) {
	kind := ParseSlot(s.Kind)
	if kind == NoSlot {
		if s.Kind != NoSlot.String() {
			return nil, fmt.Errorf("unknown segments kind %q", s.Kind)
		}
		return Absent{}, nil
	}
	if kind != slot {
		return nil, fmt.Errorf("%s slot cannot hold a %s value", slot, kind)
	}

	if kind == TimestampSlot {
		if s.Value == "" {
			return nil, fmt.Errorf("timestamp slot has no value")
		}
		return Timestamp(s.Value), nil
	}

	if s.Segment == nil || s.Segment.Len() == 0 {
		return nil, fmt.Errorf("%s slot has no segment", slot)
	}

	switch kind {
	case ComponentSlot:
		return ComponentVersion{*s.Segment}, nil
	case BuildSlot:
		return BuildVersion{*s.Segment}, nil
	default:
		return BranchVersion{*s.Segment}, nil
	}
}

func (v Version) MarshalJSON() ([]byte, error) {
	return json.Marshal(versionJSON{
		Component: toSegmentsJSON(v.component),
		Build:     toSegmentsJSON(v.build),
		Branch:    toSegmentsJSON(v.branch),
		Timestamp: toSegmentsJSON(v.timestamp),
	})
}

func (v *Version) UnmarshalJSON(data []byte) error {
	var doc versionJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	var decoded Version
	for slot, s := range map[Slot]segmentsJSON{
		ComponentSlot: doc.Component,
		BuildSlot:     doc.Build,
		BranchSlot:    doc.Branch,
		TimestampSlot: doc.Timestamp,
	} {
		value, err := fromSegmentsJSON(slot, s)
		if err != nil {
			return fmt.Errorf("unable to decode version: %w", err)
		}
		if !IsAbsent(value) {
			decoded.set(value)
		}
	}

	*v = decoded
	return nil
}

// MarshalYAML renders the version in its canonical string form.
func (v Version) MarshalYAML() (interface{}, error) {
	return v.String(), nil
}

func (v *Version) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}

	if raw == "" {
		*v = Version{}
		return nil
	}

	parsed, err := New(raw)
	if err != nil {
		return err
	}
	*v = *parsed
	return nil
}
