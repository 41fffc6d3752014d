package version

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/anchore/fmri/fmri/fmrierr"
)

// Segment is a dotted tuple of non-negative integers, such as "2.1.1" or "2018.0.0.0".
type Segment struct {
	values []int
}

// NewSegment parses a dot separated run of decimal integers.
func NewSegment(raw string) (Segment, error) {
	if raw == "" {
		return Segment{}, fmrierr.New(fmrierr.InvalidSegment, raw, "empty segment")
	}

	pieces := strings.Split(raw, ".")
	values := make([]int, 0, len(pieces))
	for _, piece := range pieces {
		value, err := parsePiece(piece)
		if err != nil {
			return Segment{}, fmrierr.Wrap(fmrierr.InvalidSegment, raw, err)
		}
		values = append(values, value)
	}

	return Segment{values: values}, nil
}

func parsePiece(piece string) (int, error) {
	if piece == "" {
		return 0, fmt.Errorf("empty piece")
	}
	for _, c := range piece {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("invalid character %q in piece %q", c, piece)
		}
	}
	value, err := strconv.Atoi(piece)
	if err != nil {
		return 0, fmt.Errorf("piece %q: %w", piece, err)
	}
	return value, nil
}

// Values returns a copy of the integer tuple.
func (s Segment) Values() []int {
	values := make([]int, len(s.values))
	copy(values, s.values)
	return values
}

func (s Segment) Len() int {
	return len(s.values)
}

// Compare returns 0 if s == other, -1 if s < other, and +1 if s > other. The shared prefix is compared
// element-wise; when it ties, the longer tuple is the greater one.
func (s Segment) Compare(other Segment) int {
	shared := len(s.values)
	if len(other.values) < shared {
		shared = len(other.values)
	}

	for i := 0; i < shared; i++ {
		switch {
		case s.values[i] > other.values[i]:
			return 1
		case s.values[i] < other.values[i]:
			return -1
		}
	}

	switch {
	case len(s.values) > len(other.values):
		return 1
	case len(s.values) < len(other.values):
		return -1
	default:
		return 0
	}
}

func (s Segment) String() string {
	pieces := make([]string, len(s.values))
	for i, v := range s.values {
		pieces[i] = strconv.Itoa(v)
	}
	return strings.Join(pieces, ".")
}

func (s Segment) MarshalJSON() ([]byte, error) {
	if s.values == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.values)
}

func (s *Segment) UnmarshalJSON(data []byte) error {
	var values []int
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	if len(values) == 0 {
		return fmrierr.New(fmrierr.InvalidSegment, string(data), "empty segment")
	}
	for _, v := range values {
		if v < 0 {
			return fmrierr.New(fmrierr.InvalidSegment, string(data), fmt.Sprintf("negative value %d", v))
		}
	}
	s.values = values
	return nil
}
