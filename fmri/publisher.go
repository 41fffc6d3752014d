package fmri

import (
	"fmt"
	"strings"

	"github.com/anchore/fmri/fmri/fmrierr"
)

const (
	fmriPrefix         = "fmri="
	publisherScheme    = "pkg://"
	packageScheme      = "pkg:/"
	reservedCharacter  = "@"
	separatorCharacter = "/"
	publisherSeparator = '/'
)

// Publisher is the authority namespace a package was obtained from, as in "pkg://solaris/...".
type Publisher struct {
	name string
}

// NewPublisher validates a publisher name, stripping any leading and trailing slashes.
func NewPublisher(name string) (Publisher, error) {
	if strings.Contains(name, reservedCharacter) {
		return Publisher{}, fmrierr.New(fmrierr.InvalidCharacter, name, "publisher cannot contain '@'")
	}

	trimmed := strings.Trim(name, separatorCharacter)
	if trimmed == "" {
		return Publisher{}, fmrierr.New(fmrierr.MalformedPublisherClause, name, "empty publisher")
	}

	return Publisher{name: trimmed}, nil
}

// ExtractPublisher finds the publisher clause of a raw FMRI. It returns nil when the FMRI has no
// "pkg://" scheme at all.
func ExtractPublisher(raw string) (*Publisher, error) {
	raw = strings.TrimPrefix(raw, fmriPrefix)

	idx := strings.Index(raw, publisherScheme)
	switch {
	case idx < 0:
		return nil, nil
	case idx > 0:
		return nil, fmrierr.New(fmrierr.MalformedPublisherClause, raw, fmt.Sprintf("%q must start the identifier, found at position %d", publisherScheme, idx))
	}

	rest := raw[len(publisherScheme):]
	end := strings.IndexByte(rest, publisherSeparator)
	if end < 0 {
		return nil, fmrierr.New(fmrierr.MalformedPublisherClause, raw, "publisher must be followed by \"/package_name\"")
	}

	p, err := NewPublisher(rest[:end])
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (p Publisher) Name() string {
	return p.name
}

// IsZero reports whether p is the zero value, i.e. no publisher.
func (p Publisher) IsZero() bool {
	return p.name == ""
}

// Clause renders the publisher as it prefixes an FMRI, "pkg://name/".
func (p Publisher) Clause() string {
	return publisherScheme + p.name + separatorCharacter
}

func (p Publisher) String() string {
	return p.name
}

func (p Publisher) MarshalText() ([]byte, error) {
	return []byte(p.name), nil
}

func (p *Publisher) UnmarshalText(text []byte) error {
	parsed, err := NewPublisher(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
