package fmri

import (
	"fmt"
	"strings"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/anchore/fmri/fmri/fmrierr"
	"github.com/anchore/fmri/fmri/version"
	"github.com/anchore/fmri/internal/log"
)

// FMRI identifies a package, optionally qualified by publisher and version:
//
//	pkg:/audio/audacity
//	pkg:/audio/audacity@2.3.2,5.11-2022.0.0.1
//	pkg://solaris/system/library@0.5.11-0.175.1.0.0.2.1:20120919T082311Z
type FMRI struct {
	publisher   Publisher
	packageName string
	version     *version.Version
}

// New returns an FMRI with only a package name.
func New(packageName string) (*FMRI, error) {
	name, err := cleanPackageName(packageName)
	if err != nil {
		return nil, err
	}
	return &FMRI{packageName: name}, nil
}

func cleanPackageName(packageName string) (string, error) {
	if strings.Contains(packageName, reservedCharacter) {
		return "", fmrierr.New(fmrierr.InvalidCharacter, packageName, "package name cannot contain '@'")
	}

	name := strings.Trim(packageName, separatorCharacter)
	if name == "" {
		return "", fmrierr.New(fmrierr.EmptyPackageName, packageName, "")
	}
	return name, nil
}

// Parse decomposes a raw identifier such as "fmri=pkg://publisher/test/test@1.6.34-2018.0.0.0".
func Parse(raw string) (*FMRI, error) {
	f, err := parse(raw)
	if err != nil {
		log.Debugf("unable to parse fmri %q: %+v", raw, err)
		return nil, err
	}
	return f, nil
}

func parse(raw string) (*FMRI, error) {
	name := strings.TrimPrefix(raw, fmriPrefix)

	publisher, err := ExtractPublisher(raw)
	if err != nil {
		return nil, err
	}

	if publisher != nil {
		rest := strings.TrimPrefix(name, publisherScheme)
		// ExtractPublisher guarantees a separator follows the publisher
		name = rest[strings.IndexByte(rest, publisherSeparator)+1:]
	} else {
		name = strings.TrimPrefix(name, packageScheme)
	}

	ver, err := version.ParseFromRawFMRI(raw)
	if err != nil {
		return nil, err
	}

	if ver != nil {
		if idx := strings.Index(name, reservedCharacter); idx >= 0 {
			name = name[:idx]
		}
	}

	f, err := New(name)
	if err != nil {
		return nil, err
	}

	if publisher != nil {
		f.ChangePublisher(*publisher)
	}
	if ver != nil {
		f.ChangeVersion(*ver)
	}
	return f, nil
}

func (f FMRI) PackageName() string {
	return f.packageName
}

// Publisher returns the publisher, or the zero Publisher if none is set.
func (f FMRI) Publisher() Publisher {
	return f.publisher
}

func (f FMRI) HasPublisher() bool {
	return !f.publisher.IsZero()
}

func (f *FMRI) ChangePublisher(p Publisher) {
	f.publisher = p
}

func (f *FMRI) RemovePublisher() {
	f.publisher = Publisher{}
}

// Version returns a copy of the version, or nil if none is set.
func (f FMRI) Version() *version.Version {
	if f.version == nil {
		return nil
	}
	v := *f.version
	return &v
}

func (f FMRI) HasVersion() bool {
	return f.version != nil
}

func (f *FMRI) ChangeVersion(v version.Version) {
	f.version = &v
}

func (f *FMRI) RemoveVersion() {
	f.version = nil
}

// VersionString returns the rendered version clause, or "" if there is none.
func (f FMRI) VersionString() string {
	if f.version == nil {
		return ""
	}
	return f.version.String()
}

// PackageNameEqual reports whether both FMRIs name the same package; publisher and version are not considered.
func (f FMRI) PackageNameEqual(other FMRI) bool {
	return f.packageName == other.packageName
}

// Compare orders FMRIs by version only: -1 if f is older than other, 0 if neither is newer, +1 if f is newer.
// Callers who also care about identity should filter with PackageNameEqual first.
func (f FMRI) Compare(other FMRI) int {
	return version.Compare(f.version, other.version)
}

// Fingerprint is a stable hash over publisher, package name and the full version text (timestamp included).
func (f FMRI) Fingerprint() (string, error) {
	h, err := hashstructure.Hash(struct {
		Publisher   string
		PackageName string
		Version     string
	}{
		Publisher:   f.publisher.Name(),
		PackageName: f.packageName,
		Version:     f.VersionString(),
	}, hashstructure.FormatV2, nil)
	if err != nil {
		return "", fmt.Errorf("unable to fingerprint fmri %q: %w", f.String(), err)
	}
	return fmt.Sprintf("%x", h), nil
}

func (f FMRI) String() string {
	var sb strings.Builder
	if f.HasPublisher() {
		sb.WriteString(f.publisher.Clause())
	} else {
		sb.WriteString(packageScheme)
	}
	sb.WriteString(f.packageName)
	sb.WriteString(f.VersionString())
	return sb.String()
}
