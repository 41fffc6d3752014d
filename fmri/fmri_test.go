package fmri

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/anchore/fmri/fmri/fmrierr"
	"github.com/anchore/fmri/fmri/version"
)

// fmriComparer looks through the unexported fields of the identifier and its version parts.
var fmriComparer = cmp.AllowUnexported(FMRI{}, Publisher{}, version.Version{}, version.Segment{})

func mustParse(t *testing.T, raw string) FMRI {
	t.Helper()
	f, err := Parse(raw)
	require.NoError(t, err)
	require.NotNil(t, f)
	return *f
}

func TestNew(t *testing.T) {
	f, err := New("/system/library/")
	require.NoError(t, err)
	assert.Equal(t, "system/library", f.PackageName())
	assert.False(t, f.HasPublisher())
	assert.False(t, f.HasVersion())
	assert.Nil(t, f.Version())

	_, err = New("")
	assert.ErrorIs(t, err, fmrierr.ErrEmptyPackageName)

	_, err = New("///")
	assert.ErrorIs(t, err, fmrierr.ErrEmptyPackageName)

	_, err = New("test@1")
	assert.ErrorIs(t, err, fmrierr.ErrInvalidCharacter)
}

func TestParse(t *testing.T) {
	tests := []struct {
		raw         string
		publisher   string
		packageName string
		version     string
		rendered    string
	}{
		{
			raw:         "fmri=pkg://publisher/test/test@1.6.34-2018.0.0.0",
			publisher:   "publisher",
			packageName: "test/test",
			version:     "@1.6.34-2018.0.0.0",
			rendered:    "pkg://publisher/test/test@1.6.34-2018.0.0.0",
		},
		{
			raw:         "fmri=test@1-1:20220913T082027Z",
			packageName: "test",
			version:     "@1-1:20220913T082027Z",
			rendered:    "pkg:/test@1-1:20220913T082027Z",
		},
		{
			raw:         "pkg://publisher/test@1-1:20220913T082027Z",
			publisher:   "publisher",
			packageName: "test",
			version:     "@1-1:20220913T082027Z",
			rendered:    "pkg://publisher/test@1-1:20220913T082027Z",
		},
		{
			raw:         "pkg:/audio/audacity",
			packageName: "audio/audacity",
			rendered:    "pkg:/audio/audacity",
		},
		{
			raw:         "pkg:/audio/audacity@2.3.2,5.11-2022.0.0.1",
			packageName: "audio/audacity",
			version:     "@2.3.2,5.11-2022.0.0.1",
			rendered:    "pkg:/audio/audacity@2.3.2,5.11-2022.0.0.1",
		},
		{
			raw:         "pkg://solaris/system/library@0.5.11-0.175.1.0.0.2.1:20120919T082311Z",
			publisher:   "solaris",
			packageName: "system/library",
			version:     "@0.5.11-0.175.1.0.0.2.1:20120919T082311Z",
			rendered:    "pkg://solaris/system/library@0.5.11-0.175.1.0.0.2.1:20120919T082311Z",
		},
		{
			raw:         "test",
			packageName: "test",
			rendered:    "pkg:/test",
		},
		{
			raw:         "pkg:/web/server/apache-24/",
			packageName: "web/server/apache-24",
			rendered:    "pkg:/web/server/apache-24",
		},
		{
			raw:         "pkg:/library/libxml2@,5.11",
			packageName: "library/libxml2",
			version:     "@,5.11",
			rendered:    "pkg:/library/libxml2@,5.11",
		},
	}

	for _, test := range tests {
		t.Run(test.raw, func(t *testing.T) {
			f := mustParse(t, test.raw)

			assert.Equal(t, test.publisher != "", f.HasPublisher())
			assert.Equal(t, test.publisher, f.Publisher().Name())
			assert.Equal(t, test.packageName, f.PackageName())
			assert.Equal(t, test.version != "", f.HasVersion())
			assert.Equal(t, test.version, f.VersionString())
			assert.Equal(t, test.rendered, f.String())

			// rendering must re-parse to the same value
			assert.Equal(t, f, mustParse(t, f.String()))
		})
	}
}

func TestParse_EndToEnd(t *testing.T) {
	f := mustParse(t, "fmri=pkg://publisher/test/test@1.6.34-2018.0.0.0")

	assert.Equal(t, "publisher", f.Publisher().Name())
	assert.Equal(t, "test/test", f.PackageName())

	v := f.Version()
	require.NotNil(t, v)
	component, ok := v.Component().(version.ComponentVersion)
	require.True(t, ok)
	assert.Equal(t, []int{1, 6, 34}, component.Values())
	assert.True(t, version.IsAbsent(v.Build()))
	branch, ok := v.Branch().(version.BranchVersion)
	require.True(t, ok)
	assert.Equal(t, []int{2018, 0, 0, 0}, branch.Values())
	assert.True(t, version.IsAbsent(v.Timestamp()))

	assert.Equal(t, "pkg://publisher/test/test@1.6.34-2018.0.0.0", f.String())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		raw     string
		wantErr error
	}{
		{raw: "", wantErr: fmrierr.ErrEmptyPackageName},
		{raw: "fmri=", wantErr: fmrierr.ErrEmptyPackageName},
		{raw: "pkg:/", wantErr: fmrierr.ErrEmptyPackageName},
		{raw: "pkg://publisher/", wantErr: fmrierr.ErrEmptyPackageName},
		{raw: "pkg:/@1.0", wantErr: fmrierr.ErrEmptyPackageName},
		{raw: "fmri=publisher/pkg://test/test@1-0.1", wantErr: fmrierr.ErrMalformedPublisherClause},
		{raw: "pkg://publisher", wantErr: fmrierr.ErrMalformedPublisherClause},
		{raw: "pkg:///test", wantErr: fmrierr.ErrMalformedPublisherClause},
		{raw: "pkg://publ@sher/test", wantErr: fmrierr.ErrInvalidCharacter},
		{raw: "test@1.a", wantErr: fmrierr.ErrInvalidSegment},
		{raw: "test@", wantErr: fmrierr.ErrInvalidSegment},
		{raw: "test@1@2", wantErr: fmrierr.ErrMalformedVersionClause},
		{raw: "test@2.1a.1,5.c11-2018.g0.0.0:2017121b2T185746Z", wantErr: fmrierr.ErrInvalidSegment},
	}

	for _, test := range tests {
		t.Run(test.raw, func(t *testing.T) {
			f, err := Parse(test.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, test.wantErr)
			assert.Nil(t, f)
		})
	}
}

func TestFMRI_Compare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected int
	}{
		{name: "newer component", a: "test@2", b: "test@1", expected: 1},
		{name: "older component", a: "test@1", b: "test@2", expected: -1},
		{name: "no versions", a: "test", b: "test", expected: 0},
		{name: "version on one side", a: "test@1", b: "test", expected: 0},
		{name: "publisher is ignored", a: "pkg://a/test@1", b: "pkg://b/test@1", expected: 0},
		{name: "name is ignored", a: "pkg:/zzz@1", b: "pkg:/aaa@2", expected: -1},
		{name: "build differs", a: "test@1,1-1:20220913T082027Z", b: "test@1,2-1:20220913T082027Z", expected: -1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			a := mustParse(t, test.a)
			b := mustParse(t, test.b)
			assert.Equal(t, test.expected, a.Compare(b))
			assert.Equal(t, -test.expected, b.Compare(a))
		})
	}
}

func TestFMRI_IdentityIsIndependentOfOrdering(t *testing.T) {
	a := mustParse(t, "pkg:/library/a@1.0-1")
	b := mustParse(t, "pkg:/library/b@1.0-1")

	assert.Equal(t, 0, a.Compare(b))
	assert.False(t, a.PackageNameEqual(b))

	c := mustParse(t, "pkg://other/library/a@3.0-1")
	assert.True(t, a.PackageNameEqual(c))
	assert.Equal(t, -1, a.Compare(c))
}

func TestFMRI_VersionsAreNotEqualValues(t *testing.T) {
	// ordering ties, but the parsed values differ
	a := mustParse(t, "test@1,1-1:20220913T082027Z")
	b := mustParse(t, "test@1-1:20220913T082027Z")
	assert.NotEqual(t, a.Version(), b.Version())
	assert.Equal(t, 0, a.Compare(b))

	assert.Equal(t, mustParse(t, "test").Version(), mustParse(t, "test").Version())
	assert.NotEqual(t, mustParse(t, "test@1").Version(), mustParse(t, "test").Version())
}

func TestFMRI_Mutators(t *testing.T) {
	f := mustParse(t, "pkg://solaris/system/library@0.5.11-0.175.1")

	f.RemovePublisher()
	assert.False(t, f.HasPublisher())
	assert.Equal(t, "pkg:/system/library@0.5.11-0.175.1", f.String())

	p, err := NewPublisher("openindiana.org")
	require.NoError(t, err)
	f.ChangePublisher(p)
	assert.Equal(t, "pkg://openindiana.org/system/library@0.5.11-0.175.1", f.String())

	v, err := version.New("1.0")
	require.NoError(t, err)
	f.ChangeVersion(*v)
	assert.Equal(t, "@1.0", f.VersionString())

	f.RemoveVersion()
	assert.False(t, f.HasVersion())
	assert.Equal(t, "", f.VersionString())
	assert.Equal(t, "pkg://openindiana.org/system/library", f.String())
}

func TestFMRI_VersionReturnsCopy(t *testing.T) {
	f := mustParse(t, "test@1")
	v := f.Version()
	require.NotNil(t, v)

	other, err := version.New("2")
	require.NoError(t, err)
	*v = *other

	assert.Equal(t, "@1", f.VersionString())
}

func TestFMRI_Fingerprint(t *testing.T) {
	a := mustParse(t, "pkg://solaris/test@1:20220913T082027Z")
	b := mustParse(t, "fmri=pkg://solaris/test@1:20220913T082027Z")
	c := mustParse(t, "pkg://solaris/test@1:20220914T082027Z")

	fa, err := a.Fingerprint()
	require.NoError(t, err)
	fb, err := b.Fingerprint()
	require.NoError(t, err)
	fc, err := c.Fingerprint()
	require.NoError(t, err)

	assert.NotEmpty(t, fa)
	assert.Equal(t, fa, fb)
	assert.NotEqual(t, fa, fc)
}

func TestFMRI_JSONRoundTrip(t *testing.T) {
	for _, raw := range []string{
		"pkg://publisher/test/test@1.6.34-2018.0.0.0",
		"pkg:/audio/audacity",
		"pkg:/library/libxml2@,5.11:20171212T185746Z",
	} {
		t.Run(raw, func(t *testing.T) {
			f := mustParse(t, raw)
			by, err := json.Marshal(f)
			require.NoError(t, err)

			var decoded FMRI
			require.NoError(t, json.Unmarshal(by, &decoded))
			if d := cmp.Diff(f, decoded, fmriComparer); d != "" {
				t.Errorf("json round trip mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestFMRI_JSONDocument(t *testing.T) {
	by, err := json.Marshal(mustParse(t, "pkg:/audio/audacity"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"publisher": null, "packageName": "audio/audacity", "version": null}`, string(by))

	var decoded FMRI
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"publisher": null, "packageName": "", "version": null}`), &decoded), fmrierr.ErrEmptyPackageName)
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"publisher": "a@b", "packageName": "x", "version": null}`), &decoded), fmrierr.ErrInvalidCharacter)
}

func TestFMRI_YAML(t *testing.T) {
	type document struct {
		Packages []FMRI `yaml:"packages"`
	}

	original := document{Packages: []FMRI{
		mustParse(t, "pkg://solaris/system/library@0.5.11-0.175.1.0.0.2.1:20120919T082311Z"),
		mustParse(t, "pkg:/audio/audacity"),
	}}

	by, err := yaml.Marshal(original)
	require.NoError(t, err)

	var decoded document
	require.NoError(t, yaml.Unmarshal(by, &decoded))
	if d := cmp.Diff(original, decoded, fmriComparer); d != "" {
		t.Errorf("yaml round trip mismatch (-want +got):\n%s", d)
	}
}
