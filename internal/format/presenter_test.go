package format

import (
	"bytes"
	"flag"
	"strings"
	"testing"

	"github.com/acarl005/stripansi"
	"github.com/anchore/go-testutils"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/anchore/fmri/fmri"
)

var update = flag.Bool("update", false, "update the *.golden files for presenters")

func testList(t *testing.T) *fmri.List {
	t.Helper()
	l := fmri.NewList()
	for _, raw := range []string{
		"pkg://solaris/library/zlib@1.2.11-2018.0.0.0:20180101T000000Z",
		"pkg:/audio/audacity",
	} {
		f, err := fmri.Parse(raw)
		require.NoError(t, err)
		l.Add(*f)
	}
	return l
}

func TestGetPresenter(t *testing.T) {
	l := testList(t)
	for _, f := range AvailableFormats {
		assert.NotNil(t, GetPresenter(f, PresentationConfig{}, l), f.String())
	}
	assert.Nil(t, GetPresenter(UnknownFormat, PresentationConfig{}, l))
}

func TestTextPresenter(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, GetPresenter(TextFormat, PresentationConfig{}, testList(t)).Present(&buffer))
	assert.Equal(t, "pkg://solaris/library/zlib@1.2.11-2018.0.0.0:20180101T000000Z\npkg:/audio/audacity\n", buffer.String())
}

func TestJSONPresenter(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, GetPresenter(JSONFormat, PresentationConfig{}, testList(t)).Present(&buffer))
	actual := buffer.Bytes()

	if *update {
		testutils.UpdateGoldenFileContents(t, actual)
	}

	var expected = testutils.GetGoldenFileContents(t)

	if !bytes.Equal(expected, actual) {
		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(string(expected), string(actual), true)
		t.Errorf("mismatched output:\n%s", dmp.DiffPrettyText(diffs))
	}
}

func TestJSONPresenter_Empty(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, GetPresenter(JSONFormat, PresentationConfig{}, fmri.NewList()).Present(&buffer))
	assert.JSONEq(t, `{"fmris": []}`, buffer.String())
}

func TestYAMLPresenter(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, GetPresenter(YAMLFormat, PresentationConfig{}, testList(t)).Present(&buffer))

	var doc Document
	require.NoError(t, yaml.Unmarshal(buffer.Bytes(), &doc))
	require.Len(t, doc.FMRIs, 2)
	assert.Equal(t, "pkg://solaris/library/zlib@1.2.11-2018.0.0.0:20180101T000000Z", doc.FMRIs[0].String())
	assert.Equal(t, "pkg:/audio/audacity", doc.FMRIs[1].String())
}

func TestTablePresenter(t *testing.T) {
	for _, withColor := range []bool{false, true} {
		var buffer bytes.Buffer
		require.NoError(t, GetPresenter(TableFormat, PresentationConfig{WithColor: withColor}, testList(t)).Present(&buffer))

		lines := strings.Split(strings.TrimSpace(stripansi.Strip(buffer.String())), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, []string{"NAME", "PUBLISHER", "COMPONENT", "BUILD", "BRANCH", "TIMESTAMP"}, strings.Fields(lines[0]))
		assert.Equal(t, []string{"library/zlib", "solaris", "1.2.11", "2018.0.0.0", "20180101T000000Z"}, strings.Fields(lines[1]))
		assert.Equal(t, []string{"audio/audacity"}, strings.Fields(lines[2]))
	}
}

func TestTablePresenter_Empty(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, GetPresenter(TableFormat, PresentationConfig{}, fmri.NewList()).Present(&buffer))
	assert.Equal(t, "No packages found\n", buffer.String())
}

func TestTemplatePresenter(t *testing.T) {
	var buffer bytes.Buffer
	cfg := PresentationConfig{TemplateFilePath: "./test-fixtures/summary.tmpl"}
	require.NoError(t, GetPresenter(TemplateFormat, cfg, testList(t)).Present(&buffer))
	assert.Equal(t, "\nLIBRARY/ZLIB 1.2.11 solaris\nAUDIO/AUDACITY - (none)\n", buffer.String())
}

func TestTemplatePresenter_MissingFile(t *testing.T) {
	cfg := PresentationConfig{TemplateFilePath: "./test-fixtures/does-not-exist.tmpl"}
	assert.Error(t, GetPresenter(TemplateFormat, cfg, testList(t)).Present(&bytes.Buffer{}))
}

func TestNewRows(t *testing.T) {
	rows := NewRows(testList(t))
	assert.Equal(t, []Row{
		{
			FMRI:        "pkg://solaris/library/zlib@1.2.11-2018.0.0.0:20180101T000000Z",
			Publisher:   "solaris",
			PackageName: "library/zlib",
			Component:   "1.2.11",
			Branch:      "2018.0.0.0",
			Timestamp:   "20180101T000000Z",
		},
		{
			FMRI:        "pkg:/audio/audacity",
			PackageName: "audio/audacity",
		},
	}, rows)
}
