package fmri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anchore/fmri/fmri/fmrierr"
)

func TestNewPublisher(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		wantErr  error
	}{
		{input: "publisher", expected: "publisher"},
		{input: "/publisher/", expected: "publisher"},
		{input: "/publisher", expected: "publisher"},
		{input: "publisher/", expected: "publisher"},
		{input: "//publisher//", expected: "publisher"},
		{input: "Publisher", expected: "Publisher"},
		{input: "publ@sher", wantErr: fmrierr.ErrInvalidCharacter},
		{input: "", wantErr: fmrierr.ErrMalformedPublisherClause},
		{input: "//", wantErr: fmrierr.ErrMalformedPublisherClause},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			p, err := NewPublisher(test.input)
			if test.wantErr != nil {
				assert.ErrorIs(t, err, test.wantErr)
				assert.True(t, p.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, p.Name())
			assert.Equal(t, test.expected, p.String())
		})
	}
}

func TestPublisher_Equality(t *testing.T) {
	a, err := NewPublisher("solaris")
	require.NoError(t, err)
	b, err := NewPublisher("/solaris/")
	require.NoError(t, err)
	c, err := NewPublisher("Solaris")
	require.NoError(t, err)

	assert.True(t, a == b)
	assert.False(t, a == c)
}

func TestPublisher_Clause(t *testing.T) {
	p, err := NewPublisher("solaris")
	require.NoError(t, err)
	assert.Equal(t, "pkg://solaris/", p.Clause())
}

func TestExtractPublisher(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
		wantErr  error
	}{
		{raw: "fmri=pkg://publisher/test/test@1-0.1", expected: "publisher"},
		{raw: "pkg://publisher/test", expected: "publisher"},
		{raw: "pkg:/test/test@1-0.1"},
		{raw: "test/test@1-0.1"},
		{raw: "fmri=publisher/pkg://test/test@1-0.1", wantErr: fmrierr.ErrMalformedPublisherClause},
		{raw: "pkg://publisher", wantErr: fmrierr.ErrMalformedPublisherClause},
		{raw: "pkg:///test", wantErr: fmrierr.ErrMalformedPublisherClause},
		{raw: "pkg://pub@lisher/test", wantErr: fmrierr.ErrInvalidCharacter},
	}

	for _, test := range tests {
		t.Run(test.raw, func(t *testing.T) {
			p, err := ExtractPublisher(test.raw)
			if test.wantErr != nil {
				assert.ErrorIs(t, err, test.wantErr)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			if test.expected == "" {
				assert.Nil(t, p)
				return
			}
			require.NotNil(t, p)
			assert.Equal(t, test.expected, p.Name())
		})
	}
}

func TestPublisher_Text(t *testing.T) {
	var p Publisher
	require.NoError(t, p.UnmarshalText([]byte("/solaris/")))
	assert.Equal(t, "solaris", p.Name())

	by, err := p.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "solaris", string(by))

	assert.ErrorIs(t, p.UnmarshalText([]byte("so@laris")), fmrierr.ErrInvalidCharacter)
}
