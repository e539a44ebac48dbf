package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExternalReference_RoundTrip(t *testing.T) {
	pairs := [][2]string{
		{"u123", "c456"},
		{"user_with_underscores", "course_id_2"},
		{"a.b.c", "ü-ñ"},
	}
	for _, p := range pairs {
		ref := EncodeExternalReference(p[0], p[1])
		u, c, err := ParseExternalReference(ref)
		require.NoError(t, err, ref)
		assert.Equal(t, p[0], u)
		assert.Equal(t, p[1], c)
	}
}

func TestParseExternalReference_Legacy(t *testing.T) {
	u, c, err := ParseExternalReference("u123_c456")
	require.NoError(t, err)
	assert.Equal(t, "u123", u)
	assert.Equal(t, "c456", c)
}

func TestParseExternalReference_Malformed(t *testing.T) {
	for _, ref := range []string{
		"",
		"   ",
		"nodelimiter",
		"_c456",
		"u123_",
		"a_b_c",
		"v1.",
		"v1.dTEyMw",
		"v1.dTEyMw.",
		"v1.!!!.YzQ1Ng",
		"v1.dTEyMw.YzQ1Ng.extra",
	} {
		_, _, err := ParseExternalReference(ref)
		if !errors.Is(err, ErrMalformedExternalReference) {
			t.Fatalf("ref %q: expected ErrMalformedExternalReference, got %v", ref, err)
		}
	}
}
