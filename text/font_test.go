package text

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestParseFont(t *testing.T) {
	font, err := ParseFont(goregular.TTF)
	require.NoError(t, err)
	require.NotNil(t, font)
}

func TestParseFont_Invalid(t *testing.T) {
	_, err := ParseFont([]byte("not a font"))
	require.Error(t, err)

	var badFont *BadFontError
	assert.ErrorAs(t, err, &badFont)
	assert.NotNil(t, badFont.Unwrap())
}

func TestFindFont_UnknownFamily(t *testing.T) {
	_, err := FindFont(Query{Family: "no-such-family-fbdraw-test"})
	if err == nil {
		t.Fatal("expected an error for an unknown family")
	}
	if !errors.Is(err, ErrFontNotFound) {
		// Hosts without any scannable fonts fail earlier, in the scan
		// itself. That is not what this test is about.
		t.Skipf("font scan unavailable: %v", err)
	}
}

func TestFindFont_AnyFamily(t *testing.T) {
	font, err := FindFont(Query{})
	if err != nil {
		t.Skipf("no system fonts available: %v", err)
	}
	require.NotNil(t, font)
	assert.NotEmpty(t, font.Family())

	face, err := font.face(16)
	require.NoError(t, err)
	require.NoError(t, face.Close())
}
