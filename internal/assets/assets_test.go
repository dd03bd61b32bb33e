package assets

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundledImagesDecode(t *testing.T) {
	for _, handle := range []string{
		"charizard_ex.png", "raikou_ex.png", "pikachu.png", "blastoise.png", "gardevoir.png",
	} {
		img, err := Image(handle)
		require.NoError(t, err, handle)
		b := img.Bounds()
		assert.Equal(t, 42, b.Dx(), handle)
		assert.Equal(t, 58, b.Dy(), handle)
	}
}

func TestMissingImage(t *testing.T) {
	_, err := Image("mewtwo.png")
	require.Error(t, err)

	var missing *AssetMissingError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "mewtwo.png", missing.Handle)
	assert.True(t, errors.Is(err, ErrAssetMissing))
}

func TestCorruptImage(t *testing.T) {
	im := NewImages(fstest.MapFS{
		"images/bad.png": {Data: []byte("not a png")},
	})

	_, err := im.Image("bad.png")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrAssetMissing))
}

func TestBundledFonts(t *testing.T) {
	for _, name := range []string{"fonts/press_start_2p.font", "fonts/space_grotesk_bold.font"} {
		_, err := FS.ReadFile(name)
		assert.NoError(t, err, name)
	}
}
