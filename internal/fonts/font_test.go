package fonts

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mr-Dark-debug/chasecards/internal/assets"
)

const pixelFont = `
# fixture
name Pixel
map U+0041..U+005A U+FF21   # A-Z
map U+0020 U+3000
`

func TestParseAndApply(t *testing.T) {
	f, err := Parse(strings.NewReader(pixelFont))
	require.NoError(t, err)

	assert.Equal(t, "Pixel", f.Name)
	assert.Equal(t, "ＡＢ　Ｚ", f.Apply("AB Z"))
	// lower case and accents are outside every range; the space is mapped
	assert.Equal(t, "Ａgua\u3000É", f.Apply("Agua É"))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"missing name", "map U+0041 U+FF21"},
		{"no mappings", "name Empty"},
		{"unknown directive", "name X\nglyph A"},
		{"bad code point", "name X\nmap 0041 U+FF21"},
		{"reversed range", "name X\nmap U+005A..U+0041 U+FF21"},
		{"missing target", "name X\nmap U+0041"},
		{"out of range", "name X\nmap U+0041 U+110000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.src))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedFont))
		})
	}
}

func TestLoaderLoadsBundledFonts(t *testing.T) {
	reg, err := NewLoader(assets.FS).Load(map[string]string{
		"PressStart2P_400Regular": "fonts/press_start_2p.font",
		"SpaceGrotesk_700Bold":    "fonts/space_grotesk_bold.font",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, reg.Len())

	assert.Equal(t, "Ｓｕｒｇｉｎｇ　Ｓｐａｒｋｓ", reg.Apply("PressStart2P_400Regular", "Surging Sparks"))
	assert.Equal(t, "𝗕𝗹𝗮𝘀𝘁𝗼𝗶𝘀𝗲", reg.Apply("SpaceGrotesk_700Bold", "Blastoise"))
}

func TestLoaderMissingResource(t *testing.T) {
	_, err := NewLoader(fstest.MapFS{}).Load(map[string]string{"Ghost": "fonts/ghost.font"})
	require.Error(t, err)

	var loadErr *FontLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "Ghost", loadErr.Name)
	assert.Equal(t, "fonts/ghost.font", loadErr.Path)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoaderMalformedResource(t *testing.T) {
	fsys := fstest.MapFS{"bad.font": {Data: []byte("name Bad\n")}}
	_, err := NewLoader(fsys).Load(map[string]string{"Bad": "bad.font"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedFont))
}

func TestNilRegistryApply(t *testing.T) {
	var reg *Registry
	assert.Equal(t, "plain", reg.Apply("anything", "plain"))
	assert.Equal(t, 0, reg.Len())
}
