package assets

import (
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-gravitar/internal/component"
	"go-gravitar/internal/config"
)

type stubTexture struct{ w, h int }

func (t stubTexture) Bounds() image.Rectangle { return image.Rect(0, 0, t.w, t.h) }

func TestSliceFrames(t *testing.T) {
	frames, err := SliceFrames(image.Rect(0, 0, 64, 32), image.Pt(16, 16), image.Point{})
	require.NoError(t, err)
	require.Len(t, frames, 8)
	assert.Equal(t, image.Rect(0, 0, 16, 16), frames[0])
	assert.Equal(t, image.Rect(16, 16, 32, 32), frames[5])
}

func TestSliceFramesHonorsBoundsOrigin(t *testing.T) {
	frames, err := SliceFrames(image.Rect(10, 20, 42, 36), image.Pt(16, 16), image.Point{})
	require.NoError(t, err)
	assert.Equal(t, []image.Rectangle{image.Rect(10, 20, 26, 36), image.Rect(26, 20, 42, 36)}, frames)
}

func TestSliceFramesBadDimensions(t *testing.T) {
	bounds := image.Rect(0, 0, 64, 64)
	cases := map[string]struct{ frame, start image.Point }{
		"empty frame":     {image.Pt(0, 16), image.Point{}},
		"frame too wide":  {image.Pt(100, 16), image.Point{}},
		"frame too tall":  {image.Pt(16, 65), image.Point{}},
		"start overflows": {image.Pt(24, 16), image.Pt(20, 0)},
	}
	for name, c := range cases {
		_, err := SliceFrames(bounds, c.frame, c.start)
		assert.ErrorIs(t, err, ErrBadDimensions, name)
	}
}

func TestSpriteSheet(t *testing.T) {
	sheet, err := NewSpriteSheet("ship", stubTexture{48, 16}, image.Pt(24, 16), image.Point{})
	require.NoError(t, err)
	assert.Equal(t, 2, sheet.Len())

	r := sheet.Sprite(1)
	assert.Equal(t, component.ShapeSprite, r.Kind())
	sp, ok := r.Sprite()
	require.True(t, ok)
	assert.Equal(t, image.Rect(24, 0, 48, 16), sp.Frame)

	_, err = NewSpriteSheet("broken", stubTexture{10, 10}, image.Pt(24, 16), image.Point{})
	assert.ErrorIs(t, err, ErrBadDimensions)
	assert.ErrorContains(t, err, "broken")
}

func TestSheetManager(t *testing.T) {
	m := NewSheetManager(nil)
	for _, id := range []string{"terrain", "bunker"} {
		sheet, err := NewSpriteSheet(id, stubTexture{20, 20}, image.Pt(20, 20), image.Point{})
		require.NoError(t, err)
		m.Add(sheet)
	}

	assert.Equal(t, []string{"bunker", "terrain"}, m.IDs())
	r := m.Sprite("bunker", 0)
	w, h := r.Size()
	assert.Equal(t, 20.0, w)
	assert.Equal(t, 20.0, h)
	assert.Panics(t, func() { m.Sprite("ship", 0) })
}

func TestDefaultManifest(t *testing.T) {
	m, err := DefaultManifest()
	require.NoError(t, err)

	ids := make([]string, 0, len(m.Sheets))
	for _, s := range m.Sheets {
		ids = append(ids, s.ID)
		assert.NotEmpty(t, Outline(s.Shape, float64(s.Width), float64(s.Height), 0))
	}
	assert.ElementsMatch(t, []string{"ship", "bunker", "terrain"}, ids)
}

func TestParseManifestRejectsInvalidSheets(t *testing.T) {
	cases := map[string]string{
		"missing id":    "sheets: [{width: 8, height: 8, frames: 1, shape: dome, color: [1, 2, 3]}]",
		"zero width":    "sheets: [{id: a, width: 0, height: 8, frames: 1, shape: dome, color: [1, 2, 3]}]",
		"no frames":     "sheets: [{id: a, width: 8, height: 8, frames: 0, shape: dome, color: [1, 2, 3]}]",
		"unknown shape": "sheets: [{id: a, width: 8, height: 8, frames: 1, shape: blob, color: [1, 2, 3]}]",
		"short color":   "sheets: [{id: a, width: 8, height: 8, frames: 1, shape: dome, color: [1, 2]}]",
		"color range":   "sheets: [{id: a, width: 8, height: 8, frames: 1, shape: dome, color: [1, 2, 300]}]",
		"duplicate": "sheets: [{id: a, width: 8, height: 8, frames: 1, shape: dome, color: [1, 2, 3]}," +
			" {id: a, width: 8, height: 8, frames: 1, shape: dome, color: [1, 2, 3]}]",
		"not yaml": "sheets: [",
	}
	for name, doc := range cases {
		_, err := ParseManifest([]byte(doc))
		assert.Error(t, err, name)
	}
}

func TestSheetSpecColor(t *testing.T) {
	assert.Equal(t, uint8(255), SheetSpec{Color: []int{1, 2, 3}}.RGBA().A)
	assert.Equal(t, uint8(9), SheetSpec{Color: []int{1, 2, 3, 9}}.RGBA().A)
}

func TestOutlineFitsFrame(t *testing.T) {
	for _, shape := range []string{ShapeTriangle, ShapeDome, ShapeDiamond} {
		for frame := 0; frame < 2; frame++ {
			pts := Outline(shape, 30, 20, frame)
			require.GreaterOrEqual(t, len(pts), 3, shape)
			for _, p := range pts {
				assert.InDelta(t, 15, p.X, 15+1e-9, shape)
				assert.InDelta(t, 10, p.Y, 10+1e-9, shape)
			}
		}
	}
	assert.Nil(t, Outline("blob", 30, 20, 0))
}

func TestFonts(t *testing.T) {
	fonts, err := LoadFonts()
	require.NoError(t, err)
	assert.NotNil(t, fonts.Face(FontMechanical))
	assert.NotNil(t, fonts.Face(FontID(99)))

	var none *Fonts
	assert.NotNil(t, none.Face(FontTitle))
}

func TestArpeggio(t *testing.T) {
	a := NewArpeggio(sampleRate, []float64{440, 0}, 10*time.Millisecond, false)
	buf := make([][2]float64, 2000)

	n, ok := a.Stream(buf)
	assert.True(t, ok)
	assert.Equal(t, sampleRate.N(20*time.Millisecond), n)
	for _, s := range buf[:n] {
		assert.LessOrEqual(t, s[0], 1.0)
		assert.GreaterOrEqual(t, s[0], -1.0)
		assert.Equal(t, s[0], s[1])
	}

	n, ok = a.Stream(buf)
	assert.False(t, ok)
	assert.Zero(t, n)

	looped := NewArpeggio(sampleRate, []float64{440}, 10*time.Millisecond, true)
	n, ok = looped.Stream(buf)
	assert.True(t, ok)
	assert.Equal(t, len(buf), n)
}

func TestAudioManagerWithoutDevice(t *testing.T) {
	m := NewAudioManager(config.AudioConfig{Enabled: true, Volume: 0.5}, nil)

	assert.False(t, m.IsPlaying(TrackMainTheme))
	m.Play(TrackMainTheme)
	assert.True(t, m.IsPlaying(TrackMainTheme))
	assert.False(t, m.IsPlaying(TrackGameOver))

	assert.False(t, m.Toggle())
	assert.False(t, m.Enabled())
	assert.False(t, m.IsPlaying(TrackMainTheme))
	assert.True(t, m.Toggle())

	m.Play(TrackGameOver)
	assert.True(t, m.IsPlaying(TrackGameOver))

	m.Close()
	assert.False(t, m.IsPlaying(TrackGameOver))
}
