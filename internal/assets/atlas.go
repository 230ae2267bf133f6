// internal/assets/atlas.go
package assets

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"
)

// BuildAtlas draws every sheet of the manifest onto its own texture and
// slices it into frames.
func BuildAtlas(m *Manifest, log *zap.Logger) (*SheetManager, error) {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	src := white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	sheets := NewSheetManager(log)
	for _, def := range m.Sheets {
		img := ebiten.NewImage(def.Width*def.Frames, def.Height)
		for frame := 0; frame < def.Frames; frame++ {
			drawFrame(img, src, def, frame)
		}
		sheet, err := NewSpriteSheet(def.ID, img, image.Pt(def.Width, def.Height), image.Point{})
		if err != nil {
			return nil, fmt.Errorf("build atlas: %w", err)
		}
		sheets.Add(sheet)
	}
	return sheets, nil
}

func drawFrame(dst, src *ebiten.Image, def SheetSpec, frame int) {
	pts := Outline(def.Shape, float64(def.Width), float64(def.Height), frame)
	if len(pts) < 3 {
		return
	}
	offsetX := float32(frame * def.Width)

	var path vector.Path
	path.MoveTo(offsetX+float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(offsetX+float32(p.X), float32(p.Y))
	}
	path.Close()

	c := def.RGBA()
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
	dst.DrawTriangles(vs, is, src, &ebiten.DrawTrianglesOptions{})
}
