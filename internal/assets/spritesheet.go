// internal/assets/spritesheet.go
package assets

import (
	"errors"
	"fmt"
	"image"

	"go-gravitar/internal/component"
)

// ErrBadDimensions is returned when the frame geometry does not fit the
// texture.
var ErrBadDimensions = errors.New("bad sprite sheet dimensions")

// SliceFrames cuts bounds into a grid of frameSize cells starting at start,
// row by row.
func SliceFrames(bounds image.Rectangle, frameSize, start image.Point) ([]image.Rectangle, error) {
	if frameSize.X <= 0 || frameSize.Y <= 0 {
		return nil, fmt.Errorf("%w: frame %v", ErrBadDimensions, frameSize)
	}
	w, h := bounds.Dx(), bounds.Dy()
	columns, rows := w/frameSize.X, h/frameSize.Y
	if columns == 0 || rows == 0 ||
		start.X+columns*frameSize.X > w || start.Y+rows*frameSize.Y > h {
		return nil, fmt.Errorf("%w: frame %v from %v in %dx%d", ErrBadDimensions, frameSize, start, w, h)
	}

	frames := make([]image.Rectangle, 0, rows*columns)
	origin := bounds.Min.Add(start)
	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			topLeft := origin.Add(image.Pt(col*frameSize.X, row*frameSize.Y))
			frames = append(frames, image.Rectangle{Min: topLeft, Max: topLeft.Add(frameSize)})
		}
	}
	return frames, nil
}

// SpriteSheet is a texture split into equally sized frames.
type SpriteSheet struct {
	id      string
	texture component.Texture
	frames  []image.Rectangle
}

func NewSpriteSheet(id string, texture component.Texture, frameSize, start image.Point) (*SpriteSheet, error) {
	frames, err := SliceFrames(texture.Bounds(), frameSize, start)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", id, err)
	}
	return &SpriteSheet{id: id, texture: texture, frames: frames}, nil
}

func (s *SpriteSheet) ID() string                  { return s.id }
func (s *SpriteSheet) Len() int                    { return len(s.frames) }
func (s *SpriteSheet) Frame(i int) image.Rectangle { return s.frames[i] }

// Sprite returns a renderable showing frame i. An out of range frame panics.
func (s *SpriteSheet) Sprite(i int) component.Renderable {
	return component.NewSprite(s.texture, s.frames[i])
}
