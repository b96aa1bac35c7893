package game

import (
	"bytes"
	"image/color"

	"github.com/Garsondee/Clock-Pong/internal/pong"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gomonobold"
)

// screenRenderer paints pong primitives onto an ebiten image.
type screenRenderer struct {
	dst   *ebiten.Image
	fonts *faceCache
}

func (r *screenRenderer) DrawRect(x, y, w, h float64, c color.Color) {
	vector.FillRect(r.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (r *screenRenderer) DrawCircle(cx, cy, rad float64, c color.Color) {
	vector.FillCircle(r.dst, float32(cx), float32(cy), float32(rad), c, true)
}

func (r *screenRenderer) DrawText(s string, x, y float64, style pong.TextStyle, c color.Color) {
	face := r.fonts.face(style.Size)
	if face == nil {
		return
	}
	scaleY := style.ScaleY
	if scaleY == 0 {
		scaleY = 1
	}

	op := &text.DrawOptions{}
	op.PrimaryAlign = textAlign(style.Align)
	// text/v2 positions the top of the line box; y is a baseline.
	op.GeoM.Scale(1, scaleY)
	op.GeoM.Translate(x, y-face.Metrics().HAscent*scaleY)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(r.dst, s, face, op)
}

func textAlign(a pong.Align) text.Align {
	switch a {
	case pong.AlignCenter:
		return text.AlignCenter
	case pong.AlignRight:
		return text.AlignEnd
	default:
		return text.AlignStart
	}
}

// faceCache holds one Go Mono Bold face per requested size.
type faceCache struct {
	src   *text.GoTextFaceSource
	faces map[float64]*text.GoTextFace
}

func newFaceCache() *faceCache {
	return &faceCache{faces: make(map[float64]*text.GoTextFace)}
}

// face returns nil if the embedded font fails to parse, which leaves text
// undrawn rather than stopping the game.
func (fc *faceCache) face(size float64) *text.GoTextFace {
	if f, ok := fc.faces[size]; ok {
		return f
	}
	if fc.src == nil {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(gomonobold.TTF))
		if err != nil {
			return nil
		}
		fc.src = src
	}
	f := &text.GoTextFace{Source: fc.src, Size: size}
	fc.faces[size] = f
	return f
}
