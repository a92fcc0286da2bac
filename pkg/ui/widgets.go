package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	colorBackground = color.RGBA{10, 8, 22, 255}
	colorRoad       = color.RGBA{28, 26, 44, 255}
	colorEdge       = color.RGBA{255, 40, 180, 255}
	colorDash       = color.RGBA{40, 230, 255, 200}
	colorPlayer     = color.RGBA{40, 230, 255, 255}
	colorOpponent   = color.RGBA{255, 70, 90, 255}
	colorText       = color.RGBA{235, 235, 255, 255}
	colorMuted      = color.RGBA{150, 150, 180, 255}
	colorAccent     = color.RGBA{255, 220, 60, 255}
)

var face = text.NewGoXFace(bitmapfont.Face)

// fillRect draws a solid rectangle
func fillRect(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

// drawButton draws a bordered box with its label centered
func drawButton(screen *ebiten.Image, label string, x, y, width, height float64, bgColor, textColor color.Color) {
	fillRect(screen, x, y, width, height, bgColor)
	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 2, colorEdge, false)

	// bitmap font is 16px tall, so the baseline sits 8px above center
	textWidth := text.Advance(label, face)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x+width/2-textWidth/2, y+height/2-8)
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, label, face, op)
}

// drawText draws str centered on (centerX, centerY) at the given pixel size
func drawText(screen *ebiten.Image, str string, centerX, centerY float64, size float64, clr color.Color) {
	scale := size / 16.0
	textWidth := text.Advance(str, face) * scale

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(centerX-textWidth/2, centerY-16.0*scale/2)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// drawTextLeft draws str with its top-left corner at (x, y)
func drawTextLeft(screen *ebiten.Image, str string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}
