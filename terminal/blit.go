//go:build !js

package main

import (
	"image"
	"image/draw"

	"github.com/gdamore/tcell/v2"
)

const halfBlock = '▀'

// pixelColor reads a premultiplied pixel as if composited over black.
func pixelColor(img *image.RGBA, x, y int) tcell.Color {
	if !image.Pt(x, y).In(img.Rect) {
		return tcell.ColorBlack
	}
	c := img.RGBAAt(x, y)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// blit draws img with its top-left corner at cell at. The upper pixel of
// each pair is the foreground of a half block, the lower one its background.
func blit(s tcell.Screen, img *image.RGBA, at image.Point) {
	b := img.Rect
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		row := at.Y + (y-b.Min.Y)/2
		for x := b.Min.X; x < b.Max.X; x++ {
			style := tcell.StyleDefault.
				Foreground(pixelColor(img, x, y)).
				Background(pixelColor(img, x, y+1))
			s.SetContent(at.X+x-b.Min.X, row, halfBlock, nil, style)
		}
	}
}

// compose lays the translucent overlay on top of the opaque backdrop.
func compose(dst, backdrop, overlay *image.RGBA) {
	draw.Draw(dst, dst.Rect, backdrop, backdrop.Rect.Min, draw.Src)
	draw.Draw(dst, dst.Rect, overlay, overlay.Rect.Min, draw.Over)
}
