package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Draw scales the framebuffer into area and draws it on the screen.
// Every terminal cell shows two framebuffer rows, so the image is sampled
// at twice the area's height.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	cols, rows := area.Dx(), area.Dy()
	if cols <= 0 || rows <= 0 || fb.Width == 0 || fb.Height == 0 {
		return
	}

	// Each cell is ▀ (upper half block) with fg=top color and bg=bottom color
	for row := 0; row < rows; row++ {
		topY := (2 * row) * fb.Height / (2 * rows)
		botY := (2*row + 1) * fb.Height / (2 * rows)

		for col := 0; col < cols; col++ {
			x := col * fb.Width / cols

			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: rgbaToColor(fb.GetPixel(x, topY)),
					Bg: rgbaToColor(fb.GetPixel(x, botY)),
				},
			}
			scr.SetCell(area.Min.X+col, area.Min.Y+row, cell)
		}
	}
}

// rgbaToColor converts color.RGBA to Go's color.Color interface.
func rgbaToColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil // Transparent = no color
	}
	return c
}
