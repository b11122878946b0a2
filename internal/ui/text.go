// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// DrawCentered рисует строку, центрированную по (cx, cy).
func DrawCentered(screen *ebiten.Image, s string, face font.Face, cx, cy int, clr color.Color) {
	b := text.BoundString(face, s)
	x := cx - b.Dx()/2 - b.Min.X
	y := cy - b.Dy()/2 - b.Min.Y
	text.Draw(screen, s, face, x, y, clr)
}

// DrawLeft рисует строку так, чтобы её верхний левый угол был в (x, y).
func DrawLeft(screen *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	b := text.BoundString(face, s)
	text.Draw(screen, s, face, x-b.Min.X, y-b.Min.Y, clr)
}
