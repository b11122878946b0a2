// internal/assets/fonts.go
package assets

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/sync/errgroup"
)

// Размеры шрифтов, pt при 72 DPI
const (
	TitleSize   = 48
	RegularSize = 20
	SmallSize   = 14
)

// Library holds every font face the presentation uses.
type Library struct {
	Title    font.Face
	Regular  font.Face
	Small    font.Face
	Fallback bool // true, если используется basicfont
}

// FallbackLibrary returns a library backed by the built-in bitmap face.
func FallbackLibrary() *Library {
	f := basicfont.Face7x13
	return &Library{Title: f, Regular: f, Small: f, Fallback: true}
}

// Load parses the bundled Go Regular font into all faces in parallel.
// It never returns a nil library: on failure the fallback library is
// returned together with the error.
func Load(ctx context.Context) (*Library, error) {
	return LoadFrom(ctx, bundled())
}

// LoadFrom is Load for arbitrary TrueType/OpenType data.
func LoadFrom(ctx context.Context, data []byte) (*Library, error) {
	tt, err := opentype.Parse(data)
	if err != nil {
		log.Printf("assets: falling back to basicfont: %v", err)
		return FallbackLibrary(), fmt.Errorf("parse font: %w", err)
	}

	sizes := []float64{TitleSize, RegularSize, SmallSize}
	faces := make([]font.Face, len(sizes))

	g, ctx := errgroup.WithContext(ctx)
	for i, size := range sizes {
		i, size := i, size
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			face, err := opentype.NewFace(tt, &opentype.FaceOptions{
				Size:    size,
				DPI:     72,
				Hinting: font.HintingFull,
			})
			if err != nil {
				return fmt.Errorf("face %vpt: %w", size, err)
			}
			faces[i] = face
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Printf("assets: falling back to basicfont: %v", err)
		return FallbackLibrary(), err
	}

	return &Library{Title: faces[0], Regular: faces[1], Small: faces[2]}, nil
}
