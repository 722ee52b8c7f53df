// Package fonts provides the font faces used to label rendered graphs.
//
// The Go Regular and Go Bold TrueType fonts ship with golang.org/x/image,
// so labels render the same on every machine without system fonts.
package fonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Parsed fonts are cached after first use.
var (
	regular, bold       *truetype.Font
	regularErr, boldErr error
	regularOnce         sync.Once
	boldOnce            sync.Once
)

// Regular returns the parsed Go Regular font.
func Regular() (*truetype.Font, error) {
	regularOnce.Do(func() {
		regular, regularErr = truetype.Parse(goregular.TTF)
	})
	return regular, regularErr
}

// Bold returns the parsed Go Bold font.
func Bold() (*truetype.Font, error) {
	boldOnce.Do(func() {
		bold, boldErr = truetype.Parse(gobold.TTF)
	})
	return bold, boldErr
}

// Face returns a Go Regular face of the given size in points at 72 dpi,
// so one point is one pixel.
func Face(size float64) (font.Face, error) {
	f, err := Regular()
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: size, Hinting: font.HintingFull}), nil
}

// BoldFace is [Face] for Go Bold.
func BoldFace(size float64) (font.Face, error) {
	f, err := Bold()
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: size, Hinting: font.HintingFull}), nil
}

// FontFamily is the family name used in DOT output.
const FontFamily = "Helvetica"
