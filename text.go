package canopy

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontFamily is used by labels that don't name a family, and by any
// family that was never registered.
const DefaultFontFamily = "serif"

var (
	fontSources   = map[string]*text.GoTextFaceSource{}
	defaultSource *text.GoTextFaceSource
	defaultErr    error
)

// RegisterFont parses TrueType/OpenType data and makes it available to labels
// under family.
func RegisterFont(family string, ttfData []byte) error {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return fmt.Errorf("canopy: register font %q: %w", family, err)
	}
	fontSources[family] = source
	return nil
}

// fontFace returns a face for family at size, falling back to Go Regular.
// Returns nil only if the built-in font fails to parse.
func fontFace(family string, size float64) *text.GoTextFace {
	source, ok := fontSources[family]
	if !ok {
		source = builtinSource()
	}
	if source == nil {
		return nil
	}
	return &text.GoTextFace{Source: source, Size: size}
}

func builtinSource() *text.GoTextFaceSource {
	if defaultSource == nil && defaultErr == nil {
		defaultSource, defaultErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	}
	return defaultSource
}

// MeasureText returns the rendered width and height of s.
func MeasureText(s, family string, size float64) (width, height float64) {
	face := fontFace(family, size)
	if face == nil || size <= 0 {
		return 0, 0
	}
	m := face.Metrics()
	return text.Measure(s, face, m.HAscent+m.HDescent+m.HLineGap)
}
