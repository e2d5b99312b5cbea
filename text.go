package buttonnode

import (
	"bytes"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// FallbackFontName is the name the bundled Go Regular face is registered
// under. Text asking for an unregistered font name renders with it.
const FallbackFontName = "GoRegular"

// font registry (no locking, the scene graph is single-threaded)
var fontSources = map[string]*text.GoTextFaceSource{}

// RegisterFont parses TTF/OTF data and makes it available to text nodes
// under name. Registering a name twice replaces the earlier face.
func RegisterFont(name string, ttf []byte) error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return fmt.Errorf("register font %q: %w", name, err)
	}
	fontSources[name] = src
	return nil
}

// HasFont reports whether name resolves to a registered face without
// falling back.
func HasFont(name string) bool {
	_, ok := fontSources[name]
	return ok
}

func fallbackFontSource() *text.GoTextFaceSource {
	if src, ok := fontSources[FallbackFontName]; ok {
		return src
	}
	if err := RegisterFont(FallbackFontName, goregular.TTF); err != nil {
		log.Printf("buttonnode: %v", err)
		return nil
	}
	return fontSources[FallbackFontName]
}

func fontSource(name string) *text.GoTextFaceSource {
	if src, ok := fontSources[name]; ok {
		return src
	}
	if globalDebug && name != "" {
		log.Printf("buttonnode: font %q not registered, using %s", name, FallbackFontName)
	}
	return fallbackFontSource()
}

// TextBlock holds a text node's content and styling.
type TextBlock struct {
	Content  string
	FontName string
	FontSize float64
	Color    Color
	Align    TextAlign

	face     *text.GoTextFace
	faceName string
	faceSize float64
}

// Face returns the text/v2 face for the block's current font name and size,
// or nil if no font source is available.
func (tb *TextBlock) Face() *text.GoTextFace {
	if tb.face != nil && tb.faceName == tb.FontName && tb.faceSize == tb.FontSize {
		return tb.face
	}
	src := fontSource(tb.FontName)
	if src == nil {
		return nil
	}
	tb.face = &text.GoTextFace{Source: src, Size: tb.FontSize}
	tb.faceName = tb.FontName
	tb.faceSize = tb.FontSize
	return tb.face
}

// Measure returns the laid-out width and height of the content.
func (tb *TextBlock) Measure() (w, h float64) {
	face := tb.Face()
	if face == nil || tb.Content == "" {
		return 0, 0
	}
	return text.Measure(tb.Content, face, face.Metrics().HLineGap+tb.FontSize)
}

// ascent returns the distance from the top of the line box to the baseline.
func (tb *TextBlock) ascent() float64 {
	face := tb.Face()
	if face == nil {
		return 0
	}
	return face.Metrics().HAscent
}
