package buttonnode

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw submission time.
type Color struct {
	R, G, B, A float64
}

var (
	// ColorWhite is the default sprite tint (no color modification).
	ColorWhite = Color{1, 1, 1, 1}
	// ColorBlack is the default button title color.
	ColorBlack = Color{0, 0, 0, 1}
)

// RGBA converts the color to a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// MidX returns the horizontal center of the rectangle.
func (r Rect) MidX() float64 { return r.X + r.Width/2 }

// MidY returns the vertical center of the rectangle.
func (r Rect) MidY() float64 { return r.Y + r.Height/2 }

// MaxX returns the right edge of the rectangle.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MaxY returns the bottom edge of the rectangle.
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no visual output
	NodeTypeSprite                    // renders a Texture stretched to Width x Height
	NodeTypeText                      // renders a TextBlock
)

// TouchPhase identifies where a touch is in its gesture.
type TouchPhase uint8

const (
	TouchBegan     TouchPhase = iota // pointer went down on a node
	TouchMoved                       // captured pointer moved
	TouchEnded                       // captured pointer was released
	TouchCancelled                   // the system aborted the gesture
)

// String returns the phase name.
func (p TouchPhase) String() string {
	switch p {
	case TouchBegan:
		return "began"
	case TouchMoved:
		return "moved"
	case TouchEnded:
		return "ended"
	case TouchCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// TextAlign controls horizontal text alignment around a text node's origin.
type TextAlign uint8

const (
	TextAlignCenter TextAlign = iota // center on the origin (default, like a button title)
	TextAlignLeft                    // text starts at the origin
	TextAlignRight                   // text ends at the origin
)
