package buttonnode

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a Node simultaneously.
// Create one with TweenPosition, TweenScale, TweenAlpha, TweenColor or
// TweenPulse and call Update(dt) each frame. The group writes values and
// marks the node dirty; it stops as soon as the target is disposed.
//
// There is no global animation manager; callers own their groups.
type TweenGroup struct {
	legs   [4][]*gween.Tween
	leg    [4]int
	count  int
	fields [4]*float64
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		if g.advance(i, dt) {
			continue
		}
		allDone = false
	}
	g.Done = allDone
	if g.target != nil {
		g.target.MarkDirty()
	}
}

// advance steps field i by dt, carrying any overflow into the next leg.
// It reports whether the last leg has finished.
func (g *TweenGroup) advance(i int, dt float32) bool {
	legs := g.legs[i]
	for g.leg[i] < len(legs) {
		tw := legs[g.leg[i]]
		val, finished := tw.Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			return false
		}
		dt = tw.Overflow
		g.leg[i]++
		if dt <= 0 {
			break
		}
	}
	return g.leg[i] >= len(legs)
}

func (g *TweenGroup) add(field *float64, tweens ...*gween.Tween) {
	g.legs[g.count] = tweens
	g.fields[g.count] = field
	g.count++
}

// TweenPosition animates node.X and node.Y to the target coordinates.
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	g.add(&node.X, gween.New(float32(node.X), float32(toX), duration, fn))
	g.add(&node.Y, gween.New(float32(node.Y), float32(toY), duration, fn))
	return g
}

// TweenScale animates node.ScaleX and node.ScaleY to the target values.
func TweenScale(node *Node, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	g.add(&node.ScaleX, gween.New(float32(node.ScaleX), float32(toSX), duration, fn))
	g.add(&node.ScaleY, gween.New(float32(node.ScaleY), float32(toSY), duration, fn))
	return g
}

// TweenAlpha animates node.Alpha to the target value.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	g.add(&node.Alpha, gween.New(float32(node.Alpha), float32(to), duration, fn))
	return g
}

// TweenColor animates the four components of node.Color to the target tint.
func TweenColor(node *Node, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	g.add(&node.Color.R, gween.New(float32(node.Color.R), float32(to.R), duration, fn))
	g.add(&node.Color.G, gween.New(float32(node.Color.G), float32(to.G), duration, fn))
	g.add(&node.Color.B, gween.New(float32(node.Color.B), float32(to.B), duration, fn))
	g.add(&node.Color.A, gween.New(float32(node.Color.A), float32(to.A), duration, fn))
	return g
}

// TweenPulse scales the node up to peak and back to its current scale,
// spending half the duration on each leg.
func TweenPulse(node *Node, peak float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	half := duration / 2
	sx, sy := float32(node.ScaleX), float32(node.ScaleY)
	px, py := sx*float32(peak), sy*float32(peak)
	g.add(&node.ScaleX, gween.New(sx, px, half, fn), gween.New(px, sx, half, fn))
	g.add(&node.ScaleY, gween.New(sy, py, half, fn), gween.New(py, sy, half, fn))
	return g
}
