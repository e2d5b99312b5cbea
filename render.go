package buttonnode

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// commandType identifies the kind of draw command.
type commandType uint8

const (
	commandSprite commandType = iota // DrawImage
	commandText                      // text.Draw
)

// drawCommand is a single draw instruction emitted during traversal, in
// painter order.
type drawCommand struct {
	kind      commandType
	node      *Node
	transform [6]float64
	alpha     float64
}

// traverse walks the tree depth-first in ZIndex order, refreshing world
// transforms and emitting draw commands for visible sprites and text.
func (s *Scene) traverse(n *Node, parentTransform [6]float64, parentAlpha float64, parentRecomputed bool) {
	if !n.Visible {
		return
	}
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldTransform = multiplyAffine(parentTransform, computeLocalTransform(n))
		n.worldAlpha = parentAlpha * n.Alpha
		n.transformDirty = false
	}

	switch n.Type {
	case NodeTypeSprite:
		if !n.Texture.IsEmpty() {
			s.commands = append(s.commands, drawCommand{kind: commandSprite, node: n, transform: n.worldTransform, alpha: n.worldAlpha})
		}
	case NodeTypeText:
		if n.TextBlock != nil && n.TextBlock.Content != "" {
			s.commands = append(s.commands, drawCommand{kind: commandText, node: n, transform: n.worldTransform, alpha: n.worldAlpha})
		}
	}

	for _, child := range n.sorted() {
		s.traverse(child, n.worldTransform, n.worldAlpha, recompute)
	}
}

// geoM converts an affine matrix to an ebiten.GeoM.
func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// submit draws the collected commands onto target.
func (s *Scene) submit(target *ebiten.Image) {
	var op ebiten.DrawImageOptions
	for i := range s.commands {
		cmd := &s.commands[i]
		switch cmd.kind {
		case commandSprite:
			submitSprite(target, cmd, &op)
		case commandText:
			submitText(target, cmd)
		}
	}
}

func submitSprite(target *ebiten.Image, cmd *drawCommand, op *ebiten.DrawImageOptions) {
	n := cmd.node
	img := n.Texture.drawImage()
	if img == nil {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op.GeoM.Reset()
	op.GeoM.Scale(n.Width/float64(b.Dx()), n.Height/float64(b.Dy()))
	op.GeoM.Concat(geoM(cmd.transform))
	op.ColorScale.Reset()
	a := float32(n.Color.A * cmd.alpha)
	op.ColorScale.Scale(float32(n.Color.R)*a, float32(n.Color.G)*a, float32(n.Color.B)*a, a)
	target.DrawImage(img, op)
}

func submitText(target *ebiten.Image, cmd *drawCommand) {
	tb := cmd.node.TextBlock
	face := tb.Face()
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	switch tb.Align {
	case TextAlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case TextAlignRight:
		op.PrimaryAlign = text.AlignEnd
	default:
		op.PrimaryAlign = text.AlignStart
	}
	// The node's origin is the baseline of the first line.
	op.GeoM.Translate(0, -tb.ascent())
	op.GeoM.Concat(geoM(cmd.transform))
	a := float32(tb.Color.A * cmd.alpha)
	op.ColorScale.Scale(float32(tb.Color.R)*a, float32(tb.Color.G)*a, float32(tb.Color.B)*a, a)
	text.Draw(target, tb.Content, face, op)
}
