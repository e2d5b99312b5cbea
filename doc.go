// Package buttonnode is a touch-driven button widget for [Ebitengine], with
// the small retained-mode scene graph it lives in.
//
// # Quick start
//
//	scene := buttonnode.NewScene()
//	play := buttonnode.NewTitledButtonWithBackground("Play", tex, func(b *buttonnode.ButtonNode) {
//		log.Println("pressed")
//	})
//	play.SetPosition(320, 240)
//	scene.AddChild(play.Node())
//	buttonnode.Run(scene, buttonnode.RunConfig{Title: "Buttons", Width: 640, Height: 480})
//
// # Buttons
//
// A [ButtonNode] is a container node holding a background sprite and a title
// label. It has three visual states, [StateNormal], [StateHighlighted] and
// [StateDisabled], each with its own background slot.
//
// Touching an enabled button highlights it. Releasing inside the button
// plays [ButtonNode.NormalSound] and runs [ButtonNode.Action]. Dragging out
// of the button before releasing aborts the press. Touching a disabled
// button plays [ButtonNode.DisabledSound]. [ButtonNode.CanChangeState] and
// [ButtonNode.CanPlaySounds] gate the visual and audible parts.
//
// Sounds are requested through a [SoundPlayer]; [AudioManager] is the
// Ebitengine-backed implementation. An empty sound id never plays.
//
// # Scene graph
//
// Every visual element is a [Node]: containers, sprites and text. Children
// inherit their parent's transform and alpha and are drawn in ZIndex order.
// A node only receives touches if it and all of its ancestors are visible
// and interactable.
//
// # Touches
//
// Pointer 0 is the left mouse button and pointers 1-9 are touches. The node
// under a pointer when it goes down captures it until release: every later
// [TouchMoved], [TouchEnded] or [TouchCancelled] for that pointer goes to
// the same node, wherever the pointer is. Use [Touch.LocationIn] to express
// a touch in a node's coordinate space.
//
// [Scene.OnTouch] observes every touch event in the scene. [Scene.InjectTap]
// and friends queue synthetic input for tests, and [LoadTestScript] drives
// them from a YAML script.
//
// # Resources and settings
//
// [Resources] maps ids to images and sounds, registered in memory or listed
// in a YAML [Manifest]. [SettingsStore] persists audio preferences with
// gdata.
//
// [Ebitengine]: https://ebitengine.org
package buttonnode
