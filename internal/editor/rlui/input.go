package rlui

import rl "github.com/gen2brain/raylib-go/raylib"

const doubleClickTime = 0.3

// clickTracker detects double clicks: two clicks on the same target within
// doubleClickTime seconds.
type clickTracker struct {
	lastTime   float64
	lastTarget string
}

func (t *clickTracker) click(now float64, target string) (double bool) {
	double = now-t.lastTime < doubleClickTime && t.lastTarget == target
	if double {
		// A third click starts a new pair.
		t.lastTarget = ""
	} else {
		t.lastTarget = target
	}
	t.lastTime = now
	return double
}

// layer orders the parts of the UI that can overlap. Widgets are blocked by
// rectangles of higher layers drawn on the previous frame.
type layer int

const (
	layerBase layer = iota
	layerWindow
	layerPopup
)

type chromeRect struct {
	rect  rl.Rectangle
	layer layer
	owner uint32
}

// blockedAt reports whether a widget on l, owned by owner, is covered at pos.
func blockedAt(chrome []chromeRect, pos rl.Vector2, l layer, owner uint32) bool {
	for _, c := range chrome {
		if c.layer <= l {
			continue
		}
		if c.layer == layerWindow && l == layerWindow && c.owner == owner {
			continue
		}
		if rl.CheckCollisionPointRec(pos, c.rect) {
			return true
		}
	}
	return false
}

func overChrome(chrome []chromeRect, pos rl.Vector2) bool {
	for _, c := range chrome {
		if rl.CheckCollisionPointRec(pos, c.rect) {
			return true
		}
	}
	return false
}

type grabKind int

const (
	grabNone grabKind = iota
	grabSplit
	grabWindowMove
	grabWindowResize
)

// grab is a drag in progress. It lasts until the primary button is released.
type grab struct {
	kind   grabKind
	node   int
	window uint32
	offset rl.Vector2
}

// splitFraction converts a separator drag to the share of the left or top child.
func splitFraction(rect rl.Rectangle, pos rl.Vector2, horizontal bool) float32 {
	var f float32
	if horizontal {
		if rect.Width <= 0 {
			return 0.5
		}
		f = (pos.X - rect.X) / rect.Width
	} else {
		if rect.Height <= 0 {
			return 0.5
		}
		f = (pos.Y - rect.Y) / rect.Height
	}
	return rl.Clamp(f, 0.1, 0.9)
}

// separatorRect is the draggable strip between the two children of a split.
func separatorRect(rect rl.Rectangle, fraction float32, horizontal bool) rl.Rectangle {
	const thickness = 6
	if horizontal {
		x := rect.X + rect.Width*fraction
		return rl.NewRectangle(x-thickness/2, rect.Y, thickness, rect.Height)
	}
	y := rect.Y + rect.Height*fraction
	return rl.NewRectangle(rect.X, y-thickness/2, rect.Width, thickness)
}
