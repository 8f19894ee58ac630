package editor

// Interaction is the part of the screen that owns the current pointer gesture.
type Interaction int

const (
	InteractionNone Interaction = iota
	InteractionViewport
	InteractionEditor
)

func (i Interaction) String() string {
	switch i {
	case InteractionViewport:
		return "viewport"
	case InteractionEditor:
		return "editor"
	default:
		return "none"
	}
}

// nextInteraction advances the owner of the pointer gesture. Ownership is
// fixed when a press starts and kept until every button is released, so a
// drag that crosses the viewport border does not change hands.
func nextInteraction(current Interaction, pressed, pointerUsed bool) Interaction {
	switch {
	case !pressed:
		return InteractionNone
	case current == InteractionNone && pointerUsed:
		return InteractionEditor
	case current == InteractionNone:
		return InteractionViewport
	default:
		return current
	}
}
