package engine

import rl "github.com/gen2brain/raylib-go/raylib"

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// Bounded is implemented by components with a local bounding box, used to
// frame the object when the editor camera focuses on it.
type Bounded interface {
	LocalBounds() rl.BoundingBox
}

// Drawable is implemented by components that render in the 3D pass.
type Drawable interface {
	Draw()
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}
