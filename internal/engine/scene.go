package engine

import "slices"

// Scene owns a flat list of objects in creation order. Parent links give the
// nesting; Walk visits them as a tree.
type Scene struct {
	Name        string
	GameObjects []*GameObject
	uidMap      map[uint64]*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		uidMap:      make(map[uint64]*GameObject),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = make(map[uint64]*GameObject)
	}
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
	s.uidMap[g.UID] = g
}

// RemoveGameObject removes g and all of its descendants.
func (s *Scene) RemoveGameObject(g *GameObject) {
	for _, child := range slices.Clone(g.Children) {
		s.RemoveGameObject(child)
	}
	if g.Parent != nil {
		g.Parent.RemoveChild(g)
	}
	if i := slices.Index(s.GameObjects, g); i >= 0 {
		s.GameObjects = slices.Delete(s.GameObjects, i, i+1)
	}
	delete(s.uidMap, g.UID)
	g.Scene = nil
}

func (s *Scene) FindByUID(uid uint64) *GameObject {
	return s.uidMap[uid]
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

// Walk visits every object depth first, roots in scene order and children in
// the order they were attached. Returning false from fn skips g's children.
func (s *Scene) Walk(fn func(g *GameObject, depth int) bool) {
	for _, g := range s.GameObjects {
		if g.Parent == nil {
			s.walk(g, 0, fn)
		}
	}
}

func (s *Scene) walk(g *GameObject, depth int, fn func(*GameObject, int) bool) {
	if g.Scene != s || !fn(g, depth) {
		return
	}
	for _, child := range g.Children {
		s.walk(child, depth+1, fn)
	}
}

// Start starts every object that has not been started yet.
func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
}
