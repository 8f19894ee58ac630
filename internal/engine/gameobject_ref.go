package engine

// GameObjectRef refers to a GameObject by UID. Editor windows keep refs
// instead of pointers so a deleted object simply stops resolving.
type GameObjectRef struct {
	UID uint64 // UID of the referenced GameObject (0 = none)
}

// Get resolves the reference to the actual GameObject.
// Returns nil if the reference is empty (UID = 0) or if the GameObject doesn't exist.
func (r GameObjectRef) Get(scene *Scene) *GameObject {
	if r.UID == 0 || scene == nil {
		return nil
	}
	return scene.FindByUID(r.UID)
}

// IsValid reports whether the ref is set. It does not check the scene.
func (r GameObjectRef) IsValid() bool {
	return r.UID != 0
}

// Set points the ref at g; nil clears it.
func (r *GameObjectRef) Set(g *GameObject) {
	if g == nil {
		r.UID = 0
	} else {
		r.UID = g.UID
	}
}

func (r *GameObjectRef) Clear() {
	r.UID = 0
}

// RefTo returns a ref to g.
func RefTo(g *GameObject) GameObjectRef {
	var r GameObjectRef
	r.Set(g)
	return r
}
