package engine

import (
	"slices"
	"testing"
)

func TestSceneAddGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Player")

	scene.AddGameObject(obj)

	if len(scene.GameObjects) != 1 || scene.GameObjects[0] != obj {
		t.Fatalf("Expected scene to hold Player, got %v", scene.GameObjects)
	}
	if obj.Scene != scene {
		t.Error("GameObject.Scene not set")
	}
	if scene.FindByUID(obj.UID) != obj {
		t.Error("FindByUID should resolve an added object")
	}
	if scene.FindByUID(99999) != nil {
		t.Error("FindByUID should return nil for an unknown UID")
	}
}

func TestSceneRemoveGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj1 := NewGameObject("Player")
	obj2 := NewGameObject("Enemy")
	scene.AddGameObject(obj1)
	scene.AddGameObject(obj2)

	scene.RemoveGameObject(obj1)

	if len(scene.GameObjects) != 1 || scene.GameObjects[0] != obj2 {
		t.Fatalf("Expected only Enemy to remain, got %v", scene.GameObjects)
	}
	if scene.FindByUID(obj1.UID) != nil {
		t.Error("Removed GameObject still in UID map")
	}
	if obj1.Scene != nil {
		t.Error("Removed GameObject should not point at the scene")
	}
}

func TestSceneRemoveWithDescendants(t *testing.T) {
	scene := NewScene("Test")
	root := NewGameObject("Root")
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")
	for _, g := range []*GameObject{root, parent, child} {
		scene.AddGameObject(g)
	}
	root.AddChild(parent)
	parent.AddChild(child)

	scene.RemoveGameObject(parent)

	if len(scene.GameObjects) != 1 || scene.GameObjects[0] != root {
		t.Fatalf("Expected only Root to remain, got %v", scene.GameObjects)
	}
	if len(root.Children) != 0 {
		t.Errorf("Expected Root to lose its child, got %d children", len(root.Children))
	}
	if scene.FindByUID(child.UID) != nil {
		t.Error("Grandchild still in UID map after removal")
	}
}

func TestSceneFind(t *testing.T) {
	scene := NewScene("Test")
	obj1 := NewGameObject("Enemy1")
	obj2 := NewGameObject("Enemy2")
	obj3 := NewGameObject("Player")
	obj1.Tags = []string{"enemy", "ai"}
	obj2.Tags = []string{"enemy"}
	obj3.Tags = []string{"player"}
	scene.AddGameObject(obj1)
	scene.AddGameObject(obj2)
	scene.AddGameObject(obj3)

	if got := scene.FindByTag("enemy"); len(got) != 2 {
		t.Errorf("Expected 2 enemies, got %d", len(got))
	}
	if got := scene.FindByTag("nonexistent"); len(got) != 0 {
		t.Errorf("Expected no match, got %d", len(got))
	}
	if scene.FindByName("Player") != obj3 {
		t.Error("FindByName failed")
	}
	if scene.FindByName("DoesNotExist") != nil {
		t.Error("FindByName should return nil for an unknown name")
	}
}

func TestSceneWalkOrder(t *testing.T) {
	scene := NewScene("Test")
	a := NewGameObject("A")
	b := NewGameObject("B")
	a1 := NewGameObject("A1")
	a2 := NewGameObject("A2")
	a1x := NewGameObject("A1x")
	// Creation order differs from tree order.
	for _, g := range []*GameObject{a2, a, a1x, b, a1} {
		scene.AddGameObject(g)
	}
	a.AddChild(a1)
	a.AddChild(a2)
	a1.AddChild(a1x)

	var names []string
	var depths []int
	scene.Walk(func(g *GameObject, depth int) bool {
		names = append(names, g.Name)
		depths = append(depths, depth)
		return true
	})

	wantNames := []string{"A", "A1", "A1x", "A2", "B"}
	wantDepths := []int{0, 1, 2, 1, 0}
	if !slices.Equal(names, wantNames) {
		t.Errorf("Expected walk order %v, got %v", wantNames, names)
	}
	if !slices.Equal(depths, wantDepths) {
		t.Errorf("Expected depths %v, got %v", wantDepths, depths)
	}
}

func TestSceneWalkSkipsChildren(t *testing.T) {
	scene := NewScene("Test")
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")
	scene.AddGameObject(parent)
	scene.AddGameObject(child)
	parent.AddChild(child)

	visited := 0
	scene.Walk(func(g *GameObject, depth int) bool {
		visited++
		return false
	})

	if visited != 1 {
		t.Errorf("Expected only the root to be visited, got %d", visited)
	}
}

type countingComponent struct {
	BaseComponent
	starts  int
	updates int
}

func (c *countingComponent) Start()            { c.starts++ }
func (c *countingComponent) Update(dt float32) { c.updates++ }

func TestSceneStartOnceAndSkipInactive(t *testing.T) {
	scene := NewScene("Test")
	on := NewGameObject("On")
	off := NewGameObject("Off")
	off.Active = false
	onCounter := &countingComponent{}
	offCounter := &countingComponent{}
	on.AddComponent(onCounter)
	off.AddComponent(offCounter)
	scene.AddGameObject(on)
	scene.AddGameObject(off)

	scene.Start()
	scene.Start()
	scene.Update(0.016)

	if onCounter.starts != 1 {
		t.Errorf("Expected Start to run once, got %d", onCounter.starts)
	}
	if onCounter.updates != 1 {
		t.Errorf("Expected 1 update for the active object, got %d", onCounter.updates)
	}
	if offCounter.updates != 0 {
		t.Errorf("Inactive object should not update, got %d", offCounter.updates)
	}
}

func TestSceneAddWithoutMap(t *testing.T) {
	scene := &Scene{Name: "Zero"}
	obj := NewGameObject("Test")

	scene.AddGameObject(obj)

	if scene.FindByUID(obj.UID) != obj {
		t.Error("A zero Scene should build its UID map on first add")
	}
}
