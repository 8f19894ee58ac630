package editor

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderedWindow struct{}

func (orderedWindow) Name() string               { return "Ordered" }
func (orderedWindow) NewState() any              { return new(int) }
func (orderedWindow) UI(any, *WindowContext, UI) {}
func (orderedWindow) MenuBarOrder() int          { return 10 }
func (orderedWindow) DefaultSize() rl.Vector2    { return rl.NewVector2(200, 100) }

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := newRegistry()
	require.NoError(t, r.add(dockA{}))

	err := r.add(dockA{})
	require.ErrorIs(t, err, ErrWindowAlreadyRegistered)
	assert.Len(t, r.order, 1)
}

func TestRegistryCreatesState(t *testing.T) {
	r := newRegistry()
	require.NoError(t, r.add(orderedWindow{}))

	state, ok := r.states[IDOf[orderedWindow]()]
	require.True(t, ok)
	assert.IsType(t, new(int), state)
}

func TestRegistryDefaults(t *testing.T) {
	r := newRegistry()
	require.NoError(t, r.add(dockA{}))
	require.NoError(t, r.add(orderedWindow{}))

	plain, ok := r.get(IDOf[dockA]())
	require.True(t, ok)
	assert.Equal(t, "A", plain.name)
	assert.Equal(t, defaultWindowSize, plain.defaultSize)
	assert.Equal(t, DefaultMenuBarOrder, plain.menuBarOrder)

	ordered, ok := r.get(IDOf[orderedWindow]())
	require.True(t, ok)
	assert.Equal(t, rl.NewVector2(200, 100), ordered.defaultSize)
	assert.Equal(t, 10, ordered.menuBarOrder)
}

func TestMenuBarOrderIsStable(t *testing.T) {
	r := newRegistry()
	require.NoError(t, r.add(dockA{}))
	require.NoError(t, r.add(orderedWindow{}))
	require.NoError(t, r.add(dockB{}))

	var names []string
	for _, d := range r.menuBarOrder() {
		names = append(names, d.name)
	}
	assert.Equal(t, []string{"Ordered", "A", "B"}, names)

	// Registration order itself is untouched.
	assert.Equal(t, "A", r.order[0].name)
}

func TestIDOfMatchesIDFor(t *testing.T) {
	assert.Equal(t, IDOf[dockA](), IDFor(dockA{}))
	assert.NotEqual(t, IDOf[dockA](), IDOf[dockB]())
	assert.True(t, WindowID{}.IsZero())
	assert.Equal(t, "<none>", WindowID{}.String())
}
