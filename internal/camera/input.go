package camera

import rl "github.com/gen2brain/raylib-go/raylib"

// ReadInput samples the keyboard and mouse. Right mouse button looks.
func ReadInput() Input {
	shift := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
	return Input{
		MouseDelta: rl.GetMouseDelta(),
		Scroll:     rl.GetMouseWheelMove(),
		Look:       rl.IsMouseButtonDown(rl.MouseButtonRight),
		Forward:    rl.IsKeyDown(rl.KeyW),
		Back:       rl.IsKeyDown(rl.KeyS),
		Left:       rl.IsKeyDown(rl.KeyA),
		Right:      rl.IsKeyDown(rl.KeyD),
		Up:         rl.IsKeyDown(rl.KeyE),
		Down:       rl.IsKeyDown(rl.KeyQ),
		Boost:      shift,
	}
}
