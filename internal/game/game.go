// Package game opens the window and runs the frame loop: it updates the
// world, renders it into the editor viewport and runs the editor on top.
package game

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"dockeditor/internal/camera"
	"dockeditor/internal/config"
	"dockeditor/internal/editor"
	"dockeditor/internal/editor/rlui"
	"dockeditor/internal/logging"
	"dockeditor/internal/windows"
	"dockeditor/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const cubeCount = 15

var (
	backgroundColor = rl.NewColor(20, 20, 30, 255)
	viewportColor   = rl.NewColor(32, 34, 44, 255)
)

type Game struct {
	World  *world.World
	Editor *editor.Editor

	cfg   config.Config
	log   *slog.Logger
	uiLog *slog.Logger
	ui    *rlui.Context

	target     rl.RenderTexture2D
	targetSize [2]int32
}

// New builds the world and the editor. It does not touch the window, so it
// can run before Run.
func New(cfg config.Config, logs io.Writer) (*Game, error) {
	level, ok := logging.ParseLevel(cfg.Log.Level)
	g := &Game{
		World: world.New(),
		cfg:   cfg,
		log:   logging.New("game", level, logs),
		uiLog: logging.New("ui", level, logs),
	}
	if !ok {
		g.log.Warn("unknown log level, using info", "level", cfg.Log.Level)
	}

	g.Editor = editor.New(world.PrimaryWindow, cfg.Editor.AlwaysActive,
		editor.WithLogger(logging.New("editor", level, logs)))
	if err := windows.RegisterDefaults(g.Editor); err != nil {
		return nil, fmt.Errorf("editor setup: %w", err)
	}
	if cfg.Editor.DefaultLayout {
		windows.DefaultLayout(g.Editor)
	}
	if !cfg.Editor.AlwaysActive {
		g.Editor.SetActive(cfg.Editor.StartActive)
	}
	g.Editor.Events().AddListener(func(ev editor.Event) {
		if t, ok := ev.(editor.ToggleEvent); ok {
			g.log.Info("editor toggled", "active", t.NowActive)
		}
	})

	g.World.Populate(cubeCount, rand.New(rand.NewSource(time.Now().UnixNano())))
	return g, nil
}

func (g *Game) Run() error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(g.cfg.Window.Width), int32(g.cfg.Window.Height), g.cfg.Window.Title)
	if !rl.IsWindowReady() {
		return errors.New("raylib window could not be created")
	}
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(g.cfg.Window.TargetFPS))
	rl.SetExitKey(0)

	rlui.LoadTheme(g.uiLog, g.cfg.UI.Font, g.cfg.UI.BoldFont)
	g.ui = rlui.New(g.uiLog)

	if g.cfg.Window.Fullscreen {
		if win, ok := g.World.DisplayWindow(world.PrimaryWindow); ok {
			win.SetMode(editor.WindowModeBorderlessFullscreen)
		}
	}

	defer g.World.Unload()
	defer g.unloadTarget()

	g.log.Info("editor started", "active", g.Editor.Active(), "objects", len(g.World.Scene.GameObjects))
	for !rl.WindowShouldClose() {
		g.frame()
	}
	return nil
}

func (g *Game) frame() {
	deltaTime := rl.GetFrameTime()

	g.World.Update(deltaTime, g.Editor.Active())
	windows.DriveCamera(g.Editor, camera.ReadInput(), deltaTime)

	view := g.viewRect()
	g.renderScene(view)

	rl.BeginDrawing()
	rl.ClearBackground(backgroundColor)
	rl.DrawTexturePro(
		g.target.Texture,
		rl.NewRectangle(0, 0, float32(g.target.Texture.Width), -float32(g.target.Texture.Height)),
		view,
		rl.Vector2{},
		0,
		rl.White,
	)

	g.ui.BeginFrame()
	g.Editor.Frame(g.World, g.ui)
	g.pick()
	g.ui.EndFrame()
	rl.EndDrawing()

	g.World.RecordFrame(deltaTime, rl.GetFPS())
	g.handleEvents(g.Editor.Events().Drain())
}

// viewRect is where the game is shown: the editor viewport from the last
// frame while editing, otherwise the whole screen.
func (g *Game) viewRect() rl.Rectangle {
	if g.Editor.Active() {
		return g.Editor.Viewport()
	}
	return rl.NewRectangle(0, 0, float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
}

func (g *Game) renderScene(view rl.Rectangle) {
	w, h := max(int32(view.Width), 1), max(int32(view.Height), 1)
	if g.targetSize != [2]int32{w, h} {
		g.unloadTarget()
		g.target = rl.LoadRenderTexture(w, h)
		g.targetSize = [2]int32{w, h}
	}

	rl.BeginTextureMode(g.target)
	rl.ClearBackground(viewportColor)
	g.World.Draw(g.cameraView(), float32(w)/float32(h))
	rl.EndTextureMode()
}

func (g *Game) cameraView() rl.Camera3D {
	if rig, ok := windows.CameraRig(g.Editor); ok {
		return rig.Camera3D()
	}
	return rl.Camera3D{
		Position:   rl.NewVector3(14, 10, 14),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}

func (g *Game) unloadTarget() {
	if g.targetSize != [2]int32{} {
		rl.UnloadRenderTexture(g.target)
		g.targetSize = [2]int32{}
	}
}

// pick selects what was clicked in the viewport, unless a widget or the
// editor took the click.
func (g *Game) pick() {
	e := g.Editor
	if !e.Active() || !rl.IsMouseButtonPressed(rl.MouseButtonLeft) || g.ui.ClickConsumed() {
		return
	}
	if !e.Pointer().PressStartInViewport || !e.ViewportInteractionActive() {
		return
	}
	windows.SelectUnderPointer(e, g.World, g.cameraView())
}

func (g *Game) handleEvents(events []editor.Event) {
	for _, ev := range events {
		switch ev.(type) {
		case editor.FocusSelectedEvent:
			g.focusSelected()
		}
	}
}

func (g *Game) focusSelected() {
	selected := windows.Selection(g.Editor, g.World)
	if selected == nil {
		g.log.Debug("focus requested without a selection")
		return
	}
	rig, ok := windows.CameraRig(g.Editor)
	if !ok {
		return
	}
	rig.Focus(selected.WorldPosition(), selected.Radius())
}
