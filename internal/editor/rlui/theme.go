package rlui

import (
	"log/slog"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Theme colors - indigo dark theme
var (
	colorBgDark    = rl.NewColor(10, 10, 15, 255)
	colorBgPanel   = rl.NewColor(18, 18, 24, 245)
	colorBgElement = rl.NewColor(28, 28, 38, 255)
	colorBgHover   = rl.NewColor(38, 38, 52, 255)
	colorBgActive  = rl.NewColor(48, 48, 65, 255)

	colorAccent      = rl.NewColor(108, 99, 255, 255)
	colorAccentLight = rl.NewColor(167, 139, 250, 255)

	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(200, 200, 208, 255)
	colorTextMuted     = rl.NewColor(119, 119, 119, 255)

	colorBorder    = rl.NewColor(50, 50, 65, 255)
	colorSelection = rl.NewColor(108, 99, 255, 60)
	colorClose     = rl.NewColor(200, 80, 80, 255)
)

const (
	textSize     = 15
	headingSize  = 18
	textSpacing  = 0
	textPaddingX = 8
)

var (
	uiFont      rl.Font
	uiFontBold  rl.Font
	fontsLoaded bool
)

// LoadTheme sets the raygui style and loads the editor fonts. Empty paths
// fall back to the raylib default font. Must be called after the window opens.
func LoadTheme(log *slog.Logger, fontPath, boldFontPath string) {
	if log == nil {
		log = slog.Default()
	}
	if !fontsLoaded {
		fontsLoaded = true
		uiFont = loadFont(log, fontPath)
		uiFontBold = loadFont(log, boldFontPath)
		if uiFont.Texture.ID > 0 {
			gui.SetFont(uiFont)
		}
	}

	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(colorBorder))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.LINE_COLOR, gui.NewColorPropertyValue(rl.NewColor(40, 40, 55, 255)))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, textSize)
}

func loadFont(log *slog.Logger, path string) rl.Font {
	if path == "" {
		return rl.Font{}
	}
	font := rl.LoadFontEx(path, 48, nil)
	if font.Texture.ID == 0 {
		log.Warn("failed to load font", "path", path)
		return rl.Font{}
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	log.Info("loaded font", "path", path)
	return font
}

// drawText draws text with font, or the default font when font is not loaded.
func drawText(font rl.Font, text string, x, y, size float32, color rl.Color) {
	if font.Texture.ID > 0 {
		rl.DrawTextEx(font, text, rl.Vector2{X: x, Y: y}, size, textSpacing, color)
	} else {
		rl.DrawText(text, int32(x), int32(y), int32(size), color)
	}
}

func measureText(font rl.Font, text string, size float32) float32 {
	if font.Texture.ID > 0 {
		return rl.MeasureTextEx(font, text, size, textSpacing).X
	}
	return float32(rl.MeasureText(text, int32(size)))
}
