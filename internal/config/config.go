// internal/config/config.go
package config

import (
	"image/color"

	"golang.org/x/image/colornames"
)

const (
	ScreenWidth  = 770
	ScreenHeight = 600
	WindowTitle  = "Lane Defense"

	MaxDeltaTime = 0.06 // секунды; защита от больших скачков после сворачивания окна

	PauseKey = "Escape"

	HUDHeight       = 24
	HUDPaddingX     = 8
	HUDTextOffsetY  = 16
	CardBorderWidth = 2.0

	CountdownBannerY = 260

	ResumeButtonWidth  = 140
	ResumeButtonHeight = 40

	// Терминальная оболочка: сколько пикселей игрового поля приходится на одну ячейку.
	TerminalCellWidth  = 10
	TerminalCellHeight = 20
	TerminalFPS        = 60

	LogFileName = "lanes.log"
)

var (
	BackgroundColor   = color.RGBA{20, 20, 30, 255}
	HUDColor          = color.RGBA{20, 20, 30, 200}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	PauseOverlayColor = color.RGBA{0, 0, 0, 128}
	CardBorderColor   = colornames.Lightgreen
	DisabledTint      = color.RGBA{90, 90, 90, 160}
	ResumeButtonColor = colornames.Seagreen
)
