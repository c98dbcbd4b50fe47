// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 960
	ScreenHeight = 540
	MaxDeltaTime = 0.06

	GroundHeight = 72.0

	HeroWidth   = 64.0
	HeroHeight  = 88.0
	HeroOffsetX = 120.0 // distance of the hero's left edge from the screen's left edge

	// The hero's hitbox is narrower than the sprite so that grazing
	// contact does not register.
	HitboxLeftFactor  = 0.3
	HitboxRightFactor = 0.7

	MaxHearts           = 3
	DefeatsPerChoice    = 3
	DamageFlashDuration = 0.4 // seconds

	// Spawn interval in milliseconds: shrinks per level, clamped at the floor.
	InitialSpawnInterval   = 1600
	MinSpawnInterval       = 400
	SpawnIntervalDecrement = 150

	ScrollSpeedFactor = 0.5 // background scrolls slower than the monsters

	HeartSize     = 22.0
	HeartSpacing  = 30.0
	HeartOffsetX  = 24.0
	HeartOffsetY  = 24.0
	HUDTextX      = 24
	HUDTextY      = 72
	ChoiceBoxW    = 220.0
	ChoiceBoxH    = 140.0
	ChoiceBoxGap  = 80.0
	BannerWidth   = 420.0
	BannerHeight  = 150.0
	UIBorderWidth = 2.0
)

var (
	BackgroundColor = color.RGBA{40, 44, 72, 255}
	GroundColor     = color.RGBA{74, 56, 42, 255}
	HeroColor       = color.RGBA{90, 170, 220, 255}
	BeastColor      = color.RGBA{160, 90, 50, 255}
	GhostColor      = color.RGBA{200, 200, 230, 200}
	HeartColor      = color.RGBA{220, 50, 70, 255}
	HeartEmptyColor = color.RGBA{70, 70, 80, 255}
	TextColor       = color.RGBA{240, 240, 240, 255}
	OverlayColor    = color.RGBA{10, 10, 20, 180}
	ChoiceBoxColor  = color.RGBA{50, 60, 100, 235}
	SwordColor      = color.RGBA{210, 210, 220, 255}
	WandColor       = color.RGBA{170, 90, 220, 255}
	FlashColor      = color.RGBA{255, 60, 60, 255}
	UIBorderColor   = color.RGBA{240, 240, 240, 255}
)
