package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/botball/core"
)

// Palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbPitch      = tcell.NewRGBColor(20, 60, 30)    // Dark grass
	RgbPitchAlt   = tcell.NewRGBColor(24, 70, 36)    // Mowed stripe
	RgbLines      = tcell.NewRGBColor(220, 220, 220) // Chalk
	RgbGoal       = tcell.NewRGBColor(255, 255, 255) // Goal frame
	RgbBall       = tcell.NewRGBColor(255, 255, 255) // Ball
	RgbRed        = tcell.NewRGBColor(255, 80, 80)   // Red team
	RgbBlue       = tcell.NewRGBColor(100, 150, 255) // Blue team
	RgbBeam       = tcell.NewRGBColor(120, 120, 120) // Sensor beam, clear
	RgbBeamHit    = tcell.NewRGBColor(255, 165, 0)   // Sensor beam, blocked
	RgbTarget     = tcell.NewRGBColor(255, 255, 0)   // Decision target
	RgbObstacle   = tcell.NewRGBColor(150, 150, 150) // Unnamed obstacle color

	RgbStatusText = tcell.NewRGBColor(0, 0, 0)       // Dark text on bars
	RgbRunningBg  = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbStoppedBg  = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbEndedBg    = tcell.NewRGBColor(200, 50, 50)   // Red
	RgbHint       = tcell.NewRGBColor(180, 180, 180) // Help text
	RgbBanner     = tcell.NewRGBColor(255, 255, 0)   // Goal banner
)

// TeamColor returns the team's foreground color
func TeamColor(t core.Team) tcell.Color {
	if t == core.TeamRed {
		return RgbRed
	}
	return RgbBlue
}

// ObstacleColor resolves a color name ("gray", "brown", "#808080"); unknown names use RgbObstacle
func ObstacleColor(name string) tcell.Color {
	c := tcell.GetColor(strings.ToLower(strings.TrimSpace(name)))
	if c == tcell.ColorDefault {
		return RgbObstacle
	}
	return c
}

// PhaseColor returns the status-bar background for a match phase
func PhaseColor(p core.Phase) tcell.Color {
	switch p {
	case core.PhaseRunning:
		return RgbRunningBg
	case core.PhaseEnded:
		return RgbEndedBg
	default:
		return RgbStoppedBg
	}
}
