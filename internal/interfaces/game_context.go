package interfaces

import "time"

// Stats is what the core pushes to the scoreboard every tick.
type Stats struct {
	Resources int
	Elapsed   time.Duration
	Player    string
	Score     int
	Breaches  int
}

// HUD renders the scoreboard, the countdown banner and the pause overlay.
type HUD interface {
	Update(stats Stats)
	ShowPause(visible bool)
	ShowCountdown(stage string)
	HideCountdown()
}

// Identity supplies the player name of the session.
type Identity interface {
	PlayerName() (string, bool)
}
