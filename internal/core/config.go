package core

// RuntimeConfig contains configuration passed to the player at startup.
type RuntimeConfig struct {
	ScreenW        int // Screen width in characters
	ScreenH        int // Screen height in characters
	TicksPerSecond int // Animation ticks advanced per wall-clock second
	MinTPS         int
	MaxTPS         int
	Loop           bool // Restart from the first tick after the last
	StartPaused    bool
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:        80,
		ScreenH:        24,
		TicksPerSecond: 20,
		MinTPS:         1,
		MaxTPS:         240,
		Loop:           true,
	}
}

// ClampTPS keeps a tick rate inside the configured bounds.
func (c RuntimeConfig) ClampTPS(tps int) int {
	lo, hi := max(c.MinTPS, 1), c.MaxTPS
	if hi < lo {
		hi = lo
	}
	return Clamp(tps, lo, hi)
}

// PlaybackState is the position of a player within an animation.
// Ticks run over [0, Total); Total of zero means there is nothing to play.
type PlaybackState struct {
	Tick     int
	Total    int
	Paused   bool
	Loop     bool
	Finished bool
}

// Advance moves n ticks forward (or backward for negative n), wrapping when
// looping and otherwise stopping at either end. Reaching the last tick
// without looping marks the playback finished.
func (p *PlaybackState) Advance(n int) {
	if p.Total <= 0 {
		p.Tick, p.Finished = 0, true
		return
	}
	next := p.Tick + n
	if p.Loop {
		next %= p.Total
		if next < 0 {
			next += p.Total
		}
		p.Tick, p.Finished = next, false
		return
	}
	p.Tick = Clamp(next, 0, p.Total-1)
	p.Finished = p.Tick == p.Total-1
}

// Restart rewinds to the first tick.
func (p *PlaybackState) Restart() {
	p.Tick = 0
	p.Finished = p.Total <= 0
}

// Progress returns the fraction of the animation shown so far in [0, 1].
func (p PlaybackState) Progress() float64 {
	if p.Total <= 1 {
		return 1
	}
	return ClampF(float64(p.Tick)/float64(p.Total-1), 0, 1)
}
