package controller

// Config is accepted at construction and validated there. Out-of-range
// values are clamped to defaults rather than rejected: a controller is
// always usable after New.
type Config struct {
	UndoEnabled  bool
	HistoryDepth int     // checkpoints kept; <=0 clamps to 50
	MinZoom      float64 // must be >0 and < MaxZoom, else both clamp to 0.25/4
	MaxZoom      float64
	Shortcuts    bool // whether the viewer layer binds keyboard shortcuts
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		UndoEnabled:  true,
		HistoryDepth: 50,
		MinZoom:      0.25,
		MaxZoom:      4,
		Shortcuts:    true,
	}
}

// withDefaults clamps invalid fields.
func (c Config) withDefaults() Config {
	if c.HistoryDepth <= 0 {
		c.HistoryDepth = 50
	}
	if c.MinZoom <= 0 || c.MaxZoom <= 0 || c.MinZoom >= c.MaxZoom {
		c.MinZoom = 0.25
		c.MaxZoom = 4
	}
	return c
}
