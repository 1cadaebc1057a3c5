package config

import "time"

// Timing.
const (
	// TickInterval is the time source update period.
	TickInterval = time.Second

	// TransitionDelay is how long a digit animates before its new value is
	// committed. It must not exceed TickInterval.
	TransitionDelay = 900 * time.Millisecond

	// MaxTransitionDelay caps configured delays so transitions never overlap
	// the next tick.
	MaxTransitionDelay = TickInterval

	// FrameInterval is the redraw period while any digit is transitioning.
	FrameInterval = 50 * time.Millisecond
)

// Application settings.
const (
	AppName        = "flipclock"
	DBFileName     = "flipclock.db"
	ConfigFileName = "config.yaml"
	DebugLogEnv    = "FLIPCLOCK_DEBUG"
	DebugLogFile   = "debug.log"
)

// Setting keys persisted in the store.
const (
	SettingVariant  = "variant"
	SettingShowType = "show_type"
	SettingTheme    = "theme"
)
