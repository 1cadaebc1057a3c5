package config

// Glyph geometry.
const (
	// GlyphRows is the height of a big digit.
	GlyphRows = 5

	// GlyphCols is the width of a big digit at size 1.
	GlyphCols = 3

	// DefaultSize scales glyph width.
	DefaultSize = 1

	// MaxSize is the largest accepted size.
	MaxSize = 4
)

// Layout constants.
const (
	// DigitGap separates digits inside a group.
	DigitGap = 1

	// CompactModeThreshold renders the plain display string below this width.
	CompactModeThreshold = 40

	// ProgressWidth is the preferred countdown progress bar width.
	ProgressWidth = 40

	// MinProgressWidth is the minimum progress bar width.
	MinProgressWidth = 10
)

// Input constraints.
const (
	// MaxTargetLength matches the longest accepted target layout.
	MaxTargetLength = len("2006-01-02 15:04:05")

	// MaxPresetNameLength bounds preset names.
	MaxPresetNameLength = 32
)

// HistoryLimit is how many finished countdowns the history view lists.
const HistoryLimit = 10
