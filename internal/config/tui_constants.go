package config

// Layout constants.
const (
	// MaxCardWidth caps the swipe card width on wide terminals.
	MaxCardWidth = 46

	// MinCardWidth is the narrowest card that still fits its hints.
	MinCardWidth = 24

	// TabBarHeight is the number of rows reserved for the bottom navigation.
	TabBarHeight = 3

	// CompactModeThreshold drops the mascot art below this height.
	CompactModeThreshold = 24
)

// Display limits.
const (
	// MaxToasts limits how many notifications are queued for the status row.
	MaxToasts = 2

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)

// Input constraints.
const (
	// MaxTitleLength is the maximum quick task title length.
	MaxTitleLength = 80
)
