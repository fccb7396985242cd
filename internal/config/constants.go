package config

import "time"

// Gesture thresholds, in logical pixels. The commit threshold decides whether a
// released drag becomes an action; the hint threshold only drives affordances
// while the drag is still in progress.
const (
	CommitThreshold = 100.0
	HintThreshold   = 30.0
)

// Terminal cells are scaled to logical pixels before they reach the tracker.
const (
	CellWidthPx  = 10.0
	CellHeightPx = 20.0
)

// RotationPerPx is the card tilt in degrees per pixel of horizontal drag.
const RotationPerPx = 0.1

// Timer durations.
const (
	SettleDelay      = 800 * time.Millisecond
	MascotThinkDelay = 2 * time.Second
	BlinkInterval    = 3 * time.Second
	BlinkDuration    = 150 * time.Millisecond
	ToastDuration    = 3 * time.Second
)

// Data providers.
const (
	ProviderMemory = "memory"
	ProviderSQLite = "sqlite"
)

// Application settings.
const (
	AppName     = "conciergerie"
	DBFileName  = "conciergerie.db"
	LogFileName = "conciergerie.log"
	EnvPrefix   = "CONCIERGERIE"
)
