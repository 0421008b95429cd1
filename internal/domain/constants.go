package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
)

// Interpretation constants
const (
	// FixedConfidence is assigned to every successful interpretation; the
	// rule table is deterministic, so no per-rule scoring exists.
	FixedConfidence = 0.8
)

// Dispatch constants
const (
	// DoubleClickDelay separates the two clicks of a double click.
	DoubleClickDelay = 100 * time.Millisecond
	// DefaultScrollAmount is the wheel click count when a command names none.
	DefaultScrollAmount = 3
)

// History constants
const (
	// HistoryDisplayLimit is the number of history entries views show.
	HistoryDisplayLimit = 10
)

// Screen constants
const (
	// DefaultScreenWidth is the simulated display width.
	DefaultScreenWidth = 1920
	// DefaultScreenHeight is the simulated display height.
	DefaultScreenHeight = 1080
)

// Actuator constants
const (
	// DefaultActionPauseMS is the default driver settle delay in milliseconds.
	DefaultActionPauseMS = 500
)

// Server constants
const (
	// DefaultServerAddr is where the web control panel listens.
	DefaultServerAddr = "127.0.0.1:8741"
)

// Time formats
const (
	// TimestampFormat is the standard timestamp format
	TimestampFormat = time.RFC3339
)
