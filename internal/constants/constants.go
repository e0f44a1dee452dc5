package constants

import "time"

// Image pipeline tuning. The canonical size and the glyph cell size are
// processing contracts shared with the classifier model; changing them
// requires retraining.
const (
	CanonicalWidth  = 400
	CanonicalHeight = 400
	GlyphCellSize   = 28
	ContourPadding  = 10

	AdaptiveBlockSize = 11
	AdaptiveConstant  = 2.0
)

// Scoring.
const (
	// DiscardInterval is the number of recorded races after which another
	// worst result is dropped from a competitor's net score.
	DiscardInterval = 4

	// DefaultSimilarityCutoff is the minimum fuzzy-match ratio (0-100) for a
	// sail number to count as a recognition candidate.
	DefaultSimilarityCutoff = 60
)

// Validation limits.
const (
	MaxTitleLength = 128
)

// Finish dispatch.
const (
	DefaultQueueSize   = 256
	DefaultWorkerCount = 4
)

const (
	DatabaseTimeout = 5 * time.Second
	RequestTimeout  = 30 * time.Second
	WebhookTimeout  = 10 * time.Second
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
)
