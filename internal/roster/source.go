// Package roster defines the row types the lookup tables are built from and
// a registry of sources that can produce them.
package roster

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrMissingDataDir     = errors.New("DATA_DIR must not be empty for the csv source")
	ErrMissingDatabaseURL = errors.New("DATABASE_URL environment variable is required for the postgres source")
	ErrInvalidPeriod      = errors.New("ABGEORDNETENWATCH_PERIOD must be a positive integer")
	ErrUnknownSource      = errors.New("unknown roster source")
)

// Source produces a complete snapshot of roster data.
type Source interface {
	// Name returns the source name for logging purposes.
	Name() string

	// Load reads every table the source provides. Tables a source has no
	// data for are returned empty.
	Load(ctx context.Context) (Data, error)
}

var sourceRegistry = make(map[SourceType]func(Config) (Source, error))

// RegisterSource registers a constructor for a source type.
// It is called from init() in each source package.
func RegisterSource(sourceType SourceType, constructor func(Config) (Source, error)) {
	sourceRegistry[sourceType] = constructor
}

// NewSource creates the Source selected by cfg.
func NewSource(cfg Config) (Source, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	constructor, ok := sourceRegistry[cfg.Source]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSource, cfg.Source)
	}

	return constructor(cfg)
}
