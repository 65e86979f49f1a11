package castle

import (
	"context"
	"errors"

	"github.com/castellan-host/castellan/internal/shared/authorization"
)

// Source tells callers where a resolution result came from, so a
// degraded placeholder response is never mistaken for a genuinely empty
// authorized set.
type Source string

const (
	SourceLive        Source = "live"
	SourcePlaceholder Source = "placeholder"
)

// ResolutionResult carries the accessible entries plus their provenance.
type ResolutionResult struct {
	Entries []Entry
	Source  Source
}

// Resolver enumerates the castle directories a given identity may see.
type Resolver interface {
	ListAccessible(ctx context.Context, identity authorization.Identity) (*ResolutionResult, error)
}

// ErrRootUnavailable indicates the configured root directory cannot be
// enumerated at all. Callers decide between surfacing it and a placeholder
// dataset; it is never retried automatically.
var ErrRootUnavailable = errors.New("castle root directory unavailable")
