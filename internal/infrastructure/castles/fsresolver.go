package castles

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/castellan-host/castellan/internal/domain/castle"
	"github.com/castellan-host/castellan/internal/shared/authorization"
	"github.com/castellan-host/castellan/internal/shared/config"
	"github.com/castellan-host/castellan/internal/shared/logger"
)

const settingsFileName = "settings.json"

// FSResolver enumerates castle directories under a configured root. Each
// immediate subdirectory whose name is all decimal digits is a castle; its
// settings.json supplies display metadata with field-by-field fallback to
// synthesized defaults. One unreadable directory never fails the batch.
//
// When the root itself cannot be enumerated the resolver either serves the
// embedded placeholder dataset (demo mode) or surfaces
// castle.ErrRootUnavailable, depending on configuration.
type FSResolver struct {
	root               string
	entryTimeout       time.Duration
	placeholderEnabled bool
	logger             logger.Interface
}

func NewFSResolver(cfg *config.CastlesConfig, logger logger.Interface) *FSResolver {
	timeout := time.Duration(cfg.EntryTimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = 2 * time.Second
	}

	return &FSResolver{
		root:               TranslatePath(cfg.RootPath),
		entryTimeout:       timeout,
		placeholderEnabled: cfg.PlaceholderEnabled,
		logger:             logger,
	}
}

func (r *FSResolver) ListAccessible(ctx context.Context, identity authorization.Identity) (*castle.ResolutionResult, error) {
	dirents, err := os.ReadDir(r.root)
	if err != nil {
		if r.placeholderEnabled {
			r.logger.Warnw("castle root unreadable, serving placeholder dataset",
				"root", r.root, "error", err)
			return placeholderResult(identity), nil
		}
		r.logger.Errorw("castle root unreadable", "root", r.root, "error", err)
		return nil, fmt.Errorf("%w: %s", castle.ErrRootUnavailable, r.root)
	}

	entries := make([]castle.Entry, 0, len(dirents))
	for _, dirent := range dirents {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if !dirent.IsDir() {
			continue
		}

		iggID := dirent.Name()
		if !isNumericName(iggID) {
			continue
		}

		if !identity.CanAccessCastle(iggID) {
			continue
		}

		entries = append(entries, r.readEntry(ctx, iggID))
	}

	return &castle.ResolutionResult{
		Entries: entries,
		Source:  castle.SourceLive,
	}, nil
}

// readEntry decorates one castle directory. Every failure mode — missing
// file, malformed JSON, read timeout — degrades to synthesized defaults
// for this entry only.
func (r *FSResolver) readEntry(ctx context.Context, iggID string) castle.Entry {
	settingsPath := filepath.Join(r.root, iggID, settingsFileName)

	data, err := r.readFileWithTimeout(ctx, settingsPath)
	if err != nil {
		if !os.IsNotExist(err) {
			r.logger.Warnw("failed to read castle settings, using defaults",
				"igg_id", iggID, "error", err)
		}
		return castle.NewDefaultEntry(iggID)
	}

	var doc settingsDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		r.logger.Warnw("malformed castle settings, using defaults",
			"igg_id", iggID, "error", err)
		return castle.NewDefaultEntry(iggID)
	}

	return doc.merge(iggID)
}

// readFileWithTimeout bounds a single settings read. A slow filesystem
// (network mount, dying disk) stalls one entry, not the whole listing.
func (r *FSResolver) readFileWithTimeout(ctx context.Context, path string) ([]byte, error) {
	readCtx, cancel := context.WithTimeout(ctx, r.entryTimeout)
	defer cancel()

	type readResult struct {
		data []byte
		err  error
	}
	ch := make(chan readResult, 1)

	go func() {
		data, err := os.ReadFile(path)
		ch <- readResult{data: data, err: err}
	}()

	select {
	case res := <-ch:
		return res.data, res.err
	case <-readCtx.Done():
		return nil, readCtx.Err()
	}
}

func isNumericName(name string) bool {
	if name == "" {
		return false
	}
	for _, c := range name {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// settingsDoc mirrors the externally-written settings.json. Every field is
// optional; castleName/castleLevel take precedence over the short aliases.
type settingsDoc struct {
	CastleName  *string `json:"castleName"`
	Name        *string `json:"name"`
	CastleLevel *int    `json:"castleLevel"`
	Level       *int    `json:"level"`
	Power       *int64  `json:"power"`
	Troops      *int64  `json:"troops"`
}

// merge combines the document with synthesized defaults, field by field.
func (d settingsDoc) merge(iggID string) castle.Entry {
	entry := castle.NewDefaultEntry(iggID)

	switch {
	case d.CastleName != nil && *d.CastleName != "":
		entry.Name = *d.CastleName
	case d.Name != nil && *d.Name != "":
		entry.Name = *d.Name
	}

	switch {
	case d.CastleLevel != nil:
		entry.Level = *d.CastleLevel
	case d.Level != nil:
		entry.Level = *d.Level
	}

	if d.Power != nil {
		entry.Power = *d.Power
	}
	if d.Troops != nil {
		entry.Troops = *d.Troops
	}

	return entry
}
