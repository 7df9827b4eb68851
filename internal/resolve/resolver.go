package resolve

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/amore-wedding/invite/internal/cache"
	"github.com/amore-wedding/invite/internal/wedding"
)

// Resolver runs the full resolution pipeline: fetch the override document
// from the configured sources, fall back to the local cache, merge over the
// defaults, and rewrite event-scoped asset paths. Resolution never fails; the
// worst case is the unmodified default document.
type Resolver struct {
	remote Source
	local  Source
	store  *cache.Store
	logger *zap.Logger
}

// NewResolver wires a resolver. Any of remote, local, and store may be nil;
// the corresponding step is skipped.
func NewResolver(remote, local Source, store *cache.Store, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{remote: remote, local: local, store: store, logger: logger}
}

// Resolve produces the complete configuration document for p.
func (r *Resolver) Resolve(ctx context.Context, p Params) wedding.Document {
	ov, err := r.fetch(ctx, p.Event)
	if err != nil {
		// Expected branch: no external document for this event.
		r.logger.Info("using cached or default configuration",
			zap.String("event", p.Event), zap.Error(err))
		ov = r.cached()
	} else {
		r.logger.Info("loaded wedding configuration", zap.String("document", DocumentName(p.Event)))
	}

	doc := wedding.Merge(wedding.Defaults(), ov)
	return wedding.ApplyEventFolder(doc, p.Event)
}

func (r *Resolver) fetch(ctx context.Context, event string) (*wedding.Override, error) {
	err := error(ErrNoConfig)
	for _, src := range []Source{r.remote, r.local} {
		if src == nil {
			continue
		}
		var ov *wedding.Override
		if ov, err = src.Fetch(ctx, event); err == nil {
			return ov, nil
		}
		if !errors.Is(err, ErrNoConfig) {
			return nil, err
		}
	}
	return nil, err
}

// cached recovers the last saved document. A corrupted entry is discarded so
// the store self-heals; every failure path yields nil, meaning defaults.
func (r *Resolver) cached() *wedding.Override {
	if r.store == nil {
		return nil
	}
	ov, err := r.store.Load()
	if err != nil {
		r.logger.Warn("discarding corrupted configuration cache", zap.Error(err))
		if derr := r.store.Discard(); derr != nil {
			r.logger.Warn("cache discard failed", zap.Error(derr))
		}
		return nil
	}
	return ov
}
