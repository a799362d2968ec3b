package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/Voltify-Social/voltify-panel-backend/config"
	"github.com/Voltify-Social/voltify-panel-backend/models"
)

// The snapshot holds the one in-memory copy of the catalog feed for the
// process. Loads are generation-guarded: a load that was superseded by a
// newer one, or whose context was cancelled, must not apply its result.

const (
	feedMirrorKey = "voltify:catalog:feed"
	feedMirrorTTL = 5 * time.Minute
)

// ErrNotLoaded is returned by Records until the first successful load.
var ErrNotLoaded = errors.New("catalog not loaded")

// Fetch retrieves the active catalog feed. Swappable so the snapshot
// lifecycle can be exercised without a database.
var Fetch = fetchFeed

var (
	mu         sync.RWMutex
	records    []models.ServiceRecord
	loadErr    error = ErrNotLoaded
	generation uint64
)

// Load fetches the feed and installs it as the current snapshot. A load
// started after this one, or an Invalidate, bumps the generation and causes
// this result to be dropped on arrival.
func Load(ctx context.Context) error {
	mu.Lock()
	generation++
	gen := generation
	fetch := Fetch
	mu.Unlock()

	recs, err := fetch(ctx)

	mu.Lock()
	defer mu.Unlock()
	if gen != generation {
		log.Printf("[catalog] discarding stale load (generation %d)", gen)
		return nil
	}
	if ctx.Err() != nil {
		log.Printf("[catalog] discarding abandoned load: %v", ctx.Err())
		return nil
	}
	if err != nil {
		records = nil
		loadErr = err
		return err
	}
	records = recs
	loadErr = nil
	log.Printf("[catalog] snapshot loaded: %d services", len(recs))
	return nil
}

// Records returns the current feed. The error is the blocking load fault:
// while it is non-nil no partial catalog is served.
func Records() ([]models.ServiceRecord, error) {
	mu.RLock()
	defer mu.RUnlock()
	if loadErr != nil {
		return nil, loadErr
	}
	return records, nil
}

// Invalidate drops the snapshot and supersedes any in-flight load.
func Invalidate() {
	mu.Lock()
	defer mu.Unlock()
	generation++
	records = nil
	loadErr = ErrNotLoaded
}

// fetchFeed reads the redis mirror when it is fresh, falling back to the
// store. Mirror failures are non-fatal; only the store decides the fault.
func fetchFeed(ctx context.Context) ([]models.ServiceRecord, error) {
	if config.RedisClient != nil {
		if raw, err := config.RedisClient.Get(ctx, feedMirrorKey).Bytes(); err == nil {
			var recs []models.ServiceRecord
			if err := json.Unmarshal(raw, &recs); err == nil {
				return recs, nil
			}
			log.Printf("[catalog] corrupt feed mirror, refetching")
		}
	}

	recs, err := FetchActiveRecords(ctx)
	if err != nil {
		return nil, err
	}

	if config.RedisClient != nil {
		if raw, err := json.Marshal(recs); err == nil {
			if err := config.RedisClient.Set(ctx, feedMirrorKey, raw, feedMirrorTTL).Err(); err != nil {
				log.Printf("[catalog] feed mirror write failed: %v", err)
			}
		}
	}
	return recs, nil
}
