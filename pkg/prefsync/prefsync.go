// Package prefsync keeps a client-side mirror of a user's display
// preferences. It serves the last server-confirmed document while offline,
// applies toggles optimistically, and rolls them back when the server
// rejects the sync.
package prefsync

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/matchday-app/matchday/internal/domain/preferences"
)

// Remote is the server side of the sync. Fetch returns the authoritative
// document; Update applies a partial and returns the merged result.
type Remote interface {
	Fetch(ctx context.Context) (preferences.Document, time.Time, error)
	Update(ctx context.Context, partial preferences.Partial) (preferences.Document, time.Time, error)
}

// SyncState tracks one optimistic update through its lifecycle.
type SyncState int

const (
	StateIdle SyncState = iota
	StatePendingSync
	StateConfirmed
	StateRolledBack
)

func (s SyncState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePendingSync:
		return "pendingSync"
	case StateConfirmed:
		return "confirmed"
	case StateRolledBack:
		return "rolledBack"
	default:
		return fmt.Sprintf("SyncState(%d)", int(s))
	}
}

// Snapshot is the document a caller should render right now. Stale means the
// snapshot did not come from a fresh server response.
type Snapshot struct {
	Document  preferences.Document
	UpdatedAt time.Time
	Stale     bool
}

type cacheFile struct {
	Document  preferences.Document `json:"document"`
	UpdatedAt time.Time            `json:"updatedAt"`
	CachedAt  time.Time            `json:"cachedAt"`
}

// Client mirrors one user's preferences. The local cache file is only ever
// written from server-confirmed documents, so an optimistic toggle that later
// rolls back can never poison the offline copy.
type Client struct {
	remote    Remote
	cachePath string
	now       func() time.Time

	mu        sync.Mutex
	current   preferences.Document
	updatedAt time.Time
	stale     bool
	loaded    bool
	state     SyncState
}

func NewClient(remote Remote, cachePath string, now func() time.Time) *Client {
	if now == nil {
		now = time.Now
	}
	return &Client{
		remote:    remote,
		cachePath: cachePath,
		now:       now,
		state:     StateIdle,
	}
}

// State reports where the most recent Apply ended up.
func (c *Client) State() SyncState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Current returns the in-memory view, loading the cache file first if nothing
// has been loaded yet.
func (c *Client) Current(ctx context.Context) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureLoadedLocked(ctx)
	return c.snapshotLocked()
}

// LoadCached reads the local cache without touching the network. A missing or
// unreadable cache file yields the default document, flagged stale.
func (c *Client) LoadCached(ctx context.Context) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored, err := c.readCacheFile()
	if err != nil {
		c.current = preferences.DefaultDocument()
		c.updatedAt = time.Time{}
		c.stale = true
		c.loaded = true
		return c.snapshotLocked()
	}

	c.current = stored.Document
	c.updatedAt = stored.UpdatedAt
	c.stale = true
	c.loaded = true
	return c.snapshotLocked()
}

// Refresh pulls the authoritative document from the server. A network failure
// is not an error: the last cached document is served instead, flagged stale.
func (c *Client) Refresh(ctx context.Context) Snapshot {
	doc, updatedAt, err := c.remote.Fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.ensureLoadedLocked(ctx)
		c.stale = true
		return c.snapshotLocked()
	}

	c.current = doc
	c.updatedAt = updatedAt
	c.stale = false
	c.loaded = true
	_ = c.writeCacheFile(doc, updatedAt)
	return c.snapshotLocked()
}

// Apply performs an optimistic update: the partial takes effect locally right
// away, then syncs to the server. On rejection the local view reverts to its
// pre-toggle state and the error is returned; the cache file is untouched
// until the server confirms.
func (c *Client) Apply(ctx context.Context, partial preferences.Partial) (Snapshot, error) {
	if partial.IsEmpty() {
		return c.Current(ctx), fmt.Errorf("empty preference update")
	}

	c.mu.Lock()
	c.ensureLoadedLocked(ctx)
	previous := c.current
	previousUpdatedAt := c.updatedAt
	c.current = preferences.Merge(c.current, partial)
	c.state = StatePendingSync
	c.mu.Unlock()

	doc, updatedAt, err := c.remote.Update(ctx, partial)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.current = previous
		c.updatedAt = previousUpdatedAt
		c.state = StateRolledBack
		return c.snapshotLocked(), fmt.Errorf("sync preference update: %w", err)
	}

	c.current = doc
	c.updatedAt = updatedAt
	c.stale = false
	c.state = StateConfirmed
	_ = c.writeCacheFile(doc, updatedAt)
	return c.snapshotLocked(), nil
}

func (c *Client) ensureLoadedLocked(_ context.Context) {
	if c.loaded {
		return
	}
	stored, err := c.readCacheFile()
	if err != nil {
		c.current = preferences.DefaultDocument()
		c.stale = true
		c.loaded = true
		return
	}
	c.current = stored.Document
	c.updatedAt = stored.UpdatedAt
	c.stale = true
	c.loaded = true
}

func (c *Client) snapshotLocked() Snapshot {
	return Snapshot{
		Document:  preferences.Merge(c.current, preferences.Partial{}),
		UpdatedAt: c.updatedAt,
		Stale:     c.stale,
	}
}

func (c *Client) readCacheFile() (cacheFile, error) {
	raw, err := os.ReadFile(c.cachePath)
	if err != nil {
		return cacheFile{}, err
	}

	var stored cacheFile
	if err := sonic.Unmarshal(raw, &stored); err != nil {
		return cacheFile{}, fmt.Errorf("decode preference cache: %w", err)
	}
	stored.Document = preferences.Merge(stored.Document, preferences.Partial{})
	return stored, nil
}

// writeCacheFile replaces the cache atomically so a crash mid-write never
// leaves a truncated file behind.
func (c *Client) writeCacheFile(doc preferences.Document, updatedAt time.Time) error {
	encoded, err := sonic.Marshal(cacheFile{
		Document:  doc,
		UpdatedAt: updatedAt,
		CachedAt:  c.now(),
	})
	if err != nil {
		return fmt.Errorf("encode preference cache: %w", err)
	}

	dir := filepath.Dir(c.cachePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".prefsync-*")
	if err != nil {
		return fmt.Errorf("create cache temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(encoded); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write cache temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close cache temp file: %w", err)
	}
	if err := os.Rename(tmpName, c.cachePath); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace cache file: %w", err)
	}
	return nil
}
