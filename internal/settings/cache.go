package settings

import (
	"context"
	"sync"

	"onboardctl/pkg/logging"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const cacheSubsystem = "SettingsCache"

// Fetcher reads and writes the settings documents. *Client implements it.
type Fetcher interface {
	FetchSquare(ctx context.Context) (SquareSettings, error)
	FetchGateway(ctx context.Context) (GatewaySettings, error)
	SaveSquare(ctx context.Context, s SquareSettings) error
	SaveGateway(ctx context.Context, g GatewaySettings) error
}

// Cache is the shared settings store. Concurrent primes share one fetch.
type Cache struct {
	fetcher Fetcher
	group   singleflight.Group

	mu            sync.RWMutex
	square        SquareSettings
	squareLoaded  bool
	gateway       GatewaySettings
	gatewayLoaded bool

	// edits holds toggled values not yet saved, per document. A prime
	// reapplies them on top of the fetched document.
	edits map[Document]map[string]any
}

// NewCache creates an empty cache in front of fetcher.
func NewCache(fetcher Fetcher) *Cache {
	return &Cache{fetcher: fetcher, edits: map[Document]map[string]any{}}
}

// Prime fetches both documents. A failed fetch keeps whatever was cached
// before.
func (c *Cache) Prime(ctx context.Context) error {
	_, err, shared := c.group.Do("prime", func() (interface{}, error) {
		return nil, c.fetchAll(ctx)
	})
	if shared {
		logging.Debug(cacheSubsystem, "joined in-flight prime")
	}
	return err
}

func (c *Cache) fetchAll(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s, err := c.fetcher.FetchSquare(gctx)
		if err != nil {
			return err
		}
		c.mu.Lock()
		s.Raw = c.withEdits(SquareDocument, s.Raw)
		c.square, c.squareLoaded = s, true
		c.mu.Unlock()
		return nil
	})
	g.Go(func() error {
		gw, err := c.fetcher.FetchGateway(gctx)
		if err != nil {
			return err
		}
		c.mu.Lock()
		c.gateway, c.gatewayLoaded = c.withEdits(GatewayDocument, gw), true
		c.mu.Unlock()
		return nil
	})

	if err := g.Wait(); err != nil {
		logging.Warn(cacheSubsystem, "prime failed: %v", err)
		return err
	}
	logging.Debug(cacheSubsystem, "primed settings (connected=%v)", c.IsConnected())
	return nil
}

// Loaded reports whether the Square settings have been fetched.
func (c *Cache) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.squareLoaded
}

// IsConnected reports the cached is_connected flag.
func (c *Cache) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.squareLoaded && c.square.IsConnected
}

// Square returns a copy of the cached Square settings and whether they are loaded.
func (c *Cache) Square() (SquareSettings, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := c.square
	out.Raw = copyMap(c.square.Raw)
	return out, c.squareLoaded
}

// Gateway returns a copy of the cached gateway settings and whether they are loaded.
func (c *Cache) Gateway() (GatewaySettings, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return GatewaySettings(copyMap(c.gateway)), c.gatewayLoaded
}

// Flag reads a boolean field of doc.
func (c *Cache) Flag(doc Document, key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if doc == GatewayDocument {
		return flag(c.gateway, key)
	}
	return flag(c.square.Raw, key)
}

// Toggle flips a boolean field of doc in the cache. The change is written
// by the next save.
func (c *Cache) Toggle(doc Document, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var next bool
	switch doc {
	case GatewayDocument:
		if !c.gatewayLoaded {
			return false, notLoaded(doc)
		}
		c.gateway, next = toggle(c.gateway, key)
	default:
		if !c.squareLoaded {
			return false, notLoaded(doc)
		}
		c.square.Raw, next = toggle(c.square.Raw, key)
	}
	if c.edits[doc] == nil {
		c.edits[doc] = map[string]any{}
	}
	c.edits[doc][key] = next
	return next, nil
}

// SaveSquare writes the cached Square settings.
func (c *Cache) SaveSquare(ctx context.Context) error {
	s, ok := c.Square()
	if !ok {
		return notLoaded(SquareDocument)
	}
	saved := c.pendingEdits(SquareDocument)
	if err := c.fetcher.SaveSquare(ctx, s); err != nil {
		return err
	}
	c.clearEdits(SquareDocument, saved)
	return nil
}

// SaveGateway writes the cached gateway settings.
func (c *Cache) SaveGateway(ctx context.Context) error {
	g, ok := c.Gateway()
	if !ok {
		return notLoaded(GatewayDocument)
	}
	saved := c.pendingEdits(GatewayDocument)
	if err := c.fetcher.SaveGateway(ctx, g); err != nil {
		return err
	}
	c.clearEdits(GatewayDocument, saved)
	return nil
}

// withEdits applies the unsaved edits of doc to m. Callers hold c.mu.
func (c *Cache) withEdits(doc Document, m map[string]any) map[string]any {
	if len(c.edits[doc]) == 0 {
		return m
	}
	if m == nil {
		m = map[string]any{}
	}
	for k, v := range c.edits[doc] {
		m[k] = v
	}
	return m
}

func (c *Cache) pendingEdits(doc Document) map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return copyMap(c.edits[doc])
}

// clearEdits drops the edits a save wrote. A key toggled again while the
// save was in flight stays pending.
func (c *Cache) clearEdits(doc Document, saved map[string]any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, v := range saved {
		if cur, ok := c.edits[doc][k]; ok && cur == v {
			delete(c.edits[doc], k)
		}
	}
}

func copyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
