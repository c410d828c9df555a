// Package assets handles viewer asset loading and caching.
package assets

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/cowviewer/internal/logger"
	"github.com/Faultbox/cowviewer/pkg/formats"
)

// Manager loads assets from a stack of file systems.
type Manager struct {
	sources []fs.FS
	cache   *Cache
	mu      sync.RWMutex
}

// NewManager creates a manager that already serves the embedded assets.
func NewManager() *Manager {
	return &Manager{
		sources: []fs.FS{Embedded()},
		cache:   NewCache(),
	}
}

// AddSource adds a file system to the manager.
// Sources are searched in reverse order (last added = highest priority).
func (m *Manager) AddSource(fsys fs.FS) {
	m.mu.Lock()
	m.sources = append(m.sources, fsys)
	m.mu.Unlock()
}

// AddDir adds an on-disk directory as the highest priority source.
func (m *Manager) AddDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("asset dir %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("asset dir %s: not a directory", path)
	}
	m.AddSource(os.DirFS(path))
	logger.Debug("asset dir added", zap.String("path", path))
	return nil
}

// Load loads a file from the sources.
func (m *Manager) Load(name string) ([]byte, error) {
	if data, ok := m.cache.Get(name); ok {
		return data, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.sources) - 1; i >= 0; i-- {
		data, err := fs.ReadFile(m.sources[i], name)
		if err == nil {
			m.cache.Set(name, data)
			return data, nil
		}
	}

	return nil, fmt.Errorf("asset not found: %s", name)
}

// ShaderSources holds the text of a vertex and fragment shader pair.
type ShaderSources struct {
	Vertex   string
	Fragment string
}

// LoadShaders reads both shader files in parallel and waits for both.
func (m *Manager) LoadShaders(ctx context.Context, vertName, fragName string) (ShaderSources, error) {
	var src ShaderSources

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data, err := m.loadCtx(ctx, vertName)
		if err != nil {
			return fmt.Errorf("vertex shader: %w", err)
		}
		src.Vertex = string(data)
		return nil
	})
	g.Go(func() error {
		data, err := m.loadCtx(ctx, fragName)
		if err != nil {
			return fmt.Errorf("fragment shader: %w", err)
		}
		src.Fragment = string(data)
		return nil
	})

	if err := g.Wait(); err != nil {
		return ShaderSources{}, err
	}
	return src, nil
}

// LoadModel reads and parses an OBJ model from the sources.
func (m *Manager) LoadModel(name string) (*formats.OBJ, error) {
	data, err := m.Load(name)
	if err != nil {
		return nil, err
	}
	obj, err := formats.ParseOBJ(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	return obj, nil
}

func (m *Manager) loadCtx(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return m.Load(name)
}

// Close drops cached data.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	hits, misses := m.cache.Stats()
	logger.Debug("asset cache released", zap.Int("hits", hits), zap.Int("misses", misses))
	m.sources = nil
	m.cache.Clear()
}

// Cache is a simple in-memory cache for loaded assets.
type Cache struct {
	data map[string][]byte
	mu   sync.Mutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
