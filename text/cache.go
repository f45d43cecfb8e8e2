package text

import (
	"fmt"
	"maps"
	"math"
	"sync"

	"github.com/gogpu/stripfx/internal/cache"
)

// CacheOption configures FontCache creation.
type CacheOption func(*cacheConfig)

type cacheConfig struct {
	service          Service
	advanceCacheSize int
}

func defaultCacheConfig() cacheConfig {
	return cacheConfig{advanceCacheSize: 4096}
}

// WithService sets the font service. The default is NewOpenType().
func WithService(s Service) CacheOption {
	return func(c *cacheConfig) {
		c.service = s
	}
}

// WithAdvanceCacheSize sets the number of glyph advances kept in the LRU
// advance cache. A value of 0 disables the limit.
func WithAdvanceCacheSize(n int) CacheOption {
	return func(c *cacheConfig) {
		c.advanceCacheSize = n
	}
}

type advanceKey struct {
	id   FontID
	size uint64
	r    rune
}

// FontCache deduplicates fonts by file path and by in-memory name on top
// of a Service, which owns the reference counts.
//
// All access goes through one lock. Do holds it for the duration of a
// callback and hands out a Session whose methods run without locking
// again, so a text render can load fonts while it holds the lock.
type FontCache struct {
	mu       sync.Mutex
	svc      Service
	byPath   map[string]FontID
	byName   map[string]FontID
	advances *cache.Cache[advanceKey, int]
}

// NewFontCache creates an empty font cache.
func NewFontCache(opts ...CacheOption) *FontCache {
	cfg := defaultCacheConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.service == nil {
		cfg.service = NewOpenType()
	}
	return &FontCache{
		svc:      cfg.service,
		byPath:   make(map[string]FontID),
		byName:   make(map[string]FontID),
		advances: cache.New[advanceKey, int](cfg.advanceCacheSize),
	}
}

var defaultCache = sync.OnceValue(func() *FontCache { return NewFontCache() })

// Default returns the process-wide font cache.
func Default() *FontCache {
	return defaultCache()
}

// Service returns the underlying font service.
func (c *FontCache) Service() Service {
	return c.svc
}

// Do runs fn with the cache lock held. The Session and any FontFace obtained
// from it must not be used after fn returns.
func (c *FontCache) Do(fn func(*Session)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&Session{c: c})
}

// LoadFile is the locking form of Session.LoadFile.
func (c *FontCache) LoadFile(path string) (id FontID, err error) {
	c.Do(func(s *Session) { id, err = s.LoadFile(path) })
	return id, err
}

// LoadMemory is the locking form of Session.LoadMemory.
func (c *FontCache) LoadMemory(name string, data []byte) (id FontID, err error) {
	c.Do(func(s *Session) { id, err = s.LoadMemory(name, data) })
	return id, err
}

// Release is the locking form of Session.Release.
func (c *FontCache) Release(id FontID) {
	c.Do(func(s *Session) { s.Release(id) })
}

// Clear drops one reference to every cached font and forgets all
// path and name mappings.
func (c *FontCache) Clear() {
	c.Do(func(s *Session) { s.Clear() })
}

// Len returns the number of path and name mappings.
func (c *FontCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.byPath) + len(c.byName)
}

// Session is the view of a FontCache inside Do.
type Session struct {
	c *FontCache
}

// LoadFile returns the font for path, loading it on first use and adding a
// reference otherwise. A font that was unloaded behind the cache's back is
// loaded again.
func (s *Session) LoadFile(path string) (FontID, error) {
	return s.acquire(s.c.byPath, path, func() (FontID, error) {
		return s.c.svc.LoadFile(path)
	})
}

// LoadMemory is LoadFile for font data identified by name.
func (s *Session) LoadMemory(name string, data []byte) (FontID, error) {
	if len(data) == 0 {
		return NoFont, ErrEmptyFontData
	}
	return s.acquire(s.c.byName, name, func() (FontID, error) {
		return s.c.svc.LoadMemory(name, data)
	})
}

func (s *Session) acquire(m map[string]FontID, key string, load func() (FontID, error)) (FontID, error) {
	if id, ok := m[key]; ok {
		if s.c.svc.IsLoaded(id) {
			s.c.svc.AddRef(id)
			return id, nil
		}
		Logger().Debug("text: cached font was unloaded, reloading", "key", key, "id", id)
	}
	id, err := load()
	if err != nil {
		delete(m, key)
		return NoFont, fmt.Errorf("text: load %q: %w", key, err)
	}
	m[key] = id
	Logger().Info("text: font loaded", "key", key, "id", id)
	return id, nil
}

// Release drops one reference to id. When it was the last, the font's
// mappings and cached advances are removed.
func (s *Session) Release(id FontID) {
	if id < 0 {
		return
	}
	if !s.c.svc.Unload(id) {
		return
	}
	s.c.forget(id)
	Logger().Info("text: font unloaded", "id", id)
}

// Clear is the lock-free form of FontCache.Clear.
func (s *Session) Clear() {
	for _, id := range s.c.byPath {
		s.c.svc.Unload(id)
	}
	for _, id := range s.c.byName {
		s.c.svc.Unload(id)
	}
	clear(s.c.byPath)
	clear(s.c.byName)
	s.c.advances.Clear()
}

// IsLoaded reports whether id refers to a loaded font.
func (s *Session) IsLoaded(id FontID) bool {
	return id >= 0 && s.c.svc.IsLoaded(id)
}

// Resolve returns id when it is loaded and the built-in font otherwise.
func (s *Session) Resolve(id FontID) FontID {
	if s.IsLoaded(id) {
		return id
	}
	if id >= 0 {
		Logger().Warn("text: font not loaded, using built-in font", "id", id)
	}
	return s.c.svc.Mono()
}

// Face returns a face for id at size pixels. The size is truncated to whole
// pixels.
func (s *Session) Face(id FontID, size float64, style Style) *FontFace {
	size = math.Trunc(size)
	return &FontFace{
		s:       s,
		id:      id,
		size:    size,
		style:   style,
		metrics: s.c.svc.Metrics(id, size),
	}
}

func (c *FontCache) forget(id FontID) {
	maps.DeleteFunc(c.byPath, func(_ string, v FontID) bool { return v == id })
	maps.DeleteFunc(c.byName, func(_ string, v FontID) bool { return v == id })
	c.advances.DeleteFunc(func(k advanceKey) bool { return k.id == id })
}
