package scale

import (
	"io"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	"archive2svg/internal/dataset"
)

const defaultCacheSize = 16

// Key identifies a Set: scales only change with the dataset or the width.
type Key struct {
	Dataset string
	Width   int
}

// Cache memoizes Sets by dataset fingerprint and viewport width, so pointer
// events and filter changes never rebuild scales. Safe for concurrent use.
type Cache struct {
	sets   *lru.Cache[Key, *Set]
	opts   Options
	logger *slog.Logger
}

// NewCache creates a cache holding up to size Sets.
func NewCache(size int, opts Options, logger *slog.Logger) (*Cache, error) {
	if size <= 0 {
		size = defaultCacheSize
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	sets, err := lru.New[Key, *Set](size)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Cache{sets: sets, opts: opts, logger: logger}, nil
}

// Get returns the Set for ds at width, building it on first use.
func (c *Cache) Get(ds *dataset.Dataset, width int) (*Set, error) {
	if ds.Len() == 0 {
		return nil, dataset.ErrEmptyDataset
	}
	key := Key{Dataset: ds.Fingerprint, Width: width}
	if set, ok := c.sets.Get(key); ok {
		c.logger.Debug("scale cache hit", slog.String("dataset", key.Dataset), slog.Int("width", width))
		return set, nil
	}
	set, err := Build(ds, float64(width), c.opts)
	if err != nil {
		return nil, err
	}
	c.sets.Add(key, set)
	c.logger.Debug("scale cache miss", slog.String("dataset", key.Dataset), slog.Int("width", width))
	return set, nil
}

// Len returns the number of cached Sets.
func (c *Cache) Len() int {
	return c.sets.Len()
}
