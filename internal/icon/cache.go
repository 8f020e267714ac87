package icon

import (
	"image"

	"github.com/Norgate-AV/wincenter/internal/desktop"
)

type entry struct {
	img *image.RGBA
	ok  bool
}

// Cache memoises icons per window for one listing. Misses are remembered
// too, so a window without an icon is only asked once. Call Reset whenever
// the listing is refreshed; handles can be reused by new windows.
type Cache struct {
	ex      *Extractor
	size    int
	limit   int
	entries map[desktop.Handle]entry
}

// NewCache creates a cache of size x size icons holding at most limit
// windows. Once full, further icons are still extracted but not kept.
func NewCache(ex *Extractor, size, limit int) *Cache {
	return &Cache{
		ex:      ex,
		size:    size,
		limit:   limit,
		entries: make(map[desktop.Handle]entry),
	}
}

// Icon returns the cached icon for h, extracting it on first use
func (c *Cache) Icon(h desktop.Handle) (*image.RGBA, bool) {
	if e, ok := c.entries[h]; ok {
		return e.img, e.ok
	}

	img, ok := c.ex.Extract(h, c.size)
	if len(c.entries) < c.limit {
		c.entries[h] = entry{img: img, ok: ok}
	}

	return img, ok
}

// Reset drops every cached icon
func (c *Cache) Reset() {
	clear(c.entries)
}

// Len returns the number of cached windows
func (c *Cache) Len() int {
	return len(c.entries)
}
