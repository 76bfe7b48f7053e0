package ledgrid

// defaultGlyphCapacity bounds a glyph cache when no capacity is given.
const defaultGlyphCapacity = 256

// GlyphCache is a bounded LRU of rendered glyphs keyed by rune. Fonts own
// one per instance; there is no shared global cache.
//
// Get refreshes recency; Put evicts the least-recently-used entry when the
// cache is full and the key is new. A map plus an intrusive doubly-linked
// list keeps both operations O(1).
type GlyphCache struct {
	capacity int
	entries  map[rune]*glyphEntry
	head     *glyphEntry // most recently used
	tail     *glyphEntry // least recently used
}

type glyphEntry struct {
	key   rune
	glyph *Glyph
	prev  *glyphEntry
	next  *glyphEntry
}

// NewGlyphCache creates a cache holding at most capacity glyphs.
// A non-positive capacity means defaultGlyphCapacity.
func NewGlyphCache(capacity int) *GlyphCache {
	if capacity <= 0 {
		capacity = defaultGlyphCapacity
	}
	return &GlyphCache{
		capacity: capacity,
		entries:  make(map[rune]*glyphEntry),
	}
}

// Capacity returns the maximum number of cached glyphs.
func (c *GlyphCache) Capacity() int { return c.capacity }

// Len returns the number of cached glyphs.
func (c *GlyphCache) Len() int { return len(c.entries) }

// Get returns the cached glyph for r, marking it most recently used.
func (c *GlyphCache) Get(r rune) (*Glyph, bool) {
	e, ok := c.entries[r]
	if !ok {
		return nil, false
	}
	c.moveToFront(e)
	return e.glyph, true
}

// Put caches the glyph for r. An existing key is updated in place and
// refreshed; a new key at capacity evicts the least-recently-used entry.
func (c *GlyphCache) Put(r rune, g *Glyph) {
	if e, ok := c.entries[r]; ok {
		e.glyph = g
		c.moveToFront(e)
		return
	}

	if len(c.entries) >= c.capacity {
		c.evict()
	}

	e := &glyphEntry{key: r, glyph: g}
	c.entries[r] = e
	c.pushFront(e)
}

// Clear drops every cached glyph.
func (c *GlyphCache) Clear() {
	c.entries = make(map[rune]*glyphEntry)
	c.head = nil
	c.tail = nil
}

// evict removes the least-recently-used entry.
func (c *GlyphCache) evict() {
	e := c.tail
	if e == nil {
		return
	}
	c.unlink(e)
	delete(c.entries, e.key)
}

func (c *GlyphCache) moveToFront(e *glyphEntry) {
	if c.head == e {
		return
	}
	c.unlink(e)
	c.pushFront(e)
}

func (c *GlyphCache) pushFront(e *glyphEntry) {
	e.prev = nil
	e.next = c.head
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *GlyphCache) unlink(e *glyphEntry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
	e.prev = nil
	e.next = nil
}
