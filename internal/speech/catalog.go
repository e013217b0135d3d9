package speech

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/ytget/memegen/internal/model"
)

// DefaultCatalogInterval is how often Run re-reads the voice list
const DefaultCatalogInterval = 30 * time.Second

// Catalog keeps the engine's voice list and tells subscribers when it changes.
// Each subscriber channel holds only the latest list.
type Catalog struct {
	lister VoiceLister

	mu     sync.Mutex
	voices []model.Voice
	ready  bool
	subs   map[int]chan []model.Voice
	nextID int
}

// NewCatalog creates an empty, not-yet-ready catalog
func NewCatalog(lister VoiceLister) *Catalog {
	return &Catalog{
		lister: lister,
		subs:   make(map[int]chan []model.Voice),
	}
}

// Voices returns a copy of the current list
func (c *Catalog) Voices() []model.Voice {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]model.Voice(nil), c.voices...)
}

// Ready reports whether the first population has completed
func (c *Catalog) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ready
}

// Subscribe returns a channel of voice lists and a cancel func. A ready
// catalog delivers its current list immediately.
func (c *Catalog) Subscribe() (<-chan []model.Voice, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	ch := make(chan []model.Voice, 1)
	c.subs[id] = ch
	if c.ready {
		ch <- append([]model.Voice(nil), c.voices...)
	}

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			if sub, ok := c.subs[id]; ok {
				delete(c.subs, id)
				close(sub)
			}
		})
	}
	return ch, cancel
}

// Refresh reads the voice list and publishes it when it differs from the last
// one. The first successful read is always published, even when empty.
func (c *Catalog) Refresh(ctx context.Context) (bool, error) {
	voices, err := c.lister.Voices(ctx)
	if err != nil {
		return false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ready && model.SameVoices(c.voices, voices) {
		return false, nil
	}
	c.voices = append([]model.Voice(nil), voices...)
	c.ready = true

	for _, ch := range c.subs {
		publishLatest(ch, append([]model.Voice(nil), voices...))
	}
	return true, nil
}

// Run refreshes immediately and then every interval until ctx ends
func (c *Catalog) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultCatalogInterval
	}

	if _, err := c.Refresh(ctx); err != nil {
		log.Printf("failed to load voices: %v", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			changed, err := c.Refresh(ctx)
			if err != nil {
				log.Printf("failed to refresh voices: %v", err)
				continue
			}
			if changed {
				log.Printf("Voice list changed: %d voices", len(c.Voices()))
			}
		}
	}
}

// publishLatest replaces any unread list with voices. Callers hold c.mu, which
// makes them the only sender.
func publishLatest(ch chan []model.Voice, voices []model.Voice) {
	select {
	case <-ch:
	default:
	}
	ch <- voices
}
