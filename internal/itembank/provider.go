package itembank

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/personality-cat/backend/internal/models"
)

// Provider resolves item pools for sessions. It serves from (in order) the
// in-process cache, the persistent cache, and the built-in catalog. On a
// catalog fallback it kicks off background generation so the next session in
// the same cohort gets tailored items; live sessions keep their fixed pools
// either way.
type Provider struct {
	bank  *Bank
	llm   LLMClient
	cache ItemCache // nil when running without a database

	mu       sync.RWMutex
	mem      map[string][]models.Item
	inflight map[string]bool
}

func NewProvider(bank *Bank, llm LLMClient, cache ItemCache) *Provider {
	return &Provider{
		bank:     bank,
		llm:      llm,
		cache:    cache,
		mem:      make(map[string][]models.Item),
		inflight: make(map[string]bool),
	}
}

// CacheKey identifies a demographic cohort for one dimension. Empty fields
// collapse to "any" so sparse profiles still share pools.
func CacheKey(dim models.Dimension, demo models.Demographics) string {
	part := func(v string) string {
		if v == "" {
			return "any"
		}
		return strings.ToLower(strings.ReplaceAll(v, " ", "_"))
	}
	return fmt.Sprintf("%s_%s_%s_%s_%s",
		dim, part(demo.AgeGroup), part(demo.Gender), part(demo.EducationLevel), part(demo.MaritalStatus))
}

// ItemsFor returns count items for the dimension and cohort. It never fails
// on generator trouble: the catalog backs every cohort.
func (p *Provider) ItemsFor(ctx context.Context, dim models.Dimension, demo models.Demographics, count int) ([]models.Item, error) {
	key := CacheKey(dim, demo)

	p.mu.RLock()
	cached, ok := p.mem[key]
	p.mu.RUnlock()
	if ok && len(cached) >= count {
		return copyItems(cached[:count]), nil
	}

	if p.cache != nil {
		stored, err := p.cache.Get(ctx, key)
		if err != nil {
			log.Printf("WARN: item cache read failed for %s: %v", key, err)
		} else if len(stored) >= count {
			p.mu.Lock()
			p.mem[key] = stored
			p.mu.Unlock()
			return copyItems(stored[:count]), nil
		}
	}

	p.enrichAsync(key, dim, demo, count)
	return p.bank.Items(dim, count), nil
}

// enrichAsync generates a tailored pool for the cohort in the background.
// At most one generation runs per key at a time.
func (p *Provider) enrichAsync(key string, dim models.Dimension, demo models.Demographics, count int) {
	if p.llm == nil {
		return
	}

	p.mu.Lock()
	if p.inflight[key] {
		p.mu.Unlock()
		return
	}
	p.inflight[key] = true
	p.mu.Unlock()

	go func() {
		defer func() {
			p.mu.Lock()
			delete(p.inflight, key)
			p.mu.Unlock()
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		resp, err := p.llm.Generate(ctx, SystemPrompt(), BuildUserPrompt(dim, demo, count))
		if err != nil {
			log.Printf("WARN: item generation failed for %s: %v", key, err)
			return
		}
		items, err := ParseItems(resp.Content, dim)
		if err != nil {
			log.Printf("WARN: item parse failed for %s: %v", key, err)
			return
		}
		if len(items) < count {
			// Top up with catalog items so the pool always fills a session.
			items = append(items, p.bank.Items(dim, count-len(items))...)
		}

		p.mu.Lock()
		p.mem[key] = items
		p.mu.Unlock()

		if p.cache != nil {
			if err := p.cache.Put(ctx, key, items); err != nil {
				log.Printf("WARN: item cache write failed for %s: %v", key, err)
			}
		}
		log.Printf("[itembank] generated %d items for %s", len(items), key)
	}()
}

func copyItems(items []models.Item) []models.Item {
	out := make([]models.Item, len(items))
	copy(out, items)
	return out
}
