package memory

import (
	"time"

	"crossword-collab-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// PuzzleCache is an in-process TTL cache in front of the puzzle repository.
// Puzzles are immutable once seeded, so staleness is not a concern; the TTL
// only bounds memory.
type PuzzleCache struct {
	cache *cache.Cache
}

func NewPuzzleCache(ttl time.Duration) *PuzzleCache {
	return &PuzzleCache{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

func (c *PuzzleCache) Get(id uuid.UUID) (*entity.Puzzle, bool) {
	if x, found := c.cache.Get(id.String()); found {
		return x.(*entity.Puzzle), true
	}
	return nil, false
}

func (c *PuzzleCache) Set(puzzle *entity.Puzzle) {
	c.cache.Set(puzzle.Id.String(), puzzle, cache.DefaultExpiration)
}
