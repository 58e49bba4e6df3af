package presence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyTTL = 24 * time.Hour

// Store tracks which users currently hold a live connection per session,
// backed by Redis sets. All operations are best-effort: presence is advisory
// data for the session view, never an access control input.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func key(sessionId uuid.UUID) string {
	return fmt.Sprintf("presence:%s", sessionId)
}

func (s *Store) Join(ctx context.Context, sessionId, userId uuid.UUID) error {
	if s == nil || s.rdb == nil {
		return nil
	}
	pipe := s.rdb.Pipeline()
	pipe.SAdd(ctx, key(sessionId), userId.String())
	pipe.Expire(ctx, key(sessionId), keyTTL)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Store) Leave(ctx context.Context, sessionId, userId uuid.UUID) error {
	if s == nil || s.rdb == nil {
		return nil
	}
	return s.rdb.SRem(ctx, key(sessionId), userId.String()).Err()
}

// Online returns the set of user ids with a live connection to the session.
// Without Redis the result is empty, which reads as "everyone offline".
func (s *Store) Online(ctx context.Context, sessionId uuid.UUID) (map[uuid.UUID]bool, error) {
	online := make(map[uuid.UUID]bool)
	if s == nil || s.rdb == nil {
		return online, nil
	}

	members, err := s.rdb.SMembers(ctx, key(sessionId)).Result()
	if err != nil {
		return online, err
	}
	for _, m := range members {
		if id, err := uuid.Parse(m); err == nil {
			online[id] = true
		}
	}
	return online, nil
}

func (s *Store) Clear(ctx context.Context, sessionId uuid.UUID) error {
	if s == nil || s.rdb == nil {
		return nil
	}
	return s.rdb.Del(ctx, key(sessionId)).Err()
}
