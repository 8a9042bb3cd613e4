package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/strahius/scopa"
)

const (
	roomKeyPrefix   = "scopa:room:"
	statesKeySuffix = ":states"

	// rooms are reclaimed after a period of inactivity
	roomExpiration = 24 * time.Hour
)

// RedisRoomStore persists room state histories in Redis. Each room is
// a marker key plus a list of JSON-encoded states; list order is the
// history order.
type RedisRoomStore struct {
	client *redis.Client
}

// NewRedisRoomStore constructs a RedisRoomStore around an existing client
func NewRedisRoomStore(client *redis.Client) *RedisRoomStore {
	return &RedisRoomStore{client: client}
}

func roomKey(roomID string) string {
	return roomKeyPrefix + roomID
}

func statesKey(roomID string) string {
	return roomKeyPrefix + roomID + statesKeySuffix
}

func (s *RedisRoomStore) CreateRoom(ctx context.Context, roomID string) error {
	created, err := s.client.SetNX(ctx, roomKey(roomID), 1, roomExpiration).Result()
	if err != nil {
		return err
	}
	if !created {
		return fmt.Errorf("room with id %s already exists", roomID)
	}
	return nil
}

func (s *RedisRoomStore) GetRoom(ctx context.Context, roomID string) (*scopa.Room, error) {
	exists, err := s.client.Exists(ctx, roomKey(roomID)).Result()
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, nil
	}

	raw, err := s.client.LRange(ctx, statesKey(roomID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	states := make([]scopa.GameState, len(raw))
	for i, item := range raw {
		if err := json.Unmarshal([]byte(item), &states[i]); err != nil {
			return nil, fmt.Errorf("could not decode state %d for room %s: %w", i, roomID, err)
		}
	}

	return &scopa.Room{ID: roomID, States: states}, nil
}

func (s *RedisRoomStore) GetCurrentState(ctx context.Context, roomID string) (*scopa.GameState, error) {
	raw, err := s.client.LIndex(ctx, statesKey(roomID), -1).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var state scopa.GameState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, fmt.Errorf("could not decode current state for room %s: %w", roomID, err)
	}
	return &state, nil
}

func (s *RedisRoomStore) AddState(ctx context.Context, roomID string, state scopa.GameState) error {
	exists, err := s.client.Exists(ctx, roomKey(roomID)).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return fmt.Errorf("%w: %q", scopa.ErrMissingRoom, roomID)
	}

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("could not encode state for room %s: %w", roomID, err)
	}

	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, statesKey(roomID), data)
	pipe.Expire(ctx, roomKey(roomID), roomExpiration)
	pipe.Expire(ctx, statesKey(roomID), roomExpiration)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *RedisRoomStore) RemoveLatestState(ctx context.Context, roomID string) error {
	err := s.client.RPop(ctx, statesKey(roomID)).Err()
	if errors.Is(err, redis.Nil) {
		return fmt.Errorf("%w: %q", scopa.ErrMissingState, roomID)
	}
	return err
}
