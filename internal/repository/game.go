package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

var ErrGameAlreadyExists = errors.New("game already exists")

// maxUpdateAttempts bounds optimistic retries when another writer wins the race.
const maxUpdateAttempts = 5

// UpdateFunc mutates a game loaded inside a transaction. Returning an error aborts
// the update and nothing is written.
type UpdateFunc func(game *entity.Game) error

type GameRepository interface {
	Create(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	Update(ctx context.Context, id string, fn UpdateFunc) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

type redisGame struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisGameRepository stores games as JSON under "game:<id>". A zero ttl keeps
// games forever; otherwise every write refreshes the expiry.
func NewRedisGameRepository(client *redis.Client, ttl time.Duration) GameRepository {
	return &redisGame{
		client: client,
		ttl:    ttl,
	}
}

func gameKey(id string) string {
	return "game:" + id
}

func (that *redisGame) Create(ctx context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	created, err := that.client.SetNX(ctx, gameKey(game.ID), gameJSON, that.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	if !created {
		return fmt.Errorf("%w: %s", ErrGameAlreadyExists, game.ID)
	}

	return nil
}

func (that *redisGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	return that.get(ctx, that.client, id)
}

func (that *redisGame) Update(ctx context.Context, id string, fn UpdateFunc) (*entity.Game, error) {
	key := gameKey(id)

	var updated *entity.Game
	txf := func(tx *redis.Tx) error {
		game, err := that.get(ctx, tx, id)
		if err != nil {
			return err
		}

		if err = fn(game); err != nil {
			return err
		}

		gameJSON, err := json.Marshal(game)
		if err != nil {
			return fmt.Errorf("could not marshal game: %w", err)
		}

		// EXEC fails with redis.TxFailedErr if the key changed since WATCH.
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, gameJSON, that.ttl)
			return nil
		})
		if err != nil {
			return err
		}

		updated = game
		return nil
	}

	for range maxUpdateAttempts {
		err := that.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}

		if err != nil {
			return nil, err
		}

		return updated, nil
	}

	return nil, fmt.Errorf("%w: %s", apperror.ErrConcurrentUpdate, id)
}

func (that *redisGame) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, gameKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete game by ID: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrGameNotFound
	}

	return nil
}

func (that *redisGame) get(ctx context.Context, conn getter, id string) (*entity.Game, error) {
	response, err := conn.Get(ctx, gameKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	var game entity.Game
	if err = json.Unmarshal(response, &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	if err = game.Validate(); err != nil {
		return nil, fmt.Errorf("game %s: %w", id, err)
	}

	return &game, nil
}
