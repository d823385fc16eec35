package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

// gameDocument is the stored form of a game. Version guards concurrent replaces.
type gameDocument struct {
	entity.Game `bson:",inline"`

	Version   int64      `bson:"version"`
	ExpiresAt *time.Time `bson:"expires_at,omitempty"`
}

type MongoGameRepository struct {
	collection *mongo.Collection
	ttl        time.Duration
}

// NewMongoGameRepository stores one document per game. With a non-zero ttl documents
// carry expires_at and are removed by the TTL index created in EnsureIndexes.
func NewMongoGameRepository(collection *mongo.Collection, ttl time.Duration) *MongoGameRepository {
	return &MongoGameRepository{
		collection: collection,
		ttl:        ttl,
	}
}

func (that *MongoGameRepository) EnsureIndexes(ctx context.Context) error {
	if that.ttl == 0 {
		return nil
	}

	_, err := that.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	if err != nil {
		return fmt.Errorf("failed to create ttl index: %w", err)
	}

	return nil
}

func (that *MongoGameRepository) Create(ctx context.Context, game *entity.Game) error {
	doc := that.document(game, 1)

	if _, err := that.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %s", ErrGameAlreadyExists, game.ID)
		}

		return fmt.Errorf("failed to insert game: %w", err)
	}

	return nil
}

func (that *MongoGameRepository) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	doc, err := that.find(ctx, id)
	if err != nil {
		return nil, err
	}

	return &doc.Game, nil
}

func (that *MongoGameRepository) Update(ctx context.Context, id string, fn UpdateFunc) (*entity.Game, error) {
	for range maxUpdateAttempts {
		doc, err := that.find(ctx, id)
		if err != nil {
			return nil, err
		}

		if err = fn(&doc.Game); err != nil {
			return nil, err
		}

		next := that.document(&doc.Game, doc.Version+1)
		filter := bson.D{{Key: "_id", Value: id}, {Key: "version", Value: doc.Version}}

		result, err := that.collection.ReplaceOne(ctx, filter, next)
		if err != nil {
			return nil, fmt.Errorf("failed to replace game: %w", err)
		}

		if result.MatchedCount == 1 {
			return &doc.Game, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", apperror.ErrConcurrentUpdate, id)
}

func (that *MongoGameRepository) DeleteByID(ctx context.Context, id string) error {
	result, err := that.collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("failed to delete game by ID: %w", err)
	}

	if result.DeletedCount == 0 {
		return apperror.ErrGameNotFound
	}

	return nil
}

func (that *MongoGameRepository) find(ctx context.Context, id string) (*gameDocument, error) {
	var doc gameDocument

	err := that.collection.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if err = doc.Validate(); err != nil {
		return nil, fmt.Errorf("game %s: %w", id, err)
	}

	return &doc, nil
}

func (that *MongoGameRepository) document(game *entity.Game, version int64) *gameDocument {
	doc := &gameDocument{
		Game:    *game,
		Version: version,
	}

	if that.ttl > 0 {
		expiresAt := game.UpdatedAt.Add(that.ttl)
		doc.ExpiresAt = &expiresAt
	}

	return doc
}
