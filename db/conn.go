// Package db contains everything related to the MongoDB users collection
package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound      = errors.New("user not found")
	ErrDuplicateName = errors.New("name already taken")
)

// Store wraps the users collection. One Store is created at startup and
// shared by every request, the driver pools connections internally.
type Store struct {
	client *mongo.Client
	users  *mongo.Collection
}

func Connect(ctx context.Context) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(viper.GetString("mongo.uri")))
	if err != nil {
		return nil, fmt.Errorf("failed to create MongoDB client, %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to reach MongoDB, %w", err)
	}

	return &Store{
		client: client,
		users:  client.Database(viper.GetString("mongo.database")).Collection("users"),
	}, nil
}

// EnsureIndexes creates the unique index on the user name. Must run once
// before the first insert, safe to run on every startup.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create unique name index, %w", err)
	}

	return nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
