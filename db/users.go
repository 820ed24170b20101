package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"recipeshare/backend/model"
)

func (s *Store) InsertUser(ctx context.Context, u *model.User) error {
	_, err := s.users.InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateName
	}

	return err
}

func (s *Store) FindUserByName(ctx context.Context, name string) (*model.User, error) {
	var u model.User

	err := s.users.FindOne(ctx, bson.M{"name": name}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// AppendToken pushes a freshly issued token onto the user's token list.
// The push is atomic, concurrent sign-ins both land.
func (s *Store) AppendToken(ctx context.Context, name string, t model.Token) error {
	_, err := s.users.UpdateOne(ctx,
		bson.M{"name": name},
		bson.M{"$push": bson.M{"tokens": t}},
	)

	return err
}

// PruneExpiredTokens drops token entries that expired before now.
func (s *Store) PruneExpiredTokens(ctx context.Context, name string, now time.Time) error {
	_, err := s.users.UpdateOne(ctx,
		bson.M{"name": name},
		bson.M{"$pull": bson.M{"tokens": bson.M{"expiration": bson.M{"$lt": now}}}},
	)

	return err
}

func (s *Store) AppendRecipe(ctx context.Context, name string, r model.Recipe) error {
	_, err := s.users.UpdateOne(ctx,
		bson.M{"name": name},
		bson.M{"$push": bson.M{"recipes": r}},
	)

	return err
}

// EachUser walks the users collection in storage order and calls visit for
// every document until visit returns false.
func (s *Store) EachUser(ctx context.Context, visit func(*model.User) bool) error {
	cur, err := s.users.Find(ctx, bson.M{})
	if err != nil {
		return err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var u model.User
		if err := cur.Decode(&u); err != nil {
			return err
		}

		if !visit(&u) {
			return nil
		}
	}

	return cur.Err()
}
