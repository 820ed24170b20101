package service

import (
	"context"
	"time"

	"recipeshare/backend/db"
	"recipeshare/backend/model"
)

// fakeStore is an in-memory UserStore. It keeps users in insertion order
// so the bounded scan of List sees a stable storage order, and enforces
// the unique-name constraint the way the real collection does.
type fakeStore struct {
	users []*model.User

	insertErr error
	findErr   error
	appendErr error
	eachErr   error

	pruneCalls int
}

func (f *fakeStore) lookup(name string) *model.User {
	for _, u := range f.users {
		if u.Name == name {
			return u
		}
	}
	return nil
}

func (f *fakeStore) InsertUser(_ context.Context, u *model.User) error {
	if f.insertErr != nil {
		return f.insertErr
	}

	if f.lookup(u.Name) != nil {
		return db.ErrDuplicateName
	}

	f.users = append(f.users, u)
	return nil
}

func (f *fakeStore) FindUserByName(_ context.Context, name string) (*model.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}

	u := f.lookup(name)
	if u == nil {
		return nil, db.ErrNotFound
	}

	cp := *u
	return &cp, nil
}

func (f *fakeStore) AppendToken(_ context.Context, name string, t model.Token) error {
	if f.appendErr != nil {
		return f.appendErr
	}

	u := f.lookup(name)
	if u == nil {
		return nil
	}

	u.Tokens = append(u.Tokens, t)
	return nil
}

func (f *fakeStore) PruneExpiredTokens(_ context.Context, name string, now time.Time) error {
	f.pruneCalls++

	u := f.lookup(name)
	if u == nil {
		return nil
	}

	kept := u.Tokens[:0]
	for _, t := range u.Tokens {
		if !t.Expiration.Before(now) {
			kept = append(kept, t)
		}
	}
	u.Tokens = kept

	return nil
}

func (f *fakeStore) AppendRecipe(_ context.Context, name string, r model.Recipe) error {
	if f.appendErr != nil {
		return f.appendErr
	}

	u := f.lookup(name)
	if u == nil {
		return nil
	}

	u.Recipes = append(u.Recipes, r)
	return nil
}

func (f *fakeStore) EachUser(_ context.Context, visit func(*model.User) bool) error {
	if f.eachErr != nil {
		return f.eachErr
	}

	for _, u := range f.users {
		if !visit(u) {
			return nil
		}
	}

	return nil
}
