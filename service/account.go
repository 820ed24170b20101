package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"recipeshare/backend/db"
	"recipeshare/backend/model"
	"recipeshare/backend/security"
)

// UserStore is the slice of the storage layer the services operate on.
type UserStore interface {
	InsertUser(ctx context.Context, u *model.User) error
	FindUserByName(ctx context.Context, name string) (*model.User, error)
	AppendToken(ctx context.Context, name string, t model.Token) error
	PruneExpiredTokens(ctx context.Context, name string, now time.Time) error
	AppendRecipe(ctx context.Context, name string, r model.Recipe) error
	EachUser(ctx context.Context, visit func(*model.User) bool) error
}

type AccountService struct {
	store UserStore
	argon *security.ArgonHash
}

func NewAccountService(store UserStore, argon *security.ArgonHash) *AccountService {
	return &AccountService{store: store, argon: argon}
}

// SignUp creates a new user with a hashed password and a first session
// token. Nothing is persisted when hashing or the insert fails.
func (s *AccountService) SignUp(ctx context.Context, name, password string) (model.Token, error) {
	token, err := security.NewToken(time.Now())
	if err != nil {
		zap.L().Error("Failed to issue token", zap.Error(err))
		return model.Token{}, ErrInternal
	}

	hash, err := s.argon.GenerateFromPassword(password)
	if err != nil {
		zap.L().Error("Failed to hash password", zap.Error(err))
		return model.Token{}, ErrInternal
	}

	user := &model.User{
		Name:     name,
		Password: hash,
		Admin:    false,
		Tokens:   []model.Token{token},
		Recipes:  []model.Recipe{},
	}

	if err := s.store.InsertUser(ctx, user); err != nil {
		if errors.Is(err, db.ErrDuplicateName) {
			return model.Token{}, ErrNameAlreadyTaken
		}

		zap.L().Error("Failed to insert user", zap.Error(err), zap.String("name", name))
		return model.Token{}, ErrDatabase
	}

	return token, nil
}

// SignIn verifies the password and appends a fresh token to the user's
// token list. An unknown name and a wrong password come back as the same
// error so the response doesn't reveal which names exist.
func (s *AccountService) SignIn(ctx context.Context, name, password string) (model.Token, error) {
	user, err := s.store.FindUserByName(ctx, name)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return model.Token{}, ErrWrongNameOrPassword
		}

		zap.L().Error("Failed to look up user", zap.Error(err), zap.String("name", name))
		return model.Token{}, ErrDatabase
	}

	ok, err := s.argon.VerifyPassword(password, user.Password)
	if err != nil {
		zap.L().Error("Failed to verify password", zap.Error(err), zap.String("name", name))
		return model.Token{}, ErrInternal
	}
	if !ok {
		return model.Token{}, ErrWrongNameOrPassword
	}

	now := time.Now()

	token, err := security.NewToken(now)
	if err != nil {
		zap.L().Error("Failed to issue token", zap.Error(err))
		return model.Token{}, ErrInternal
	}

	if err := s.store.AppendToken(ctx, name, token); err != nil {
		zap.L().Error("Failed to append token", zap.Error(err), zap.String("name", name))
		return model.Token{}, ErrDatabase
	}

	// Keeps the token list from growing without bound across sign-ins.
	// The sign-in itself already succeeded, so a failure here only logs.
	if err := s.store.PruneExpiredTokens(ctx, name, now); err != nil {
		zap.L().Warn("Failed to prune expired tokens", zap.Error(err), zap.String("name", name))
	}

	return token, nil
}

// Authorize checks a replayed (name, token) pair against the stored token
// list. Unknown user and bad token collapse into ErrInvalidCredentials.
func (s *AccountService) Authorize(ctx context.Context, name, token string) error {
	user, err := s.store.FindUserByName(ctx, name)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrInvalidCredentials
		}

		zap.L().Error("Failed to look up user", zap.Error(err), zap.String("name", name))
		return ErrDatabase
	}

	if !security.Authorize(user.Tokens, token, time.Now()) {
		return ErrInvalidCredentials
	}

	return nil
}
