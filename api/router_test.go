package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipeshare/backend/db"
	"recipeshare/backend/model"
	"recipeshare/backend/service"
)

// fakeStore is a minimal in-memory service.UserStore for handler tests.
type fakeStore struct {
	users []*model.User
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
	if f.lookup(u.Name) != nil {
		return db.ErrDuplicateName
	}
	f.users = append(f.users, u)
	return nil
}

func (f *fakeStore) FindUserByName(_ context.Context, name string) (*model.User, error) {
	u := f.lookup(name)
	if u == nil {
		return nil, db.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeStore) AppendToken(_ context.Context, name string, t model.Token) error {
	if u := f.lookup(name); u != nil {
		u.Tokens = append(u.Tokens, t)
	}
	return nil
}

func (f *fakeStore) PruneExpiredTokens(_ context.Context, name string, now time.Time) error {
	return nil
}

func (f *fakeStore) AppendRecipe(_ context.Context, name string, r model.Recipe) error {
	if u := f.lookup(name); u != nil {
		u.Recipes = append(u.Recipes, r)
	}
	return nil
}

func (f *fakeStore) EachUser(_ context.Context, visit func(*model.User) bool) error {
	for _, u := range f.users {
		if !visit(u) {
			return nil
		}
	}
	return nil
}

func newTestAPI(t *testing.T, store service.UserStore) *API {
	t.Helper()

	viper.Set("app.log_level", "error")
	viper.Set("recipes.list_limit", 50)
	viper.Set("auth.rate_limit.requests_per_second", 100)
	viper.Set("auth.rate_limit.burst", 100)

	gin.SetMode(gin.TestMode)

	a, err := NewRouter(store)
	require.NoError(t, err)
	return a
}

func doJSON(a *API, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

func sessionFor(store *fakeStore, name string) []*http.Cookie {
	u := store.lookup(name)
	tok := u.Tokens[len(u.Tokens)-1]
	return []*http.Cookie{
		{Name: "name", Value: name},
		{Name: "token", Value: tok.Token},
	}
}

func TestUserSignup(t *testing.T) {
	store := &fakeStore{}
	a := newTestAPI(t, store)

	w := doJSON(a, http.MethodPost, "/api/users", gin.H{"name": "alice", "password": "pw123456"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token      string    `json:"token"`
		Expiration time.Time `json:"expiration"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.Expiration.After(time.Now()))

	// The session lands in the name/token cookies
	cookies := map[string]string{}
	for _, c := range w.Result().Cookies() {
		cookies[c.Name] = c.Value
	}
	assert.Equal(t, "alice", cookies["name"])
	assert.Equal(t, resp.Token, cookies["token"])

	require.Len(t, store.users, 1)
	assert.Len(t, store.users[0].Tokens, 1)
}

func TestUserSignupNameTaken(t *testing.T) {
	store := &fakeStore{}
	a := newTestAPI(t, store)

	w := doJSON(a, http.MethodPost, "/api/users", gin.H{"name": "alice", "password": "pw123456"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(a, http.MethodPost, "/api/users", gin.H{"name": "alice", "password": "other-pw1"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUserSignupValidation(t *testing.T) {
	a := newTestAPI(t, &fakeStore{})

	w := doJSON(a, http.MethodPost, "/api/users", gin.H{"name": "", "password": "pw123456"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(a, http.MethodPost, "/api/users", gin.H{"name": "alice", "password": "short"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserSignin(t *testing.T) {
	store := &fakeStore{}
	a := newTestAPI(t, store)

	w := doJSON(a, http.MethodPost, "/api/users", gin.H{"name": "alice", "password": "pw123456"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(a, http.MethodPost, "/api/users/login", gin.H{"name": "alice", "password": "pw123456"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Len(t, store.lookup("alice").Tokens, 2)

	// Wrong password and unknown user get the same answer
	w = doJSON(a, http.MethodPost, "/api/users/login", gin.H{"name": "alice", "password": "wrong-pw1"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(a, http.MethodPost, "/api/users/login", gin.H{"name": "bob", "password": "anything1"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRecipeCreate(t *testing.T) {
	store := &fakeStore{users: []*model.User{{
		Name: "alice",
		Tokens: []model.Token{
			{Token: "tok", Expiration: time.Now().Add(time.Hour)},
		},
	}}}
	a := newTestAPI(t, store)

	body := gin.H{
		"name":          "Soup",
		"icon_url":      "https://example.com/soup.png",
		"price_level":   1,
		"healthy_level": 3,
		"instructions":  []string{"Chop", "Boil"},
		"ingredients":   []gin.H{{"name": "Carrot", "quantity": "2"}},
		"tools":         []gin.H{{"name": "Pot"}},
	}

	// No session cookies
	w := doJSON(a, http.MethodPost, "/api/recipes", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Bad token
	w = doJSON(a, http.MethodPost, "/api/recipes", body,
		&http.Cookie{Name: "name", Value: "alice"},
		&http.Cookie{Name: "token", Value: "wrong"},
	)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, store.lookup("alice").Recipes)

	// Valid session
	w = doJSON(a, http.MethodPost, "/api/recipes", body, sessionFor(store, "alice")...)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	recipes := store.lookup("alice").Recipes
	require.Len(t, recipes, 1)
	assert.Equal(t, "Soup", recipes[0].Name)
	assert.Equal(t, []string{"Chop", "Boil"}, recipes[0].Instructions)
}

func TestRecipeCreateValidation(t *testing.T) {
	store := &fakeStore{users: []*model.User{{
		Name: "alice",
		Tokens: []model.Token{
			{Token: "tok", Expiration: time.Now().Add(time.Hour)},
		},
	}}}
	a := newTestAPI(t, store)

	w := doJSON(a, http.MethodPost, "/api/recipes",
		gin.H{"name": "", "price_level": 0, "healthy_level": 0},
		sessionFor(store, "alice")...,
	)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(a, http.MethodPost, "/api/recipes",
		gin.H{"name": "Soup", "price_level": 9, "healthy_level": 0},
		sessionFor(store, "alice")...,
	)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecipeList(t *testing.T) {
	store := &fakeStore{users: []*model.User{
		{Name: "a", Recipes: []model.Recipe{
			{Name: "Soup", IconURL: "https://example.com/soup.png", Instructions: []string{"secret step"}},
			{Name: "Toast"},
		}},
		{Name: "b", Recipes: []model.Recipe{{Name: "Stew"}}},
	}}
	a := newTestAPI(t, store)

	w := doJSON(a, http.MethodGet, "/api/recipes?limit=37", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Recipes []model.RecipeInfo `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Recipes, 3)
	assert.Equal(t, model.RecipeInfo{Name: "Soup", IconURL: "https://example.com/soup.png"}, resp.Recipes[0])

	// Only the listing projection leaves the server
	assert.NotContains(t, w.Body.String(), "secret step")

	w = doJSON(a, http.MethodGet, "/api/recipes?limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Recipes, 2)

	w = doJSON(a, http.MethodGet, "/api/recipes?limit=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidate(t *testing.T) {
	store := &fakeStore{users: []*model.User{{
		Name: "alice",
		Tokens: []model.Token{
			{Token: "tok", Expiration: time.Now().Add(time.Hour)},
		},
	}}}
	a := newTestAPI(t, store)

	w := doJSON(a, http.MethodHead, "/api/validate", nil, sessionFor(store, "alice")...)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(a, http.MethodHead, "/api/validate", nil,
		&http.Cookie{Name: "name", Value: "alice"},
		&http.Cookie{Name: "token", Value: "wrong"},
	)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(a, http.MethodHead, "/api/validate", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHeartbeat(t *testing.T) {
	a := newTestAPI(t, &fakeStore{})

	w := doJSON(a, http.MethodHead, "/api/heartbeat", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
