package model

import "time"

// User is the single document type of the application. Everything a user
// owns (session tokens, recipes) is embedded in it.
type User struct {
	Name     string   `bson:"name" json:"name"`
	Password string   `bson:"password" json:"-"`
	Admin    bool     `bson:"admin" json:"admin"`
	Tokens   []Token  `bson:"tokens" json:"-"`
	Recipes  []Recipe `bson:"recipes" json:"recipes"`
}

// Token is a bearer session credential. The client stores the token
// string and replays it together with the user name.
type Token struct {
	Token      string    `bson:"token" json:"token"`
	Expiration time.Time `bson:"expiration" json:"expiration"`
}
