// Package service implements the account and recipe use cases on top of
// the users collection.
package service

import "errors"

// Expected business outcomes. Safe to describe to the end user, never
// logged as errors.
var (
	ErrNameAlreadyTaken    = errors.New("name already taken")
	ErrWrongNameOrPassword = errors.New("wrong name or password")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)

// Infrastructure failures. The detail is logged where it happens, only
// these opaque markers cross the service boundary.
var (
	ErrDatabase = errors.New("database error")
	ErrInternal = errors.New("internal error")
)
