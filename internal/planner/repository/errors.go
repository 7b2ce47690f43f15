package repository

import "errors"

var (
	ErrSessionRequired  = errors.New("session id is required")
	ErrStatusRegression = errors.New("record status can only move forward")
)
