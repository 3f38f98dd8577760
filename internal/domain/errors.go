package domain

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidSubscription = errors.New("invalid push subscription")
	ErrInvalidTime         = errors.New("invalid reminder time")
)
