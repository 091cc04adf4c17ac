package repository

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrMediaNotFound      = errors.New("media not found")
	ErrCollectionNotFound = errors.New("collection not found")
)
