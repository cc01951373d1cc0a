package repository

import "errors"

var (
	// ErrNotAuthorized indicates store access is not granted.
	ErrNotAuthorized = errors.New("store access not authorized")

	// ErrItemGone indicates the item disappeared between snapshot and mutation.
	ErrItemGone = errors.New("item no longer exists in store")
)
