package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrNoModelSelected = errors.New("no model selected")
)
