package config

import "errors"

var (
	ErrInvalid       = errors.New("config: invalid value")
	ErrUnknownEffect = errors.New("config: unknown effect")
)
