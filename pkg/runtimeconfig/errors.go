package runtimeconfig

import "errors"

var (
	ErrEmptyRootDir      = errors.New("runtimeconfig: root directory cannot be empty")
	ErrInvalidConfigFile = errors.New("runtimeconfig: invalid runtime config file")
)
