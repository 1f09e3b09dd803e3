package i18nlayers

import "errors"

// ErrConfigResolution wraps a runtime config resolution failure of an extended layer.
var ErrConfigResolution = errors.New("i18nlayers: failed to resolve layer runtime config")
