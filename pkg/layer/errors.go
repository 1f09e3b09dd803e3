package layer

import "errors"

var (
	ErrEmptyRootDir    = errors.New("layer: root directory cannot be empty")
	ErrLayerNotFound   = errors.New("layer: layer directory not found")
	ErrCircularExtends = errors.New("layer: circular extends")
	ErrInvalidConfig   = errors.New("layer: invalid layer configuration")
)
