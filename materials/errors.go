package materials

import "errors"

// ErrInvalidTags reports service tags outside physical bounds.
var ErrInvalidTags = errors.New("materials: invalid service tags")
