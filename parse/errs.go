package parse

import "errors"

var ErrEmptyPath = errors.New("empty record path")
