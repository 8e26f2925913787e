package adapter

import "errors"

var ErrUpstream = errors.New("completion upstream failed")
