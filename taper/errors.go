package taper

import "errors"

var (
	errInvalidLength    = errors.New("taper: length must be >= 2")
	errInvalidCount     = errors.New("taper: count must be in [1, length]")
	errInvalidBandwidth = errors.New("taper: bandwidth must satisfy 0 < bw < length/2")
)
