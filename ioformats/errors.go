package ioformats

import "errors"

// ErrMalformedAlist is returned when an alist stream does not match the
// expected header/body shape.
var ErrMalformedAlist = errors.New("ioformats: malformed alist input")

// ErrMalformedPacked is returned when a row-packed binary stream does not
// match its declared header.
var ErrMalformedPacked = errors.New("ioformats: malformed packed input")
