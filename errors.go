package ldpc

import "errors"

// ErrInvalidChannel is returned when a bitflip chance outside (0, 0.5) is
// supplied to New, WithGenerator, or SetBitflipChance.
var ErrInvalidChannel = errors.New("ldpc: bitflip chance must be in (0, 0.5)")
