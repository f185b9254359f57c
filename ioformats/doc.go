// Package ioformats implements the external parity-check-matrix readers
// spec.md §6 names as collaborators, not core: the Mackay alist textual
// format and a row-packed binary format. Neither the root ldpc package nor
// bitmatrix imports this package — callers wire a reader's output into
// bitmatrix.New/ldpc.New themselves, keeping the decoder free of I/O.
package ioformats
