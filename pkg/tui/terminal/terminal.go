// ABOUTME: Defines the Terminal interface for raw mode, geometry, byte input, and frame output.
// ABOUTME: Abstracts terminal operations so implementations can target real or virtual terminals.

package terminal

// Terminal abstracts low-level terminal operations: raw mode, size
// discovery, single-byte input, and output writing.
type Terminal interface {
	EnterRawMode() error
	ExitRawMode() error
	Size() (Size, error)
	Read(p []byte) (n int, err error)
	Write(p []byte) (n int, err error)
}
