package terminal

// Backend abstracts OS-level terminal access: raw mode, dimensions, and
// byte-level I/O. The unix implementation is the only one shipped; the
// render path assumes an ANSI terminal.
type Backend interface {
	// Init puts the input terminal into raw mode
	Init() error

	// Fini restores the previous terminal mode. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions in cells
	Size() (width, height int)

	// Write sends raw bytes to the output terminal
	Write(p []byte) (int, error)

	// Read blocks until input bytes are available or stopCh closes.
	// A nil slice with nil error means the read was stopped or hit EOF
	Read(stopCh <-chan struct{}) ([]byte, error)
}
