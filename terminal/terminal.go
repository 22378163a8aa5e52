package terminal

import (
	"io"
	"sync"
)

// ColorMode describes the terminal's color capability
type ColorMode uint8

const (
	ColorMode256 ColorMode = iota
	ColorModeTrueColor
)

// ResizeEvent represents a terminal dimension change
type ResizeEvent struct {
	Width  int
	Height int
}

// Terminal owns raw mode, the alternate screen, and the input/resize
// goroutines. Rendering components write to Output(); they never touch the
// terminal mode themselves.
type Terminal struct {
	backend   Backend
	colorMode ColorMode

	resize *resizeHandler
	keyCh  chan KeyEvent
	stopCh chan struct{}
	doneCh chan struct{}

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a Terminal. Color mode is detected from the environment
// unless given explicitly.
func New(colorMode ...ColorMode) *Terminal {
	c := DetectColorMode()
	if len(colorMode) > 0 {
		c = colorMode[0]
	}
	return &Terminal{
		backend:   newBackend(),
		colorMode: c,
		keyCh:     make(chan KeyEvent, 64),
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Init enters raw mode and the alternate screen, hides the cursor, disables
// autowrap, and starts the input and resize watchers
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return err
	}

	t.backend.Write(AltScreenEnter)
	t.backend.Write(AutoWrapOff)
	t.backend.Write(CursorHide)
	t.backend.Write(ClearScreen)

	t.resize = newResizeHandler(outFd(t.backend))
	t.resize.start()

	go t.inputLoop()

	t.initialized = true
	return nil
}

// Fini restores the terminal. Safe to call multiple times
func (t *Terminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.finalized = true

	close(t.stopCh)
	<-t.doneCh
	if t.resize != nil {
		t.resize.stop()
	}

	t.backend.Write(SGRReset)
	t.backend.Write(CursorShow)
	t.backend.Write(AutoWrapOn)
	t.backend.Write(AltScreenExit)
	t.backend.Fini()
}

// Size returns current terminal dimensions
func (t *Terminal) Size() (int, int) {
	return t.backend.Size()
}

// ColorMode returns the detected or configured color capability
func (t *Terminal) ColorMode() ColorMode {
	return t.colorMode
}

// Output returns the raw output stream for the render emitter
func (t *Terminal) Output() io.Writer {
	return t.backend
}

// Keys returns the decoded keypress channel
func (t *Terminal) Keys() <-chan KeyEvent {
	return t.keyCh
}

// ResizeChan returns the channel receiving terminal resize events
func (t *Terminal) ResizeChan() <-chan ResizeEvent {
	return t.resize.events()
}

func (t *Terminal) inputLoop() {
	defer close(t.doneCh)

	for {
		select {
		case <-t.stopCh:
			return
		default:
		}

		buf, err := t.backend.Read(t.stopCh)
		if err != nil || buf == nil {
			return
		}

		for _, ev := range decodeKeys(buf) {
			select {
			case t.keyCh <- ev:
			default:
				// Input faster than the game consumes it; drop
			}
		}
	}
}

// EmergencyReset restores a usable terminal after a crash. It bypasses all
// bookkeeping and is safe to call from a panic handler
func EmergencyReset(w io.Writer) {
	w.Write(SGRReset)
	w.Write(CursorShow)
	w.Write(AutoWrapOn)
	w.Write(AltScreenExit)
	resetTerminalMode()
}
