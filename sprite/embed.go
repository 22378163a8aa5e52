package sprite

import (
	"bytes"
	_ "embed"
)

//go:embed assets/sprites.yaml
var defaultSheet []byte

// Default returns the built-in sprite sheet shipped with the binary
func Default() (Sheet, error) {
	return Load(bytes.NewReader(defaultSheet))
}
