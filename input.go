package seedling

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ParseKey converts an ebiten key name such as "Space" or "Enter" into a key.
func ParseKey(name string) (ebiten.Key, error) {
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("unknown advance key %q", name)
	}
	return k, nil
}

// KeyInput turns a key press into advance requests. Only the press edge
// counts; holding the key does not repeat.
type KeyInput struct {
	Key ebiten.Key

	// pressed is injected in tests in place of inpututil.
	pressed func(ebiten.Key) bool
}

// NewKeyInput creates an input that advances on key.
func NewKeyInput(key ebiten.Key) *KeyInput {
	return &KeyInput{Key: key, pressed: inpututil.IsKeyJustPressed}
}

// Poll reports whether the advance key was pressed this tick.
func (in *KeyInput) Poll() bool {
	if in == nil || in.pressed == nil {
		return false
	}
	return in.pressed(in.Key)
}
