package game

import (
	"crypto/rand"
	"math/big"
)

// Picker chooses an index in [0, n). n is always > 0. Returning anything
// else is a programming error; Engine.StartRound panics on it.
type Picker interface {
	Pick(n int) int
}

// PickerFunc adapts a function to Picker.
type PickerFunc func(n int) int

func (f PickerFunc) Pick(n int) int { return f(n) }

// CryptoPicker picks uniformly using crypto/rand.
type CryptoPicker struct{}

func (CryptoPicker) Pick(n int) int {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(nBig.Int64())
}
