package seed

import (
	"bytes"
	_ "embed"
)

//go:embed starter.json
var starterJSON []byte

// Starter returns the built-in starter pack.
func Starter() (*Pack, error) {
	return Load(bytes.NewReader(starterJSON))
}
