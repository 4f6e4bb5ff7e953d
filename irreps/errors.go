package irreps

import (
	"errors"
	"fmt"
)

var (
	// ErrOrderMismatch is returned when a character table and a little
	// group disagree on the group order.
	ErrOrderMismatch = errors.New("irreps: table and little group order differ")
	// ErrDisplacementSize is returned when a mode's displacement length
	// does not match the structure's atom count.
	ErrDisplacementSize = errors.New("irreps: displacement length does not match atom count")
)

func orderMismatch(table, group int) error {
	return fmt.Errorf("%w: table %d, group %d", ErrOrderMismatch, table, group)
}

func displacementSize(mode, got, want int) error {
	return fmt.Errorf("%w: mode %d has %d components, want %d", ErrDisplacementSize, mode, got, want)
}
