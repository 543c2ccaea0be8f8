package decoder

import (
	"errors"
	"fmt"

	"github.com/jmpatri615/aill/wire"
)

// StructuralError reports a wrong token at Offset: an opener/closer
// mismatch, or a closer encountered where none was open.
type StructuralError struct {
	Offset   int
	Expected string
	Got      string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("aill: structural error at offset %d: expected %s, got %s", e.Offset, e.Expected, e.Got)
}

// MetaMissing reports a mandatory meta-header field that was absent
// or appeared out of order.
type MetaMissing struct {
	Which string
}

func (e *MetaMissing) Error() string {
	return fmt.Sprintf("aill: mandatory meta field missing or out of order: %s", e.Which)
}

func isTruncated(err error) bool {
	var t *wire.Truncated
	return errors.As(err, &t)
}
