package naming

import (
	"errors"
	"fmt"
)

// ErrInvalidDescriptor reports a caller contract violation: a descriptor
// value outside a generator's documented domain. A malformed identifier
// would corrupt the emitted netlist silently, so callers must treat any
// error wrapping this sentinel as fatal to the enclosing generation run.
var ErrInvalidDescriptor = errors.New("invalid descriptor")

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidDescriptor)...)
}
