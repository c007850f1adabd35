package vtengine

import "fmt"

// errInvalidDimensions reports a construction-time programmer error
// (spec §7: the only errors the engine surfaces are at construction,
// never during Process/Resize/Reset).
func errInvalidDimensions(rows, cols int) error {
	return fmt.Errorf("vtengine: rows and cols must be positive, got rows=%d cols=%d", rows, cols)
}
