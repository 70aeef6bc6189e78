// SPDX-License-Identifier: MIT

package persist

import (
	"errors"
	"fmt"
)

var (
	// ErrLockPresent indicates that path+".lock" exists.
	ErrLockPresent = errors.New("persist: lock file present")

	// ErrFileOpen indicates that the target (or its temporary sibling) could
	// not be opened or created.
	ErrFileOpen = errors.New("persist: cannot open file")

	// ErrCorrupt indicates a truncated or malformed weights stream.
	ErrCorrupt = errors.New("persist: corrupt weights data")

	// ErrShapeOverflow indicates a layer dimension that does not fit the
	// int32 header fields.
	ErrShapeOverflow = errors.New("persist: layer shape exceeds int32")

	// ErrNilNetwork indicates that Encode or Write was given a nil network.
	ErrNilNetwork = errors.New("persist: nil network")
)

// persistErrorf tags err with an operation and path.
func persistErrorf(op, path string, err error) error {
	return fmt.Errorf("%s(%s): %w", op, path, err)
}
