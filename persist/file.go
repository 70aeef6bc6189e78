// SPDX-License-Identifier: MIT

package persist

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/katalvlaran/lvnet/network"
)

const (
	lockSuffix = ".lock"
	tempPrefix = ".lvnet-"
	filePerm   = 0o644
)

// LockPath returns the marker path guarding path.
func LockPath(path string) string { return path + lockSuffix }

// locked reports whether the marker for path exists.
func locked(path string) bool {
	_, err := os.Stat(LockPath(path))
	return err == nil
}

// Lock creates the marker for path. It fails with ErrLockPresent when the
// marker already exists.
func Lock(path string) error {
	f, err := os.OpenFile(LockPath(path), os.O_CREATE|os.O_EXCL|os.O_WRONLY, filePerm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return persistErrorf("Lock", path, ErrLockPresent)
		}
		return persistErrorf("Lock", path, err)
	}

	return f.Close()
}

// Unlock removes the marker for path. A missing marker is not an error.
func Unlock(path string) error {
	if err := os.Remove(LockPath(path)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return persistErrorf("Unlock", path, err)
	}

	return nil
}

// Write stores n at path. The file is written to a temporary sibling, synced
// and renamed over path; on failure the temporary file is removed and path is
// left as it was.
//
// Errors: ErrLockPresent, ErrFileOpen (path exists but is not a regular
// file, or the temporary file cannot be created or renamed), or the
// underlying write error.
func Write(path string, n *network.Network) (err error) {
	if locked(path) {
		return persistErrorf("Write", path, ErrLockPresent)
	}
	if info, statErr := os.Stat(path); statErr == nil && !info.Mode().IsRegular() {
		return persistErrorf("Write", path, fmt.Errorf("%w: not a regular file", ErrFileOpen))
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), tempPrefix+filepath.Base(path)+"-*")
	if err != nil {
		return persistErrorf("Write", path, errors.Join(ErrFileOpen, err))
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if err = Encode(tmp, n); err != nil {
		return persistErrorf("Write", path, err)
	}
	if err = tmp.Sync(); err != nil {
		return persistErrorf("Write", path, err)
	}
	if err = tmp.Chmod(filePerm); err != nil {
		return persistErrorf("Write", path, err)
	}
	if err = tmp.Close(); err != nil {
		return persistErrorf("Write", path, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return persistErrorf("Write", path, errors.Join(ErrFileOpen, err))
	}

	return nil
}

// Read loads the network stored at path. On any error the result is nil.
//
// Errors: ErrLockPresent, ErrFileOpen, ErrCorrupt.
func Read(path string) (*network.Network, error) {
	if locked(path) {
		return nil, persistErrorf("Read", path, ErrLockPresent)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, persistErrorf("Read", path, errors.Join(ErrFileOpen, err))
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, persistErrorf("Read", path, errors.Join(ErrFileOpen, err))
	}
	if !info.Mode().IsRegular() {
		return nil, persistErrorf("Read", path, fmt.Errorf("%w: not a regular file", ErrFileOpen))
	}

	n, err := Decode(f)
	if err != nil {
		return nil, persistErrorf("Read", path, err)
	}

	return n, nil
}
