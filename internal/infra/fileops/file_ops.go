// Where: internal/infra/fileops/file_ops.go
// What: Shared filesystem operations for include generation.
// Why: Keep read/write behavior consistent between embed-shader and shaderpack.
package fileops

import (
	"encoding/binary"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"

	"github.com/moby/sys/atomicwriter"
	"github.com/zeebo/xxh3"
)

func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// ReadFile reads the whole file. The handle is closed before it returns.
func ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFileAtomic writes data to a temporary file next to path and renames it
// into place, so readers never observe a partially written include.
// The parent directory must already exist.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	return atomicwriter.WriteFile(path, data, perm)
}

// WriteFileAtomicMkdir is WriteFileAtomic that creates missing parent directories.
func WriteFileAtomicMkdir(path string, data []byte, perm os.FileMode) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return WriteFileAtomic(path, data, perm)
}

// Digest returns the hex xxh3-64 digest of data.
func Digest(data []byte) string {
	return hex.EncodeToString(binary.BigEndian.AppendUint64(nil, xxh3.Hash(data)))
}

// FileDigest streams the file through xxh3 and returns the hex digest.
func FileDigest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := xxh3.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// SameContent reports whether path is a regular file holding exactly data.
func SameContent(path string, data []byte) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if info.IsDir() || info.Size() != int64(len(data)) {
		return false, nil
	}
	existing, err := FileDigest(path)
	if err != nil {
		return false, err
	}
	return existing == Digest(data), nil
}

func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
