package mirror

import (
	"crypto/sha256"
	"encoding/hex"
	"io"

	"github.com/go-git/go-billy/v5"
)

// fileDigest returns the hex-encoded sha256 digest of a file's contents
func fileDigest(fsys billy.Filesystem, name string) (string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return "", WrapIOError(err, name)
	}
	defer func() {
		_ = f.Close() // Ignore close errors on read-only handle
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", WrapIOError(err, name)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
