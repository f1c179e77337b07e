// Package keyfile persists security-key private keys as files an SSH
// client can use as identities.
package keyfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/skssh/skssh/internal/errors"
	"github.com/skssh/skssh/internal/logger"
	"github.com/skssh/skssh/internal/oslogin"
)

// FilePrefix is the base name for written key files; the zero-based list
// index is appended, so key N lands in "google_sk_N".
const FilePrefix = "google_sk_"

// Writer writes key files into a target directory.
type Writer struct {
	log logger.Logger
}

// NewWriter creates a Writer.
func NewWriter(log logger.Logger) *Writer {
	if log == nil {
		log = logger.NewEnvLogger("[keyfile]")
	}
	return &Writer{log: log}
}

// WriteAll writes each key's private key string to <dir>/google_sk_<index>
// with mode 0600, in list order, and returns the created paths in the same
// order.
//
// The directory must already exist; it is not created. Existing files with
// the same names are overwritten, which keeps the output location
// deterministic across runs. If a write fails mid-loop, files written
// before the failure are left in place.
func (w *Writer) WriteAll(keys []oslogin.SecurityKey, dir string) ([]string, error) {
	if info, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrFilesystem,
				fmt.Sprintf("Key directory does not exist: %s", dir),
				"Create it first, e.g. mkdir -m 700 "+dir)
		}
		return nil, errors.WrapWithCode(err, errors.ErrFilesystem,
			fmt.Sprintf("Cannot access key directory: %s", dir),
			"Check directory permissions")
	} else if !info.IsDir() {
		return nil, errors.New(errors.ErrFilesystem,
			fmt.Sprintf("Key path is not a directory: %s", dir),
			"Point --directory at a directory, not a file")
	}

	paths := make([]string, 0, len(keys))
	for i, key := range keys {
		path := filepath.Join(dir, fmt.Sprintf("%s%d", FilePrefix, i))
		if err := writeKey(path, key.PrivateKey); err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrFilesystem,
				fmt.Sprintf("Failed to write key file: %s", path),
				"Check directory permissions and free space")
		}
		w.log.Debug("wrote %s (%d bytes)", path, len(key.PrivateKey))
		paths = append(paths, path)
	}

	return paths, nil
}

// writeKey writes the key material and tightens permissions to owner
// read/write. The chmod runs even when the file already existed with
// looser bits.
func writeKey(path, privateKey string) error {
	if err := os.WriteFile(path, []byte(privateKey), 0o600); err != nil {
		return err
	}
	return os.Chmod(path, 0o600)
}
