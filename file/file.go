// Package file loads and saves a document's text buffer on disk.
package file

import (
	"io/fs"
	"os"

	"github.com/google/renameio/v2"
	"github.com/pkg/errors"

	"github.com/aretext/parsedoc/text"
)

const defaultPermForNewFile fs.FileMode = 0o644

// Load reads the file at path into a new text buffer.
func Load(path string) (*text.Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "file: read %q", path)
	}
	return text.NewBufferFromString(string(data)), nil
}

// Save writes buf's contents to path, replacing the existing file
// atomically so a crash mid-write cannot leave a truncated file behind.
func Save(path string, buf *text.Buffer) error {
	pf, err := renameio.NewPendingFile(path,
		renameio.WithPermissions(defaultPermForNewFile),
		renameio.WithExistingPermissions())
	if err != nil {
		return errors.Wrapf(err, "file: open pending file for %q", path)
	}
	defer pf.Cleanup()

	if _, err := pf.WriteString(buf.String()); err != nil {
		return errors.Wrapf(err, "file: write %q", path)
	}
	if err := pf.CloseAtomicallyReplace(); err != nil {
		return errors.Wrapf(err, "file: replace %q", path)
	}
	return nil
}
