package emit

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/teranos/r2gen/errors"
)

const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644
)

// Writer persists documents. Each write is all-or-nothing: content goes to a
// temporary file in the target directory which is then renamed over the
// destination, so readers never observe a half-written file.
type Writer struct {
	Fs afero.Fs
}

// NewWriter creates a Writer over fs. A nil fs means the OS filesystem.
func NewWriter(fs afero.Fs) *Writer {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Writer{Fs: fs}
}

// Write stores doc below dir, creating package directories as needed, and
// returns the written path. Failures are marked with errors.ErrOutputPath.
func (w *Writer) Write(doc *Document, dir string) (string, error) {
	target := doc.Path(dir)
	parent := filepath.Dir(target)

	if err := w.Fs.MkdirAll(parent, dirPerm); err != nil {
		return "", outputErr(err, "failed to create directory %s", parent)
	}

	tmp, err := afero.TempFile(w.Fs, parent, "."+doc.FileName()+".*.tmp")
	if err != nil {
		return "", outputErr(err, "failed to create temporary file in %s", parent)
	}
	tmpName := tmp.Name()

	_, writeErr := tmp.Write(doc.Content)
	closeErr := tmp.Close()
	if writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		w.Fs.Remove(tmpName)
		return "", outputErr(writeErr, "failed to write %s", target)
	}

	if err := w.Fs.Chmod(tmpName, filePerm); err != nil {
		w.Fs.Remove(tmpName)
		return "", outputErr(err, "failed to set permissions on %s", target)
	}

	if err := w.Fs.Rename(tmpName, target); err != nil {
		w.Fs.Remove(tmpName)
		return "", outputErr(err, "failed to move generated file into %s", target)
	}

	return target, nil
}

func outputErr(err error, format string, args ...interface{}) error {
	return errors.Wrapf(errors.Mark(err, errors.ErrOutputPath), format, args...)
}
