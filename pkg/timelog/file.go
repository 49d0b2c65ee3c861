package timelog

import (
	"errors"
	"os"
)

// appendLine opens path for appending, creating it if needed, writes line,
// and closes the file again. No handle outlives the call.
func appendLine(path string, perm os.FileMode, line string) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, perm)
	if err != nil {
		return &FileError{Op: OpAppend, Path: path, Err: err}
	}
	defer closeInto(f, OpAppend, &err)

	if _, err := f.WriteString(line); err != nil {
		return &FileError{Op: OpAppend, Path: path, Err: err}
	}
	return nil
}

// truncateFile empties path, creating it if needed.
func truncateFile(path string, perm os.FileMode) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return &FileError{Op: OpTruncate, Path: path, Err: err}
	}
	defer closeInto(f, OpTruncate, &err)
	return nil
}

// closeInto closes f and folds a close failure into *errp.
func closeInto(f *os.File, op string, errp *error) {
	cerr := f.Close()
	if cerr == nil {
		return
	}
	var fe *FileError
	if errors.As(*errp, &fe) {
		fe.Err = errors.Join(fe.Err, cerr)
		return
	}
	*errp = &FileError{Op: op, Path: f.Name(), Err: cerr}
}
