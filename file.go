package jdoc

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/signadot/jdoc/encode"
	"github.com/signadot/jdoc/ir"
	"github.com/signadot/jdoc/parse"
)

// Load parses the document in the file at path.
func Load(path string, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.ParseFile(path, opts...)
}

// Save encodes node and writes it to the file at path, holding the file's
// lock for the duration of the write. The document is written to a
// temporary file in the same directory which then replaces path, so a
// failed Save leaves the previous contents in place.
//
// An existing file keeps its permission bits, and when path is a symbolic
// link the file it points to is replaced, not the link. New files are
// created with mode 0644.
func Save(path string, node *ir.Node, opts ...encode.EncodeOption) error {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, opts...); err != nil {
		return err
	}
	unlock := parse.LockFile(path)
	defer unlock()
	target, mode, err := saveTarget(path)
	if err != nil {
		return fmt.Errorf("could not save %s: %w", path, err)
	}
	f, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*")
	if err != nil {
		return fmt.Errorf("could not save %s: %w", path, err)
	}
	tmp := f.Name()
	if err := f.Chmod(mode); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("could not save %s: %w", path, err)
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("could not write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("could not write %s: %w", path, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("could not save %s: %w", path, err)
	}
	return nil
}

// saveTarget returns the file Save should replace, following symbolic
// links, and the permission bits the new contents get.
func saveTarget(path string) (string, fs.FileMode, error) {
	target, err := filepath.EvalSymlinks(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return path, 0o644, nil
	case err != nil:
		return "", 0, err
	}
	st, err := os.Stat(target)
	if err != nil {
		return "", 0, err
	}
	if !st.Mode().IsRegular() {
		return "", 0, fmt.Errorf("%w: %s is not a regular file", ir.ErrParam, target)
	}
	return target, st.Mode().Perm(), nil
}
