package jdoc

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/signadot/jdoc/encode"
	"github.com/signadot/jdoc/ir"
	"github.com/signadot/jdoc/parse"
)

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	root, err := AssignString(nil, "s", "\U0001F600")
	if err != nil {
		t.Fatal(err)
	}
	root = root.Root()
	if _, err := AssignInt64(root, "list[2]", 7); err != nil {
		t.Fatal(err)
	}
	if err := Save(path, root, encode.EncodeEscaped(true)); err != nil {
		t.Fatal(err)
	}
	d, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"s\": \"\\ud83d\\ude00\",\n  \"list\": [\n    null,\n    null,\n    7\n  ]\n}\n"
	if string(d) != want {
		t.Errorf("saved %q, want %q", d, want)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(root, back) {
		t.Errorf("round trip: %s", wire(back))
	}
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("left %d files behind", len(entries)-1)
	}
}

func TestSaveKeepsMode(t *testing.T) {
	dir := t.TempDir()
	for _, mode := range []fs.FileMode{0o644, 0o640, 0o600} {
		path := filepath.Join(dir, "doc.json")
		if err := os.WriteFile(path, []byte("{}\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		if err := os.Chmod(path, mode); err != nil {
			t.Fatal(err)
		}
		if err := Save(path, ir.FromString("x")); err != nil {
			t.Fatal(err)
		}
		st, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if st.Mode().Perm() != mode {
			t.Errorf("mode %v after save, want %v", st.Mode().Perm(), mode)
		}
	}
	fresh := filepath.Join(dir, "new.json")
	if err := Save(fresh, ir.Null()); err != nil {
		t.Fatal(err)
	}
	if st, err := os.Stat(fresh); err != nil || st.Mode().Perm() != 0o644 {
		t.Errorf("new file: %v %v", st, err)
	}
}

func TestSaveSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real.json")
	link := filepath.Join(dir, "link.json")
	if err := os.WriteFile(target, []byte("{}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	if err := Save(link, ir.FromInt(3)); err != nil {
		t.Fatal(err)
	}
	st, err := os.Lstat(link)
	if err != nil {
		t.Fatal(err)
	}
	if st.Mode()&fs.ModeSymlink == 0 {
		t.Errorf("link replaced by %v", st.Mode())
	}
	d, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "3\n" {
		t.Errorf("target holds %q", d)
	}
}

func TestSaveWaitsForLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	unlock := parse.LockFile(path)
	done := make(chan error, 1)
	go func() {
		done <- Save(path, ir.FromBool(true))
	}()
	select {
	case err := <-done:
		unlock()
		t.Fatalf("Save finished while the file was locked: %v", err)
	case <-time.After(50 * time.Millisecond):
	}
	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("file written while locked: %v", err)
	}
	unlock()
	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Save still blocked after unlock")
	}
	y, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if b, _ := y.GetBool(""); !b {
		t.Errorf("loaded %s", wire(y))
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("got %v", err)
	}
}

func TestSaveNil(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := Save(path, nil); !errors.Is(err, ir.ErrParam) {
		t.Errorf("got %v", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("file created: %v", err)
	}
}
