package tabtok

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenMappedFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	want := "a,b,c\n1,2,3\n"
	if err := os.WriteFile(path, []byte(want), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	mf, err := OpenMappedFile(path)
	if err != nil {
		t.Fatalf("OpenMappedFile() error = %v", err)
	}
	defer func() {
		if err := mf.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}
	}()

	if string(mf.Data) != want {
		t.Fatalf("mapped data = %q, want %q", string(mf.Data), want)
	}

	tok := NewTokenizer(defaultConfig())
	tok.SetSource(mf.Data)
	if err := tok.Tokenize(-1, false, 3); err != nil {
		t.Fatalf("Tokenize() over mapped data error = %v", err)
	}
	if tok.NumRows() != 2 {
		t.Fatalf("NumRows() = %d, want 2", tok.NumRows())
	}
}

func TestOpenMappedFileEmpty(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "empty.csv")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	mf, err := OpenMappedFile(path)
	if err != nil {
		t.Fatalf("OpenMappedFile() error = %v", err)
	}
	defer func() {
		if err := mf.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}
	}()

	if len(mf.Data) != 0 {
		t.Fatalf("mapped data length = %d, want 0", len(mf.Data))
	}
}

func TestOpenMappedFileMissing(t *testing.T) {
	t.Parallel()

	if _, err := OpenMappedFile(filepath.Join(t.TempDir(), "does-not-exist.csv")); err == nil {
		t.Fatalf("OpenMappedFile() expected error for missing file")
	}
}
