package dtx

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/32bitkid/dtx/resource"
)

func writeTestFile(t *testing.T, b []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.dtx")
	if err := os.WriteFile(path, b, 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	return path
}

func TestFileHeader(t *testing.T) {
	b := make([]byte, resource.HeaderSize+64)
	binary.LittleEndian.PutUint16(b[4:], 64)
	binary.LittleEndian.PutUint16(b[6:], 32)
	binary.LittleEndian.PutUint32(b[8:], uint32(0xFFFFFFFB))

	f := NewFile(writeTestFile(t, b))
	h, err := f.Header()
	if err != nil {
		t.Fatal(err)
	}
	if h.BaseWidth != 64 || h.BaseHeight != 32 || !h.IsCurrentVersion() {
		t.Fatalf("unexpected header %v", h)
	}

	// cached; the file is no longer needed
	if err := os.Remove(f.Path); err != nil {
		t.Fatal(err)
	}
	again, err := f.Header()
	if err != nil {
		t.Fatal(err)
	}
	if again != h {
		t.Fatal("expected cached header")
	}
}

func TestFileHeaderOffset(t *testing.T) {
	b := make([]byte, 16+resource.HeaderSize)
	binary.LittleEndian.PutUint32(b[16:], 7)

	f := NewFile(writeTestFile(t, b))
	f.Offset = 16
	h, err := f.Header()
	if err != nil {
		t.Fatal(err)
	}
	if h.ResourceType != 7 {
		t.Fatalf("ResourceType: expected(7) != actual(%d)", h.ResourceType)
	}
}

func TestFileHeaderErrors(t *testing.T) {
	missing := NewFile(filepath.Join(t.TempDir(), "missing.dtx"))
	_, err := missing.Header()
	var pathErr *os.PathError
	if !errors.As(err, &pathErr) {
		t.Fatalf("expected *os.PathError, got %v", err)
	}
	if errors.Is(err, resource.ErrShortRead) || errors.Is(err, resource.ErrIO) {
		t.Fatal("open failure must be distinct from decode failures")
	}

	truncated := NewFile(writeTestFile(t, make([]byte, 20)))
	if _, err := truncated.Header(); !errors.Is(err, resource.ErrShortRead) {
		t.Fatalf("expected short read, got %v", err)
	}
}
