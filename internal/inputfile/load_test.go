package inputfile

import (
	"os"
	"path/filepath"
	"testing"
)

func write(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	name := filepath.Join(dir, "keys.txt")
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return name
}

func TestLoadWhitespaceAndComments(t *testing.T) {
	name := write(t, "10 20\n# a comment\n30\n\n40 # trailing comment\n")
	keys, err := Load(name)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []int32{10, 20, 30, 40}
	if len(keys) != len(want) {
		t.Fatalf("got %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("got %v, want %v", keys, want)
		}
	}
}

func TestLoadRejectsNonInteger(t *testing.T) {
	name := write(t, "10 abc 20\n")
	if _, err := Load(name); err == nil {
		t.Fatal("expected an error for a non-integer token")
	}
}

func TestLoadRejectsOverflow(t *testing.T) {
	name := write(t, "2147483648\n") // math.MaxInt32 + 1
	if _, err := Load(name); err == nil {
		t.Fatal("expected an error for an out-of-range token")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "does-not-exist.txt")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	name := write(t, "")
	keys, err := Load(name)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(keys) != 0 {
		t.Fatalf("got %v, want empty", keys)
	}
}
