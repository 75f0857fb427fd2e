package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gophertree/obtree/internal/inputfile"
)

func writeKeys(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "keys.txt")
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return name
}

func TestParseFlagsRequiresCoreFlags(t *testing.T) {
	_, err := parseFlags([]string{}, os.Stderr)
	if err == nil {
		t.Fatal("expected an error when no flags are given")
	}
}

func TestParseFlagsDefaults(t *testing.T) {
	insert := writeKeys(t, "1 2 3\n")
	cfg, err := parseFlags([]string{
		"--m", "4", "--impl", "array",
		"--insert", insert, "--search", insert, "--delete", insert,
	}, os.Stderr)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.rounds != 3 {
		t.Fatalf("rounds default = %d, want 3", cfg.rounds)
	}
	if cfg.seed != 1 {
		t.Fatalf("seed default = %d, want 1", cfg.seed)
	}
}

func TestParseBackendRejectsUnknown(t *testing.T) {
	if _, err := parseBackend("btree"); err == nil {
		t.Fatal("expected an error for an unknown --impl value")
	}
}

func TestRunRoundProducesConsistentRow(t *testing.T) {
	insertKeys, err := inputfile.Load(writeKeys(t, "1 2 3 4 5 6 7 8 9 10\n"))
	if err != nil {
		t.Fatalf("inputfile.Load(insert): %v", err)
	}
	searchKeys, err := inputfile.Load(writeKeys(t, "1 5 11\n"))
	if err != nil {
		t.Fatalf("inputfile.Load(search): %v", err)
	}
	deleteKeys, err := inputfile.Load(writeKeys(t, "2 4\n"))
	if err != nil {
		t.Fatalf("inputfile.Load(delete): %v", err)
	}

	backend, err := parseBackend("array")
	if err != nil {
		t.Fatalf("parseBackend: %v", err)
	}
	cfg := config{m: 4, impl: "array", check: true, seed: 1}
	row, err := runRound(cfg, backend, insertKeys, searchKeys, deleteKeys, 1)
	if err != nil {
		t.Fatalf("runRound: %v", err)
	}
	if row.NInsert != 10 || row.NSearch != 3 || row.NDelete != 2 {
		t.Fatalf("row counts = %+v, want 10/3/2", row)
	}
	if row.FoundCount != 2 {
		t.Fatalf("FoundCount = %d, want 2 (keys 1 and 5 present, 11 absent)", row.FoundCount)
	}
	if row.HeightAfterInsert < 1 {
		t.Fatalf("HeightAfterInsert = %d, want >= 1", row.HeightAfterInsert)
	}
}

func TestRunRoundIsDeterministicForAFixedSeed(t *testing.T) {
	insertKeys, err := inputfile.Load(writeKeys(t, "1 2 3 4 5 6 7 8 9 10\n"))
	if err != nil {
		t.Fatalf("inputfile.Load: %v", err)
	}
	backend, _ := parseBackend("array")
	cfg := config{m: 4, impl: "array", check: true, seed: 42}
	r1, err := runRound(cfg, backend, insertKeys, insertKeys, nil, 1)
	if err != nil {
		t.Fatalf("runRound: %v", err)
	}
	r2, err := runRound(cfg, backend, insertKeys, insertKeys, nil, 1)
	if err != nil {
		t.Fatalf("runRound: %v", err)
	}
	if r1.HeightAfterInsert != r2.HeightAfterInsert || r1.FoundCount != r2.FoundCount {
		t.Fatalf("same seed and round produced different results: %+v vs %+v", r1, r2)
	}
}
