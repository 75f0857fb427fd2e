package report

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriterHeaderAndRow(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)
	row := Row{
		Tag: "smoke", Impl: "array", M: 64,
		NInsert: 1000, NSearch: 1000, NDelete: 1000,
		Round:             1,
		InsertNs:          123456,
		SearchNs:          78910,
		DeleteNs:          22222,
		FoundCount:        1000,
		HeightAfterInsert: 3,
	}
	if err := w.Write(row); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2 (header + row): %q", len(lines), buf.String())
	}
	if lines[0] != strings.Join(Columns, ",") {
		t.Fatalf("header = %q, want %q", lines[0], strings.Join(Columns, ","))
	}
	want := "smoke,array,64,1000,1000,1000,1,123456,78910,22222,1000,3"
	if lines[1] != want {
		t.Fatalf("row = %q, want %q", lines[1], want)
	}
}

func TestWriterHeaderOnlyOnce(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)
	for i := 0; i < 3; i++ {
		if err := w.Write(Row{Tag: "t", Impl: "array", Round: i}); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	w.Flush()
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4 (1 header + 3 rows)", len(lines))
	}
}
