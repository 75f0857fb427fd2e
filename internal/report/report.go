// Package report writes benchmark results as CSV rows in the exact
// column order the benchmark CLI's external contract specifies.
package report

import (
	"encoding/csv"
	"io"
	"strconv"
)

// Columns is the fixed CSV header row every report writes.
var Columns = []string{
	"tag", "impl", "M",
	"n_insert", "n_search", "n_delete",
	"round",
	"insert_ns", "search_ns", "delete_ns",
	"found_count", "height_after_insert",
}

// Row is one round's measurements for one (tag, impl, M) combination.
type Row struct {
	Tag     string
	Impl    string
	M       int
	NInsert int
	NSearch int
	NDelete int
	Round   int

	InsertNs int64
	SearchNs int64
	DeleteNs int64

	FoundCount        int
	HeightAfterInsert int
}

// Writer emits Rows as CSV, writing the header exactly once.
type Writer struct {
	csv         *csv.Writer
	wroteHeader bool
}

// New wraps w in a Writer. Callers must call Flush when done.
func New(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// Write appends r as a CSV record, writing the header first if this is
// the writer's first call.
func (w *Writer) Write(r Row) error {
	if !w.wroteHeader {
		if err := w.csv.Write(Columns); err != nil {
			return err
		}
		w.wroteHeader = true
	}
	return w.csv.Write([]string{
		r.Tag,
		r.Impl,
		strconv.Itoa(r.M),
		strconv.Itoa(r.NInsert),
		strconv.Itoa(r.NSearch),
		strconv.Itoa(r.NDelete),
		strconv.Itoa(r.Round),
		strconv.FormatInt(r.InsertNs, 10),
		strconv.FormatInt(r.SearchNs, 10),
		strconv.FormatInt(r.DeleteNs, 10),
		strconv.Itoa(r.FoundCount),
		strconv.Itoa(r.HeightAfterInsert),
	})
}

// Flush flushes any buffered CSV output and returns the first write
// error encountered, if any.
func (w *Writer) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}
