package record

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// SinkError reports an output-target failure with the path and the operation
// that failed attached.
type SinkError struct {
	Path string
	Op   string
	Err  error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("output target %s: %s: %v", e.Path, e.Op, e.Err)
}

func (e *SinkError) Unwrap() error { return e.Err }

// Writer streams rows to a CSV output target. One writer owns the target for
// its whole lifetime; callers must Close on every exit path.
type Writer struct {
	path string
	f    *os.File
	w    *csv.Writer
}

// Create opens the output target for writing, creating parent directories as
// needed, and writes the header row.
func Create(path string) (*Writer, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, &SinkError{Path: path, Op: "create dir", Err: err}
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, &SinkError{Path: path, Op: "create", Err: err}
	}
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return nil, &SinkError{Path: path, Op: "write header", Err: err}
	}
	return &Writer{path: path, f: f, w: w}, nil
}

func (w *Writer) Write(r Row) error {
	if err := w.w.Write(r.Fields()); err != nil {
		return &SinkError{Path: w.path, Op: "write", Err: err}
	}
	return nil
}

// Close flushes buffered rows and releases the target. The first error wins.
func (w *Writer) Close() error {
	w.w.Flush()
	flushErr := w.w.Error()
	closeErr := w.f.Close()
	if flushErr != nil {
		return &SinkError{Path: w.path, Op: "flush", Err: flushErr}
	}
	if closeErr != nil {
		return &SinkError{Path: w.path, Op: "close", Err: closeErr}
	}
	return nil
}

// Reader consumes an output target record-at-a-time.
type Reader struct {
	path string
	f    *os.File
	r    *csv.Reader
}

// Open opens the target for reading and validates the header row.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SinkError{Path: path, Op: "open", Err: err}
	}
	r := csv.NewReader(f)
	r.FieldsPerRecord = FieldCount
	hdr, err := r.Read()
	if err != nil {
		f.Close()
		if errors.Is(err, io.EOF) {
			err = errors.New("no header row")
		}
		return nil, &SinkError{Path: path, Op: "read header", Err: err}
	}
	for i, name := range header {
		if hdr[i] != name {
			f.Close()
			return nil, &SinkError{Path: path, Op: "read header",
				Err: fmt.Errorf("column %d is %q, want %q", i, hdr[i], name)}
		}
	}
	return &Reader{path: path, f: f, r: r}, nil
}

// Read returns the next row. It returns io.EOF (unwrapped) when the stream is
// exhausted so callers can drive a plain read loop.
func (r *Reader) Read() (Row, error) {
	fields, err := r.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Row{}, io.EOF
		}
		return Row{}, &SinkError{Path: r.path, Op: "read", Err: err}
	}
	row, err := ParseRow(fields)
	if err != nil {
		return Row{}, &SinkError{Path: r.path, Op: "parse", Err: err}
	}
	return row, nil
}

// ReadOutcome returns only the designated outcome field of the next row.
// The analyze pass uses this to stay O(1) regardless of row width.
func (r *Reader) ReadOutcome() (float64, error) {
	fields, err := r.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, io.EOF
		}
		return 0, &SinkError{Path: r.path, Op: "read", Err: err}
	}
	v, err := strconv.ParseFloat(fields[OutcomeField], 64)
	if err != nil {
		return 0, &SinkError{Path: r.path, Op: "parse", Err: fmt.Errorf("field final_balance: %w", err)}
	}
	return v, nil
}

func (r *Reader) Close() error {
	if err := r.f.Close(); err != nil {
		return &SinkError{Path: r.path, Op: "close", Err: err}
	}
	return nil
}
