package observe

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/yarrumevets/helloai/compress"
	"github.com/yarrumevets/helloai/format"
)

// ErrTraceClosed is returned when a closed TraceWriter is closed again.
var ErrTraceClosed = errors.New("trace writer already closed")

// TraceHeader is the first line of every trace.
type TraceHeader struct {
	RunID       string `json:"run_id"`
	Model       string `json:"model"`
	Fingerprint string `json:"fingerprint"`
}

// TraceWriter is a Sink that collects records as JSON lines and writes them as
// a single compressed payload when closed.
//
// Layout on disk: one byte holding the format.CompressionType, followed by the
// compressed payload. The payload is the header line followed by one line per
// record. Emit never fails; the first encoding error is kept and reported by
// Err and Close, and later records are dropped.
type TraceWriter struct {
	w     io.Writer
	ct    format.CompressionType
	buf   bytes.Buffer
	enc   *json.Encoder
	err   error
	done  bool
	stats compress.CompressionStats
}

var _ Sink = (*TraceWriter)(nil)

// NewTraceWriter creates a trace writer that will write to w on Close.
//
// Parameters:
//   - w: Destination of the finished trace
//   - header: Run metadata written as the first line
//   - ct: Compression applied to the payload
//
// Returns:
//   - *TraceWriter: Writer ready to receive records
//   - error: Unknown compression type or header encoding failure
func NewTraceWriter(w io.Writer, header TraceHeader, ct format.CompressionType) (*TraceWriter, error) {
	if _, err := compress.CreateCodec(ct, "trace"); err != nil {
		return nil, err
	}

	t := &TraceWriter{w: w, ct: ct}
	t.enc = json.NewEncoder(&t.buf)
	if err := t.enc.Encode(header); err != nil {
		return nil, fmt.Errorf("encode trace header: %w", err)
	}

	return t, nil
}

// Emit appends r to the trace.
func (t *TraceWriter) Emit(r Record) {
	if t.err != nil || t.done {
		return
	}
	if err := t.enc.Encode(r); err != nil {
		t.err = fmt.Errorf("encode %s record: %w", r.Kind, err)
	}
}

// Err returns the first error seen by Emit.
func (t *TraceWriter) Err() error {
	return t.err
}

// Close compresses the buffered payload and writes it to the destination.
func (t *TraceWriter) Close() error {
	if t.done {
		return ErrTraceClosed
	}
	t.done = true
	if t.err != nil {
		return t.err
	}

	payload := t.buf.Bytes()
	packed, stats, err := compress.Pack(t.ct, payload)
	if err != nil {
		return fmt.Errorf("compress trace: %w", err)
	}
	t.stats = stats

	if _, err := t.w.Write([]byte{byte(t.ct)}); err != nil {
		return fmt.Errorf("write trace: %w", err)
	}
	if _, err := t.w.Write(packed); err != nil {
		return fmt.Errorf("write trace: %w", err)
	}

	return nil
}

// Stats reports the payload sizes of the last successful Close.
func (t *TraceWriter) Stats() compress.CompressionStats {
	return t.stats
}

// ReadTrace decodes a trace written by TraceWriter.
func ReadTrace(r io.Reader) (TraceHeader, []Record, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return TraceHeader{}, nil, fmt.Errorf("read trace: %w", err)
	}
	if len(raw) == 0 {
		return TraceHeader{}, nil, errors.New("empty trace")
	}

	codec, err := compress.GetCodec(format.CompressionType(raw[0]))
	if err != nil {
		return TraceHeader{}, nil, err
	}
	payload, err := codec.Decompress(raw[1:])
	if err != nil {
		return TraceHeader{}, nil, err
	}

	scanner := bufio.NewScanner(bytes.NewReader(payload))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var header TraceHeader
	if !scanner.Scan() {
		return TraceHeader{}, nil, errors.New("trace has no header")
	}
	if err := json.Unmarshal(scanner.Bytes(), &header); err != nil {
		return TraceHeader{}, nil, fmt.Errorf("decode trace header: %w", err)
	}

	var records []Record
	for line := 2; scanner.Scan(); line++ {
		var rec Record
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			return header, records, fmt.Errorf("decode trace line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return header, records, fmt.Errorf("scan trace: %w", err)
	}

	return header, records, nil
}
