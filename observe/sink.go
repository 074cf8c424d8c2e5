package observe

// Sink receives records in emission order.
type Sink interface {
	Emit(r Record)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(r Record)

// Emit calls f(r).
func (f SinkFunc) Emit(r Record) { f(r) }

type discard struct{}

func (discard) Emit(Record) {}

// Discard is a Sink that drops every record.
var Discard Sink = discard{}

// Multi fans every record out to each sink in order.
type Multi []Sink

// Emit forwards r to every non-nil sink.
func (m Multi) Emit(r Record) {
	for _, s := range m {
		if s != nil {
			s.Emit(r)
		}
	}
}

// Recorder keeps every record it receives. It is not safe for concurrent use.
type Recorder struct {
	records []Record
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Emit appends a copy of r.
func (rec *Recorder) Emit(r Record) {
	r.Fields = append([]Field(nil), r.Fields...)
	rec.records = append(rec.records, r)
}

// Records returns every recorded entry in emission order.
func (rec *Recorder) Records() []Record {
	return rec.records
}

// Kind returns the recorded entries of the given kind, in emission order.
func (rec *Recorder) Kind(kind Kind) []Record {
	var out []Record
	for _, r := range rec.records {
		if r.Kind == kind {
			out = append(out, r)
		}
	}

	return out
}

// Len returns the number of recorded entries.
func (rec *Recorder) Len() int {
	return len(rec.records)
}

// Reset drops all recorded entries. Slices returned earlier by Records or
// Kind keep their contents.
func (rec *Recorder) Reset() {
	rec.records = nil
}
