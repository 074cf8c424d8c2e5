package observe

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Kind classifies a Record.
type Kind uint8

const (
	// KindProgress is emitted per sample on logged epochs.
	KindProgress Kind = iota + 1
	// KindEpoch carries the epoch's mean squared error.
	KindEpoch
	// KindPrediction is emitted on every inference call.
	KindPrediction
)

var kindNames = map[Kind]string{
	KindProgress:   "progress",
	KindEpoch:      "epoch",
	KindPrediction: "prediction",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "unknown"
}

func parseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}

	return 0, fmt.Errorf("unknown record kind %q", name)
}

// Field is one named numeric value of a Record.
type Field struct {
	Key   string
	Value float64
}

// F is shorthand for constructing a Field.
func F(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

// Record is a structured telemetry entry. Epoch is meaningless for
// KindPrediction records and is left at zero.
type Record struct {
	Kind   Kind
	Epoch  int
	Fields []Field
}

// Value returns the value of the first field named key.
func (r Record) Value(key string) (float64, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}

	return 0, false
}

// MarshalJSON encodes the field as a two-element array. Non-finite values,
// which a diverging run produces, are written as strings because JSON numbers
// cannot represent them.
func (f Field) MarshalJSON() ([]byte, error) {
	if math.IsNaN(f.Value) || math.IsInf(f.Value, 0) {
		return json.Marshal([]any{f.Key, strconv.FormatFloat(f.Value, 'g', -1, 64)})
	}

	return json.Marshal([]any{f.Key, f.Value})
}

// UnmarshalJSON reverses MarshalJSON.
func (f *Field) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("field must have 2 elements, got %d", len(pair))
	}
	if err := json.Unmarshal(pair[0], &f.Key); err != nil {
		return fmt.Errorf("field key: %w", err)
	}
	if err := json.Unmarshal(pair[1], &f.Value); err == nil {
		return nil
	}

	var s string
	if err := json.Unmarshal(pair[1], &s); err != nil {
		return fmt.Errorf("field %s value: %w", f.Key, err)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("field %s value: %w", f.Key, err)
	}
	f.Value = v

	return nil
}

type recordJSON struct {
	Kind   string  `json:"kind"`
	Epoch  *int    `json:"epoch,omitempty"`
	Fields []Field `json:"fields"`
}

// MarshalJSON encodes the record as a single JSON object.
func (r Record) MarshalJSON() ([]byte, error) {
	out := recordJSON{Kind: r.Kind.String(), Fields: r.Fields}
	if r.Kind != KindPrediction {
		epoch := r.Epoch
		out.Epoch = &epoch
	}

	return json.Marshal(out)
}

// UnmarshalJSON reverses MarshalJSON.
func (r *Record) UnmarshalJSON(data []byte) error {
	var in recordJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	kind, err := parseKind(in.Kind)
	if err != nil {
		return err
	}
	*r = Record{Kind: kind, Fields: in.Fields}
	if in.Epoch != nil {
		r.Epoch = *in.Epoch
	}

	return nil
}
