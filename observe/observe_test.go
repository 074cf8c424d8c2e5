package observe

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yarrumevets/helloai/format"
)

func progress(epoch int, x float64) Record {
	return Record{Kind: KindProgress, Epoch: epoch, Fields: []Field{
		F("prediction", 0.5), F("x", x), F("a", 0.1), F("b", 0.2), F("c", 0.3), F("error", -0.5),
	}}
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "progress", KindProgress.String())
	require.Equal(t, "epoch", KindEpoch.String())
	require.Equal(t, "prediction", KindPrediction.String())
	require.Equal(t, "unknown", Kind(0).String())
}

func TestRecord_Value(t *testing.T) {
	r := progress(3, 7)
	v, ok := r.Value("x")
	require.True(t, ok)
	require.Equal(t, 7.0, v)

	_, ok = r.Value("mse")
	require.False(t, ok)
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder()
	fields := []Field{F("x", 1)}
	rec.Emit(Record{Kind: KindPrediction, Fields: fields})
	rec.Emit(Record{Kind: KindEpoch, Epoch: 2, Fields: []Field{F("mse", 0.5)}})
	rec.Emit(Record{Kind: KindPrediction, Fields: []Field{F("x", 2)}})

	fields[0].Value = 99 // the recorder keeps its own copy

	require.Equal(t, 3, rec.Len())
	preds := rec.Kind(KindPrediction)
	require.Len(t, preds, 2)
	require.Equal(t, 1.0, preds[0].Fields[0].Value)
	require.Equal(t, 2.0, preds[1].Fields[0].Value)

	rec.Reset()
	require.Zero(t, rec.Len())
}

func TestRecorder_ResetKeepsEarlierSnapshots(t *testing.T) {
	rec := NewRecorder()
	rec.Emit(progress(0, 1))
	rec.Emit(progress(0, 2))
	before := rec.Records()

	rec.Reset()
	rec.Emit(Record{Kind: KindPrediction, Fields: []Field{F("x", 42)}})

	require.Len(t, before, 2)
	require.Equal(t, KindProgress, before[0].Kind)
	x, ok := before[0].Value("x")
	require.True(t, ok)
	require.Equal(t, 1.0, x)
	require.Equal(t, 1, rec.Len())
}

func TestMulti(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	var calls int
	m := Multi{a, nil, b, SinkFunc(func(Record) { calls++ })}
	m.Emit(progress(0, 1))

	require.Equal(t, 1, a.Len())
	require.Equal(t, 1, b.Len())
	require.Equal(t, 1, calls)
	Discard.Emit(progress(0, 1))
}

func TestSlogSink_DefaultTextHandlerLogsEveryEpoch(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSlogSink(slog.New(slog.NewTextHandler(&buf, nil)))

	for epoch := range 3 {
		sink.Emit(Record{Kind: KindEpoch, Epoch: epoch, Fields: []Field{F("mse", 0.5)}})
	}

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	require.Contains(t, string(lines[2]), "msg=epoch epoch=2 mse=0.5")
}

func TestSlogSink(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	sink := NewSlogSink(logger)

	sink.Emit(Record{Kind: KindEpoch, Epoch: 1000, Fields: []Field{F("mse", 0.25)}})
	sink.Emit(Record{Kind: KindPrediction, Fields: []Field{F("x", 11), F("y", 121)}})

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var epoch map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &epoch))
	require.Equal(t, "epoch", epoch["msg"])
	require.Equal(t, 1000.0, epoch["epoch"])
	require.Equal(t, 0.25, epoch["mse"])

	var pred map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &pred))
	require.Equal(t, "prediction", pred["msg"])
	require.NotContains(t, pred, "epoch")
	require.Equal(t, 121.0, pred["y"])
}

func TestSlogSink_LevelFiltered(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	NewSlogSink(logger).Emit(progress(0, 1))
	require.Zero(t, buf.Len())

	NewSlogSink(logger).WithLevel(slog.LevelWarn).Emit(progress(0, 1))
	require.Contains(t, buf.String(), "msg=progress")
}

func TestRecord_JSONNonFinite(t *testing.T) {
	in := Record{Kind: KindEpoch, Epoch: 5, Fields: []Field{
		F("mse", math.Inf(1)), F("a", math.NaN()), F("b", math.Inf(-1)), F("c", 1.5),
	}}
	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out Record
	require.NoError(t, json.Unmarshal(data, &out))
	require.Equal(t, KindEpoch, out.Kind)
	require.Equal(t, 5, out.Epoch)
	require.True(t, math.IsInf(out.Fields[0].Value, 1))
	require.True(t, math.IsNaN(out.Fields[1].Value))
	require.True(t, math.IsInf(out.Fields[2].Value, -1))
	require.Equal(t, 1.5, out.Fields[3].Value)
}

func TestRecord_UnmarshalUnknownKind(t *testing.T) {
	var r Record
	require.Error(t, json.Unmarshal([]byte(`{"kind":"bogus","fields":[]}`), &r))
}

func TestTraceWriter_RoundTrip(t *testing.T) {
	header := TraceHeader{RunID: "run-1", Model: "quadratic", Fingerprint: "00ff"}

	for _, ct := range []format.CompressionType{format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		t.Run(ct.String(), func(t *testing.T) {
			var out bytes.Buffer
			tw, err := NewTraceWriter(&out, header, ct)
			require.NoError(t, err)

			var want []Record
			for epoch := 0; epoch < 5000; epoch += 1000 {
				for x := range 11 {
					r := progress(epoch, float64(x))
					tw.Emit(r)
					want = append(want, r)
				}
				r := Record{Kind: KindEpoch, Epoch: epoch, Fields: []Field{F("mse", 1/float64(epoch+1))}}
				tw.Emit(r)
				want = append(want, r)
			}
			pred := Record{Kind: KindPrediction, Fields: []Field{F("x", 11), F("y", 121.5)}}
			tw.Emit(pred)
			want = append(want, pred)

			require.NoError(t, tw.Close())
			require.NoError(t, tw.Err())
			require.Equal(t, byte(ct), out.Bytes()[0])
			require.Equal(t, ct, tw.Stats().Algorithm)
			require.Positive(t, tw.Stats().OriginalSize)

			gotHeader, got, err := ReadTrace(&out)
			require.NoError(t, err)
			require.Equal(t, header, gotHeader)
			require.Equal(t, want, got)
		})
	}
}

func TestTraceWriter_CloseTwice(t *testing.T) {
	var out bytes.Buffer
	tw, err := NewTraceWriter(&out, TraceHeader{}, format.CompressionNone)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.ErrorIs(t, tw.Close(), ErrTraceClosed)

	size := out.Len()
	tw.Emit(progress(0, 1))
	require.Equal(t, size, out.Len())
}

func TestTraceWriter_InvalidCompression(t *testing.T) {
	_, err := NewTraceWriter(&bytes.Buffer{}, TraceHeader{}, format.CompressionType(0x42))
	require.Error(t, err)
}

func TestReadTrace_Errors(t *testing.T) {
	_, _, err := ReadTrace(bytes.NewReader(nil))
	require.Error(t, err)

	_, _, err = ReadTrace(bytes.NewReader([]byte{0x42, 'x'}))
	require.Error(t, err)

	_, _, err = ReadTrace(bytes.NewReader([]byte{byte(format.CompressionNone)}))
	require.ErrorContains(t, err, "no header")
}
