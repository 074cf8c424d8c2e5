// Package compress provides the codecs used to shrink training trace files.
//
// A trace is a stream of JSON lines: one header followed by one line per progress,
// epoch and prediction record. Long quadratic runs produce highly repetitive text,
// so a general-purpose codec applied to the whole payload saves most of the space.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): the payload is written unchanged.
//   - Zstd (format.CompressionZstd): best ratio; pure Go by default, gozstd when cgo is enabled.
//   - S2 (format.CompressionS2): fast with a good ratio.
//   - LZ4 (format.CompressionLZ4): fastest decompression, one length-prefixed LZ4 block.
//
// # Usage
//
//	codec, err := compress.CreateCodec(format.CompressionZstd, "trace")
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
//	...
//	original, err := codec.Decompress(packed)
//
// All codecs are stateless values and safe for concurrent use.
package compress
