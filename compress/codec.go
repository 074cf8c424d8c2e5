package compress

import (
	"fmt"

	"github.com/yarrumevets/helloai/format"
)

// Compressor compresses a complete payload.
//
// The returned slice is owned by the caller; the input is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm.
//
// It returns an error when the input is corrupted or was produced by a
// different algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec can both compress and decompress.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes the outcome of compressing one payload.
type CompressionStats struct {
	Algorithm      format.CompressionType
	OriginalSize   int64
	CompressedSize int64
}

// CompressionRatio returns compressed size / original size. Values below 1.0
// mean the codec saved space. An empty payload reports 0.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space saved as a percentage (0-100%).
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// constructors lists every supported algorithm.
var constructors = map[format.CompressionType]func() Codec{
	format.CompressionNone: func() Codec { return NewNoOpCompressor() },
	format.CompressionZstd: func() Codec { return NewZstdCompressor() },
	format.CompressionS2:   func() Codec { return NewS2Compressor() },
	format.CompressionLZ4:  func() Codec { return NewLZ4Compressor() },
}

// shared holds one instance per algorithm; every codec is stateless.
var shared = func() map[format.CompressionType]Codec {
	m := make(map[format.CompressionType]Codec, len(constructors))
	for ct, newCodec := range constructors {
		m[ct] = newCodec()
	}

	return m
}()

// CreateCodec creates a Codec for the given compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of what is being compressed, used in error messages
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: Invalid compression type error
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	newCodec, ok := constructors[compressionType]
	if !ok {
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}

	return newCodec(), nil
}

// GetCodec returns the shared Codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := shared[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

// Pack compresses data with the shared codec for compressionType and reports
// the sizes involved.
func Pack(compressionType format.CompressionType, data []byte) ([]byte, CompressionStats, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, CompressionStats{}, err
	}

	packed, err := codec.Compress(data)
	if err != nil {
		return nil, CompressionStats{}, fmt.Errorf("%s compression failed: %w", compressionType, err)
	}

	return packed, CompressionStats{
		Algorithm:      compressionType,
		OriginalSize:   int64(len(data)),
		CompressedSize: int64(len(packed)),
	}, nil
}
