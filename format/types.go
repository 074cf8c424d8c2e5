// Package format holds the small enumerations shared by the trace writer, the
// compression codecs and the command line.
package format

import (
	"fmt"
	"strings"
)

// CompressionType selects the codec applied to a training trace payload.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone stores the payload as-is.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 block compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

var compressionTypeFromString = map[string]CompressionType{
	"none": CompressionNone,
	"zstd": CompressionZstd,
	"s2":   CompressionS2,
	"lz4":  CompressionLZ4,
}

// ParseCompressionType maps a case-insensitive codec name to its CompressionType.
// The empty string selects CompressionNone.
func ParseCompressionType(name string) (CompressionType, error) {
	if name == "" {
		return CompressionNone, nil
	}
	if ct, ok := compressionTypeFromString[strings.ToLower(name)]; ok {
		return ct, nil
	}

	return 0, fmt.Errorf("unknown compression %q: want none, zstd, s2 or lz4", name)
}
