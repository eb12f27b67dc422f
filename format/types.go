package format

import (
	"fmt"
	"strings"
)

type (
	DataType        uint8
	CompressionType uint8
)

// Point field datatypes. The numeric values match the PCL PCLPointField
// enumeration so descriptors can be carried over from PCD headers unchanged.
const (
	TypeInt8    DataType = 0x1 // TypeInt8 represents a signed 8-bit integer.
	TypeUint8   DataType = 0x2 // TypeUint8 represents an unsigned 8-bit integer.
	TypeInt16   DataType = 0x3 // TypeInt16 represents a signed 16-bit integer.
	TypeUint16  DataType = 0x4 // TypeUint16 represents an unsigned 16-bit integer.
	TypeInt32   DataType = 0x5 // TypeInt32 represents a signed 32-bit integer.
	TypeUint32  DataType = 0x6 // TypeUint32 represents an unsigned 32-bit integer.
	TypeFloat32 DataType = 0x7 // TypeFloat32 represents an IEEE-754 single precision float.
	TypeFloat64 DataType = 0x8 // TypeFloat64 represents an IEEE-754 double precision float.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (d DataType) String() string {
	switch d {
	case TypeInt8:
		return "Int8"
	case TypeUint8:
		return "Uint8"
	case TypeInt16:
		return "Int16"
	case TypeUint16:
		return "Uint16"
	case TypeInt32:
		return "Int32"
	case TypeUint32:
		return "Uint32"
	case TypeFloat32:
		return "Float32"
	case TypeFloat64:
		return "Float64"
	default:
		return "Unknown"
	}
}

// Size returns the width of a single element of the datatype in bytes,
// or 0 for an unknown datatype.
func (d DataType) Size() int {
	switch d {
	case TypeInt8, TypeUint8:
		return 1
	case TypeInt16, TypeUint16:
		return 2
	case TypeInt32, TypeUint32, TypeFloat32:
		return 4
	case TypeFloat64:
		return 8
	default:
		return 0
	}
}

// ParseDataType parses a datatype name as written in manifests.
//
// Both the Go style names ("float32", "uint32") and the PCD type/size pairs
// ("F4", "U4") are accepted, case-insensitively.
func ParseDataType(s string) (DataType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "int8", "i1":
		return TypeInt8, nil
	case "uint8", "u1":
		return TypeUint8, nil
	case "int16", "i2":
		return TypeInt16, nil
	case "uint16", "u2":
		return TypeUint16, nil
	case "int32", "i4":
		return TypeInt32, nil
	case "uint32", "u4":
		return TypeUint32, nil
	case "float32", "float", "f4":
		return TypeFloat32, nil
	case "float64", "double", "f8":
		return TypeFloat64, nil
	default:
		return 0, fmt.Errorf("unknown datatype %q", s)
	}
}

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

// Extension returns the file name suffix conventionally appended to a saved
// document compressed with c. CompressionNone has no suffix.
func (c CompressionType) Extension() string {
	switch c {
	case CompressionZstd:
		return ".zst"
	case CompressionS2:
		return ".s2"
	case CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}

// ParseCompressionType parses a compression name ("none", "zstd", "s2", "lz4").
// The empty string is treated as "none".
func ParseCompressionType(s string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return CompressionNone, nil
	case "zstd", "zst":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression %q", s)
	}
}
