package compress

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/vtkio/errs"
	"github.com/arloliu/vtkio/format"
)

// vertexSection mimics the VERTICES block of a legacy VTK document.
func vertexSection(n int) []byte {
	var sb strings.Builder
	sb.WriteString("VERTICES ")
	sb.WriteString(strconv.Itoa(n))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(2 * n))
	sb.WriteByte('\n')
	for i := range n {
		sb.WriteString("1 ")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteByte('\n')
	}

	return []byte(sb.String())
}

var allTypes = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

func TestGetCodec(t *testing.T) {
	for _, ct := range allTypes {
		codec, err := GetCodec(ct)
		require.NoError(t, err, ct.String())
		require.Implements(t, (*Codec)(nil), codec)
	}

	_, err := GetCodec(format.CompressionType(0xFF))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestCodecRoundTrip(t *testing.T) {
	payloads := map[string][]byte{
		"Small":  []byte("# vtk DataFile Version 3.0\nvtk output\nASCII\nDATASET POLYDATA\n"),
		"Medium": vertexSection(1000),
		"Large":  vertexSection(100000),
	}

	for _, ct := range allTypes {
		for name, payload := range payloads {
			t.Run(ct.String()+name, func(t *testing.T) {
				codec, err := GetCodec(ct)
				require.NoError(t, err)

				compressed, err := codec.Compress(payload)
				require.NoError(t, err)
				if ct != format.CompressionNone && len(payload) > 4096 {
					require.Less(t, len(compressed), len(payload))
				}

				out, err := codec.Decompress(compressed)
				require.NoError(t, err)
				require.Equal(t, payload, out)
			})
		}
	}
}

func TestCodecDecompressEmpty(t *testing.T) {
	for _, ct := range allTypes {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		out, err := codec.Decompress(nil)
		require.NoError(t, err)
		require.Empty(t, out)
	}
}

func TestCodecDecompressCorrupted(t *testing.T) {
	garbage := []byte("definitely not a compressed stream")
	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		_, err = codec.Decompress(garbage)
		require.Error(t, err, ct.String())
	}
}

func TestNoOpAliasesInput(t *testing.T) {
	data := []byte("POINTS 1 float\n")
	out, err := NewNoOpCompressor().Compress(data)
	require.NoError(t, err)
	require.Same(t, &data[0], &out[0])
}
