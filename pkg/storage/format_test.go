package storage

import (
	"bytes"
	"testing"
	"time"

	"github.com/adfharrison1/go-docstore/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHeader(&buf))

	header, err := ReadHeader(&buf)
	require.NoError(t, err)
	assert.Equal(t, MagicBytes, string(header.Magic[:]))
	assert.Equal(t, uint8(FormatVersion), header.Version)
}

func TestReadHeader_InvalidMagic(t *testing.T) {
	_, err := ReadHeader(bytes.NewReader([]byte{'N', 'O', 'P', 'E', 1, 0, 0, 0}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid file format")
}

func TestReadHeader_UnsupportedVersion(t *testing.T) {
	_, err := ReadHeader(bytes.NewReader([]byte{'G', 'D', 'O', 'C', 99, 0, 0, 0}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file version")
}

func TestReadHeader_Truncated(t *testing.T) {
	_, err := ReadHeader(bytes.NewReader([]byte{'G', 'D'}))
	assert.Error(t, err)
}

func TestCollectionRoundTrip(t *testing.T) {
	created := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	docs := []domain.Document{
		{
			"_id":       "65a1b2c3d4e5f60718293a4b",
			"name":      "Alice",
			"age":       int64(30),
			"active":    true,
			"createdAt": created,
			"tags":      []interface{}{"x", "y"},
			"nested":    map[string]interface{}{"level": int64(2)},
		},
		{"_id": "65a1b2c3d4e5f60718293a4c", "name": "Bob"},
	}

	data, err := encodeCollection(docs)
	require.NoError(t, err)

	decoded, err := decodeCollection(data)
	require.NoError(t, err)
	require.Len(t, decoded, 2)

	assert.Equal(t, "Alice", decoded[0]["name"])
	assert.EqualValues(t, 30, decoded[0]["age"])
	assert.Equal(t, true, decoded[0]["active"])
	assert.Equal(t, []interface{}{"x", "y"}, decoded[0]["tags"])
	nested, ok := decoded[0]["nested"].(map[string]interface{})
	require.True(t, ok, "nested decoded as %T", decoded[0]["nested"])
	assert.EqualValues(t, 2, nested["level"])
	assert.Equal(t, "Bob", decoded[1]["name"])

	// Timestamps must round-trip as instants, not strings.
	ts, ok := decoded[0]["createdAt"].(time.Time)
	require.True(t, ok, "createdAt decoded as %T", decoded[0]["createdAt"])
	assert.True(t, ts.Equal(created))
}

func TestDecodeCollection_Empty(t *testing.T) {
	docs, err := decodeCollection(nil)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestDecodeCollection_Corrupt(t *testing.T) {
	// A valid header followed by garbage must error, never decode to an
	// empty collection.
	var buf bytes.Buffer
	require.NoError(t, WriteHeader(&buf))
	buf.WriteString("this is not lz4 data")

	_, err := decodeCollection(buf.Bytes())
	assert.Error(t, err)
}

func TestEncodeCollection_EmptySequence(t *testing.T) {
	data, err := encodeCollection(nil)
	require.NoError(t, err)

	docs, err := decodeCollection(data)
	require.NoError(t, err)
	assert.Empty(t, docs)
}
