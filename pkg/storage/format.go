package storage

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/adfharrison1/go-docstore/pkg/domain"
	"github.com/pierrec/lz4/v4"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	// Magic bytes to identify our file format
	MagicBytes = "GDOC"
	// Current version
	FormatVersion = 1
	// File extension for collection files
	FileExtension = ".gdoc"
)

// FileHeader represents the header of a collection file
type FileHeader struct {
	Magic    [4]byte // "GDOC"
	Version  uint8   // Format version
	Flags    uint8   // Reserved for future use
	Reserved [2]byte // Reserved for future use
}

// WriteHeader writes the file header to the given writer
func WriteHeader(w io.Writer) error {
	header := FileHeader{
		Magic:    [4]byte{'G', 'D', 'O', 'C'},
		Version:  FormatVersion,
		Flags:    0,
		Reserved: [2]byte{0, 0},
	}

	return binary.Write(w, binary.LittleEndian, header)
}

// ReadHeader reads and validates the file header
func ReadHeader(r io.Reader) (*FileHeader, error) {
	var header FileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	if string(header.Magic[:]) != MagicBytes {
		return nil, fmt.Errorf("invalid file format: expected %s, got %s", MagicBytes, string(header.Magic[:]))
	}

	if header.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported file version: %d", header.Version)
	}

	return &header, nil
}

// fileData is the on-disk payload: the full document sequence of one
// collection, in collection order.
type fileData struct {
	Documents []domain.Document `msgpack:"documents"`
}

// encodeCollection serializes a document sequence to the full file
// content: header, then the LZ4-compressed MessagePack payload.
func encodeCollection(docs []domain.Document) ([]byte, error) {
	payload, err := msgpack.Marshal(&fileData{Documents: docs})
	if err != nil {
		return nil, fmt.Errorf("failed to encode MessagePack: %w", err)
	}

	var buf bytes.Buffer
	if err := WriteHeader(&buf); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	zw := lz4.NewWriter(&buf)
	if _, err := zw.Write(payload); err != nil {
		return nil, fmt.Errorf("failed to compress data: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to compress data: %w", err)
	}

	return buf.Bytes(), nil
}

// decodeCollection parses full file content back into a document
// sequence. A zero-length file decodes to an empty collection; anything
// else must carry a valid header and payload.
func decodeCollection(data []byte) ([]domain.Document, error) {
	if len(data) == 0 {
		return nil, nil
	}

	reader := bytes.NewReader(data)
	if _, err := ReadHeader(reader); err != nil {
		return nil, err
	}

	payload, err := io.ReadAll(lz4.NewReader(reader))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress data: %w", err)
	}

	var fd fileData
	if err := msgpack.Unmarshal(payload, &fd); err != nil {
		return nil, fmt.Errorf("failed to decode MessagePack: %w", err)
	}

	return fd.Documents, nil
}
