package exifdata

// This file handles the raw EXIF APP1 segment of a JPEG stream, so the
// transcoder can carry the original metadata block over to its re-encoded
// output byte for byte.

import (
	"bytes"
	"errors"
	"fmt"
	"os"
)

// ErrNoSegment is returned by RawAPP1 when the stream carries no EXIF APP1
// segment (including non-JPEG inputs such as PNG).
var ErrNoSegment = errors.New("no EXIF segment found")

var (
	soiMarker  = []byte{0xFF, 0xD8}
	exifHeader = []byte("Exif\x00\x00")
)

// RawAPP1 returns the payload of the first EXIF APP1 segment in the JPEG
// file at path (the bytes after the segment length field, starting with the
// "Exif\x00\x00" header). The payload is exactly what SpliceAPP1 needs to
// reproduce the segment in another stream.
func RawAPP1(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return rawAPP1(data)
}

func rawAPP1(data []byte) ([]byte, error) {
	if !bytes.HasPrefix(data, soiMarker) {
		return nil, ErrNoSegment
	}

	i := 2
	for i+4 <= len(data) {
		if data[i] != 0xFF {
			return nil, fmt.Errorf("malformed JPEG: expected marker at offset %d", i)
		}
		marker := data[i+1]

		// Standalone markers carry no length field.
		if marker == 0x01 || (marker >= 0xD0 && marker <= 0xD8) {
			i += 2
			continue
		}
		// SOS or EOI: entropy-coded data follows, no more metadata segments.
		if marker == 0xDA || marker == 0xD9 {
			return nil, ErrNoSegment
		}

		length := int(data[i+2])<<8 | int(data[i+3])
		if length < 2 || i+2+length > len(data) {
			return nil, fmt.Errorf("malformed JPEG: bad segment length at offset %d", i)
		}
		payload := data[i+4 : i+2+length]
		if marker == 0xE1 && bytes.HasPrefix(payload, exifHeader) {
			return append([]byte(nil), payload...), nil
		}
		i += 2 + length
	}
	return nil, ErrNoSegment
}

// SpliceAPP1 inserts payload as an APP1 segment immediately after the SOI
// marker of an encoded JPEG stream and returns the new stream. The input is
// returned unchanged when it is not a JPEG or the payload cannot fit a
// single segment (the length field is 16-bit).
func SpliceAPP1(jpegData, payload []byte) []byte {
	const maxPayload = 0xFFFF - 2
	if !bytes.HasPrefix(jpegData, soiMarker) || len(payload) == 0 || len(payload) > maxPayload {
		return jpegData
	}

	length := len(payload) + 2
	out := make([]byte, 0, len(jpegData)+4+len(payload))
	out = append(out, soiMarker...)
	out = append(out, 0xFF, 0xE1, byte(length>>8), byte(length&0xFF))
	out = append(out, payload...)
	out = append(out, jpegData[2:]...)
	return out
}
