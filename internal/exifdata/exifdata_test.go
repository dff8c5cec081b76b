package exifdata

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// tiffWithDateTag builds a minimal little-endian TIFF block whose Exif
// sub-IFD carries the given date tag (0x9003 DateTimeOriginal or
// 0x9004 DateTimeDigitized) with value ts ("YYYY:MM:DD HH:MM:SS").
func tiffWithDateTag(t *testing.T, tag uint16, ts string) []byte {
	t.Helper()
	if len(ts) != 19 {
		t.Fatalf("EXIF timestamp must be 19 chars, got %q", ts)
	}

	var b bytes.Buffer
	le := binary.LittleEndian
	w16 := func(v uint16) { binary.Write(&b, le, v) }
	w32 := func(v uint32) { binary.Write(&b, le, v) }

	// Header: byte order, magic, offset of IFD0.
	b.WriteString("II")
	w16(0x2A)
	w32(8)

	// IFD0 at offset 8: one entry, the Exif sub-IFD pointer.
	w16(1)
	w16(0x8769) // ExifIFDPointer
	w16(4)      // LONG
	w32(1)
	w32(26) // offset of the Exif IFD (8 + 2 + 12 + 4)
	w32(0)  // no next IFD

	// Exif IFD at offset 26: one entry, the date tag.
	w16(1)
	w16(tag)
	w16(2)  // ASCII
	w32(20) // 19 chars + NUL
	w32(44) // offset of the string (26 + 2 + 12 + 4)
	w32(0)

	b.WriteString(ts)
	b.WriteByte(0)
	return b.Bytes()
}

// exifJPEG writes a small JPEG with the given TIFF block spliced in as its
// EXIF APP1 segment and returns the file path.
func exifJPEG(t *testing.T, dir, name string, tiffData []byte) string {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encode: %v", err)
	}
	payload := append(append([]byte(nil), exifHeader...), tiffData...)
	data := SpliceAPP1(buf.Bytes(), payload)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestCaptureTime_DateTimeOriginal(t *testing.T) {
	dir := t.TempDir()
	path := exifJPEG(t, dir, "a.jpg", tiffWithDateTag(t, 0x9003, "2024:12:21 08:00:00"))

	got, fromEXIF := CaptureTime(path)
	if !fromEXIF {
		t.Fatal("expected EXIF-sourced timestamp")
	}
	want := time.Date(2024, 12, 21, 8, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCaptureTime_DateTimeDigitizedFallback(t *testing.T) {
	dir := t.TempDir()
	path := exifJPEG(t, dir, "scan.jpg", tiffWithDateTag(t, 0x9004, "2023:03:20 21:24:00"))

	got, fromEXIF := CaptureTime(path)
	if !fromEXIF {
		t.Fatal("expected EXIF-sourced timestamp")
	}
	want := time.Date(2023, 3, 20, 21, 24, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCaptureTime_ModTimeFallback(t *testing.T) {
	dir := t.TempDir()

	// A JPEG with no APP1 at all.
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4)), nil); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "bare.jpg")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	want := time.Date(2022, 6, 21, 5, 30, 0, 0, time.Local)
	if err := os.Chtimes(path, want, want); err != nil {
		t.Fatal(err)
	}

	got, fromEXIF := CaptureTime(path)
	if fromEXIF {
		t.Fatal("expected filesystem fallback, got EXIF")
	}
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCaptureTime_CorruptMetadataFallsBack(t *testing.T) {
	dir := t.TempDir()

	// Valid JPEG, APP1 claims EXIF but the TIFF block is garbage.
	path := exifJPEG(t, dir, "corrupt.jpg", []byte("not a tiff block at all"))
	want := time.Date(2021, 9, 22, 12, 0, 0, 0, time.Local)
	if err := os.Chtimes(path, want, want); err != nil {
		t.Fatal(err)
	}

	got, fromEXIF := CaptureTime(path)
	if fromEXIF {
		t.Fatal("expected fallback for corrupt metadata")
	}
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCaptureTime_MissingFile(t *testing.T) {
	before := time.Now()
	got, fromEXIF := CaptureTime(filepath.Join(t.TempDir(), "nope.jpg"))
	if fromEXIF {
		t.Fatal("expected fallback for missing file")
	}
	if got.Before(before.Add(-time.Minute)) || got.After(time.Now().Add(time.Minute)) {
		t.Errorf("expected a current-time fallback, got %v", got)
	}
}
