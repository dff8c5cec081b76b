// Package exifdata extracts capture timestamps and raw EXIF segments from
// photo files.
package exifdata

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
)

// exifTimeLayout is the textual pattern EXIF uses for date-time tags.
const exifTimeLayout = "2006:01:02 15:04:05"

var errTagNotString = errors.New("EXIF date tag is not a string")

// dateFields are the EXIF tags consulted for a capture time, in priority
// order. DateTimeOriginal is when the shutter fired; DateTimeDigitized is
// when the image was scanned or written.
var dateFields = []exif.FieldName{
	exif.DateTimeOriginal,
	exif.DateTimeDigitized,
}

// CaptureTime returns the best available capture timestamp for the photo at
// path. The second return reports whether embedded EXIF supplied the value;
// when false, the caller may want to surface a warning.
//
// The sources form an ordered fallback chain: each EXIF date tag in turn,
// then the file's modification time. The chain never fails; a corrupt or
// absent metadata block simply falls through to the filesystem.
func CaptureTime(path string) (time.Time, bool) {
	f, err := os.Open(path)
	if err == nil {
		defer f.Close()
		if x, err := exif.Decode(f); err == nil {
			for _, field := range dateFields {
				if t, err := tagTime(x, field); err == nil {
					return t, true
				}
			}
		}
	}
	return modTime(path), false
}

// tagTime reads one EXIF date tag and parses it with exifTimeLayout.
func tagTime(x *exif.Exif, field exif.FieldName) (time.Time, error) {
	tag, err := x.Get(field)
	if err != nil {
		return time.Time{}, err
	}
	if tag.Format() != tiff.StringVal {
		return time.Time{}, errTagNotString
	}
	s, err := tag.StringVal()
	if err != nil {
		return time.Time{}, err
	}
	// Some cameras pad ASCII values with trailing NULs.
	s = strings.TrimSpace(strings.TrimRight(s, "\x00"))
	return time.Parse(exifTimeLayout, s)
}

// modTime is the unconditional last resort: the file's modification time,
// or the current time if even stat fails.
func modTime(path string) time.Time {
	if info, err := os.Stat(path); err == nil {
		return info.ModTime()
	}
	return time.Now()
}
