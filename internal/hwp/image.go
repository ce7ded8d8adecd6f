package hwp

import (
	"bytes"
	"strings"
)

// SniffImageFormat identifies an image payload by its magic bytes.
// 4바이트 미만이거나 아는 형식이 아니면 빈 문자열을 돌려준다.
func SniffImageFormat(data []byte) string {
	if len(data) < 4 {
		return ""
	}
	switch {
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return "jpeg"
	case bytes.HasPrefix(data, []byte{0x89, 0x50, 0x4E, 0x47}):
		return "png"
	case bytes.HasPrefix(data, []byte("GIF")):
		return "gif"
	case bytes.HasPrefix(data, []byte("BM")):
		return "bmp"
	case bytes.HasPrefix(data, []byte{0xD7, 0xCD, 0xC6, 0x9A}):
		return "wmf"
	case bytes.HasPrefix(data, []byte{0x01, 0x00, 0x00, 0x00}):
		return "emf"
	case len(data) >= 12 && bytes.HasPrefix(data, []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return "webp"
	}
	return ""
}

// imageFileName appends the sniffed extension unless the stream name
// already ends with it.
func imageFileName(name, format string) string {
	if strings.HasSuffix(strings.ToLower(name), "."+format) {
		return name
	}
	return name + "." + format
}
