package hwp

import "testing"

func TestSniffImageFormat(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected string
	}{
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0}, "jpeg"},
		{"png", []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, "png"},
		{"gif", []byte("GIF89a"), "gif"},
		{"bmp", []byte{0x42, 0x4D, 0x00, 0x00}, "bmp"},
		{"wmf", []byte{0xD7, 0xCD, 0xC6, 0x9A}, "wmf"},
		{"emf", []byte{0x01, 0x00, 0x00, 0x00, 0x6C, 0x00}, "emf"},
		{"webp", append([]byte("RIFF"), append([]byte{0x10, 0x00, 0x00, 0x00}, []byte("WEBP")...)...), "webp"},
		{"too short", []byte{0xFF, 0xD8, 0xFF}, ""},
		{"unknown", []byte{0x00, 0x11, 0x22, 0x33}, ""},
		{"riff but not webp", append([]byte("RIFF"), append([]byte{0x10, 0x00, 0x00, 0x00}, []byte("WAVE")...)...), ""},
	}

	for _, tt := range tests {
		if got := SniffImageFormat(tt.data); got != tt.expected {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.expected, got)
		}
	}
}

func TestImageFileName(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		expected string
	}{
		{"BIN0001", "png", "BIN0001.png"},
		{"BIN0002.png", "png", "BIN0002.png"},
		{"BIN0003.PNG", "png", "BIN0003.PNG"},
		{"image.bmp", "jpeg", "image.bmp.jpeg"},
	}

	for _, tt := range tests {
		if got := imageFileName(tt.name, tt.format); got != tt.expected {
			t.Errorf("imageFileName(%q, %q) = %q, expected %q", tt.name, tt.format, got, tt.expected)
		}
	}
}
