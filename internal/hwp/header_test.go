package hwp

import "testing"

// 시그니처, 버전, 플래그를 채운 FileHeader 스트림을 만든다
func fileHeaderFixture(flags uint32) []byte {
	data := make([]byte, FileHeaderSize)
	copy(data[0:32], []byte(Signature))

	// 버전 5.0.3.0 (낮은 주소가 하위 구성요소)
	data[32] = 0 // Revision
	data[33] = 3 // Build
	data[34] = 0 // Minor
	data[35] = 5 // Major

	data[36] = byte(flags)
	data[37] = byte(flags >> 8)
	data[38] = byte(flags >> 16)
	data[39] = byte(flags >> 24)
	return data
}

func TestParseFileFlags(t *testing.T) {
	flags := ParseFileFlags([]byte{0x01, 0x00, 0x00, 0x00})
	if !flags.Compressed {
		t.Error("Expected Compressed to be true")
	}
	if flags.Encrypted {
		t.Error("Expected Encrypted to be false")
	}
}

func TestParseFileFlags_CompressedEncrypted(t *testing.T) {
	flags := ParseFileFlags([]byte{0x03, 0x00, 0x00, 0x00})
	if !flags.Compressed || !flags.Encrypted {
		t.Errorf("Expected compressed+encrypted, got %+v", flags)
	}
	if flags.Distributed || flags.DRMProtected {
		t.Errorf("Unexpected extra flags: %+v", flags)
	}
}

func TestParseFileFlags_HighBits(t *testing.T) {
	// bit16 = 순서 보존 필드 컨트롤
	flags := ParseFileFlags([]byte{0x00, 0x00, 0x01, 0x00})
	if !flags.OrderFieldControl {
		t.Error("Expected OrderFieldControl to be true")
	}
	if flags.Compressed {
		t.Error("Expected Compressed to be false")
	}
}

func TestParseFileFlags_Short(t *testing.T) {
	// 4바이트 미만이면 기본값: 압축만 켜진 상태
	flags := ParseFileFlags([]byte{0x01, 0x02})
	if !flags.Compressed || flags.Encrypted {
		t.Errorf("Expected defaults, got %+v", flags)
	}
}

func TestHeaderFlags(t *testing.T) {
	flags := HeaderFlags(fileHeaderFixture(0x03))
	if !flags.Compressed || !flags.Encrypted {
		t.Errorf("Expected compressed+encrypted, got %+v", flags)
	}
}

func TestHeaderFlags_ShortHeader(t *testing.T) {
	flags := HeaderFlags(make([]byte, 39))
	if !flags.Compressed || flags.Encrypted {
		t.Errorf("Expected defaults for short header, got %+v", flags)
	}
}

func TestParseVersion(t *testing.T) {
	v, ok := ParseVersion(fileHeaderFixture(0x01))
	if !ok {
		t.Fatal("ParseVersion failed")
	}
	if v.Major != 5 || v.Minor != 0 || v.Build != 3 || v.Revision != 0 {
		t.Errorf("Expected 5.0.3.0, got %+v", v)
	}
	if v.String() != "5.0.3.0" {
		t.Errorf("Expected version string '5.0.3.0', got %s", v.String())
	}
}

func TestFormatVersion(t *testing.T) {
	if got := FormatVersion(fileHeaderFixture(0x01)); got != "HWP 5.0.3.0" {
		t.Errorf("Expected 'HWP 5.0.3.0', got %q", got)
	}
}

func TestFormatVersion_ShortHeader(t *testing.T) {
	if got := FormatVersion(make([]byte, 35)); got != "Unknown" {
		t.Errorf("Expected 'Unknown', got %q", got)
	}
	if got := FormatVersion(nil); got != "Unknown" {
		t.Errorf("Expected 'Unknown' for missing header, got %q", got)
	}
}
