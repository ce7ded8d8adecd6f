package hwp

import (
	"encoding/binary"
	"testing"
	"unicode/utf16"
)

// 테스트용 레코드 인코더. 크기가 12비트 필드를 넘으면 확장 크기를 쓴다.
func appendRecord(buf []byte, tag Tag, level uint16, payload []byte) []byte {
	size := uint32(len(payload))
	word := uint32(tag)&0x3FF | (uint32(level)&0x3FF)<<10
	if size >= extendedSizeFlag {
		word |= uint32(extendedSizeFlag) << 20
		buf = binary.LittleEndian.AppendUint32(buf, word)
		buf = binary.LittleEndian.AppendUint32(buf, size)
	} else {
		word |= size << 20
		buf = binary.LittleEndian.AppendUint32(buf, word)
	}
	return append(buf, payload...)
}

// UTF-16LE 인코딩 헬퍼
func utf16le(s string) []byte {
	var b []byte
	for _, u := range utf16.Encode([]rune(s)) {
		b = binary.LittleEndian.AppendUint16(b, u)
	}
	return b
}

func TestDecodeRecords(t *testing.T) {
	// PARA_TEXT 레코드 하나: Tag=0x43, Level=1, 페이로드 "Test"
	payload := utf16le("Test")
	data := appendRecord(nil, TagParaText, 1, payload)

	records, consumed := DecodeRecords(data)
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if consumed != len(data) {
		t.Errorf("Expected %d bytes consumed, got %d", len(data), consumed)
	}

	rec := records[0]
	if rec.Tag != TagParaText {
		t.Errorf("Expected tag PARA_TEXT, got %s", rec.Tag)
	}
	if rec.Level != 1 {
		t.Errorf("Expected level 1, got %d", rec.Level)
	}
	if rec.Size != uint32(len(payload)) {
		t.Errorf("Expected size %d, got %d", len(payload), rec.Size)
	}
	if got := DecodeParaText(rec.Data); got != "Test" {
		t.Errorf("Expected 'Test', got '%s'", got)
	}
}

func TestDecodeRecords_Multiple(t *testing.T) {
	data := appendRecord(nil, TagParaHeader, 0, make([]byte, 8))
	data = appendRecord(data, TagParaText, 1, utf16le("A"))
	data = appendRecord(data, TagParaCharShape, 1, make([]byte, 8))

	records, consumed := DecodeRecords(data)
	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}
	if consumed != len(data) {
		t.Errorf("Expected %d bytes consumed, got %d", len(data), consumed)
	}
	want := []Tag{TagParaHeader, TagParaText, TagParaCharShape}
	for i, tag := range want {
		if records[i].Tag != tag {
			t.Errorf("Record %d: expected %s, got %s", i, tag, records[i].Tag)
		}
	}
}

func TestDecodeRecords_ExtendedSize(t *testing.T) {
	// 크기 필드 0xFFF는 뒤따르는 4바이트가 실제 크기라는 표시다
	payload := make([]byte, 5000)
	payload[0] = 0xAB
	payload[4999] = 0xCD
	data := appendRecord(nil, TagBinData, 0, payload)

	records, consumed := DecodeRecords(data)
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if consumed != len(data) {
		t.Errorf("Expected %d bytes consumed, got %d", len(data), consumed)
	}

	rec := records[0]
	if rec.Size != 5000 {
		t.Errorf("Expected size 5000, got %d", rec.Size)
	}
	if rec.Data[0] != 0xAB || rec.Data[4999] != 0xCD {
		t.Error("Extended-size payload corrupted")
	}
}

func TestDecodeRecords_Truncated(t *testing.T) {
	// 두 번째 레코드가 선언한 크기만큼 바이트가 없으면 거기서 멈추고
	// 첫 레코드까지만 돌려준다
	data := appendRecord(nil, TagParaHeader, 0, []byte{1, 2, 3, 4})
	good := len(data)

	data = binary.LittleEndian.AppendUint32(data, uint32(100)<<20|uint32(TagParaText))
	data = append(data, 0x00, 0x01) // 100바이트 선언, 2바이트만 존재

	records, consumed := DecodeRecords(data)
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if records[0].Tag != TagParaHeader {
		t.Errorf("Expected PARA_HEADER, got %s", records[0].Tag)
	}
	if consumed != good {
		t.Errorf("Expected %d bytes consumed, got %d", good, consumed)
	}
}

func TestDecodeRecords_Empty(t *testing.T) {
	records, consumed := DecodeRecords(nil)
	if len(records) != 0 || consumed != 0 {
		t.Errorf("Expected no records from empty buffer, got %d (%d bytes)", len(records), consumed)
	}
}

func TestTagString(t *testing.T) {
	tests := []struct {
		tag      Tag
		expected string
	}{
		{TagDocumentProperties, "DOCUMENT_PROPERTIES"},
		{TagCharShape, "CHAR_SHAPE"},
		{TagParaHeader, "PARA_HEADER"},
		{TagParaText, "PARA_TEXT"},
		{TagTable, "TABLE"},
		{Tag(0x3FF), "UNKNOWN(0x03FF)"},
	}

	for _, tt := range tests {
		if got := tt.tag.String(); got != tt.expected {
			t.Errorf("Tag(0x%04X).String() = %s, expected %s", uint16(tt.tag), got, tt.expected)
		}
	}
}
