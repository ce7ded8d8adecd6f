package hwp

import (
	"encoding/binary"
	"testing"
)

// 속성 워드만 채운 CHAR_SHAPE 페이로드를 만든다 (오프셋 46, 총 50바이트)
func charShapePayload(attr uint32) []byte {
	data := make([]byte, 50)
	binary.LittleEndian.PutUint32(data[46:], attr)
	return data
}

func TestParseCharShape(t *testing.T) {
	tests := []struct {
		name     string
		attr     uint32
		expected CharShape
	}{
		{"plain", 0x00, CharShape{}},
		{"italic", 0x01, CharShape{Italic: true}},
		{"bold", 0x02, CharShape{Bold: true}},
		{"bold italic", 0x03, CharShape{Bold: true, Italic: true}},
		{"underline", 0x04, CharShape{Underline: true}},
		{"strikeout", 0x00040000, CharShape{Strikeout: true}},
	}

	for _, tt := range tests {
		shape, ok := ParseCharShape(charShapePayload(tt.attr))
		if !ok {
			t.Fatalf("%s: ParseCharShape failed", tt.name)
		}
		if shape != tt.expected {
			t.Errorf("%s: expected %+v, got %+v", tt.name, tt.expected, shape)
		}
	}
}

func TestParseCharShape_TooShort(t *testing.T) {
	if _, ok := ParseCharShape(make([]byte, 49)); ok {
		t.Error("Expected failure for 49-byte payload")
	}
}

func TestCharShapeMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		shape    CharShape
		expected string
	}{
		{"plain", CharShape{}, "테스트"},
		{"bold", CharShape{Bold: true}, "**테스트**"},
		{"italic", CharShape{Italic: true}, "*테스트*"},
		{"bold italic", CharShape{Bold: true, Italic: true}, "***테스트***"},
		{"underline", CharShape{Underline: true}, "<u>테스트</u>"},
		{"strikeout", CharShape{Strikeout: true}, "~~테스트~~"},
		{"bold strikeout", CharShape{Bold: true, Strikeout: true}, "**~~테스트~~**"},
	}

	for _, tt := range tests {
		if got := tt.shape.Markdown("테스트"); got != tt.expected {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.expected, got)
		}
	}
}

func TestCharShapeMarkdown_Empty(t *testing.T) {
	shape := CharShape{Bold: true}
	if got := shape.Markdown(""); got != "" {
		t.Errorf("Expected empty result for empty text, got %q", got)
	}
}

// (위치, 모양 ID) 쌍을 PARA_CHAR_SHAPE 페이로드로 인코딩한다
func shapeMappingPayload(pairs ...[2]uint32) []byte {
	var data []byte
	for _, p := range pairs {
		data = binary.LittleEndian.AppendUint32(data, p[0])
		data = binary.LittleEndian.AppendUint32(data, p[1])
	}
	return data
}

func TestParseCharShapeMapping(t *testing.T) {
	m, ok := ParseCharShapeMapping(shapeMappingPayload([2]uint32{0, 0}, [2]uint32{5, 1}))
	if !ok {
		t.Fatal("ParseCharShapeMapping failed")
	}
	if len(m) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(m))
	}
	if m[0].Position != 0 || m[0].ShapeID != 0 {
		t.Errorf("Entry 0: expected (0, 0), got (%d, %d)", m[0].Position, m[0].ShapeID)
	}
	if m[1].Position != 5 || m[1].ShapeID != 1 {
		t.Errorf("Entry 1: expected (5, 1), got (%d, %d)", m[1].Position, m[1].ShapeID)
	}
}

func TestParseCharShapeMapping_TooShort(t *testing.T) {
	if _, ok := ParseCharShapeMapping(make([]byte, 7)); ok {
		t.Error("Expected failure for 7-byte payload")
	}
}

func TestShapeAt(t *testing.T) {
	m, _ := ParseCharShapeMapping(shapeMappingPayload([2]uint32{0, 0}, [2]uint32{5, 1}))

	for pos := uint32(0); pos < 5; pos++ {
		if id, ok := m.ShapeAt(pos); !ok || id != 0 {
			t.Errorf("Position %d: expected shape 0, got %d (ok=%v)", pos, id, ok)
		}
	}
	if id, ok := m.ShapeAt(5); !ok || id != 1 {
		t.Errorf("Position 5: expected shape 1, got %d (ok=%v)", id, ok)
	}
	if id, ok := m.ShapeAt(100); !ok || id != 1 {
		t.Errorf("Position 100: expected shape 1, got %d (ok=%v)", id, ok)
	}
}

func TestShapeAt_BeforeFirst(t *testing.T) {
	// 첫 변경점보다 앞이면 지배하는 모양이 없다
	m, _ := ParseCharShapeMapping(shapeMappingPayload([2]uint32{3, 7}))
	if _, ok := m.ShapeAt(1); ok {
		t.Error("Expected no shape before the first entry")
	}
}

func TestFormatParaText(t *testing.T) {
	// "Hello World": 6번 위치부터 굵게
	shapes := map[uint32]CharShape{
		0: {},
		1: {Bold: true},
	}
	mapping, _ := ParseCharShapeMapping(shapeMappingPayload([2]uint32{0, 0}, [2]uint32{6, 1}))

	got := FormatParaText(utf16le("Hello World"), mapping, shapes)
	if got != "Hello **World**" {
		t.Errorf("Expected 'Hello **World**', got %q", got)
	}
}

func TestFormatParaText_NoMapping(t *testing.T) {
	got := FormatParaText(utf16le("Hello"), nil, map[uint32]CharShape{})
	if got != "Hello" {
		t.Errorf("Expected 'Hello', got %q", got)
	}
}

func TestFormatParaText_UnknownShape(t *testing.T) {
	// 모양 테이블에 없는 ID를 가리키면 평문으로 남긴다
	mapping, _ := ParseCharShapeMapping(shapeMappingPayload([2]uint32{0, 9}))
	got := FormatParaText(utf16le("Hello"), mapping, map[uint32]CharShape{})
	if got != "Hello" {
		t.Errorf("Expected 'Hello', got %q", got)
	}
}

func TestCollectCharShapes(t *testing.T) {
	// 해석에 실패한 CHAR_SHAPE도 순번은 소비해야 한다
	records := []Record{
		{Tag: TagCharShape, Data: charShapePayload(0x02)},
		{Tag: TagCharShape, Data: make([]byte, 10)}, // 너무 짧음
		{Tag: TagFaceName, Data: nil},
		{Tag: TagCharShape, Data: charShapePayload(0x01)},
	}

	shapes := CollectCharShapes(records)
	if len(shapes) != 2 {
		t.Fatalf("Expected 2 shapes, got %d", len(shapes))
	}
	if !shapes[0].Bold {
		t.Error("Shape 0: expected bold")
	}
	if _, ok := shapes[1]; ok {
		t.Error("Shape 1 should be missing (short payload)")
	}
	if !shapes[2].Italic {
		t.Error("Shape 2: expected italic")
	}
}
