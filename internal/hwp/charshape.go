package hwp

import (
	"encoding/binary"
	"strings"
)

// CharShape는 CHAR_SHAPE 레코드의 장식 속성 가운데 마크다운으로 옮길 수
// 있는 것만 추린 것이다.
type CharShape struct {
	Bold      bool
	Italic    bool
	Underline bool
	Strikeout bool
}

// ParseCharShape decodes the attribute word at offset 46 of a CHAR_SHAPE
// payload. 페이로드가 50바이트 미만이면 실패한다.
func ParseCharShape(data []byte) (CharShape, bool) {
	attr, ok := readU32(data, 46)
	if !ok {
		return CharShape{}, false
	}
	return CharShape{
		Italic:    attr&0x01 != 0,
		Bold:      attr&0x02 != 0,
		Underline: (attr>>2)&0x03 != 0,
		Strikeout: (attr>>18)&0x0F != 0,
	}, true
}

// Markdown wraps text in the markers this shape calls for. 중첩 순서는
// 취소선이 가장 안쪽, 밑줄이 가장 바깥쪽이다.
func (s CharShape) Markdown(text string) string {
	if text == "" {
		return ""
	}
	result := text
	if s.Strikeout {
		result = "~~" + result + "~~"
	}
	switch {
	case s.Bold && s.Italic:
		result = "***" + result + "***"
	case s.Bold:
		result = "**" + result + "**"
	case s.Italic:
		result = "*" + result + "*"
	}
	if s.Underline {
		result = "<u>" + result + "</u>"
	}
	return result
}

// ShapeRef binds a paragraph position to a char shape ID.
type ShapeRef struct {
	Position uint32
	ShapeID  uint32
}

// CharShapeMapping은 한 문단의 (위치, 글자 모양) 변경점 목록이다.
// 위치 오름차순으로 저장된다.
type CharShapeMapping []ShapeRef

// ParseCharShapeMapping decodes a PARA_CHAR_SHAPE payload: packed 8-byte
// (position, shape_id) pairs. 8바이트 미만이면 실패한다.
func ParseCharShapeMapping(data []byte) (CharShapeMapping, bool) {
	if len(data) < 8 {
		return nil, false
	}
	var m CharShapeMapping
	for i := 0; i+8 <= len(data); i += 8 {
		m = append(m, ShapeRef{
			Position: binary.LittleEndian.Uint32(data[i:]),
			ShapeID:  binary.LittleEndian.Uint32(data[i+4:]),
		})
	}
	return m, true
}

// ShapeAt returns the shape governing position pos: pos 이하인 마지막
// 변경점의 ID. 변경점이 없으면 ok=false.
func (m CharShapeMapping) ShapeAt(pos uint32) (uint32, bool) {
	var id uint32
	found := false
	for _, ref := range m {
		if ref.Position > pos {
			break
		}
		id = ref.ShapeID
		found = true
	}
	return id, found
}

// FormatParaText decodes a PARA_TEXT payload and wraps each style run in
// its markdown markers. 매핑이 비어 있으면 평문을 그대로 돌려주고, 모양
// ID가 shapes에 없는 구간도 평문으로 남긴다.
func FormatParaText(data []byte, mapping CharShapeMapping, shapes map[uint32]CharShape) string {
	chars := decodeParaTextPositions(data)
	if len(mapping) == 0 {
		var plain strings.Builder
		for _, pc := range chars {
			plain.WriteRune(pc.ch)
		}
		return plain.String()
	}

	var result strings.Builder
	var run []rune
	var curID uint32
	curOK := false

	flush := func() {
		if len(run) == 0 {
			return
		}
		text := string(run)
		if curOK {
			if shape, ok := shapes[curID]; ok {
				text = shape.Markdown(text)
			}
		}
		result.WriteString(text)
		run = run[:0]
	}

	for _, pc := range chars {
		id, ok := mapping.ShapeAt(pc.pos)
		if id != curID || ok != curOK {
			flush()
			curID, curOK = id, ok
		}
		run = append(run, pc.ch)
	}
	flush()

	return result.String()
}
