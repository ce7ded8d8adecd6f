package hwp

import (
	"encoding/binary"
	"strings"
	"unicode/utf16"
)

// DecodeParaText decodes a PARA_TEXT payload (UTF-16LE) into plain text.
// 제어 문자는 공백 계열로 바꾸거나 건너뛰고, 인라인 컨트롤은 뒤따르는
// 14바이트 부가 정보까지 함께 소비한다. BMP 범위만 다루며 서러게이트
// 쌍은 재조합하지 않는다.
func DecodeParaText(data []byte) string {
	var text strings.Builder
	i := 0
	for i+1 < len(data) {
		code := binary.LittleEndian.Uint16(data[i:])
		i += 2
		switch {
		case code == CharTab:
			text.WriteByte('\t')
		case code == CharLineBreak, code == CharParaBreak:
			text.WriteByte('\n')
		case code == CharSpace:
			text.WriteByte(' ')
		case code == CharHyphen:
			text.WriteByte('-')
		case code == CharCtrlInline, code == CharCtrlSection, code == CharCtrlField,
			code == CharCtrlTable, code == CharCtrlDrawing:
			i += 14
		case code <= 8, 0x10 <= code && code <= 0x1F:
			// 표시되지 않는 제어 문자
		default:
			if r := rune(code); !utf16.IsSurrogate(r) {
				text.WriteRune(r)
			}
		}
	}
	return text.String()
}

// positionedChar pairs a visible character with its logical position.
// 보이지 않는 제어 문자도 위치는 하나씩 차지하므로 문자 모양 매핑의
// 위치 값과 어긋나지 않는다.
type positionedChar struct {
	pos uint32
	ch  rune
}

func decodeParaTextPositions(data []byte) []positionedChar {
	var chars []positionedChar
	i := 0
	pos := uint32(0)
	for i+1 < len(data) {
		code := binary.LittleEndian.Uint16(data[i:])
		i += 2
		switch {
		case code == CharTab:
			chars = append(chars, positionedChar{pos, '\t'})
			pos++
		case code == CharLineBreak, code == CharParaBreak:
			chars = append(chars, positionedChar{pos, '\n'})
			pos++
		case code == CharSpace:
			chars = append(chars, positionedChar{pos, ' '})
			pos++
		case code == CharHyphen:
			chars = append(chars, positionedChar{pos, '-'})
			pos++
		case code == CharCtrlInline, code == CharCtrlSection, code == CharCtrlField,
			code == CharCtrlTable, code == CharCtrlDrawing:
			i += 14
			pos++
		case code <= 8, 0x10 <= code && code <= 0x1F:
			pos++
		default:
			if r := rune(code); !utf16.IsSurrogate(r) {
				chars = append(chars, positionedChar{pos, r})
			}
			pos++
		}
	}
	return chars
}
