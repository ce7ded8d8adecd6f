package hwp

import (
	"encoding/binary"
	"fmt"
)

// Tag identifies a record type. 레코드 경계에서 한 번만 디코딩하고 이후의
// 모든 분기는 이 타입으로 한다.
type Tag uint16

// String returns the HWPTAG name for known tags.
func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(0x%04X)", uint16(t))
}

var tagNames = map[Tag]string{
	TagDocumentProperties: "DOCUMENT_PROPERTIES",
	TagIDMappings:         "ID_MAPPINGS",
	TagBinData:            "BIN_DATA",
	TagFaceName:           "FACE_NAME",
	TagBorderFill:         "BORDER_FILL",
	TagCharShape:          "CHAR_SHAPE",
	TagTabDef:             "TAB_DEF",
	TagNumbering:          "NUMBERING",
	TagBullet:             "BULLET",
	TagParaShape:          "PARA_SHAPE",
	TagStyle:              "STYLE",
	TagDocData:            "DOC_DATA",
	TagDistributeDocData:  "DISTRIBUTE_DOC_DATA",
	TagCompatibleDocument: "COMPATIBLE_DOCUMENT",
	TagLayoutCompatible:   "LAYOUT_COMPATIBLE",
	TagParaHeader:         "PARA_HEADER",
	TagParaText:           "PARA_TEXT",
	TagParaCharShape:      "PARA_CHAR_SHAPE",
	TagParaLineSeg:        "PARA_LINE_SEG",
	TagParaRangeTag:       "PARA_RANGE_TAG",
	TagCtrlHeader:         "CTRL_HEADER",
	TagListHeader:         "LIST_HEADER",
	TagPageDef:            "PAGE_DEF",
	TagFootnoteShape:      "FOOTNOTE_SHAPE",
	TagPageBorderFill:     "PAGE_BORDER_FILL",
	TagShapeComponent:     "SHAPE_COMPONENT",
	TagTable:              "TABLE",
	TagShapePicture:       "SHAPE_COMPONENT_PICTURE",
	TagShapeContainer:     "SHAPE_COMPONENT_CONTAINER",
	TagCtrlData:           "CTRL_DATA",
	TagEqEdit:             "EQEDIT",
}

// Record는 HWP 스트림의 태그-길이-값 단위. 계층 구조는 Level로만 암시되며
// 해석은 호출자의 몫이다.
type Record struct {
	Tag   Tag
	Level uint16
	Size  uint32
	Data  []byte
}

// 레코드 헤더 비트 배치: tag 10비트, level 10비트, size 12비트.
// size 필드가 0xFFF이면 실제 크기는 뒤따르는 4바이트에 있다.
const extendedSizeFlag = 0xFFF

// DecodeRecords decodes records from a flat buffer until it is exhausted
// or truncated. 잘린 꼬리는 버리고, 그때까지의 레코드와 소비한 바이트 수를
// 돌려준다. 실패하지 않는다.
func DecodeRecords(data []byte) ([]Record, int) {
	var records []Record
	pos := 0
	for pos+4 <= len(data) {
		word := binary.LittleEndian.Uint32(data[pos:])
		tag := Tag(word & 0x3FF)
		level := uint16((word >> 10) & 0x3FF)
		size := (word >> 20) & 0xFFF

		next := pos + 4
		if size == extendedSizeFlag {
			if next+4 > len(data) {
				break
			}
			size = binary.LittleEndian.Uint32(data[next:])
			next += 4
		}
		if next+int(size) > len(data) {
			break
		}

		records = append(records, Record{
			Tag:   tag,
			Level: level,
			Size:  size,
			Data:  data[next : next+int(size)],
		})
		pos = next + int(size)
	}
	return records, pos
}

// 고정 오프셋 필드 읽기. 레코드 페이로드는 신뢰할 수 없으므로 범위를
// 벗어나는 접근은 ok=false로 끝난다.

func readU16(data []byte, off int) (uint16, bool) {
	if off+2 > len(data) {
		return 0, false
	}
	return binary.LittleEndian.Uint16(data[off:]), true
}

func readU32(data []byte, off int) (uint32, bool) {
	if off+4 > len(data) {
		return 0, false
	}
	return binary.LittleEndian.Uint32(data[off:]), true
}
