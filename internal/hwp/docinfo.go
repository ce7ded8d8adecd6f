package hwp

// CollectCharShapes walks decoded DocInfo records and indexes CHAR_SHAPE
// entries by ordinal. BodyText의 문단 글자 모양 매핑이 이 순번을 참조한다.
// 해석에 실패한 레코드도 순번은 소비하므로 뒤쪽 ID가 밀리지 않는다.
func CollectCharShapes(records []Record) map[uint32]CharShape {
	shapes := make(map[uint32]CharShape)
	var ord uint32
	for _, rec := range records {
		if rec.Tag != TagCharShape {
			continue
		}
		if shape, ok := ParseCharShape(rec.Data); ok {
			shapes[ord] = shape
		}
		ord++
	}
	return shapes
}
