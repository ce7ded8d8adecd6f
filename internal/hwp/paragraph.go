package hwp

// 문단 재구성 상태. PARA_HEADER가 경계를 열고, 다음 경계나 스캔 끝에서
// 모아둔 텍스트와 매핑이 한꺼번에 조판된다.
type paragraphState int

const (
	paraIdle paragraphState = iota
	paraOpen
)

// paragraphAssembler rebuilds formatted paragraphs from a flat record
// sequence.
type paragraphAssembler struct {
	shapes  map[uint32]CharShape
	state   paragraphState
	text    []byte
	mapping CharShapeMapping
	out     []string
}

func newParagraphAssembler(shapes map[uint32]CharShape) *paragraphAssembler {
	return &paragraphAssembler{shapes: shapes}
}

func (a *paragraphAssembler) feed(rec Record) {
	switch rec.Tag {
	case TagParaHeader:
		a.flush()
		a.state = paraOpen
	case TagParaText:
		a.text = rec.Data
		a.state = paraOpen
	case TagParaCharShape:
		if m, ok := ParseCharShapeMapping(rec.Data); ok {
			a.mapping = m
		}
		a.state = paraOpen
	}
}

// flush finalizes the pending paragraph. 빈 문단은 버린다.
func (a *paragraphAssembler) flush() {
	if a.state == paraIdle {
		return
	}
	if len(a.text) > 0 {
		if s := FormatParaText(a.text, a.mapping, a.shapes); s != "" {
			a.out = append(a.out, s)
		}
	}
	a.text = nil
	a.mapping = nil
	a.state = paraIdle
}

func (a *paragraphAssembler) finish() []string {
	a.flush()
	return a.out
}

// AssembleParagraphs rebuilds the formatted paragraphs of one section
// from its decoded records.
func AssembleParagraphs(records []Record, shapes map[uint32]CharShape) []string {
	a := newParagraphAssembler(shapes)
	for _, rec := range records {
		a.feed(rec)
	}
	return a.finish()
}
