package hwp

import "github.com/roboco-io/hwp2mdm/internal/doc"

// 표 재구성 상태. TABLE 레코드가 표를 열고, 셀이 다 차거나 새 표가
// 시작되거나 스캔이 끝나면 닫힌다.
type tableState int

const (
	tableIdle tableState = iota
	tableOpen
)

// tableAssembler detects table boundaries in a record scan and assembles
// row-major cell grids with merge spans.
type tableAssembler struct {
	state     tableState
	rows      int
	cols      int
	cells     []string
	spans     []doc.CellSpan
	cellIndex int
	out       []doc.Table
}

func (a *tableAssembler) feed(rec Record) {
	switch rec.Tag {
	case TagTable:
		a.close()
		a.open(rec.Data)
	case TagListHeader:
		if a.state == tableOpen {
			a.addCellSpan(rec.Data)
		}
	case TagParaText:
		if a.state == tableOpen {
			a.cells = append(a.cells, DecodeParaText(rec.Data))
			if len(a.cells) >= a.rows*a.cols {
				a.close()
			}
		}
	}
}

func (a *tableAssembler) open(data []byte) {
	rows, ok1 := readU16(data, 4)
	cols, ok2 := readU16(data, 6)
	if !ok1 || !ok2 || rows == 0 || cols == 0 {
		return
	}
	a.state = tableOpen
	a.rows = int(rows)
	a.cols = int(cols)
	a.cells = nil
	a.spans = nil
	a.cellIndex = 0
}

// addCellSpan records the merge span of the next cell. 병합되지 않은
// 셀의 LIST_HEADER도 인덱스는 하나 소비한다.
func (a *tableAssembler) addCellSpan(data []byte) {
	colSpan, ok1 := readU16(data, 22)
	rowSpan, ok2 := readU16(data, 24)
	if ok1 && ok2 {
		cs := int(colSpan)
		rs := int(rowSpan)
		if cs < 1 {
			cs = 1
		}
		if rs < 1 {
			rs = 1
		}
		if cs > 1 || rs > 1 {
			a.spans = append(a.spans, doc.CellSpan{
				Row:     a.cellIndex / a.cols,
				Col:     a.cellIndex % a.cols,
				RowSpan: rs,
				ColSpan: cs,
			})
		}
	}
	a.cellIndex++
}

func (a *tableAssembler) close() {
	if a.state != tableOpen {
		return
	}
	a.out = append(a.out, doc.Table{
		Rows:  a.rows,
		Cols:  a.cols,
		Cells: organizeCells(a.cells, a.rows, a.cols),
		Spans: a.spans,
	})
	a.state = tableIdle
	a.cells = nil
	a.spans = nil
	a.cellIndex = 0
}

func (a *tableAssembler) finish() []doc.Table {
	a.close()
	return a.out
}

// organizeCells partitions a flat cell list row-major into a rows×cols
// grid. 모자라는 칸은 빈 문자열로 채운다.
func organizeCells(cells []string, rows, cols int) [][]string {
	grid := make([][]string, rows)
	for r := 0; r < rows; r++ {
		grid[r] = make([]string, cols)
		for c := 0; c < cols; c++ {
			if idx := r*cols + c; idx < len(cells) {
				grid[r][c] = cells[idx]
			}
		}
	}
	return grid
}

// AssembleTables reconstructs every table in one section's record list.
func AssembleTables(records []Record) []doc.Table {
	a := &tableAssembler{}
	for _, rec := range records {
		a.feed(rec)
	}
	return a.finish()
}
