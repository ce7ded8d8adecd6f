package doc

import "strings"

// Table is a reconstructed table: a Rows×Cols grid of decoded cell text
// plus the merged-cell spans that survived reconstruction.
type Table struct {
	Rows  int        `json:"rows"`
	Cols  int        `json:"cols"`
	Cells [][]string `json:"cells"`
	Spans []CellSpan `json:"spans,omitempty"`
}

// CellSpan marks a merged region anchored at (Row, Col). Only spans wider
// or taller than one cell are recorded.
type CellSpan struct {
	Row     int `json:"row"`
	Col     int `json:"col"`
	RowSpan int `json:"row_span"`
	ColSpan int `json:"col_span"`
}

// ToMarkdown renders the table as a GFM pipe table. Cells covered by a
// merged region are omitted from their row; the anchor cell keeps the
// content. 구분선은 첫 행 다음에 출력된다.
func (t *Table) ToMarkdown() string {
	skip := make(map[[2]int]bool)
	for _, s := range t.Spans {
		for r := 0; r < s.RowSpan; r++ {
			for c := 0; c < s.ColSpan; c++ {
				if r == 0 && c == 0 {
					continue
				}
				skip[[2]int{s.Row + r, s.Col + c}] = true
			}
		}
	}

	var md strings.Builder
	for rowIdx, row := range t.Cells {
		content := make([]string, 0, len(row))
		for colIdx, cell := range row {
			if skip[[2]int{rowIdx, colIdx}] {
				continue
			}
			text := strings.ReplaceAll(cell, "|", "\\|")
			text = strings.ReplaceAll(text, "\n", " ")
			content = append(content, strings.TrimSpace(text))
		}
		md.WriteString("| " + strings.Join(content, " | ") + " |\n")

		if rowIdx == 0 {
			sep := make([]string, len(content))
			for i := range sep {
				sep[i] = "---"
			}
			md.WriteString("| " + strings.Join(sep, " | ") + " |\n")
		}
	}
	return md.String()
}
