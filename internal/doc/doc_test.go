package doc

import (
	"strings"
	"testing"
)

func TestTableToMarkdown(t *testing.T) {
	tbl := Table{
		Rows:  2,
		Cols:  2,
		Cells: [][]string{{"이름", "값"}, {"가", "1"}},
	}

	want := "| 이름 | 값 |\n| --- | --- |\n| 가 | 1 |\n"
	if got := tbl.ToMarkdown(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestTableToMarkdown_MergedCells(t *testing.T) {
	// (0,0)에서 두 칸 가로 병합: 덮인 (0,1)은 행에서 빠진다
	tbl := Table{
		Rows:  2,
		Cols:  2,
		Cells: [][]string{{"병합", "숨김"}, {"좌", "우"}},
		Spans: []CellSpan{{Row: 0, Col: 0, RowSpan: 1, ColSpan: 2}},
	}

	want := "| 병합 |\n| --- |\n| 좌 | 우 |\n"
	if got := tbl.ToMarkdown(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestTableToMarkdown_Escaping(t *testing.T) {
	tbl := Table{
		Rows:  1,
		Cols:  2,
		Cells: [][]string{{"a|b", "줄\n바꿈 "}},
	}

	got := tbl.ToMarkdown()
	if !strings.Contains(got, `a\|b`) {
		t.Errorf("Expected escaped pipe, got %q", got)
	}
	if !strings.Contains(got, "줄 바꿈") {
		t.Errorf("Expected newline replaced by space and trimmed, got %q", got)
	}
}

func TestDocumentToMarkdown(t *testing.T) {
	d := &Document{
		Content: "본문 문단",
		Tables: []Table{{
			Rows:  1,
			Cols:  1,
			Cells: [][]string{{"셀"}},
		}},
		Images: []Image{NewImage("BIN0001.png", "png", []byte{1, 2, 3})},
	}

	got := d.ToMarkdown()
	if !strings.HasPrefix(got, "본문 문단\n") {
		t.Errorf("Expected content first, got %q", got)
	}
	if !strings.Contains(got, "| 셀 |") {
		t.Errorf("Expected rendered table, got %q", got)
	}
	if !strings.Contains(got, "![BIN0001.png](assets/BIN0001.png)") {
		t.Errorf("Expected image link, got %q", got)
	}
}

func TestDocumentToMDX(t *testing.T) {
	d := &Document{
		Content: "내용",
		Metadata: Metadata{
			Version: "HWP 5.0.3.0",
			Title:   "제안서",
			Author:  "홍길동",
		},
	}

	got := d.ToMDX()
	if !strings.HasPrefix(got, "---\n") {
		t.Errorf("Expected front matter, got %q", got)
	}
	for _, want := range []string{"title: 제안서", "author: 홍길동", "source_version: HWP 5.0.3.0"} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected %q in front matter, got %q", want, got)
		}
	}
	if !strings.Contains(got, "내용") {
		t.Errorf("Expected body content, got %q", got)
	}
}

func TestBuildManifest(t *testing.T) {
	d := &Document{
		Images: []Image{
			NewImage("BIN0001.png", "png", make([]byte, 10)),
			NewImage("BIN0002.jpeg", "jpeg", make([]byte, 20)),
		},
	}

	m := d.BuildManifest("제안서.hwp")
	if m.Version != "1.0" {
		t.Errorf("Expected manifest version 1.0, got %s", m.Version)
	}
	if m.Source != "제안서.hwp" {
		t.Errorf("Expected source 제안서.hwp, got %s", m.Source)
	}
	if len(m.Resources) != 2 {
		t.Fatalf("Expected 2 resources, got %d", len(m.Resources))
	}

	res, ok := m.Resources["BIN0001.png"]
	if !ok {
		t.Fatal("Missing resource BIN0001.png")
	}
	if res.Type != "image" || res.Format != "png" || res.Src != "assets/BIN0001.png" {
		t.Errorf("Unexpected resource: %+v", res)
	}
}

func TestNewImage(t *testing.T) {
	img := NewImage("BIN0001.png", "png", []byte{1, 2, 3, 4})
	if img.Size != 4 {
		t.Errorf("Expected size 4, got %d", img.Size)
	}
	if img.Format != "png" {
		t.Errorf("Expected format png, got %s", img.Format)
	}
}
