package hwp

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/richardlehane/msoleps"

	"github.com/roboco-io/hwp2mdm/internal/doc"
)

// SummaryInfo returns the \x05HwpSummaryInformation property set stream.
// 이름 첫 글자가 제어 문자라 디렉터리 엔트리의 Initial로 찾는다.
func (c *Container) SummaryInfo() ([]byte, error) {
	for _, entry := range c.doc.File {
		if !msoleps.IsMSOLEPS(entry.Initial) {
			continue
		}
		return c.ReadStream(streamPath(entry))
	}
	return nil, fmt.Errorf("스트림을 찾을 수 없습니다: %s", StreamSummaryInfo)
}

// fillSummaryInfo decodes the summary property set and copies the fields
// we surface. 스트림이 없거나 깨져 있으면 메타데이터는 비워 둔다.
func (p *Parser) fillSummaryInfo(md *doc.Metadata) {
	data, err := p.c.SummaryInfo()
	if err != nil {
		return
	}
	props := msoleps.New()
	if err := props.Reset(bytes.NewReader(data)); err != nil {
		p.log.Debug("요약 정보 해석 실패", "error", err)
		return
	}
	for _, prop := range props.Property {
		val := prop.String()
		if val == "" {
			continue
		}
		name := strings.ToLower(prop.Name)
		switch {
		case name == "title":
			md.Title = val
		case name == "subject":
			md.Subject = val
		case name == "author":
			md.Author = val
		case name == "keywords":
			md.Keywords = val
		case strings.Contains(name, "create"):
			md.Created = val
		case strings.Contains(name, "save"):
			md.Modified = val
		}
	}
}
