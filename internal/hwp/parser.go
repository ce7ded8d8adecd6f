package hwp

import (
	"io"
	"log/slog"
	"strings"

	"github.com/roboco-io/hwp2mdm/internal/doc"
)

// Options configures a Parser.
type Options struct {
	// Logger receives debug diagnostics for absorbed conditions
	// (건너뛴 스트림, 압축 해제 폴백 등). nil이면 버린다.
	Logger *slog.Logger
}

// Parser turns one HWP file into a doc.Document. 문서 하나당 파서 하나,
// 고루틴 간 공유는 하지 않는다.
type Parser struct {
	c   *Container
	log *slog.Logger
}

// Open opens an HWP document for parsing.
func Open(path string) (*Parser, error) {
	return OpenWithOptions(path, Options{})
}

// OpenWithOptions opens an HWP document with explicit options.
func OpenWithOptions(path string, opts Options) (*Parser, error) {
	c, err := OpenContainer(path)
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Parser{c: c, log: logger}, nil
}

// Close releases the underlying file.
func (p *Parser) Close() error {
	return p.c.Close()
}

// Flags exposes the storage flags from the file header.
func (p *Parser) Flags() FileFlags {
	return p.c.Flags()
}

// Parse reads the whole document: 본문 텍스트, 표, 이미지, 메타데이터.
// 컨테이너를 열 수 없었던 경우를 빼면 손상은 흡수되고 결과가 짧아질
// 뿐이다.
func (p *Parser) Parse() (*doc.Document, error) {
	shapes := p.charShapes()

	var paragraphs []string
	var tables []doc.Table
	for i := 0; i < p.c.SectionCount(); i++ {
		data, err := p.c.ReadSection(i)
		if err != nil {
			p.log.Debug("섹션을 건너뜀", "section", i, "error", err)
			continue
		}
		records, _ := DecodeRecords(data)
		paragraphs = append(paragraphs, AssembleParagraphs(records, shapes)...)
		tables = append(tables, AssembleTables(records)...)
	}

	return &doc.Document{
		Content:  strings.Join(paragraphs, "\n\n"),
		Tables:   tables,
		Images:   p.ExtractImages(),
		Metadata: p.Metadata(),
	}, nil
}

// ExtractText returns only the formatted body text.
func (p *Parser) ExtractText() string {
	shapes := p.charShapes()

	var paragraphs []string
	for i := 0; i < p.c.SectionCount(); i++ {
		data, err := p.c.ReadSection(i)
		if err != nil {
			p.log.Debug("섹션을 건너뜀", "section", i, "error", err)
			continue
		}
		records, _ := DecodeRecords(data)
		paragraphs = append(paragraphs, AssembleParagraphs(records, shapes)...)
	}
	return strings.Join(paragraphs, "\n\n")
}

// ExtractImages pulls every recognizable image out of the BinData storage.
// 형식을 식별하지 못한 자산은 버린다.
func (p *Parser) ExtractImages() []doc.Image {
	var images []doc.Image
	for _, name := range p.c.BinData() {
		data, err := p.c.ReadBinData(name)
		if err != nil {
			p.log.Debug("BinData 읽기 실패", "name", name, "error", err)
			continue
		}
		format := SniffImageFormat(data)
		if format == "" {
			p.log.Debug("이미지 형식을 식별하지 못함", "name", name, "size", len(data))
			continue
		}
		images = append(images, doc.NewImage(imageFileName(name, format), format, data))
	}
	return images
}

// Metadata assembles document metadata from the file header, the stream
// directory and the summary information stream.
func (p *Parser) Metadata() doc.Metadata {
	md := doc.Metadata{
		Version:      FormatVersion(p.c.FileHeader()),
		SectionCount: p.c.SectionCount(),
		BinDataCount: len(p.c.BinData()),
		Compressed:   p.c.Flags().Compressed,
		Encrypted:    p.c.Flags().Encrypted,
	}
	p.fillSummaryInfo(&md)
	return md
}

// Structure describes the container layout for the analyze command.
type Structure struct {
	TotalStreams int      `json:"total_streams"`
	Streams      []string `json:"streams"`
	SectionCount int      `json:"section_count"`
	BinDataCount int      `json:"bin_data_count"`
	Compressed   bool     `json:"compressed"`
	Encrypted    bool     `json:"encrypted"`
}

// Analyze reports the stream layout without decoding the body.
func (p *Parser) Analyze() Structure {
	streams := p.c.Streams()
	return Structure{
		TotalStreams: len(streams),
		Streams:      streams,
		SectionCount: p.c.SectionCount(),
		BinDataCount: len(p.c.BinData()),
		Compressed:   p.c.Flags().Compressed,
		Encrypted:    p.c.Flags().Encrypted,
	}
}

// charShapes decodes the DocInfo stream into the shape table used for
// run formatting. DocInfo가 없으면 빈 테이블로 진행한다.
func (p *Parser) charShapes() map[uint32]CharShape {
	data, err := p.c.ReadDecompressed(StreamDocInfo)
	if err != nil {
		p.log.Debug("DocInfo 없이 진행", "error", err)
		return map[uint32]CharShape{}
	}
	records, _ := DecodeRecords(data)
	return CollectCharShapes(records)
}
