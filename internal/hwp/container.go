package hwp

import (
	"bytes"
	"compress/flate"
	"compress/zlib"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/richardlehane/mscfb"
)

// Container reads named streams out of an HWP OLE 복합 파일.
type Container struct {
	file   *os.File
	doc    *mscfb.Reader
	header []byte
	flags  FileFlags
	cache  map[string][]byte
}

// OpenContainer opens path as an OLE compound file and reads the
// FileHeader stream for the storage flags. 복합 파일 자체가 아닐 때만
// 치명적 오류가 난다.
func OpenContainer(path string) (*Container, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("HWP 파일을 열 수 없습니다: %w", err)
	}

	reader, err := mscfb.New(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("OLE2 문서 파싱 실패: %w", err)
	}

	c := &Container{
		file:  f,
		doc:   reader,
		flags: DefaultFileFlags(),
		cache: make(map[string][]byte),
	}
	// FileHeader는 압축되지 않는다. 없으면 기본 플래그를 쓴다.
	if header, err := c.ReadStream(StreamFileHeader); err == nil {
		c.header = header
		c.flags = HeaderFlags(header)
	}
	return c, nil
}

// Close releases the underlying file handle.
func (c *Container) Close() error {
	return c.file.Close()
}

// Flags returns the storage flags read from the file header.
func (c *Container) Flags() FileFlags {
	return c.flags
}

// FileHeader returns the raw FileHeader stream, nil이면 스트림이 없었던 것.
func (c *Container) FileHeader() []byte {
	return c.header
}

// Streams lists every stream path in the container in directory order.
func (c *Container) Streams() []string {
	var names []string
	for _, entry := range c.doc.File {
		if entry.Size == 0 {
			// storage 항목
			continue
		}
		names = append(names, streamPath(entry))
	}
	return names
}

func streamPath(entry *mscfb.File) string {
	if len(entry.Path) == 0 {
		return entry.Name
	}
	return strings.Join(entry.Path, "/") + "/" + entry.Name
}

// ReadStream returns the raw bytes of the named stream. mscfb 엔트리는
// 커서를 한 번만 소비할 수 있어 결과를 캐시한다.
func (c *Container) ReadStream(name string) ([]byte, error) {
	if data, ok := c.cache[name]; ok {
		return data, nil
	}
	for _, entry := range c.doc.File {
		if streamPath(entry) != name {
			continue
		}
		data, err := io.ReadAll(entry)
		if err != nil {
			return nil, fmt.Errorf("스트림 읽기 실패 %s: %w", name, err)
		}
		c.cache[name] = data
		return data, nil
	}
	return nil, fmt.Errorf("스트림을 찾을 수 없습니다: %s", name)
}

// ReadDecompressed reads a stream and inflates it when the container is
// marked compressed.
func (c *Container) ReadDecompressed(name string) ([]byte, error) {
	data, err := c.ReadStream(name)
	if err != nil {
		return nil, err
	}
	if !c.flags.Compressed {
		return data, nil
	}
	return Decompress(data)
}

// SectionCount counts the BodyText section streams.
func (c *Container) SectionCount() int {
	count := 0
	for _, name := range c.Streams() {
		if strings.HasPrefix(name, StreamBodyText+"/Section") {
			count++
		}
	}
	return count
}

// ReadSection reads and decompresses the n-th BodyText section.
func (c *Container) ReadSection(n int) ([]byte, error) {
	return c.ReadDecompressed(fmt.Sprintf("%s/Section%d", StreamBodyText, n))
}

// BinData lists the short names of the streams under the BinData storage.
func (c *Container) BinData() []string {
	var names []string
	for _, name := range c.Streams() {
		if strings.HasPrefix(name, StreamBinData+"/") {
			names = append(names, strings.TrimPrefix(name, StreamBinData+"/"))
		}
	}
	return names
}

// ReadBinData reads one BinData stream, 압축 해제에 실패하면 원본
// 바이트를 그대로 돌려준다.
func (c *Container) ReadBinData(name string) ([]byte, error) {
	data, err := c.ReadStream(StreamBinData + "/" + name)
	if err != nil {
		return nil, err
	}
	if out, err := Decompress(data); err == nil {
		return out, nil
	}
	return data, nil
}

// Decompress inflates a compressed stream payload. zlib 프레이밍을 먼저
// 시도하고, 결과가 비었거나 프레이밍이 깨져 있으면 raw DEFLATE로 다시
// 시도한다.
func Decompress(data []byte) ([]byte, error) {
	if zr, err := zlib.NewReader(bytes.NewReader(data)); err == nil {
		out, rerr := io.ReadAll(zr)
		zr.Close()
		if rerr == nil && len(out) > 0 {
			return out, nil
		}
	}

	fr := flate.NewReader(bytes.NewReader(data))
	defer fr.Close()
	out, err := io.ReadAll(fr)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress (tried zlib and deflate): %w", err)
	}
	return out, nil
}
