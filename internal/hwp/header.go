package hwp

import (
	"encoding/binary"
	"fmt"
)

// FileFlags는 FileHeader 36번 오프셋의 속성 워드를 비트별로 풀어놓은 것이다.
type FileFlags struct {
	Compressed           bool
	Encrypted            bool
	Distributed          bool
	ScriptSaved          bool
	DRMProtected         bool
	XMLTemplate          bool
	History              bool
	Signature            bool
	CertificateEncrypted bool
	CertificateDRM       bool
	CCL                  bool
	MobileOptimized      bool
	PrivateInfoSecurity  bool
	TrackChanges         bool
	KOGL                 bool
	VideoControl         bool
	OrderFieldControl    bool
}

// DefaultFileFlags returns the assumption used when the FileHeader stream
// is missing or too short: 본문 압축만 켜진 상태.
func DefaultFileFlags() FileFlags {
	return FileFlags{Compressed: true}
}

// ParseFileFlags decodes a 4-byte little-endian flags word.
// 4바이트 미만이면 기본값을 돌려준다.
func ParseFileFlags(data []byte) FileFlags {
	if len(data) < 4 {
		return DefaultFileFlags()
	}
	word := binary.LittleEndian.Uint32(data)
	return FileFlags{
		Compressed:           word&0x1 != 0,
		Encrypted:            word&0x2 != 0,
		Distributed:          word&0x4 != 0,
		ScriptSaved:          word&0x8 != 0,
		DRMProtected:         word&0x10 != 0,
		XMLTemplate:          word&0x20 != 0,
		History:              word&0x40 != 0,
		Signature:            word&0x80 != 0,
		CertificateEncrypted: word&0x100 != 0,
		CertificateDRM:       word&0x200 != 0,
		CCL:                  word&0x400 != 0,
		MobileOptimized:      word&0x800 != 0,
		PrivateInfoSecurity:  word&0x1000 != 0,
		TrackChanges:         word&0x2000 != 0,
		KOGL:                 word&0x4000 != 0,
		VideoControl:         word&0x8000 != 0,
		OrderFieldControl:    word&0x10000 != 0,
	}
}

// HeaderFlags extracts the flags word from a full FileHeader stream.
func HeaderFlags(header []byte) FileFlags {
	if len(header) < 40 {
		return DefaultFileFlags()
	}
	return ParseFileFlags(header[36:40])
}

// Version은 FileHeader 32번 오프셋의 파일 버전이다.
// 낮은 주소가 하위 구성요소 (revision, build, minor, major 순으로 저장).
type Version struct {
	Major    uint8
	Minor    uint8
	Build    uint8
	Revision uint8
}

// String returns the version in "5.0.3.0" form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Build, v.Revision)
}

// ParseVersion reads the version field from a FileHeader stream.
// 헤더가 36바이트보다 짧으면 버전을 알 수 없다.
func ParseVersion(header []byte) (Version, bool) {
	if len(header) < 36 {
		return Version{}, false
	}
	return Version{
		Revision: header[32],
		Build:    header[33],
		Minor:    header[34],
		Major:    header[35],
	}, true
}

// FormatVersion builds the metadata version string, "Unknown" when the
// header is absent or truncated.
func FormatVersion(header []byte) string {
	v, ok := ParseVersion(header)
	if !ok {
		return "Unknown"
	}
	return "HWP " + v.String()
}
