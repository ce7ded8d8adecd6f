// Package hwp parses HWP 5.x binary documents: OLE 복합 파일 컨테이너에서
// 스트림을 읽어 텍스트, 표, 이미지, 메타데이터를 재구성한다.
package hwp

// HWP 5.x 파일 포맷 상수 정의
// 참조: https://cdn.hancom.com/link/docs/한글문서파일형식_5.0_revision1.3.pdf

const (
	// FileHeader 시그니처
	Signature = "HWP Document File"

	// FileHeader 크기 (고정)
	FileHeaderSize = 256
)

// 스트림 이름
const (
	StreamFileHeader  = "FileHeader"
	StreamDocInfo     = "DocInfo"
	StreamBodyText    = "BodyText"
	StreamSummaryInfo = "\x05HwpSummaryInformation"
	StreamBinData     = "BinData"
	StreamPrvText     = "PrvText"
	StreamPrvImage    = "PrvImage"
	StreamDocOptions  = "DocOptions"
	StreamScripts     = "Scripts"
)

// 레코드 태그 ID (HWPTAG_*)
// 참조: HWP 5.0 명세서 4장 레코드 구조
const (
	// DocInfo 레코드 태그 (0x0010 ~ 0x003F)
	TagDocumentProperties Tag = 0x0010 // 문서 속성
	TagIDMappings         Tag = 0x0011 // ID 매핑 테이블 크기
	TagBinData            Tag = 0x0012 // 바이너리 데이터
	TagFaceName           Tag = 0x0013 // 글꼴
	TagBorderFill         Tag = 0x0014 // 테두리/배경
	TagCharShape          Tag = 0x0015 // 글자 모양
	TagTabDef             Tag = 0x0016 // 탭 정의
	TagNumbering          Tag = 0x0017 // 문단 번호
	TagBullet             Tag = 0x0018 // 글머리표
	TagParaShape          Tag = 0x0019 // 문단 모양
	TagStyle              Tag = 0x001A // 스타일
	TagDocData            Tag = 0x001B // 문서 데이터
	TagDistributeDocData  Tag = 0x001C // 배포용 문서 데이터
	TagCompatibleDocument Tag = 0x001E // 호환 문서
	TagLayoutCompatible   Tag = 0x001F // 레이아웃 호환

	// Section/Body 레코드 태그 (0x0040 ~ 0x007F)
	TagParaHeader     Tag = 0x0042 // 문단 헤더
	TagParaText       Tag = 0x0043 // 문단 텍스트
	TagParaCharShape  Tag = 0x0044 // 문단 글자 모양
	TagParaLineSeg    Tag = 0x0045 // 문단 레이아웃
	TagParaRangeTag   Tag = 0x0046 // 문단 범위 태그
	TagCtrlHeader     Tag = 0x0047 // 컨트롤 헤더
	TagListHeader     Tag = 0x0048 // 리스트 헤더
	TagPageDef        Tag = 0x0049 // 페이지 정의
	TagFootnoteShape  Tag = 0x004A // 각주 모양
	TagPageBorderFill Tag = 0x004B // 페이지 테두리/배경
	TagShapeComponent Tag = 0x004C // 그리기 개체
	TagTable          Tag = 0x004D // 표
	TagShapePicture   Tag = 0x0055 // 그림
	TagShapeContainer Tag = 0x0056 // 컨테이너
	TagCtrlData       Tag = 0x0057 // 컨트롤 데이터
	TagEqEdit         Tag = 0x0058 // 수식
)

// PARA_TEXT 특수 문자 코드
const (
	CharTab       = 0x0009 // 탭
	CharLineBreak = 0x000A // 줄 나눔
	CharParaBreak = 0x000D // 문단 나눔
	CharHyphen    = 0x001E // 하이픈
	CharSpace     = 0x0020 // 공백

	// 14바이트 부가 정보가 뒤따르는 인라인 컨트롤
	CharCtrlInline  = 0x0001 // 인라인 컨트롤 시작
	CharCtrlSection = 0x0003 // 구역/단 정의
	CharCtrlField   = 0x0004 // 필드 시작
	CharCtrlTable   = 0x000B // 표
	CharCtrlDrawing = 0x000C // 그리기 개체
)
