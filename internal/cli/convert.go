package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/roboco-io/hwp2mdm/internal/config"
	"github.com/roboco-io/hwp2mdm/internal/doc"
	"github.com/roboco-io/hwp2mdm/internal/hwp"
	"github.com/roboco-io/hwp2mdm/internal/llm"
	"github.com/spf13/cobra"
)

var (
	convertOutput      string
	convertFormat      string
	convertExtractImgs bool
	convertPolish      bool
	convertProvider    string
	convertModel       string
	convertVerbose     bool
	convertQuiet       bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "HWP 문서를 MDX/Markdown/JSON으로 변환",
	Long: `HWP 5.0 문서를 변환합니다.

기본 형식은 MDX이며, 같은 이름의 .mdm 리소스 매니페스트를 함께 만듭니다.
--format으로 md(순수 마크다운) 또는 json(구조화 덤프)을 선택할 수 있습니다.
--polish를 사용하면 변환된 마크다운을 LLM으로 한 번 더 다듬습니다.

환경 변수:
  HWP2MDM_POLISH=true    LLM 다듬기 활성화
  HWP2MDM_PROVIDER=xxx   LLM 프로바이더 (anthropic, openai, gemini, ollama)
  HWP2MDM_MODEL=xxx      모델 이름 (프로바이더 자동 감지)

예시:
  hwp2mdm convert document.hwp
  hwp2mdm convert document.hwp --format md -o output.md
  hwp2mdm convert document.hwp --extract-images
  hwp2mdm convert document.hwp --polish --provider anthropic`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "출력 파일 경로 (기본: 입력 파일 위치)")
	convertCmd.Flags().StringVarP(&convertFormat, "format", "f", "mdx", "출력 형식 (mdx, md, json)")
	convertCmd.Flags().BoolVar(&convertExtractImgs, "extract-images", false, "이미지를 assets 디렉토리에 저장")
	convertCmd.Flags().BoolVar(&convertPolish, "polish", false, "LLM으로 마크다운 다듬기")
	convertCmd.Flags().StringVar(&convertProvider, "provider", "", "LLM 프로바이더 (anthropic, openai, gemini, ollama)")
	convertCmd.Flags().StringVar(&convertModel, "model", "", "LLM 모델 이름")
	convertCmd.Flags().BoolVarP(&convertVerbose, "verbose", "v", false, "상세 출력")
	convertCmd.Flags().BoolVarP(&convertQuiet, "quiet", "q", false, "조용한 모드")

	rootCmd.AddCommand(convertCmd)
}

// convertOptions carries one conversion's settings, so the quick-convert
// mode and the convert command share the same path.
type convertOptions struct {
	output        string
	format        string
	extractImages bool
	polish        bool
	provider      string
	model         string
	verbose       bool
	quiet         bool
}

func defaultConvertOptions() convertOptions {
	return convertOptions{format: "mdx"}
}

func runConvert(cmd *cobra.Command, args []string) error {
	opts := convertOptions{
		output:        convertOutput,
		format:        convertFormat,
		extractImages: convertExtractImgs,
		polish:        convertPolish || config.GetEnvBool("HWP2MDM_POLISH"),
		provider:      convertProvider,
		model:         convertModel,
		verbose:       convertVerbose,
		quiet:         convertQuiet,
	}
	// 플래그가 없으면 환경 변수로 채운다.
	if opts.provider == "" {
		opts.provider = os.Getenv("HWP2MDM_PROVIDER")
	}
	if opts.model == "" {
		opts.model = os.Getenv("HWP2MDM_MODEL")
	}
	return convertFile(cmd, args[0], opts)
}

func convertFile(cmd *cobra.Command, inputPath string, opts convertOptions) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("파일을 찾을 수 없습니다: %s", inputPath)
	}

	p, err := openParser(inputPath, opts.verbose)
	if err != nil {
		return err
	}
	defer p.Close()

	d, err := p.Parse()
	if err != nil {
		return fmt.Errorf("문서 파싱 실패: %w", err)
	}

	if !opts.quiet && opts.verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "입력 파일: %s\n", inputPath)
		fmt.Fprintf(cmd.ErrOrStderr(), "버전: %s, 섹션 %d개, 표 %d개, 이미지 %d개\n",
			d.Metadata.Version, d.Metadata.SectionCount, len(d.Tables), len(d.Images))
	}

	outPath := opts.output
	if outPath == "" {
		outPath = replaceExt(inputPath, "."+opts.format)
	}

	var output string
	switch opts.format {
	case "json":
		data, err := json.MarshalIndent(jsonDocument(d), "", "  ")
		if err != nil {
			return fmt.Errorf("JSON 직렬화 실패: %w", err)
		}
		output = string(data)

	case "md", "mdx":
		body := d.ToMarkdown()
		if opts.polish {
			body, err = polishMarkdown(cmd, body, opts)
			if err != nil {
				return fmt.Errorf("마크다운 다듬기 실패: %w", err)
			}
		}
		if opts.format == "mdx" {
			output = d.FrontMatter() + body
		} else {
			output = body
		}

	default:
		return fmt.Errorf("지원하지 않는 출력 형식: %s", opts.format)
	}

	if err := os.WriteFile(outPath, []byte(output), 0644); err != nil {
		return fmt.Errorf("파일 저장 실패: %w", err)
	}

	// MDX에는 리소스 매니페스트를 같이 쓴다.
	if opts.format == "mdx" {
		manifestPath := replaceExt(outPath, ".mdm")
		manifest, err := json.MarshalIndent(d.BuildManifest(filepath.Base(inputPath)), "", "  ")
		if err != nil {
			return fmt.Errorf("매니페스트 직렬화 실패: %w", err)
		}
		if err := os.WriteFile(manifestPath, manifest, 0644); err != nil {
			return fmt.Errorf("매니페스트 저장 실패: %w", err)
		}
	}

	if opts.extractImages && len(d.Images) > 0 {
		assetsDir := filepath.Join(filepath.Dir(outPath), "assets")
		if err := writeAssets(assetsDir, d.Images); err != nil {
			return err
		}
		if !opts.quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "이미지 %d개 저장됨: %s\n", len(d.Images), assetsDir)
		}
	}

	if !opts.quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "변환 완료: %s\n", outPath)
	}
	return nil
}

// openParser opens the document, with debug logging routed to stderr in
// verbose mode.
func openParser(path string, verbose bool) (*hwp.Parser, error) {
	if !verbose {
		return hwp.Open(path)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	return hwp.OpenWithOptions(path, hwp.Options{Logger: logger})
}

// polishMarkdown runs the configured LLM provider over the markdown body.
func polishMarkdown(cmd *cobra.Command, markdown string, opts convertOptions) (string, error) {
	loader, err := config.NewLoader()
	if err != nil {
		return "", err
	}
	cfg, err := loader.Load()
	if err != nil {
		return "", err
	}

	name := opts.provider
	if name == "" && opts.model != "" {
		name = detectProviderFromModel(opts.model)
	}
	if name == "" {
		name = cfg.DefaultProvider
	}

	reg, err := buildProviderRegistry(cfg)
	if err != nil {
		return "", err
	}
	provider, err := reg.Get(name)
	if err != nil {
		return "", err
	}
	if err := provider.Validate(); err != nil {
		return "", err
	}

	llmOpts := llm.DefaultOptions()
	if cfg.Format.Language != "" {
		llmOpts.Language = cfg.Format.Language
	}
	if cfg.Format.Temperature > 0 {
		llmOpts.Temperature = cfg.Format.Temperature
	}
	if pc, ok := cfg.GetProvider(name); ok && pc.MaxTokens > 0 {
		llmOpts.MaxTokens = pc.MaxTokens
	}
	if opts.model != "" {
		llmOpts.Model = opts.model
	}

	if !opts.quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "마크다운 다듬는 중 (%s)...\n", name)
	}

	result, err := provider.Polish(cmd.Context(), markdown, llmOpts)
	if err != nil {
		return "", err
	}
	if opts.verbose && !opts.quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "토큰 사용량: 입력 %d, 출력 %d\n",
			result.Usage.InputTokens, result.Usage.OutputTokens)
	}
	return result.Markdown, nil
}

// buildProviderRegistry builds every configured provider. 설정에 모르는
// 이름이 있어도 나머지 프로바이더는 쓸 수 있어야 하므로 건너뛴다.
func buildProviderRegistry(cfg *config.Config) (*llm.Registry, error) {
	reg := llm.NewRegistry()
	for name, pc := range cfg.Providers {
		p, err := llm.Build(name, pc.APIKey, pc.Model, pc.Endpoint)
		if err != nil {
			continue
		}
		if err := reg.Register(p); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

func writeAssets(dir string, images []doc.Image) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("assets 디렉토리 생성 실패: %w", err)
	}
	for _, img := range images {
		path := filepath.Join(dir, img.Name)
		if err := os.WriteFile(path, img.Data, 0644); err != nil {
			return fmt.Errorf("이미지 저장 실패 (%s): %w", img.Name, err)
		}
	}
	return nil
}

type jsonTable struct {
	Rows     int        `json:"rows"`
	Cols     int        `json:"cols"`
	Cells    [][]string `json:"cells"`
	Markdown string     `json:"markdown"`
}

type jsonImage struct {
	Name   string `json:"name"`
	Format string `json:"format"`
	Size   int    `json:"size"`
}

type jsonOutput struct {
	Metadata doc.Metadata `json:"metadata"`
	Content  string       `json:"content"`
	Tables   []jsonTable  `json:"tables"`
	Images   []jsonImage  `json:"images"`
}

// jsonDocument flattens a parsed document for the json output format.
// 표는 셀 격자와 마크다운 렌더링을 함께 담는다.
func jsonDocument(d *doc.Document) jsonOutput {
	out := jsonOutput{
		Metadata: d.Metadata,
		Content:  d.Content,
		Tables:   make([]jsonTable, 0, len(d.Tables)),
		Images:   make([]jsonImage, 0, len(d.Images)),
	}
	for i := range d.Tables {
		t := &d.Tables[i]
		out.Tables = append(out.Tables, jsonTable{
			Rows:     t.Rows,
			Cols:     t.Cols,
			Cells:    t.Cells,
			Markdown: t.ToMarkdown(),
		})
	}
	for _, img := range d.Images {
		out.Images = append(out.Images, jsonImage{
			Name:   img.Name,
			Format: img.Format,
			Size:   img.Size,
		})
	}
	return out
}
