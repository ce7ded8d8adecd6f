package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/roboco-io/hwp2mdm/internal/hwp"
	"github.com/spf13/cobra"
)

var analyzeJSON bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "HWP 문서 구조 분석",
	Long: `HWP 문서의 내부 구조를 분석합니다.

스트림 목록과 섹션/BinData 수, 압축·암호화 여부를 표시합니다.
본문 레코드는 해석하지 않으므로 암호화된 파일에도 쓸 수 있습니다.

예시:
  hwp2mdm analyze document.hwp
  hwp2mdm analyze document.hwp --json`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "JSON으로 출력")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	p, err := hwp.Open(inputPath)
	if err != nil {
		return err
	}
	defer p.Close()

	st := p.Analyze()

	if analyzeJSON {
		data, err := json.MarshalIndent(st, "", "  ")
		if err != nil {
			return fmt.Errorf("JSON 직렬화 실패: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	md := p.Metadata()
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "파일: %s\n", inputPath)
	fmt.Fprintf(out, "버전: %s\n\n", md.Version)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "스트림 수\t%d\n", st.TotalStreams)
	fmt.Fprintf(w, "섹션 수\t%d\n", st.SectionCount)
	fmt.Fprintf(w, "BinData 수\t%d\n", st.BinDataCount)
	fmt.Fprintf(w, "압축\t%s\n", koreanBool(st.Compressed))
	fmt.Fprintf(w, "암호화\t%s\n", koreanBool(st.Encrypted))
	w.Flush()

	fmt.Fprintln(out, "\n스트림 목록:")
	for _, name := range st.Streams {
		fmt.Fprintf(out, "  %s\n", name)
	}

	return nil
}

func koreanBool(b bool) string {
	if b {
		return "예"
	}
	return "아니오"
}
