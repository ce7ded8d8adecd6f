package cli

import (
	"fmt"
	"os"

	"github.com/roboco-io/hwp2mdm/internal/hwp"
	"github.com/spf13/cobra"
)

var textOutput string

var textCmd = &cobra.Command{
	Use:   "text <file>",
	Short: "본문 텍스트만 추출",
	Long: `HWP 문서에서 서식이 적용된 본문 텍스트만 추출합니다.

표 셀의 텍스트도 문단으로 함께 나오며, 이미지는 무시합니다.

예시:
  hwp2mdm text document.hwp
  hwp2mdm text document.hwp -o document.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runText,
}

func init() {
	textCmd.Flags().StringVarP(&textOutput, "output", "o", "", "출력 파일 경로 (기본: stdout)")

	rootCmd.AddCommand(textCmd)
}

func runText(cmd *cobra.Command, args []string) error {
	p, err := hwp.Open(args[0])
	if err != nil {
		return err
	}
	defer p.Close()

	text := p.ExtractText()

	if textOutput == "" {
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	}

	if err := os.WriteFile(textOutput, []byte(text+"\n"), 0644); err != nil {
		return fmt.Errorf("파일 저장 실패: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "텍스트 추출 완료: %s\n", textOutput)
	return nil
}
