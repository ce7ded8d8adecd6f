// Package cli implements the hwp2mdm command line interface.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var version = "dev"

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "hwp2mdm [file]",
	Short: "HWP 문서를 Markdown/MDX로 변환",
	Long: `hwp2mdm은 HWP 5.0 문서를 Markdown/MDX로 변환합니다.

파일 경로를 바로 넘기면 기본 옵션(MDX + 리소스 매니페스트)으로 변환합니다:
  hwp2mdm document.hwp

세부 옵션은 하위 명령을 사용하세요:
  hwp2mdm convert document.hwp --format md
  hwp2mdm analyze document.hwp
  hwp2mdm text document.hwp
  hwp2mdm images document.hwp -o ./assets
  hwp2mdm batch "docs/*.hwp"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		// 빠른 변환 모드: convert의 기본 옵션과 동일하게 동작한다.
		return convertFile(cmd, args[0], defaultConvertOptions())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "버전 정보 표시",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "hwp2mdm %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// detectProviderFromModel maps a model name to its provider. 모르는 모델
// 이름은 로컬 Ollama 모델로 간주한다.
func detectProviderFromModel(model string) string {
	if model == "" {
		return "anthropic"
	}

	m := strings.ToLower(model)
	switch {
	case strings.HasPrefix(m, "claude"):
		return "anthropic"
	case strings.HasPrefix(m, "gpt"), strings.HasPrefix(m, "o1-"), strings.HasPrefix(m, "o3-"):
		return "openai"
	case strings.HasPrefix(m, "gemini"):
		return "gemini"
	default:
		return "ollama"
	}
}
