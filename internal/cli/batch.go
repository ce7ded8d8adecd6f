package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/roboco-io/hwp2mdm/internal/hwp"
	"github.com/spf13/cobra"
)

var (
	batchFormat  string
	batchWorkers int
)

var batchCmd = &cobra.Command{
	Use:   "batch <pattern>",
	Short: "여러 HWP 문서를 한꺼번에 변환",
	Long: `글롭 패턴에 맞는 HWP 문서를 모두 변환합니다.

파일마다 섹션/스트림 수와 압축·암호화 여부를 보고하고,
마지막에 성공/실패 집계를 출력합니다. 출력 파일은 각 입력 파일과
같은 위치에 만들어집니다.

예시:
  hwp2mdm batch "docs/*.hwp"
  hwp2mdm batch "docs/*.hwp" --format md --workers 8`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchFormat, "format", "f", "mdx", "출력 형식 (mdx, md, json)")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 4, "동시 변환 개수")

	rootCmd.AddCommand(batchCmd)
}

type batchResult struct {
	path    string
	summary string
	err     error
}

func runBatch(cmd *cobra.Command, args []string) error {
	matches, err := filepath.Glob(args[0])
	if err != nil {
		return fmt.Errorf("잘못된 글롭 패턴: %w", err)
	}

	var files []string
	for _, m := range matches {
		if strings.EqualFold(filepath.Ext(m), ".hwp") {
			files = append(files, m)
		}
	}
	if len(files) == 0 {
		return fmt.Errorf("패턴에 맞는 HWP 파일이 없습니다: %s", args[0])
	}

	workers := batchWorkers
	if workers < 1 {
		workers = 1
	}

	// 결과는 입력 순서대로 보고한다.
	results := make([]batchResult, len(files))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, path := range files {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i] = convertOne(cmd, path)
		}(i, path)
	}
	wg.Wait()

	out := cmd.OutOrStdout()
	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			fmt.Fprintf(out, "✗ %s: %v\n", r.path, r.err)
			continue
		}
		fmt.Fprintf(out, "✓ %s: %s\n", r.path, r.summary)
	}
	fmt.Fprintf(out, "\n%d개 변환, %d개 실패\n", len(files)-failed, failed)

	if failed > 0 {
		return fmt.Errorf("%d개 파일 변환 실패", failed)
	}
	return nil
}

func convertOne(cmd *cobra.Command, path string) batchResult {
	p, err := hwp.Open(path)
	if err != nil {
		return batchResult{path: path, err: err}
	}
	st := p.Analyze()
	p.Close()

	opts := defaultConvertOptions()
	opts.format = batchFormat
	opts.quiet = true
	if err := convertFile(cmd, path, opts); err != nil {
		return batchResult{path: path, err: err}
	}

	summary := fmt.Sprintf("섹션 %d개, 스트림 %d개", st.SectionCount, st.TotalStreams)
	var marks []string
	if st.Compressed {
		marks = append(marks, "압축")
	}
	if st.Encrypted {
		marks = append(marks, "암호화")
	}
	if len(marks) > 0 {
		summary += " [" + strings.Join(marks, ", ") + "]"
	}
	return batchResult{path: path, summary: summary}
}
