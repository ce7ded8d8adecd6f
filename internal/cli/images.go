package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/roboco-io/hwp2mdm/internal/hwp"
	"github.com/spf13/cobra"
)

var imagesOutput string

var imagesCmd = &cobra.Command{
	Use:   "images <file>",
	Short: "문서에 포함된 이미지 추출",
	Long: `HWP 문서의 BinData 스토리지에서 이미지를 추출합니다.

형식을 식별할 수 있는 자산(JPEG, PNG, GIF, BMP, WMF, EMF, WebP)만
저장합니다.

예시:
  hwp2mdm images document.hwp
  hwp2mdm images document.hwp -o ./assets`,
	Args: cobra.ExactArgs(1),
	RunE: runImages,
}

func init() {
	imagesCmd.Flags().StringVarP(&imagesOutput, "output", "o", "./images", "이미지 저장 디렉토리")

	rootCmd.AddCommand(imagesCmd)
}

func runImages(cmd *cobra.Command, args []string) error {
	p, err := hwp.Open(args[0])
	if err != nil {
		return err
	}
	defer p.Close()

	images := p.ExtractImages()
	if len(images) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "추출할 이미지가 없습니다")
		return nil
	}

	if err := writeAssets(imagesOutput, images); err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, img := range images {
		fmt.Fprintf(w, "%s\t%s\t%d bytes\n", img.Name, img.Format, img.Size)
	}
	w.Flush()

	fmt.Fprintf(cmd.OutOrStdout(), "\n이미지 %d개 저장됨: %s\n", len(images), imagesOutput)
	return nil
}
