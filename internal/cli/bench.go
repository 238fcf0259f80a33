package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/apps4uco/sailfish/internal/config"
	"github.com/apps4uco/sailfish/render"
)

// benchCmd represents the bench command
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure demo page render throughput",
	Long: `Bench renders the page repeatedly into one reused buffer and reports
time per render and throughput. Page data follows the same --data
resolution as the render command.

Examples:
  sailfish bench                      # default iteration count
  sailfish bench -n 1000000           # a longer run
  sailfish bench --data page.yaml     # bench your own page data`,
	RunE: runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)

	addPageDataFlag(benchCmd.Flags(), "bench.data")
	benchCmd.Flags().IntP("iterations", "n", 100000, "number of renders to time")
	viper.BindPFlag("bench.iterations", benchCmd.Flags().Lookup("iterations"))
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := newLogger(cfg).WithComponent("bench")

	page, err := loadPage(cfg.Bench.Data)
	if err != nil {
		return err
	}

	buf := render.NewBuffer()
	if err := page.RenderTo(buf); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	size := buf.Len()
	iterations := cfg.Bench.Iterations

	start := time.Now()
	for i := 0; i < iterations; i++ {
		buf.Clear()
		if err := page.RenderTo(buf); err != nil {
			return fmt.Errorf("render page: %w", err)
		}
	}
	elapsed := time.Since(start)

	perRender := elapsed / time.Duration(iterations)
	throughput := float64(size) * float64(iterations) / elapsed.Seconds() / (1 << 20)

	p := message.NewPrinter(language.English)
	p.Fprintf(cmd.OutOrStdout(), "%d renders of a %d byte page in %v\n", iterations, size, elapsed.Round(time.Millisecond))
	p.Fprintf(cmd.OutOrStdout(), "%v per render, %.1f MiB/s\n", perRender, throughput)

	logger.Debug("bench complete", "iterations", iterations, "elapsed", elapsed.String())
	return nil
}
