package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/apps4uco/sailfish"
	"github.com/apps4uco/sailfish/internal/config"
	"github.com/apps4uco/sailfish/internal/demo"
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the demo page to HTML",
	Long: `Render executes the built-in profile-page template and writes the
finished HTML.

Page data comes from --data, a YAML file with the page's fields; without
it the built-in demo values are used. Output goes to --output, or stdout.

Examples:
  sailfish render                                   # demo data to stdout
  sailfish render --data page.yaml                  # data file to stdout
  sailfish render --data page.yaml -o page.html     # data file to file`,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	addPageDataFlag(renderCmd.Flags(), "render.data")
	renderCmd.Flags().StringP("output", "o", "", "output file (default stdout)")
	viper.BindPFlag("render.output", renderCmd.Flags().Lookup("output"))
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := newLogger(cfg).WithComponent("render")

	page, err := loadPage(cfg.Render.Data)
	if err != nil {
		return err
	}

	out, err := sailfish.RenderString(page)
	if err != nil {
		return fmt.Errorf("render page: %w", err)
	}

	if cfg.Render.Output != "" {
		if err := os.WriteFile(cfg.Render.Output, []byte(out), 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		logger.Info("wrote rendered page", "path", cfg.Render.Output, "bytes", len(out))
		return nil
	}

	_, err = io.WriteString(cmd.OutOrStdout(), out)
	return err
}

// loadPage resolves the page data for render and bench: the configured
// YAML file when set, the built-in demo values otherwise.
func loadPage(path string) (*demo.Page, error) {
	if path == "" {
		return demo.DefaultPage(), nil
	}
	page, err := demo.LoadPage(path)
	if err != nil {
		return nil, fmt.Errorf("load page data: %w", err)
	}
	return page, nil
}
