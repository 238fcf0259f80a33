package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/apps4uco/sailfish/render"
)

// escapeCmd represents the escape command
var escapeCmd = &cobra.Command{
	Use:   "escape [text]...",
	Short: "HTML-escape text the way interpolated values are escaped",
	Long: `Escape applies the renderer's escaping policy to its arguments and
prints the result: " & < > become entities, everything else passes
through unchanged. With no arguments it escapes stdin.

Examples:
  sailfish escape '<b>1 & 2</b>'
  cat page.txt | sailfish escape`,
	RunE: runEscape,
}

func init() {
	rootCmd.AddCommand(escapeCmd)
}

func runEscape(cmd *cobra.Command, args []string) error {
	buf := render.AcquireBuffer()
	defer render.ReleaseBuffer(buf)

	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		args = []string{string(data)}
	}

	for i, arg := range args {
		if i > 0 {
			buf.WriteByte(' ')
		}
		render.EscapeString(buf, arg)
	}
	buf.WriteByte('\n')

	_, err := cmd.OutOrStdout().Write(buf.Bytes())
	return err
}
