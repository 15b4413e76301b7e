package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/blogsite/internal/highlight"
)

func newHighlightCmd(a *app) *cobra.Command {
	var (
		language    string
		format      string
		lineNumbers bool
		standalone  bool
		tokens      bool
	)

	cmd := &cobra.Command{
		Use:   "highlight <file>",
		Short: "Highlight a source file with the site palettes",
		Long: `Highlight a source file the way code samples on the blog are colored.
Use "-" to read from stdin. --tokens lists the palette category of every token
instead of rendering.`,
		Example: `  blogsite highlight main.go --format terminal
  blogsite highlight snippet.txt --lang rust --line-numbers > snippet.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			if tokens {
				found, err := highlight.Categories(language, source)
				if err != nil {
					return err
				}
				if a.settings.JSON {
					return WriteOutput(cmd.OutOrStdout(), found)
				}
				rows := make([][]string, 0, len(found))
				for _, t := range found {
					rows = append(rows, []string{fmt.Sprintf("%q", t.Text), t.Type, orDash(t.Category)})
				}
				return writeTable(cmd.OutOrStdout(), []string{"TEXT", "TYPE", "CATEGORY"}, rows)
			}

			parsed, err := highlight.ParseFormat(format)
			if err != nil {
				return err
			}
			set, cfg, err := a.palettes()
			if err != nil {
				return err
			}

			filename := ""
			if args[0] != "-" {
				filename = filepath.Base(args[0])
			}
			return highlight.Render(cmd.OutOrStdout(), source, set, highlight.Options{
				Language:    language,
				Filename:    filename,
				Mode:        a.modeFor(cfg),
				Format:      parsed,
				LineNumbers: lineNumbers,
				Standalone:  standalone,
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&language, "lang", "l", "", "language (default: detect from file name and content)")
	flags.StringVar(&format, "format", string(highlight.FormatHTML), "output format (html, terminal)")
	flags.BoolVarP(&lineNumbers, "line-numbers", "n", false, "number lines (html only)")
	flags.BoolVar(&standalone, "standalone", false, "emit a complete HTML document")
	flags.BoolVar(&tokens, "tokens", false, "list token categories instead of rendering")
	return cmd
}

func readSource(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read source: %w", err)
	}
	return string(data), nil
}
