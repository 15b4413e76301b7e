package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/blogsite/internal/config"
)

func newInitCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter site config",
		Long:  "Write the starter site.yaml (or the --site path). Refuses to overwrite unless --force is set.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.settings.Site
			if err := config.WriteScaffold(path, force); err != nil {
				return err
			}
			a.logger.Info().Str("path", path).Bool("force", force).Msg("site config written")
			if a.settings.JSON {
				return WriteOutput(cmd.OutOrStdout(), map[string]any{"path": path, "created": true})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing site config")
	return cmd
}
