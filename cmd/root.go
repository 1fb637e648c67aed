package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "hksl",
		Short:         "hksl: play hkgi from the Slack App Home",
		Long:          "hksl serves the hkgi farming game as a Slack App Home over Socket Mode, and can preview a player's home or check the item glyph catalog from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default $HOME/.config/hksl/config.toml)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newServeCmd(opts),
		newPreviewCmd(opts),
		newCatalogCmd(opts),
	)

	return rootCmd
}
