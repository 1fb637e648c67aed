package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/hksl/internal/adapters/render/preview"
	"github.com/bnema/hksl/internal/application"
	"github.com/bnema/hksl/internal/domain"
	"github.com/slack-go/slack"
	"github.com/spf13/cobra"
)

func newPreviewCmd(opts *rootOptions) *cobra.Command {
	var userID string
	var asJSON bool
	var width int

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render a user's App Home in the terminal",
		Long:  "preview builds the App Home a Slack user would see from their linked identity and current stead. Users without a linked identity get the sign-in view.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := wireApp(cmd.Context(), opts.configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			var view slack.HomeTabViewRequest
			fetch := func(ctx context.Context) error {
				built, err := buildPreview(ctx, a, domain.UserID(userID))
				view = built
				return err
			}

			if asJSON {
				if err := fetch(cmd.Context()); err != nil {
					return err
				}
				encoded, err := json.MarshalIndent(view, "", "  ")
				if err != nil {
					return fmt.Errorf("encode view: %w", err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
				return err
			}

			if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching stead...", fetch); err != nil {
				return err
			}

			rendered, err := preview.Render(view, preview.RenderOptions{Width: width})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "Slack user id (U...)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the Block Kit view as JSON")
	cmd.Flags().IntVar(&width, "width", 0, "Render width in columns")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func buildPreview(ctx context.Context, a *app, userID domain.UserID) (slack.HomeTabViewRequest, error) {
	resolver, err := a.resolver(ctx)
	if err != nil {
		return slack.HomeTabViewRequest{}, err
	}

	home := application.NewHomeService(a.identities, a.game, nil, resolver, a.logger.Named("home"))
	identity, err := home.Identity(ctx, userID)
	if err != nil {
		return slack.HomeTabViewRequest{}, err
	}

	return home.Build(ctx, identity)
}
