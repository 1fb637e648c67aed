package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/bnema/hksl/internal/catalog"
	"github.com/bnema/hksl/internal/domain"
	"github.com/spf13/cobra"
)

var errCatalogIncomplete = errors.New("glyph catalog is incomplete")

func newCatalogCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the item glyph catalog",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Check that every manifest item has a glyph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := wireApp(cmd.Context(), opts.configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			resolver, err := a.resolver(cmd.Context())
			if err != nil {
				return err
			}

			return writeCoverage(cmd.OutOrStdout(), resolver)
		},
	})

	return cmd
}

func writeCoverage(out io.Writer, resolver *catalog.Resolver) error {
	coverage := resolver.Coverage()

	if _, err := fmt.Fprintf(out, "items: %d\n", len(resolver.Manifest().Items)); err != nil {
		return err
	}
	if err := writeItemList(out, "missing glyphs", coverage.MissingGlyphs); err != nil {
		return err
	}
	if err := writeItemList(out, "unused glyphs", coverage.UnusedGlyphs); err != nil {
		return err
	}

	if !coverage.Complete() {
		return fmt.Errorf("%w: %d item(s) without a glyph", errCatalogIncomplete, len(coverage.MissingGlyphs))
	}

	_, err := fmt.Fprintln(out, "ok")
	return err
}

func writeItemList(out io.Writer, label string, ids []domain.ItemID) error {
	if _, err := fmt.Fprintf(out, "%s: %d\n", label, len(ids)); err != nil {
		return err
	}
	for _, id := range ids {
		if _, err := fmt.Fprintf(out, "  - %s\n", id); err != nil {
			return err
		}
	}
	return nil
}
