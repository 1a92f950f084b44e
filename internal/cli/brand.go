package cli

import (
	"errors"
	"strings"

	"adsynth-workers/internal/engine/brandkit"
	validatebrandsafety "adsynth-workers/internal/workers/brand/validate-brand-safety"

	"github.com/spf13/cobra"
)

// ErrUnsafeCopy is returned by brand-check so scripts can gate on the exit code.
var ErrUnsafeCopy = errors.New("copy violates the brand kit")

type brandCheckOptions struct {
	*rootOptions
	kitFiles []string
	kitID    string
	gradient string
}

func newBrandCheckCmd(root *rootOptions) *cobra.Command {
	opts := &brandCheckOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:     "brand-check <ad copy>",
		Short:   "Check ad copy against a brand kit",
		Example: `  adsynth brand-check --kit configs/brand-kits.yaml --kit-id oasis "كريم أوازيس بخصم 20%"`,
		Args:    cobra.MinimumNArgs(1),
		RunE:    opts.run,
	}
	cmd.Flags().StringArrayVarP(&opts.kitFiles, "kit", "k", nil, "Brand kit file, YAML or JSON (repeatable)")
	cmd.Flags().StringVar(&opts.kitID, "kit-id", "", "Kit to check against (default kit when empty)")
	cmd.Flags().StringVar(&opts.gradient, "gradient", "", "Also render this gradient as CSS")
	return cmd
}

func (o *brandCheckOptions) run(cmd *cobra.Command, args []string) error {
	registry := brandkit.NewRegistry()
	for _, path := range o.kitFiles {
		if _, err := registry.LoadFile(path); err != nil {
			return err
		}
	}

	handler := validatebrandsafety.NewHandler(validatebrandsafety.LoadConfig(), registry, nil, nil, o.logger())
	out, err := handler.Execute(cmd.Context(), &validatebrandsafety.Input{
		Text:         strings.Join(args, " "),
		KitID:        o.kitID,
		GradientType: o.gradient,
	})
	if err != nil {
		return err
	}
	if err := writeJSON(cmd.OutOrStdout(), out); err != nil {
		return err
	}
	if !out.Safe {
		return ErrUnsafeCopy
	}
	return nil
}
