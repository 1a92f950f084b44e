package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"adsynth-workers/internal/common/logger"
	generateadset "adsynth-workers/internal/workers/adset/generate-ad-set"
	exportadscsv "adsynth-workers/internal/workers/export/export-ads-csv"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

type generateOptions struct {
	*rootOptions
	profiles    []string
	format      string
	platform    string
	outDir      string
	layouts     bool
	concurrency int
}

// generated is one ad set in the json output, labelled with its profile file.
type generated struct {
	Profile string `json:"profile"`
	*generateadset.Output
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := &generateOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an ad set for each product profile",
		Long: "Reads product profiles (JSON or YAML), generates five ad variants per profile and\n" +
			"prints them as JSON or exports them as Meta / Google Ads CSV.",
		Example: "  adsynth generate -p cream.yaml -p robot.json --format meta --out ./exports",
		Args:    cobra.NoArgs,
		RunE:    opts.run,
	}
	cmd.Flags().StringArrayVarP(&opts.profiles, "profile", "p", nil, "Product profile file (repeatable)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "json", "Output format: json, meta, google")
	cmd.Flags().StringVar(&opts.platform, "platform", "", "Platform label for exported ads")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "Directory for CSV exports (stdout when empty)")
	cmd.Flags().BoolVar(&opts.layouts, "layouts", false, "Include creative layouts in json output")
	cmd.Flags().IntVarP(&opts.concurrency, "concurrency", "c", 4, "Profiles generated in parallel")
	_ = cmd.MarkFlagRequired("profile")
	return cmd
}

func (o *generateOptions) run(cmd *cobra.Command, _ []string) error {
	format := strings.ToLower(o.format)
	switch format {
	case "json", exportadscsv.FormatMeta, exportadscsv.FormatGoogle:
	default:
		return fmt.Errorf("invalid format %q: must be json, meta, or google", o.format)
	}
	if format != "json" && o.outDir == "" && len(o.profiles) > 1 {
		return errors.New("--out is required when exporting more than one profile")
	}

	log := o.logger()
	results, err := generateAll(cmd.Context(), o.profiles, o.layouts, o.concurrency, log)
	if err != nil {
		return err
	}

	if format == "json" {
		return writeJSON(cmd.OutOrStdout(), results)
	}

	exporter := exportadscsv.NewHandler(exportadscsv.LoadConfig(), log)
	for _, r := range results {
		out, err := exporter.Execute(cmd.Context(), &exportadscsv.Input{
			Format:   format,
			AdSet:    r.AdSet,
			Platform: o.platform,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", r.Profile, err)
		}

		if o.outDir == "" {
			fmt.Fprint(cmd.OutOrStdout(), out.Content)
			continue
		}
		if err := os.MkdirAll(o.outDir, 0o755); err != nil {
			return err
		}
		path := filepath.Join(o.outDir, profileStem(r.Profile)+"_"+out.Filename)
		if err := os.WriteFile(path, []byte(out.Content), 0o644); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}

// generateAll runs one goroutine per profile, at most limit at a time. Results
// keep the order of paths; the first failure cancels the rest.
func generateAll(ctx context.Context, paths []string, layouts bool, limit int, log logger.Logger) ([]generated, error) {
	handler := generateadset.NewHandler(generateadset.LoadConfig(), nil, nil, log)
	results := make([]generated, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			profile, err := readProfile(path)
			if err != nil {
				return err
			}
			out, err := handler.Execute(ctx, &generateadset.Input{Profile: profile, IncludeLayouts: layouts})
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = generated{Profile: path, Output: out}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// readProfile accepts JSON or YAML; JSON parses as YAML.
func readProfile(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var profile map[string]interface{}
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if profile == nil {
		return nil, fmt.Errorf("%s: empty profile", path)
	}
	return profile, nil
}

func profileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
