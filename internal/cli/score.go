package cli

import (
	"strings"

	scorehook "adsynth-workers/internal/workers/adset/score-hook"

	"github.com/spf13/cobra"
)

func newScoreHookCmd(root *rootOptions) *cobra.Command {
	var market string

	cmd := &cobra.Command{
		Use:     "score-hook <hook text>",
		Short:   "Score a hook and enhance it when it falls below the threshold",
		Example: `  adsynth score-hook --market gulf "وداعاً للتعب اليومي"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handler := scorehook.NewHandler(scorehook.LoadConfig(), root.logger())
			out, err := handler.Execute(cmd.Context(), &scorehook.Input{
				Hook:   strings.Join(args, " "),
				Market: market,
			})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVarP(&market, "market", "m", "egypt", "Market: egypt, gulf, mena")
	return cmd
}
