package cli

import (
	"fmt"
	"strings"

	"adsynth-workers/internal/engine/platform"

	"github.com/spf13/cobra"
)

func newPlatformsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "platforms",
		Short: "List supported ad platforms and their limits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-18s %-22s %-11s %-9s %s\n", "NAME", "DISPLAY", "SIZE", "HEADLINE", "DESCRIPTION")
			fmt.Fprintln(w, strings.Repeat("-", 72))
			for _, name := range platform.Names() {
				s, err := platform.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%-18s %-22s %-11s %-9d %d\n",
					s.Name, s.DisplayName, fmt.Sprintf("%dx%d", s.Width, s.Height),
					s.MaxHeadlineLength, s.MaxDescriptionLength)
			}
			return nil
		},
	}
}
