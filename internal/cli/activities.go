package cli

import (
	"fmt"
	"strings"

	"adsynth-workers/pkg/registry"

	"github.com/spf13/cobra"
)

func newActivitiesCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "activities [task type]",
		Short: "List the worker activities a process can bind to",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := registry.LoadRegistry(path)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				a, ok := reg.Find(args[0])
				if !ok {
					return fmt.Errorf("unknown task type %q", args[0])
				}
				return writeJSON(cmd.OutOrStdout(), a)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-24s %-10s %-8s %s\n", "TASK TYPE", "CATEGORY", "TIMEOUT", "ERROR CODES")
			fmt.Fprintln(w, strings.Repeat("-", 72))
			for _, a := range reg.Activities {
				fmt.Fprintf(w, "%-24s %-10s %-8s %s\n", a.TaskType, a.Category, a.Timeout, strings.Join(a.ErrorCodes, ","))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "registry", "configs/activity-registry.json", "Activity registry file")
	return cmd
}
