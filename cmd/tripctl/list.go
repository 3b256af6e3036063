package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/srajal5/vacationplanner/internal/savedtrips"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved trips",
	Long: `List shows every saved trip. If the service cannot be reached the
last known listing (when any) is shown with a warning instead of failing
outright.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	mgr := savedtrips.NewManager(newRepository())

	if err := mgr.Refresh(cmd.Context()); err != nil {
		if len(mgr.Trips()) == 0 {
			return fmt.Errorf("list trips: %s", mgr.ErrMessage())
		}
		fmt.Fprintf(os.Stderr, "warning: refresh failed (%s); showing last known listing\n", mgr.ErrMessage())
	}

	trips := mgr.Trips()
	if flagJSON {
		return printJSON(trips)
	}
	if len(trips) == 0 {
		fmt.Println("No saved trips yet. Plan one with \"tripctl plan\".")
		return nil
	}
	printTripTable(trips)
	return nil
}
