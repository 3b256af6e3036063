package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srajal5/vacationplanner/internal/savedtrips"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <trip-id>",
	Short: "Delete a trip",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr := savedtrips.NewManager(newRepository())
		if err := mgr.Remove(cmd.Context(), args[0]); err != nil {
			if savedtrips.IsNotFound(err) {
				// Already gone server-side; nothing left to do.
				fmt.Println("Trip was already deleted.")
				return nil
			}
			return err
		}
		fmt.Println("Trip deleted.")
		return nil
	},
}
