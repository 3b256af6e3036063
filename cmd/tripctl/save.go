package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save <trip-id>",
	Short: "Save a planned trip",
	Long:  `Save keeps a generated plan. Saving an already-saved trip is harmless.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newRepository().SaveTrip(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Trip saved.")
		return nil
	},
}
