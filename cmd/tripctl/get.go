package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srajal5/vacationplanner/internal/async"
	"github.com/srajal5/vacationplanner/internal/client"
)

var getCmd = &cobra.Command{
	Use:   "get <trip-id>",
	Short: "Show a trip plan",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	view := client.NewTripView(newRepository())
	defer view.Close()

	<-view.Load(cmd.Context(), args[0])

	if view.State() == async.StateFailed {
		return fmt.Errorf("load trip: %s", view.ErrMessage())
	}
	trip, ok := view.Trip()
	if !ok {
		return fmt.Errorf("load trip: no result")
	}

	if flagJSON {
		return printJSON(trip)
	}
	printTrip(trip)
	return nil
}
