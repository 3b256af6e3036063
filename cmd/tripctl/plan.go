package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/srajal5/vacationplanner/internal/domain"
)

var (
	planBudget        float64
	planCurrency      string
	planDestination   string
	planStart         string
	planEnd           string
	planTheme         string
	planGroupSize     int
	planStartingPoint string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a new trip plan",
	Long: `Plan asks the service to generate a complete trip plan from your
preferences: transportation, accommodation, a budget breakdown and a daily
itinerary. The plan is not saved until you run "tripctl save".

Example:
  tripctl plan --budget 2000 --destination Paris --group-size 2
  tripctl plan --budget 1500 --theme Relaxation --start 2026-10-01 --end 2026-10-05`,
	Args: cobra.NoArgs,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().Float64Var(&planBudget, "budget", 0, "total budget (required)")
	planCmd.Flags().StringVar(&planCurrency, "currency", "USD", "budget currency code")
	planCmd.Flags().StringVar(&planDestination, "destination", "", "destination (picked by theme when empty)")
	planCmd.Flags().StringVar(&planStart, "start", "", "start date, YYYY-MM-DD")
	planCmd.Flags().StringVar(&planEnd, "end", "", "end date, YYYY-MM-DD")
	planCmd.Flags().StringVar(&planTheme, "theme", "", "trip theme (Adventure, Relaxation, Culture, ...)")
	planCmd.Flags().IntVar(&planGroupSize, "group-size", 1, "number of travelers")
	planCmd.Flags().StringVar(&planStartingPoint, "from", "", "starting point")
	_ = planCmd.MarkFlagRequired("budget")
}

func runPlan(cmd *cobra.Command, args []string) error {
	prefs := domain.TripPreferences{
		Budget:        planBudget,
		Currency:      planCurrency,
		Destination:   planDestination,
		Theme:         planTheme,
		GroupSize:     planGroupSize,
		StartingPoint: planStartingPoint,
	}

	if planStart != "" || planEnd != "" {
		start, err := parseDate(planStart)
		if err != nil {
			return fmt.Errorf("--start: %w", err)
		}
		end, err := parseDate(planEnd)
		if err != nil {
			return fmt.Errorf("--end: %w", err)
		}
		prefs.StartDate, prefs.EndDate = &start, &end
	}

	trip, err := newRepository().PlanTrip(cmd.Context(), prefs)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(trip)
	}
	printTrip(trip)
	fmt.Printf("\nRun \"tripctl save %s\" to keep this plan.\n", trip.ID)
	return nil
}

func parseDate(s string) (domain.Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return domain.Date{}, fmt.Errorf("want YYYY-MM-DD: %w", err)
	}
	return domain.NewDate(t), nil
}
