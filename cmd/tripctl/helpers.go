// Shared output helpers for tripctl commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/srajal5/vacationplanner/internal/domain"
)

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// money formats an amount with the trip currency's symbol.
func money(amount float64, currency string) string {
	if c, ok := domain.CurrencyByCode(currency); ok {
		return fmt.Sprintf("%s%.2f", c.Symbol, amount)
	}
	return fmt.Sprintf("%.2f %s", amount, currency)
}

// printTrip renders a full trip plan as human-readable text.
func printTrip(t domain.Trip) {
	fmt.Printf("Trip to %s (%s)\n", t.Destination, t.ID)
	fmt.Printf("  %s to %s, %d traveler(s)\n",
		t.StartDate.Format("Jan 2, 2006"), t.EndDate.Format("Jan 2, 2006"), t.GroupSize)
	if t.Theme != "" {
		fmt.Printf("  Theme: %s\n", t.Theme)
	}
	if t.Saved {
		fmt.Println("  Saved")
	}

	fmt.Println("  Budget:")
	fmt.Printf("    Transportation  %s\n", money(t.BudgetBreakdown.TransportationCost, t.Currency))
	fmt.Printf("    Accommodation   %s\n", money(t.BudgetBreakdown.AccommodationCost, t.Currency))
	fmt.Printf("    Activities      %s\n", money(t.BudgetBreakdown.ActivitiesCost, t.Currency))
	fmt.Printf("    Total           %s\n", money(t.BudgetBreakdown.TotalCost, t.Currency))

	if t.Transportation != nil {
		fmt.Printf("  Transportation: %s with %s, %s to %s\n",
			t.Transportation.Type, t.Transportation.Provider,
			t.Transportation.Origin, t.Transportation.Destination)
	}
	if t.Accommodation != nil {
		fmt.Printf("  Accommodation: %s (%s, rated %.1f)\n",
			t.Accommodation.Name, t.Accommodation.Type, t.Accommodation.Rating)
	}

	for _, day := range t.DailyItineraries {
		fmt.Printf("  Day %d - %s\n", day.Day, day.Date.Format("Jan 2, 2006"))
		for _, a := range day.Activities {
			fmt.Printf("    %s  %s (%s)\n", a.Time, a.Name, money(a.Cost, t.Currency))
		}
	}
}

// printTripTable renders a one-line-per-trip listing.
func printTripTable(trips []domain.Trip) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDESTINATION\tDATES\tGROUP\tTOTAL")
	for _, t := range trips {
		fmt.Fprintf(w, "%s\t%s\t%s - %s\t%d\t%s\n",
			t.ID, t.Destination,
			t.StartDate.Format("2006-01-02"), t.EndDate.Format("2006-01-02"),
			t.GroupSize, money(t.BudgetBreakdown.TotalCost, t.Currency))
	}
	_ = w.Flush()
}
