package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srajal5/vacationplanner/internal/booking"
)

var (
	bookName  string
	bookEmail string
	bookPhone string
	bookCard  string
)

var bookCmd = &cobra.Command{
	Use:   "book <trip-id>",
	Short: "Book a planned trip",
	Long: `Book walks the booking steps for a trip: summary, traveler details
and payment. The card number stays on this machine; only name, email and
phone are sent to the service.

Example:
  tripctl book 3f2a... --name "Ada Lovelace" --email ada@example.com --phone "+1 555 5555"`,
	Args: cobra.ExactArgs(1),
	RunE: runBook,
}

func init() {
	bookCmd.Flags().StringVar(&bookName, "name", "", "traveler name (required)")
	bookCmd.Flags().StringVar(&bookEmail, "email", "", "traveler email (required)")
	bookCmd.Flags().StringVar(&bookPhone, "phone", "", "traveler phone (required)")
	bookCmd.Flags().StringVar(&bookCard, "card", "", "card number (kept local, never transmitted)")
	_ = bookCmd.MarkFlagRequired("name")
	_ = bookCmd.MarkFlagRequired("email")
	_ = bookCmd.MarkFlagRequired("phone")
}

func runBook(cmd *cobra.Command, args []string) error {
	repo := newRepository()

	trip, err := repo.GetTrip(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	wiz := booking.NewWizard(trip, repo)
	fmt.Printf("%s: trip to %s, total %s\n",
		wiz.Step(), trip.Destination, money(trip.BudgetBreakdown.TotalCost, trip.Currency))

	wiz.Next()
	wiz.SetTraveler(booking.Traveler{
		Name:       bookName,
		Email:      bookEmail,
		Phone:      bookPhone,
		CardNumber: bookCard,
	})
	fmt.Printf("%s: %s <%s>\n", wiz.Step(), bookName, bookEmail)

	wiz.Next()
	fmt.Printf("%s: submitting...\n", wiz.Step())

	if err := wiz.Submit(cmd.Context()); err != nil {
		if msg := wiz.SubmissionError(); msg != "" {
			return fmt.Errorf("booking failed: %s", msg)
		}
		return err
	}

	conf, _ := wiz.Confirmation()
	if flagJSON {
		return printJSON(conf)
	}
	fmt.Printf("%s: %s\n", wiz.Step(), conf.Message)
	fmt.Printf("Booking id: %s\n", conf.BookingID)
	return nil
}
