package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"roombook/internal/domain"
)

var bookingCmd = &cobra.Command{
	Use:   "booking",
	Short: "Booking operations",
}

var bookingListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bookings of the signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := bookings.List(context.Background(), listParams())
		if err != nil {
			return err
		}
		w := table()
		fmt.Fprintln(w, "ID\tROOM\tSTART\tEND\tSTATUS")
		for _, b := range out.Items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				b.ID, b.RoomName, b.StartTime, b.EndTime, b.BookingStatus)
		}
		w.Flush()
		fmt.Printf("%d of %d bookings\n", len(out.Items), out.TotalItems)
		return nil
	},
}

var bookingCreateCmd = &cobra.Command{
	Use:   "create <room-slot-id>",
	Short: "Request a booking for a slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := bookings.Create(context.Background(), domain.BookingCreateRequest{RoomSlotID: args[0]})
		if err != nil {
			return err
		}
		fmt.Printf("Booking %s created (%s).\n", b.ID, b.BookingStatus)
		return nil
	},
}

var bookingApproveCmd = &cobra.Command{
	Use:   "approve <id>",
	Short: "Approve a pending booking (admin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bookings.UpdateStatus(context.Background(), args[0], domain.BookingStatusConfirmed); err != nil {
			return err
		}
		fmt.Println("Booking approved.")
		return nil
	},
}

var bookingCancelCmd = &cobra.Command{
	Use:   "cancel <id>",
	Short: "Cancel a booking",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bookings.Cancel(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Println("Booking cancelled.")
		return nil
	},
}

func init() {
	bookingCmd.AddCommand(bookingListCmd)
	addListFlags(bookingListCmd)
	bookingCmd.AddCommand(bookingCreateCmd)
	bookingCmd.AddCommand(bookingApproveCmd)
	bookingCmd.AddCommand(bookingCancelCmd)
}
