package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "roombook",
	Short: "Admin client for the university room-reservation backend",
	Long: `roombook talks to the facility-reservation REST backend: list and
manage campuses, areas, room types, rooms and slots, cascade deletes
bottom-up, bulk-generate semester slots, and export inventory reports.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(campusCmd)
	rootCmd.AddCommand(areaCmd)
	rootCmd.AddCommand(roomTypeCmd)
	rootCmd.AddCommand(roomCmd)
	rootCmd.AddCommand(slotCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(bookingCmd)
}
