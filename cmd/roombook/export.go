package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"roombook/internal/export"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <rooms|slots>",
	Short: "Export inventory to an Excel workbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		var data []byte
		var err error
		switch args[0] {
		case "rooms":
			rooms, lerr := facilities.ListAllRooms(ctx)
			if lerr != nil {
				return lerr
			}
			data, err = export.RoomsReport(rooms)
		case "slots":
			slots, lerr := facilities.ListAllRoomSlots(ctx)
			if lerr != nil {
				return lerr
			}
			data, err = export.SlotsReport(slots)
		default:
			return fmt.Errorf("unknown report %q (want rooms or slots)", args[0])
		}
		if err != nil {
			return err
		}

		if err := os.WriteFile(exportOutput, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", exportOutput, err)
		}
		fmt.Printf("Wrote %s\n", exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "report.xlsx", "output file")
}
