package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"roombook/internal/api"
)

var (
	listPage int
	listSize int
)

func listParams() api.ListParams {
	return api.ListParams{Page: listPage, Size: listSize}
}

func addListFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&listPage, "page", 1, "page number")
	cmd.Flags().IntVar(&listSize, "size", 20, "page size")
}

func table() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

var campusCmd = &cobra.Command{
	Use:   "campus",
	Short: "Campus operations",
}

var campusListCmd = &cobra.Command{
	Use:   "list",
	Short: "List campuses",
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := facilities.ListCampuses(context.Background())
		if err != nil {
			return err
		}
		w := table()
		fmt.Fprintln(w, "ID\tNAME\tADDRESS")
		for _, c := range items {
			fmt.Fprintf(w, "%s\t%s\t%s\n", c.ID, c.Name, c.Address)
		}
		return w.Flush()
	},
}

var areaCmd = &cobra.Command{
	Use:   "area",
	Short: "Area operations",
}

var areaListCmd = &cobra.Command{
	Use:   "list",
	Short: "List areas",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := facilities.ListAreas(context.Background(), listParams())
		if err != nil {
			return err
		}
		w := table()
		fmt.Fprintln(w, "ID\tNAME\tCAMPUS")
		for _, a := range out.Items {
			campus := a.CampusName
			if campus == "" {
				campus = a.CampusID
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", a.ID, a.Name, campus)
		}
		w.Flush()
		fmt.Printf("%d of %d areas\n", len(out.Items), out.TotalItems)
		return nil
	},
}

var roomTypeCmd = &cobra.Command{
	Use:   "roomtype",
	Short: "Room type operations",
}

var roomTypeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List room types",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := facilities.ListRoomTypes(context.Background(), listParams())
		if err != nil {
			return err
		}
		w := table()
		fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
		for _, rt := range out.Items {
			fmt.Fprintf(w, "%s\t%s\t%s\n", rt.ID, rt.Name, rt.Description)
		}
		return w.Flush()
	},
}

var roomCmd = &cobra.Command{
	Use:   "room",
	Short: "Room operations",
}

var roomListCmd = &cobra.Command{
	Use:   "list",
	Short: "List rooms",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := facilities.ListRooms(context.Background(), listParams())
		if err != nil {
			return err
		}
		w := table()
		fmt.Fprintln(w, "ID\tNUMBER\tNAME\tAREA\tTYPE\tFLOOR\tCAPACITY")
		for _, r := range out.Items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%d\n",
				r.ID, r.RoomNumber, r.RoomName, r.AreaName, r.RoomTypeName, r.Floor, r.Capacity)
		}
		w.Flush()
		fmt.Printf("%d of %d rooms\n", len(out.Items), out.TotalItems)
		return nil
	},
}

func init() {
	campusCmd.AddCommand(campusListCmd)
	areaCmd.AddCommand(areaListCmd)
	addListFlags(areaListCmd)
	roomTypeCmd.AddCommand(roomTypeListCmd)
	addListFlags(roomTypeListCmd)
	roomCmd.AddCommand(roomListCmd)
	addListFlags(roomListCmd)
}
