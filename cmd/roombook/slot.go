package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"roombook/internal/domain"
	"roombook/internal/schedule"
)

var slotCmd = &cobra.Command{
	Use:   "slot",
	Short: "Room slot operations",
}

var slotListCmd = &cobra.Command{
	Use:   "list",
	Short: "List room slots",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := facilities.ListRoomSlots(context.Background(), listParams())
		if err != nil {
			return err
		}
		w := table()
		fmt.Fprintln(w, "ID\tROOM\tSTART\tEND\tTYPE\tSTATUS")
		for _, s := range out.Items {
			room := s.RoomName
			if room == "" {
				room = s.RoomID
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				s.ID, room, s.StartTime, s.EndTime, s.SlotType, s.Status)
		}
		w.Flush()
		fmt.Printf("%d of %d slots\n", len(out.Items), out.TotalItems)
		return nil
	},
}

var (
	slotRoomID   string
	slotType     string
	slotStatus   string
	slotStart    string
	slotEnd      string
	slotFrom     string
	slotTo       string
	slotDays     string
	slotDayStart string
	slotDayEnd   string
	slotDryRun   bool
)

var slotCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create one slot with an explicit start/end",
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := singleRequest()
		if err != nil {
			return err
		}
		payloads, err := req.Generate()
		if err != nil {
			return err
		}
		if err := schedule.Dispatch(context.Background(), facilities, payloads, nil); err != nil {
			return err
		}
		fmt.Println("Slot created.")
		return nil
	},
}

var slotGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Bulk-create recurring slots over a semester date range",
	Long: `Expands a date range, a weekday selection and a daily time window into
one slot per matching calendar day, then creates them all. Weekdays are
0=Sunday..6=Saturday, or names (Mon, Tue, ...). Zero matching days is an
error; nothing is created.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := semesterRequest()
		if err != nil {
			return err
		}
		payloads, err := req.Generate()
		if err != nil {
			return err
		}
		if slotDryRun {
			w := table()
			fmt.Fprintln(w, "START\tEND")
			for _, p := range payloads {
				fmt.Fprintf(w, "%s\t%s\n", p.StartTime, p.EndTime)
			}
			w.Flush()
			fmt.Printf("%d slots would be created (dry run)\n", len(payloads))
			return nil
		}
		if err := schedule.Dispatch(context.Background(), facilities, payloads, nil); err != nil {
			return err
		}
		fmt.Printf("%d slots created.\n", len(payloads))
		return nil
	},
}

func singleRequest() (schedule.Request, error) {
	req := schedule.Request{Mode: schedule.ModeSingle, RoomID: slotRoomID}
	var err error
	if req.SlotType, req.Status, err = slotEnums(); err != nil {
		return req, err
	}
	if req.Start, err = domain.ParseLocal(slotStart); err != nil {
		return req, fmt.Errorf("--start: %w", err)
	}
	if req.End, err = domain.ParseLocal(slotEnd); err != nil {
		return req, fmt.Errorf("--end: %w", err)
	}
	return req, nil
}

func semesterRequest() (schedule.Request, error) {
	req := schedule.Request{Mode: schedule.ModeSemester, RoomID: slotRoomID}
	var err error
	if req.SlotType, req.Status, err = slotEnums(); err != nil {
		return req, err
	}
	if req.RangeStart, err = time.ParseInLocation("2006-01-02", slotFrom, time.Local); err != nil {
		return req, fmt.Errorf("--from: %w", err)
	}
	if req.RangeEnd, err = time.ParseInLocation("2006-01-02", slotTo, time.Local); err != nil {
		return req, fmt.Errorf("--to: %w", err)
	}
	if req.DayStart, err = schedule.ParseTimeOfDay(slotDayStart); err != nil {
		return req, fmt.Errorf("--day-start: %w", err)
	}
	if req.DayEnd, err = schedule.ParseTimeOfDay(slotDayEnd); err != nil {
		return req, fmt.Errorf("--day-end: %w", err)
	}
	if req.Weekdays, err = parseWeekdays(slotDays); err != nil {
		return req, err
	}
	return req, nil
}

func slotEnums() (domain.SlotType, domain.SlotStatus, error) {
	st, err := domain.ParseSlotType(slotType)
	if err != nil {
		return 0, 0, fmt.Errorf("--type: %w", err)
	}
	ss, err := domain.ParseSlotStatus(slotStatus)
	if err != nil {
		return 0, 0, fmt.Errorf("--status: %w", err)
	}
	return st, ss, nil
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday, "mon": time.Monday, "tue": time.Tuesday,
	"wed": time.Wednesday, "thu": time.Thursday, "fri": time.Friday,
	"sat": time.Saturday,
}

func parseWeekdays(s string) (map[time.Weekday]bool, error) {
	days := map[time.Weekday]bool{}
	if strings.TrimSpace(s) == "" {
		return days, nil
	}
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if d, ok := weekdayNames[part]; ok {
			days[d] = true
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > 6 {
			return nil, fmt.Errorf("--days: invalid weekday %q (want 0-6 or Mon..Sun)", part)
		}
		days[time.Weekday(n)] = true
	}
	return days, nil
}

func init() {
	slotCmd.AddCommand(slotListCmd)
	addListFlags(slotListCmd)

	for _, cmd := range []*cobra.Command{slotCreateCmd, slotGenerateCmd} {
		cmd.Flags().StringVar(&slotRoomID, "room", "", "room id (required)")
		cmd.Flags().StringVar(&slotType, "type", "Block3", "slot type: Block3 or Block10")
		cmd.Flags().StringVar(&slotStatus, "status", "Available", "slot status: Available, Booked, Maintenance")
		cmd.MarkFlagRequired("room")
	}
	slotCreateCmd.Flags().StringVar(&slotStart, "start", "", "start timestamp, e.g. 2025-03-10T07:00:00")
	slotCreateCmd.Flags().StringVar(&slotEnd, "end", "", "end timestamp, e.g. 2025-03-10T09:00:00")
	slotCreateCmd.MarkFlagRequired("start")
	slotCreateCmd.MarkFlagRequired("end")

	slotGenerateCmd.Flags().StringVar(&slotFrom, "from", "", "range start date, e.g. 2025-03-03")
	slotGenerateCmd.Flags().StringVar(&slotTo, "to", "", "range end date (inclusive)")
	slotGenerateCmd.Flags().StringVar(&slotDays, "days", "", "weekdays, e.g. 1,3 or Mon,Wed")
	slotGenerateCmd.Flags().StringVar(&slotDayStart, "day-start", "", "daily window start, e.g. 07:00")
	slotGenerateCmd.Flags().StringVar(&slotDayEnd, "day-end", "", "daily window end, e.g. 09:00")
	slotGenerateCmd.Flags().BoolVar(&slotDryRun, "dry-run", false, "print the expansion without creating anything")
	slotGenerateCmd.MarkFlagRequired("from")
	slotGenerateCmd.MarkFlagRequired("to")
	slotGenerateCmd.MarkFlagRequired("day-start")
	slotGenerateCmd.MarkFlagRequired("day-end")

	slotCmd.AddCommand(slotCreateCmd)
	slotCmd.AddCommand(slotGenerateCmd)
}
