// Package export renders facility inventory reports as Excel workbooks
// for offline review by campus administrators.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"roombook/internal/domain"
)

var roomHeaders = []string{
	"Room Number",
	"Room Name",
	"Area",
	"Room Type",
	"Floor",
	"Capacity",
	"Description",
}

var slotHeaders = []string{
	"Room",
	"Start Time",
	"End Time",
	"Slot Type",
	"Status",
}

// RoomsReport renders one sheet of rooms.
func RoomsReport(rooms []domain.Room) ([]byte, error) {
	rows := make([][]any, 0, len(rooms))
	for _, r := range rooms {
		rows = append(rows, []any{
			r.RoomNumber,
			r.RoomName,
			r.AreaName,
			r.RoomTypeName,
			r.Floor,
			r.Capacity,
			r.Description,
		})
	}
	return renderSheet("Rooms", roomHeaders, rows)
}

// SlotsReport renders one sheet of room slots. Times stay in the
// backend's local wall-clock format.
func SlotsReport(slots []domain.RoomSlot) ([]byte, error) {
	rows := make([][]any, 0, len(slots))
	for _, s := range slots {
		room := s.RoomName
		if room == "" {
			room = s.RoomID
		}
		rows = append(rows, []any{
			room,
			s.StartTime,
			s.EndTime,
			s.SlotType.String(),
			s.Status.String(),
		})
	}
	return renderSheet("Room Slots", slotHeaders, rows)
}

func renderSheet(sheetName string, headers []string, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	// No deferred Close: WriteTo needs the file open until the end.

	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}
	}

	for i := range headers {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(sheetName, col, col, 20); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write excel file: %w", err)
	}
	f.Close()
	return buf.Bytes(), nil
}
