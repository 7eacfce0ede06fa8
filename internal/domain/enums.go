package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// The backend is asymmetric about enums: list responses carry the enum
// *name* as a string ("Block3", "Available"), while create/update bodies
// must carry the numeric code. Each enum type here marshals to the code
// and unmarshals from either form, so the rest of the module only ever
// sees one representation.

// SlotType recurring scheduling pattern of a slot
type SlotType int

const (
	SlotTypeBlock3  SlotType = 0 // 3-week block
	SlotTypeBlock10 SlotType = 1 // 10-week block
)

var slotTypeNames = map[SlotType]string{
	SlotTypeBlock3:  "Block3",
	SlotTypeBlock10: "Block10",
}

func (t SlotType) String() string {
	if name, ok := slotTypeNames[t]; ok {
		return name
	}
	return strconv.Itoa(int(t))
}

// ParseSlotType accepts the wire name ("Block3") or code ("0").
func ParseSlotType(s string) (SlotType, error) {
	for code, name := range slotTypeNames {
		if s == name {
			return code, nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil {
		return SlotType(n), nil
	}
	return 0, fmt.Errorf("unknown slot type %q", s)
}

func (t SlotType) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(t))
}

func (t *SlotType) UnmarshalJSON(data []byte) error {
	n, err := decodeEnum(data, "slot type", func(s string) (int, bool) {
		for code, name := range slotTypeNames {
			if s == name {
				return int(code), true
			}
		}
		return 0, false
	})
	if err != nil {
		return err
	}
	*t = SlotType(n)
	return nil
}

// SlotStatus availability state of a slot
type SlotStatus int

const (
	SlotStatusAvailable   SlotStatus = 0
	SlotStatusBooked      SlotStatus = 1
	SlotStatusMaintenance SlotStatus = 2
)

var slotStatusNames = map[SlotStatus]string{
	SlotStatusAvailable:   "Available",
	SlotStatusBooked:      "Booked",
	SlotStatusMaintenance: "Maintenance",
}

func (s SlotStatus) String() string {
	if name, ok := slotStatusNames[s]; ok {
		return name
	}
	return strconv.Itoa(int(s))
}

// ParseSlotStatus accepts the wire name or code. "Unavailable" is what
// some backend builds call Booked; both map to SlotStatusBooked.
func ParseSlotStatus(v string) (SlotStatus, error) {
	if v == "Unavailable" {
		return SlotStatusBooked, nil
	}
	for code, name := range slotStatusNames {
		if v == name {
			return code, nil
		}
	}
	if n, err := strconv.Atoi(v); err == nil {
		return SlotStatus(n), nil
	}
	return 0, fmt.Errorf("unknown slot status %q", v)
}

func (s SlotStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(s))
}

func (s *SlotStatus) UnmarshalJSON(data []byte) error {
	n, err := decodeEnum(data, "slot status", func(name string) (int, bool) {
		st, perr := ParseSlotStatus(name)
		if perr != nil {
			return 0, false
		}
		return int(st), true
	})
	if err != nil {
		return err
	}
	*s = SlotStatus(n)
	return nil
}

// BookingStatus approval state of a booking
type BookingStatus int

const (
	BookingStatusPending   BookingStatus = 0
	BookingStatusConfirmed BookingStatus = 1
	BookingStatusCancelled BookingStatus = 2
	BookingStatusCompleted BookingStatus = 3
)

var bookingStatusNames = map[BookingStatus]string{
	BookingStatusPending:   "Pending",
	BookingStatusConfirmed: "Confirmed",
	BookingStatusCancelled: "Cancelled",
	BookingStatusCompleted: "Completed",
}

func (s BookingStatus) String() string {
	if name, ok := bookingStatusNames[s]; ok {
		return name
	}
	return strconv.Itoa(int(s))
}

func (s BookingStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(s))
}

func (s *BookingStatus) UnmarshalJSON(data []byte) error {
	n, err := decodeEnum(data, "booking status", func(name string) (int, bool) {
		for code, known := range bookingStatusNames {
			if name == known {
				return int(code), true
			}
		}
		return 0, false
	})
	if err != nil {
		return err
	}
	*s = BookingStatus(n)
	return nil
}

// Role backend account role
type Role int

const (
	RoleAdmin    Role = 0
	RoleLecturer Role = 1
	RoleStudent  Role = 2
)

var roleNames = map[Role]string{
	RoleAdmin:    "Admin",
	RoleLecturer: "Lecturer",
	RoleStudent:  "Student",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return strconv.Itoa(int(r))
}

func (r *Role) UnmarshalJSON(data []byte) error {
	n, err := decodeEnum(data, "role", func(name string) (int, bool) {
		for code, known := range roleNames {
			if name == known {
				return int(code), true
			}
		}
		return 0, false
	})
	if err != nil {
		return err
	}
	*r = Role(n)
	return nil
}

func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(r))
}

// decodeEnum handles the string-or-number wire duality in one place.
func decodeEnum(data []byte, what string, byName func(string) (int, bool)) (int, error) {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		return n, nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return 0, fmt.Errorf("invalid %s value %s", what, string(data))
	}
	if code, ok := byName(s); ok {
		return code, nil
	}
	// Numeric code arriving as a string.
	if code, err := strconv.Atoi(s); err == nil {
		return code, nil
	}
	return 0, fmt.Errorf("unknown %s %q", what, s)
}
