package domain

// Facility entities as the backend wires them.
// All IDs are backend-issued UUID strings; this client never invents them.

// Campus top-level physical site
type Campus struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description,omitempty"`
}

// CampusCreateRequest POST/PUT /Campus body
type CampusCreateRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description,omitempty"`
}

// Area a building or zone within a Campus
type Area struct {
	ID         string `json:"id"`
	CampusID   string `json:"campusId"`
	Name       string `json:"name"`
	ManagerID  string `json:"managerId,omitempty"`
	CampusName string `json:"campusName,omitempty"` // denormalized, backend may omit
}

// AreaCreateRequest POST/PUT /Area body
type AreaCreateRequest struct {
	CampusID  string `json:"campusId"`
	Name      string `json:"name"`
	ManagerID string `json:"managerId,omitempty"`
}

// RoomType independent room taxonomy (lab, lecture hall, meeting room, ...)
type RoomType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// RoomTypeCreateRequest POST/PUT /RoomType body
type RoomTypeCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Room belongs to exactly one Area and one RoomType.
// Area and RoomType are independent parents: deleting a RoomType cascades
// to its rooms but never to areas.
type Room struct {
	ID           string `json:"id"`
	RoomTypeID   string `json:"roomTypeId"`
	AreaID       string `json:"areaId"`
	RoomNumber   string `json:"roomNumber"`
	RoomName     string `json:"roomName"`
	Floor        int    `json:"floor"`
	Capacity     int    `json:"capacity"`
	Description  string `json:"description,omitempty"`
	AreaName     string `json:"areaName,omitempty"`
	RoomTypeName string `json:"roomTypeName,omitempty"`
}

// RoomCreateRequest POST/PUT /Room body
type RoomCreateRequest struct {
	RoomTypeID  string `json:"roomTypeId"`
	AreaID      string `json:"areaId"`
	RoomNumber  string `json:"roomNumber"`
	RoomName    string `json:"roomName"`
	Floor       int    `json:"floor"`
	Capacity    int    `json:"capacity"`
	Description string `json:"description,omitempty"`
}

// RoomSlot a discrete bookable time interval for one Room.
// StartTime/EndTime are local wall-clock strings (see LocalTimeLayout),
// passed through untouched.
type RoomSlot struct {
	ID        string     `json:"id"`
	RoomID    string     `json:"roomId"`
	StartTime string     `json:"startTime"`
	EndTime   string     `json:"endTime"`
	SlotType  SlotType   `json:"slotType"`
	Status    SlotStatus `json:"status"`
	RoomName  string     `json:"roomName,omitempty"`
}

// RoomSlotCreateRequest POST /RoomSlot body
type RoomSlotCreateRequest struct {
	RoomID    string     `json:"roomId"`
	StartTime string     `json:"startTime"`
	EndTime   string     `json:"endTime"`
	SlotType  SlotType   `json:"slotType"`
	Status    SlotStatus `json:"status"`
}

// Booking a reservation of one RoomSlot. Read-mostly on this side:
// the approval workflow lives in the backend.
type Booking struct {
	ID            string        `json:"id"`
	RoomSlotID    string        `json:"roomSlotId,omitempty"`
	RoomNumber    string        `json:"roomNumber,omitempty"`
	RoomName      string        `json:"roomName,omitempty"`
	AreaName      string        `json:"areaName,omitempty"`
	RoomTypeName  string        `json:"roomTypeName,omitempty"`
	StartTime     string        `json:"startTime,omitempty"`
	EndTime       string        `json:"endTime,omitempty"`
	SlotType      SlotType      `json:"slotType,omitempty"`
	BookingStatus BookingStatus `json:"bookingStatus"`
	CreatedAt     string        `json:"createdAt,omitempty"`
	CreatedBy     string        `json:"createdBy,omitempty"`
}

// BookingCreateRequest POST /Booking body
type BookingCreateRequest struct {
	RoomSlotID string `json:"roomSlotId"`
	Note       string `json:"note,omitempty"`
}

// User backend account record
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}
