package models

// RoomDetails describes one class of guest rooms at a venue.
type RoomDetails struct {
	NoOfRooms     int      `json:"noOfRooms"`
	PricePerNight float64  `json:"pricePerNight"`
	Amenities     []string `json:"amenities,omitempty"`
	RoomImages    []string `json:"roomImages,omitempty"`
}

// Room holds the AC and Non-AC room offer of a venue.
type Room struct {
	ID        string       `json:"_id"`
	Mandap    Ref          `json:"mandapId"`
	AcRoom    *RoomDetails `json:"AcRoom,omitempty"`
	NonAcRoom *RoomDetails `json:"NonAcRoom,omitempty"`
}

// RoomInput is the field set for creating or updating rooms. MandapID is
// ignored on update.
type RoomInput struct {
	MandapID  string       `json:"mandapId"`
	AcRoom    *RoomDetails `json:"AcRoom,omitempty"`
	NonAcRoom *RoomDetails `json:"NonAcRoom,omitempty"`
}
