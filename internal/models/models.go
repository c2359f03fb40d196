package models

import "time"

// RoomType is the closed set of room categories the hotel offers.
type RoomType string

const (
	RoomTypeSingle RoomType = "single"
	RoomTypeDouble RoomType = "double"
	RoomTypeSuite  RoomType = "suite"
)

func (t RoomType) Valid() bool {
	switch t {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeSuite:
		return true
	}
	return false
}

type Room struct {
	ID         string   `json:"id"` // hex ObjectID
	RoomNumber int      `json:"roomNumber"`
	RoomType   RoomType `json:"roomType"`
	HasSeaView bool     `json:"hasSeaView"`
}

type Schedule struct {
	ID     string    `json:"id"` // hex ObjectID
	RoomID string    `json:"roomId"`
	Date   time.Time `json:"date"` // always midnight UTC
}
