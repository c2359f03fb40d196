package models

import "errors"

// Sentinel errors shared by the repos, services and the HTTP layer.
// Handlers translate them to status codes, so repos and services must
// return these (possibly wrapped) instead of raw driver errors.
var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrRoomAlreadyExists = errors.New("room with this number already exists")
	ErrScheduleNotFound  = errors.New("schedule not found")
	ErrRoomBooked        = errors.New("room already booked")
	ErrInvalidID         = errors.New("invalid id format")

	ErrInvalidRoomNumber = errors.New("room number must be a positive integer")
	ErrInvalidRoomType   = errors.New("invalid room type")
)
