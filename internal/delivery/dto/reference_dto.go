package dto

import "github.com/google/uuid"

type SpecialtyResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	DefaultPrice    *string   `json:"default_price,omitempty"`
	SessionDuration *int      `json:"session_duration,omitempty"`
}

type RoomResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Capacity    *int      `json:"capacity,omitempty"`
	Equipment   *string   `json:"equipment,omitempty"`
}

type ReferenceListResponse struct {
	Items interface{} `json:"items"`
	Total int         `json:"total"`
}
