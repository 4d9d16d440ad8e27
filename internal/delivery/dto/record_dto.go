package dto

import "github.com/google/uuid"

// Request DTOs

// ListRequest carries the search term and categorical filters of a list view.
type ListRequest struct {
	Search  string
	Filters map[string]string
}

type CreateRecordRequest struct {
	Values map[string]string `json:"values" validate:"required"`
}

type FieldChangeRequest struct {
	Values map[string]string `json:"values"`
	Field  string            `json:"field" validate:"required"`
	Value  string            `json:"value"`
}

// Response DTOs

// ListResponse holds the filtered items plus stats over the full list.
type ListResponse struct {
	Items    interface{} `json:"items"`
	Total    int         `json:"total"`
	Filtered int         `json:"filtered"`
	Stats    interface{} `json:"stats,omitempty"`
}

type NotificationResponse struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Variant     string `json:"variant"`
}

type SubmissionResponse struct {
	Notification NotificationResponse `json:"notification"`
}

// PartialFailureResponse describes a create that left provisioned state behind.
type PartialFailureResponse struct {
	Notification NotificationResponse `json:"notification"`
	IdentityID   uuid.UUID            `json:"identity_id"`
	Cleanup      string               `json:"cleanup"`
	CleanupError string               `json:"cleanup_error,omitempty"`
}

type OptionResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type FieldResponse struct {
	Name      string           `json:"name"`
	Label     string           `json:"label"`
	Kind      string           `json:"kind"`
	Required  bool             `json:"required"`
	MaxLength int              `json:"max_length,omitempty"`
	Options   []OptionResponse `json:"options,omitempty"`
}

type FormResponse struct {
	Entity string          `json:"entity"`
	Fields []FieldResponse `json:"fields"`
}

type FieldChangeResponse struct {
	Values map[string]string `json:"values"`
}
