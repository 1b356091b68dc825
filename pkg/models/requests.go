package models

import "time"

// CreateMissionRequest contains fields for creating a new mission.
type CreateMissionRequest struct {
	UserID          string          `json:"user_id"`
	ChatID          string          `json:"chat_id"`
	UserRequest     string          `json:"request"`
	ToolSelection   ToolSelection   `json:"tool_selection"`
	DocumentGroupID string          `json:"document_group_id,omitempty"`
	MissionSettings MissionSettings `json:"mission_settings,omitempty"`
}

// MissionFilters contains filtering options for listing missions.
type MissionFilters struct {
	Status         string     `json:"status,omitempty"`
	UserID         string     `json:"user_id,omitempty"`
	ChatID         string     `json:"chat_id,omitempty"`
	CreatedAfter   *time.Time `json:"created_after,omitempty"`
	CreatedBefore  *time.Time `json:"created_before,omitempty"`
	Limit          int        `json:"limit,omitempty"`
	Offset         int        `json:"offset,omitempty"`
	IncludeDeleted bool       `json:"include_deleted,omitempty"`
}
