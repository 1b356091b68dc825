package api

import (
	"time"

	"github.com/maestro-research/maestro/ent"
)

// MissionResponse is the external view of a mission row.
type MissionResponse struct {
	MissionID            string     `json:"mission_id"`
	ChatID               string     `json:"chat_id,omitempty"`
	UserID               string     `json:"user_id"`
	UserRequest          string     `json:"request"`
	Status               string     `json:"status"`
	ErrorInfo            string     `json:"error_info,omitempty"`
	CurrentReportVersion int        `json:"current_report_version,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
	StartedAt            *time.Time `json:"started_at,omitempty"`
	CompletedAt          *time.Time `json:"completed_at,omitempty"`
}

func missionResponse(m *ent.Mission) *MissionResponse {
	resp := &MissionResponse{
		MissionID:   m.ID,
		ChatID:      m.ChatID,
		UserID:      m.UserID,
		UserRequest: m.UserRequest,
		Status:      string(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		StartedAt:   m.StartedAt,
		CompletedAt: m.CompletedAt,
	}
	if m.ErrorInfo != nil {
		resp.ErrorInfo = *m.ErrorInfo
	}
	if m.CurrentReportVersion != nil {
		resp.CurrentReportVersion = *m.CurrentReportVersion
	}
	return resp
}

// MissionListResponse is a page of missions.
type MissionListResponse struct {
	Missions   []*MissionResponse `json:"missions"`
	TotalCount int                `json:"total_count"`
	Limit      int                `json:"limit"`
	Offset     int                `json:"offset"`
}

// ReportVersionResponse is the external view of a report version.
type ReportVersionResponse struct {
	MissionID     string    `json:"mission_id"`
	Version       int       `json:"version"`
	Title         string    `json:"title"`
	Content       string    `json:"content,omitempty"`
	RevisionNotes string    `json:"revision_notes,omitempty"`
	IsCurrent     bool      `json:"is_current"`
	CreatedAt     time.Time `json:"created_at"`
}

func reportVersionResponse(rv *ent.ReportVersion, includeContent bool) *ReportVersionResponse {
	resp := &ReportVersionResponse{
		MissionID:     rv.MissionID,
		Version:       rv.Version,
		Title:         rv.Title,
		RevisionNotes: rv.RevisionNotes,
		IsCurrent:     rv.IsCurrent,
		CreatedAt:     rv.CreatedAt,
	}
	if includeContent {
		resp.Content = rv.Content
	}
	return resp
}
