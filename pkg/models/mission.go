// Package models defines the mission data model shared by the context store,
// the agents, and the API layer. These types are persistence-agnostic: the
// ent schema serializes MissionContext as a JSON blob and the execution log
// as its own table.
package models

import "time"

// MissionStatus represents the lifecycle state of a mission.
type MissionStatus string

const (
	StatusPending   MissionStatus = "pending"
	StatusPlanning  MissionStatus = "planning"
	StatusRunning   MissionStatus = "running"
	StatusPaused    MissionStatus = "paused"
	StatusStopped   MissionStatus = "stopped"
	StatusCompleted MissionStatus = "completed"
	StatusFailed    MissionStatus = "failed"
)

// IsTerminal reports whether the status admits no further transitions.
func (s MissionStatus) IsTerminal() bool {
	switch s {
	case StatusStopped, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// CanTransition reports whether from → to is a legal status transition.
//
//	pending → planning → running ↔ paused
//	                     planning ↔ paused
//	                     running → stopped | completed
//	any non-terminal → failed
//	planning|running|paused → stopped
//
// A pause may land while the planner is still working; resume restores the
// status the mission was paused from.
func CanTransition(from, to MissionStatus) bool {
	if from == to {
		return false
	}
	if to == StatusFailed {
		return !from.IsTerminal()
	}
	switch from {
	case StatusPending:
		return to == StatusPlanning
	case StatusPlanning:
		return to == StatusRunning || to == StatusPaused || to == StatusStopped
	case StatusRunning:
		return to == StatusPaused || to == StatusStopped || to == StatusCompleted
	case StatusPaused:
		return to == StatusRunning || to == StatusPlanning || to == StatusStopped
	}
	return false
}

// ResearchStrategy determines how a section's content is produced.
type ResearchStrategy string

const (
	StrategyResearchBased  ResearchStrategy = "research_based"
	StrategyContentBased   ResearchStrategy = "content_based"
	StrategySynthesize     ResearchStrategy = "synthesize_from_subsections"
)

// MaxOutlineDepth bounds the report section tree.
const MaxOutlineDepth = 3

// ReportSection is a node in the report outline. Section ids are minted once
// by the planner and stay stable across reflection edits.
type ReportSection struct {
	SectionID         string           `json:"section_id"`
	Title             string           `json:"title"`
	Description       string           `json:"description"`
	Subsections       []ReportSection  `json:"subsections,omitempty"`
	AssociatedNoteIDs []string         `json:"associated_note_ids,omitempty"`
	ResearchStrategy  ResearchStrategy `json:"research_strategy"`
}

// Walk visits the section and all descendants depth-first, in outline order.
// Returning false from fn stops the walk.
func (s *ReportSection) Walk(fn func(*ReportSection) bool) bool {
	if !fn(s) {
		return false
	}
	for i := range s.Subsections {
		if !s.Subsections[i].Walk(fn) {
			return false
		}
	}
	return true
}

// Depth returns the depth of the subtree rooted at s (a leaf has depth 1).
func (s *ReportSection) Depth() int {
	max := 0
	for i := range s.Subsections {
		if d := s.Subsections[i].Depth(); d > max {
			max = d
		}
	}
	return max + 1
}

// SourceType classifies where a note's claim came from.
type SourceType string

const (
	SourceDocument SourceType = "document"
	SourceWeb      SourceType = "web"
	SourceInternal SourceType = "internal"
)

// Note is a self-contained sourced claim extracted during research.
// Discarded notes stay in the context (and the log) but are excluded from
// assignment and writing.
type Note struct {
	NoteID         string         `json:"note_id"`
	Content        string         `json:"content"`
	SourceType     SourceType     `json:"source_type"`
	SourceID       string         `json:"source_id"` // chunk id, URL, or synthesis id
	SourceMetadata map[string]any `json:"source_metadata,omitempty"`
	Discarded      bool           `json:"discarded,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

// GoalStatus is the lifecycle of a goal pad entry.
type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalAddressed GoalStatus = "addressed"
	GoalObsolete  GoalStatus = "obsolete"
)

// GoalEntry is an active research objective shared across agents.
type GoalEntry struct {
	ID          string     `json:"id"`
	Timestamp   time.Time  `json:"timestamp"`
	Text        string     `json:"text"`
	SourceAgent string     `json:"source_agent"`
	Status      GoalStatus `json:"status"`
}

// ThoughtEntry is a short agent-generated reminder. Thoughts are immutable
// and the pad evicts oldest-first at its configured capacity.
type ThoughtEntry struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Text        string    `json:"text"`
	SourceAgent string    `json:"source_agent"`
}

// MissionStats aggregates cost and call counts across the mission.
type MissionStats struct {
	Cost             float64 `json:"cost"`
	PromptTokens     int     `json:"prompt_tokens"`
	CompletionTokens int     `json:"completion_tokens"`
	NativeTokens     int     `json:"native_tokens"`
	WebSearchCalls   int     `json:"web_search_calls"`
	DocSearchCalls   int     `json:"doc_search_calls"`
}

// ToolSelection enables or disables the two retrieval backends for a mission.
type ToolSelection struct {
	LocalRAG  bool `json:"local_rag"`
	WebSearch bool `json:"web_search"`
}

// MissionMetadata holds the recognized metadata keys of a mission.
type MissionMetadata struct {
	ToolSelection    ToolSelection   `json:"tool_selection"`
	DocumentGroupID  string          `json:"document_group_id,omitempty"`
	MissionSettings  MissionSettings `json:"mission_settings"`
	InitialQuestions []string        `json:"initial_questions,omitempty"`
	FinalQuestions   []string        `json:"final_questions,omitempty"`
}

// MissionContext is the single source of truth for one mission. The context
// store exclusively owns mutation; agents read snapshots.
//
// ExecutionLog is persisted in its own table (not in the context blob) and
// hydrated on load, hence the json:"-" tag.
type MissionContext struct {
	MissionID string `json:"mission_id"`
	ChatID    string `json:"chat_id"`
	UserID    string `json:"user_id"`

	UserRequest string        `json:"user_request"`
	Status      MissionStatus `json:"status"`
	ErrorInfo   string        `json:"error_info,omitempty"`

	Plan *ReportSection `json:"plan,omitempty"` // synthetic root; top-level sections are its Subsections

	Notes         []Note            `json:"notes"` // insertion order preserved
	ReportContent map[string]string `json:"report_content"`
	GoalPad       []GoalEntry       `json:"goal_pad"`
	ThoughtPad    []ThoughtEntry    `json:"thought_pad"`
	Scratchpad    string            `json:"agent_scratchpad,omitempty"`

	Stats    MissionStats    `json:"stats"`
	Metadata MissionMetadata `json:"metadata"`

	CurrentReportVersion int `json:"current_report_version,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ExecutionLog []ExecutionRecord `json:"-"`
}

// NoteByID returns the note with the given id, or nil.
func (c *MissionContext) NoteByID(id string) *Note {
	for i := range c.Notes {
		if c.Notes[i].NoteID == id {
			return &c.Notes[i]
		}
	}
	return nil
}

// ActiveNotes returns all non-discarded notes in insertion order.
func (c *MissionContext) ActiveNotes() []Note {
	notes := make([]Note, 0, len(c.Notes))
	for _, n := range c.Notes {
		if !n.Discarded {
			notes = append(notes, n)
		}
	}
	return notes
}

// SectionByID returns the outline section with the given id, or nil.
func (c *MissionContext) SectionByID(id string) *ReportSection {
	if c.Plan == nil {
		return nil
	}
	var found *ReportSection
	c.Plan.Walk(func(s *ReportSection) bool {
		if s.SectionID == id {
			found = s
			return false
		}
		return true
	})
	return found
}

// Clone returns a deep copy safe to hand to agents as a read snapshot.
func (c *MissionContext) Clone() *MissionContext {
	cp := *c

	if c.Plan != nil {
		cp.Plan = cloneSection(c.Plan)
	}

	cp.Notes = make([]Note, len(c.Notes))
	copy(cp.Notes, c.Notes)
	for i := range cp.Notes {
		cp.Notes[i].SourceMetadata = cloneMap(c.Notes[i].SourceMetadata)
	}

	cp.ReportContent = make(map[string]string, len(c.ReportContent))
	for k, v := range c.ReportContent {
		cp.ReportContent[k] = v
	}

	cp.GoalPad = make([]GoalEntry, len(c.GoalPad))
	copy(cp.GoalPad, c.GoalPad)

	cp.ThoughtPad = make([]ThoughtEntry, len(c.ThoughtPad))
	copy(cp.ThoughtPad, c.ThoughtPad)

	cp.Metadata.InitialQuestions = append([]string(nil), c.Metadata.InitialQuestions...)
	cp.Metadata.FinalQuestions = append([]string(nil), c.Metadata.FinalQuestions...)

	cp.ExecutionLog = make([]ExecutionRecord, len(c.ExecutionLog))
	copy(cp.ExecutionLog, c.ExecutionLog)

	return &cp
}

func cloneSection(s *ReportSection) *ReportSection {
	cp := *s
	cp.AssociatedNoteIDs = append([]string(nil), s.AssociatedNoteIDs...)
	cp.Subsections = make([]ReportSection, len(s.Subsections))
	for i := range s.Subsections {
		cp.Subsections[i] = *cloneSection(&s.Subsections[i])
	}
	return &cp
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	cp := make(map[string]any, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return cp
}
