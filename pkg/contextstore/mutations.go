package contextstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	entmission "github.com/maestro-research/maestro/ent/mission"
	"github.com/maestro-research/maestro/ent/missionlogentry"
	"github.com/maestro-research/maestro/pkg/events"
	"github.com/maestro-research/maestro/pkg/models"
)

// UpdateStatus transitions the mission's lifecycle state, rejecting edges the
// state machine does not allow. errorInfo is recorded for failed missions and
// cleared otherwise.
func (s *Store) UpdateStatus(ctx context.Context, missionID string, status models.MissionStatus, errorInfo string) error {
	st, err := s.state(missionID)
	if err != nil {
		return err
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	from := st.ctx.Status
	if !models.CanTransition(from, status) {
		return fmt.Errorf("%w: %s → %s", ErrInvalidTransition, from, status)
	}

	wctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	now := time.Now().UTC()
	st.ctx.Status = status
	st.ctx.ErrorInfo = errorInfo
	st.ctx.UpdatedAt = now

	upd := s.client.Mission.UpdateOneID(missionID).
		SetStatus(entmission.Status(status)).
		SetContextData(st.ctx).
		SetUpdatedAt(now)
	if errorInfo != "" {
		upd.SetErrorInfo(errorInfo)
	} else {
		upd.ClearErrorInfo()
	}
	if status == models.StatusPlanning {
		upd.SetStartedAt(now)
	}
	if status.IsTerminal() {
		upd.SetCompletedAt(now)
	}

	if err := upd.Exec(wctx); err != nil {
		// Roll back the in-memory change; the caller must treat the
		// transition as not applied.
		st.ctx.Status = from
		return fmt.Errorf("failed to persist status transition: %w", err)
	}

	s.publishStatus(ctx, missionID, status, errorInfo)
	return nil
}

// AppendLog appends an execution record, assigning id, sequence, and
// timestamp when missing. If the record carries model details, mission stats
// are updated in the same action; this is the only path that feeds usage
// into stats, so each model call is counted once.
func (s *Store) AppendLog(ctx context.Context, missionID string, rec models.ExecutionRecord) (*models.ExecutionRecord, error) {
	st, err := s.state(missionID)
	if err != nil {
		return nil, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	if rec.EntryID == "" {
		rec.EntryID = uuid.New().String()
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}
	rec.MissionID = missionID
	rec.Sequence = st.nextSequence

	wctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	create := s.client.MissionLogEntry.Create().
		SetID(rec.EntryID).
		SetMissionID(missionID).
		SetSequence(rec.Sequence).
		SetTimestamp(rec.Timestamp).
		SetAgentName(rec.AgentName).
		SetAction(rec.Action).
		SetStatus(missionlogentry.Status(rec.Status)).
		SetInputSummary(rec.InputSummary).
		SetOutputSummary(rec.OutputSummary).
		SetErrorMessage(rec.ErrorMessage).
		SetFullInput(rec.FullInput).
		SetFullOutput(rec.FullOutput)
	if rec.ModelDetails != nil {
		var md map[string]interface{}
		if err := remarshal(rec.ModelDetails, &md); err == nil {
			create.SetModelDetails(md)
		}
	}
	if len(rec.ToolCalls) > 0 {
		var tc []map[string]interface{}
		if err := remarshal(rec.ToolCalls, &tc); err == nil {
			create.SetToolCalls(tc)
		}
	}
	if len(rec.FileInteractions) > 0 {
		var fi []map[string]interface{}
		if err := remarshal(rec.FileInteractions, &fi); err == nil {
			create.SetFileInteractions(fi)
		}
	}

	if err := create.Exec(wctx); err != nil {
		return nil, fmt.Errorf("failed to persist log entry: %w", err)
	}

	st.nextSequence++
	st.ctx.ExecutionLog = append(st.ctx.ExecutionLog, rec)

	statsChanged := false
	if md := rec.ModelDetails; md != nil {
		st.ctx.Stats.Cost += md.Cost
		st.ctx.Stats.PromptTokens += md.PromptTokens
		st.ctx.Stats.CompletionTokens += md.CompletionTokens
		st.ctx.Stats.NativeTokens += md.NativeTokens
		statsChanged = true
		if err := s.persistContext(ctx, st.ctx); err != nil {
			s.logger.Warn("Failed to persist stats after log append",
				"mission_id", missionID, "error", err)
		}
	}

	if err := s.publisher.PublishLogEntry(ctx, missionID, events.LogEntryPayload{
		Type:          events.EventTypeLogEntry,
		EntryID:       rec.EntryID,
		MissionID:     missionID,
		Sequence:      rec.Sequence,
		AgentName:     rec.AgentName,
		Action:        rec.Action,
		InputSummary:  rec.InputSummary,
		OutputSummary: rec.OutputSummary,
		Status:        rec.Status,
		ErrorMessage:  rec.ErrorMessage,
		Timestamp:     rec.Timestamp.Format(time.RFC3339Nano),
	}); err != nil {
		s.logger.Warn("Failed to publish log entry event",
			"mission_id", missionID, "sequence", rec.Sequence, "error", err)
	}
	if statsChanged {
		s.publishStats(ctx, missionID, st.ctx.Stats)
	}

	return &rec, nil
}

// RecordToolCall bumps the per-backend retrieval counters.
func (s *Store) RecordToolCall(ctx context.Context, missionID, toolName string) error {
	st, err := s.state(missionID)
	if err != nil {
		return err
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	switch toolName {
	case "web_search", "intelligent_web_search":
		st.ctx.Stats.WebSearchCalls++
	case "document_search":
		st.ctx.Stats.DocSearchCalls++
	default:
		return nil
	}

	if err := s.persistContext(ctx, st.ctx); err != nil {
		return err
	}
	s.publishStats(ctx, missionID, st.ctx.Stats)
	return nil
}

// StorePlan replaces the mission's outline. The outline must have unique
// section ids and respect the maximum depth; the stored plan is a synthetic
// root whose Subsections are the top-level sections.
func (s *Store) StorePlan(ctx context.Context, missionID string, plan *models.ReportSection) error {
	if plan == nil {
		return fmt.Errorf("plan must not be nil")
	}
	if err := validateOutline(plan); err != nil {
		return err
	}

	st, err := s.state(missionID)
	if err != nil {
		return err
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	prev := st.ctx.Plan
	st.ctx.Plan = plan
	if err := s.persistContext(ctx, st.ctx); err != nil {
		st.ctx.Plan = prev
		return err
	}
	st.planRevision++

	if err := s.publisher.PublishPlanUpdated(ctx, missionID, events.PlanUpdatedPayload{
		Type:      events.EventTypePlanUpdated,
		MissionID: missionID,
		Plan:      plan,
		Revision:  st.planRevision,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}); err != nil {
		s.logger.Warn("Failed to publish plan event", "mission_id", missionID, "error", err)
	}
	return nil
}

// UpsertNote inserts or replaces a note by id, preserving insertion order.
func (s *Store) UpsertNote(ctx context.Context, missionID string, note models.Note) error {
	if note.NoteID == "" {
		return fmt.Errorf("note_id is required")
	}
	st, err := s.state(missionID)
	if err != nil {
		return err
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now().UTC()
	}

	replaced := -1
	for i := range st.ctx.Notes {
		if st.ctx.Notes[i].NoteID == note.NoteID {
			replaced = i
			break
		}
	}
	var prev models.Note
	if replaced >= 0 {
		prev = st.ctx.Notes[replaced]
		st.ctx.Notes[replaced] = note
	} else {
		st.ctx.Notes = append(st.ctx.Notes, note)
	}

	if err := s.persistContext(ctx, st.ctx); err != nil {
		if replaced >= 0 {
			st.ctx.Notes[replaced] = prev
		} else {
			st.ctx.Notes = st.ctx.Notes[:len(st.ctx.Notes)-1]
		}
		return err
	}

	s.publishNotes(ctx, st.ctx, []string{note.NoteID}, nil)
	return nil
}

// DiscardNotes marks the given notes as discarded. Unknown ids are ignored.
// Discarded notes stay in the context but are excluded from assignment.
func (s *Store) DiscardNotes(ctx context.Context, missionID string, noteIDs []string) error {
	if len(noteIDs) == 0 {
		return nil
	}
	st, err := s.state(missionID)
	if err != nil {
		return err
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	ids := make(map[string]bool, len(noteIDs))
	for _, id := range noteIDs {
		ids[id] = true
	}

	discarded := make([]string, 0, len(noteIDs))
	flipped := make([]int, 0, len(noteIDs))
	for i := range st.ctx.Notes {
		if ids[st.ctx.Notes[i].NoteID] && !st.ctx.Notes[i].Discarded {
			st.ctx.Notes[i].Discarded = true
			discarded = append(discarded, st.ctx.Notes[i].NoteID)
			flipped = append(flipped, i)
		}
	}
	if len(discarded) == 0 {
		return nil
	}

	if err := s.persistContext(ctx, st.ctx); err != nil {
		for _, i := range flipped {
			st.ctx.Notes[i].Discarded = false
		}
		return err
	}

	s.publishNotes(ctx, st.ctx, nil, discarded)
	return nil
}

// SetSectionContent stores a section's drafted markdown. pass is the writing
// pass number carried on the emitted event.
func (s *Store) SetSectionContent(ctx context.Context, missionID, sectionID, markdown string, pass int) error {
	st, err := s.state(missionID)
	if err != nil {
		return err
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	section := st.ctx.SectionByID(sectionID)
	if section == nil {
		return fmt.Errorf("%w: section %s", ErrNotFound, sectionID)
	}

	prev, had := st.ctx.ReportContent[sectionID]
	st.ctx.ReportContent[sectionID] = markdown
	if err := s.persistContext(ctx, st.ctx); err != nil {
		if had {
			st.ctx.ReportContent[sectionID] = prev
		} else {
			delete(st.ctx.ReportContent, sectionID)
		}
		return err
	}

	if err := s.publisher.PublishSectionUpdated(ctx, missionID, events.SectionUpdatedPayload{
		Type:      events.EventTypeSectionUpdate,
		MissionID: missionID,
		SectionID: sectionID,
		Title:     section.Title,
		Pass:      pass,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}); err != nil {
		s.logger.Warn("Failed to publish section event",
			"mission_id", missionID, "section_id", sectionID, "error", err)
	}
	return nil
}

// SetSectionNotes replaces a section's associated note ids.
func (s *Store) SetSectionNotes(ctx context.Context, missionID, sectionID string, noteIDs []string) error {
	st, err := s.state(missionID)
	if err != nil {
		return err
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	section := st.ctx.SectionByID(sectionID)
	if section == nil {
		return fmt.Errorf("%w: section %s", ErrNotFound, sectionID)
	}

	prev := section.AssociatedNoteIDs
	section.AssociatedNoteIDs = append([]string(nil), noteIDs...)
	if err := s.persistContext(ctx, st.ctx); err != nil {
		section.AssociatedNoteIDs = prev
		return err
	}
	return nil
}

// AddGoal appends an active goal to the goal pad and returns its id.
func (s *Store) AddGoal(ctx context.Context, missionID, text, sourceAgent string) (string, error) {
	st, err := s.state(missionID)
	if err != nil {
		return "", err
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	goal := models.GoalEntry{
		ID:          uuid.New().String(),
		Timestamp:   time.Now().UTC(),
		Text:        text,
		SourceAgent: sourceAgent,
		Status:      models.GoalActive,
	}
	st.ctx.GoalPad = append(st.ctx.GoalPad, goal)

	if err := s.persistContext(ctx, st.ctx); err != nil {
		st.ctx.GoalPad = st.ctx.GoalPad[:len(st.ctx.GoalPad)-1]
		return "", err
	}

	s.publishGoalPad(ctx, st.ctx)
	return goal.ID, nil
}

// UpdateGoalStatus updates a goal pad entry's status.
func (s *Store) UpdateGoalStatus(ctx context.Context, missionID, goalID string, status models.GoalStatus) error {
	st, err := s.state(missionID)
	if err != nil {
		return err
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	idx := -1
	for i := range st.ctx.GoalPad {
		if st.ctx.GoalPad[i].ID == goalID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("%w: goal %s", ErrNotFound, goalID)
	}

	prev := st.ctx.GoalPad[idx].Status
	st.ctx.GoalPad[idx].Status = status
	if err := s.persistContext(ctx, st.ctx); err != nil {
		st.ctx.GoalPad[idx].Status = prev
		return err
	}

	s.publishGoalPad(ctx, st.ctx)
	return nil
}

// AddThought appends a thought, evicting the oldest entries beyond the pad's
// capacity.
func (s *Store) AddThought(ctx context.Context, missionID, text, sourceAgent string) error {
	st, err := s.state(missionID)
	if err != nil {
		return err
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	prev := st.ctx.ThoughtPad
	pad := append(append([]models.ThoughtEntry{}, prev...), models.ThoughtEntry{
		ID:          uuid.New().String(),
		Timestamp:   time.Now().UTC(),
		Text:        text,
		SourceAgent: sourceAgent,
	})
	if len(pad) > thoughtPadCapacity {
		pad = pad[len(pad)-thoughtPadCapacity:]
	}
	st.ctx.ThoughtPad = pad

	if err := s.persistContext(ctx, st.ctx); err != nil {
		st.ctx.ThoughtPad = prev
		return err
	}

	if err := s.publisher.PublishThoughtPadUpdated(ctx, missionID, events.ThoughtPadUpdatedPayload{
		Type:      events.EventTypeThoughtPadUpdated,
		MissionID: missionID,
		Thoughts:  st.ctx.ThoughtPad,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}); err != nil {
		s.logger.Warn("Failed to publish thought pad event", "mission_id", missionID, "error", err)
	}
	return nil
}

// UpdateScratchpad replaces the shared scratchpad text.
func (s *Store) UpdateScratchpad(ctx context.Context, missionID, text string) error {
	st, err := s.state(missionID)
	if err != nil {
		return err
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	prev := st.ctx.Scratchpad
	st.ctx.Scratchpad = text
	if err := s.persistContext(ctx, st.ctx); err != nil {
		st.ctx.Scratchpad = prev
		return err
	}
	return nil
}

func (s *Store) publishStats(ctx context.Context, missionID string, stats models.MissionStats) {
	if err := s.publisher.PublishStatsUpdated(ctx, missionID, events.StatsUpdatedPayload{
		Type:      events.EventTypeStatsUpdated,
		MissionID: missionID,
		Stats:     stats,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}); err != nil {
		s.logger.Warn("Failed to publish stats event", "mission_id", missionID, "error", err)
	}
}

func (s *Store) publishNotes(ctx context.Context, mc *models.MissionContext, upserted, discarded []string) {
	active := 0
	for i := range mc.Notes {
		if !mc.Notes[i].Discarded {
			active++
		}
	}
	if err := s.publisher.PublishNotesUpdated(ctx, mc.MissionID, events.NotesUpdatedPayload{
		Type:         events.EventTypeNotesUpdated,
		MissionID:    mc.MissionID,
		UpsertedIDs:  upserted,
		DiscardedIDs: discarded,
		TotalNotes:   len(mc.Notes),
		ActiveNotes:  active,
		Timestamp:    time.Now().UTC().Format(time.RFC3339Nano),
	}); err != nil {
		s.logger.Warn("Failed to publish notes event", "mission_id", mc.MissionID, "error", err)
	}
}

func (s *Store) publishGoalPad(ctx context.Context, mc *models.MissionContext) {
	if err := s.publisher.PublishGoalPadUpdated(ctx, mc.MissionID, events.GoalPadUpdatedPayload{
		Type:      events.EventTypeGoalPadUpdated,
		MissionID: mc.MissionID,
		Goals:     mc.GoalPad,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}); err != nil {
		s.logger.Warn("Failed to publish goal pad event", "mission_id", mc.MissionID, "error", err)
	}
}

// validateOutline checks section id uniqueness, the depth bound, and that
// synthesize_from_subsections sections have children.
func validateOutline(root *models.ReportSection) error {
	if root.Depth() > models.MaxOutlineDepth+1 { // +1 for the synthetic root
		return fmt.Errorf("outline exceeds maximum depth %d", models.MaxOutlineDepth)
	}

	seen := make(map[string]bool)
	var verr error
	root.Walk(func(sec *models.ReportSection) bool {
		if sec != root {
			if sec.SectionID == "" {
				verr = fmt.Errorf("outline section %q has no id", sec.Title)
				return false
			}
			if seen[sec.SectionID] {
				verr = fmt.Errorf("duplicate section id %q in outline", sec.SectionID)
				return false
			}
			seen[sec.SectionID] = true
		}
		if sec.ResearchStrategy == models.StrategySynthesize && len(sec.Subsections) == 0 {
			verr = fmt.Errorf("section %q synthesizes from subsections but has none", sec.SectionID)
			return false
		}
		return true
	})
	return verr
}

// remarshal converts between JSON-compatible representations via a
// marshal/unmarshal round trip.
func remarshal(from, to any) error {
	b, err := json.Marshal(from)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, to)
}
