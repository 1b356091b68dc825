package services

import (
	"context"
	"fmt"
	"time"

	"github.com/maestro-research/maestro/ent"
	"github.com/maestro-research/maestro/ent/event"
)

// EventService manages the persisted realtime events that back WebSocket
// catchup.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// GetEventsSince retrieves up to limit events on a channel with an id
// greater than sinceID, oldest first. Backs the WebSocket catchup mechanism.
func (s *EventService) GetEventsSince(ctx context.Context, channel string, sinceID, limit int) ([]*ent.Event, error) {
	query := s.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(sinceID),
		).
		Order(ent.Asc(event.FieldID))
	if limit > 0 {
		query = query.Limit(limit)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	return events, nil
}

// CleanupMissionEvents removes all events for a mission. Called after a
// mission has been terminal long enough that no client needs catchup.
func (s *EventService) CleanupMissionEvents(ctx context.Context, missionID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.MissionIDEQ(missionID)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup mission events: %w", err)
	}

	return count, nil
}

// CleanupStaleEvents removes events older than the TTL regardless of mission
// state. Safety net for missions whose post-terminal cleanup never ran.
func (s *EventService) CleanupStaleEvents(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup stale events: %w", err)
	}

	return count, nil
}
