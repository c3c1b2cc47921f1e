package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/intervu/ent"
	"github.com/abhisek/intervu/ent/sessionsnapshot"
)

// sessionSnapshotRepo implements SessionSnapshotRepo using the ent client.
type sessionSnapshotRepo struct {
	client *ent.Client
}

// Save replaces any existing marker with the given session state. Delete
// then create keeps "at most one unfinished session" true even after a
// crash between writes left stale rows behind.
func (r *sessionSnapshotRepo) Save(ctx context.Context, sessionID string, data json.RawMessage) error {
	var dataMap map[string]any
	if err := json.Unmarshal(data, &dataMap); err != nil {
		return fmt.Errorf("decode snapshot data: %w", err)
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin snapshot tx: %w", err)
	}

	if _, err := tx.SessionSnapshot.Delete().Exec(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear prior snapshot: %w", err)
	}

	_, err = tx.SessionSnapshot.Create().
		SetSessionID(sessionID).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("save snapshot: %w", err)
	}

	return tx.Commit()
}

func (r *sessionSnapshotRepo) Load(ctx context.Context) (*SessionSnapshot, error) {
	s, err := r.client.SessionSnapshot.Query().
		Order(ent.Desc(sessionsnapshot.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query snapshot: %w", err)
	}

	raw, err := json.Marshal(s.Data)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot data: %w", err)
	}

	return &SessionSnapshot{
		ID:        s.ID,
		SessionID: s.SessionID,
		Timestamp: s.Timestamp,
		Data:      raw,
	}, nil
}

func (r *sessionSnapshotRepo) Clear(ctx context.Context) error {
	if _, err := r.client.SessionSnapshot.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}
	return nil
}
