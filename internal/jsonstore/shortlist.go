package jsonstore

import (
	"context"
	"encoding/json"

	"github.com/neighborly/carehub/internal/domain/request"
)

// LegacyShortlistActor is the reserved ledger key that flat-array shortlist
// files are migrated under. Older deployments stored one unattributed list;
// those entries keep working but belong to no real account.
const LegacyShortlistActor = "legacy"

// ShortlistStore persists per-actor shortlists as a JSON object mapping
// actor to an ordered list of request ids.
type ShortlistStore struct {
	file *file
}

// NewShortlistStore creates a shortlist store backed by the given file path.
func NewShortlistStore(path string) *ShortlistStore {
	return &ShortlistStore{file: newFile(path)}
}

// ListIDs returns the actor's shortlist in saved order.
func (s *ShortlistStore) ListIDs(ctx context.Context, actor string) ([]string, error) {
	var ids []string
	err := s.file.withLock(ctx, func() error {
		ledger, err := s.loadLedger()
		if err != nil {
			return err
		}
		ids = ledger[actor]
		return nil
	})
	return ids, err
}

// Add appends a request id to the actor's shortlist. Adding an id already
// present reports added=false and leaves the file untouched.
func (s *ShortlistStore) Add(ctx context.Context, actor, id string) (bool, error) {
	added := false
	err := s.file.withLock(ctx, func() error {
		ledger, err := s.loadLedger()
		if err != nil {
			return err
		}
		for _, existing := range ledger[actor] {
			if request.SameID(existing, id) {
				return nil
			}
		}
		ledger[actor] = append(ledger[actor], request.DisplayID(id))
		added = true
		return save(s.file, ledger)
	})
	return added, err
}

// Remove drops a request id from the actor's shortlist. Removing an absent
// id reports removed=false and leaves the file untouched.
func (s *ShortlistStore) Remove(ctx context.Context, actor, id string) (bool, error) {
	removed := false
	err := s.file.withLock(ctx, func() error {
		ledger, err := s.loadLedger()
		if err != nil {
			return err
		}
		entries := ledger[actor]
		for i, existing := range entries {
			if request.SameID(existing, id) {
				ledger[actor] = append(entries[:i], entries[i+1:]...)
				if len(ledger[actor]) == 0 {
					delete(ledger, actor)
				}
				removed = true
				return save(s.file, ledger)
			}
		}
		return nil
	})
	return removed, err
}

// loadLedger reads the ledger, migrating the historical flat-array layout
// under the reserved legacy actor. Callers must hold the file lock.
func (s *ShortlistStore) loadLedger() (map[string][]string, error) {
	raw, err := load(s.file, json.RawMessage(nil))
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return map[string][]string{}, nil
	}

	var ledger map[string][]string
	if err := json.Unmarshal(raw, &ledger); err == nil {
		if ledger == nil {
			ledger = map[string][]string{}
		}
		return ledger, nil
	}

	var flat []string
	if err := json.Unmarshal(raw, &flat); err == nil {
		ledger = map[string][]string{}
		if len(flat) > 0 {
			ledger[LegacyShortlistActor] = flat
		}
		return ledger, nil
	}

	return map[string][]string{}, nil
}
