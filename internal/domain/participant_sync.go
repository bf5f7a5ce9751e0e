package domain

import (
	"strings"

	"github.com/google/uuid"
)

// ParticipantInput is one desired roster entry for SyncParticipants. Entries
// without an ID always create a new participant; entries with an ID rename
// the matching existing participant in place.
type ParticipantInput struct {
	ID   *uuid.UUID
	Name string
}

// SyncResult reports what a reconciliation actually did. Updated counts only
// genuine renames, so an echo of the current roster reports all zeros.
type SyncResult struct {
	Created int
	Updated int
	Deleted int
}

func (r SyncResult) Changed() bool {
	return r.Created > 0 || r.Updated > 0 || r.Deleted > 0
}

// SyncParticipants reconciles the roster against the desired entries:
// id-less entries create, id-bearing entries rename, and every current
// participant whose id is absent from the input is removed.
//
// Repeated calls are idempotent only when the caller echoes back the ids
// returned by a previous call; re-submitting bare names always creates new
// participants instead of matching them by name.
func (p *Project) SyncParticipants(items []ParticipantInput) (SyncResult, error) {
	const op = "project.sync_participants"

	type entry struct {
		id   *uuid.UUID
		name string
	}

	seenIDs := make(map[uuid.UUID]bool, len(items))
	seenNames := make(map[string]bool, len(items))
	entries := make([]entry, 0, len(items))
	for _, it := range items {
		name := strings.TrimSpace(it.Name)
		if name == "" {
			return SyncResult{}, InvalidArgumentError(op, "participant name cannot be empty")
		}
		key := strings.ToLower(name)
		if seenNames[key] {
			return SyncResult{}, InvalidArgumentError(op, "duplicate participant name "+name)
		}
		seenNames[key] = true
		if it.ID != nil {
			if *it.ID == uuid.Nil {
				return SyncResult{}, InvalidArgumentError(op, "participant id cannot be empty")
			}
			if seenIDs[*it.ID] {
				return SyncResult{}, InvalidArgumentError(op, "duplicate participant id "+it.ID.String())
			}
			seenIDs[*it.ID] = true
		}
		entries = append(entries, entry{id: it.ID, name: name})
	}

	current := make(map[uuid.UUID]*ProjectParticipant, len(p.Participants))
	for _, existing := range p.Participants {
		current[existing.ID] = existing
	}
	for id := range seenIDs {
		if current[id] == nil {
			return SyncResult{}, InvalidArgumentError(op, "participant "+id.String()+" is not part of this project")
		}
	}

	var res SyncResult
	next := make([]*ProjectParticipant, 0, len(entries))
	for _, e := range entries {
		if e.id == nil {
			next = append(next, &ProjectParticipant{ID: uuid.New(), ProjectID: p.ID, Name: e.name})
			res.Created++
			continue
		}
		existing := current[*e.id]
		if existing.Name != e.name {
			existing.Name = e.name
			res.Updated++
		}
		next = append(next, existing)
	}
	res.Deleted = len(p.Participants) - len(seenIDs)

	p.Participants = next
	if res.Changed() {
		p.touch()
	}
	return res, nil
}
