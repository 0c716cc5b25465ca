package sync

import (
	"context"
	"sort"

	"content-platform/core/apperr"

	contentmodels "content-platform/feature/content/models"
	performermodels "content-platform/feature/performer/models"
)

// SideCounts holds per-entity totals for one side of the sync.
type SideCounts struct {
	Performers int64 `json:"performers"`
	Content    int64 `json:"content"`
}

// Drift lists the hashes present on one side but not the other.
type Drift struct {
	PerformersMissingInDB []string `json:"performersMissingInDb"`
	PerformersMissingInR2 []string `json:"performersMissingInR2"`
	ContentMissingInDB    []string `json:"contentMissingInDb"`
	ContentMissingInR2    []string `json:"contentMissingInR2"`
}

// Status is a read-only comparison of the relational store against
// bucket storage.
type Status struct {
	Neon   SideCounts `json:"neon"`
	R2     SideCounts `json:"r2"`
	Synced bool       `json:"synced"`
	Drift  Drift      `json:"drift"`
}

// Status compares hash sets on both sides without mutating either.
// Equal counts with different members still report drift.
func (s *Service) Status(ctx context.Context) (*Status, error) {
	var dbPerformers, dbContent []string
	if err := s.db.Model(&performermodels.Performer{}).Pluck("hash", &dbPerformers).Error; err != nil {
		return nil, apperr.ExternalService("failed to load performer hashes", err)
	}
	if err := s.db.Model(&contentmodels.Content{}).Pluck("hash", &dbContent).Error; err != nil {
		return nil, apperr.ExternalService("failed to load content hashes", err)
	}

	r2Performers, err := s.store.ListPerformerHashes(ctx)
	if err != nil {
		return nil, err
	}
	r2Content, err := s.store.ListContentHashes(ctx)
	if err != nil {
		return nil, err
	}

	status := &Status{
		Neon: SideCounts{Performers: int64(len(dbPerformers)), Content: int64(len(dbContent))},
		R2:   SideCounts{Performers: int64(len(r2Performers)), Content: int64(len(r2Content))},
		Drift: Drift{
			PerformersMissingInDB: difference(r2Performers, dbPerformers),
			PerformersMissingInR2: difference(dbPerformers, r2Performers),
			ContentMissingInDB:    difference(r2Content, dbContent),
			ContentMissingInR2:    difference(dbContent, r2Content),
		},
	}
	status.Synced = len(status.Drift.PerformersMissingInDB) == 0 &&
		len(status.Drift.PerformersMissingInR2) == 0 &&
		len(status.Drift.ContentMissingInDB) == 0 &&
		len(status.Drift.ContentMissingInR2) == 0

	return status, nil
}

// difference returns the members of a that are absent from b, sorted.
func difference(a, b []string) []string {
	present := make(map[string]struct{}, len(b))
	for _, hash := range b {
		present[hash] = struct{}{}
	}

	missing := []string{}
	for _, hash := range a {
		if _, ok := present[hash]; !ok {
			missing = append(missing, hash)
		}
	}
	sort.Strings(missing)
	return missing
}
