package model

import (
	"fmt"
	"sync"
)

// SyncReport aggregates the outcome of a fan-out sync. A report with failures
// is an expected result, not an error: callers decide whether to surface it.
// Entry and league failures are tracked separately, the two id namespaces
// overlap.
type SyncReport struct {
	mu              sync.Mutex
	Attempted       int     `json:"attempted"`
	Failed          int     `json:"failed"`
	FailedIDs       []int32 `json:"failed_ids,omitempty"`
	FailedLeagueIDs []int32 `json:"failed_league_ids,omitempty"`
}

// RecordSuccess notes one completed unit. Safe for concurrent use.
func (r *SyncReport) RecordSuccess() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Attempted++
}

// RecordFailure notes one failed entry. Safe for concurrent use.
func (r *SyncReport) RecordFailure(id int32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Attempted++
	r.Failed++
	r.FailedIDs = append(r.FailedIDs, id)
}

// RecordLeagueFailure notes one league whose sync failed outright, before any
// of its members could be attempted. Safe for concurrent use.
func (r *SyncReport) RecordLeagueFailure(leagueID int32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Attempted++
	r.Failed++
	r.FailedLeagueIDs = append(r.FailedLeagueIDs, leagueID)
}

// Merge folds another report into this one.
func (r *SyncReport) Merge(other *SyncReport) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Attempted += other.Attempted
	r.Failed += other.Failed
	r.FailedIDs = append(r.FailedIDs, other.FailedIDs...)
	r.FailedLeagueIDs = append(r.FailedLeagueIDs, other.FailedLeagueIDs...)
}

// Success reports whether every unit in the fan-out completed.
func (r *SyncReport) Success() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Failed == 0
}

func (r *SyncReport) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fmt.Sprintf("%d/%d synced", r.Attempted-r.Failed, r.Attempted)
}
