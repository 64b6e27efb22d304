package service

import (
	"github.com/airdash/airdash/models"
)

// mergeResolver implements last-writer-wins merging on the record's
// millisecond LastModified stamp.
type mergeResolver struct{}

// NewMergeResolver constructs the last-writer-wins [MergeResolver].
func NewMergeResolver() MergeResolver {
	return &mergeResolver{}
}

// Resolve implements [MergeResolver]. Ties keep the local copy.
func (m *mergeResolver) Resolve(local, remote models.Record) models.Record {
	if remote.LastModified > local.LastModified {
		return remote
	}
	return local
}

// MergeSnapshot implements [MergeResolver].
func (m *mergeResolver) MergeSnapshot(local, remote map[string]models.Record) map[string]models.Record {
	merged := make(map[string]models.Record, len(local)+len(remote))
	for key, record := range local {
		merged[key] = record
	}
	for key, record := range remote {
		if existing, ok := merged[key]; ok {
			merged[key] = m.Resolve(existing, record)
			continue
		}
		merged[key] = record
	}
	return merged
}
