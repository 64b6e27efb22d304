package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airdash/airdash/models"
)

// rec is a shorthand record constructor used only in tests.
func rec(key string, lastModified int64) models.Record {
	return models.Record{
		Key:          key,
		Fields:       map[string]any{"amount": 500000},
		LastModified: lastModified,
	}
}

func TestRecordStore_PutAndGet(t *testing.T) {
	s := NewRecordStore()

	s.Put(rec("2024-03", 100))

	got, ok := s.Get("2024-03")
	require.True(t, ok)
	assert.Equal(t, "2024-03", got.Key)
	assert.Equal(t, int64(100), got.LastModified)
}

func TestRecordStore_GetMissing(t *testing.T) {
	s := NewRecordStore()

	_, ok := s.Get("absent")
	assert.False(t, ok)
}

// Put must overwrite unconditionally, even when the incoming record carries
// an older timestamp — winner selection belongs to the merge resolver.
func TestRecordStore_PutOverwritesRegardlessOfTimestamp(t *testing.T) {
	s := NewRecordStore()

	s.Put(rec("2024-03", 200))
	s.Put(rec("2024-03", 100))

	got, ok := s.Get("2024-03")
	require.True(t, ok)
	assert.Equal(t, int64(100), got.LastModified)
}

func TestRecordStore_Delete(t *testing.T) {
	s := NewRecordStore()

	s.Put(rec("2024-03", 100))
	s.Delete("2024-03")

	_, ok := s.Get("2024-03")
	assert.False(t, ok)
	assert.Zero(t, s.Len())
}

func TestRecordStore_DeleteMissingIsNoop(t *testing.T) {
	s := NewRecordStore()

	require.NotPanics(t, func() { s.Delete("absent") })
}

func TestRecordStore_AllReturnsCopy(t *testing.T) {
	s := NewRecordStore()
	s.Put(rec("a", 1))
	s.Put(rec("b", 2))

	all := s.All()
	require.Len(t, all, 2)

	// Mutating the returned map or its records must not leak into the store.
	delete(all, "a")
	got := all["b"]
	got.Fields["amount"] = -1

	_, stillThere := s.Get("a")
	assert.True(t, stillThere)
	fresh, _ := s.Get("b")
	assert.Equal(t, 500000, fresh.Fields["amount"])
}

func TestRecordStore_GetReturnsCopy(t *testing.T) {
	s := NewRecordStore()
	s.Put(rec("a", 1))

	got, _ := s.Get("a")
	got.Fields["amount"] = -1

	fresh, _ := s.Get("a")
	assert.Equal(t, 500000, fresh.Fields["amount"])
}

func TestRecordStore_Replace(t *testing.T) {
	s := NewRecordStore()
	s.Put(rec("old", 1))

	s.Replace(map[string]models.Record{
		"new-1": rec("new-1", 10),
		"new-2": rec("new-2", 20),
	})

	_, oldThere := s.Get("old")
	assert.False(t, oldThere)
	assert.Equal(t, 2, s.Len())
}

func TestRecordStore_ReplaceWithNil(t *testing.T) {
	s := NewRecordStore()
	s.Put(rec("old", 1))

	s.Replace(nil)

	assert.Zero(t, s.Len())
	assert.Empty(t, s.All())
}
