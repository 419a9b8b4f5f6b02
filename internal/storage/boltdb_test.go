// File: internal/storage/boltdb_test.go

package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// newTestStorage opens a store in a temp dir with a clock that advances one
// second per save
func newTestStorage(t *testing.T, keep int) *BoltStorage {
	t.Helper()
	storage, err := NewBoltStorage(StorageConfig{
		DBPath:    filepath.Join(t.TempDir(), "nested", "history.db"),
		Logger:    zaptest.NewLogger(t),
		KeepItems: keep,
	})
	require.NoError(t, err)
	t.Cleanup(func() { storage.Close() })

	clock := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	storage.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return storage
}

func save(t *testing.T, s *BoltStorage, source, text, lang string) *TranslationRecord {
	t.Helper()
	rec := &TranslationRecord{Source: source, Text: text, TargetLang: lang, Provider: "google"}
	require.NoError(t, s.SaveTranslation(rec))
	return rec
}

func TestBoltStorage(t *testing.T) {
	storage := newTestStorage(t, 0)

	t.Run("EmptyStore", func(t *testing.T) {
		_, err := storage.GetLatest()
		assert.ErrorIs(t, err, ErrNotFound)

		n, err := storage.Count()
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("SaveAndGetLatest", func(t *testing.T) {
		rec := save(t, storage, "cat", "gato", "pt")
		assert.NotEmpty(t, rec.ID)
		assert.Equal(t, RecordKey("cat", "pt"), rec.Hash)

		latest, err := storage.GetLatest()
		require.NoError(t, err)
		assert.Equal(t, rec.ID, latest.ID)
		assert.Equal(t, "gato", latest.Text)
		assert.Len(t, latest.Occurrences, 1)
	})

	t.Run("SameTextOtherLanguageIsNewRecord", func(t *testing.T) {
		save(t, storage, "cat", "gato", "es")

		n, err := storage.Count()
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("RepeatAddsOccurrence", func(t *testing.T) {
		first, err := storage.Lookup("cat", "pt")
		require.NoError(t, err)

		again := save(t, storage, "cat", "gato!", "pt")
		assert.Equal(t, first.ID, again.ID)
		assert.Len(t, again.Occurrences, 2)
		assert.True(t, again.Updated.After(first.Updated))
		assert.Equal(t, first.Created, again.Created)
		assert.Equal(t, "gato!", again.Text)

		latest, err := storage.GetLatest()
		require.NoError(t, err)
		assert.Equal(t, "pt", latest.TargetLang)

		n, err := storage.Count()
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("LookupMissing", func(t *testing.T) {
		_, err := storage.Lookup("dog", "pt")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestBoltStorage_GetHistory(t *testing.T) {
	storage := newTestStorage(t, 0)
	save(t, storage, "one", "um", "pt")
	save(t, storage, "two", "dois", "pt")
	save(t, storage, "three", "três", "pt")

	all, err := storage.GetHistory(0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"três", "dois", "um"}, texts(all))

	two, err := storage.GetHistory(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"três", "dois"}, texts(two))
}

func TestBoltStorage_Flush(t *testing.T) {
	storage := newTestStorage(t, 0)
	save(t, storage, "one", "um", "pt")
	save(t, storage, "two", "dois", "pt")
	save(t, storage, "three", "três", "pt")
	save(t, storage, "one", "um", "pt")

	deleted, err := storage.Flush(2)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	rest, err := storage.GetHistory(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"um", "três"}, texts(rest))

	deleted, err = storage.Flush(0)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	n, err := storage.Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestBoltStorage_KeepItems(t *testing.T) {
	storage := newTestStorage(t, 2)
	save(t, storage, "one", "um", "pt")
	save(t, storage, "two", "dois", "pt")
	save(t, storage, "three", "três", "pt")

	rest, err := storage.GetHistory(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"três", "dois"}, texts(rest))
}

func TestBoltStorage_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	storage, err := NewBoltStorage(StorageConfig{DBPath: path})
	require.NoError(t, err)
	require.NoError(t, storage.SaveTranslation(&TranslationRecord{Source: "cat", Text: "gato", TargetLang: "pt"}))
	require.NoError(t, storage.Close())

	storage, err = NewBoltStorage(StorageConfig{DBPath: path})
	require.NoError(t, err)
	defer storage.Close()

	rec, err := storage.Lookup("cat", "pt")
	require.NoError(t, err)
	assert.Equal(t, "gato", rec.Text)
}

func texts(records []*TranslationRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Text
	}
	return out
}
