package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/berrythewa/cliplate/pkg/utils"

	"go.etcd.io/bbolt"
	"go.uber.org/zap"
)

const (
	translationsBucket = "translations"
	maxOccurrences     = 100 // Maximum number of occurrences to store per record
)

// ErrNotFound is returned when no record matches
var ErrNotFound = errors.New("translation not found")

// TranslationRecord is one remembered translation. Records are keyed by the
// hash of (target language, source text); translating the same text into the
// same language again adds an occurrence instead of a new record.
type TranslationRecord struct {
	ID          string      `json:"id"`
	Hash        string      `json:"hash"`
	Source      string      `json:"source"`
	Text        string      `json:"text"`
	SourceLang  string      `json:"source_lang,omitempty"`
	TargetLang  string      `json:"target_lang"`
	Provider    string      `json:"provider"`
	Created     time.Time   `json:"created"`
	Updated     time.Time   `json:"updated"`
	Occurrences []time.Time `json:"occurrences"`
}

// BoltStorage persists translation history in a bbolt database
type BoltStorage struct {
	db        *bbolt.DB
	logger    *zap.Logger
	keepItems int
	now       func() time.Time
}

// StorageConfig holds configuration for BoltStorage initialization
type StorageConfig struct {
	DBPath string
	Logger *zap.Logger
	// KeepItems caps the number of records; older ones are dropped on save.
	// Zero means unlimited.
	KeepItems int
}

// NewBoltStorage opens (creating if needed) the history database
func NewBoltStorage(config StorageConfig) (*BoltStorage, error) {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := os.MkdirAll(filepath.Dir(config.DBPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := bbolt.Open(config.DBPath, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(translationsBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	logger.Debug("BoltStorage initialized",
		zap.String("db_path", config.DBPath),
		zap.Int("keep_items", config.KeepItems))

	return &BoltStorage{
		db:        db,
		logger:    logger,
		keepItems: config.KeepItems,
		now:       time.Now,
	}, nil
}

// RecordKey returns the key a translation of source into lang is stored under
func RecordKey(source, lang string) string {
	return utils.HashParts(lang, source)
}

// SaveTranslation stores rec, or adds an occurrence to the existing record
// for the same source text and target language. rec is updated in place with
// the stored id, hash and timestamps.
func (s *BoltStorage) SaveTranslation(rec *TranslationRecord) error {
	now := s.now()
	rec.Hash = RecordKey(rec.Source, rec.TargetLang)

	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(translationsBucket))

		if v := b.Get([]byte(rec.Hash)); v != nil {
			var existing TranslationRecord
			if err := json.Unmarshal(v, &existing); err == nil {
				existing.Occurrences = append([]time.Time{now}, existing.Occurrences...)
				if len(existing.Occurrences) > maxOccurrences {
					existing.Occurrences = existing.Occurrences[:maxOccurrences]
				}
				existing.Updated = now
				existing.Text = rec.Text
				existing.Provider = rec.Provider
				if rec.SourceLang != "" {
					existing.SourceLang = rec.SourceLang
				}
				*rec = existing

				s.logger.Debug("Updated translation occurrences",
					zap.String("hash", existing.Hash),
					zap.Int("occurrence_count", len(existing.Occurrences)))
				return put(b, &existing)
			}
			s.logger.Warn("Replacing unreadable history record", zap.String("hash", rec.Hash))
		}

		rec.ID = utils.NewID()
		rec.Created = now
		rec.Updated = now
		rec.Occurrences = []time.Time{now}

		s.logger.Debug("New translation added",
			zap.String("hash", rec.Hash),
			zap.String("target_lang", rec.TargetLang))

		if err := put(b, rec); err != nil {
			return err
		}
		if s.keepItems > 0 {
			_, err := flushBucket(b, s.keepItems)
			return err
		}
		return nil
	})
}

// GetLatest returns the most recently used record
func (s *BoltStorage) GetLatest() (*TranslationRecord, error) {
	records, err := s.GetHistory(1)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNotFound
	}
	return records[0], nil
}

// GetHistory returns up to limit records, most recently used first.
// A limit of zero or less returns everything.
func (s *BoltStorage) GetHistory(limit int) ([]*TranslationRecord, error) {
	var records []*TranslationRecord
	err := s.db.View(func(tx *bbolt.Tx) error {
		var err error
		records, err = readAll(tx.Bucket([]byte(translationsBucket)))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	sortNewestFirst(records)
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// Lookup returns the stored translation of source into lang
func (s *BoltStorage) Lookup(source, lang string) (*TranslationRecord, error) {
	var rec *TranslationRecord
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(translationsBucket)).Get([]byte(RecordKey(source, lang)))
		if v == nil {
			return ErrNotFound
		}
		rec = &TranslationRecord{}
		return json.Unmarshal(v, rec)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Flush deletes all but the keep most recently used records and returns the
// number deleted
func (s *BoltStorage) Flush(keep int) (int, error) {
	var deleted int
	err := s.db.Update(func(tx *bbolt.Tx) error {
		var err error
		deleted, err = flushBucket(tx.Bucket([]byte(translationsBucket)), keep)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to flush history: %w", err)
	}
	if deleted > 0 {
		s.logger.Info("Flushed translation history",
			zap.Int("deleted", deleted),
			zap.Int("kept", keep))
	}
	return deleted, nil
}

// Count returns the number of stored records
func (s *BoltStorage) Count() (int, error) {
	var n int
	err := s.db.View(func(tx *bbolt.Tx) error {
		n = tx.Bucket([]byte(translationsBucket)).Stats().KeyN
		return nil
	})
	return n, err
}

// Close closes the database
func (s *BoltStorage) Close() error {
	return s.db.Close()
}

func put(b *bbolt.Bucket, rec *TranslationRecord) error {
	encoded, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	return b.Put([]byte(rec.Hash), encoded)
}

func readAll(b *bbolt.Bucket) ([]*TranslationRecord, error) {
	var records []*TranslationRecord
	err := b.ForEach(func(k, v []byte) error {
		var rec TranslationRecord
		if err := json.Unmarshal(v, &rec); err != nil {
			return fmt.Errorf("record %x: %w", k, err)
		}
		records = append(records, &rec)
		return nil
	})
	return records, err
}

func flushBucket(b *bbolt.Bucket, keep int) (int, error) {
	if keep < 0 {
		keep = 0
	}
	records, err := readAll(b)
	if err != nil {
		return 0, err
	}
	if len(records) <= keep {
		return 0, nil
	}

	sortNewestFirst(records)
	for _, rec := range records[keep:] {
		if err := b.Delete([]byte(rec.Hash)); err != nil {
			return 0, fmt.Errorf("failed to delete record: %w", err)
		}
	}
	return len(records) - keep, nil
}

func sortNewestFirst(records []*TranslationRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Updated.After(records[j].Updated)
	})
}
