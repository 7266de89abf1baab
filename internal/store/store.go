package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/mmcdole/squeeze/internal/domain"
)

// Bucket names
var (
	bucketPreferences = []byte("preferences")
)

// Keys within the preferences bucket
const (
	keySettings  = "settings"
	keyLanguage  = "language"
	keyUpdatedAt = "updated_at"
)

// PreferenceStore implements domain.PreferenceStore using BoltDB.
type PreferenceStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// In-memory copy of every value written or read
	cache map[string][]byte

	now func() time.Time
}

var _ domain.PreferenceStore = (*PreferenceStore)(nil)

// NewPreferenceStore opens (or creates) prefs.db under dir.
// An empty dir keeps everything in memory.
func NewPreferenceStore(dir string) (*PreferenceStore, error) {
	s := &PreferenceStore{cache: make(map[string][]byte), now: time.Now}
	if dir == "" {
		return s, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	dbPath := filepath.Join(dir, "prefs.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketPreferences)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	s.db = db
	return s, nil
}

func (s *PreferenceStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

func (s *PreferenceStore) get(key string, dest interface{}) (bool, error) {
	s.mu.RLock()
	if data, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return true, json.Unmarshal(data, dest)
	}
	s.mu.RUnlock()

	if s.db == nil {
		return false, nil
	}

	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketPreferences)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}

	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()

	return true, json.Unmarshal(data, dest)
}

// set writes all pairs in a single transaction
func (s *PreferenceStore) set(pairs map[string]interface{}) error {
	encoded := make(map[string][]byte, len(pairs))
	for key, value := range pairs {
		data, err := json.Marshal(value)
		if err != nil {
			return err
		}
		encoded[key] = data
	}

	if s.db != nil {
		err := s.db.Update(func(tx *bolt.Tx) error {
			b := tx.Bucket(bucketPreferences)
			for key, data := range encoded {
				if err := b.Put([]byte(key), data); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to write preferences: %w", err)
		}
	}

	s.mu.Lock()
	for key, data := range encoded {
		s.cache[key] = data
	}
	s.mu.Unlock()
	return nil
}

// === Preferences ===

// Load returns the persisted preferences, or domain.ErrPreferencesNotFound.
// Missing halves are filled with defaults; stored values are normalized.
func (s *PreferenceStore) Load() (domain.Preferences, error) {
	prefs := domain.Preferences{
		Settings: domain.DefaultSettings(),
		Language: domain.DefaultLanguage,
	}

	var settings domain.CompressionSettings
	hasSettings, err := s.get(keySettings, &settings)
	if err != nil {
		return prefs, fmt.Errorf("failed to read settings: %w", err)
	}
	var lang domain.LanguageCode
	hasLang, err := s.get(keyLanguage, &lang)
	if err != nil {
		return prefs, fmt.Errorf("failed to read language: %w", err)
	}
	if !hasSettings && !hasLang {
		return prefs, domain.ErrPreferencesNotFound
	}

	if hasSettings {
		prefs.Settings = settings.Normalize()
	}
	if hasLang && lang.Valid() {
		prefs.Language = lang
	}
	if _, err := s.get(keyUpdatedAt, &prefs.UpdatedAt); err != nil {
		return prefs, fmt.Errorf("failed to read timestamp: %w", err)
	}
	return prefs, nil
}

func (s *PreferenceStore) SaveSettings(settings domain.CompressionSettings) error {
	return s.set(map[string]interface{}{
		keySettings:  settings.Normalize(),
		keyUpdatedAt: s.now().Unix(),
	})
}

func (s *PreferenceStore) SaveLanguage(code domain.LanguageCode) error {
	if !code.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownLanguage, code)
	}
	return s.set(map[string]interface{}{
		keyLanguage:  code,
		keyUpdatedAt: s.now().Unix(),
	})
}

// Reset removes every stored preference
func (s *PreferenceStore) Reset() error {
	s.mu.Lock()
	s.cache = make(map[string][]byte)
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bucketPreferences); err != nil && !errors.Is(err, bolt.ErrBucketNotFound) {
			return err
		}
		_, err := tx.CreateBucket(bucketPreferences)
		return err
	})
}
