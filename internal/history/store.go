// Package history keeps the most recent conversions in a local JSON file.
//
// The file holds a newest-first array capped at MaxEntries, where repeating
// a conversion with (almost) the same input replaces the older entry instead
// of adding a duplicate. Entries reference category and unit ids, which are stable.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/oklog/ulid/v2"

	"github.com/rshade/unitconv/internal/conversion"
)

// ErrStoreCorrupted indicates the history file exists but cannot be used.
// Callers should report it instead of silently overwriting the file.
var ErrStoreCorrupted = errors.New("history file corrupted")

const (
	// SchemaVersion is the version written to the history file.
	SchemaVersion = "1.0.0"

	// schemaConstraint accepts any file written by the same major version.
	schemaConstraint = "^1.0.0"

	// MaxEntries is the default number of entries retained.
	MaxEntries = 20

	// DefaultRecentLimit is the default number of entries Recent returns.
	DefaultRecentLimit = 5

	// DuplicateTolerance is how close two inputs must be to count as a repeat.
	DuplicateTolerance = 0.001

	// DefaultFileName is the history file name inside the config directory.
	DefaultFileName = "history.json"
)

// Entry is one stored conversion. JSON field names are part of the file format.
type Entry struct {
	ID        string  `json:"id"`
	Category  string  `json:"category"`
	FromValue float64 `json:"fromValue"`
	FromUnit  string  `json:"fromUnit"`
	ToValue   float64 `json:"toValue"`
	ToUnit    string  `json:"toUnit"`

	// Timestamp is Unix milliseconds.
	Timestamp int64 `json:"timestamp"`
}

// Time returns the entry timestamp as a time.Time.
func (e Entry) Time() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// storeData is the serialized form of the history file.
type storeData struct {
	SchemaVersion string  `json:"schema_version"`
	Entries       []Entry `json:"entries"`
}

// Option configures a Store.
type Option func(*Store)

// WithMaxEntries overrides the retention cap. Values below 1 are ignored.
func WithMaxEntries(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxEntries = n
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// Store manages conversion history persisted as a JSON file.
// It is safe for concurrent use; Load and Save also take a lock file so two
// processes do not interleave writes.
type Store struct {
	mu         sync.RWMutex
	filePath   string
	maxEntries int
	entries    []Entry
	now        func() time.Time
}

// NewStore creates a Store backed by filePath.
// If filePath is empty, it defaults to ~/.unitconv/history.json.
func NewStore(filePath string, opts ...Option) (*Store, error) {
	if filePath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("determining home directory: %w", err)
		}
		filePath = filepath.Join(homeDir, ".unitconv", DefaultFileName)
	}

	s := &Store{
		filePath:   filePath,
		maxEntries: MaxEntries,
		entries:    []Entry{},
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// lockFilePath returns the path to the lockfile for cross-process coordination.
func (s *Store) lockFilePath() string {
	return s.filePath + ".lock"
}

// acquireFileLock acquires a cross-process advisory lockfile.
// Returns a cleanup function that releases the lock.
func (s *Store) acquireFileLock() (func(), error) {
	lockPath := s.lockFilePath()

	if err := os.MkdirAll(filepath.Dir(lockPath), 0o750); err != nil {
		return nil, fmt.Errorf("creating lock directory: %w", err)
	}

	const maxRetries = 10
	const retryDelay = 100 * time.Millisecond
	const staleLockAge = 30 * time.Second

	for range maxRetries {
		f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
		if err == nil {
			_, _ = fmt.Fprintf(f, "%d", os.Getpid())
			_ = f.Close()
			return func() { _ = os.Remove(lockPath) }, nil
		}

		if removeStaleLock(lockPath, staleLockAge) {
			continue
		}
		time.Sleep(retryDelay)
	}

	return nil, fmt.Errorf("could not acquire lock on %s after retries", lockPath)
}

// removeStaleLock removes a lock file older than staleLockAge whose owner is gone.
// Returns true if the lock was removed.
func removeStaleLock(lockPath string, staleLockAge time.Duration) bool {
	info, statErr := os.Stat(lockPath)
	if statErr != nil || time.Since(info.ModTime()) <= staleLockAge {
		return false
	}
	if isLockHeldByLiveProcess(lockPath) {
		return false
	}
	_ = os.Remove(lockPath)
	return true
}

// isLockHeldByLiveProcess reads the PID from a lock file and checks if that
// process is still alive.
func isLockHeldByLiveProcess(lockPath string) bool {
	pidData, readErr := os.ReadFile(lockPath)
	if readErr != nil || len(pidData) == 0 {
		return false
	}
	var pid int
	if _, scanErr := fmt.Sscanf(string(pidData), "%d", &pid); scanErr != nil || pid <= 0 {
		return false
	}
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	// Signal 0 tests process existence without delivering anything.
	return proc.Signal(syscall.Signal(0)) == nil
}

// Load reads the history file. A missing file yields an empty store.
// A file that cannot be parsed, or was written by an incompatible schema
// version, yields ErrStoreCorrupted and leaves the store empty.
func (s *Store) Load() error {
	unlock, lockErr := s.acquireFileLock()
	if lockErr != nil {
		return fmt.Errorf("acquiring file lock: %w", lockErr)
	}
	defer unlock()

	return s.readFile()
}

// readFile replaces the in-memory entries with the file contents.
// The caller holds the file lock.
func (s *Store) readFile() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = []Entry{}

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading history file: %w", err)
	}

	var stored storeData
	if unmarshalErr := json.Unmarshal(data, &stored); unmarshalErr != nil {
		return fmt.Errorf("%w: %w", ErrStoreCorrupted, unmarshalErr)
	}

	if versionErr := checkSchemaVersion(stored.SchemaVersion); versionErr != nil {
		return versionErr
	}

	entries := stored.Entries
	if len(entries) > s.maxEntries {
		entries = entries[:s.maxEntries]
	}
	s.entries = append(s.entries, entries...)

	return nil
}

// checkSchemaVersion accepts versions within schemaConstraint.
func checkSchemaVersion(version string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: invalid schema version %q: %w", ErrStoreCorrupted, version, err)
	}
	c, err := semver.NewConstraint(schemaConstraint)
	if err != nil {
		return fmt.Errorf("parsing schema constraint: %w", err)
	}
	if !c.Check(v) {
		return fmt.Errorf("%w: unsupported schema version %s (expected %s)",
			ErrStoreCorrupted, v, schemaConstraint)
	}
	return nil
}

// Save writes the history file atomically.
func (s *Store) Save() error {
	unlock, lockErr := s.acquireFileLock()
	if lockErr != nil {
		return fmt.Errorf("acquiring file lock: %w", lockErr)
	}
	defer unlock()

	return s.writeFile()
}

// Update reloads the file, applies fn to the store and saves the result,
// holding the file lock throughout so concurrent processes cannot drop each
// other's changes. Nothing is written if loading or fn fails; a corrupted
// file is reported as ErrStoreCorrupted and left as it is.
func (s *Store) Update(fn func(*Store) error) error {
	unlock, lockErr := s.acquireFileLock()
	if lockErr != nil {
		return fmt.Errorf("acquiring file lock: %w", lockErr)
	}
	defer unlock()

	if err := s.readFile(); err != nil {
		return err
	}
	if err := fn(s); err != nil {
		return err
	}
	return s.writeFile()
}

// Record adds r to the history file in a single locked load-add-save cycle.
func (s *Store) Record(r conversion.Result) (Entry, error) {
	var added Entry
	err := s.Update(func(s *Store) error {
		var addErr error
		added, addErr = s.Add(r)
		return addErr
	})
	if err != nil {
		return Entry{}, err
	}
	return added, nil
}

// writeFile writes the in-memory entries atomically. The caller holds the
// file lock.
func (s *Store) writeFile() error {
	s.mu.RLock()
	stored := storeData{
		SchemaVersion: SchemaVersion,
		Entries:       append([]Entry{}, s.entries...),
	}
	s.mu.RUnlock()

	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling history: %w", err)
	}

	dir := filepath.Dir(s.filePath)
	if mkdirErr := os.MkdirAll(dir, 0o750); mkdirErr != nil {
		return fmt.Errorf("creating history directory: %w", mkdirErr)
	}

	tmpPath := s.filePath + ".tmp"
	if writeErr := os.WriteFile(tmpPath, data, 0o600); writeErr != nil {
		return fmt.Errorf("writing history temp file: %w", writeErr)
	}

	if renameErr := os.Rename(tmpPath, s.filePath); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("renaming history temp file: %w", renameErr)
	}

	return nil
}

// Add records a conversion at the front of the history. Existing entries for
// the same category and unit pair whose input differs by less than
// DuplicateTolerance are dropped first, then the list is cut to the cap.
func (s *Store) Add(r conversion.Result) (Entry, error) {
	if r.Category == "" {
		return Entry{}, errors.New("history entry category cannot be empty")
	}
	if math.IsNaN(r.FromValue) || math.IsInf(r.FromValue, 0) || math.IsNaN(r.ToValue) || math.IsInf(r.ToValue, 0) {
		return Entry{}, errors.New("history entry values must be finite")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry := Entry{
		ID:        ulid.Make().String(),
		Category:  r.Category,
		FromValue: r.FromValue,
		FromUnit:  r.FromUnit,
		ToValue:   r.ToValue,
		ToUnit:    r.ToUnit,
		Timestamp: s.now().UnixMilli(),
	}

	kept := make([]Entry, 0, len(s.entries)+1)
	kept = append(kept, entry)
	for _, e := range s.entries {
		if isRepeat(e, r) {
			continue
		}
		kept = append(kept, e)
	}
	if len(kept) > s.maxEntries {
		kept = kept[:s.maxEntries]
	}
	s.entries = kept

	return entry, nil
}

// isRepeat reports whether e is superseded by r.
func isRepeat(e Entry, r conversion.Result) bool {
	return e.Category == r.Category &&
		e.FromUnit == r.FromUnit &&
		e.ToUnit == r.ToUnit &&
		math.Abs(e.FromValue-r.FromValue) < DuplicateTolerance
}

// Recent returns up to limit entries for category, newest first.
// A limit below 1 uses DefaultRecentLimit.
func (s *Store) Recent(category string, limit int) []Entry {
	if limit < 1 {
		limit = DefaultRecentLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, 0, limit)
	for _, e := range s.entries {
		if e.Category != category {
			continue
		}
		out = append(out, e)
		if len(out) == limit {
			break
		}
	}
	return out
}

// All returns every entry, newest first.
func (s *Store) All() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]Entry{}, s.entries...)
}

// Clear removes all entries. Call Save to persist the change.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = []Entry{}
}

// Count returns the number of entries.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

// MaxEntries returns the retention cap.
func (s *Store) MaxEntries() int {
	return s.maxEntries
}

// FilePath returns the file path of the history store.
func (s *Store) FilePath() string {
	return s.filePath
}
