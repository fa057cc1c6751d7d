package subshare

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"sync"
)

// recordFileFormat names the file backing one year's record. The year is
// embedded as a decimal integer; ListYears derives its result from it.
const recordFileFormat = "subscription_data_%d.json"

var recordFileRe = regexp.MustCompile(`^subscription_data_(\d+)\.json$`)

// Store persists one YearRecord per year as a JSON file inside a data
// directory. Every mutating operation is a full load→mutate→save cycle,
// serialized per year by an in-process mutex: within one process, a year has
// a single writer at a time. Separate processes pointed at the same directory
// still race, last writer wins.
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

// NewStore opens (and creates if needed) a store rooted at dir.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create data directory %q: %w", dir, err)
	}
	return &Store{dir: dir, locks: make(map[int]*sync.Mutex)}, nil
}

// Dir returns the data directory backing this store.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(year int) string {
	return filepath.Join(s.dir, fmt.Sprintf(recordFileFormat, year))
}

// lock returns the mutex serializing writers of a given year.
func (s *Store) lock(year int) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[year]
	if !ok {
		l = &sync.Mutex{}
		s.locks[year] = l
	}
	return l
}

// Load reads the persisted record for a year. It never fails the caller: a
// missing file yields the default empty record, and so does an unparseable
// one (corruption is logged and masked by defaulting).
func (s *Store) Load(year int) *YearRecord {
	data, err := os.ReadFile(s.path(year))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("cannot read year record, using defaults", "year", year, "err", err)
		}
		return NewYearRecord(year)
	}
	var rec YearRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		slog.Warn("corrupt year record, using defaults", "year", year, "err", err)
		return NewYearRecord(year)
	}
	rec.normalize(year)
	return &rec
}

// Save stamps updatedAt and persists the record. The file is written to a
// temporary name and renamed into place, so a concurrent reader never
// observes a half-written record.
func (s *Store) Save(year int, rec *YearRecord) error {
	rec.UpdatedAt = timestamp()
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal record for year %d: %w", year, err)
	}

	tmp, err := os.CreateTemp(s.dir, fmt.Sprintf(".subscription_data_%d-*.json", year))
	if err != nil {
		return fmt.Errorf("cannot create temporary record file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("cannot write record for year %d: %w", year, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("cannot write record for year %d: %w", year, err)
	}
	if err := os.Rename(tmpName, s.path(year)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("cannot persist record for year %d: %w", year, err)
	}
	return nil
}

// ListYears enumerates the years that have a backing record, in ascending
// order, derived from the file naming convention. Files with malformed names
// are ignored.
func (s *Store) ListYears() []int {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		slog.Warn("cannot scan data directory", "dir", s.dir, "err", err)
		return nil
	}
	var years []int
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := recordFileRe.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		year, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}

// HasYear reports whether a backing record exists for the year.
func (s *Store) HasYear(year int) bool {
	_, err := os.Stat(s.path(year))
	return err == nil
}

// CreateYear materializes and persists the record for a year. When a record
// already exists it is kept and only re-stamped; callers wanting a conflict
// error must check HasYear first.
func (s *Store) CreateYear(year int) (*YearRecord, error) {
	l := s.lock(year)
	l.Lock()
	defer l.Unlock()

	rec := s.Load(year)
	if err := s.Save(year, rec); err != nil {
		return nil, err
	}
	return rec, nil
}
