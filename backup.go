package subshare

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// BackupBundle is a snapshot of the entire store: every known year's record,
// stamped with the export time.
type BackupBundle struct {
	BackupTimestamp string                 `json:"backupTimestamp"`
	Years           map[string]*YearRecord `json:"years"`
}

// ExportBackup serializes the whole store into a backup bundle.
func (s *Store) ExportBackup() ([]byte, error) {
	bundle := BackupBundle{
		BackupTimestamp: timestamp(),
		Years:           map[string]*YearRecord{},
	}
	for _, year := range s.ListYears() {
		bundle.Years[strconv.Itoa(year)] = s.Load(year)
	}
	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("cannot marshal backup bundle: %w", err)
	}
	return append(data, '\n'), nil
}

// RestoreResult reports a successful restore.
type RestoreResult struct {
	Years   []int
	Message string
}

// RestoreBackup parses a backup bundle and overwrites each embedded year
// verbatim (full overwrite, no merge). Years with non-numeric keys or
// unreadable records are skipped, not fatal. It fails with
// ErrInvalidEncoding when the bytes are not JSON, ErrInvalidFormat when the
// top-level 'years' object is absent, and ErrEmptyBackup when nothing could
// be restored. Years restored before a later per-year failure stay restored:
// there is no cross-year atomicity.
func (s *Store) RestoreBackup(data []byte) (*RestoreResult, error) {
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}

	// Probe the loose JSON for the years object before touching any record.
	jyears, err := jsonpath.Get("$.years", jobj)
	if err != nil {
		return nil, fmt.Errorf("%w: missing 'years' key", ErrInvalidFormat)
	}
	if _, ok := jyears.(map[string]any); !ok {
		return nil, fmt.Errorf("%w: 'years' is not an object", ErrInvalidFormat)
	}

	var bundle struct {
		Years map[string]json.RawMessage `json:"years"`
	}
	if err := json.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}

	// Restore in deterministic order.
	keys := make([]string, 0, len(bundle.Years))
	for key := range bundle.Years {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var restored []int
	for _, key := range keys {
		year, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			slog.Warn("skipping backup entry with invalid year key", "key", key)
			continue
		}
		var rec YearRecord
		if err := json.Unmarshal(bundle.Years[key], &rec); err != nil {
			slog.Warn("skipping unreadable backup entry", "year", year, "err", err)
			continue
		}
		rec.normalize(year)

		l := s.lock(year)
		l.Lock()
		err = s.Save(year, &rec)
		l.Unlock()
		if err != nil {
			slog.Warn("cannot restore year", "year", year, "err", err)
			continue
		}
		restored = append(restored, year)
	}

	if len(restored) == 0 {
		return nil, fmt.Errorf("%w: no valid year data found in backup", ErrEmptyBackup)
	}

	labels := make([]string, len(restored))
	for i, year := range restored {
		labels[i] = strconv.Itoa(year)
	}
	return &RestoreResult{
		Years:   restored,
		Message: fmt.Sprintf("successfully restored %d year(s): %s", len(restored), strings.Join(labels, ", ")),
	}, nil
}
