package dataset

import (
	"strconv"
	"strings"
	"sync"

	"chartbuilder/internal/models"
)

// Outcome classifies the result of a state transition. Rejected inputs
// are deliberate no-ops, never errors: the widget gives no feedback for
// an empty manual-entry field or a stale delete index.
type Outcome int

const (
	Applied Outcome = iota
	RejectedEmptyField
	RejectedBadNumber
	RejectedBadIndex
)

// Append returns the dataset with one point appended. Both label and
// rawValue must be non-empty and rawValue must parse to a finite number;
// otherwise the input dataset is returned unchanged.
func Append(ds models.Dataset, label, rawValue string) (models.Dataset, Outcome) {
	label = strings.TrimSpace(label)
	rawValue = strings.TrimSpace(rawValue)
	if label == "" || rawValue == "" {
		return ds, RejectedEmptyField
	}

	value, err := strconv.ParseFloat(rawValue, 64)
	if err != nil {
		return ds, RejectedBadNumber
	}
	point := models.DataPoint{Label: label, Value: value}
	if !point.Valid() {
		return ds, RejectedBadNumber
	}

	next := make(models.Dataset, 0, len(ds)+1)
	next = append(next, ds...)
	next = append(next, point)
	return next, Applied
}

// Remove returns the dataset with the point at index removed, relative
// order of the remaining points preserved. An out-of-range index leaves
// the dataset unchanged.
func Remove(ds models.Dataset, index int) (models.Dataset, Outcome) {
	if index < 0 || index >= len(ds) {
		return ds, RejectedBadIndex
	}

	next := make(models.Dataset, 0, len(ds)-1)
	next = append(next, ds[:index]...)
	next = append(next, ds[index+1:]...)
	return next, Applied
}

// Replace returns the replacement dataset wholesale. Template loads and
// CSV imports discard the prior dataset without confirmation.
func Replace(_ models.Dataset, next models.Dataset) (models.Dataset, Outcome) {
	return next.Clone(), Applied
}

// Store holds the widget session state: the current dataset, the active
// template slug (for the matching example download) and the selected
// chart kind. All mutations go through the pure transition functions
// above; the mutex only serializes HTTP access. Concurrent imports are
// last-write-wins, an accepted limitation of the widget.
type Store struct {
	mu       sync.RWMutex
	data     models.Dataset
	template string
	kind     models.ChartKind
}

// NewStore creates an empty session store defaulting to a line chart
func NewStore() *Store {
	return &Store{kind: models.ChartLine}
}

// Dataset returns a copy of the current dataset
func (s *Store) Dataset() models.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

// Kind returns the currently selected chart kind
func (s *Store) Kind() models.ChartKind {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.kind
}

// ActiveTemplate returns the slug of the template that last seeded the
// dataset, or "" when the dataset came from manual entry or an import
func (s *Store) ActiveTemplate() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.template
}

// Append applies the append transition to the stored dataset
func (s *Store) Append(label, rawValue string) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, outcome := Append(s.data, label, rawValue)
	if outcome == Applied {
		s.data = next
		s.template = ""
	}
	return outcome
}

// Remove applies the remove transition to the stored dataset
func (s *Store) Remove(index int) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, outcome := Remove(s.data, index)
	if outcome == Applied {
		s.data = next
	}
	return outcome
}

// Replace swaps in a whole new dataset, e.g. from a CSV import
func (s *Store) Replace(next models.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data, _ = Replace(s.data, next)
	s.template = ""
}

// LoadTemplate replaces the dataset with the template example and
// records the template as active
func (s *Store) LoadTemplate(t models.Template) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data, _ = Replace(s.data, t.Example)
	s.template = t.Slug
}

// Clear empties the dataset
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	s.template = ""
}

// SetKind selects the chart kind; the dataset is never altered
func (s *Store) SetKind(kind models.ChartKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kind = kind
}
