package visibility

import (
	"context"
	"errors"
	"sync"
	"time"

	"resume-builder/internal/model"

	"go.uber.org/zap"
)

// ErrCorrupt is returned (wrapped) by repositories when a saved snapshot
// cannot be decoded or fails schema validation. The store treats it as
// "no saved preferences found".
var ErrCorrupt = errors.New("corrupt visibility snapshot")

// Repository persists visibility snapshots keyed by resume id. Load
// returns (nil, nil) when no snapshot exists.
type Repository interface {
	Load(ctx context.Context, resumeID string) (*SectionVisibility, error)
	Save(ctx context.Context, v *SectionVisibility) error
}

const (
	defaultSaveDelay = 300 * time.Millisecond
	saveTimeout      = 5 * time.Second
)

// Store owns the visibility model for one resume. Toggles mutate the
// model synchronously under a single mutex; persistence runs behind a
// debounce window so rapid successive toggles coalesce into one write.
// Every scheduled write carries a full snapshot, so an older in-flight
// write can never corrupt a newer state for longer than one window.
type Store struct {
	repo  Repository
	log   *zap.Logger
	delay time.Duration

	mu      sync.Mutex
	vis     *SectionVisibility
	lastErr error
	subs    []func(*SectionVisibility)
	timer   *time.Timer
}

func NewStore(repo Repository, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{repo: repo, log: log, delay: defaultSaveDelay}
}

// SetSaveDelay overrides the debounce window; used by tests.
func (s *Store) SetSaveDelay(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delay = d
}

// Init loads the saved model for resumeID and reconciles it against the
// current document, or builds defaults when nothing (or something
// corrupt) was saved. On a storage failure the model stays nil and the
// error is retained; callers should treat a nil model as "nothing to
// render yet".
func (s *Store) Init(ctx context.Context, resumeID string, resume *model.Resume) error {
	saved, err := s.repo.Load(ctx, resumeID)
	if err != nil && !errors.Is(err, ErrCorrupt) {
		s.mu.Lock()
		s.vis = nil
		s.lastErr = err
		s.mu.Unlock()
		return err
	}
	if errors.Is(err, ErrCorrupt) {
		s.log.Warn("discarding corrupt visibility snapshot", zap.String("resumeId", resumeID), zap.Error(err))
		saved = nil
	}

	s.mu.Lock()
	if saved == nil {
		s.vis = BuildDefault(resumeID, resume)
	} else {
		s.vis = Reconcile(saved, resume)
	}
	s.lastErr = nil
	snapshot := s.vis.Clone()
	s.scheduleSaveLocked(snapshot)
	s.mu.Unlock()
	return nil
}

// Sync re-runs reconciliation after the resume document changed under
// us (entries added or removed, new profile networks). No-op before
// Init.
func (s *Store) Sync(resume *model.Resume) {
	s.mutate(func(v *SectionVisibility) { Reconcile(v, resume) }, true)
}

// Reset discards any saved state and rebuilds defaults for the document.
func (s *Store) Reset(resumeID string, resume *model.Resume) {
	s.mu.Lock()
	s.vis = BuildDefault(resumeID, resume)
	snapshot := s.vis.Clone()
	s.scheduleSaveLocked(snapshot)
	subs := s.subs
	s.mu.Unlock()
	for _, fn := range subs {
		fn(snapshot)
	}
}

// Visibility returns a snapshot of the current model, or nil before a
// successful Init.
func (s *Store) Visibility() *SectionVisibility {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vis.Clone()
}

// Err returns the last persistence error, if any. Toggles never raise
// errors themselves.
func (s *Store) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Subscribe registers a callback invoked with a snapshot after every
// model mutation except expand/collapse, which is UI-only state and must
// not trigger downstream re-derivation.
func (s *Store) Subscribe(fn func(*SectionVisibility)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Metadata projects section metadata from the document and a snapshot
// of the current model.
func (s *Store) Metadata(resume *model.Resume) []SectionMetadata {
	return ProjectMetadata(resume, s.Visibility())
}

// Filtered returns the reduced document used as PDF-generation input,
// or nil before Init.
func (s *Store) Filtered(resume *model.Resume) *model.Resume {
	return Filter(resume, s.Visibility())
}

func (s *Store) ToggleSection(id SectionID) {
	s.mutate(func(v *SectionVisibility) { v.ToggleSection(id) }, true)
}

func (s *Store) ToggleItem(id SectionID, index int) {
	s.mutate(func(v *SectionVisibility) { v.ToggleItem(id, index) }, true)
}

func (s *Store) TogglePersonalField(field string) {
	s.mutate(func(v *SectionVisibility) { v.TogglePersonalField(field) }, true)
}

// ToggleExpanded persists like any other mutation but does not notify
// subscribers.
func (s *Store) ToggleExpanded(id SectionID) {
	s.mutate(func(v *SectionVisibility) { v.ToggleExpanded(id) }, false)
}

// mutate applies op under the lock, schedules a debounced save of a full
// snapshot and, when notify is set, fans the snapshot out to
// subscribers. A missing model is a silent no-op.
func (s *Store) mutate(op func(*SectionVisibility), notify bool) {
	s.mu.Lock()
	if s.vis == nil {
		s.mu.Unlock()
		return
	}
	op(s.vis)
	snapshot := s.vis.Clone()
	s.scheduleSaveLocked(snapshot)
	var subs []func(*SectionVisibility)
	if notify {
		subs = s.subs
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

// scheduleSaveLocked cancels any pending write and schedules the latest
// snapshot. Last mutation wins. Caller holds s.mu.
func (s *Store) scheduleSaveLocked(snapshot *SectionVisibility) {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, func() {
		s.write(snapshot)
	})
}

func (s *Store) write(snapshot *SectionVisibility) {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	err := s.repo.Save(ctx, snapshot)

	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()

	if err != nil {
		s.log.Error("saving visibility snapshot failed", zap.String("resumeId", snapshot.ResumeID), zap.Error(err))
	}
}

// Flush cancels any pending debounce and writes the current model now.
// Used on shutdown.
func (s *Store) Flush(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	snapshot := s.vis.Clone()
	s.mu.Unlock()

	if snapshot == nil {
		return nil
	}
	err := s.repo.Save(ctx, snapshot)
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
	return err
}
