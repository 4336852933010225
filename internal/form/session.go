package form

import (
	"io"
	"sync"

	"go.uber.org/zap"

	"resume-builder/internal/model"
	"resume-builder/pkg/logger"
	"resume-builder/pkg/metrics"
)

// State is the screen a session is on.
type State int

const (
	Editing State = iota
	Previewing
)

func (s State) String() string {
	if s == Previewing {
		return "previewing"
	}
	return "editing"
}

// Options configure a Session.
type Options struct {
	RequireSocialLinks bool
	MaxPhotoBytes      int64
	Validator          *Validator
}

// Session couples one draft with the Editing/Previewing screen machine:
//
//	Editing --Submit (valid)--> Previewing
//	Editing --Submit (invalid)--> Editing
//	Previewing --Back--> Editing
//
// It is safe for concurrent use.
type Session struct {
	mu        sync.Mutex
	draft     *Draft
	record    *model.Resume
	state     State
	validator *Validator
	maxPhoto  int64
}

func NewSession(opts Options) *Session {
	v := opts.Validator
	if v == nil {
		v = NewValidator(opts.RequireSocialLinks)
	}
	return &Session{draft: NewDraft(), validator: v, maxPhoto: opts.MaxPhotoBytes}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Draft returns a snapshot of the draft and its photo status.
func (s *Session) Draft() (model.Resume, PhotoStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.Resume(), s.draft.Photo()
}

// Record returns the submitted record while previewing.
func (s *Session) Record() (model.Resume, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.record == nil {
		return model.Resume{}, false
	}
	return s.record.Clone(), true
}

// Label returns the display label for a form key.
func (s *Session) Label(key string) string {
	return s.validator.LabelFor(key)
}

func (s *Session) edit(fn func(d *Draft) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Editing {
		return ErrWrongState
	}
	return fn(s.draft)
}

func (s *Session) UpdateField(name, value string) error {
	return s.edit(func(d *Draft) error { return d.UpdateField(name, value) })
}

func (s *Session) AddEntry(list string) error {
	return s.edit(func(d *Draft) error { return d.AddEntry(list) })
}

func (s *Session) RemoveEntry(list string, index int) error {
	return s.edit(func(d *Draft) error { return d.RemoveEntry(list, index) })
}

// Replace swaps in a whole new draft body; see Draft.Replace.
func (s *Session) Replace(r model.Resume) error {
	return s.edit(func(d *Draft) error {
		d.Replace(r)
		return nil
	})
}

// AttachPhoto decodes r into a data URI in the background. The returned
// channel receives exactly one result and is then closed. The draft photo is
// updated before the result is sent.
func (s *Session) AttachPhoto(r io.Reader) (<-chan PhotoResult, error) {
	if err := s.edit(func(d *Draft) error {
		d.beginPhoto()
		return nil
	}); err != nil {
		return nil, err
	}

	out := make(chan PhotoResult, 1)
	go func() {
		defer close(out)
		uri, err := DecodePhoto(r, s.maxPhoto)

		s.mu.Lock()
		s.draft.finishPhoto(uri, err)
		s.mu.Unlock()

		if err != nil {
			metrics.PhotoDecodeTotal.WithLabelValues("error").Inc()
			logger.Warn("photo decode failed", zap.Error(err))
		} else {
			metrics.PhotoDecodeTotal.WithLabelValues("success").Inc()
		}
		out <- PhotoResult{DataURI: uri, Err: err}
	}()
	return out, nil
}

// Submit validates the draft. On success the draft is frozen into a record
// and the session moves to Previewing. On failure it returns a
// *ValidationError and stays in Editing.
func (s *Session) Submit() (model.Resume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Editing {
		return model.Resume{}, ErrWrongState
	}

	snapshot := s.draft.Resume()
	if errs := s.validator.Validate(snapshot); len(errs) > 0 {
		metrics.SubmissionsTotal.WithLabelValues("invalid").Inc()
		return model.Resume{}, &ValidationError{Fields: errs}
	}

	s.record = &snapshot
	s.state = Previewing
	metrics.SubmissionsTotal.WithLabelValues("valid").Inc()
	return snapshot.Clone(), nil
}

// Back discards the record and returns to Editing with the draft as it was.
func (s *Session) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Previewing {
		return ErrWrongState
	}
	s.record = nil
	s.state = Editing
	return nil
}
