package form

import (
	"fmt"
	"strconv"
	"strings"

	"resume-builder/internal/model"
)

// PhotoState describes where the draft's photo is in its decode lifecycle.
type PhotoState string

const (
	PhotoEmpty    PhotoState = "empty"
	PhotoDecoding PhotoState = "decoding"
	PhotoReady    PhotoState = "ready"
	PhotoFailed   PhotoState = "failed"
)

// PhotoStatus is the photo state plus the failure message, if any.
type PhotoStatus struct {
	State PhotoState `json:"state"`
	Error string     `json:"error,omitempty"`
}

// Draft is the mutable resume being edited. It is not safe for concurrent
// use; Session serialises access to it.
type Draft struct {
	resume   model.Resume
	photo    PhotoStatus
	inflight int
}

// NewDraft returns a draft with one blank entry in every list.
func NewDraft() *Draft {
	return &Draft{resume: model.NewResume(), photo: PhotoStatus{State: PhotoEmpty}}
}

// Resume returns a deep copy of the current draft contents.
func (d *Draft) Resume() model.Resume {
	return d.resume.Clone()
}

func (d *Draft) Photo() PhotoStatus {
	return d.photo
}

// UpdateField sets a scalar ("email") or indexed list value ("experience.0",
// "projects.1.link").
func (d *Draft) UpdateField(name, value string) error {
	if p := d.resume.Scalar(name); p != nil {
		*p = value
		return nil
	}

	parts := strings.Split(name, ".")
	if len(parts) < 2 {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	idx, err := strconv.Atoi(parts[1])
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}

	if list := d.resume.StringList(parts[0]); list != nil {
		if len(parts) != 2 {
			return fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
		if idx < 0 || idx >= len(*list) {
			return fmt.Errorf("%w: %s", ErrIndexOutOfRange, name)
		}
		(*list)[idx] = value
		return nil
	}

	if parts[0] != model.ListProjects || len(parts) != 3 {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	if idx < 0 || idx >= len(d.resume.Projects) {
		return fmt.Errorf("%w: %s", ErrIndexOutOfRange, name)
	}
	switch parts[2] {
	case model.ProjectDescKey:
		d.resume.Projects[idx].Description = value
	case model.ProjectLinkKey:
		d.resume.Projects[idx].Link = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return nil
}

// AddEntry appends a blank entry to the named list.
func (d *Draft) AddEntry(list string) error {
	if l := d.resume.StringList(list); l != nil {
		*l = append(*l, "")
		return nil
	}
	if list == model.ListProjects {
		d.resume.Projects = append(d.resume.Projects, model.Project{})
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownList, list)
}

// RemoveEntry removes the entry at index. Lists never shrink below one entry.
func (d *Draft) RemoveEntry(list string, index int) error {
	n, err := d.Len(list)
	if err != nil {
		return err
	}
	if index < 0 || index >= n {
		return fmt.Errorf("%w: %s.%d", ErrIndexOutOfRange, list, index)
	}
	if n == 1 {
		return ErrLastEntry
	}

	if l := d.resume.StringList(list); l != nil {
		*l = append((*l)[:index], (*l)[index+1:]...)
		return nil
	}
	d.resume.Projects = append(d.resume.Projects[:index], d.resume.Projects[index+1:]...)
	return nil
}

// Len returns the number of entries in the named list.
func (d *Draft) Len(list string) (int, error) {
	if l := d.resume.StringList(list); l != nil {
		return len(*l), nil
	}
	if list == model.ListProjects {
		return len(d.resume.Projects), nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownList, list)
}

// Replace overwrites every text field and list with r. The photo is kept:
// it only changes through photo decoding.
func (d *Draft) Replace(r model.Resume) {
	photo := d.resume.Photo
	d.resume = r.Clone()
	d.resume.Photo = photo
	if len(d.resume.Experience) == 0 {
		d.resume.Experience = []string{""}
	}
	if len(d.resume.Education) == 0 {
		d.resume.Education = []string{""}
	}
	if len(d.resume.Projects) == 0 {
		d.resume.Projects = []model.Project{{}}
	}
}

func (d *Draft) beginPhoto() {
	d.inflight++
	d.photo = PhotoStatus{State: PhotoDecoding}
}

// finishPhoto applies a decode result. Results are applied in completion
// order, so the last decode to finish wins. While other decodes are still
// running the state stays "decoding".
func (d *Draft) finishPhoto(dataURI string, err error) {
	d.inflight--
	if err != nil {
		d.resume.Photo = ""
		d.photo = PhotoStatus{State: PhotoFailed, Error: "Photo could not be decoded: " + err.Error()}
	} else {
		d.resume.Photo = dataURI
		d.photo = PhotoStatus{State: PhotoReady}
	}
	if d.inflight > 0 {
		d.photo = PhotoStatus{State: PhotoDecoding}
	}
}
