package form

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/model"
)

func TestNewDraft_OneEntryPerList(t *testing.T) {
	d := NewDraft()
	r := d.Resume()

	assert.Equal(t, []string{""}, r.Experience)
	assert.Equal(t, []string{""}, r.Education)
	assert.Equal(t, []model.Project{{}}, r.Projects)
	assert.Equal(t, PhotoEmpty, d.Photo().State)
}

func TestDraft_UpdateField(t *testing.T) {
	d := NewDraft()
	require.NoError(t, d.AddEntry(model.ListProjects))

	require.NoError(t, d.UpdateField("name", "Alice"))
	require.NoError(t, d.UpdateField("experience.0", "Engineer"))
	require.NoError(t, d.UpdateField("education.0", "BSc"))
	require.NoError(t, d.UpdateField("projects.1.description", "Compiler"))
	require.NoError(t, d.UpdateField("projects.1.link", "http://x.com/c"))

	r := d.Resume()
	assert.Equal(t, "Alice", r.Name)
	assert.Equal(t, []string{"Engineer"}, r.Experience)
	assert.Equal(t, []string{"BSc"}, r.Education)
	assert.Equal(t, model.Project{Description: "Compiler", Link: "http://x.com/c"}, r.Projects[1])
}

func TestDraft_UpdateFieldErrors(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want error
	}{
		{name: "unknown scalar", key: "nickname", want: ErrUnknownField},
		{name: "photo is not a text field", key: "photo", want: ErrUnknownField},
		{name: "non numeric index", key: "experience.first", want: ErrUnknownField},
		{name: "index past end", key: "experience.1", want: ErrIndexOutOfRange},
		{name: "negative index", key: "education.-1", want: ErrIndexOutOfRange},
		{name: "string list with subfield", key: "education.0.link", want: ErrUnknownField},
		{name: "project without subfield", key: "projects.0", want: ErrUnknownField},
		{name: "project unknown subfield", key: "projects.0.title", want: ErrUnknownField},
		{name: "project index past end", key: "projects.3.link", want: ErrIndexOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDraft().UpdateField(tt.key, "x")
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestDraft_AddEntry(t *testing.T) {
	d := NewDraft()

	require.NoError(t, d.AddEntry(model.ListExperience))
	require.NoError(t, d.AddEntry(model.ListProjects))

	r := d.Resume()
	assert.Equal(t, []string{"", ""}, r.Experience)
	require.Len(t, r.Projects, 2)
	assert.Equal(t, model.Project{}, r.Projects[1])

	assert.ErrorIs(t, d.AddEntry("skills"), ErrUnknownList)
}

func TestDraft_RemoveEntry(t *testing.T) {
	d := NewDraft()
	require.NoError(t, d.AddEntry(model.ListEducation))
	require.NoError(t, d.AddEntry(model.ListEducation))
	require.NoError(t, d.UpdateField("education.0", "A"))
	require.NoError(t, d.UpdateField("education.1", "B"))
	require.NoError(t, d.UpdateField("education.2", "C"))

	require.NoError(t, d.RemoveEntry(model.ListEducation, 1))
	assert.Equal(t, []string{"A", "C"}, d.Resume().Education)

	assert.ErrorIs(t, d.RemoveEntry(model.ListEducation, 2), ErrIndexOutOfRange)
	assert.ErrorIs(t, d.RemoveEntry("skills", 0), ErrUnknownList)
}

func TestDraft_RemoveLastEntryIsNoop(t *testing.T) {
	for _, list := range []string{model.ListExperience, model.ListEducation, model.ListProjects} {
		t.Run(list, func(t *testing.T) {
			d := NewDraft()

			err := d.RemoveEntry(list, 0)
			assert.ErrorIs(t, err, ErrLastEntry)

			n, err := d.Len(list)
			require.NoError(t, err)
			assert.Equal(t, 1, n)
		})
	}
}

func TestDraft_Replace(t *testing.T) {
	d := NewDraft()
	d.beginPhoto()
	d.finishPhoto("data:image/png;base64,AAAA", nil)

	d.Replace(model.Resume{Name: "Bob", Photo: "data:image/png;base64,BBBB"})

	r := d.Resume()
	assert.Equal(t, "Bob", r.Name)
	assert.Equal(t, "data:image/png;base64,AAAA", r.Photo)
	assert.Equal(t, []string{""}, r.Experience)
	assert.Equal(t, []string{""}, r.Education)
	assert.Len(t, r.Projects, 1)
}

func TestDraft_PhotoLifecycle(t *testing.T) {
	d := NewDraft()

	d.beginPhoto()
	assert.Equal(t, PhotoDecoding, d.Photo().State)
	assert.Empty(t, d.Resume().Photo)

	d.finishPhoto("data:image/png;base64,AAAA", nil)
	assert.Equal(t, PhotoStatus{State: PhotoReady}, d.Photo())
	assert.Equal(t, "data:image/png;base64,AAAA", d.Resume().Photo)

	d.beginPhoto()
	d.finishPhoto("", ErrCorruptImage)
	assert.Equal(t, PhotoFailed, d.Photo().State)
	assert.Contains(t, d.Photo().Error, "Photo could not be decoded")
	assert.Empty(t, d.Resume().Photo)
}

func TestDraft_LastDecodeToCompleteWins(t *testing.T) {
	d := NewDraft()
	d.beginPhoto()
	d.beginPhoto()

	d.finishPhoto("data:image/png;base64,FIRST", nil)
	assert.Equal(t, PhotoDecoding, d.Photo().State)

	d.finishPhoto("data:image/png;base64,SECOND", nil)
	assert.Equal(t, PhotoReady, d.Photo().State)
	assert.Equal(t, "data:image/png;base64,SECOND", d.Resume().Photo)
}
