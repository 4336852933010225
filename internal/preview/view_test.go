package preview

import (
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-builder/internal/model"
)

func record() model.Resume {
	r := model.NewResume()
	r.Name = "Alice"
	r.Contact = "+1 555 0100"
	r.Address = "1 Main St"
	r.Email = "alice@example.com"
	r.Objective = "Build things"
	r.Experience = []string{"Engineer"}
	r.Education = []string{"BSc"}
	return r
}

func TestBuildView_OnlyNonblankSocialLinks(t *testing.T) {
	r := record()
	r.Facebook = ""
	r.Instagram = "http://x.com/a"
	r.LinkedIn = "  "

	v := BuildView(r, nil)

	assert.Equal(t, []Link{{Key: "instagram", Label: "Instagram", URL: "http://x.com/a"}}, v.Social)
}

func TestBuildView_ExperienceSection(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{name: "all blank omits section", input: []string{"", "  ", "\t"}, want: nil},
		{name: "keeps order and drops blanks", input: []string{"B", " ", "A", ""}, want: []string{"B", "A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := record()
			r.Experience = tt.input
			r.Education = tt.input

			v := BuildView(r, nil)

			assert.Equal(t, tt.want, v.Experience)
			assert.Equal(t, tt.want, v.Education)
		})
	}
}

func TestBuildView_Projects(t *testing.T) {
	r := record()
	r.Projects = []model.Project{
		{},
		{Description: "Compiler"},
		{Link: "http://x.com/p"},
		{Description: " ", Link: " "},
		{Description: "Both", Link: "http://x.com/b"},
	}

	v := BuildView(r, nil)

	assert.Equal(t, []ProjectItem{
		{Description: "Compiler"},
		{Link: "http://x.com/p"},
		{Description: "Both", Link: "http://x.com/b"},
	}, v.Projects)

	r.Projects = []model.Project{{}, {Description: "  "}}
	assert.Empty(t, BuildView(r, nil).Projects)
}

func TestBuildView_ObjectiveAndPhoto(t *testing.T) {
	r := record()
	r.Objective = "   "
	r.Photo = "data:image/png;base64,AAAA"

	v := BuildView(r, nil)
	assert.Empty(t, v.Objective)
	assert.Equal(t, template.URL("data:image/png;base64,AAAA"), v.Photo)

	r.Photo = "javascript:alert(1)"
	assert.Empty(t, BuildView(r, nil).Photo)
}

func TestBuildView_CustomLabels(t *testing.T) {
	r := record()
	r.LinkedIn = "http://linkedin.com/in/a"

	v := BuildView(r, mergeLabels(map[string]string{"linkedin": "LI"}))

	assert.Equal(t, "LI", v.Social[0].Label)
}
