package preview

import (
	"html/template"
	"strings"

	"resume-builder/internal/model"
)

// Link is a labeled hyperlink in the social profiles section.
type Link struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

// ProjectItem is a project entry with at least one nonblank field.
type ProjectItem struct {
	Description string `json:"description,omitempty"`
	Link        string `json:"link,omitempty"`
}

// View is the read-only, filtered shape of a record. Empty slices and blank
// strings mean the section is omitted.
type View struct {
	Name       string        `json:"name"`
	Contact    string        `json:"contact"`
	Address    string        `json:"address"`
	Email      string        `json:"email"`
	Photo      template.URL  `json:"photo,omitempty"`
	Social     []Link        `json:"social,omitempty"`
	Objective  string        `json:"objective,omitempty"`
	Experience []string      `json:"experience,omitempty"`
	Education  []string      `json:"education,omitempty"`
	Projects   []ProjectItem `json:"projects,omitempty"`
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

// nonblank keeps the entries that are not blank, in their original order.
func nonblank(entries []string) []string {
	var out []string
	for _, e := range entries {
		if !blank(e) {
			out = append(out, e)
		}
	}
	return out
}

// BuildView filters a record into its displayable sections.
func BuildView(r model.Resume, labels map[string]string) View {
	if labels == nil {
		labels = DefaultLabels()
	}
	v := View{
		Name:       r.Name,
		Contact:    r.Contact,
		Address:    r.Address,
		Email:      r.Email,
		Experience: nonblank(r.Experience),
		Education:  nonblank(r.Education),
	}

	// Only data URIs produced by the photo decoder are trusted as image sources.
	if strings.HasPrefix(r.Photo, "data:image/") {
		v.Photo = template.URL(r.Photo)
	}

	for _, key := range model.SocialFields {
		url := *r.Scalar(key)
		if !blank(url) {
			v.Social = append(v.Social, Link{Key: key, Label: labels[key], URL: url})
		}
	}

	if !blank(r.Objective) {
		v.Objective = r.Objective
	}

	for _, p := range r.Projects {
		if blank(p.Description) && blank(p.Link) {
			continue
		}
		item := ProjectItem{}
		if !blank(p.Description) {
			item.Description = p.Description
		}
		if !blank(p.Link) {
			item.Link = p.Link
		}
		v.Projects = append(v.Projects, item)
	}
	return v
}
