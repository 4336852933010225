package http

import (
	"html/template"
	"strconv"
	"strings"

	"resume-builder/internal/form"
	"resume-builder/internal/model"
)

type inputView struct {
	Index       int
	Key         string
	Label       string
	Type        string
	Value       string
	Placeholder string
	Error       string
}

type listView struct {
	Name      string
	Title     string
	Entries   []inputView
	CanRemove bool
}

type projectView struct {
	Index       int
	Description inputView
	Link        inputView
}

type formPage struct {
	Personal          []inputView
	Social            []inputView
	Objective         inputView
	Lists             []listView
	Projects          []projectView
	CanRemoveProjects bool
	PhotoLabel        string
	PhotoURI          template.URL
	PhotoError        string
}

// buildFormPage lays out the draft for the form template. errs is keyed by
// form key, as produced by form.ValidationError.ByField.
func buildFormPage(sess *form.Session, r model.Resume, photo form.PhotoStatus, errs map[string]string) formPage {
	input := func(key, value string) inputView {
		typ := "text"
		if key == model.FieldEmail {
			typ = "email"
		}
		return inputView{Key: key, Label: sess.Label(key), Type: typ, Value: value, Error: errs[key]}
	}

	p := formPage{
		PhotoLabel:        "Upload Photo",
		PhotoError:        photo.Error,
		CanRemoveProjects: len(r.Projects) > 1,
	}
	if strings.HasPrefix(r.Photo, "data:image/") {
		p.PhotoURI = template.URL(r.Photo)
	}

	for _, key := range []string{model.FieldName, model.FieldContact, model.FieldAddress, model.FieldEmail} {
		p.Personal = append(p.Personal, input(key, *r.Scalar(key)))
	}
	for _, key := range model.SocialFields {
		p.Social = append(p.Social, input(key, *r.Scalar(key)))
	}
	p.Objective = input(model.FieldObjective, r.Objective)

	for _, name := range []string{model.ListExperience, model.ListEducation} {
		entries := *r.StringList(name)
		lv := listView{Name: name, Title: sess.Label(name), CanRemove: len(entries) > 1}
		for i, v := range entries {
			key := name + "." + strconv.Itoa(i)
			in := input(key, v)
			in.Index = i
			in.Placeholder = in.Label
			lv.Entries = append(lv.Entries, in)
		}
		p.Lists = append(p.Lists, lv)
	}

	for i, proj := range r.Projects {
		prefix := model.ListProjects + "." + strconv.Itoa(i) + "."
		n := strconv.Itoa(i + 1)
		desc := input(prefix+model.ProjectDescKey, proj.Description)
		desc.Label = "Description"
		desc.Placeholder = "Project #" + n + " description"
		link := input(prefix+model.ProjectLinkKey, proj.Link)
		link.Label = "Link"
		link.Placeholder = "Project #" + n + " link"
		p.Projects = append(p.Projects, projectView{Index: i, Description: desc, Link: link})
	}
	return p
}
