package model

// Go models that match resume.schema.json, used for validation and rendering.
// The `label` tag is the human-readable name shown in form errors.

type Project struct {
	Description string `json:"description"`
	Link        string `json:"link"`
}

type Resume struct {
	Name       string    `json:"name" label:"Full Name" validate:"notblank"`
	Contact    string    `json:"contact" label:"Contact Number" validate:"notblank"`
	Address    string    `json:"address" label:"Address" validate:"notblank"`
	Email      string    `json:"email" label:"Email ID" validate:"notblank"`
	Photo      string    `json:"photo,omitempty" label:"Photo"`
	Facebook   string    `json:"facebook" label:"Facebook Link"`
	Instagram  string    `json:"instagram" label:"Instagram Link"`
	LinkedIn   string    `json:"linkedin" label:"LinkedIn Link"`
	Objective  string    `json:"objective" label:"Objective" validate:"notblank"`
	Experience []string  `json:"experience" label:"Experience" validate:"min=1,dive,notblank"`
	Education  []string  `json:"education" label:"Education" validate:"min=1,dive,notblank"`
	Projects   []Project `json:"projects" label:"Projects" validate:"min=1"`
}

// Field and list names as they appear in forms and in the JSON document.
const (
	FieldName      = "name"
	FieldContact   = "contact"
	FieldAddress   = "address"
	FieldEmail     = "email"
	FieldPhoto     = "photo"
	FieldFacebook  = "facebook"
	FieldInstagram = "instagram"
	FieldLinkedIn  = "linkedin"
	FieldObjective = "objective"
	ListExperience = "experience"
	ListEducation  = "education"
	ListProjects   = "projects"
	ProjectDescKey = "description"
	ProjectLinkKey = "link"
)

// SocialFields lists the social profile fields in display order.
var SocialFields = []string{FieldFacebook, FieldInstagram, FieldLinkedIn}

// NewResume returns an empty resume with one blank entry per list.
func NewResume() Resume {
	return Resume{
		Experience: []string{""},
		Education:  []string{""},
		Projects:   []Project{{}},
	}
}

// Clone returns a deep copy; lists in the copy share no backing arrays with r.
func (r Resume) Clone() Resume {
	out := r
	out.Experience = append([]string(nil), r.Experience...)
	out.Education = append([]string(nil), r.Education...)
	out.Projects = append([]Project(nil), r.Projects...)
	return out
}

// Scalar returns a pointer to the named scalar field, or nil.
func (r *Resume) Scalar(name string) *string {
	switch name {
	case FieldName:
		return &r.Name
	case FieldContact:
		return &r.Contact
	case FieldAddress:
		return &r.Address
	case FieldEmail:
		return &r.Email
	case FieldFacebook:
		return &r.Facebook
	case FieldInstagram:
		return &r.Instagram
	case FieldLinkedIn:
		return &r.LinkedIn
	case FieldObjective:
		return &r.Objective
	}
	return nil
}

// StringList returns a pointer to the named string list (experience or
// education), or nil.
func (r *Resume) StringList(name string) *[]string {
	switch name {
	case ListExperience:
		return &r.Experience
	case ListEducation:
		return &r.Education
	}
	return nil
}
