package preview

// DefaultLabels returns the English headings and captions used by the preview.
func DefaultLabels() map[string]string {
	return map[string]string{
		"title":           "Resume",
		"contact":         "Contact",
		"address":         "Address",
		"email":           "E-mail",
		"photo_alt":       "User",
		"social_profiles": "Social Profiles",
		"facebook":        "Facebook",
		"instagram":       "Instagram",
		"linkedin":        "LinkedIn",
		"objective":       "Objective",
		"experience":      "Experience",
		"education":       "Education",
		"projects":        "Projects",
		"print":           "Print",
		"back":            "Back",
	}
}

// mergeLabels overlays overrides on the defaults, ignoring blank values.
func mergeLabels(overrides map[string]string) map[string]string {
	out := DefaultLabels()
	for k, v := range overrides {
		if v != "" {
			out[k] = v
		}
	}
	return out
}
