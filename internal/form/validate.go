package form

import (
	"errors"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"resume-builder/internal/model"
)

// Validator runs the submit-time required-field checks. Every check runs;
// one failing field never hides another.
type Validator struct {
	validate      *validator.Validate
	requireSocial bool
	labels        map[string]string
	order         map[string]int
}

// NewValidator builds a validator. Social links are only checked when
// requireSocial is set.
func NewValidator(requireSocial bool) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	v.RegisterTagNameFunc(jsonName)

	fv := &Validator{validate: v, requireSocial: requireSocial, labels: map[string]string{}, order: map[string]int{}}
	if requireSocial {
		v.RegisterStructValidation(socialLinksRequired, model.Resume{})
	}

	t := reflect.TypeOf(model.Resume{})
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		fv.labels[jsonName(f)] = f.Tag.Get("label")
		fv.order[jsonName(f)] = i
	}
	return fv
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

func socialLinksRequired(sl validator.StructLevel) {
	r := sl.Current().Interface().(model.Resume)
	for _, name := range model.SocialFields {
		if strings.TrimSpace(*r.Scalar(name)) == "" {
			sl.ReportError(*r.Scalar(name), name, name, "notblank", "")
		}
	}
}

// Validate returns one FieldError per missing value, in form order.
func (v *Validator) Validate(r model.Resume) []FieldError {
	err := v.validate.Struct(r)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, v.fieldError(fe))
	}
	// struct-level errors arrive after the field errors
	sort.SliceStable(out, func(i, j int) bool {
		return v.rank(out[i].Field) < v.rank(out[j].Field)
	})
	return out
}

func (v *Validator) rank(key string) int {
	name, _, _ := strings.Cut(key, ".")
	return v.order[name]
}

// LabelFor returns the display label for a form key such as "email" or
// "education.1".
func (v *Validator) LabelFor(key string) string {
	name, idx, ok := strings.Cut(key, ".")
	label := v.labels[name]
	if label == "" {
		label = name
	}
	if !ok {
		return label
	}
	n, err := strconv.Atoi(idx)
	if err != nil {
		return label
	}
	return label + " #" + strconv.Itoa(n+1)
}

func (v *Validator) fieldError(fe validator.FieldError) FieldError {
	key := fe.Field()
	// dive errors come back as "experience[2]"
	if i := strings.IndexByte(key, '['); i > 0 && strings.HasSuffix(key, "]") {
		key = key[:i] + "." + key[i+1:len(key)-1]
	}
	label := v.LabelFor(key)

	var msg string
	switch fe.Tag() {
	case "notblank", "required":
		msg = label + " is required"
	case "min":
		msg = label + " must have at least " + fe.Param() + " entry"
	default:
		msg = label + " is invalid"
	}
	return FieldError{Field: key, Message: msg}
}
