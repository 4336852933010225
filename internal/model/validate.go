package model

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume.schema.json
var schemaJSON []byte

var schema *gojsonschema.Schema

func init() {
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
	if err != nil {
		panic(fmt.Sprintf("model: invalid embedded resume schema: %v", err))
	}
	schema = s
}

// ErrSchema is wrapped by every schema validation failure.
var ErrSchema = errors.New("schema validation failed")

// ValidateJSON validates a raw JSON document against resume.schema.json.
func ValidateJSON(doc []byte) error {
	res, err := schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSchema, err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrSchema, strings.Join(msgs, "; "))
}

// DecodeResume validates doc against the schema and decodes it. Lists that
// are absent from the document come back with a single blank entry.
func DecodeResume(doc []byte) (Resume, error) {
	if err := ValidateJSON(doc); err != nil {
		return Resume{}, err
	}
	var r Resume
	if err := json.Unmarshal(doc, &r); err != nil {
		return Resume{}, err
	}
	if len(r.Experience) == 0 {
		r.Experience = []string{""}
	}
	if len(r.Education) == 0 {
		r.Education = []string{""}
	}
	if len(r.Projects) == 0 {
		r.Projects = []Project{{}}
	}
	return r, nil
}
