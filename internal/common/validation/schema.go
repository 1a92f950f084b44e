package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Fields returns the offending field paths, sorted and de-duplicated.
func (r *ValidationResult) Fields() []string {
	seen := make(map[string]bool, len(r.Errors))
	out := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		if !seen[e.Field] {
			seen[e.Field] = true
			out = append(out, e.Field)
		}
	}
	sort.Strings(out)
	return out
}

func (r *ValidationResult) String() string {
	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = e.Field + ": " + e.Message
	}
	return fmt.Sprintf("%v", msgs)
}

// Schema is a compiled JSON schema reused across jobs.
type Schema struct {
	name   string
	schema *gojsonschema.Schema
}

func Compile(name string, definition map[string]interface{}) (*Schema, error) {
	s, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(definition))
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", name, err)
	}
	return &Schema{name: name, schema: s}, nil
}

func MustCompile(name string, definition map[string]interface{}) *Schema {
	s, err := Compile(name, definition)
	if err != nil {
		panic(err)
	}
	return s
}

// Validate checks a decoded JSON document (maps, slices, scalars) against the schema.
func (s *Schema) Validate(document interface{}) (*ValidationResult, error) {
	return s.validate(gojsonschema.NewGoLoader(document))
}

// ValidateJSON validates a raw JSON document.
func (s *Schema) ValidateJSON(raw string) (*ValidationResult, error) {
	return s.validate(gojsonschema.NewStringLoader(raw))
}

func (s *Schema) validate(document gojsonschema.JSONLoader) (*ValidationResult, error) {
	result, err := s.schema.Validate(document)
	if err != nil {
		return nil, fmt.Errorf("validate %s: %w", s.name, err)
	}

	out := &ValidationResult{Valid: result.Valid()}
	for _, desc := range result.Errors() {
		out.Errors = append(out.Errors, ValidationError{
			Field:   fieldOf(desc),
			Message: desc.Description(),
			Code:    desc.Type(),
		})
	}
	return out, nil
}

// fieldOf names the offending property. Missing required properties may be
// reported against their parent object.
func fieldOf(desc gojsonschema.ResultError) string {
	field := desc.Field()
	prop, ok := desc.Details()["property"].(string)
	if !ok || desc.Type() != "required" {
		return field
	}
	switch {
	case field == gojsonschema.STRING_ROOT_SCHEMA_PROPERTY || field == "":
		return prop
	case field == prop || strings.HasSuffix(field, "."+prop):
		return field
	default:
		return field + "." + prop
	}
}

func nonEmptyString() map[string]interface{} {
	return map[string]interface{}{"type": "string", "minLength": 1, "pattern": `\S`}
}

func enum(values ...string) map[string]interface{} {
	return map[string]interface{}{"type": "string", "enum": toInterfaces(values)}
}

func toInterfaces(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// ProfileSchema describes the product profile payload accepted by generate-ad-set.
var ProfileSchema = MustCompile("profile", map[string]interface{}{
	"type": "object",
	"required": toInterfaces([]string{
		"productName", "productDescription", "market", "priceTier", "awarenessLevel",
		"competitionLevel", "mainBenefit", "mainPain", "uniqueDifferentiator",
	}),
	"properties": map[string]interface{}{
		"productName":          nonEmptyString(),
		"productDescription":   nonEmptyString(),
		"market":               enum("egypt", "gulf", "mena"),
		"priceTier":            enum("budget", "mid", "premium"),
		"awarenessLevel":       enum("cold", "warm", "hot"),
		"competitionLevel":     enum("low", "medium", "high"),
		"mainBenefit":          nonEmptyString(),
		"mainPain":             nonEmptyString(),
		"uniqueDifferentiator": nonEmptyString(),
	},
})
