package schema

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	yamlv3 "gopkg.in/yaml.v3"
)

//go:embed submission.cue
var schemaSource string

// Validator checks submission documents against the embedded CUE schema
// before they reach the scoring engine.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator compiles the embedded schema.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	compiled := ctx.CompileString(schemaSource, cue.Filename("submission.cue"))
	if err := compiled.Err(); err != nil {
		return nil, fmt.Errorf("error compiling submission schema: %w", err)
	}

	schema := compiled.LookupPath(cue.ParsePath("#Submission"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("submission schema missing #Submission: %w", err)
	}

	return &Validator{ctx: ctx, schema: schema}, nil
}

// ValidateBytes validates raw YAML/JSON submission file content.
func (v *Validator) ValidateBytes(content []byte, source string) error {
	var doc map[string]any
	if err := yamlv3.Unmarshal(content, &doc); err != nil {
		return fmt.Errorf("%s: invalid document: %w", source, err)
	}
	return v.Validate(doc, source)
}

// Validate validates a decoded submission document.
func (v *Validator) Validate(doc map[string]any, source string) error {
	if doc == nil {
		return fmt.Errorf("%s: empty document", source)
	}

	value := v.ctx.Encode(doc)
	if err := value.Err(); err != nil {
		return fmt.Errorf("%s: cannot encode document: %w", source, err)
	}

	unified := v.schema.Unify(value)
	if err := unified.Validate(cue.Final(), cue.Concrete(true)); err != nil {
		return fmt.Errorf("%s: schema validation failed: %w", source, err)
	}
	return nil
}
