// Package validation checks job variables against the input schemas of the
// activity registry.
package validation

import (
	"fmt"
	"strings"
	"sync"

	"alumni-connect-workers/internal/common/errors"
	"alumni-connect-workers/pkg/registry"

	"github.com/xeipuuv/gojsonschema"
)

// Validator holds one compiled schema per task type.
type Validator struct {
	schemas map[string]*gojsonschema.Schema
}

// NewValidator compiles the input schema of every activity in reg. Shared
// registry definitions are made available to each schema under #/definitions.
func NewValidator(reg *registry.ActivityRegistry) (*Validator, error) {
	v := &Validator{schemas: make(map[string]*gojsonschema.Schema, len(reg.Activities))}
	for _, activity := range reg.Activities {
		if len(activity.InputSchema) == 0 {
			continue
		}

		doc := make(map[string]interface{}, len(activity.InputSchema)+1)
		for k, val := range activity.InputSchema {
			doc[k] = val
		}
		if len(reg.Definitions) > 0 {
			doc["definitions"] = reg.Definitions
		}

		schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(doc))
		if err != nil {
			return nil, fmt.Errorf("compile input schema for %s: %w", activity.TaskType, err)
		}
		v.schemas[activity.TaskType] = schema
	}
	return v, nil
}

// Validate checks raw job variables for taskType. Task types without a schema
// always pass. Malformed JSON yields PARSE_ERROR, schema violations INVALID_INPUT.
func (v *Validator) Validate(taskType, variables string) error {
	schema, ok := v.schemas[taskType]
	if !ok {
		return nil
	}

	result, err := schema.Validate(gojsonschema.NewStringLoader(variables))
	if err != nil {
		return errors.NewParseError(err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return errors.NewInvalidInputError(strings.Join(msgs, "; ")).
		WithMetadata("taskType", taskType)
}

var (
	defaultOnce      sync.Once
	defaultValidator *Validator
	defaultErr       error
)

// ValidateTaskInput validates against the embedded registry.
func ValidateTaskInput(taskType, variables string) error {
	defaultOnce.Do(func() {
		reg, err := registry.Default()
		if err != nil {
			defaultErr = err
			return
		}
		defaultValidator, defaultErr = NewValidator(reg)
	})
	if defaultErr != nil {
		return errors.NewInternalError(defaultErr)
	}
	return defaultValidator.Validate(taskType, variables)
}
