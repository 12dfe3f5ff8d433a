// Package validator is the schema gatekeeper between the fabric
// description, the naming engine and the audit tooling. If a descriptor
// record or an emitted manifest does not match its CUE schema we fail
// immediately with a clear error instead of letting a malformed record
// leak bad identifiers into the netlists.
package validator

import (
	"embed"
	"encoding/json"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
)

//go:embed fabric_schema.cue
var fabricSchemaFS embed.FS

//go:embed manifest_schema.cue
var manifestSchemaFS embed.FS

// Validator checks fabric descriptions against the embedded CUE schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// New creates a Validator with the embedded fabric schema.
func New() (*Validator, error) {
	ctx := cuecontext.New()

	schemaBytes, err := fabricSchemaFS.ReadFile("fabric_schema.cue")
	if err != nil {
		return nil, fmt.Errorf("loading embedded schema: %w", err)
	}

	schema := ctx.CompileBytes(schemaBytes)
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", schema.Err())
	}

	return &Validator{ctx: ctx, schema: schema}, nil
}

// Validate checks that a fabric description conforms to #Fabric.
func (v *Validator) Validate(data interface{}) error {
	return validate(v.ctx, v.schema, data, "#Fabric")
}

// ValidationErrors lists every individual schema error, or nil when the
// data is valid.
func (v *Validator) ValidationErrors(data interface{}) []string {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return []string{fmt.Sprintf("marshal error: %v", err)}
	}

	dataValue := v.ctx.CompileBytes(jsonBytes)
	if dataValue.Err() != nil {
		return []string{fmt.Sprintf("compile error: %v", dataValue.Err())}
	}

	def := v.schema.LookupPath(cue.ParsePath("#Fabric"))
	if def.Err() != nil {
		return []string{fmt.Sprintf("schema lookup error: %v", def.Err())}
	}

	unified := def.Unify(dataValue)
	err = unified.Validate()
	if err == nil {
		return nil
	}

	var errs []string
	for _, e := range errors.Errors(err) {
		errs = append(errs, e.Error())
	}
	return errs
}

// ManifestValidator checks name manifests against the manifest schema.
type ManifestValidator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewManifestValidator creates a validator for emitted name manifests.
func NewManifestValidator() (*ManifestValidator, error) {
	ctx := cuecontext.New()

	schemaBytes, err := manifestSchemaFS.ReadFile("manifest_schema.cue")
	if err != nil {
		return nil, fmt.Errorf("loading manifest schema: %w", err)
	}

	schema := ctx.CompileBytes(schemaBytes)
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling manifest schema: %w", schema.Err())
	}

	return &ManifestValidator{ctx: ctx, schema: schema}, nil
}

// Validate checks that a manifest conforms to #Manifest.
func (v *ManifestValidator) Validate(data interface{}) error {
	return validate(v.ctx, v.schema, data, "#Manifest")
}

func validate(ctx *cue.Context, schema cue.Value, data interface{}, defName string) error {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshaling data to JSON: %w", err)
	}

	dataValue := ctx.CompileBytes(jsonBytes)
	if dataValue.Err() != nil {
		return fmt.Errorf("compiling data as CUE: %w", dataValue.Err())
	}

	def := schema.LookupPath(cue.ParsePath(defName))
	if def.Err() != nil {
		return fmt.Errorf("looking up %s definition: %w", defName, def.Err())
	}

	unified := def.Unify(dataValue)
	if err := unified.Validate(); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	return nil
}
