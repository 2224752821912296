package sites

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/joseph-ayodele/mowbot/internal/entity"
)

// Override carries per-site corrections to the reference data held on job
// rows. The overrides file is the operational source for contact numbers
// and gate codes that change more often than the imported spreadsheet.
type Override struct {
	Contact  string `json:"contact,omitempty"`
	GateCode string `json:"gate_code,omitempty"`
}

// Directory is a read-only site-name keyed map of overrides.
type Directory struct {
	overrides map[string]Override
	logger    *slog.Logger
}

// overridesSchema constrains the overrides file: site name to an object of
// known string fields, nothing else.
var overridesSchema = map[string]any{
	"type": "object",
	"additionalProperties": map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"contact":   map[string]any{"type": "string"},
			"gate_code": map[string]any{"type": "string"},
		},
	},
}

// Load reads and validates the overrides JSON file. A missing path yields
// an empty directory, not an error.
func Load(path string, logger *slog.Logger) (*Directory, error) {
	d := &Directory{overrides: map[string]Override{}, logger: logger}
	if path == "" {
		return d, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("site overrides file missing, continuing without", "path", path)
			return d, nil
		}
		return nil, err
	}
	if err := validateOverrides(data); err != nil {
		return nil, fmt.Errorf("site overrides %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &d.overrides); err != nil {
		return nil, fmt.Errorf("site overrides %s: %w", path, err)
	}
	logger.Info("site overrides loaded", "path", path, "sites", len(d.overrides))
	return d, nil
}

func validateOverrides(data []byte) error {
	b, err := json.Marshal(overridesSchema)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("overrides.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("overrides.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("overrides do not match schema: %w", err)
	}
	return nil
}

// Apply returns the job's contact and gate code with any site override
// folded in. The job row itself is left untouched.
func (d *Directory) Apply(j *entity.Job) (contact, gateCode string) {
	if j.Contact != nil {
		contact = *j.Contact
	}
	if j.GateCode != nil {
		gateCode = *j.GateCode
	}
	o, ok := d.overrides[j.SiteName]
	if !ok {
		return contact, gateCode
	}
	if o.Contact != "" {
		contact = o.Contact
	}
	if o.GateCode != "" {
		gateCode = o.GateCode
	}
	return contact, gateCode
}
