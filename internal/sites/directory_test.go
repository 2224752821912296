package sites

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/mowbot/internal/entity"
)

func writeOverrides(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overrides.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func strPtr(s string) *string { return &s }

func TestLoadMissingFileYieldsEmptyDirectory(t *testing.T) {
	d, err := Load(filepath.Join(t.TempDir(), "absent.json"), slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	j := &entity.Job{SiteName: "Willow Court", Contact: strPtr("Pat")}
	contact, gate := d.Apply(j)
	assert.Equal(t, "Pat", contact)
	assert.Empty(t, gate)
}

func TestOverridesWinOverJobFields(t *testing.T) {
	path := writeOverrides(t, `{
		"Willow Court": {"contact": "Sam 07700 900123", "gate_code": "4821"},
		"Oak House": {"gate_code": "1111"}
	}`)
	d, err := Load(path, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	j := &entity.Job{SiteName: "Willow Court", Contact: strPtr("Pat"), GateCode: strPtr("0000")}
	contact, gate := d.Apply(j)
	assert.Equal(t, "Sam 07700 900123", contact)
	assert.Equal(t, "4821", gate)

	// partial override only replaces the fields it names
	j = &entity.Job{SiteName: "Oak House", Contact: strPtr("Lee")}
	contact, gate = d.Apply(j)
	assert.Equal(t, "Lee", contact)
	assert.Equal(t, "1111", gate)

	// unlisted sites pass through untouched
	j = &entity.Job{SiteName: "Elm Lodge"}
	contact, gate = d.Apply(j)
	assert.Empty(t, contact)
	assert.Empty(t, gate)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	path := writeOverrides(t, `{"Willow Court": {"alarm_code": "9999"}}`)
	_, err := Load(path, slog.New(slog.DiscardHandler))
	assert.Error(t, err)
}

func TestLoadRejectsNonObjectPayload(t *testing.T) {
	path := writeOverrides(t, `["not", "an", "object"]`)
	_, err := Load(path, slog.New(slog.DiscardHandler))
	assert.Error(t, err)
}
