package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/borgini/borgini/internal/models"
)

func rawFixture() *models.RawConfig {
	cfg := models.NewRawConfig()
	def := cfg.Section(models.DefaultSection)
	def.Set("reponame", "myhost")
	def.Set("repopath", models.NullMarker)
	def.Set("ssh", "True")
	def.Set("prune", "False")

	backup := cfg.Section("BACKUP")
	backup.Set("verbose", "True")
	backup.Set("stats", "False")
	backup.Set("filter", "AME")
	backup.Set("compression", "lz4")

	prune := cfg.Section("PRUNE")
	prune.Set("verbose", "false")
	prune.Set("keep-daily", "7")
	prune.Set("keep-weekly", "4")

	env := cfg.Section("ENVIRONMENT")
	env.Set("keyfile", models.NullMarker)

	return cfg
}

func TestConvert_NullMarkerFiltered(t *testing.T) {
	view := Convert(rawFixture())

	assert.True(t, view.GetKey(models.DefaultSection, "repopath").IsAbsent())
	assert.True(t, view.GetKey("ENVIRONMENT", "keyfile").IsAbsent())
}

func TestConvert_EmptySectionDropped(t *testing.T) {
	view := Convert(rawFixture())

	// ENVIRONMENT's only key was the null marker, so the whole section
	// is gone from the view.
	assert.NotContains(t, view.Sections(), "ENVIRONMENT")
	assert.Contains(t, view.Sections(), "BACKUP")
}

func TestConvert_Booleans(t *testing.T) {
	view := Convert(rawFixture())

	tests := []struct {
		name    string
		section string
		key     string
		want    models.Value
	}{
		{"true literal", models.DefaultSection, "ssh", models.Bool(true)},
		{"false literal", models.DefaultSection, "prune", models.Bool(false)},
		{"lowercase false", "PRUNE", "verbose", models.Bool(false)},
		{"plain string", "BACKUP", "filter", models.Text("AME")},
		{"hostname stays text", models.DefaultSection, "reponame", models.Text("myhost")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, view.GetKey(tt.section, tt.key))
		})
	}
}

func TestConvert_RetentionPrefixNeverBoolean(t *testing.T) {
	cfg := rawFixture()
	// Even a boolean-looking value stays a string under the retention
	// prefix.
	cfg.Section("PRUNE").Set("keep-monthly", "True")

	view := Convert(cfg)

	assert.Equal(t, models.Text("7"), view.GetKey("PRUNE", "keep-daily"))
	assert.Equal(t, models.Text("True"), view.GetKey("PRUNE", "keep-monthly"))
}

func TestConvert_InheritanceSuppression(t *testing.T) {
	cfg := rawFixture()
	// A DEFAULT-section key redefined under BACKUP is not an own key of
	// BACKUP and never reaches the typed view there.
	cfg.Section("BACKUP").Set("ssh", "False")

	view := Convert(cfg)

	assert.True(t, view.GetKey("BACKUP", "ssh").IsAbsent())
	assert.Equal(t, models.Bool(true), view.GetKey(models.DefaultSection, "ssh"))
}

func TestGetKey_MissingIsAbsent(t *testing.T) {
	view := Convert(rawFixture())

	assert.True(t, view.GetKey("NOSECTION", "key").IsAbsent())
	assert.True(t, view.GetKey("BACKUP", "nokey").IsAbsent())
}

func TestGetMany_OrderPreserving(t *testing.T) {
	view := Convert(rawFixture())

	values := view.GetMany(models.LookupSpec{
		{Section: "BACKUP", Keys: []string{"filter", "verbose"}},
		{Section: models.DefaultSection, Keys: []string{"repopath", "ssh"}},
	})

	require.Len(t, values, 4)
	assert.Equal(t, models.Text("AME"), values[0])
	assert.Equal(t, models.Bool(true), values[1])
	assert.True(t, values[2].IsAbsent())
	assert.Equal(t, models.Bool(true), values[3])
}

func TestRenderFlags_Order(t *testing.T) {
	view := Convert(rawFixture())

	// Boolean flags first in stored key order, then key-value flags in
	// stored key order; false booleans are suppressed entirely.
	assert.Equal(t,
		[]string{"--verbose", "--filter AME", "--compression lz4"},
		view.RenderFlags("BACKUP"),
	)
}

func TestRenderFlags_RetentionCounts(t *testing.T) {
	view := Convert(rawFixture())

	assert.Equal(t,
		[]string{"--keep-daily 7", "--keep-weekly 4"},
		view.RenderFlags("PRUNE"),
	)
}

func TestRenderFlags_MissingSection(t *testing.T) {
	view := Convert(rawFixture())

	assert.Nil(t, view.RenderFlags("NOSECTION"))
}

func TestConvert_DefaultSchema(t *testing.T) {
	view := Convert(Defaults())

	// The stock BACKUP section renders the documented flag vector.
	assert.Equal(t,
		[]string{
			"--verbose", "--stats", "--list", "--show-rc", "--exclude-caches",
			"--filter AME", "--compression lz4",
		},
		view.RenderFlags("BACKUP"),
	)
	assert.Equal(t,
		[]string{
			"--stats", "--list", "--show-rc",
			"--keep-daily 7", "--keep-weekly 4", "--keep-monthly 6",
		},
		view.RenderFlags("PRUNE"),
	)
}
