package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_Tags(t *testing.T) {
	assert.Equal(t, KindAbsent, Absent.Kind())
	assert.Equal(t, KindBool, Bool(true).Kind())
	assert.Equal(t, KindText, Text("lz4").Kind())
}

func TestValue_IsTrue(t *testing.T) {
	assert.True(t, Bool(true).IsTrue())
	assert.False(t, Bool(false).IsTrue())
	assert.False(t, Text("True").IsTrue(), "strings never count as boolean true")
	assert.False(t, Absent.IsTrue())
}

func TestValue_Text(t *testing.T) {
	assert.Equal(t, "lz4", Text("lz4").Text())
	assert.Equal(t, "", Bool(true).Text())
	assert.Equal(t, "", Absent.Text())
}

func TestValue_WireFormat(t *testing.T) {
	assert.Equal(t, "True", Bool(true).String())
	assert.Equal(t, "False", Bool(false).String())
	assert.Equal(t, "None", Absent.String())
	assert.Equal(t, "7", Text("7").String())
}

func TestRawConfig_OrderPreserved(t *testing.T) {
	cfg := NewRawConfig()
	section := cfg.Section("BACKUP")
	section.Set("verbose", "True")
	section.Set("filter", "AME")
	section.Set("verbose", "False")

	assert.Equal(t, []string{DefaultSection, "BACKUP"}, cfg.Names)
	assert.Equal(t, []string{"verbose", "filter"}, section.Keys)

	value, ok := section.Get("verbose")
	assert.True(t, ok)
	assert.Equal(t, "False", value)
}
