package notify

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstRun(t *testing.T) {
	var buf bytes.Buffer
	New("default", &buf).FirstRun()

	out := buf.String()
	assert.Contains(t, out, "First run detected for profile")
	assert.Contains(t, out, "default")
	assert.Contains(t, out, ". borgini edit config --select default")
	assert.Contains(t, out, ". borgini edit include --select default")
	assert.Contains(t, out, ". borgini edit exclude --select default")
}

func TestKeyfileMissing(t *testing.T) {
	var buf bytes.Buffer
	New("laptop", &buf).KeyfileMissing()

	out := buf.String()
	assert.Contains(t, out, "keyfile cannot be found")
	assert.Contains(t, out, "attempting backup without keyfile")
	assert.Contains(t, out, ". borgini edit config --select laptop")
}

func TestMissingRepository(t *testing.T) {
	var buf bytes.Buffer
	New("default", &buf).MissingRepository()

	out := buf.String()
	assert.Contains(t, out, "Path to repo not configured")
	assert.Contains(t, out, ". borgini edit config --select default")
}
