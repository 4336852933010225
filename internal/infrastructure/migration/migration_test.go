package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAll_NamesUniqueAndOrdered(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range All {
		assert.False(t, seen[m.Name], "duplicate migration %s", m.Name)
		assert.NotNil(t, m.Up)
		seen[m.Name] = true
	}
	assert.Equal(t, "create_print_jobs", All[0].Name)
}
