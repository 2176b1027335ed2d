package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpMigrations(t *testing.T) {
	versions, err := upMigrations()
	require.NoError(t, err)
	assert.Equal(t, []string{"001_init"}, versions)
}
