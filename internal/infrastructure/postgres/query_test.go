package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchWhere(t *testing.T) {
	clause, pattern := searchWhere([]string{"name", "endpoint"}, "gpt")
	assert.Equal(t, "WHERE name ILIKE $1 OR endpoint ILIKE $1", clause)
	assert.Equal(t, "%gpt%", pattern)

	clause, pattern = searchWhere([]string{"name"}, "   ")
	assert.Empty(t, clause)
	assert.Empty(t, pattern)

	clause, pattern = searchWhere(nil, "gpt")
	assert.Empty(t, clause)
	assert.Empty(t, pattern)
}

func TestDropdownColumns(t *testing.T) {
	allowed := map[string]bool{"name": true, "endpoint": true}

	cols, searchable := dropdownColumns(allowed, []string{"name", " endpoint "})
	assert.Equal(t, []string{"id", "name", "endpoint"}, cols)
	assert.Equal(t, []string{"name", "endpoint"}, searchable)

	// non-whitelisted, empty and id fields are dropped
	cols, searchable = dropdownColumns(allowed, []string{"id", "", "password_hash", "name; DROP TABLE users"})
	assert.Equal(t, []string{"id"}, cols)
	assert.Empty(t, searchable)

	// id is always selected even with no requested fields
	cols, searchable = dropdownColumns(allowed, nil)
	assert.Equal(t, []string{"id"}, cols)
	assert.Empty(t, searchable)
}
