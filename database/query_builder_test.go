package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryBuilder_AddCondition(t *testing.T) {
	qb := NewQueryBuilder()

	qb.AddCondition("category", "environment")

	assert.Equal(t, "WHERE category = $1", qb.WhereClause())
	assert.Equal(t, []interface{}{"environment"}, qb.Args())
	assert.Equal(t, 2, qb.NextArgNum())
}

func TestQueryBuilder_MultipleConditions(t *testing.T) {
	qb := NewQueryBuilder()

	qb.AddCondition("category", "environment")
	qb.AddCondition("status", "active")
	qb.AddCondition("creator_id", "123")

	assert.Equal(t, "WHERE category = $1 AND status = $2 AND creator_id = $3", qb.WhereClause())
	assert.Equal(t, []interface{}{"environment", "active", "123"}, qb.Args())
	assert.Equal(t, 4, qb.NextArgNum())
}

func TestQueryBuilder_AddInCondition(t *testing.T) {
	qb := NewQueryBuilder()

	qb.AddInCondition("status", []string{"completed", "complete"})

	assert.Equal(t, "WHERE status = ANY($1)", qb.WhereClause())
	assert.Equal(t, []interface{}{[]string{"completed", "complete"}}, qb.Args())
}

func TestQueryBuilder_AddTextSearch(t *testing.T) {
	qb := NewQueryBuilder()

	qb.AddTextSearch("garden", "title", "description")

	assert.Equal(t, "WHERE (title ILIKE $1 OR description ILIKE $1)", qb.WhereClause())
	assert.Equal(t, []interface{}{"%garden%"}, qb.Args())
	assert.Equal(t, 2, qb.NextArgNum())
}

func TestQueryBuilder_AddTextSearch_EscapesMetacharacters(t *testing.T) {
	qb := NewQueryBuilder()

	qb.AddTextSearch("100%_done", "title")

	assert.Equal(t, []interface{}{`%100\%\_done%`}, qb.Args())
}

func TestQueryBuilder_WhereClause_Empty(t *testing.T) {
	qb := NewQueryBuilder()

	assert.Equal(t, "", qb.WhereClause())
	assert.Empty(t, qb.Args())
}

func TestSetBuilder(t *testing.T) {
	sb := NewSetBuilder()
	title := "New Title"

	sb.Set("title", &title)
	sb.Set("description", nil)
	sb.SetValue("target_members", 5)

	assert.Equal(t, "title = $1, target_members = $2", sb.SetClause())
	assert.Equal(t, []interface{}{"New Title", 5}, sb.Args())
	assert.Equal(t, 3, sb.NextArgNum())
	assert.False(t, sb.Empty())
}

func TestSetBuilder_Empty(t *testing.T) {
	sb := NewSetBuilder()

	sb.Set("title", nil)

	assert.True(t, sb.Empty())
	assert.Equal(t, "", sb.SetClause())
}

func TestValidateLimit(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		expected int
	}{
		{name: "use provided limit", limit: 10, expected: 10},
		{name: "use default when zero", limit: 0, expected: defaultLimit},
		{name: "use default when negative", limit: -10, expected: defaultLimit},
		{name: "cap at max", limit: 5000, expected: maxLimit},
		{name: "exactly at max", limit: maxLimit, expected: maxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, validateLimit(tt.limit, defaultLimit, maxLimit))
		})
	}
}

func TestValidateOffset(t *testing.T) {
	assert.Equal(t, 0, validateOffset(-5))
	assert.Equal(t, 0, validateOffset(0))
	assert.Equal(t, 25, validateOffset(25))
}
