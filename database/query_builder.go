package database

import (
	"fmt"
	"strings"
)

const (
	columnID               = "id"
	columnTitle            = "title"
	columnDescription      = "description"
	columnProblemStatement = "problem_statement"
	columnCategory         = "category"
	columnStatus           = "status"
	columnLocation         = "location"
	columnCreatorID        = "creator_id"
	columnTargetMembers    = "target_members"
	columnImageURL         = "image_url"
	columnProjectID        = "project_id"
	columnUserID           = "user_id"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// QueryBuilder helps build WHERE clauses safely
type QueryBuilder struct {
	conditions []string
	args       []interface{}
	argCount   int
}

func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{
		conditions: []string{},
		args:       []interface{}{},
		argCount:   1,
	}
}

func (qb *QueryBuilder) AddCondition(column string, value interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf("%s = $%d", column, qb.argCount))
	qb.args = append(qb.args, value)
	qb.argCount++
}

// AddInCondition matches the column against any of the given values.
func (qb *QueryBuilder) AddInCondition(column string, values []string) {
	qb.conditions = append(qb.conditions, fmt.Sprintf("%s = ANY($%d)", column, qb.argCount))
	qb.args = append(qb.args, values)
	qb.argCount++
}

// AddTextSearch matches a case-insensitive substring against any of the
// given columns. LIKE metacharacters in the needle are escaped.
func (qb *QueryBuilder) AddTextSearch(needle string, columns ...string) {
	parts := make([]string, len(columns))
	for i, column := range columns {
		parts[i] = fmt.Sprintf("%s ILIKE $%d", column, qb.argCount)
	}
	qb.conditions = append(qb.conditions, "("+strings.Join(parts, " OR ")+")")
	qb.args = append(qb.args, "%"+escapeLike(needle)+"%")
	qb.argCount++
}

func (qb *QueryBuilder) WhereClause() string {
	if len(qb.conditions) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(qb.conditions, " AND ")
}

func (qb *QueryBuilder) Args() []interface{} {
	return qb.args
}

func (qb *QueryBuilder) NextArgNum() int {
	return qb.argCount
}

// SetBuilder helps build UPDATE ... SET clauses for partial updates.
// Nil pointers are skipped so absent request fields leave columns alone.
type SetBuilder struct {
	assignments []string
	args        []interface{}
	argCount    int
}

func NewSetBuilder() *SetBuilder {
	return &SetBuilder{
		assignments: []string{},
		args:        []interface{}{},
		argCount:    1,
	}
}

func (sb *SetBuilder) Set(column string, value *string) {
	if value == nil {
		return
	}
	sb.SetValue(column, *value)
}

func (sb *SetBuilder) SetValue(column string, value interface{}) {
	sb.assignments = append(sb.assignments, fmt.Sprintf("%s = $%d", column, sb.argCount))
	sb.args = append(sb.args, value)
	sb.argCount++
}

func (sb *SetBuilder) Empty() bool {
	return len(sb.assignments) == 0
}

func (sb *SetBuilder) SetClause() string {
	return strings.Join(sb.assignments, ", ")
}

func (sb *SetBuilder) Args() []interface{} {
	return sb.args
}

func (sb *SetBuilder) NextArgNum() int {
	return sb.argCount
}

// Helper functions

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

func validateLimit(limit, defaultLimit, maxLimit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

func validateOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
