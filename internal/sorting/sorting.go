// Package sorting turns the API's orderBy parameter into a whitelisted SQL ordering.
//
// The parameter is a field name optionally prefixed with "-" for descending order.
// Only fields registered in a Fields set are accepted.
package sorting

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm/clause"
)

// ErrUnknownField is returned for orderBy values naming a field outside the set.
var ErrUnknownField = errors.New("unknown sort field")

// Direction of an ordering.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// Fields maps public field names to SQL ordering expressions.
type Fields map[string]string

// aliases accepted for compatibility with older clients.
var aliases = map[string]string{
	"created_date": "created_at",
	"updated_date": "updated_at",
}

// Order is a validated sort instruction.
type Order struct {
	Field      string
	Expression string
	Direction  Direction
}

var identifier = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Column returns the ordering for gorm. Plain column names are quoted by the
// dialect so reserved words such as rank stay valid; other expressions are raw.
func (o Order) Column() clause.OrderByColumn {
	return clause.OrderByColumn{
		Column: clause.Column{Name: o.Expression, Raw: !identifier.MatchString(o.Expression)},
		Desc:   o.Direction == Desc,
	}
}

// Parse validates raw against fields. An empty raw value yields a nil order.
func Parse(raw string, fields Fields) (*Order, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	direction := Asc
	if strings.HasPrefix(raw, "-") {
		direction = Desc
		raw = strings.TrimPrefix(raw, "-")
	}

	name := strings.ToLower(raw)
	if alias, ok := aliases[name]; ok {
		name = alias
	}

	expr, ok := fields[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, raw)
	}

	return &Order{Field: name, Expression: expr, Direction: direction}, nil
}

// Rank builds a CASE expression ordering column by the position of its value in
// ranked. Values outside ranked sort last.
func Rank[T ~string](column string, ranked []T) string {
	var b strings.Builder
	b.WriteString("CASE ")
	b.WriteString(column)
	for i, v := range ranked {
		fmt.Fprintf(&b, " WHEN '%s' THEN %d", string(v), i)
	}
	fmt.Fprintf(&b, " ELSE %d END", len(ranked))
	return b.String()
}
