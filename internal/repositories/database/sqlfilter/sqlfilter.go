// Package sqlfilter translates domain filters into WHERE clauses shared by
// the PostgreSQL and SQLite repositories. Conditions are written with '?'
// placeholders and renumbered to $n for PostgreSQL.
package sqlfilter

import (
	"strconv"
	"strings"
	"time"

	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/core/domain"
)

// Dialect selects placeholder style and value encoding.
type Dialect int

const (
	Postgres Dialect = iota
	SQLite
)

// Clause accumulates AND-ed conditions and their arguments.
type Clause struct {
	dialect Dialect
	conds   []string
	args    []any
}

// New returns an empty clause for dialect d.
func New(d Dialect) *Clause {
	return &Clause{dialect: d}
}

// Add appends a condition. The number of '?' in cond must equal len(args).
func (c *Clause) Add(cond string, args ...any) *Clause {
	c.conds = append(c.conds, cond)
	c.args = append(c.args, args...)
	return c
}

// Date encodes t for a DATE comparison in the current dialect.
func (c *Clause) Date(t time.Time) any {
	if c.dialect == SQLite {
		return t.Format(domain.DateLayout)
	}
	return t
}

// Where renders " WHERE a AND b", or "" when there are no conditions.
func (c *Clause) Where() string {
	if len(c.conds) == 0 {
		return ""
	}
	return c.Rebind(" WHERE " + strings.Join(c.conds, " AND "))
}

// Args returns the accumulated arguments in placeholder order.
func (c *Clause) Args() []any {
	return c.args
}

// Rebind rewrites '?' placeholders to $1, $2, ... for PostgreSQL.
func (c *Clause) Rebind(query string) string {
	if c.dialect != Postgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ContainsPattern builds a LIKE pattern matching s anywhere, case-folded,
// with LIKE metacharacters escaped by backslash.
func ContainsPattern(s string) string {
	s = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.ToLower(s))
	return "%" + s + "%"
}

const likeCond = `LOWER(%s) LIKE ? ESCAPE '\'`

func like(column string) string {
	return strings.Replace(likeCond, "%s", column, 1)
}

// Entries builds the clause for a financial entry filter.
func Entries(d Dialect, f domain.EntryFilter) *Clause {
	c := New(d)
	if f.DateFrom != nil {
		c.Add("data >= ?", c.Date(*f.DateFrom))
	}
	if f.DateTo != nil {
		c.Add("data <= ?", c.Date(*f.DateTo))
	}
	return c
}

// Budgets builds the clause for a budget filter. Text matches title, client or description.
func Budgets(d Dialect, f domain.BudgetFilter) *Clause {
	c := New(d)
	if f.Status != "" {
		c.Add("status = ?", f.Status)
	}
	if f.Client != "" {
		c.Add(like("cliente"), ContainsPattern(f.Client))
	}
	if f.Text != "" {
		p := ContainsPattern(f.Text)
		c.Add("("+like("titulo")+" OR "+like("cliente")+" OR "+like("descricao")+")", p, p, p)
	}
	return c
}

// Contracts builds the clause for a contract filter.
func Contracts(d Dialect, f domain.ContractFilter) *Clause {
	c := New(d)
	if f.Client != "" {
		c.Add(like("cliente"), ContainsPattern(f.Client))
	}
	if f.StartDateFrom != nil {
		c.Add("data_inicio >= ?", c.Date(*f.StartDateFrom))
	}
	if f.EndDateTo != nil {
		c.Add("data_fim <= ?", c.Date(*f.EndDateTo))
	}
	return c
}

// Tasks builds the clause for a task filter.
func Tasks(d Dialect, f domain.TaskFilter) *Clause {
	c := New(d)
	if f.DateFrom != nil {
		c.Add("data >= ?", c.Date(*f.DateFrom))
	}
	if f.DateTo != nil {
		c.Add("data <= ?", c.Date(*f.DateTo))
	}
	if f.DateBefore != nil {
		c.Add("data < ?", c.Date(*f.DateBefore))
	}
	if f.Kind != "" {
		c.Add("tipo = ?", f.Kind)
	}
	if f.Done != nil {
		c.Add("concluida = ?", *f.Done)
	}
	return c
}

// Order clauses shared by both engines.
const (
	EntryOrder    = " ORDER BY data DESC, id DESC"
	BudgetOrder   = " ORDER BY data_criacao DESC, id DESC"
	ContractOrder = " ORDER BY data_upload DESC, id DESC"
	TaskOrder     = " ORDER BY data ASC, horario IS NULL, horario ASC, id ASC"
)
