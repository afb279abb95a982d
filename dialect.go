package dynsql

import "strconv"

// Dialect selects the placeholder text of the rendered SQL. Minted
// parameter names are always p1, p2, ... regardless of dialect; only the
// placeholder written into the SQL text varies.
type Dialect int

const (
	MySQL     Dialect = iota // "?", the default
	SQLite                   // "?"
	Postgres                 // "$1"
	SQLServer                // "@p1"
)

// placeholder returns the SQL text for the parameter with the given
// 1-based ordinal and minted name.
func (d Dialect) placeholder(ordinal int, name string) string {
	switch d {
	case Postgres:
		return "$" + strconv.Itoa(ordinal)
	case SQLServer:
		return "@" + name
	default:
		return "?"
	}
}

func (d Dialect) String() string {
	switch d {
	case MySQL:
		return "mysql"
	case SQLite:
		return "sqlite"
	case Postgres:
		return "postgres"
	case SQLServer:
		return "sqlserver"
	default:
		return "unknown"
	}
}
