package types

import "strings"

// nameEntry pairs a schema type name with the column type it resolves to.
// The table below is an ordered sequence, not a map: Resolve walks it front
// to back and takes the first case-insensitive match, so declaration order
// decides ties if an alias is ever listed twice.
type nameEntry struct {
	name string
	ct   ColumnType
}

// typeNames maps the type names that appear in column declarations (from
// CREATE TABLE statements, PRAGMA table_info, ATTACHed legacy databases and
// so on) to column types. SQLite accepts any declared type name, so this
// table carries the aliases of the common SQL dialects, grouped by family.
var typeNames = []nameEntry{
	// integer family
	{"COUNTER", Int64},
	{"AUTOINCREMENT", Int64},
	{"IDENTITY", Int64},
	{"LONG", Int64},
	{"BIGINT", Int64},
	{"INTEGER", Int64},
	{"INT", Int32},
	{"SMALLINT", Int16},
	{"TINYINT", Uint8},

	// text family
	{"VARCHAR", Text},
	{"NVARCHAR", Text},
	{"CHAR", TextFixed},
	{"NCHAR", TextFixed},
	{"TEXT", Text},
	{"NTEXT", Text},
	{"STRING", Text},
	{"LONGTEXT", Text},
	{"LONGCHAR", Text},
	{"LONGVARCHAR", Text},
	{"MEMO", Text},
	{"NOTE", Text},

	// real family
	{"DOUBLE", Float64},
	{"FLOAT", Float64},
	{"REAL", Float32},

	// boolean family
	{"BIT", Boolean},
	{"YESNO", Boolean},
	{"LOGICAL", Boolean},
	{"BOOL", Boolean},
	{"BOOLEAN", Boolean},

	// decimal family
	{"NUMERIC", Decimal},
	{"DECIMAL", Decimal},
	{"MONEY", Decimal},
	{"CURRENCY", Decimal},

	// date/time family
	{"TIME", DateTime},
	{"DATE", DateTime},
	{"SMALLDATE", DateTime},
	{"TIMESTAMP", DateTime},
	{"DATETIME", DateTime},

	// binary family
	{"BLOB", Blob},
	{"BINARY", Blob},
	{"VARBINARY", Blob},
	{"IMAGE", Blob},
	{"GENERAL", Blob},
	{"OLEOBJECT", Blob},

	// identifier family
	{"GUID", Guid},
	{"GUIDBLOB", Guid},
	{"UNIQUEIDENTIFIER", Guid},
}

// preferredNames is the reverse direction, used when synthesizing schema
// text: for each column type, the one name the driver emits. It is much
// narrower than typeNames (the input aliases collapse), and types with no
// natural SQL spelling fall back to TEXT.
var preferredNames = map[ColumnType]string{
	Int16:     "SMALLINT",
	Int32:     "INT",
	Int64:     "INTEGER",
	Uint8:     "TINYINT",
	Float32:   "REAL",
	Float64:   "DOUBLE",
	Decimal:   "DECIMAL",
	Boolean:   "BIT",
	Guid:      "UNIQUEIDENTIFIER",
	Text:      "NVARCHAR",
	TextFixed: "NCHAR",
	Blob:      "BLOB",
	BlobFixed: "BINARY",
	DateTime:  "DATETIME",
}

// Resolve maps a declared type name to a column type. Matching is exact
// (no prefix matching) and case-insensitive; the table is searched in
// declaration order and the first hit wins. The empty string and any name
// not in the table resolve to Object, the generic fallback, never to an
// error: schema metadata is caller-supplied text and an unknown spelling
// is a degraded lookup, not a failure.
func Resolve(name string) ColumnType {
	if name == "" {
		return Object
	}
	for _, e := range typeNames {
		if strings.EqualFold(e.name, name) {
			return e.ct
		}
	}
	return Object
}

// PreferredName returns the type name the driver emits for ct when writing
// schema text. Types without an entry in the reverse table (the unsigned
// widths beyond TINYINT, Int8 and Object) degrade to "TEXT", mirroring the
// engine's own treatment of unknown declarations. A value outside the
// enumeration returns a DomainError.
func PreferredName(ct ColumnType) (string, error) {
	if !ct.Valid() {
		return "", &DomainError{Kind: "ColumnType", Value: int(ct)}
	}
	if n, ok := preferredNames[ct]; ok {
		return n, nil
	}
	return "TEXT", nil
}
