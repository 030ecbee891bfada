// Command schemaprobe opens a SQLite database file and reports, for every
// column, how the driver's type layer classifies it: the column type the
// declared name resolves to, its storage affinity, the Go type values
// decode into, and the size/precision/scale metadata.
//
// It exists both as a debugging aid and as a worked example of the
// internal/types API: the output is exactly what the driver's reader layer
// computes when it describes a result set.
//
// Usage:
//
//	schemaprobe -db app.db
//	schemaprobe -db app.db -tables 'users, "audit, log"' -meta no -fingerprint
//
// The -tables flag takes a comma-separated list; double-quote a name that
// itself contains a comma. The -meta flag accepts the usual boolean
// aliases (yes/no/on/off/1/0/true/false).
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/zeebo/xxh3"
	"golang.org/x/sync/errgroup"

	"sqliteconv/internal/sqlitedb"
	"sqliteconv/internal/textutil"
	"sqliteconv/internal/types"
)

var (
	flagDB          = flag.String("db", "", "SQLite database file or DSN to inspect")
	flagTables      = flag.String("tables", "", `Comma-separated table names to probe (default: all); quote names containing commas`)
	flagMeta        = flag.String("meta", "yes", "Include size/precision/scale columns in the report (boolean alias)")
	flagFingerprint = flag.Bool("fingerprint", false, "Print a stable 64-bit fingerprint of the resolved schema")
)

// columnInfo is one row of the report: a column plus everything the type
// layer derives from its declaration.
type columnInfo struct {
	Name     string
	Declared string
	Type     types.ColumnType
	Affinity types.TypeAffinity
	GoType   string

	Size           int64
	Precision      int64
	PrecisionOK    bool
	Scale          int64
	ScaleOK        bool
}

type tableInfo struct {
	Name    string
	Columns []columnInfo
}

type report struct {
	Tables []tableInfo
}

func main() {
	flag.Parse()

	if *flagDB == "" {
		fmt.Fprintln(os.Stderr, "schemaprobe: -db is required")
		flag.Usage()
		os.Exit(2)
	}

	withMeta, err := textutil.ParseBool(*flagMeta)
	if err != nil {
		log.Fatalf("schemaprobe: -meta: %v", err)
	}

	only := textutil.SplitQuoted(*flagTables, ',')

	rep, err := run(context.Background(), *flagDB, only)
	if err != nil {
		log.Fatalf("schemaprobe: %v", err)
	}

	printReport(os.Stdout, rep, withMeta)
	if *flagFingerprint {
		fmt.Printf("fingerprint: %016x\n", fingerprint(rep))
	}
}

// run opens the database, enumerates the requested tables and probes them
// concurrently. The only slice filters by exact table name; an empty or
// all-empty slice (SplitQuoted of "" yields [""]) means "all tables".
func run(ctx context.Context, dsn string, only []string) (*report, error) {
	db, closeDB, err := sqlitedb.Open(ctx, dsn)
	if err != nil {
		return nil, err
	}
	defer closeDB()

	names, err := tableNames(ctx, db, only)
	if err != nil {
		return nil, err
	}

	infos := make([]tableInfo, len(names))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			ti, err := probeTable(gctx, db, name)
			if err != nil {
				return fmt.Errorf("table %s: %w", name, err)
			}
			infos[i] = ti
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return &report{Tables: infos}, nil
}

// tableNames lists non-internal tables from sqlite_master, optionally
// restricted to the given names.
func tableNames(ctx context.Context, db *sql.DB, only []string) ([]string, error) {
	want := make(map[string]bool, len(only))
	for _, n := range only {
		if n != "" {
			want[n] = true
		}
	}

	rows, err := db.QueryContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		if len(want) == 0 || want[n] {
			names = append(names, n)
		}
	}
	return names, rows.Err()
}

// quoteIdent wraps a SQL identifier in double-quotes, doubling any
// embedded quote the way SQLite expects (Go's %q escaping is not SQL).
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// probeTable resolves every column of one table through the type layer.
func probeTable(ctx context.Context, db *sql.DB, name string) (tableInfo, error) {
	rows, err := db.QueryContext(ctx, "PRAGMA table_info("+quoteIdent(name)+")")
	if err != nil {
		return tableInfo{}, err
	}
	defer rows.Close()

	ti := tableInfo{Name: name}
	for rows.Next() {
		var (
			cid     int
			col     string
			decl    sql.NullString
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &col, &decl, &notNull, &dflt, &pk); err != nil {
			return tableInfo{}, err
		}

		ci, err := describeColumn(col, decl.String)
		if err != nil {
			return tableInfo{}, fmt.Errorf("column %s: %w", col, err)
		}
		ti.Columns = append(ti.Columns, ci)
	}
	return ti, rows.Err()
}

// describeColumn is the pure part of the probe: declared type name in,
// everything the type layer knows about it out.
func describeColumn(name, declared string) (columnInfo, error) {
	// The declaration may carry a length suffix ("VARCHAR(40)"); resolve
	// on the bare name the way the driver does.
	base := declared
	if i := strings.IndexByte(base, '('); i >= 0 {
		base = base[:i]
	}
	base = strings.TrimSpace(base)

	ct := types.Resolve(base)
	aff, err := types.AffinityOf(ct)
	if err != nil {
		return columnInfo{}, err
	}
	goType, err := types.GoType(aff, ct)
	if err != nil {
		return columnInfo{}, err
	}
	size, err := types.ColumnSize(ct)
	if err != nil {
		return columnInfo{}, err
	}
	prec, precOK, err := types.NumericPrecision(ct)
	if err != nil {
		return columnInfo{}, err
	}
	scale, scaleOK, err := types.NumericScale(ct)
	if err != nil {
		return columnInfo{}, err
	}

	return columnInfo{
		Name:        name,
		Declared:    declared,
		Type:        ct,
		Affinity:    aff,
		GoType:      goType.String(),
		Size:        size,
		Precision:   prec,
		PrecisionOK: precOK,
		Scale:       scale,
		ScaleOK:     scaleOK,
	}, nil
}

// fingerprint hashes the resolved shapes into a stable 64-bit value so two
// databases can be compared without diffing full reports. Only resolved
// information goes into the hash, not raw declarations: two schemas that
// the driver treats identically fingerprint identically.
func fingerprint(rep *report) uint64 {
	var b strings.Builder
	for _, t := range rep.Tables {
		for _, c := range t.Columns {
			fmt.Fprintf(&b, "%s|%s|%s|%s\n", t.Name, c.Name, c.Type, c.Affinity)
		}
	}
	return xxh3.HashString(b.String())
}

// printReport writes the human-readable report.
func printReport(w *os.File, rep *report, withMeta bool) {
	for _, t := range rep.Tables {
		fmt.Fprintf(w, "%s\n", t.Name)
		for _, c := range t.Columns {
			decl := c.Declared
			if decl == "" {
				decl = "<none>"
			}
			fmt.Fprintf(w, "  %-24s %-16s -> %-9s affinity=%-8s go=%s",
				c.Name, decl, c.Type, c.Affinity, c.GoType)
			if withMeta {
				size := fmt.Sprint(c.Size)
				if c.Size == types.ColumnSizeMax {
					size = "max"
				}
				fmt.Fprintf(w, " size=%s", size)
				if c.PrecisionOK {
					fmt.Fprintf(w, " precision=%d scale=%d", c.Precision, c.Scale)
				}
			}
			fmt.Fprintln(w)
		}
	}
}
