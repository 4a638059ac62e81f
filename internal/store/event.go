package store

import (
	"context"
	"database/sql"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// eventRepo implements EventRepo on top of ent's SQL builder.
type eventRepo struct {
	drv *entsql.Driver
}

// insertID runs an insert and returns the generated integer key. Postgres
// does not report LastInsertId, so the key is read back with RETURNING.
func insertID(ctx context.Context, drv *entsql.Driver, b *entsql.InsertBuilder) (int, error) {
	if drv.Dialect() == dialect.Postgres {
		var id int
		err := queryRows(ctx, drv, b.Returning("id"), func(rows *entsql.Rows) error {
			return rows.Scan(&id)
		})
		if err != nil {
			return 0, err
		}
		if id == 0 {
			return 0, fmt.Errorf("insert returned no id")
		}
		return id, nil
	}

	var res sql.Result
	query, args := b.Query()
	if err := drv.Exec(ctx, query, args, &res); err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

// exec runs a statement and returns the number of affected rows.
func exec(ctx context.Context, drv *entsql.Driver, q entsql.Querier) (int64, error) {
	var res sql.Result
	query, args := q.Query()
	if err := drv.Exec(ctx, query, args, &res); err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// queryRows runs q and calls scan once per row. Rows are fully drained
// before returning, so callers may issue further queries from scan's caller.
func queryRows(ctx context.Context, drv *entsql.Driver, q entsql.Querier, scan func(*entsql.Rows) error) error {
	rows := &entsql.Rows{}
	query, args := q.Query()
	if err := drv.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

// applyOpts adds the shared time range and limit filters to s.
func applyOpts(s *entsql.Selector, opts QueryOpts) *entsql.Selector {
	if !opts.From.IsZero() {
		s.Where(entsql.GTE("timestamp", opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		s.Where(entsql.LTE("timestamp", opts.To.UTC()))
	}
	if opts.Limit > 0 {
		s.Limit(opts.Limit)
	}
	return s
}
