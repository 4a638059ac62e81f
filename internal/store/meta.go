package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

const contentVersionKey = "content_version"

// MetaRepo stores small key/value facts about the installed content.
type MetaRepo struct {
	drv *entsql.Driver
}

// ContentVersion returns the version of the last imported content pack,
// or "" if none was imported.
func (r *MetaRepo) ContentVersion(ctx context.Context) (string, error) {
	v, _, err := r.get(ctx, contentVersionKey)
	if err != nil {
		return "", fmt.Errorf("read content version: %w", err)
	}
	return v, nil
}

// SetContentVersion records the version of an imported content pack.
func (r *MetaRepo) SetContentVersion(ctx context.Context, version string) error {
	if err := r.set(ctx, contentVersionKey, version); err != nil {
		return fmt.Errorf("write content version: %w", err)
	}
	return nil
}

func (r *MetaRepo) get(ctx context.Context, key string) (string, bool, error) {
	b := entsql.Dialect(r.drv.Dialect())
	s := b.Select("value").From(b.Table(metaTable)).Where(entsql.EQ("name", key))

	var (
		value string
		found bool
	)
	err := queryRows(ctx, r.drv, s, func(rows *entsql.Rows) error {
		found = true
		return rows.Scan(&value)
	})
	return value, found, err
}

func (r *MetaRepo) set(ctx context.Context, key, value string) error {
	_, found, err := r.get(ctx, key)
	if err != nil {
		return err
	}

	b := entsql.Dialect(r.drv.Dialect())
	now := time.Now().UTC()
	if found {
		_, err = exec(ctx, r.drv, b.Update(metaTable).
			Set("value", value).
			Set("updated_at", now).
			Where(entsql.EQ("name", key)))
		return err
	}
	_, err = exec(ctx, r.drv, b.Insert(metaTable).
		Columns("name", "value", "updated_at").
		Values(key, value, now))
	return err
}
