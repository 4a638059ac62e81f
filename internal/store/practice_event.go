package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

var practiceEventColumns = []string{
	"id", "timestamp", "category", "difficulty", "question_type",
	"requested", "live", "fallback", "answered", "correct",
}

func (r *eventRepo) AppendPractice(ctx context.Context, data PracticeEventData) (string, error) {
	id := uuid.NewString()
	b := entsql.Dialect(r.drv.Dialect()).
		Insert(practiceTable).
		Columns(practiceEventColumns...).
		Values(
			id, time.Now().UTC(), data.Category, data.Difficulty, data.QuestionType,
			data.Requested, data.Live, data.Fallback, data.Answered, data.Correct,
		)
	if _, err := exec(ctx, r.drv, b); err != nil {
		return "", fmt.Errorf("save practice event: %w", err)
	}
	return id, nil
}

func (r *eventRepo) QueryPractice(ctx context.Context, opts QueryOpts) ([]PracticeEvent, error) {
	b := entsql.Dialect(r.drv.Dialect())
	s := b.Select(practiceEventColumns...).
		From(b.Table(practiceTable)).
		OrderBy(entsql.Desc("timestamp"), entsql.Desc("id"))
	if opts.Category != "" {
		s.Where(entsql.EqualFold("category", opts.Category))
	}
	applyOpts(s, opts)

	var out []PracticeEvent
	err := queryRows(ctx, r.drv, s, func(rows *entsql.Rows) error {
		var e PracticeEvent
		if err := rows.Scan(
			&e.ID, &e.Timestamp, &e.Category, &e.Difficulty, &e.QuestionType,
			&e.Requested, &e.Live, &e.Fallback, &e.Answered, &e.Correct,
		); err != nil {
			return err
		}
		out = append(out, e)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query practice events: %w", err)
	}
	return out, nil
}
