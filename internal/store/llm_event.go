package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

var llmEventColumns = []string{
	"id", "timestamp", "provider", "model", "purpose",
	"input_tokens", "output_tokens", "latency_ms", "success",
	"error_message", "request_body", "response_body",
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	b := entsql.Dialect(r.drv.Dialect()).
		Insert(llmEventsTable).
		Columns(llmEventColumns[1:]...).
		Values(
			time.Now().UTC(), data.Provider, data.Model, data.Purpose,
			data.InputTokens, data.OutputTokens, data.LatencyMs, data.Success,
			data.ErrorMessage, data.RequestBody, data.ResponseBody,
		)
	if _, err := insertID(ctx, r.drv, b); err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error) {
	b := entsql.Dialect(r.drv.Dialect())
	s := b.Select(llmEventColumns...).From(b.Table(llmEventsTable)).OrderBy(entsql.Desc("id"))
	if opts.Purpose != "" {
		s.Where(entsql.EQ("purpose", opts.Purpose))
	}
	applyOpts(s, opts)

	var out []LLMEvent
	err := queryRows(ctx, r.drv, s, func(rows *entsql.Rows) error {
		e, err := scanLLMEvent(rows)
		if err != nil {
			return err
		}
		out = append(out, e)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	return out, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error) {
	b := entsql.Dialect(r.drv.Dialect())
	s := b.Select(llmEventColumns...).From(b.Table(llmEventsTable)).Where(entsql.EQ("id", id))

	var found *LLMEvent
	err := queryRows(ctx, r.drv, s, func(rows *entsql.Rows) error {
		e, err := scanLLMEvent(rows)
		if err != nil {
			return err
		}
		found = &e
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get LLM event %d: %w", id, err)
	}
	return found, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error) {
	return r.llmUsage(ctx, "purpose")
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMUsage, error) {
	return r.llmUsage(ctx, "model")
}

func (r *eventRepo) llmUsage(ctx context.Context, group string) ([]LLMUsage, error) {
	b := entsql.Dialect(r.drv.Dialect())
	s := b.Select(
		group,
		entsql.Count("*"),
		entsql.Sum("input_tokens"),
		entsql.Sum("output_tokens"),
		entsql.Avg("latency_ms"),
	).From(b.Table(llmEventsTable)).GroupBy(group).OrderBy(group)

	var usage []LLMUsage
	err := queryRows(ctx, r.drv, s, func(rows *entsql.Rows) error {
		var (
			u             LLMUsage
			key           string
			inTok, outTok int64
			latency       float64
		)
		if err := rows.Scan(&key, &u.Calls, &inTok, &outTok, &latency); err != nil {
			return err
		}
		u.InputTokens, u.OutputTokens = int(inTok), int(outTok)
		u.AvgLatencyMs = int64(latency)
		if group == "purpose" {
			u.Purpose = key
		} else {
			u.Model = key
		}
		usage = append(usage, u)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query LLM usage by %s: %w", group, err)
	}
	return usage, nil
}

func scanLLMEvent(rows *entsql.Rows) (LLMEvent, error) {
	var e LLMEvent
	err := rows.Scan(
		&e.ID, &e.Timestamp, &e.Provider, &e.Model, &e.Purpose,
		&e.InputTokens, &e.OutputTokens, &e.LatencyMs, &e.Success,
		&e.ErrorMessage, &e.RequestBody, &e.ResponseBody,
	)
	return e, err
}
