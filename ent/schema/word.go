package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Word is a vocabulary entry, unique per category.
type Word struct {
	ent.Schema
}

func (Word) Fields() []ent.Field {
	return []ent.Field{
		field.String("text").
			NotEmpty(),
		field.String("translation").
			Default("").
			Comment("Empty until imported or backfilled"),
		field.String("source_lang").
			MaxLen(16).
			Comment("ISO 639-1 code"),
		field.String("target_lang").
			MaxLen(16).
			Comment("ISO 639-1 code"),
		field.Enum("difficulty").
			Values("EASY", "MEDIUM", "HARD"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Int("category_id"),
	}
}

func (Word) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("category", Category.Type).
			Ref("words").
			Field("category_id").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("sentences", ExampleSentence.Type),
	}
}

func (Word) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category_id", "text").Unique(),
		index.Fields("category_id", "difficulty"),
	}
}
