package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExampleSentence is a usage example for a word.
type ExampleSentence struct {
	ent.Schema
}

func (ExampleSentence) Fields() []ent.Field {
	return []ent.Field{
		field.String("text").
			NotEmpty().
			MaxLen(1024),
		field.String("translation").
			MaxLen(1024).
			Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Int("word_id"),
	}
}

func (ExampleSentence) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("word", Word.Type).
			Ref("sentences").
			Field("word_id").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (ExampleSentence) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("word_id"),
	}
}
