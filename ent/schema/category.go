package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Category groups words by theme.
type Category struct {
	ent.Schema
}

func (Category) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Unique().
			Comment("Theme name, matched case-insensitively"),
		field.String("translated_name").
			Default("").
			Comment("Theme name in the learner's language"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Category) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("words", Word.Type),
	}
}
