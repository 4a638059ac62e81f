package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// PracticeEvent summarizes one generated practice set.
type PracticeEvent struct {
	ent.Schema
}

func (PracticeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PracticeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			MaxLen(36).
			Immutable().
			Comment("UUID of the practice run"),
		field.String("category").
			Comment("Category actually used, after General fallback"),
		field.Enum("difficulty").
			Values("EASY", "MEDIUM", "HARD"),
		field.Enum("question_type").
			Values("VOCAB", "COMPLETION"),
		field.Int("requested"),
		field.Int("live").
			Comment("Questions built from stored content"),
		field.Int("fallback").
			Comment("Questions taken from the sample tables"),
		field.Int("correct").
			Default(0),
		field.Int("answered").
			Default(0),
	}
}
