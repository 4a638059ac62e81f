package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// ContentMeta holds key/value facts about the installed content, such as
// the imported pack version.
type ContentMeta struct {
	ent.Schema
}

func (ContentMeta) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("name").
			MaxLen(64),
		field.String("value"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
