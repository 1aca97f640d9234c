package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ModuleProgress is the per-section study progress upsert row. Writes are
// best-effort from the caller's perspective; a failed upsert never
// invalidates in-memory session state.
type ModuleProgress struct {
	ent.Schema
}

func (ModuleProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("module_id").
			NotEmpty(),
		field.String("section_id").
			NotEmpty(),
		field.String("status").
			Default("in_progress").
			Comment("not_started, in_progress, or completed"),
		field.Int("time_spent_minutes").
			Default(0),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (ModuleProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "module_id", "section_id").Unique(),
	}
}
