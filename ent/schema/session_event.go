package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle events (start/complete/abandon)
// for practice, assessment and review sessions.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("user_id").
			NotEmpty().
			Comment("Owner of the session"),
		field.String("kind").
			NotEmpty().
			Comment("practice, assessment, or review"),
		field.String("action").
			NotEmpty().
			Comment("started, completed, or abandoned"),
		field.String("module_id").
			Optional().
			Comment("Study module the session targeted, if any"),
		field.Int("questions").
			Default(0).
			Comment("Total questions (on completion only)"),
		field.Int("correct").
			Default(0).
			Comment("Total correct (on completion only)"),
		field.Float("score_percent").
			Default(0).
			Comment("Final score percentage (on completion only)"),
		field.Bool("passed").
			Default(false).
			Comment("Whether the configured passing score was met"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on completion only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("user_id"),
		index.Fields("kind"),
		index.Fields("action"),
	}
}
