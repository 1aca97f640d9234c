package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answered question within a session. The
// reviewed flag flips when an incorrect answer is later revisited; the
// incorrect-and-unreviewed rows per domain drive needs-review targeting.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("user_id").
			NotEmpty(),
		field.String("question_id").
			NotEmpty(),
		field.String("domain").
			NotEmpty().
			Comment("TCO blueprint domain of the question"),
		field.String("difficulty").
			NotEmpty(),
		field.String("choice_id").
			NotEmpty().
			Comment("The choice the learner picked"),
		field.Bool("correct"),
		field.Int("time_ms").
			Default(0).
			Comment("Milliseconds to answer"),
		field.Bool("reviewed").
			Default(false).
			Comment("True once an incorrect answer has been revisited"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("user_id"),
		index.Fields("question_id"),
		index.Fields("domain"),
		index.Fields("correct", "reviewed"),
	}
}
