package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent is the attempt history of the spaced-repetition scheduler:
// one row per rating submission, capturing the state the transition
// produced.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("item_id").
			NotEmpty().
			Comment("Review item (question) this rating applied to"),
		field.String("rating").
			NotEmpty().
			Comment("again, hard, good, or easy"),
		field.Int("interval_days").
			Comment("Interval produced by the transition"),
		field.Float("ease").
			Comment("Ease factor produced by the transition"),
		field.Int("reps"),
		field.Int("lapses"),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("item_id"),
	}
}
