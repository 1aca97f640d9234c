package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewItem is the current spaced-repetition state of one (user, question)
// pair. Unlike the event tables this is an upsert row: each rating
// submission overwrites it with the freshly computed schedule.
type ReviewItem struct {
	ent.Schema
}

func (ReviewItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("question_id").
			NotEmpty(),
		field.String("concept").
			Optional().
			Comment("Display title for the item"),
		field.Time("due"),
		field.Int("interval_days").
			Default(0),
		field.Float("ease").
			Default(2.5),
		field.Int("reps").
			Default(0),
		field.Int("lapses").
			Default(0),
		field.Int("total_reviews").
			Default(0),
		field.Int("correct_reviews").
			Default(0),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (ReviewItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "question_id").Unique(),
		index.Fields("user_id", "due"),
	}
}
