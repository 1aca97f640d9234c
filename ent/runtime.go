// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/opsprep/tcoprep/ent/answerevent"
	"github.com/opsprep/tcoprep/ent/moduleprogress"
	"github.com/opsprep/tcoprep/ent/reviewevent"
	"github.com/opsprep/tcoprep/ent/reviewitem"
	"github.com/opsprep/tcoprep/ent/schema"
	"github.com/opsprep/tcoprep/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescUserID is the schema descriptor for user_id field.
	answereventDescUserID := answereventFields[1].Descriptor()
	// answerevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	answerevent.UserIDValidator = answereventDescUserID.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[2].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescDomain is the schema descriptor for domain field.
	answereventDescDomain := answereventFields[3].Descriptor()
	// answerevent.DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	answerevent.DomainValidator = answereventDescDomain.Validators[0].(func(string) error)
	// answereventDescDifficulty is the schema descriptor for difficulty field.
	answereventDescDifficulty := answereventFields[4].Descriptor()
	// answerevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	answerevent.DifficultyValidator = answereventDescDifficulty.Validators[0].(func(string) error)
	// answereventDescChoiceID is the schema descriptor for choice_id field.
	answereventDescChoiceID := answereventFields[5].Descriptor()
	// answerevent.ChoiceIDValidator is a validator for the "choice_id" field. It is called by the builders before save.
	answerevent.ChoiceIDValidator = answereventDescChoiceID.Validators[0].(func(string) error)
	// answereventDescTimeMs is the schema descriptor for time_ms field.
	answereventDescTimeMs := answereventFields[7].Descriptor()
	// answerevent.DefaultTimeMs holds the default value on creation for the time_ms field.
	answerevent.DefaultTimeMs = answereventDescTimeMs.Default.(int)
	// answereventDescReviewed is the schema descriptor for reviewed field.
	answereventDescReviewed := answereventFields[8].Descriptor()
	// answerevent.DefaultReviewed holds the default value on creation for the reviewed field.
	answerevent.DefaultReviewed = answereventDescReviewed.Default.(bool)
	moduleprogressFields := schema.ModuleProgress{}.Fields()
	_ = moduleprogressFields
	// moduleprogressDescUserID is the schema descriptor for user_id field.
	moduleprogressDescUserID := moduleprogressFields[0].Descriptor()
	// moduleprogress.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	moduleprogress.UserIDValidator = moduleprogressDescUserID.Validators[0].(func(string) error)
	// moduleprogressDescModuleID is the schema descriptor for module_id field.
	moduleprogressDescModuleID := moduleprogressFields[1].Descriptor()
	// moduleprogress.ModuleIDValidator is a validator for the "module_id" field. It is called by the builders before save.
	moduleprogress.ModuleIDValidator = moduleprogressDescModuleID.Validators[0].(func(string) error)
	// moduleprogressDescSectionID is the schema descriptor for section_id field.
	moduleprogressDescSectionID := moduleprogressFields[2].Descriptor()
	// moduleprogress.SectionIDValidator is a validator for the "section_id" field. It is called by the builders before save.
	moduleprogress.SectionIDValidator = moduleprogressDescSectionID.Validators[0].(func(string) error)
	// moduleprogressDescStatus is the schema descriptor for status field.
	moduleprogressDescStatus := moduleprogressFields[3].Descriptor()
	// moduleprogress.DefaultStatus holds the default value on creation for the status field.
	moduleprogress.DefaultStatus = moduleprogressDescStatus.Default.(string)
	// moduleprogressDescTimeSpentMinutes is the schema descriptor for time_spent_minutes field.
	moduleprogressDescTimeSpentMinutes := moduleprogressFields[4].Descriptor()
	// moduleprogress.DefaultTimeSpentMinutes holds the default value on creation for the time_spent_minutes field.
	moduleprogress.DefaultTimeSpentMinutes = moduleprogressDescTimeSpentMinutes.Default.(int)
	// moduleprogressDescUpdatedAt is the schema descriptor for updated_at field.
	moduleprogressDescUpdatedAt := moduleprogressFields[5].Descriptor()
	// moduleprogress.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	moduleprogress.DefaultUpdatedAt = moduleprogressDescUpdatedAt.Default.(func() time.Time)
	// moduleprogress.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	moduleprogress.UpdateDefaultUpdatedAt = moduleprogressDescUpdatedAt.UpdateDefault.(func() time.Time)
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescTimestamp is the schema descriptor for timestamp field.
	revieweventDescTimestamp := revieweventMixinFields0[1].Descriptor()
	// reviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewevent.DefaultTimestamp = revieweventDescTimestamp.Default.(func() time.Time)
	// revieweventDescUserID is the schema descriptor for user_id field.
	revieweventDescUserID := revieweventFields[0].Descriptor()
	// reviewevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	reviewevent.UserIDValidator = revieweventDescUserID.Validators[0].(func(string) error)
	// revieweventDescItemID is the schema descriptor for item_id field.
	revieweventDescItemID := revieweventFields[1].Descriptor()
	// reviewevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	reviewevent.ItemIDValidator = revieweventDescItemID.Validators[0].(func(string) error)
	// revieweventDescRating is the schema descriptor for rating field.
	revieweventDescRating := revieweventFields[2].Descriptor()
	// reviewevent.RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	reviewevent.RatingValidator = revieweventDescRating.Validators[0].(func(string) error)
	reviewitemFields := schema.ReviewItem{}.Fields()
	_ = reviewitemFields
	// reviewitemDescUserID is the schema descriptor for user_id field.
	reviewitemDescUserID := reviewitemFields[0].Descriptor()
	// reviewitem.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	reviewitem.UserIDValidator = reviewitemDescUserID.Validators[0].(func(string) error)
	// reviewitemDescQuestionID is the schema descriptor for question_id field.
	reviewitemDescQuestionID := reviewitemFields[1].Descriptor()
	// reviewitem.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	reviewitem.QuestionIDValidator = reviewitemDescQuestionID.Validators[0].(func(string) error)
	// reviewitemDescIntervalDays is the schema descriptor for interval_days field.
	reviewitemDescIntervalDays := reviewitemFields[4].Descriptor()
	// reviewitem.DefaultIntervalDays holds the default value on creation for the interval_days field.
	reviewitem.DefaultIntervalDays = reviewitemDescIntervalDays.Default.(int)
	// reviewitemDescEase is the schema descriptor for ease field.
	reviewitemDescEase := reviewitemFields[5].Descriptor()
	// reviewitem.DefaultEase holds the default value on creation for the ease field.
	reviewitem.DefaultEase = reviewitemDescEase.Default.(float64)
	// reviewitemDescReps is the schema descriptor for reps field.
	reviewitemDescReps := reviewitemFields[6].Descriptor()
	// reviewitem.DefaultReps holds the default value on creation for the reps field.
	reviewitem.DefaultReps = reviewitemDescReps.Default.(int)
	// reviewitemDescLapses is the schema descriptor for lapses field.
	reviewitemDescLapses := reviewitemFields[7].Descriptor()
	// reviewitem.DefaultLapses holds the default value on creation for the lapses field.
	reviewitem.DefaultLapses = reviewitemDescLapses.Default.(int)
	// reviewitemDescTotalReviews is the schema descriptor for total_reviews field.
	reviewitemDescTotalReviews := reviewitemFields[8].Descriptor()
	// reviewitem.DefaultTotalReviews holds the default value on creation for the total_reviews field.
	reviewitem.DefaultTotalReviews = reviewitemDescTotalReviews.Default.(int)
	// reviewitemDescCorrectReviews is the schema descriptor for correct_reviews field.
	reviewitemDescCorrectReviews := reviewitemFields[9].Descriptor()
	// reviewitem.DefaultCorrectReviews holds the default value on creation for the correct_reviews field.
	reviewitem.DefaultCorrectReviews = reviewitemDescCorrectReviews.Default.(int)
	// reviewitemDescUpdatedAt is the schema descriptor for updated_at field.
	reviewitemDescUpdatedAt := reviewitemFields[10].Descriptor()
	// reviewitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	reviewitem.DefaultUpdatedAt = reviewitemDescUpdatedAt.Default.(func() time.Time)
	// reviewitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	reviewitem.UpdateDefaultUpdatedAt = reviewitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescUserID is the schema descriptor for user_id field.
	sessioneventDescUserID := sessioneventFields[1].Descriptor()
	// sessionevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	sessionevent.UserIDValidator = sessioneventDescUserID.Validators[0].(func(string) error)
	// sessioneventDescKind is the schema descriptor for kind field.
	sessioneventDescKind := sessioneventFields[2].Descriptor()
	// sessionevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	sessionevent.KindValidator = sessioneventDescKind.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[3].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescQuestions is the schema descriptor for questions field.
	sessioneventDescQuestions := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultQuestions holds the default value on creation for the questions field.
	sessionevent.DefaultQuestions = sessioneventDescQuestions.Default.(int)
	// sessioneventDescCorrect is the schema descriptor for correct field.
	sessioneventDescCorrect := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultCorrect holds the default value on creation for the correct field.
	sessionevent.DefaultCorrect = sessioneventDescCorrect.Default.(int)
	// sessioneventDescScorePercent is the schema descriptor for score_percent field.
	sessioneventDescScorePercent := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultScorePercent holds the default value on creation for the score_percent field.
	sessionevent.DefaultScorePercent = sessioneventDescScorePercent.Default.(float64)
	// sessioneventDescPassed is the schema descriptor for passed field.
	sessioneventDescPassed := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultPassed holds the default value on creation for the passed field.
	sessionevent.DefaultPassed = sessioneventDescPassed.Default.(bool)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[9].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
}
