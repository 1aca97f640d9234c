// Code generated by ent, DO NOT EDIT.

package reviewitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/opsprep/tcoprep/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldUserID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldQuestionID, v))
}

// Concept applies equality check predicate on the "concept" field. It's identical to ConceptEQ.
func Concept(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldConcept, v))
}

// Due applies equality check predicate on the "due" field. It's identical to DueEQ.
func Due(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldDue, v))
}

// IntervalDays applies equality check predicate on the "interval_days" field. It's identical to IntervalDaysEQ.
func IntervalDays(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldIntervalDays, v))
}

// Ease applies equality check predicate on the "ease" field. It's identical to EaseEQ.
func Ease(v float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldEase, v))
}

// Reps applies equality check predicate on the "reps" field. It's identical to RepsEQ.
func Reps(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldReps, v))
}

// Lapses applies equality check predicate on the "lapses" field. It's identical to LapsesEQ.
func Lapses(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldLapses, v))
}

// TotalReviews applies equality check predicate on the "total_reviews" field. It's identical to TotalReviewsEQ.
func TotalReviews(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldTotalReviews, v))
}

// CorrectReviews applies equality check predicate on the "correct_reviews" field. It's identical to CorrectReviewsEQ.
func CorrectReviews(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldCorrectReviews, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldContainsFold(FieldUserID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldContainsFold(FieldQuestionID, v))
}

// ConceptEQ applies the EQ predicate on the "concept" field.
func ConceptEQ(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldConcept, v))
}

// ConceptNEQ applies the NEQ predicate on the "concept" field.
func ConceptNEQ(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldConcept, v))
}

// ConceptIn applies the In predicate on the "concept" field.
func ConceptIn(vs ...string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldConcept, vs...))
}

// ConceptNotIn applies the NotIn predicate on the "concept" field.
func ConceptNotIn(vs ...string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldConcept, vs...))
}

// ConceptGT applies the GT predicate on the "concept" field.
func ConceptGT(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldConcept, v))
}

// ConceptGTE applies the GTE predicate on the "concept" field.
func ConceptGTE(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldConcept, v))
}

// ConceptLT applies the LT predicate on the "concept" field.
func ConceptLT(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldConcept, v))
}

// ConceptLTE applies the LTE predicate on the "concept" field.
func ConceptLTE(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldConcept, v))
}

// ConceptContains applies the Contains predicate on the "concept" field.
func ConceptContains(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldContains(FieldConcept, v))
}

// ConceptHasPrefix applies the HasPrefix predicate on the "concept" field.
func ConceptHasPrefix(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldHasPrefix(FieldConcept, v))
}

// ConceptHasSuffix applies the HasSuffix predicate on the "concept" field.
func ConceptHasSuffix(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldHasSuffix(FieldConcept, v))
}

// ConceptIsNil applies the IsNil predicate on the "concept" field.
func ConceptIsNil() predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIsNull(FieldConcept))
}

// ConceptNotNil applies the NotNil predicate on the "concept" field.
func ConceptNotNil() predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotNull(FieldConcept))
}

// ConceptEqualFold applies the EqualFold predicate on the "concept" field.
func ConceptEqualFold(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEqualFold(FieldConcept, v))
}

// ConceptContainsFold applies the ContainsFold predicate on the "concept" field.
func ConceptContainsFold(v string) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldContainsFold(FieldConcept, v))
}

// DueEQ applies the EQ predicate on the "due" field.
func DueEQ(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldDue, v))
}

// DueNEQ applies the NEQ predicate on the "due" field.
func DueNEQ(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldDue, v))
}

// DueIn applies the In predicate on the "due" field.
func DueIn(vs ...time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldDue, vs...))
}

// DueNotIn applies the NotIn predicate on the "due" field.
func DueNotIn(vs ...time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldDue, vs...))
}

// DueGT applies the GT predicate on the "due" field.
func DueGT(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldDue, v))
}

// DueGTE applies the GTE predicate on the "due" field.
func DueGTE(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldDue, v))
}

// DueLT applies the LT predicate on the "due" field.
func DueLT(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldDue, v))
}

// DueLTE applies the LTE predicate on the "due" field.
func DueLTE(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldDue, v))
}

// IntervalDaysEQ applies the EQ predicate on the "interval_days" field.
func IntervalDaysEQ(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldIntervalDays, v))
}

// IntervalDaysNEQ applies the NEQ predicate on the "interval_days" field.
func IntervalDaysNEQ(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldIntervalDays, v))
}

// IntervalDaysIn applies the In predicate on the "interval_days" field.
func IntervalDaysIn(vs ...int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldIntervalDays, vs...))
}

// IntervalDaysNotIn applies the NotIn predicate on the "interval_days" field.
func IntervalDaysNotIn(vs ...int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldIntervalDays, vs...))
}

// IntervalDaysGT applies the GT predicate on the "interval_days" field.
func IntervalDaysGT(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldIntervalDays, v))
}

// IntervalDaysGTE applies the GTE predicate on the "interval_days" field.
func IntervalDaysGTE(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldIntervalDays, v))
}

// IntervalDaysLT applies the LT predicate on the "interval_days" field.
func IntervalDaysLT(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldIntervalDays, v))
}

// IntervalDaysLTE applies the LTE predicate on the "interval_days" field.
func IntervalDaysLTE(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldIntervalDays, v))
}

// EaseEQ applies the EQ predicate on the "ease" field.
func EaseEQ(v float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldEase, v))
}

// EaseNEQ applies the NEQ predicate on the "ease" field.
func EaseNEQ(v float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldEase, v))
}

// EaseIn applies the In predicate on the "ease" field.
func EaseIn(vs ...float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldEase, vs...))
}

// EaseNotIn applies the NotIn predicate on the "ease" field.
func EaseNotIn(vs ...float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldEase, vs...))
}

// EaseGT applies the GT predicate on the "ease" field.
func EaseGT(v float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldEase, v))
}

// EaseGTE applies the GTE predicate on the "ease" field.
func EaseGTE(v float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldEase, v))
}

// EaseLT applies the LT predicate on the "ease" field.
func EaseLT(v float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldEase, v))
}

// EaseLTE applies the LTE predicate on the "ease" field.
func EaseLTE(v float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldEase, v))
}

// RepsEQ applies the EQ predicate on the "reps" field.
func RepsEQ(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldReps, v))
}

// RepsNEQ applies the NEQ predicate on the "reps" field.
func RepsNEQ(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldReps, v))
}

// RepsIn applies the In predicate on the "reps" field.
func RepsIn(vs ...int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldReps, vs...))
}

// RepsNotIn applies the NotIn predicate on the "reps" field.
func RepsNotIn(vs ...int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldReps, vs...))
}

// RepsGT applies the GT predicate on the "reps" field.
func RepsGT(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldReps, v))
}

// RepsGTE applies the GTE predicate on the "reps" field.
func RepsGTE(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldReps, v))
}

// RepsLT applies the LT predicate on the "reps" field.
func RepsLT(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldReps, v))
}

// RepsLTE applies the LTE predicate on the "reps" field.
func RepsLTE(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldReps, v))
}

// LapsesEQ applies the EQ predicate on the "lapses" field.
func LapsesEQ(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldLapses, v))
}

// LapsesNEQ applies the NEQ predicate on the "lapses" field.
func LapsesNEQ(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldLapses, v))
}

// LapsesIn applies the In predicate on the "lapses" field.
func LapsesIn(vs ...int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldLapses, vs...))
}

// LapsesNotIn applies the NotIn predicate on the "lapses" field.
func LapsesNotIn(vs ...int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldLapses, vs...))
}

// LapsesGT applies the GT predicate on the "lapses" field.
func LapsesGT(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldLapses, v))
}

// LapsesGTE applies the GTE predicate on the "lapses" field.
func LapsesGTE(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldLapses, v))
}

// LapsesLT applies the LT predicate on the "lapses" field.
func LapsesLT(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldLapses, v))
}

// LapsesLTE applies the LTE predicate on the "lapses" field.
func LapsesLTE(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldLapses, v))
}

// TotalReviewsEQ applies the EQ predicate on the "total_reviews" field.
func TotalReviewsEQ(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldTotalReviews, v))
}

// TotalReviewsNEQ applies the NEQ predicate on the "total_reviews" field.
func TotalReviewsNEQ(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldTotalReviews, v))
}

// TotalReviewsIn applies the In predicate on the "total_reviews" field.
func TotalReviewsIn(vs ...int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldTotalReviews, vs...))
}

// TotalReviewsNotIn applies the NotIn predicate on the "total_reviews" field.
func TotalReviewsNotIn(vs ...int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldTotalReviews, vs...))
}

// TotalReviewsGT applies the GT predicate on the "total_reviews" field.
func TotalReviewsGT(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldTotalReviews, v))
}

// TotalReviewsGTE applies the GTE predicate on the "total_reviews" field.
func TotalReviewsGTE(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldTotalReviews, v))
}

// TotalReviewsLT applies the LT predicate on the "total_reviews" field.
func TotalReviewsLT(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldTotalReviews, v))
}

// TotalReviewsLTE applies the LTE predicate on the "total_reviews" field.
func TotalReviewsLTE(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldTotalReviews, v))
}

// CorrectReviewsEQ applies the EQ predicate on the "correct_reviews" field.
func CorrectReviewsEQ(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldCorrectReviews, v))
}

// CorrectReviewsNEQ applies the NEQ predicate on the "correct_reviews" field.
func CorrectReviewsNEQ(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldCorrectReviews, v))
}

// CorrectReviewsIn applies the In predicate on the "correct_reviews" field.
func CorrectReviewsIn(vs ...int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldCorrectReviews, vs...))
}

// CorrectReviewsNotIn applies the NotIn predicate on the "correct_reviews" field.
func CorrectReviewsNotIn(vs ...int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldCorrectReviews, vs...))
}

// CorrectReviewsGT applies the GT predicate on the "correct_reviews" field.
func CorrectReviewsGT(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldCorrectReviews, v))
}

// CorrectReviewsGTE applies the GTE predicate on the "correct_reviews" field.
func CorrectReviewsGTE(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldCorrectReviews, v))
}

// CorrectReviewsLT applies the LT predicate on the "correct_reviews" field.
func CorrectReviewsLT(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldCorrectReviews, v))
}

// CorrectReviewsLTE applies the LTE predicate on the "correct_reviews" field.
func CorrectReviewsLTE(v int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldCorrectReviews, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReviewItem) predicate.ReviewItem {
	return predicate.ReviewItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReviewItem) predicate.ReviewItem {
	return predicate.ReviewItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReviewItem) predicate.ReviewItem {
	return predicate.ReviewItem(sql.NotPredicates(p))
}
