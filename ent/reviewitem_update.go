// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/opsprep/tcoprep/ent/predicate"
	"github.com/opsprep/tcoprep/ent/reviewitem"
)

// ReviewItemUpdate is the builder for updating ReviewItem entities.
type ReviewItemUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewItemMutation
}

// Where appends a list predicates to the ReviewItemUpdate builder.
func (_u *ReviewItemUpdate) Where(ps ...predicate.ReviewItem) *ReviewItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ReviewItemUpdate) SetUserID(v string) *ReviewItemUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableUserID(v *string) *ReviewItemUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *ReviewItemUpdate) SetQuestionID(v string) *ReviewItemUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableQuestionID(v *string) *ReviewItemUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetConcept sets the "concept" field.
func (_u *ReviewItemUpdate) SetConcept(v string) *ReviewItemUpdate {
	_u.mutation.SetConcept(v)
	return _u
}

// SetNillableConcept sets the "concept" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableConcept(v *string) *ReviewItemUpdate {
	if v != nil {
		_u.SetConcept(*v)
	}
	return _u
}

// ClearConcept clears the value of the "concept" field.
func (_u *ReviewItemUpdate) ClearConcept() *ReviewItemUpdate {
	_u.mutation.ClearConcept()
	return _u
}

// SetDue sets the "due" field.
func (_u *ReviewItemUpdate) SetDue(v time.Time) *ReviewItemUpdate {
	_u.mutation.SetDue(v)
	return _u
}

// SetNillableDue sets the "due" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableDue(v *time.Time) *ReviewItemUpdate {
	if v != nil {
		_u.SetDue(*v)
	}
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewItemUpdate) SetIntervalDays(v int) *ReviewItemUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableIntervalDays(v *int) *ReviewItemUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewItemUpdate) AddIntervalDays(v int) *ReviewItemUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetEase sets the "ease" field.
func (_u *ReviewItemUpdate) SetEase(v float64) *ReviewItemUpdate {
	_u.mutation.ResetEase()
	_u.mutation.SetEase(v)
	return _u
}

// SetNillableEase sets the "ease" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableEase(v *float64) *ReviewItemUpdate {
	if v != nil {
		_u.SetEase(*v)
	}
	return _u
}

// AddEase adds value to the "ease" field.
func (_u *ReviewItemUpdate) AddEase(v float64) *ReviewItemUpdate {
	_u.mutation.AddEase(v)
	return _u
}

// SetReps sets the "reps" field.
func (_u *ReviewItemUpdate) SetReps(v int) *ReviewItemUpdate {
	_u.mutation.ResetReps()
	_u.mutation.SetReps(v)
	return _u
}

// SetNillableReps sets the "reps" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableReps(v *int) *ReviewItemUpdate {
	if v != nil {
		_u.SetReps(*v)
	}
	return _u
}

// AddReps adds value to the "reps" field.
func (_u *ReviewItemUpdate) AddReps(v int) *ReviewItemUpdate {
	_u.mutation.AddReps(v)
	return _u
}

// SetLapses sets the "lapses" field.
func (_u *ReviewItemUpdate) SetLapses(v int) *ReviewItemUpdate {
	_u.mutation.ResetLapses()
	_u.mutation.SetLapses(v)
	return _u
}

// SetNillableLapses sets the "lapses" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableLapses(v *int) *ReviewItemUpdate {
	if v != nil {
		_u.SetLapses(*v)
	}
	return _u
}

// AddLapses adds value to the "lapses" field.
func (_u *ReviewItemUpdate) AddLapses(v int) *ReviewItemUpdate {
	_u.mutation.AddLapses(v)
	return _u
}

// SetTotalReviews sets the "total_reviews" field.
func (_u *ReviewItemUpdate) SetTotalReviews(v int) *ReviewItemUpdate {
	_u.mutation.ResetTotalReviews()
	_u.mutation.SetTotalReviews(v)
	return _u
}

// SetNillableTotalReviews sets the "total_reviews" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableTotalReviews(v *int) *ReviewItemUpdate {
	if v != nil {
		_u.SetTotalReviews(*v)
	}
	return _u
}

// AddTotalReviews adds value to the "total_reviews" field.
func (_u *ReviewItemUpdate) AddTotalReviews(v int) *ReviewItemUpdate {
	_u.mutation.AddTotalReviews(v)
	return _u
}

// SetCorrectReviews sets the "correct_reviews" field.
func (_u *ReviewItemUpdate) SetCorrectReviews(v int) *ReviewItemUpdate {
	_u.mutation.ResetCorrectReviews()
	_u.mutation.SetCorrectReviews(v)
	return _u
}

// SetNillableCorrectReviews sets the "correct_reviews" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableCorrectReviews(v *int) *ReviewItemUpdate {
	if v != nil {
		_u.SetCorrectReviews(*v)
	}
	return _u
}

// AddCorrectReviews adds value to the "correct_reviews" field.
func (_u *ReviewItemUpdate) AddCorrectReviews(v int) *ReviewItemUpdate {
	_u.mutation.AddCorrectReviews(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReviewItemUpdate) SetUpdatedAt(v time.Time) *ReviewItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ReviewItemMutation object of the builder.
func (_u *ReviewItemUpdate) Mutation() *ReviewItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReviewItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reviewitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewItemUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := reviewitem.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := reviewitem.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.question_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewitem.Table, reviewitem.Columns, sqlgraph.NewFieldSpec(reviewitem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(reviewitem.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(reviewitem.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Concept(); ok {
		_spec.SetField(reviewitem.FieldConcept, field.TypeString, value)
	}
	if _u.mutation.ConceptCleared() {
		_spec.ClearField(reviewitem.FieldConcept, field.TypeString)
	}
	if value, ok := _u.mutation.Due(); ok {
		_spec.SetField(reviewitem.FieldDue, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewitem.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewitem.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Ease(); ok {
		_spec.SetField(reviewitem.FieldEase, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEase(); ok {
		_spec.AddField(reviewitem.FieldEase, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Reps(); ok {
		_spec.SetField(reviewitem.FieldReps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReps(); ok {
		_spec.AddField(reviewitem.FieldReps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Lapses(); ok {
		_spec.SetField(reviewitem.FieldLapses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLapses(); ok {
		_spec.AddField(reviewitem.FieldLapses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalReviews(); ok {
		_spec.SetField(reviewitem.FieldTotalReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalReviews(); ok {
		_spec.AddField(reviewitem.FieldTotalReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectReviews(); ok {
		_spec.SetField(reviewitem.FieldCorrectReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectReviews(); ok {
		_spec.AddField(reviewitem.FieldCorrectReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reviewitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewItemUpdateOne is the builder for updating a single ReviewItem entity.
type ReviewItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewItemMutation
}

// SetUserID sets the "user_id" field.
func (_u *ReviewItemUpdateOne) SetUserID(v string) *ReviewItemUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableUserID(v *string) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *ReviewItemUpdateOne) SetQuestionID(v string) *ReviewItemUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableQuestionID(v *string) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetConcept sets the "concept" field.
func (_u *ReviewItemUpdateOne) SetConcept(v string) *ReviewItemUpdateOne {
	_u.mutation.SetConcept(v)
	return _u
}

// SetNillableConcept sets the "concept" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableConcept(v *string) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetConcept(*v)
	}
	return _u
}

// ClearConcept clears the value of the "concept" field.
func (_u *ReviewItemUpdateOne) ClearConcept() *ReviewItemUpdateOne {
	_u.mutation.ClearConcept()
	return _u
}

// SetDue sets the "due" field.
func (_u *ReviewItemUpdateOne) SetDue(v time.Time) *ReviewItemUpdateOne {
	_u.mutation.SetDue(v)
	return _u
}

// SetNillableDue sets the "due" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableDue(v *time.Time) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetDue(*v)
	}
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewItemUpdateOne) SetIntervalDays(v int) *ReviewItemUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableIntervalDays(v *int) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewItemUpdateOne) AddIntervalDays(v int) *ReviewItemUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetEase sets the "ease" field.
func (_u *ReviewItemUpdateOne) SetEase(v float64) *ReviewItemUpdateOne {
	_u.mutation.ResetEase()
	_u.mutation.SetEase(v)
	return _u
}

// SetNillableEase sets the "ease" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableEase(v *float64) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetEase(*v)
	}
	return _u
}

// AddEase adds value to the "ease" field.
func (_u *ReviewItemUpdateOne) AddEase(v float64) *ReviewItemUpdateOne {
	_u.mutation.AddEase(v)
	return _u
}

// SetReps sets the "reps" field.
func (_u *ReviewItemUpdateOne) SetReps(v int) *ReviewItemUpdateOne {
	_u.mutation.ResetReps()
	_u.mutation.SetReps(v)
	return _u
}

// SetNillableReps sets the "reps" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableReps(v *int) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetReps(*v)
	}
	return _u
}

// AddReps adds value to the "reps" field.
func (_u *ReviewItemUpdateOne) AddReps(v int) *ReviewItemUpdateOne {
	_u.mutation.AddReps(v)
	return _u
}

// SetLapses sets the "lapses" field.
func (_u *ReviewItemUpdateOne) SetLapses(v int) *ReviewItemUpdateOne {
	_u.mutation.ResetLapses()
	_u.mutation.SetLapses(v)
	return _u
}

// SetNillableLapses sets the "lapses" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableLapses(v *int) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetLapses(*v)
	}
	return _u
}

// AddLapses adds value to the "lapses" field.
func (_u *ReviewItemUpdateOne) AddLapses(v int) *ReviewItemUpdateOne {
	_u.mutation.AddLapses(v)
	return _u
}

// SetTotalReviews sets the "total_reviews" field.
func (_u *ReviewItemUpdateOne) SetTotalReviews(v int) *ReviewItemUpdateOne {
	_u.mutation.ResetTotalReviews()
	_u.mutation.SetTotalReviews(v)
	return _u
}

// SetNillableTotalReviews sets the "total_reviews" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableTotalReviews(v *int) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetTotalReviews(*v)
	}
	return _u
}

// AddTotalReviews adds value to the "total_reviews" field.
func (_u *ReviewItemUpdateOne) AddTotalReviews(v int) *ReviewItemUpdateOne {
	_u.mutation.AddTotalReviews(v)
	return _u
}

// SetCorrectReviews sets the "correct_reviews" field.
func (_u *ReviewItemUpdateOne) SetCorrectReviews(v int) *ReviewItemUpdateOne {
	_u.mutation.ResetCorrectReviews()
	_u.mutation.SetCorrectReviews(v)
	return _u
}

// SetNillableCorrectReviews sets the "correct_reviews" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableCorrectReviews(v *int) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetCorrectReviews(*v)
	}
	return _u
}

// AddCorrectReviews adds value to the "correct_reviews" field.
func (_u *ReviewItemUpdateOne) AddCorrectReviews(v int) *ReviewItemUpdateOne {
	_u.mutation.AddCorrectReviews(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReviewItemUpdateOne) SetUpdatedAt(v time.Time) *ReviewItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ReviewItemMutation object of the builder.
func (_u *ReviewItemUpdateOne) Mutation() *ReviewItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewItemUpdate builder.
func (_u *ReviewItemUpdateOne) Where(ps ...predicate.ReviewItem) *ReviewItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewItemUpdateOne) Select(field string, fields ...string) *ReviewItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewItem entity.
func (_u *ReviewItemUpdateOne) Save(ctx context.Context) (*ReviewItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewItemUpdateOne) SaveX(ctx context.Context) *ReviewItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReviewItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reviewitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewItemUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := reviewitem.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := reviewitem.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.question_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewItemUpdateOne) sqlSave(ctx context.Context) (_node *ReviewItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewitem.Table, reviewitem.Columns, sqlgraph.NewFieldSpec(reviewitem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewitem.FieldID)
		for _, f := range fields {
			if !reviewitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewitem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(reviewitem.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(reviewitem.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Concept(); ok {
		_spec.SetField(reviewitem.FieldConcept, field.TypeString, value)
	}
	if _u.mutation.ConceptCleared() {
		_spec.ClearField(reviewitem.FieldConcept, field.TypeString)
	}
	if value, ok := _u.mutation.Due(); ok {
		_spec.SetField(reviewitem.FieldDue, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewitem.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewitem.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Ease(); ok {
		_spec.SetField(reviewitem.FieldEase, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEase(); ok {
		_spec.AddField(reviewitem.FieldEase, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Reps(); ok {
		_spec.SetField(reviewitem.FieldReps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReps(); ok {
		_spec.AddField(reviewitem.FieldReps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Lapses(); ok {
		_spec.SetField(reviewitem.FieldLapses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLapses(); ok {
		_spec.AddField(reviewitem.FieldLapses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalReviews(); ok {
		_spec.SetField(reviewitem.FieldTotalReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalReviews(); ok {
		_spec.AddField(reviewitem.FieldTotalReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectReviews(); ok {
		_spec.SetField(reviewitem.FieldCorrectReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectReviews(); ok {
		_spec.AddField(reviewitem.FieldCorrectReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reviewitem.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ReviewItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
