// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/opsprep/tcoprep/ent/reviewitem"
)

// ReviewItemCreate is the builder for creating a ReviewItem entity.
type ReviewItemCreate struct {
	config
	mutation *ReviewItemMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ReviewItemCreate) SetUserID(v string) *ReviewItemCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *ReviewItemCreate) SetQuestionID(v string) *ReviewItemCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetConcept sets the "concept" field.
func (_c *ReviewItemCreate) SetConcept(v string) *ReviewItemCreate {
	_c.mutation.SetConcept(v)
	return _c
}

// SetNillableConcept sets the "concept" field if the given value is not nil.
func (_c *ReviewItemCreate) SetNillableConcept(v *string) *ReviewItemCreate {
	if v != nil {
		_c.SetConcept(*v)
	}
	return _c
}

// SetDue sets the "due" field.
func (_c *ReviewItemCreate) SetDue(v time.Time) *ReviewItemCreate {
	_c.mutation.SetDue(v)
	return _c
}

// SetIntervalDays sets the "interval_days" field.
func (_c *ReviewItemCreate) SetIntervalDays(v int) *ReviewItemCreate {
	_c.mutation.SetIntervalDays(v)
	return _c
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_c *ReviewItemCreate) SetNillableIntervalDays(v *int) *ReviewItemCreate {
	if v != nil {
		_c.SetIntervalDays(*v)
	}
	return _c
}

// SetEase sets the "ease" field.
func (_c *ReviewItemCreate) SetEase(v float64) *ReviewItemCreate {
	_c.mutation.SetEase(v)
	return _c
}

// SetNillableEase sets the "ease" field if the given value is not nil.
func (_c *ReviewItemCreate) SetNillableEase(v *float64) *ReviewItemCreate {
	if v != nil {
		_c.SetEase(*v)
	}
	return _c
}

// SetReps sets the "reps" field.
func (_c *ReviewItemCreate) SetReps(v int) *ReviewItemCreate {
	_c.mutation.SetReps(v)
	return _c
}

// SetNillableReps sets the "reps" field if the given value is not nil.
func (_c *ReviewItemCreate) SetNillableReps(v *int) *ReviewItemCreate {
	if v != nil {
		_c.SetReps(*v)
	}
	return _c
}

// SetLapses sets the "lapses" field.
func (_c *ReviewItemCreate) SetLapses(v int) *ReviewItemCreate {
	_c.mutation.SetLapses(v)
	return _c
}

// SetNillableLapses sets the "lapses" field if the given value is not nil.
func (_c *ReviewItemCreate) SetNillableLapses(v *int) *ReviewItemCreate {
	if v != nil {
		_c.SetLapses(*v)
	}
	return _c
}

// SetTotalReviews sets the "total_reviews" field.
func (_c *ReviewItemCreate) SetTotalReviews(v int) *ReviewItemCreate {
	_c.mutation.SetTotalReviews(v)
	return _c
}

// SetNillableTotalReviews sets the "total_reviews" field if the given value is not nil.
func (_c *ReviewItemCreate) SetNillableTotalReviews(v *int) *ReviewItemCreate {
	if v != nil {
		_c.SetTotalReviews(*v)
	}
	return _c
}

// SetCorrectReviews sets the "correct_reviews" field.
func (_c *ReviewItemCreate) SetCorrectReviews(v int) *ReviewItemCreate {
	_c.mutation.SetCorrectReviews(v)
	return _c
}

// SetNillableCorrectReviews sets the "correct_reviews" field if the given value is not nil.
func (_c *ReviewItemCreate) SetNillableCorrectReviews(v *int) *ReviewItemCreate {
	if v != nil {
		_c.SetCorrectReviews(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ReviewItemCreate) SetUpdatedAt(v time.Time) *ReviewItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ReviewItemCreate) SetNillableUpdatedAt(v *time.Time) *ReviewItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ReviewItemMutation object of the builder.
func (_c *ReviewItemCreate) Mutation() *ReviewItemMutation {
	return _c.mutation
}

// Save creates the ReviewItem in the database.
func (_c *ReviewItemCreate) Save(ctx context.Context) (*ReviewItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReviewItemCreate) SaveX(ctx context.Context) *ReviewItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReviewItemCreate) defaults() {
	if _, ok := _c.mutation.IntervalDays(); !ok {
		v := reviewitem.DefaultIntervalDays
		_c.mutation.SetIntervalDays(v)
	}
	if _, ok := _c.mutation.Ease(); !ok {
		v := reviewitem.DefaultEase
		_c.mutation.SetEase(v)
	}
	if _, ok := _c.mutation.Reps(); !ok {
		v := reviewitem.DefaultReps
		_c.mutation.SetReps(v)
	}
	if _, ok := _c.mutation.Lapses(); !ok {
		v := reviewitem.DefaultLapses
		_c.mutation.SetLapses(v)
	}
	if _, ok := _c.mutation.TotalReviews(); !ok {
		v := reviewitem.DefaultTotalReviews
		_c.mutation.SetTotalReviews(v)
	}
	if _, ok := _c.mutation.CorrectReviews(); !ok {
		v := reviewitem.DefaultCorrectReviews
		_c.mutation.SetCorrectReviews(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := reviewitem.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReviewItemCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ReviewItem.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := reviewitem.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "ReviewItem.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := reviewitem.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Due(); !ok {
		return &ValidationError{Name: "due", err: errors.New(`ent: missing required field "ReviewItem.due"`)}
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "ReviewItem.interval_days"`)}
	}
	if _, ok := _c.mutation.Ease(); !ok {
		return &ValidationError{Name: "ease", err: errors.New(`ent: missing required field "ReviewItem.ease"`)}
	}
	if _, ok := _c.mutation.Reps(); !ok {
		return &ValidationError{Name: "reps", err: errors.New(`ent: missing required field "ReviewItem.reps"`)}
	}
	if _, ok := _c.mutation.Lapses(); !ok {
		return &ValidationError{Name: "lapses", err: errors.New(`ent: missing required field "ReviewItem.lapses"`)}
	}
	if _, ok := _c.mutation.TotalReviews(); !ok {
		return &ValidationError{Name: "total_reviews", err: errors.New(`ent: missing required field "ReviewItem.total_reviews"`)}
	}
	if _, ok := _c.mutation.CorrectReviews(); !ok {
		return &ValidationError{Name: "correct_reviews", err: errors.New(`ent: missing required field "ReviewItem.correct_reviews"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ReviewItem.updated_at"`)}
	}
	return nil
}

func (_c *ReviewItemCreate) sqlSave(ctx context.Context) (*ReviewItem, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReviewItemCreate) createSpec() (*ReviewItem, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reviewitem.Table, sqlgraph.NewFieldSpec(reviewitem.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(reviewitem.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(reviewitem.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Concept(); ok {
		_spec.SetField(reviewitem.FieldConcept, field.TypeString, value)
		_node.Concept = value
	}
	if value, ok := _c.mutation.Due(); ok {
		_spec.SetField(reviewitem.FieldDue, field.TypeTime, value)
		_node.Due = value
	}
	if value, ok := _c.mutation.IntervalDays(); ok {
		_spec.SetField(reviewitem.FieldIntervalDays, field.TypeInt, value)
		_node.IntervalDays = value
	}
	if value, ok := _c.mutation.Ease(); ok {
		_spec.SetField(reviewitem.FieldEase, field.TypeFloat64, value)
		_node.Ease = value
	}
	if value, ok := _c.mutation.Reps(); ok {
		_spec.SetField(reviewitem.FieldReps, field.TypeInt, value)
		_node.Reps = value
	}
	if value, ok := _c.mutation.Lapses(); ok {
		_spec.SetField(reviewitem.FieldLapses, field.TypeInt, value)
		_node.Lapses = value
	}
	if value, ok := _c.mutation.TotalReviews(); ok {
		_spec.SetField(reviewitem.FieldTotalReviews, field.TypeInt, value)
		_node.TotalReviews = value
	}
	if value, ok := _c.mutation.CorrectReviews(); ok {
		_spec.SetField(reviewitem.FieldCorrectReviews, field.TypeInt, value)
		_node.CorrectReviews = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(reviewitem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ReviewItemCreateBulk is the builder for creating many ReviewItem entities in bulk.
type ReviewItemCreateBulk struct {
	config
	err      error
	builders []*ReviewItemCreate
}

// Save creates the ReviewItem entities in the database.
func (_c *ReviewItemCreateBulk) Save(ctx context.Context) ([]*ReviewItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReviewItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewItemMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ReviewItemCreateBulk) SaveX(ctx context.Context) []*ReviewItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
