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
	"github.com/opsprep/tcoprep/ent/moduleprogress"
	"github.com/opsprep/tcoprep/ent/predicate"
)

// ModuleProgressUpdate is the builder for updating ModuleProgress entities.
type ModuleProgressUpdate struct {
	config
	hooks    []Hook
	mutation *ModuleProgressMutation
}

// Where appends a list predicates to the ModuleProgressUpdate builder.
func (_u *ModuleProgressUpdate) Where(ps ...predicate.ModuleProgress) *ModuleProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ModuleProgressUpdate) SetUserID(v string) *ModuleProgressUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ModuleProgressUpdate) SetNillableUserID(v *string) *ModuleProgressUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetModuleID sets the "module_id" field.
func (_u *ModuleProgressUpdate) SetModuleID(v string) *ModuleProgressUpdate {
	_u.mutation.SetModuleID(v)
	return _u
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (_u *ModuleProgressUpdate) SetNillableModuleID(v *string) *ModuleProgressUpdate {
	if v != nil {
		_u.SetModuleID(*v)
	}
	return _u
}

// SetSectionID sets the "section_id" field.
func (_u *ModuleProgressUpdate) SetSectionID(v string) *ModuleProgressUpdate {
	_u.mutation.SetSectionID(v)
	return _u
}

// SetNillableSectionID sets the "section_id" field if the given value is not nil.
func (_u *ModuleProgressUpdate) SetNillableSectionID(v *string) *ModuleProgressUpdate {
	if v != nil {
		_u.SetSectionID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ModuleProgressUpdate) SetStatus(v string) *ModuleProgressUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ModuleProgressUpdate) SetNillableStatus(v *string) *ModuleProgressUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTimeSpentMinutes sets the "time_spent_minutes" field.
func (_u *ModuleProgressUpdate) SetTimeSpentMinutes(v int) *ModuleProgressUpdate {
	_u.mutation.ResetTimeSpentMinutes()
	_u.mutation.SetTimeSpentMinutes(v)
	return _u
}

// SetNillableTimeSpentMinutes sets the "time_spent_minutes" field if the given value is not nil.
func (_u *ModuleProgressUpdate) SetNillableTimeSpentMinutes(v *int) *ModuleProgressUpdate {
	if v != nil {
		_u.SetTimeSpentMinutes(*v)
	}
	return _u
}

// AddTimeSpentMinutes adds value to the "time_spent_minutes" field.
func (_u *ModuleProgressUpdate) AddTimeSpentMinutes(v int) *ModuleProgressUpdate {
	_u.mutation.AddTimeSpentMinutes(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ModuleProgressUpdate) SetUpdatedAt(v time.Time) *ModuleProgressUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ModuleProgressMutation object of the builder.
func (_u *ModuleProgressUpdate) Mutation() *ModuleProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ModuleProgressUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModuleProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ModuleProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModuleProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ModuleProgressUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := moduleprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ModuleProgressUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := moduleprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ModuleProgress.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModuleID(); ok {
		if err := moduleprogress.ModuleIDValidator(v); err != nil {
			return &ValidationError{Name: "module_id", err: fmt.Errorf(`ent: validator failed for field "ModuleProgress.module_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SectionID(); ok {
		if err := moduleprogress.SectionIDValidator(v); err != nil {
			return &ValidationError{Name: "section_id", err: fmt.Errorf(`ent: validator failed for field "ModuleProgress.section_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ModuleProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(moduleprogress.Table, moduleprogress.Columns, sqlgraph.NewFieldSpec(moduleprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(moduleprogress.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleID(); ok {
		_spec.SetField(moduleprogress.FieldModuleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SectionID(); ok {
		_spec.SetField(moduleprogress.FieldSectionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(moduleprogress.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeSpentMinutes(); ok {
		_spec.SetField(moduleprogress.FieldTimeSpentMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentMinutes(); ok {
		_spec.AddField(moduleprogress.FieldTimeSpentMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(moduleprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{moduleprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ModuleProgressUpdateOne is the builder for updating a single ModuleProgress entity.
type ModuleProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ModuleProgressMutation
}

// SetUserID sets the "user_id" field.
func (_u *ModuleProgressUpdateOne) SetUserID(v string) *ModuleProgressUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ModuleProgressUpdateOne) SetNillableUserID(v *string) *ModuleProgressUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetModuleID sets the "module_id" field.
func (_u *ModuleProgressUpdateOne) SetModuleID(v string) *ModuleProgressUpdateOne {
	_u.mutation.SetModuleID(v)
	return _u
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (_u *ModuleProgressUpdateOne) SetNillableModuleID(v *string) *ModuleProgressUpdateOne {
	if v != nil {
		_u.SetModuleID(*v)
	}
	return _u
}

// SetSectionID sets the "section_id" field.
func (_u *ModuleProgressUpdateOne) SetSectionID(v string) *ModuleProgressUpdateOne {
	_u.mutation.SetSectionID(v)
	return _u
}

// SetNillableSectionID sets the "section_id" field if the given value is not nil.
func (_u *ModuleProgressUpdateOne) SetNillableSectionID(v *string) *ModuleProgressUpdateOne {
	if v != nil {
		_u.SetSectionID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ModuleProgressUpdateOne) SetStatus(v string) *ModuleProgressUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ModuleProgressUpdateOne) SetNillableStatus(v *string) *ModuleProgressUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTimeSpentMinutes sets the "time_spent_minutes" field.
func (_u *ModuleProgressUpdateOne) SetTimeSpentMinutes(v int) *ModuleProgressUpdateOne {
	_u.mutation.ResetTimeSpentMinutes()
	_u.mutation.SetTimeSpentMinutes(v)
	return _u
}

// SetNillableTimeSpentMinutes sets the "time_spent_minutes" field if the given value is not nil.
func (_u *ModuleProgressUpdateOne) SetNillableTimeSpentMinutes(v *int) *ModuleProgressUpdateOne {
	if v != nil {
		_u.SetTimeSpentMinutes(*v)
	}
	return _u
}

// AddTimeSpentMinutes adds value to the "time_spent_minutes" field.
func (_u *ModuleProgressUpdateOne) AddTimeSpentMinutes(v int) *ModuleProgressUpdateOne {
	_u.mutation.AddTimeSpentMinutes(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ModuleProgressUpdateOne) SetUpdatedAt(v time.Time) *ModuleProgressUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ModuleProgressMutation object of the builder.
func (_u *ModuleProgressUpdateOne) Mutation() *ModuleProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the ModuleProgressUpdate builder.
func (_u *ModuleProgressUpdateOne) Where(ps ...predicate.ModuleProgress) *ModuleProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ModuleProgressUpdateOne) Select(field string, fields ...string) *ModuleProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ModuleProgress entity.
func (_u *ModuleProgressUpdateOne) Save(ctx context.Context) (*ModuleProgress, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModuleProgressUpdateOne) SaveX(ctx context.Context) *ModuleProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ModuleProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModuleProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ModuleProgressUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := moduleprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ModuleProgressUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := moduleprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ModuleProgress.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModuleID(); ok {
		if err := moduleprogress.ModuleIDValidator(v); err != nil {
			return &ValidationError{Name: "module_id", err: fmt.Errorf(`ent: validator failed for field "ModuleProgress.module_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SectionID(); ok {
		if err := moduleprogress.SectionIDValidator(v); err != nil {
			return &ValidationError{Name: "section_id", err: fmt.Errorf(`ent: validator failed for field "ModuleProgress.section_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ModuleProgressUpdateOne) sqlSave(ctx context.Context) (_node *ModuleProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(moduleprogress.Table, moduleprogress.Columns, sqlgraph.NewFieldSpec(moduleprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ModuleProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, moduleprogress.FieldID)
		for _, f := range fields {
			if !moduleprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != moduleprogress.FieldID {
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
		_spec.SetField(moduleprogress.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleID(); ok {
		_spec.SetField(moduleprogress.FieldModuleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SectionID(); ok {
		_spec.SetField(moduleprogress.FieldSectionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(moduleprogress.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeSpentMinutes(); ok {
		_spec.SetField(moduleprogress.FieldTimeSpentMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentMinutes(); ok {
		_spec.AddField(moduleprogress.FieldTimeSpentMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(moduleprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ModuleProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{moduleprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
