// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/opsprep/tcoprep/ent/moduleprogress"
)

// ModuleProgressCreate is the builder for creating a ModuleProgress entity.
type ModuleProgressCreate struct {
	config
	mutation *ModuleProgressMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ModuleProgressCreate) SetUserID(v string) *ModuleProgressCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetModuleID sets the "module_id" field.
func (_c *ModuleProgressCreate) SetModuleID(v string) *ModuleProgressCreate {
	_c.mutation.SetModuleID(v)
	return _c
}

// SetSectionID sets the "section_id" field.
func (_c *ModuleProgressCreate) SetSectionID(v string) *ModuleProgressCreate {
	_c.mutation.SetSectionID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ModuleProgressCreate) SetStatus(v string) *ModuleProgressCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ModuleProgressCreate) SetNillableStatus(v *string) *ModuleProgressCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTimeSpentMinutes sets the "time_spent_minutes" field.
func (_c *ModuleProgressCreate) SetTimeSpentMinutes(v int) *ModuleProgressCreate {
	_c.mutation.SetTimeSpentMinutes(v)
	return _c
}

// SetNillableTimeSpentMinutes sets the "time_spent_minutes" field if the given value is not nil.
func (_c *ModuleProgressCreate) SetNillableTimeSpentMinutes(v *int) *ModuleProgressCreate {
	if v != nil {
		_c.SetTimeSpentMinutes(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ModuleProgressCreate) SetUpdatedAt(v time.Time) *ModuleProgressCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ModuleProgressCreate) SetNillableUpdatedAt(v *time.Time) *ModuleProgressCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ModuleProgressMutation object of the builder.
func (_c *ModuleProgressCreate) Mutation() *ModuleProgressMutation {
	return _c.mutation
}

// Save creates the ModuleProgress in the database.
func (_c *ModuleProgressCreate) Save(ctx context.Context) (*ModuleProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ModuleProgressCreate) SaveX(ctx context.Context) *ModuleProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModuleProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModuleProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ModuleProgressCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := moduleprogress.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TimeSpentMinutes(); !ok {
		v := moduleprogress.DefaultTimeSpentMinutes
		_c.mutation.SetTimeSpentMinutes(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := moduleprogress.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ModuleProgressCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ModuleProgress.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := moduleprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ModuleProgress.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModuleID(); !ok {
		return &ValidationError{Name: "module_id", err: errors.New(`ent: missing required field "ModuleProgress.module_id"`)}
	}
	if v, ok := _c.mutation.ModuleID(); ok {
		if err := moduleprogress.ModuleIDValidator(v); err != nil {
			return &ValidationError{Name: "module_id", err: fmt.Errorf(`ent: validator failed for field "ModuleProgress.module_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SectionID(); !ok {
		return &ValidationError{Name: "section_id", err: errors.New(`ent: missing required field "ModuleProgress.section_id"`)}
	}
	if v, ok := _c.mutation.SectionID(); ok {
		if err := moduleprogress.SectionIDValidator(v); err != nil {
			return &ValidationError{Name: "section_id", err: fmt.Errorf(`ent: validator failed for field "ModuleProgress.section_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ModuleProgress.status"`)}
	}
	if _, ok := _c.mutation.TimeSpentMinutes(); !ok {
		return &ValidationError{Name: "time_spent_minutes", err: errors.New(`ent: missing required field "ModuleProgress.time_spent_minutes"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ModuleProgress.updated_at"`)}
	}
	return nil
}

func (_c *ModuleProgressCreate) sqlSave(ctx context.Context) (*ModuleProgress, error) {
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

func (_c *ModuleProgressCreate) createSpec() (*ModuleProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &ModuleProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(moduleprogress.Table, sqlgraph.NewFieldSpec(moduleprogress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(moduleprogress.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ModuleID(); ok {
		_spec.SetField(moduleprogress.FieldModuleID, field.TypeString, value)
		_node.ModuleID = value
	}
	if value, ok := _c.mutation.SectionID(); ok {
		_spec.SetField(moduleprogress.FieldSectionID, field.TypeString, value)
		_node.SectionID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(moduleprogress.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TimeSpentMinutes(); ok {
		_spec.SetField(moduleprogress.FieldTimeSpentMinutes, field.TypeInt, value)
		_node.TimeSpentMinutes = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(moduleprogress.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ModuleProgressCreateBulk is the builder for creating many ModuleProgress entities in bulk.
type ModuleProgressCreateBulk struct {
	config
	err      error
	builders []*ModuleProgressCreate
}

// Save creates the ModuleProgress entities in the database.
func (_c *ModuleProgressCreateBulk) Save(ctx context.Context) ([]*ModuleProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ModuleProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ModuleProgressMutation)
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
func (_c *ModuleProgressCreateBulk) SaveX(ctx context.Context) []*ModuleProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModuleProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModuleProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
