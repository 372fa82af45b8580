// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/grammiz/ent/gradeevent"
)

// GradeEventCreate is the builder for creating a GradeEvent entity.
type GradeEventCreate struct {
	config
	mutation *GradeEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *GradeEventCreate) SetSequence(v int64) *GradeEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *GradeEventCreate) SetTimestamp(v time.Time) *GradeEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *GradeEventCreate) SetNillableTimestamp(v *time.Time) *GradeEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *GradeEventCreate) SetSessionID(v string) *GradeEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *GradeEventCreate) SetStage(v string) *GradeEventCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *GradeEventCreate) SetDifficulty(v string) *GradeEventCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetSentence sets the "sentence" field.
func (_c *GradeEventCreate) SetSentence(v string) *GradeEventCreate {
	_c.mutation.SetSentence(v)
	return _c
}

// SetWork sets the "work" field.
func (_c *GradeEventCreate) SetWork(v string) *GradeEventCreate {
	_c.mutation.SetWork(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *GradeEventCreate) SetCorrect(v bool) *GradeEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetFeedback sets the "feedback" field.
func (_c *GradeEventCreate) SetFeedback(v string) *GradeEventCreate {
	_c.mutation.SetFeedback(v)
	return _c
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_c *GradeEventCreate) SetNillableFeedback(v *string) *GradeEventCreate {
	if v != nil {
		_c.SetFeedback(*v)
	}
	return _c
}

// SetCorrectData sets the "correct_data" field.
func (_c *GradeEventCreate) SetCorrectData(v string) *GradeEventCreate {
	_c.mutation.SetCorrectData(v)
	return _c
}

// SetNillableCorrectData sets the "correct_data" field if the given value is not nil.
func (_c *GradeEventCreate) SetNillableCorrectData(v *string) *GradeEventCreate {
	if v != nil {
		_c.SetCorrectData(*v)
	}
	return _c
}

// SetTimeMs sets the "time_ms" field.
func (_c *GradeEventCreate) SetTimeMs(v int) *GradeEventCreate {
	_c.mutation.SetTimeMs(v)
	return _c
}

// Mutation returns the GradeEventMutation object of the builder.
func (_c *GradeEventCreate) Mutation() *GradeEventMutation {
	return _c.mutation
}

// Save creates the GradeEvent in the database.
func (_c *GradeEventCreate) Save(ctx context.Context) (*GradeEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GradeEventCreate) SaveX(ctx context.Context) *GradeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GradeEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GradeEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GradeEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := gradeevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Feedback(); !ok {
		v := gradeevent.DefaultFeedback
		_c.mutation.SetFeedback(v)
	}
	if _, ok := _c.mutation.CorrectData(); !ok {
		v := gradeevent.DefaultCorrectData
		_c.mutation.SetCorrectData(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GradeEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "GradeEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "GradeEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "GradeEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := gradeevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "GradeEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "GradeEvent.stage"`)}
	}
	if v, ok := _c.mutation.Stage(); ok {
		if err := gradeevent.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "GradeEvent.stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "GradeEvent.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := gradeevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "GradeEvent.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Sentence(); !ok {
		return &ValidationError{Name: "sentence", err: errors.New(`ent: missing required field "GradeEvent.sentence"`)}
	}
	if v, ok := _c.mutation.Sentence(); ok {
		if err := gradeevent.SentenceValidator(v); err != nil {
			return &ValidationError{Name: "sentence", err: fmt.Errorf(`ent: validator failed for field "GradeEvent.sentence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Work(); !ok {
		return &ValidationError{Name: "work", err: errors.New(`ent: missing required field "GradeEvent.work"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "GradeEvent.correct"`)}
	}
	if _, ok := _c.mutation.Feedback(); !ok {
		return &ValidationError{Name: "feedback", err: errors.New(`ent: missing required field "GradeEvent.feedback"`)}
	}
	if _, ok := _c.mutation.CorrectData(); !ok {
		return &ValidationError{Name: "correct_data", err: errors.New(`ent: missing required field "GradeEvent.correct_data"`)}
	}
	if _, ok := _c.mutation.TimeMs(); !ok {
		return &ValidationError{Name: "time_ms", err: errors.New(`ent: missing required field "GradeEvent.time_ms"`)}
	}
	return nil
}

func (_c *GradeEventCreate) sqlSave(ctx context.Context) (*GradeEvent, error) {
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

func (_c *GradeEventCreate) createSpec() (*GradeEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &GradeEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gradeevent.Table, sqlgraph.NewFieldSpec(gradeevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(gradeevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(gradeevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(gradeevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(gradeevent.FieldStage, field.TypeString, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(gradeevent.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Sentence(); ok {
		_spec.SetField(gradeevent.FieldSentence, field.TypeString, value)
		_node.Sentence = value
	}
	if value, ok := _c.mutation.Work(); ok {
		_spec.SetField(gradeevent.FieldWork, field.TypeString, value)
		_node.Work = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(gradeevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Feedback(); ok {
		_spec.SetField(gradeevent.FieldFeedback, field.TypeString, value)
		_node.Feedback = value
	}
	if value, ok := _c.mutation.CorrectData(); ok {
		_spec.SetField(gradeevent.FieldCorrectData, field.TypeString, value)
		_node.CorrectData = value
	}
	if value, ok := _c.mutation.TimeMs(); ok {
		_spec.SetField(gradeevent.FieldTimeMs, field.TypeInt, value)
		_node.TimeMs = value
	}
	return _node, _spec
}

// GradeEventCreateBulk is the builder for creating many GradeEvent entities in bulk.
type GradeEventCreateBulk struct {
	config
	err      error
	builders []*GradeEventCreate
}

// Save creates the GradeEvent entities in the database.
func (_c *GradeEventCreateBulk) Save(ctx context.Context) ([]*GradeEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GradeEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GradeEventMutation)
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
func (_c *GradeEventCreateBulk) SaveX(ctx context.Context) []*GradeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GradeEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GradeEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
