// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/grammiz/ent/gradeevent"
	"github.com/abhisek/grammiz/ent/predicate"
)

// GradeEventUpdate is the builder for updating GradeEvent entities.
type GradeEventUpdate struct {
	config
	hooks    []Hook
	mutation *GradeEventMutation
}

// Where appends a list predicates to the GradeEventUpdate builder.
func (_u *GradeEventUpdate) Where(ps ...predicate.GradeEvent) *GradeEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *GradeEventUpdate) SetSessionID(v string) *GradeEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *GradeEventUpdate) SetNillableSessionID(v *string) *GradeEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *GradeEventUpdate) SetStage(v string) *GradeEventUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *GradeEventUpdate) SetNillableStage(v *string) *GradeEventUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *GradeEventUpdate) SetDifficulty(v string) *GradeEventUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *GradeEventUpdate) SetNillableDifficulty(v *string) *GradeEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetSentence sets the "sentence" field.
func (_u *GradeEventUpdate) SetSentence(v string) *GradeEventUpdate {
	_u.mutation.SetSentence(v)
	return _u
}

// SetNillableSentence sets the "sentence" field if the given value is not nil.
func (_u *GradeEventUpdate) SetNillableSentence(v *string) *GradeEventUpdate {
	if v != nil {
		_u.SetSentence(*v)
	}
	return _u
}

// SetWork sets the "work" field.
func (_u *GradeEventUpdate) SetWork(v string) *GradeEventUpdate {
	_u.mutation.SetWork(v)
	return _u
}

// SetNillableWork sets the "work" field if the given value is not nil.
func (_u *GradeEventUpdate) SetNillableWork(v *string) *GradeEventUpdate {
	if v != nil {
		_u.SetWork(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *GradeEventUpdate) SetCorrect(v bool) *GradeEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *GradeEventUpdate) SetNillableCorrect(v *bool) *GradeEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *GradeEventUpdate) SetFeedback(v string) *GradeEventUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *GradeEventUpdate) SetNillableFeedback(v *string) *GradeEventUpdate {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// SetCorrectData sets the "correct_data" field.
func (_u *GradeEventUpdate) SetCorrectData(v string) *GradeEventUpdate {
	_u.mutation.SetCorrectData(v)
	return _u
}

// SetNillableCorrectData sets the "correct_data" field if the given value is not nil.
func (_u *GradeEventUpdate) SetNillableCorrectData(v *string) *GradeEventUpdate {
	if v != nil {
		_u.SetCorrectData(*v)
	}
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *GradeEventUpdate) SetTimeMs(v int) *GradeEventUpdate {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *GradeEventUpdate) SetNillableTimeMs(v *int) *GradeEventUpdate {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *GradeEventUpdate) AddTimeMs(v int) *GradeEventUpdate {
	_u.mutation.AddTimeMs(v)
	return _u
}

// Mutation returns the GradeEventMutation object of the builder.
func (_u *GradeEventUpdate) Mutation() *GradeEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GradeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GradeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GradeEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GradeEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GradeEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := gradeevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "GradeEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := gradeevent.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "GradeEvent.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := gradeevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "GradeEvent.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Sentence(); ok {
		if err := gradeevent.SentenceValidator(v); err != nil {
			return &ValidationError{Name: "sentence", err: fmt.Errorf(`ent: validator failed for field "GradeEvent.sentence": %w`, err)}
		}
	}
	return nil
}

func (_u *GradeEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gradeevent.Table, gradeevent.Columns, sqlgraph.NewFieldSpec(gradeevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(gradeevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(gradeevent.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(gradeevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sentence(); ok {
		_spec.SetField(gradeevent.FieldSentence, field.TypeString, value)
	}
	if value, ok := _u.mutation.Work(); ok {
		_spec.SetField(gradeevent.FieldWork, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(gradeevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(gradeevent.FieldFeedback, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectData(); ok {
		_spec.SetField(gradeevent.FieldCorrectData, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(gradeevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(gradeevent.FieldTimeMs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gradeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GradeEventUpdateOne is the builder for updating a single GradeEvent entity.
type GradeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GradeEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *GradeEventUpdateOne) SetSessionID(v string) *GradeEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *GradeEventUpdateOne) SetNillableSessionID(v *string) *GradeEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *GradeEventUpdateOne) SetStage(v string) *GradeEventUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *GradeEventUpdateOne) SetNillableStage(v *string) *GradeEventUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *GradeEventUpdateOne) SetDifficulty(v string) *GradeEventUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *GradeEventUpdateOne) SetNillableDifficulty(v *string) *GradeEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetSentence sets the "sentence" field.
func (_u *GradeEventUpdateOne) SetSentence(v string) *GradeEventUpdateOne {
	_u.mutation.SetSentence(v)
	return _u
}

// SetNillableSentence sets the "sentence" field if the given value is not nil.
func (_u *GradeEventUpdateOne) SetNillableSentence(v *string) *GradeEventUpdateOne {
	if v != nil {
		_u.SetSentence(*v)
	}
	return _u
}

// SetWork sets the "work" field.
func (_u *GradeEventUpdateOne) SetWork(v string) *GradeEventUpdateOne {
	_u.mutation.SetWork(v)
	return _u
}

// SetNillableWork sets the "work" field if the given value is not nil.
func (_u *GradeEventUpdateOne) SetNillableWork(v *string) *GradeEventUpdateOne {
	if v != nil {
		_u.SetWork(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *GradeEventUpdateOne) SetCorrect(v bool) *GradeEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *GradeEventUpdateOne) SetNillableCorrect(v *bool) *GradeEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *GradeEventUpdateOne) SetFeedback(v string) *GradeEventUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *GradeEventUpdateOne) SetNillableFeedback(v *string) *GradeEventUpdateOne {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// SetCorrectData sets the "correct_data" field.
func (_u *GradeEventUpdateOne) SetCorrectData(v string) *GradeEventUpdateOne {
	_u.mutation.SetCorrectData(v)
	return _u
}

// SetNillableCorrectData sets the "correct_data" field if the given value is not nil.
func (_u *GradeEventUpdateOne) SetNillableCorrectData(v *string) *GradeEventUpdateOne {
	if v != nil {
		_u.SetCorrectData(*v)
	}
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *GradeEventUpdateOne) SetTimeMs(v int) *GradeEventUpdateOne {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *GradeEventUpdateOne) SetNillableTimeMs(v *int) *GradeEventUpdateOne {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *GradeEventUpdateOne) AddTimeMs(v int) *GradeEventUpdateOne {
	_u.mutation.AddTimeMs(v)
	return _u
}

// Mutation returns the GradeEventMutation object of the builder.
func (_u *GradeEventUpdateOne) Mutation() *GradeEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the GradeEventUpdate builder.
func (_u *GradeEventUpdateOne) Where(ps ...predicate.GradeEvent) *GradeEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GradeEventUpdateOne) Select(field string, fields ...string) *GradeEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GradeEvent entity.
func (_u *GradeEventUpdateOne) Save(ctx context.Context) (*GradeEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GradeEventUpdateOne) SaveX(ctx context.Context) *GradeEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GradeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GradeEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GradeEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := gradeevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "GradeEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := gradeevent.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "GradeEvent.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := gradeevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "GradeEvent.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Sentence(); ok {
		if err := gradeevent.SentenceValidator(v); err != nil {
			return &ValidationError{Name: "sentence", err: fmt.Errorf(`ent: validator failed for field "GradeEvent.sentence": %w`, err)}
		}
	}
	return nil
}

func (_u *GradeEventUpdateOne) sqlSave(ctx context.Context) (_node *GradeEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gradeevent.Table, gradeevent.Columns, sqlgraph.NewFieldSpec(gradeevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GradeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gradeevent.FieldID)
		for _, f := range fields {
			if !gradeevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gradeevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(gradeevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(gradeevent.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(gradeevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sentence(); ok {
		_spec.SetField(gradeevent.FieldSentence, field.TypeString, value)
	}
	if value, ok := _u.mutation.Work(); ok {
		_spec.SetField(gradeevent.FieldWork, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(gradeevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(gradeevent.FieldFeedback, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectData(); ok {
		_spec.SetField(gradeevent.FieldCorrectData, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(gradeevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(gradeevent.FieldTimeMs, field.TypeInt, value)
	}
	_node = &GradeEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gradeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
