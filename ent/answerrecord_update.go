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
	"github.com/abhisek/intervu/ent/answerrecord"
	"github.com/abhisek/intervu/ent/candidate"
	"github.com/abhisek/intervu/ent/predicate"
)

// AnswerRecordUpdate is the builder for updating AnswerRecord entities.
type AnswerRecordUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerRecordMutation
}

// Where appends a list predicates to the AnswerRecordUpdate builder.
func (_u *AnswerRecordUpdate) Where(ps ...predicate.AnswerRecord) *AnswerRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestionIndex sets the "question_index" field.
func (_u *AnswerRecordUpdate) SetQuestionIndex(v int) *AnswerRecordUpdate {
	_u.mutation.ResetQuestionIndex()
	_u.mutation.SetQuestionIndex(v)
	return _u
}

// SetNillableQuestionIndex sets the "question_index" field if the given value is not nil.
func (_u *AnswerRecordUpdate) SetNillableQuestionIndex(v *int) *AnswerRecordUpdate {
	if v != nil {
		_u.SetQuestionIndex(*v)
	}
	return _u
}

// AddQuestionIndex adds value to the "question_index" field.
func (_u *AnswerRecordUpdate) AddQuestionIndex(v int) *AnswerRecordUpdate {
	_u.mutation.AddQuestionIndex(v)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerRecordUpdate) SetQuestionID(v string) *AnswerRecordUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerRecordUpdate) SetNillableQuestionID(v *string) *AnswerRecordUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *AnswerRecordUpdate) SetQuestionText(v string) *AnswerRecordUpdate {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *AnswerRecordUpdate) SetNillableQuestionText(v *string) *AnswerRecordUpdate {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AnswerRecordUpdate) SetDifficulty(v string) *AnswerRecordUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AnswerRecordUpdate) SetNillableDifficulty(v *string) *AnswerRecordUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetAnswerText sets the "answer_text" field.
func (_u *AnswerRecordUpdate) SetAnswerText(v string) *AnswerRecordUpdate {
	_u.mutation.SetAnswerText(v)
	return _u
}

// SetNillableAnswerText sets the "answer_text" field if the given value is not nil.
func (_u *AnswerRecordUpdate) SetNillableAnswerText(v *string) *AnswerRecordUpdate {
	if v != nil {
		_u.SetAnswerText(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AnswerRecordUpdate) SetScore(v int) *AnswerRecordUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AnswerRecordUpdate) SetNillableScore(v *int) *AnswerRecordUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AnswerRecordUpdate) AddScore(v int) *AnswerRecordUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *AnswerRecordUpdate) SetFeedback(v string) *AnswerRecordUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *AnswerRecordUpdate) SetNillableFeedback(v *string) *AnswerRecordUpdate {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AnswerRecordUpdate) SetConfidence(v float64) *AnswerRecordUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AnswerRecordUpdate) SetNillableConfidence(v *float64) *AnswerRecordUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *AnswerRecordUpdate) AddConfidence(v float64) *AnswerRecordUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSubmittedAt sets the "submitted_at" field.
func (_u *AnswerRecordUpdate) SetSubmittedAt(v time.Time) *AnswerRecordUpdate {
	_u.mutation.SetSubmittedAt(v)
	return _u
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_u *AnswerRecordUpdate) SetNillableSubmittedAt(v *time.Time) *AnswerRecordUpdate {
	if v != nil {
		_u.SetSubmittedAt(*v)
	}
	return _u
}

// SetCandidateID sets the "candidate" edge to the Candidate entity by ID.
func (_u *AnswerRecordUpdate) SetCandidateID(id int) *AnswerRecordUpdate {
	_u.mutation.SetCandidateID(id)
	return _u
}

// SetCandidate sets the "candidate" edge to the Candidate entity.
func (_u *AnswerRecordUpdate) SetCandidate(v *Candidate) *AnswerRecordUpdate {
	return _u.SetCandidateID(v.ID)
}

// Mutation returns the AnswerRecordMutation object of the builder.
func (_u *AnswerRecordUpdate) Mutation() *AnswerRecordMutation {
	return _u.mutation
}

// ClearCandidate clears the "candidate" edge to the Candidate entity.
func (_u *AnswerRecordUpdate) ClearCandidate() *AnswerRecordUpdate {
	_u.mutation.ClearCandidate()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerRecordUpdate) check() error {
	if _u.mutation.CandidateCleared() && len(_u.mutation.CandidateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnswerRecord.candidate"`)
	}
	return nil
}

func (_u *AnswerRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerrecord.Table, answerrecord.Columns, sqlgraph.NewFieldSpec(answerrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionIndex(); ok {
		_spec.SetField(answerrecord.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionIndex(); ok {
		_spec.AddField(answerrecord.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(answerrecord.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(answerrecord.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(answerrecord.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnswerText(); ok {
		_spec.SetField(answerrecord.FieldAnswerText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(answerrecord.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(answerrecord.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(answerrecord.FieldFeedback, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(answerrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(answerrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SubmittedAt(); ok {
		_spec.SetField(answerrecord.FieldSubmittedAt, field.TypeTime, value)
	}
	if _u.mutation.CandidateCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   answerrecord.CandidateTable,
			Columns: []string{answerrecord.CandidateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CandidateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   answerrecord.CandidateTable,
			Columns: []string{answerrecord.CandidateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerRecordUpdateOne is the builder for updating a single AnswerRecord entity.
type AnswerRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerRecordMutation
}

// SetQuestionIndex sets the "question_index" field.
func (_u *AnswerRecordUpdateOne) SetQuestionIndex(v int) *AnswerRecordUpdateOne {
	_u.mutation.ResetQuestionIndex()
	_u.mutation.SetQuestionIndex(v)
	return _u
}

// SetNillableQuestionIndex sets the "question_index" field if the given value is not nil.
func (_u *AnswerRecordUpdateOne) SetNillableQuestionIndex(v *int) *AnswerRecordUpdateOne {
	if v != nil {
		_u.SetQuestionIndex(*v)
	}
	return _u
}

// AddQuestionIndex adds value to the "question_index" field.
func (_u *AnswerRecordUpdateOne) AddQuestionIndex(v int) *AnswerRecordUpdateOne {
	_u.mutation.AddQuestionIndex(v)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerRecordUpdateOne) SetQuestionID(v string) *AnswerRecordUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerRecordUpdateOne) SetNillableQuestionID(v *string) *AnswerRecordUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *AnswerRecordUpdateOne) SetQuestionText(v string) *AnswerRecordUpdateOne {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *AnswerRecordUpdateOne) SetNillableQuestionText(v *string) *AnswerRecordUpdateOne {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AnswerRecordUpdateOne) SetDifficulty(v string) *AnswerRecordUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AnswerRecordUpdateOne) SetNillableDifficulty(v *string) *AnswerRecordUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetAnswerText sets the "answer_text" field.
func (_u *AnswerRecordUpdateOne) SetAnswerText(v string) *AnswerRecordUpdateOne {
	_u.mutation.SetAnswerText(v)
	return _u
}

// SetNillableAnswerText sets the "answer_text" field if the given value is not nil.
func (_u *AnswerRecordUpdateOne) SetNillableAnswerText(v *string) *AnswerRecordUpdateOne {
	if v != nil {
		_u.SetAnswerText(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AnswerRecordUpdateOne) SetScore(v int) *AnswerRecordUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AnswerRecordUpdateOne) SetNillableScore(v *int) *AnswerRecordUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AnswerRecordUpdateOne) AddScore(v int) *AnswerRecordUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *AnswerRecordUpdateOne) SetFeedback(v string) *AnswerRecordUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *AnswerRecordUpdateOne) SetNillableFeedback(v *string) *AnswerRecordUpdateOne {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AnswerRecordUpdateOne) SetConfidence(v float64) *AnswerRecordUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AnswerRecordUpdateOne) SetNillableConfidence(v *float64) *AnswerRecordUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *AnswerRecordUpdateOne) AddConfidence(v float64) *AnswerRecordUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSubmittedAt sets the "submitted_at" field.
func (_u *AnswerRecordUpdateOne) SetSubmittedAt(v time.Time) *AnswerRecordUpdateOne {
	_u.mutation.SetSubmittedAt(v)
	return _u
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_u *AnswerRecordUpdateOne) SetNillableSubmittedAt(v *time.Time) *AnswerRecordUpdateOne {
	if v != nil {
		_u.SetSubmittedAt(*v)
	}
	return _u
}

// SetCandidateID sets the "candidate" edge to the Candidate entity by ID.
func (_u *AnswerRecordUpdateOne) SetCandidateID(id int) *AnswerRecordUpdateOne {
	_u.mutation.SetCandidateID(id)
	return _u
}

// SetCandidate sets the "candidate" edge to the Candidate entity.
func (_u *AnswerRecordUpdateOne) SetCandidate(v *Candidate) *AnswerRecordUpdateOne {
	return _u.SetCandidateID(v.ID)
}

// Mutation returns the AnswerRecordMutation object of the builder.
func (_u *AnswerRecordUpdateOne) Mutation() *AnswerRecordMutation {
	return _u.mutation
}

// ClearCandidate clears the "candidate" edge to the Candidate entity.
func (_u *AnswerRecordUpdateOne) ClearCandidate() *AnswerRecordUpdateOne {
	_u.mutation.ClearCandidate()
	return _u
}

// Where appends a list predicates to the AnswerRecordUpdate builder.
func (_u *AnswerRecordUpdateOne) Where(ps ...predicate.AnswerRecord) *AnswerRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerRecordUpdateOne) Select(field string, fields ...string) *AnswerRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerRecord entity.
func (_u *AnswerRecordUpdateOne) Save(ctx context.Context) (*AnswerRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerRecordUpdateOne) SaveX(ctx context.Context) *AnswerRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerRecordUpdateOne) check() error {
	if _u.mutation.CandidateCleared() && len(_u.mutation.CandidateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnswerRecord.candidate"`)
	}
	return nil
}

func (_u *AnswerRecordUpdateOne) sqlSave(ctx context.Context) (_node *AnswerRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerrecord.Table, answerrecord.Columns, sqlgraph.NewFieldSpec(answerrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerrecord.FieldID)
		for _, f := range fields {
			if !answerrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerrecord.FieldID {
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
	if value, ok := _u.mutation.QuestionIndex(); ok {
		_spec.SetField(answerrecord.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionIndex(); ok {
		_spec.AddField(answerrecord.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(answerrecord.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(answerrecord.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(answerrecord.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnswerText(); ok {
		_spec.SetField(answerrecord.FieldAnswerText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(answerrecord.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(answerrecord.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(answerrecord.FieldFeedback, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(answerrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(answerrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SubmittedAt(); ok {
		_spec.SetField(answerrecord.FieldSubmittedAt, field.TypeTime, value)
	}
	if _u.mutation.CandidateCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   answerrecord.CandidateTable,
			Columns: []string{answerrecord.CandidateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CandidateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   answerrecord.CandidateTable,
			Columns: []string{answerrecord.CandidateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AnswerRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
