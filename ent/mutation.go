// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/avalder/pathwise/ent/learningpath"
	"github.com/avalder/pathwise/ent/llmrequestevent"
	"github.com/avalder/pathwise/ent/masteryrecord"
	"github.com/avalder/pathwise/ent/predicate"
	"github.com/avalder/pathwise/ent/quizattemptevent"
	"github.com/avalder/pathwise/ent/reviewevent"
	"github.com/avalder/pathwise/ent/subjectprogress"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeLLMRequestEvent  = "LLMRequestEvent"
	TypeLearningPath     = "LearningPath"
	TypeMasteryRecord    = "MasteryRecord"
	TypeQuizAttemptEvent = "QuizAttemptEvent"
	TypeReviewEvent      = "ReviewEvent"
	TypeSubjectProgress  = "SubjectProgress"
)

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *LLMRequestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *LLMRequestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *LLMRequestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *LLMRequestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *LLMRequestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.Sequence()
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.OldSequence(ctx)
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.AddedSequence()
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldSequence:
		m.ResetSequence()
		return nil
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// LearningPathMutation represents an operation that mutates the LearningPath nodes in the graph.
type LearningPathMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	user_id               *string
	subject_id            *string
	nodes                 *[]map[string]interface{}
	appendnodes           []map[string]interface{}
	current_node_index    *int
	addcurrent_node_index *int
	completion_rate       *float64
	addcompletion_rate    *float64
	average_score         *float64
	addaverage_score      *float64
	last_updated          *time.Time
	version               *int64
	addversion            *int64
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*LearningPath, error)
	predicates            []predicate.LearningPath
}

var _ ent.Mutation = (*LearningPathMutation)(nil)

// learningpathOption allows management of the mutation configuration using functional options.
type learningpathOption func(*LearningPathMutation)

// newLearningPathMutation creates new mutation for the LearningPath entity.
func newLearningPathMutation(c config, op Op, opts ...learningpathOption) *LearningPathMutation {
	m := &LearningPathMutation{
		config:        c,
		op:            op,
		typ:           TypeLearningPath,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLearningPathID sets the ID field of the mutation.
func withLearningPathID(id int) learningpathOption {
	return func(m *LearningPathMutation) {
		var (
			err   error
			once  sync.Once
			value *LearningPath
		)
		m.oldValue = func(ctx context.Context) (*LearningPath, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LearningPath.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLearningPath sets the old LearningPath of the mutation.
func withLearningPath(node *LearningPath) learningpathOption {
	return func(m *LearningPathMutation) {
		m.oldValue = func(context.Context) (*LearningPath, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LearningPathMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LearningPathMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LearningPathMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LearningPathMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LearningPath.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *LearningPathMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *LearningPathMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the LearningPath entity.
// If the LearningPath object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPathMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *LearningPathMutation) ResetUserID() {
	m.user_id = nil
}

// SetSubjectID sets the "subject_id" field.
func (m *LearningPathMutation) SetSubjectID(s string) {
	m.subject_id = &s
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *LearningPathMutation) SubjectID() (r string, exists bool) {
	v := m.subject_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the LearningPath entity.
// If the LearningPath object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPathMutation) OldSubjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *LearningPathMutation) ResetSubjectID() {
	m.subject_id = nil
}

// SetNodes sets the "nodes" field.
func (m *LearningPathMutation) SetNodes(value []map[string]interface{}) {
	m.nodes = &value
	m.appendnodes = nil
}

// Nodes returns the value of the "nodes" field in the mutation.
func (m *LearningPathMutation) Nodes() (r []map[string]interface{}, exists bool) {
	v := m.nodes
	if v == nil {
		return
	}
	return *v, true
}

// OldNodes returns the old "nodes" field's value of the LearningPath entity.
// If the LearningPath object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPathMutation) OldNodes(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodes: %w", err)
	}
	return oldValue.Nodes, nil
}

// AppendNodes adds value to the "nodes" field.
func (m *LearningPathMutation) AppendNodes(value []map[string]interface{}) {
	m.appendnodes = append(m.appendnodes, value...)
}

// AppendedNodes returns the list of values that were appended to the "nodes" field in this mutation.
func (m *LearningPathMutation) AppendedNodes() ([]map[string]interface{}, bool) {
	if len(m.appendnodes) == 0 {
		return nil, false
	}
	return m.appendnodes, true
}

// ResetNodes resets all changes to the "nodes" field.
func (m *LearningPathMutation) ResetNodes() {
	m.nodes = nil
	m.appendnodes = nil
}

// SetCurrentNodeIndex sets the "current_node_index" field.
func (m *LearningPathMutation) SetCurrentNodeIndex(i int) {
	m.current_node_index = &i
	m.addcurrent_node_index = nil
}

// CurrentNodeIndex returns the value of the "current_node_index" field in the mutation.
func (m *LearningPathMutation) CurrentNodeIndex() (r int, exists bool) {
	v := m.current_node_index
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentNodeIndex returns the old "current_node_index" field's value of the LearningPath entity.
// If the LearningPath object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPathMutation) OldCurrentNodeIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentNodeIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentNodeIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentNodeIndex: %w", err)
	}
	return oldValue.CurrentNodeIndex, nil
}

// AddCurrentNodeIndex adds i to the "current_node_index" field.
func (m *LearningPathMutation) AddCurrentNodeIndex(i int) {
	if m.addcurrent_node_index != nil {
		*m.addcurrent_node_index += i
	} else {
		m.addcurrent_node_index = &i
	}
}

// AddedCurrentNodeIndex returns the value that was added to the "current_node_index" field in this mutation.
func (m *LearningPathMutation) AddedCurrentNodeIndex() (r int, exists bool) {
	v := m.addcurrent_node_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentNodeIndex resets all changes to the "current_node_index" field.
func (m *LearningPathMutation) ResetCurrentNodeIndex() {
	m.current_node_index = nil
	m.addcurrent_node_index = nil
}

// SetCompletionRate sets the "completion_rate" field.
func (m *LearningPathMutation) SetCompletionRate(f float64) {
	m.completion_rate = &f
	m.addcompletion_rate = nil
}

// CompletionRate returns the value of the "completion_rate" field in the mutation.
func (m *LearningPathMutation) CompletionRate() (r float64, exists bool) {
	v := m.completion_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionRate returns the old "completion_rate" field's value of the LearningPath entity.
// If the LearningPath object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPathMutation) OldCompletionRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionRate: %w", err)
	}
	return oldValue.CompletionRate, nil
}

// AddCompletionRate adds f to the "completion_rate" field.
func (m *LearningPathMutation) AddCompletionRate(f float64) {
	if m.addcompletion_rate != nil {
		*m.addcompletion_rate += f
	} else {
		m.addcompletion_rate = &f
	}
}

// AddedCompletionRate returns the value that was added to the "completion_rate" field in this mutation.
func (m *LearningPathMutation) AddedCompletionRate() (r float64, exists bool) {
	v := m.addcompletion_rate
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletionRate resets all changes to the "completion_rate" field.
func (m *LearningPathMutation) ResetCompletionRate() {
	m.completion_rate = nil
	m.addcompletion_rate = nil
}

// SetAverageScore sets the "average_score" field.
func (m *LearningPathMutation) SetAverageScore(f float64) {
	m.average_score = &f
	m.addaverage_score = nil
}

// AverageScore returns the value of the "average_score" field in the mutation.
func (m *LearningPathMutation) AverageScore() (r float64, exists bool) {
	v := m.average_score
	if v == nil {
		return
	}
	return *v, true
}

// OldAverageScore returns the old "average_score" field's value of the LearningPath entity.
// If the LearningPath object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPathMutation) OldAverageScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAverageScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAverageScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAverageScore: %w", err)
	}
	return oldValue.AverageScore, nil
}

// AddAverageScore adds f to the "average_score" field.
func (m *LearningPathMutation) AddAverageScore(f float64) {
	if m.addaverage_score != nil {
		*m.addaverage_score += f
	} else {
		m.addaverage_score = &f
	}
}

// AddedAverageScore returns the value that was added to the "average_score" field in this mutation.
func (m *LearningPathMutation) AddedAverageScore() (r float64, exists bool) {
	v := m.addaverage_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetAverageScore resets all changes to the "average_score" field.
func (m *LearningPathMutation) ResetAverageScore() {
	m.average_score = nil
	m.addaverage_score = nil
}

// SetLastUpdated sets the "last_updated" field.
func (m *LearningPathMutation) SetLastUpdated(t time.Time) {
	m.last_updated = &t
}

// LastUpdated returns the value of the "last_updated" field in the mutation.
func (m *LearningPathMutation) LastUpdated() (r time.Time, exists bool) {
	v := m.last_updated
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUpdated returns the old "last_updated" field's value of the LearningPath entity.
// If the LearningPath object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPathMutation) OldLastUpdated(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUpdated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUpdated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUpdated: %w", err)
	}
	return oldValue.LastUpdated, nil
}

// ResetLastUpdated resets all changes to the "last_updated" field.
func (m *LearningPathMutation) ResetLastUpdated() {
	m.last_updated = nil
}

// SetVersion sets the "version" field.
func (m *LearningPathMutation) SetVersion(i int64) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *LearningPathMutation) Version() (r int64, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the LearningPath entity.
// If the LearningPath object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningPathMutation) OldVersion(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *LearningPathMutation) AddVersion(i int64) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *LearningPathMutation) AddedVersion() (r int64, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *LearningPathMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// Where appends a list predicates to the LearningPathMutation builder.
func (m *LearningPathMutation) Where(ps ...predicate.LearningPath) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LearningPathMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LearningPathMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LearningPath, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LearningPathMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LearningPathMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LearningPath).
func (m *LearningPathMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LearningPathMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user_id != nil {
		fields = append(fields, learningpath.FieldUserID)
	}
	if m.subject_id != nil {
		fields = append(fields, learningpath.FieldSubjectID)
	}
	if m.nodes != nil {
		fields = append(fields, learningpath.FieldNodes)
	}
	if m.current_node_index != nil {
		fields = append(fields, learningpath.FieldCurrentNodeIndex)
	}
	if m.completion_rate != nil {
		fields = append(fields, learningpath.FieldCompletionRate)
	}
	if m.average_score != nil {
		fields = append(fields, learningpath.FieldAverageScore)
	}
	if m.last_updated != nil {
		fields = append(fields, learningpath.FieldLastUpdated)
	}
	if m.version != nil {
		fields = append(fields, learningpath.FieldVersion)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LearningPathMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case learningpath.FieldUserID:
		return m.UserID()
	case learningpath.FieldSubjectID:
		return m.SubjectID()
	case learningpath.FieldNodes:
		return m.Nodes()
	case learningpath.FieldCurrentNodeIndex:
		return m.CurrentNodeIndex()
	case learningpath.FieldCompletionRate:
		return m.CompletionRate()
	case learningpath.FieldAverageScore:
		return m.AverageScore()
	case learningpath.FieldLastUpdated:
		return m.LastUpdated()
	case learningpath.FieldVersion:
		return m.Version()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LearningPathMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case learningpath.FieldUserID:
		return m.OldUserID(ctx)
	case learningpath.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case learningpath.FieldNodes:
		return m.OldNodes(ctx)
	case learningpath.FieldCurrentNodeIndex:
		return m.OldCurrentNodeIndex(ctx)
	case learningpath.FieldCompletionRate:
		return m.OldCompletionRate(ctx)
	case learningpath.FieldAverageScore:
		return m.OldAverageScore(ctx)
	case learningpath.FieldLastUpdated:
		return m.OldLastUpdated(ctx)
	case learningpath.FieldVersion:
		return m.OldVersion(ctx)
	}
	return nil, fmt.Errorf("unknown LearningPath field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearningPathMutation) SetField(name string, value ent.Value) error {
	switch name {
	case learningpath.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case learningpath.FieldSubjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case learningpath.FieldNodes:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodes(v)
		return nil
	case learningpath.FieldCurrentNodeIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentNodeIndex(v)
		return nil
	case learningpath.FieldCompletionRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionRate(v)
		return nil
	case learningpath.FieldAverageScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAverageScore(v)
		return nil
	case learningpath.FieldLastUpdated:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUpdated(v)
		return nil
	case learningpath.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	}
	return fmt.Errorf("unknown LearningPath field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LearningPathMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent_node_index != nil {
		fields = append(fields, learningpath.FieldCurrentNodeIndex)
	}
	if m.addcompletion_rate != nil {
		fields = append(fields, learningpath.FieldCompletionRate)
	}
	if m.addaverage_score != nil {
		fields = append(fields, learningpath.FieldAverageScore)
	}
	if m.addversion != nil {
		fields = append(fields, learningpath.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LearningPathMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case learningpath.FieldCurrentNodeIndex:
		return m.AddedCurrentNodeIndex()
	case learningpath.FieldCompletionRate:
		return m.AddedCompletionRate()
	case learningpath.FieldAverageScore:
		return m.AddedAverageScore()
	case learningpath.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearningPathMutation) AddField(name string, value ent.Value) error {
	switch name {
	case learningpath.FieldCurrentNodeIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentNodeIndex(v)
		return nil
	case learningpath.FieldCompletionRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletionRate(v)
		return nil
	case learningpath.FieldAverageScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAverageScore(v)
		return nil
	case learningpath.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown LearningPath numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LearningPathMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LearningPathMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LearningPathMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LearningPath nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LearningPathMutation) ResetField(name string) error {
	switch name {
	case learningpath.FieldUserID:
		m.ResetUserID()
		return nil
	case learningpath.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case learningpath.FieldNodes:
		m.ResetNodes()
		return nil
	case learningpath.FieldCurrentNodeIndex:
		m.ResetCurrentNodeIndex()
		return nil
	case learningpath.FieldCompletionRate:
		m.ResetCompletionRate()
		return nil
	case learningpath.FieldAverageScore:
		m.ResetAverageScore()
		return nil
	case learningpath.FieldLastUpdated:
		m.ResetLastUpdated()
		return nil
	case learningpath.FieldVersion:
		m.ResetVersion()
		return nil
	}
	return fmt.Errorf("unknown LearningPath field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LearningPathMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LearningPathMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LearningPathMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LearningPathMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LearningPathMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LearningPathMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LearningPathMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LearningPath unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LearningPathMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LearningPath edge %s", name)
}

// MasteryRecordMutation represents an operation that mutates the MasteryRecord nodes in the graph.
type MasteryRecordMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	user_id             *string
	concept_id          *string
	level               *int
	addlevel            *int
	last_reviewed_at    *time.Time
	next_review_at      *time.Time
	retention_streak    *int
	addretention_streak *int
	history             *[]map[string]interface{}
	appendhistory       []map[string]interface{}
	version             *int64
	addversion          *int64
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*MasteryRecord, error)
	predicates          []predicate.MasteryRecord
}

var _ ent.Mutation = (*MasteryRecordMutation)(nil)

// masteryrecordOption allows management of the mutation configuration using functional options.
type masteryrecordOption func(*MasteryRecordMutation)

// newMasteryRecordMutation creates new mutation for the MasteryRecord entity.
func newMasteryRecordMutation(c config, op Op, opts ...masteryrecordOption) *MasteryRecordMutation {
	m := &MasteryRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeMasteryRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMasteryRecordID sets the ID field of the mutation.
func withMasteryRecordID(id int) masteryrecordOption {
	return func(m *MasteryRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *MasteryRecord
		)
		m.oldValue = func(ctx context.Context) (*MasteryRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MasteryRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMasteryRecord sets the old MasteryRecord of the mutation.
func withMasteryRecord(node *MasteryRecord) masteryrecordOption {
	return func(m *MasteryRecordMutation) {
		m.oldValue = func(context.Context) (*MasteryRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MasteryRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MasteryRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MasteryRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MasteryRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MasteryRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *MasteryRecordMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *MasteryRecordMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *MasteryRecordMutation) ResetUserID() {
	m.user_id = nil
}

// SetConceptID sets the "concept_id" field.
func (m *MasteryRecordMutation) SetConceptID(s string) {
	m.concept_id = &s
}

// ConceptID returns the value of the "concept_id" field in the mutation.
func (m *MasteryRecordMutation) ConceptID() (r string, exists bool) {
	v := m.concept_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptID returns the old "concept_id" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldConceptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptID: %w", err)
	}
	return oldValue.ConceptID, nil
}

// ResetConceptID resets all changes to the "concept_id" field.
func (m *MasteryRecordMutation) ResetConceptID() {
	m.concept_id = nil
}

// SetLevel sets the "level" field.
func (m *MasteryRecordMutation) SetLevel(i int) {
	m.level = &i
	m.addlevel = nil
}

// Level returns the value of the "level" field in the mutation.
func (m *MasteryRecordMutation) Level() (r int, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// AddLevel adds i to the "level" field.
func (m *MasteryRecordMutation) AddLevel(i int) {
	if m.addlevel != nil {
		*m.addlevel += i
	} else {
		m.addlevel = &i
	}
}

// AddedLevel returns the value that was added to the "level" field in this mutation.
func (m *MasteryRecordMutation) AddedLevel() (r int, exists bool) {
	v := m.addlevel
	if v == nil {
		return
	}
	return *v, true
}

// ResetLevel resets all changes to the "level" field.
func (m *MasteryRecordMutation) ResetLevel() {
	m.level = nil
	m.addlevel = nil
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (m *MasteryRecordMutation) SetLastReviewedAt(t time.Time) {
	m.last_reviewed_at = &t
}

// LastReviewedAt returns the value of the "last_reviewed_at" field in the mutation.
func (m *MasteryRecordMutation) LastReviewedAt() (r time.Time, exists bool) {
	v := m.last_reviewed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastReviewedAt returns the old "last_reviewed_at" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldLastReviewedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastReviewedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastReviewedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastReviewedAt: %w", err)
	}
	return oldValue.LastReviewedAt, nil
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (m *MasteryRecordMutation) ClearLastReviewedAt() {
	m.last_reviewed_at = nil
	m.clearedFields[masteryrecord.FieldLastReviewedAt] = struct{}{}
}

// LastReviewedAtCleared returns if the "last_reviewed_at" field was cleared in this mutation.
func (m *MasteryRecordMutation) LastReviewedAtCleared() bool {
	_, ok := m.clearedFields[masteryrecord.FieldLastReviewedAt]
	return ok
}

// ResetLastReviewedAt resets all changes to the "last_reviewed_at" field.
func (m *MasteryRecordMutation) ResetLastReviewedAt() {
	m.last_reviewed_at = nil
	delete(m.clearedFields, masteryrecord.FieldLastReviewedAt)
}

// SetNextReviewAt sets the "next_review_at" field.
func (m *MasteryRecordMutation) SetNextReviewAt(t time.Time) {
	m.next_review_at = &t
}

// NextReviewAt returns the value of the "next_review_at" field in the mutation.
func (m *MasteryRecordMutation) NextReviewAt() (r time.Time, exists bool) {
	v := m.next_review_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextReviewAt returns the old "next_review_at" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldNextReviewAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextReviewAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextReviewAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextReviewAt: %w", err)
	}
	return oldValue.NextReviewAt, nil
}

// ClearNextReviewAt clears the value of the "next_review_at" field.
func (m *MasteryRecordMutation) ClearNextReviewAt() {
	m.next_review_at = nil
	m.clearedFields[masteryrecord.FieldNextReviewAt] = struct{}{}
}

// NextReviewAtCleared returns if the "next_review_at" field was cleared in this mutation.
func (m *MasteryRecordMutation) NextReviewAtCleared() bool {
	_, ok := m.clearedFields[masteryrecord.FieldNextReviewAt]
	return ok
}

// ResetNextReviewAt resets all changes to the "next_review_at" field.
func (m *MasteryRecordMutation) ResetNextReviewAt() {
	m.next_review_at = nil
	delete(m.clearedFields, masteryrecord.FieldNextReviewAt)
}

// SetRetentionStreak sets the "retention_streak" field.
func (m *MasteryRecordMutation) SetRetentionStreak(i int) {
	m.retention_streak = &i
	m.addretention_streak = nil
}

// RetentionStreak returns the value of the "retention_streak" field in the mutation.
func (m *MasteryRecordMutation) RetentionStreak() (r int, exists bool) {
	v := m.retention_streak
	if v == nil {
		return
	}
	return *v, true
}

// OldRetentionStreak returns the old "retention_streak" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldRetentionStreak(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetentionStreak is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetentionStreak requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetentionStreak: %w", err)
	}
	return oldValue.RetentionStreak, nil
}

// AddRetentionStreak adds i to the "retention_streak" field.
func (m *MasteryRecordMutation) AddRetentionStreak(i int) {
	if m.addretention_streak != nil {
		*m.addretention_streak += i
	} else {
		m.addretention_streak = &i
	}
}

// AddedRetentionStreak returns the value that was added to the "retention_streak" field in this mutation.
func (m *MasteryRecordMutation) AddedRetentionStreak() (r int, exists bool) {
	v := m.addretention_streak
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetentionStreak resets all changes to the "retention_streak" field.
func (m *MasteryRecordMutation) ResetRetentionStreak() {
	m.retention_streak = nil
	m.addretention_streak = nil
}

// SetHistory sets the "history" field.
func (m *MasteryRecordMutation) SetHistory(value []map[string]interface{}) {
	m.history = &value
	m.appendhistory = nil
}

// History returns the value of the "history" field in the mutation.
func (m *MasteryRecordMutation) History() (r []map[string]interface{}, exists bool) {
	v := m.history
	if v == nil {
		return
	}
	return *v, true
}

// OldHistory returns the old "history" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldHistory(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHistory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHistory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHistory: %w", err)
	}
	return oldValue.History, nil
}

// AppendHistory adds value to the "history" field.
func (m *MasteryRecordMutation) AppendHistory(value []map[string]interface{}) {
	m.appendhistory = append(m.appendhistory, value...)
}

// AppendedHistory returns the list of values that were appended to the "history" field in this mutation.
func (m *MasteryRecordMutation) AppendedHistory() ([]map[string]interface{}, bool) {
	if len(m.appendhistory) == 0 {
		return nil, false
	}
	return m.appendhistory, true
}

// ClearHistory clears the value of the "history" field.
func (m *MasteryRecordMutation) ClearHistory() {
	m.history = nil
	m.appendhistory = nil
	m.clearedFields[masteryrecord.FieldHistory] = struct{}{}
}

// HistoryCleared returns if the "history" field was cleared in this mutation.
func (m *MasteryRecordMutation) HistoryCleared() bool {
	_, ok := m.clearedFields[masteryrecord.FieldHistory]
	return ok
}

// ResetHistory resets all changes to the "history" field.
func (m *MasteryRecordMutation) ResetHistory() {
	m.history = nil
	m.appendhistory = nil
	delete(m.clearedFields, masteryrecord.FieldHistory)
}

// SetVersion sets the "version" field.
func (m *MasteryRecordMutation) SetVersion(i int64) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *MasteryRecordMutation) Version() (r int64, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldVersion(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *MasteryRecordMutation) AddVersion(i int64) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *MasteryRecordMutation) AddedVersion() (r int64, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *MasteryRecordMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// Where appends a list predicates to the MasteryRecordMutation builder.
func (m *MasteryRecordMutation) Where(ps ...predicate.MasteryRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MasteryRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MasteryRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MasteryRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MasteryRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MasteryRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MasteryRecord).
func (m *MasteryRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MasteryRecordMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user_id != nil {
		fields = append(fields, masteryrecord.FieldUserID)
	}
	if m.concept_id != nil {
		fields = append(fields, masteryrecord.FieldConceptID)
	}
	if m.level != nil {
		fields = append(fields, masteryrecord.FieldLevel)
	}
	if m.last_reviewed_at != nil {
		fields = append(fields, masteryrecord.FieldLastReviewedAt)
	}
	if m.next_review_at != nil {
		fields = append(fields, masteryrecord.FieldNextReviewAt)
	}
	if m.retention_streak != nil {
		fields = append(fields, masteryrecord.FieldRetentionStreak)
	}
	if m.history != nil {
		fields = append(fields, masteryrecord.FieldHistory)
	}
	if m.version != nil {
		fields = append(fields, masteryrecord.FieldVersion)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MasteryRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case masteryrecord.FieldUserID:
		return m.UserID()
	case masteryrecord.FieldConceptID:
		return m.ConceptID()
	case masteryrecord.FieldLevel:
		return m.Level()
	case masteryrecord.FieldLastReviewedAt:
		return m.LastReviewedAt()
	case masteryrecord.FieldNextReviewAt:
		return m.NextReviewAt()
	case masteryrecord.FieldRetentionStreak:
		return m.RetentionStreak()
	case masteryrecord.FieldHistory:
		return m.History()
	case masteryrecord.FieldVersion:
		return m.Version()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MasteryRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case masteryrecord.FieldUserID:
		return m.OldUserID(ctx)
	case masteryrecord.FieldConceptID:
		return m.OldConceptID(ctx)
	case masteryrecord.FieldLevel:
		return m.OldLevel(ctx)
	case masteryrecord.FieldLastReviewedAt:
		return m.OldLastReviewedAt(ctx)
	case masteryrecord.FieldNextReviewAt:
		return m.OldNextReviewAt(ctx)
	case masteryrecord.FieldRetentionStreak:
		return m.OldRetentionStreak(ctx)
	case masteryrecord.FieldHistory:
		return m.OldHistory(ctx)
	case masteryrecord.FieldVersion:
		return m.OldVersion(ctx)
	}
	return nil, fmt.Errorf("unknown MasteryRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MasteryRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case masteryrecord.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case masteryrecord.FieldConceptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptID(v)
		return nil
	case masteryrecord.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case masteryrecord.FieldLastReviewedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastReviewedAt(v)
		return nil
	case masteryrecord.FieldNextReviewAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextReviewAt(v)
		return nil
	case masteryrecord.FieldRetentionStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetentionStreak(v)
		return nil
	case masteryrecord.FieldHistory:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHistory(v)
		return nil
	case masteryrecord.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	}
	return fmt.Errorf("unknown MasteryRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MasteryRecordMutation) AddedFields() []string {
	var fields []string
	if m.addlevel != nil {
		fields = append(fields, masteryrecord.FieldLevel)
	}
	if m.addretention_streak != nil {
		fields = append(fields, masteryrecord.FieldRetentionStreak)
	}
	if m.addversion != nil {
		fields = append(fields, masteryrecord.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MasteryRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case masteryrecord.FieldLevel:
		return m.AddedLevel()
	case masteryrecord.FieldRetentionStreak:
		return m.AddedRetentionStreak()
	case masteryrecord.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MasteryRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case masteryrecord.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLevel(v)
		return nil
	case masteryrecord.FieldRetentionStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetentionStreak(v)
		return nil
	case masteryrecord.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown MasteryRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MasteryRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(masteryrecord.FieldLastReviewedAt) {
		fields = append(fields, masteryrecord.FieldLastReviewedAt)
	}
	if m.FieldCleared(masteryrecord.FieldNextReviewAt) {
		fields = append(fields, masteryrecord.FieldNextReviewAt)
	}
	if m.FieldCleared(masteryrecord.FieldHistory) {
		fields = append(fields, masteryrecord.FieldHistory)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MasteryRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MasteryRecordMutation) ClearField(name string) error {
	switch name {
	case masteryrecord.FieldLastReviewedAt:
		m.ClearLastReviewedAt()
		return nil
	case masteryrecord.FieldNextReviewAt:
		m.ClearNextReviewAt()
		return nil
	case masteryrecord.FieldHistory:
		m.ClearHistory()
		return nil
	}
	return fmt.Errorf("unknown MasteryRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MasteryRecordMutation) ResetField(name string) error {
	switch name {
	case masteryrecord.FieldUserID:
		m.ResetUserID()
		return nil
	case masteryrecord.FieldConceptID:
		m.ResetConceptID()
		return nil
	case masteryrecord.FieldLevel:
		m.ResetLevel()
		return nil
	case masteryrecord.FieldLastReviewedAt:
		m.ResetLastReviewedAt()
		return nil
	case masteryrecord.FieldNextReviewAt:
		m.ResetNextReviewAt()
		return nil
	case masteryrecord.FieldRetentionStreak:
		m.ResetRetentionStreak()
		return nil
	case masteryrecord.FieldHistory:
		m.ResetHistory()
		return nil
	case masteryrecord.FieldVersion:
		m.ResetVersion()
		return nil
	}
	return fmt.Errorf("unknown MasteryRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MasteryRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MasteryRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MasteryRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MasteryRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MasteryRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MasteryRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MasteryRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MasteryRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MasteryRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MasteryRecord edge %s", name)
}

// QuizAttemptEventMutation represents an operation that mutates the QuizAttemptEvent nodes in the graph.
type QuizAttemptEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	attempt_id    *string
	user_id       *string
	subject_id    *string
	quiz_id       *string
	answers       *[]int
	appendanswers []int
	score         *float64
	addscore      *float64
	completed_at  *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*QuizAttemptEvent, error)
	predicates    []predicate.QuizAttemptEvent
}

var _ ent.Mutation = (*QuizAttemptEventMutation)(nil)

// quizattempteventOption allows management of the mutation configuration using functional options.
type quizattempteventOption func(*QuizAttemptEventMutation)

// newQuizAttemptEventMutation creates new mutation for the QuizAttemptEvent entity.
func newQuizAttemptEventMutation(c config, op Op, opts ...quizattempteventOption) *QuizAttemptEventMutation {
	m := &QuizAttemptEventMutation{
		config:        c,
		op:            op,
		typ:           TypeQuizAttemptEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuizAttemptEventID sets the ID field of the mutation.
func withQuizAttemptEventID(id int) quizattempteventOption {
	return func(m *QuizAttemptEventMutation) {
		var (
			err   error
			once  sync.Once
			value *QuizAttemptEvent
		)
		m.oldValue = func(ctx context.Context) (*QuizAttemptEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuizAttemptEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuizAttemptEvent sets the old QuizAttemptEvent of the mutation.
func withQuizAttemptEvent(node *QuizAttemptEvent) quizattempteventOption {
	return func(m *QuizAttemptEventMutation) {
		m.oldValue = func(context.Context) (*QuizAttemptEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuizAttemptEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuizAttemptEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuizAttemptEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuizAttemptEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuizAttemptEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *QuizAttemptEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *QuizAttemptEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the QuizAttemptEvent entity.
// If the QuizAttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *QuizAttemptEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *QuizAttemptEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *QuizAttemptEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *QuizAttemptEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *QuizAttemptEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the QuizAttemptEvent entity.
// If the QuizAttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *QuizAttemptEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetAttemptID sets the "attempt_id" field.
func (m *QuizAttemptEventMutation) SetAttemptID(s string) {
	m.attempt_id = &s
}

// AttemptID returns the value of the "attempt_id" field in the mutation.
func (m *QuizAttemptEventMutation) AttemptID() (r string, exists bool) {
	v := m.attempt_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptID returns the old "attempt_id" field's value of the QuizAttemptEvent entity.
// If the QuizAttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptEventMutation) OldAttemptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptID: %w", err)
	}
	return oldValue.AttemptID, nil
}

// ResetAttemptID resets all changes to the "attempt_id" field.
func (m *QuizAttemptEventMutation) ResetAttemptID() {
	m.attempt_id = nil
}

// SetUserID sets the "user_id" field.
func (m *QuizAttemptEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *QuizAttemptEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the QuizAttemptEvent entity.
// If the QuizAttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *QuizAttemptEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetSubjectID sets the "subject_id" field.
func (m *QuizAttemptEventMutation) SetSubjectID(s string) {
	m.subject_id = &s
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *QuizAttemptEventMutation) SubjectID() (r string, exists bool) {
	v := m.subject_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the QuizAttemptEvent entity.
// If the QuizAttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptEventMutation) OldSubjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *QuizAttemptEventMutation) ResetSubjectID() {
	m.subject_id = nil
}

// SetQuizID sets the "quiz_id" field.
func (m *QuizAttemptEventMutation) SetQuizID(s string) {
	m.quiz_id = &s
}

// QuizID returns the value of the "quiz_id" field in the mutation.
func (m *QuizAttemptEventMutation) QuizID() (r string, exists bool) {
	v := m.quiz_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuizID returns the old "quiz_id" field's value of the QuizAttemptEvent entity.
// If the QuizAttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptEventMutation) OldQuizID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuizID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuizID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuizID: %w", err)
	}
	return oldValue.QuizID, nil
}

// ResetQuizID resets all changes to the "quiz_id" field.
func (m *QuizAttemptEventMutation) ResetQuizID() {
	m.quiz_id = nil
}

// SetAnswers sets the "answers" field.
func (m *QuizAttemptEventMutation) SetAnswers(i []int) {
	m.answers = &i
	m.appendanswers = nil
}

// Answers returns the value of the "answers" field in the mutation.
func (m *QuizAttemptEventMutation) Answers() (r []int, exists bool) {
	v := m.answers
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswers returns the old "answers" field's value of the QuizAttemptEvent entity.
// If the QuizAttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptEventMutation) OldAnswers(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswers: %w", err)
	}
	return oldValue.Answers, nil
}

// AppendAnswers adds i to the "answers" field.
func (m *QuizAttemptEventMutation) AppendAnswers(i []int) {
	m.appendanswers = append(m.appendanswers, i...)
}

// AppendedAnswers returns the list of values that were appended to the "answers" field in this mutation.
func (m *QuizAttemptEventMutation) AppendedAnswers() ([]int, bool) {
	if len(m.appendanswers) == 0 {
		return nil, false
	}
	return m.appendanswers, true
}

// ClearAnswers clears the value of the "answers" field.
func (m *QuizAttemptEventMutation) ClearAnswers() {
	m.answers = nil
	m.appendanswers = nil
	m.clearedFields[quizattemptevent.FieldAnswers] = struct{}{}
}

// AnswersCleared returns if the "answers" field was cleared in this mutation.
func (m *QuizAttemptEventMutation) AnswersCleared() bool {
	_, ok := m.clearedFields[quizattemptevent.FieldAnswers]
	return ok
}

// ResetAnswers resets all changes to the "answers" field.
func (m *QuizAttemptEventMutation) ResetAnswers() {
	m.answers = nil
	m.appendanswers = nil
	delete(m.clearedFields, quizattemptevent.FieldAnswers)
}

// SetScore sets the "score" field.
func (m *QuizAttemptEventMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *QuizAttemptEventMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the QuizAttemptEvent entity.
// If the QuizAttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptEventMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *QuizAttemptEventMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *QuizAttemptEventMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *QuizAttemptEventMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *QuizAttemptEventMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *QuizAttemptEventMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the QuizAttemptEvent entity.
// If the QuizAttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptEventMutation) OldCompletedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *QuizAttemptEventMutation) ResetCompletedAt() {
	m.completed_at = nil
}

// Where appends a list predicates to the QuizAttemptEventMutation builder.
func (m *QuizAttemptEventMutation) Where(ps ...predicate.QuizAttemptEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuizAttemptEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuizAttemptEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuizAttemptEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuizAttemptEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuizAttemptEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuizAttemptEvent).
func (m *QuizAttemptEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuizAttemptEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.sequence != nil {
		fields = append(fields, quizattemptevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, quizattemptevent.FieldTimestamp)
	}
	if m.attempt_id != nil {
		fields = append(fields, quizattemptevent.FieldAttemptID)
	}
	if m.user_id != nil {
		fields = append(fields, quizattemptevent.FieldUserID)
	}
	if m.subject_id != nil {
		fields = append(fields, quizattemptevent.FieldSubjectID)
	}
	if m.quiz_id != nil {
		fields = append(fields, quizattemptevent.FieldQuizID)
	}
	if m.answers != nil {
		fields = append(fields, quizattemptevent.FieldAnswers)
	}
	if m.score != nil {
		fields = append(fields, quizattemptevent.FieldScore)
	}
	if m.completed_at != nil {
		fields = append(fields, quizattemptevent.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuizAttemptEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case quizattemptevent.FieldSequence:
		return m.Sequence()
	case quizattemptevent.FieldTimestamp:
		return m.Timestamp()
	case quizattemptevent.FieldAttemptID:
		return m.AttemptID()
	case quizattemptevent.FieldUserID:
		return m.UserID()
	case quizattemptevent.FieldSubjectID:
		return m.SubjectID()
	case quizattemptevent.FieldQuizID:
		return m.QuizID()
	case quizattemptevent.FieldAnswers:
		return m.Answers()
	case quizattemptevent.FieldScore:
		return m.Score()
	case quizattemptevent.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuizAttemptEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case quizattemptevent.FieldSequence:
		return m.OldSequence(ctx)
	case quizattemptevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case quizattemptevent.FieldAttemptID:
		return m.OldAttemptID(ctx)
	case quizattemptevent.FieldUserID:
		return m.OldUserID(ctx)
	case quizattemptevent.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case quizattemptevent.FieldQuizID:
		return m.OldQuizID(ctx)
	case quizattemptevent.FieldAnswers:
		return m.OldAnswers(ctx)
	case quizattemptevent.FieldScore:
		return m.OldScore(ctx)
	case quizattemptevent.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QuizAttemptEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizAttemptEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case quizattemptevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case quizattemptevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case quizattemptevent.FieldAttemptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptID(v)
		return nil
	case quizattemptevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case quizattemptevent.FieldSubjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case quizattemptevent.FieldQuizID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuizID(v)
		return nil
	case quizattemptevent.FieldAnswers:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswers(v)
		return nil
	case quizattemptevent.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case quizattemptevent.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QuizAttemptEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuizAttemptEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, quizattemptevent.FieldSequence)
	}
	if m.addscore != nil {
		fields = append(fields, quizattemptevent.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuizAttemptEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case quizattemptevent.FieldSequence:
		return m.AddedSequence()
	case quizattemptevent.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizAttemptEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case quizattemptevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case quizattemptevent.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown QuizAttemptEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuizAttemptEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(quizattemptevent.FieldAnswers) {
		fields = append(fields, quizattemptevent.FieldAnswers)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuizAttemptEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuizAttemptEventMutation) ClearField(name string) error {
	switch name {
	case quizattemptevent.FieldAnswers:
		m.ClearAnswers()
		return nil
	}
	return fmt.Errorf("unknown QuizAttemptEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuizAttemptEventMutation) ResetField(name string) error {
	switch name {
	case quizattemptevent.FieldSequence:
		m.ResetSequence()
		return nil
	case quizattemptevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case quizattemptevent.FieldAttemptID:
		m.ResetAttemptID()
		return nil
	case quizattemptevent.FieldUserID:
		m.ResetUserID()
		return nil
	case quizattemptevent.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case quizattemptevent.FieldQuizID:
		m.ResetQuizID()
		return nil
	case quizattemptevent.FieldAnswers:
		m.ResetAnswers()
		return nil
	case quizattemptevent.FieldScore:
		m.ResetScore()
		return nil
	case quizattemptevent.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown QuizAttemptEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuizAttemptEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuizAttemptEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuizAttemptEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuizAttemptEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuizAttemptEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuizAttemptEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuizAttemptEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QuizAttemptEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuizAttemptEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QuizAttemptEvent edge %s", name)
}

// ReviewEventMutation represents an operation that mutates the ReviewEvent nodes in the graph.
type ReviewEventMutation struct {
	config
	op                Op
	typ               string
	id                *int
	sequence          *int64
	addsequence       *int64
	timestamp         *time.Time
	user_id           *string
	concept_id        *string
	rating            *string
	level_after       *int
	addlevel_after    *int
	streak_after      *int
	addstreak_after   *int
	interval_hours    *int
	addinterval_hours *int
	score_derived     *bool
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*ReviewEvent, error)
	predicates        []predicate.ReviewEvent
}

var _ ent.Mutation = (*ReviewEventMutation)(nil)

// revieweventOption allows management of the mutation configuration using functional options.
type revieweventOption func(*ReviewEventMutation)

// newReviewEventMutation creates new mutation for the ReviewEvent entity.
func newReviewEventMutation(c config, op Op, opts ...revieweventOption) *ReviewEventMutation {
	m := &ReviewEventMutation{
		config:        c,
		op:            op,
		typ:           TypeReviewEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReviewEventID sets the ID field of the mutation.
func withReviewEventID(id int) revieweventOption {
	return func(m *ReviewEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ReviewEvent
		)
		m.oldValue = func(ctx context.Context) (*ReviewEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReviewEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReviewEvent sets the old ReviewEvent of the mutation.
func withReviewEvent(node *ReviewEvent) revieweventOption {
	return func(m *ReviewEventMutation) {
		m.oldValue = func(context.Context) (*ReviewEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReviewEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReviewEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReviewEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReviewEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReviewEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ReviewEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ReviewEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ReviewEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ReviewEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ReviewEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ReviewEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ReviewEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ReviewEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetUserID sets the "user_id" field.
func (m *ReviewEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ReviewEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ReviewEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetConceptID sets the "concept_id" field.
func (m *ReviewEventMutation) SetConceptID(s string) {
	m.concept_id = &s
}

// ConceptID returns the value of the "concept_id" field in the mutation.
func (m *ReviewEventMutation) ConceptID() (r string, exists bool) {
	v := m.concept_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptID returns the old "concept_id" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldConceptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptID: %w", err)
	}
	return oldValue.ConceptID, nil
}

// ResetConceptID resets all changes to the "concept_id" field.
func (m *ReviewEventMutation) ResetConceptID() {
	m.concept_id = nil
}

// SetRating sets the "rating" field.
func (m *ReviewEventMutation) SetRating(s string) {
	m.rating = &s
}

// Rating returns the value of the "rating" field in the mutation.
func (m *ReviewEventMutation) Rating() (r string, exists bool) {
	v := m.rating
	if v == nil {
		return
	}
	return *v, true
}

// OldRating returns the old "rating" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldRating(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRating: %w", err)
	}
	return oldValue.Rating, nil
}

// ResetRating resets all changes to the "rating" field.
func (m *ReviewEventMutation) ResetRating() {
	m.rating = nil
}

// SetLevelAfter sets the "level_after" field.
func (m *ReviewEventMutation) SetLevelAfter(i int) {
	m.level_after = &i
	m.addlevel_after = nil
}

// LevelAfter returns the value of the "level_after" field in the mutation.
func (m *ReviewEventMutation) LevelAfter() (r int, exists bool) {
	v := m.level_after
	if v == nil {
		return
	}
	return *v, true
}

// OldLevelAfter returns the old "level_after" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldLevelAfter(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevelAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevelAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevelAfter: %w", err)
	}
	return oldValue.LevelAfter, nil
}

// AddLevelAfter adds i to the "level_after" field.
func (m *ReviewEventMutation) AddLevelAfter(i int) {
	if m.addlevel_after != nil {
		*m.addlevel_after += i
	} else {
		m.addlevel_after = &i
	}
}

// AddedLevelAfter returns the value that was added to the "level_after" field in this mutation.
func (m *ReviewEventMutation) AddedLevelAfter() (r int, exists bool) {
	v := m.addlevel_after
	if v == nil {
		return
	}
	return *v, true
}

// ResetLevelAfter resets all changes to the "level_after" field.
func (m *ReviewEventMutation) ResetLevelAfter() {
	m.level_after = nil
	m.addlevel_after = nil
}

// SetStreakAfter sets the "streak_after" field.
func (m *ReviewEventMutation) SetStreakAfter(i int) {
	m.streak_after = &i
	m.addstreak_after = nil
}

// StreakAfter returns the value of the "streak_after" field in the mutation.
func (m *ReviewEventMutation) StreakAfter() (r int, exists bool) {
	v := m.streak_after
	if v == nil {
		return
	}
	return *v, true
}

// OldStreakAfter returns the old "streak_after" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldStreakAfter(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreakAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreakAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreakAfter: %w", err)
	}
	return oldValue.StreakAfter, nil
}

// AddStreakAfter adds i to the "streak_after" field.
func (m *ReviewEventMutation) AddStreakAfter(i int) {
	if m.addstreak_after != nil {
		*m.addstreak_after += i
	} else {
		m.addstreak_after = &i
	}
}

// AddedStreakAfter returns the value that was added to the "streak_after" field in this mutation.
func (m *ReviewEventMutation) AddedStreakAfter() (r int, exists bool) {
	v := m.addstreak_after
	if v == nil {
		return
	}
	return *v, true
}

// ResetStreakAfter resets all changes to the "streak_after" field.
func (m *ReviewEventMutation) ResetStreakAfter() {
	m.streak_after = nil
	m.addstreak_after = nil
}

// SetIntervalHours sets the "interval_hours" field.
func (m *ReviewEventMutation) SetIntervalHours(i int) {
	m.interval_hours = &i
	m.addinterval_hours = nil
}

// IntervalHours returns the value of the "interval_hours" field in the mutation.
func (m *ReviewEventMutation) IntervalHours() (r int, exists bool) {
	v := m.interval_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldIntervalHours returns the old "interval_hours" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldIntervalHours(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntervalHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntervalHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntervalHours: %w", err)
	}
	return oldValue.IntervalHours, nil
}

// AddIntervalHours adds i to the "interval_hours" field.
func (m *ReviewEventMutation) AddIntervalHours(i int) {
	if m.addinterval_hours != nil {
		*m.addinterval_hours += i
	} else {
		m.addinterval_hours = &i
	}
}

// AddedIntervalHours returns the value that was added to the "interval_hours" field in this mutation.
func (m *ReviewEventMutation) AddedIntervalHours() (r int, exists bool) {
	v := m.addinterval_hours
	if v == nil {
		return
	}
	return *v, true
}

// ResetIntervalHours resets all changes to the "interval_hours" field.
func (m *ReviewEventMutation) ResetIntervalHours() {
	m.interval_hours = nil
	m.addinterval_hours = nil
}

// SetScoreDerived sets the "score_derived" field.
func (m *ReviewEventMutation) SetScoreDerived(b bool) {
	m.score_derived = &b
}

// ScoreDerived returns the value of the "score_derived" field in the mutation.
func (m *ReviewEventMutation) ScoreDerived() (r bool, exists bool) {
	v := m.score_derived
	if v == nil {
		return
	}
	return *v, true
}

// OldScoreDerived returns the old "score_derived" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldScoreDerived(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScoreDerived is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScoreDerived requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScoreDerived: %w", err)
	}
	return oldValue.ScoreDerived, nil
}

// ResetScoreDerived resets all changes to the "score_derived" field.
func (m *ReviewEventMutation) ResetScoreDerived() {
	m.score_derived = nil
}

// Where appends a list predicates to the ReviewEventMutation builder.
func (m *ReviewEventMutation) Where(ps ...predicate.ReviewEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReviewEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReviewEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReviewEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReviewEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReviewEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReviewEvent).
func (m *ReviewEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReviewEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.sequence != nil {
		fields = append(fields, reviewevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, reviewevent.FieldTimestamp)
	}
	if m.user_id != nil {
		fields = append(fields, reviewevent.FieldUserID)
	}
	if m.concept_id != nil {
		fields = append(fields, reviewevent.FieldConceptID)
	}
	if m.rating != nil {
		fields = append(fields, reviewevent.FieldRating)
	}
	if m.level_after != nil {
		fields = append(fields, reviewevent.FieldLevelAfter)
	}
	if m.streak_after != nil {
		fields = append(fields, reviewevent.FieldStreakAfter)
	}
	if m.interval_hours != nil {
		fields = append(fields, reviewevent.FieldIntervalHours)
	}
	if m.score_derived != nil {
		fields = append(fields, reviewevent.FieldScoreDerived)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReviewEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reviewevent.FieldSequence:
		return m.Sequence()
	case reviewevent.FieldTimestamp:
		return m.Timestamp()
	case reviewevent.FieldUserID:
		return m.UserID()
	case reviewevent.FieldConceptID:
		return m.ConceptID()
	case reviewevent.FieldRating:
		return m.Rating()
	case reviewevent.FieldLevelAfter:
		return m.LevelAfter()
	case reviewevent.FieldStreakAfter:
		return m.StreakAfter()
	case reviewevent.FieldIntervalHours:
		return m.IntervalHours()
	case reviewevent.FieldScoreDerived:
		return m.ScoreDerived()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReviewEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reviewevent.FieldSequence:
		return m.OldSequence(ctx)
	case reviewevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case reviewevent.FieldUserID:
		return m.OldUserID(ctx)
	case reviewevent.FieldConceptID:
		return m.OldConceptID(ctx)
	case reviewevent.FieldRating:
		return m.OldRating(ctx)
	case reviewevent.FieldLevelAfter:
		return m.OldLevelAfter(ctx)
	case reviewevent.FieldStreakAfter:
		return m.OldStreakAfter(ctx)
	case reviewevent.FieldIntervalHours:
		return m.OldIntervalHours(ctx)
	case reviewevent.FieldScoreDerived:
		return m.OldScoreDerived(ctx)
	}
	return nil, fmt.Errorf("unknown ReviewEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reviewevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case reviewevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case reviewevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case reviewevent.FieldConceptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptID(v)
		return nil
	case reviewevent.FieldRating:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRating(v)
		return nil
	case reviewevent.FieldLevelAfter:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevelAfter(v)
		return nil
	case reviewevent.FieldStreakAfter:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreakAfter(v)
		return nil
	case reviewevent.FieldIntervalHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntervalHours(v)
		return nil
	case reviewevent.FieldScoreDerived:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScoreDerived(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReviewEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, reviewevent.FieldSequence)
	}
	if m.addlevel_after != nil {
		fields = append(fields, reviewevent.FieldLevelAfter)
	}
	if m.addstreak_after != nil {
		fields = append(fields, reviewevent.FieldStreakAfter)
	}
	if m.addinterval_hours != nil {
		fields = append(fields, reviewevent.FieldIntervalHours)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReviewEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reviewevent.FieldSequence:
		return m.AddedSequence()
	case reviewevent.FieldLevelAfter:
		return m.AddedLevelAfter()
	case reviewevent.FieldStreakAfter:
		return m.AddedStreakAfter()
	case reviewevent.FieldIntervalHours:
		return m.AddedIntervalHours()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reviewevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case reviewevent.FieldLevelAfter:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLevelAfter(v)
		return nil
	case reviewevent.FieldStreakAfter:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStreakAfter(v)
		return nil
	case reviewevent.FieldIntervalHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntervalHours(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReviewEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReviewEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReviewEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ReviewEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReviewEventMutation) ResetField(name string) error {
	switch name {
	case reviewevent.FieldSequence:
		m.ResetSequence()
		return nil
	case reviewevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case reviewevent.FieldUserID:
		m.ResetUserID()
		return nil
	case reviewevent.FieldConceptID:
		m.ResetConceptID()
		return nil
	case reviewevent.FieldRating:
		m.ResetRating()
		return nil
	case reviewevent.FieldLevelAfter:
		m.ResetLevelAfter()
		return nil
	case reviewevent.FieldStreakAfter:
		m.ResetStreakAfter()
		return nil
	case reviewevent.FieldIntervalHours:
		m.ResetIntervalHours()
		return nil
	case reviewevent.FieldScoreDerived:
		m.ResetScoreDerived()
		return nil
	}
	return fmt.Errorf("unknown ReviewEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReviewEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReviewEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReviewEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReviewEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReviewEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReviewEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReviewEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ReviewEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReviewEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ReviewEvent edge %s", name)
}

// SubjectProgressMutation represents an operation that mutates the SubjectProgress nodes in the graph.
type SubjectProgressMutation struct {
	config
	op                          Op
	typ                         string
	id                          *int
	user_id                     *string
	subject_id                  *string
	progress_percentage         *float64
	addprogress_percentage      *float64
	last_activity_at            *time.Time
	completed_content_ids       *[]string
	appendcompleted_content_ids []string
	quiz_scores                 *map[string]float64
	study_streak_days           *int
	addstudy_streak_days        *int
	study_minutes               *int
	addstudy_minutes            *int
	version                     *int64
	addversion                  *int64
	clearedFields               map[string]struct{}
	done                        bool
	oldValue                    func(context.Context) (*SubjectProgress, error)
	predicates                  []predicate.SubjectProgress
}

var _ ent.Mutation = (*SubjectProgressMutation)(nil)

// subjectprogressOption allows management of the mutation configuration using functional options.
type subjectprogressOption func(*SubjectProgressMutation)

// newSubjectProgressMutation creates new mutation for the SubjectProgress entity.
func newSubjectProgressMutation(c config, op Op, opts ...subjectprogressOption) *SubjectProgressMutation {
	m := &SubjectProgressMutation{
		config:        c,
		op:            op,
		typ:           TypeSubjectProgress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubjectProgressID sets the ID field of the mutation.
func withSubjectProgressID(id int) subjectprogressOption {
	return func(m *SubjectProgressMutation) {
		var (
			err   error
			once  sync.Once
			value *SubjectProgress
		)
		m.oldValue = func(ctx context.Context) (*SubjectProgress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SubjectProgress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubjectProgress sets the old SubjectProgress of the mutation.
func withSubjectProgress(node *SubjectProgress) subjectprogressOption {
	return func(m *SubjectProgressMutation) {
		m.oldValue = func(context.Context) (*SubjectProgress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubjectProgressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubjectProgressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubjectProgressMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubjectProgressMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SubjectProgress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *SubjectProgressMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SubjectProgressMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the SubjectProgress entity.
// If the SubjectProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectProgressMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SubjectProgressMutation) ResetUserID() {
	m.user_id = nil
}

// SetSubjectID sets the "subject_id" field.
func (m *SubjectProgressMutation) SetSubjectID(s string) {
	m.subject_id = &s
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *SubjectProgressMutation) SubjectID() (r string, exists bool) {
	v := m.subject_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the SubjectProgress entity.
// If the SubjectProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectProgressMutation) OldSubjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *SubjectProgressMutation) ResetSubjectID() {
	m.subject_id = nil
}

// SetProgressPercentage sets the "progress_percentage" field.
func (m *SubjectProgressMutation) SetProgressPercentage(f float64) {
	m.progress_percentage = &f
	m.addprogress_percentage = nil
}

// ProgressPercentage returns the value of the "progress_percentage" field in the mutation.
func (m *SubjectProgressMutation) ProgressPercentage() (r float64, exists bool) {
	v := m.progress_percentage
	if v == nil {
		return
	}
	return *v, true
}

// OldProgressPercentage returns the old "progress_percentage" field's value of the SubjectProgress entity.
// If the SubjectProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectProgressMutation) OldProgressPercentage(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgressPercentage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgressPercentage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgressPercentage: %w", err)
	}
	return oldValue.ProgressPercentage, nil
}

// AddProgressPercentage adds f to the "progress_percentage" field.
func (m *SubjectProgressMutation) AddProgressPercentage(f float64) {
	if m.addprogress_percentage != nil {
		*m.addprogress_percentage += f
	} else {
		m.addprogress_percentage = &f
	}
}

// AddedProgressPercentage returns the value that was added to the "progress_percentage" field in this mutation.
func (m *SubjectProgressMutation) AddedProgressPercentage() (r float64, exists bool) {
	v := m.addprogress_percentage
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgressPercentage resets all changes to the "progress_percentage" field.
func (m *SubjectProgressMutation) ResetProgressPercentage() {
	m.progress_percentage = nil
	m.addprogress_percentage = nil
}

// SetLastActivityAt sets the "last_activity_at" field.
func (m *SubjectProgressMutation) SetLastActivityAt(t time.Time) {
	m.last_activity_at = &t
}

// LastActivityAt returns the value of the "last_activity_at" field in the mutation.
func (m *SubjectProgressMutation) LastActivityAt() (r time.Time, exists bool) {
	v := m.last_activity_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActivityAt returns the old "last_activity_at" field's value of the SubjectProgress entity.
// If the SubjectProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectProgressMutation) OldLastActivityAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActivityAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActivityAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActivityAt: %w", err)
	}
	return oldValue.LastActivityAt, nil
}

// ClearLastActivityAt clears the value of the "last_activity_at" field.
func (m *SubjectProgressMutation) ClearLastActivityAt() {
	m.last_activity_at = nil
	m.clearedFields[subjectprogress.FieldLastActivityAt] = struct{}{}
}

// LastActivityAtCleared returns if the "last_activity_at" field was cleared in this mutation.
func (m *SubjectProgressMutation) LastActivityAtCleared() bool {
	_, ok := m.clearedFields[subjectprogress.FieldLastActivityAt]
	return ok
}

// ResetLastActivityAt resets all changes to the "last_activity_at" field.
func (m *SubjectProgressMutation) ResetLastActivityAt() {
	m.last_activity_at = nil
	delete(m.clearedFields, subjectprogress.FieldLastActivityAt)
}

// SetCompletedContentIds sets the "completed_content_ids" field.
func (m *SubjectProgressMutation) SetCompletedContentIds(s []string) {
	m.completed_content_ids = &s
	m.appendcompleted_content_ids = nil
}

// CompletedContentIds returns the value of the "completed_content_ids" field in the mutation.
func (m *SubjectProgressMutation) CompletedContentIds() (r []string, exists bool) {
	v := m.completed_content_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedContentIds returns the old "completed_content_ids" field's value of the SubjectProgress entity.
// If the SubjectProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectProgressMutation) OldCompletedContentIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedContentIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedContentIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedContentIds: %w", err)
	}
	return oldValue.CompletedContentIds, nil
}

// AppendCompletedContentIds adds s to the "completed_content_ids" field.
func (m *SubjectProgressMutation) AppendCompletedContentIds(s []string) {
	m.appendcompleted_content_ids = append(m.appendcompleted_content_ids, s...)
}

// AppendedCompletedContentIds returns the list of values that were appended to the "completed_content_ids" field in this mutation.
func (m *SubjectProgressMutation) AppendedCompletedContentIds() ([]string, bool) {
	if len(m.appendcompleted_content_ids) == 0 {
		return nil, false
	}
	return m.appendcompleted_content_ids, true
}

// ClearCompletedContentIds clears the value of the "completed_content_ids" field.
func (m *SubjectProgressMutation) ClearCompletedContentIds() {
	m.completed_content_ids = nil
	m.appendcompleted_content_ids = nil
	m.clearedFields[subjectprogress.FieldCompletedContentIds] = struct{}{}
}

// CompletedContentIdsCleared returns if the "completed_content_ids" field was cleared in this mutation.
func (m *SubjectProgressMutation) CompletedContentIdsCleared() bool {
	_, ok := m.clearedFields[subjectprogress.FieldCompletedContentIds]
	return ok
}

// ResetCompletedContentIds resets all changes to the "completed_content_ids" field.
func (m *SubjectProgressMutation) ResetCompletedContentIds() {
	m.completed_content_ids = nil
	m.appendcompleted_content_ids = nil
	delete(m.clearedFields, subjectprogress.FieldCompletedContentIds)
}

// SetQuizScores sets the "quiz_scores" field.
func (m *SubjectProgressMutation) SetQuizScores(value map[string]float64) {
	m.quiz_scores = &value
}

// QuizScores returns the value of the "quiz_scores" field in the mutation.
func (m *SubjectProgressMutation) QuizScores() (r map[string]float64, exists bool) {
	v := m.quiz_scores
	if v == nil {
		return
	}
	return *v, true
}

// OldQuizScores returns the old "quiz_scores" field's value of the SubjectProgress entity.
// If the SubjectProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectProgressMutation) OldQuizScores(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuizScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuizScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuizScores: %w", err)
	}
	return oldValue.QuizScores, nil
}

// ClearQuizScores clears the value of the "quiz_scores" field.
func (m *SubjectProgressMutation) ClearQuizScores() {
	m.quiz_scores = nil
	m.clearedFields[subjectprogress.FieldQuizScores] = struct{}{}
}

// QuizScoresCleared returns if the "quiz_scores" field was cleared in this mutation.
func (m *SubjectProgressMutation) QuizScoresCleared() bool {
	_, ok := m.clearedFields[subjectprogress.FieldQuizScores]
	return ok
}

// ResetQuizScores resets all changes to the "quiz_scores" field.
func (m *SubjectProgressMutation) ResetQuizScores() {
	m.quiz_scores = nil
	delete(m.clearedFields, subjectprogress.FieldQuizScores)
}

// SetStudyStreakDays sets the "study_streak_days" field.
func (m *SubjectProgressMutation) SetStudyStreakDays(i int) {
	m.study_streak_days = &i
	m.addstudy_streak_days = nil
}

// StudyStreakDays returns the value of the "study_streak_days" field in the mutation.
func (m *SubjectProgressMutation) StudyStreakDays() (r int, exists bool) {
	v := m.study_streak_days
	if v == nil {
		return
	}
	return *v, true
}

// OldStudyStreakDays returns the old "study_streak_days" field's value of the SubjectProgress entity.
// If the SubjectProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectProgressMutation) OldStudyStreakDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudyStreakDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudyStreakDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudyStreakDays: %w", err)
	}
	return oldValue.StudyStreakDays, nil
}

// AddStudyStreakDays adds i to the "study_streak_days" field.
func (m *SubjectProgressMutation) AddStudyStreakDays(i int) {
	if m.addstudy_streak_days != nil {
		*m.addstudy_streak_days += i
	} else {
		m.addstudy_streak_days = &i
	}
}

// AddedStudyStreakDays returns the value that was added to the "study_streak_days" field in this mutation.
func (m *SubjectProgressMutation) AddedStudyStreakDays() (r int, exists bool) {
	v := m.addstudy_streak_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetStudyStreakDays resets all changes to the "study_streak_days" field.
func (m *SubjectProgressMutation) ResetStudyStreakDays() {
	m.study_streak_days = nil
	m.addstudy_streak_days = nil
}

// SetStudyMinutes sets the "study_minutes" field.
func (m *SubjectProgressMutation) SetStudyMinutes(i int) {
	m.study_minutes = &i
	m.addstudy_minutes = nil
}

// StudyMinutes returns the value of the "study_minutes" field in the mutation.
func (m *SubjectProgressMutation) StudyMinutes() (r int, exists bool) {
	v := m.study_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldStudyMinutes returns the old "study_minutes" field's value of the SubjectProgress entity.
// If the SubjectProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectProgressMutation) OldStudyMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudyMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudyMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudyMinutes: %w", err)
	}
	return oldValue.StudyMinutes, nil
}

// AddStudyMinutes adds i to the "study_minutes" field.
func (m *SubjectProgressMutation) AddStudyMinutes(i int) {
	if m.addstudy_minutes != nil {
		*m.addstudy_minutes += i
	} else {
		m.addstudy_minutes = &i
	}
}

// AddedStudyMinutes returns the value that was added to the "study_minutes" field in this mutation.
func (m *SubjectProgressMutation) AddedStudyMinutes() (r int, exists bool) {
	v := m.addstudy_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetStudyMinutes resets all changes to the "study_minutes" field.
func (m *SubjectProgressMutation) ResetStudyMinutes() {
	m.study_minutes = nil
	m.addstudy_minutes = nil
}

// SetVersion sets the "version" field.
func (m *SubjectProgressMutation) SetVersion(i int64) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *SubjectProgressMutation) Version() (r int64, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the SubjectProgress entity.
// If the SubjectProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectProgressMutation) OldVersion(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *SubjectProgressMutation) AddVersion(i int64) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *SubjectProgressMutation) AddedVersion() (r int64, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *SubjectProgressMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// Where appends a list predicates to the SubjectProgressMutation builder.
func (m *SubjectProgressMutation) Where(ps ...predicate.SubjectProgress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubjectProgressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubjectProgressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SubjectProgress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubjectProgressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubjectProgressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SubjectProgress).
func (m *SubjectProgressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubjectProgressMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user_id != nil {
		fields = append(fields, subjectprogress.FieldUserID)
	}
	if m.subject_id != nil {
		fields = append(fields, subjectprogress.FieldSubjectID)
	}
	if m.progress_percentage != nil {
		fields = append(fields, subjectprogress.FieldProgressPercentage)
	}
	if m.last_activity_at != nil {
		fields = append(fields, subjectprogress.FieldLastActivityAt)
	}
	if m.completed_content_ids != nil {
		fields = append(fields, subjectprogress.FieldCompletedContentIds)
	}
	if m.quiz_scores != nil {
		fields = append(fields, subjectprogress.FieldQuizScores)
	}
	if m.study_streak_days != nil {
		fields = append(fields, subjectprogress.FieldStudyStreakDays)
	}
	if m.study_minutes != nil {
		fields = append(fields, subjectprogress.FieldStudyMinutes)
	}
	if m.version != nil {
		fields = append(fields, subjectprogress.FieldVersion)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubjectProgressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case subjectprogress.FieldUserID:
		return m.UserID()
	case subjectprogress.FieldSubjectID:
		return m.SubjectID()
	case subjectprogress.FieldProgressPercentage:
		return m.ProgressPercentage()
	case subjectprogress.FieldLastActivityAt:
		return m.LastActivityAt()
	case subjectprogress.FieldCompletedContentIds:
		return m.CompletedContentIds()
	case subjectprogress.FieldQuizScores:
		return m.QuizScores()
	case subjectprogress.FieldStudyStreakDays:
		return m.StudyStreakDays()
	case subjectprogress.FieldStudyMinutes:
		return m.StudyMinutes()
	case subjectprogress.FieldVersion:
		return m.Version()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubjectProgressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case subjectprogress.FieldUserID:
		return m.OldUserID(ctx)
	case subjectprogress.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case subjectprogress.FieldProgressPercentage:
		return m.OldProgressPercentage(ctx)
	case subjectprogress.FieldLastActivityAt:
		return m.OldLastActivityAt(ctx)
	case subjectprogress.FieldCompletedContentIds:
		return m.OldCompletedContentIds(ctx)
	case subjectprogress.FieldQuizScores:
		return m.OldQuizScores(ctx)
	case subjectprogress.FieldStudyStreakDays:
		return m.OldStudyStreakDays(ctx)
	case subjectprogress.FieldStudyMinutes:
		return m.OldStudyMinutes(ctx)
	case subjectprogress.FieldVersion:
		return m.OldVersion(ctx)
	}
	return nil, fmt.Errorf("unknown SubjectProgress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubjectProgressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case subjectprogress.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case subjectprogress.FieldSubjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case subjectprogress.FieldProgressPercentage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgressPercentage(v)
		return nil
	case subjectprogress.FieldLastActivityAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActivityAt(v)
		return nil
	case subjectprogress.FieldCompletedContentIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedContentIds(v)
		return nil
	case subjectprogress.FieldQuizScores:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuizScores(v)
		return nil
	case subjectprogress.FieldStudyStreakDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudyStreakDays(v)
		return nil
	case subjectprogress.FieldStudyMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudyMinutes(v)
		return nil
	case subjectprogress.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	}
	return fmt.Errorf("unknown SubjectProgress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubjectProgressMutation) AddedFields() []string {
	var fields []string
	if m.addprogress_percentage != nil {
		fields = append(fields, subjectprogress.FieldProgressPercentage)
	}
	if m.addstudy_streak_days != nil {
		fields = append(fields, subjectprogress.FieldStudyStreakDays)
	}
	if m.addstudy_minutes != nil {
		fields = append(fields, subjectprogress.FieldStudyMinutes)
	}
	if m.addversion != nil {
		fields = append(fields, subjectprogress.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubjectProgressMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case subjectprogress.FieldProgressPercentage:
		return m.AddedProgressPercentage()
	case subjectprogress.FieldStudyStreakDays:
		return m.AddedStudyStreakDays()
	case subjectprogress.FieldStudyMinutes:
		return m.AddedStudyMinutes()
	case subjectprogress.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubjectProgressMutation) AddField(name string, value ent.Value) error {
	switch name {
	case subjectprogress.FieldProgressPercentage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgressPercentage(v)
		return nil
	case subjectprogress.FieldStudyStreakDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStudyStreakDays(v)
		return nil
	case subjectprogress.FieldStudyMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStudyMinutes(v)
		return nil
	case subjectprogress.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown SubjectProgress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubjectProgressMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(subjectprogress.FieldLastActivityAt) {
		fields = append(fields, subjectprogress.FieldLastActivityAt)
	}
	if m.FieldCleared(subjectprogress.FieldCompletedContentIds) {
		fields = append(fields, subjectprogress.FieldCompletedContentIds)
	}
	if m.FieldCleared(subjectprogress.FieldQuizScores) {
		fields = append(fields, subjectprogress.FieldQuizScores)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubjectProgressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubjectProgressMutation) ClearField(name string) error {
	switch name {
	case subjectprogress.FieldLastActivityAt:
		m.ClearLastActivityAt()
		return nil
	case subjectprogress.FieldCompletedContentIds:
		m.ClearCompletedContentIds()
		return nil
	case subjectprogress.FieldQuizScores:
		m.ClearQuizScores()
		return nil
	}
	return fmt.Errorf("unknown SubjectProgress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubjectProgressMutation) ResetField(name string) error {
	switch name {
	case subjectprogress.FieldUserID:
		m.ResetUserID()
		return nil
	case subjectprogress.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case subjectprogress.FieldProgressPercentage:
		m.ResetProgressPercentage()
		return nil
	case subjectprogress.FieldLastActivityAt:
		m.ResetLastActivityAt()
		return nil
	case subjectprogress.FieldCompletedContentIds:
		m.ResetCompletedContentIds()
		return nil
	case subjectprogress.FieldQuizScores:
		m.ResetQuizScores()
		return nil
	case subjectprogress.FieldStudyStreakDays:
		m.ResetStudyStreakDays()
		return nil
	case subjectprogress.FieldStudyMinutes:
		m.ResetStudyMinutes()
		return nil
	case subjectprogress.FieldVersion:
		m.ResetVersion()
		return nil
	}
	return fmt.Errorf("unknown SubjectProgress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubjectProgressMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubjectProgressMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubjectProgressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubjectProgressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubjectProgressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubjectProgressMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubjectProgressMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SubjectProgress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubjectProgressMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SubjectProgress edge %s", name)
}
