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
	"github.com/joseph-ayodele/mowbot/gen/ent/job"
	"github.com/joseph-ayodele/mowbot/gen/ent/note"
	"github.com/joseph-ayodele/mowbot/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeJob  = "Job"
	TypeNote = "Note"
)

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op              Op
	typ             string
	id              *int
	site_name       *string
	quote           *string
	address         *string
	order_no        *string
	order_period    *string
	area            *string
	summer_schedule *string
	winter_schedule *string
	contact         *string
	gate_code       *string
	map_link        *string
	assigned_to     *int64
	addassigned_to  *int64
	status          *string
	start_time      *time.Time
	finish_time     *time.Time
	photos          *[]string
	appendphotos    []string
	scheduled_date  *string
	priority        *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	notes           map[int]struct{}
	removednotes    map[int]struct{}
	clearednotes    bool
	done            bool
	oldValue        func(context.Context) (*Job, error)
	predicates      []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id int) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSiteName sets the "site_name" field.
func (m *JobMutation) SetSiteName(s string) {
	m.site_name = &s
}

// SiteName returns the value of the "site_name" field in the mutation.
func (m *JobMutation) SiteName() (r string, exists bool) {
	v := m.site_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSiteName returns the old "site_name" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldSiteName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSiteName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSiteName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSiteName: %w", err)
	}
	return oldValue.SiteName, nil
}

// ResetSiteName resets all changes to the "site_name" field.
func (m *JobMutation) ResetSiteName() {
	m.site_name = nil
}

// SetQuote sets the "quote" field.
func (m *JobMutation) SetQuote(s string) {
	m.quote = &s
}

// Quote returns the value of the "quote" field in the mutation.
func (m *JobMutation) Quote() (r string, exists bool) {
	v := m.quote
	if v == nil {
		return
	}
	return *v, true
}

// OldQuote returns the old "quote" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldQuote(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuote: %w", err)
	}
	return oldValue.Quote, nil
}

// ClearQuote clears the value of the "quote" field.
func (m *JobMutation) ClearQuote() {
	m.quote = nil
	m.clearedFields[job.FieldQuote] = struct{}{}
}

// QuoteCleared returns if the "quote" field was cleared in this mutation.
func (m *JobMutation) QuoteCleared() bool {
	_, ok := m.clearedFields[job.FieldQuote]
	return ok
}

// ResetQuote resets all changes to the "quote" field.
func (m *JobMutation) ResetQuote() {
	m.quote = nil
	delete(m.clearedFields, job.FieldQuote)
}

// SetAddress sets the "address" field.
func (m *JobMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *JobMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ClearAddress clears the value of the "address" field.
func (m *JobMutation) ClearAddress() {
	m.address = nil
	m.clearedFields[job.FieldAddress] = struct{}{}
}

// AddressCleared returns if the "address" field was cleared in this mutation.
func (m *JobMutation) AddressCleared() bool {
	_, ok := m.clearedFields[job.FieldAddress]
	return ok
}

// ResetAddress resets all changes to the "address" field.
func (m *JobMutation) ResetAddress() {
	m.address = nil
	delete(m.clearedFields, job.FieldAddress)
}

// SetOrderNo sets the "order_no" field.
func (m *JobMutation) SetOrderNo(s string) {
	m.order_no = &s
}

// OrderNo returns the value of the "order_no" field in the mutation.
func (m *JobMutation) OrderNo() (r string, exists bool) {
	v := m.order_no
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderNo returns the old "order_no" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldOrderNo(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderNo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderNo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderNo: %w", err)
	}
	return oldValue.OrderNo, nil
}

// ClearOrderNo clears the value of the "order_no" field.
func (m *JobMutation) ClearOrderNo() {
	m.order_no = nil
	m.clearedFields[job.FieldOrderNo] = struct{}{}
}

// OrderNoCleared returns if the "order_no" field was cleared in this mutation.
func (m *JobMutation) OrderNoCleared() bool {
	_, ok := m.clearedFields[job.FieldOrderNo]
	return ok
}

// ResetOrderNo resets all changes to the "order_no" field.
func (m *JobMutation) ResetOrderNo() {
	m.order_no = nil
	delete(m.clearedFields, job.FieldOrderNo)
}

// SetOrderPeriod sets the "order_period" field.
func (m *JobMutation) SetOrderPeriod(s string) {
	m.order_period = &s
}

// OrderPeriod returns the value of the "order_period" field in the mutation.
func (m *JobMutation) OrderPeriod() (r string, exists bool) {
	v := m.order_period
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderPeriod returns the old "order_period" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldOrderPeriod(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderPeriod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderPeriod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderPeriod: %w", err)
	}
	return oldValue.OrderPeriod, nil
}

// ClearOrderPeriod clears the value of the "order_period" field.
func (m *JobMutation) ClearOrderPeriod() {
	m.order_period = nil
	m.clearedFields[job.FieldOrderPeriod] = struct{}{}
}

// OrderPeriodCleared returns if the "order_period" field was cleared in this mutation.
func (m *JobMutation) OrderPeriodCleared() bool {
	_, ok := m.clearedFields[job.FieldOrderPeriod]
	return ok
}

// ResetOrderPeriod resets all changes to the "order_period" field.
func (m *JobMutation) ResetOrderPeriod() {
	m.order_period = nil
	delete(m.clearedFields, job.FieldOrderPeriod)
}

// SetArea sets the "area" field.
func (m *JobMutation) SetArea(s string) {
	m.area = &s
}

// Area returns the value of the "area" field in the mutation.
func (m *JobMutation) Area() (r string, exists bool) {
	v := m.area
	if v == nil {
		return
	}
	return *v, true
}

// OldArea returns the old "area" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldArea(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArea is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArea requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArea: %w", err)
	}
	return oldValue.Area, nil
}

// ClearArea clears the value of the "area" field.
func (m *JobMutation) ClearArea() {
	m.area = nil
	m.clearedFields[job.FieldArea] = struct{}{}
}

// AreaCleared returns if the "area" field was cleared in this mutation.
func (m *JobMutation) AreaCleared() bool {
	_, ok := m.clearedFields[job.FieldArea]
	return ok
}

// ResetArea resets all changes to the "area" field.
func (m *JobMutation) ResetArea() {
	m.area = nil
	delete(m.clearedFields, job.FieldArea)
}

// SetSummerSchedule sets the "summer_schedule" field.
func (m *JobMutation) SetSummerSchedule(s string) {
	m.summer_schedule = &s
}

// SummerSchedule returns the value of the "summer_schedule" field in the mutation.
func (m *JobMutation) SummerSchedule() (r string, exists bool) {
	v := m.summer_schedule
	if v == nil {
		return
	}
	return *v, true
}

// OldSummerSchedule returns the old "summer_schedule" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldSummerSchedule(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummerSchedule is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummerSchedule requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummerSchedule: %w", err)
	}
	return oldValue.SummerSchedule, nil
}

// ClearSummerSchedule clears the value of the "summer_schedule" field.
func (m *JobMutation) ClearSummerSchedule() {
	m.summer_schedule = nil
	m.clearedFields[job.FieldSummerSchedule] = struct{}{}
}

// SummerScheduleCleared returns if the "summer_schedule" field was cleared in this mutation.
func (m *JobMutation) SummerScheduleCleared() bool {
	_, ok := m.clearedFields[job.FieldSummerSchedule]
	return ok
}

// ResetSummerSchedule resets all changes to the "summer_schedule" field.
func (m *JobMutation) ResetSummerSchedule() {
	m.summer_schedule = nil
	delete(m.clearedFields, job.FieldSummerSchedule)
}

// SetWinterSchedule sets the "winter_schedule" field.
func (m *JobMutation) SetWinterSchedule(s string) {
	m.winter_schedule = &s
}

// WinterSchedule returns the value of the "winter_schedule" field in the mutation.
func (m *JobMutation) WinterSchedule() (r string, exists bool) {
	v := m.winter_schedule
	if v == nil {
		return
	}
	return *v, true
}

// OldWinterSchedule returns the old "winter_schedule" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldWinterSchedule(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWinterSchedule is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWinterSchedule requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWinterSchedule: %w", err)
	}
	return oldValue.WinterSchedule, nil
}

// ClearWinterSchedule clears the value of the "winter_schedule" field.
func (m *JobMutation) ClearWinterSchedule() {
	m.winter_schedule = nil
	m.clearedFields[job.FieldWinterSchedule] = struct{}{}
}

// WinterScheduleCleared returns if the "winter_schedule" field was cleared in this mutation.
func (m *JobMutation) WinterScheduleCleared() bool {
	_, ok := m.clearedFields[job.FieldWinterSchedule]
	return ok
}

// ResetWinterSchedule resets all changes to the "winter_schedule" field.
func (m *JobMutation) ResetWinterSchedule() {
	m.winter_schedule = nil
	delete(m.clearedFields, job.FieldWinterSchedule)
}

// SetContact sets the "contact" field.
func (m *JobMutation) SetContact(s string) {
	m.contact = &s
}

// Contact returns the value of the "contact" field in the mutation.
func (m *JobMutation) Contact() (r string, exists bool) {
	v := m.contact
	if v == nil {
		return
	}
	return *v, true
}

// OldContact returns the old "contact" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldContact(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContact is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContact requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContact: %w", err)
	}
	return oldValue.Contact, nil
}

// ClearContact clears the value of the "contact" field.
func (m *JobMutation) ClearContact() {
	m.contact = nil
	m.clearedFields[job.FieldContact] = struct{}{}
}

// ContactCleared returns if the "contact" field was cleared in this mutation.
func (m *JobMutation) ContactCleared() bool {
	_, ok := m.clearedFields[job.FieldContact]
	return ok
}

// ResetContact resets all changes to the "contact" field.
func (m *JobMutation) ResetContact() {
	m.contact = nil
	delete(m.clearedFields, job.FieldContact)
}

// SetGateCode sets the "gate_code" field.
func (m *JobMutation) SetGateCode(s string) {
	m.gate_code = &s
}

// GateCode returns the value of the "gate_code" field in the mutation.
func (m *JobMutation) GateCode() (r string, exists bool) {
	v := m.gate_code
	if v == nil {
		return
	}
	return *v, true
}

// OldGateCode returns the old "gate_code" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldGateCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGateCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGateCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGateCode: %w", err)
	}
	return oldValue.GateCode, nil
}

// ClearGateCode clears the value of the "gate_code" field.
func (m *JobMutation) ClearGateCode() {
	m.gate_code = nil
	m.clearedFields[job.FieldGateCode] = struct{}{}
}

// GateCodeCleared returns if the "gate_code" field was cleared in this mutation.
func (m *JobMutation) GateCodeCleared() bool {
	_, ok := m.clearedFields[job.FieldGateCode]
	return ok
}

// ResetGateCode resets all changes to the "gate_code" field.
func (m *JobMutation) ResetGateCode() {
	m.gate_code = nil
	delete(m.clearedFields, job.FieldGateCode)
}

// SetMapLink sets the "map_link" field.
func (m *JobMutation) SetMapLink(s string) {
	m.map_link = &s
}

// MapLink returns the value of the "map_link" field in the mutation.
func (m *JobMutation) MapLink() (r string, exists bool) {
	v := m.map_link
	if v == nil {
		return
	}
	return *v, true
}

// OldMapLink returns the old "map_link" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldMapLink(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMapLink is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMapLink requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMapLink: %w", err)
	}
	return oldValue.MapLink, nil
}

// ClearMapLink clears the value of the "map_link" field.
func (m *JobMutation) ClearMapLink() {
	m.map_link = nil
	m.clearedFields[job.FieldMapLink] = struct{}{}
}

// MapLinkCleared returns if the "map_link" field was cleared in this mutation.
func (m *JobMutation) MapLinkCleared() bool {
	_, ok := m.clearedFields[job.FieldMapLink]
	return ok
}

// ResetMapLink resets all changes to the "map_link" field.
func (m *JobMutation) ResetMapLink() {
	m.map_link = nil
	delete(m.clearedFields, job.FieldMapLink)
}

// SetAssignedTo sets the "assigned_to" field.
func (m *JobMutation) SetAssignedTo(i int64) {
	m.assigned_to = &i
	m.addassigned_to = nil
}

// AssignedTo returns the value of the "assigned_to" field in the mutation.
func (m *JobMutation) AssignedTo() (r int64, exists bool) {
	v := m.assigned_to
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedTo returns the old "assigned_to" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldAssignedTo(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedTo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedTo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedTo: %w", err)
	}
	return oldValue.AssignedTo, nil
}

// AddAssignedTo adds i to the "assigned_to" field.
func (m *JobMutation) AddAssignedTo(i int64) {
	if m.addassigned_to != nil {
		*m.addassigned_to += i
	} else {
		m.addassigned_to = &i
	}
}

// AddedAssignedTo returns the value that was added to the "assigned_to" field in this mutation.
func (m *JobMutation) AddedAssignedTo() (r int64, exists bool) {
	v := m.addassigned_to
	if v == nil {
		return
	}
	return *v, true
}

// ClearAssignedTo clears the value of the "assigned_to" field.
func (m *JobMutation) ClearAssignedTo() {
	m.assigned_to = nil
	m.addassigned_to = nil
	m.clearedFields[job.FieldAssignedTo] = struct{}{}
}

// AssignedToCleared returns if the "assigned_to" field was cleared in this mutation.
func (m *JobMutation) AssignedToCleared() bool {
	_, ok := m.clearedFields[job.FieldAssignedTo]
	return ok
}

// ResetAssignedTo resets all changes to the "assigned_to" field.
func (m *JobMutation) ResetAssignedTo() {
	m.assigned_to = nil
	m.addassigned_to = nil
	delete(m.clearedFields, job.FieldAssignedTo)
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobMutation) ResetStatus() {
	m.status = nil
}

// SetStartTime sets the "start_time" field.
func (m *JobMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *JobMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStartTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ClearStartTime clears the value of the "start_time" field.
func (m *JobMutation) ClearStartTime() {
	m.start_time = nil
	m.clearedFields[job.FieldStartTime] = struct{}{}
}

// StartTimeCleared returns if the "start_time" field was cleared in this mutation.
func (m *JobMutation) StartTimeCleared() bool {
	_, ok := m.clearedFields[job.FieldStartTime]
	return ok
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *JobMutation) ResetStartTime() {
	m.start_time = nil
	delete(m.clearedFields, job.FieldStartTime)
}

// SetFinishTime sets the "finish_time" field.
func (m *JobMutation) SetFinishTime(t time.Time) {
	m.finish_time = &t
}

// FinishTime returns the value of the "finish_time" field in the mutation.
func (m *JobMutation) FinishTime() (r time.Time, exists bool) {
	v := m.finish_time
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishTime returns the old "finish_time" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldFinishTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishTime: %w", err)
	}
	return oldValue.FinishTime, nil
}

// ClearFinishTime clears the value of the "finish_time" field.
func (m *JobMutation) ClearFinishTime() {
	m.finish_time = nil
	m.clearedFields[job.FieldFinishTime] = struct{}{}
}

// FinishTimeCleared returns if the "finish_time" field was cleared in this mutation.
func (m *JobMutation) FinishTimeCleared() bool {
	_, ok := m.clearedFields[job.FieldFinishTime]
	return ok
}

// ResetFinishTime resets all changes to the "finish_time" field.
func (m *JobMutation) ResetFinishTime() {
	m.finish_time = nil
	delete(m.clearedFields, job.FieldFinishTime)
}

// SetPhotos sets the "photos" field.
func (m *JobMutation) SetPhotos(s []string) {
	m.photos = &s
	m.appendphotos = nil
}

// Photos returns the value of the "photos" field in the mutation.
func (m *JobMutation) Photos() (r []string, exists bool) {
	v := m.photos
	if v == nil {
		return
	}
	return *v, true
}

// OldPhotos returns the old "photos" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPhotos(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhotos is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhotos requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhotos: %w", err)
	}
	return oldValue.Photos, nil
}

// AppendPhotos adds s to the "photos" field.
func (m *JobMutation) AppendPhotos(s []string) {
	m.appendphotos = append(m.appendphotos, s...)
}

// AppendedPhotos returns the list of values that were appended to the "photos" field in this mutation.
func (m *JobMutation) AppendedPhotos() ([]string, bool) {
	if len(m.appendphotos) == 0 {
		return nil, false
	}
	return m.appendphotos, true
}

// ClearPhotos clears the value of the "photos" field.
func (m *JobMutation) ClearPhotos() {
	m.photos = nil
	m.appendphotos = nil
	m.clearedFields[job.FieldPhotos] = struct{}{}
}

// PhotosCleared returns if the "photos" field was cleared in this mutation.
func (m *JobMutation) PhotosCleared() bool {
	_, ok := m.clearedFields[job.FieldPhotos]
	return ok
}

// ResetPhotos resets all changes to the "photos" field.
func (m *JobMutation) ResetPhotos() {
	m.photos = nil
	m.appendphotos = nil
	delete(m.clearedFields, job.FieldPhotos)
}

// SetScheduledDate sets the "scheduled_date" field.
func (m *JobMutation) SetScheduledDate(s string) {
	m.scheduled_date = &s
}

// ScheduledDate returns the value of the "scheduled_date" field in the mutation.
func (m *JobMutation) ScheduledDate() (r string, exists bool) {
	v := m.scheduled_date
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledDate returns the old "scheduled_date" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldScheduledDate(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledDate: %w", err)
	}
	return oldValue.ScheduledDate, nil
}

// ClearScheduledDate clears the value of the "scheduled_date" field.
func (m *JobMutation) ClearScheduledDate() {
	m.scheduled_date = nil
	m.clearedFields[job.FieldScheduledDate] = struct{}{}
}

// ScheduledDateCleared returns if the "scheduled_date" field was cleared in this mutation.
func (m *JobMutation) ScheduledDateCleared() bool {
	_, ok := m.clearedFields[job.FieldScheduledDate]
	return ok
}

// ResetScheduledDate resets all changes to the "scheduled_date" field.
func (m *JobMutation) ResetScheduledDate() {
	m.scheduled_date = nil
	delete(m.clearedFields, job.FieldScheduledDate)
}

// SetPriority sets the "priority" field.
func (m *JobMutation) SetPriority(s string) {
	m.priority = &s
}

// Priority returns the value of the "priority" field in the mutation.
func (m *JobMutation) Priority() (r string, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPriority(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *JobMutation) ResetPriority() {
	m.priority = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *JobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *JobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *JobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddNoteIDs adds the "notes" edge to the Note entity by ids.
func (m *JobMutation) AddNoteIDs(ids ...int) {
	if m.notes == nil {
		m.notes = make(map[int]struct{})
	}
	for i := range ids {
		m.notes[ids[i]] = struct{}{}
	}
}

// ClearNotes clears the "notes" edge to the Note entity.
func (m *JobMutation) ClearNotes() {
	m.clearednotes = true
}

// NotesCleared reports if the "notes" edge to the Note entity was cleared.
func (m *JobMutation) NotesCleared() bool {
	return m.clearednotes
}

// RemoveNoteIDs removes the "notes" edge to the Note entity by IDs.
func (m *JobMutation) RemoveNoteIDs(ids ...int) {
	if m.removednotes == nil {
		m.removednotes = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.notes, ids[i])
		m.removednotes[ids[i]] = struct{}{}
	}
}

// RemovedNotes returns the removed IDs of the "notes" edge to the Note entity.
func (m *JobMutation) RemovedNotesIDs() (ids []int) {
	for id := range m.removednotes {
		ids = append(ids, id)
	}
	return
}

// NotesIDs returns the "notes" edge IDs in the mutation.
func (m *JobMutation) NotesIDs() (ids []int) {
	for id := range m.notes {
		ids = append(ids, id)
	}
	return
}

// ResetNotes resets all changes to the "notes" edge.
func (m *JobMutation) ResetNotes() {
	m.notes = nil
	m.clearednotes = false
	m.removednotes = nil
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.site_name != nil {
		fields = append(fields, job.FieldSiteName)
	}
	if m.quote != nil {
		fields = append(fields, job.FieldQuote)
	}
	if m.address != nil {
		fields = append(fields, job.FieldAddress)
	}
	if m.order_no != nil {
		fields = append(fields, job.FieldOrderNo)
	}
	if m.order_period != nil {
		fields = append(fields, job.FieldOrderPeriod)
	}
	if m.area != nil {
		fields = append(fields, job.FieldArea)
	}
	if m.summer_schedule != nil {
		fields = append(fields, job.FieldSummerSchedule)
	}
	if m.winter_schedule != nil {
		fields = append(fields, job.FieldWinterSchedule)
	}
	if m.contact != nil {
		fields = append(fields, job.FieldContact)
	}
	if m.gate_code != nil {
		fields = append(fields, job.FieldGateCode)
	}
	if m.map_link != nil {
		fields = append(fields, job.FieldMapLink)
	}
	if m.assigned_to != nil {
		fields = append(fields, job.FieldAssignedTo)
	}
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.start_time != nil {
		fields = append(fields, job.FieldStartTime)
	}
	if m.finish_time != nil {
		fields = append(fields, job.FieldFinishTime)
	}
	if m.photos != nil {
		fields = append(fields, job.FieldPhotos)
	}
	if m.scheduled_date != nil {
		fields = append(fields, job.FieldScheduledDate)
	}
	if m.priority != nil {
		fields = append(fields, job.FieldPriority)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, job.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldSiteName:
		return m.SiteName()
	case job.FieldQuote:
		return m.Quote()
	case job.FieldAddress:
		return m.Address()
	case job.FieldOrderNo:
		return m.OrderNo()
	case job.FieldOrderPeriod:
		return m.OrderPeriod()
	case job.FieldArea:
		return m.Area()
	case job.FieldSummerSchedule:
		return m.SummerSchedule()
	case job.FieldWinterSchedule:
		return m.WinterSchedule()
	case job.FieldContact:
		return m.Contact()
	case job.FieldGateCode:
		return m.GateCode()
	case job.FieldMapLink:
		return m.MapLink()
	case job.FieldAssignedTo:
		return m.AssignedTo()
	case job.FieldStatus:
		return m.Status()
	case job.FieldStartTime:
		return m.StartTime()
	case job.FieldFinishTime:
		return m.FinishTime()
	case job.FieldPhotos:
		return m.Photos()
	case job.FieldScheduledDate:
		return m.ScheduledDate()
	case job.FieldPriority:
		return m.Priority()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldSiteName:
		return m.OldSiteName(ctx)
	case job.FieldQuote:
		return m.OldQuote(ctx)
	case job.FieldAddress:
		return m.OldAddress(ctx)
	case job.FieldOrderNo:
		return m.OldOrderNo(ctx)
	case job.FieldOrderPeriod:
		return m.OldOrderPeriod(ctx)
	case job.FieldArea:
		return m.OldArea(ctx)
	case job.FieldSummerSchedule:
		return m.OldSummerSchedule(ctx)
	case job.FieldWinterSchedule:
		return m.OldWinterSchedule(ctx)
	case job.FieldContact:
		return m.OldContact(ctx)
	case job.FieldGateCode:
		return m.OldGateCode(ctx)
	case job.FieldMapLink:
		return m.OldMapLink(ctx)
	case job.FieldAssignedTo:
		return m.OldAssignedTo(ctx)
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldStartTime:
		return m.OldStartTime(ctx)
	case job.FieldFinishTime:
		return m.OldFinishTime(ctx)
	case job.FieldPhotos:
		return m.OldPhotos(ctx)
	case job.FieldScheduledDate:
		return m.OldScheduledDate(ctx)
	case job.FieldPriority:
		return m.OldPriority(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldSiteName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSiteName(v)
		return nil
	case job.FieldQuote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuote(v)
		return nil
	case job.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case job.FieldOrderNo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderNo(v)
		return nil
	case job.FieldOrderPeriod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderPeriod(v)
		return nil
	case job.FieldArea:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArea(v)
		return nil
	case job.FieldSummerSchedule:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummerSchedule(v)
		return nil
	case job.FieldWinterSchedule:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWinterSchedule(v)
		return nil
	case job.FieldContact:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContact(v)
		return nil
	case job.FieldGateCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGateCode(v)
		return nil
	case job.FieldMapLink:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMapLink(v)
		return nil
	case job.FieldAssignedTo:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedTo(v)
		return nil
	case job.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case job.FieldFinishTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishTime(v)
		return nil
	case job.FieldPhotos:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhotos(v)
		return nil
	case job.FieldScheduledDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledDate(v)
		return nil
	case job.FieldPriority:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	var fields []string
	if m.addassigned_to != nil {
		fields = append(fields, job.FieldAssignedTo)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case job.FieldAssignedTo:
		return m.AddedAssignedTo()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case job.FieldAssignedTo:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAssignedTo(v)
		return nil
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldQuote) {
		fields = append(fields, job.FieldQuote)
	}
	if m.FieldCleared(job.FieldAddress) {
		fields = append(fields, job.FieldAddress)
	}
	if m.FieldCleared(job.FieldOrderNo) {
		fields = append(fields, job.FieldOrderNo)
	}
	if m.FieldCleared(job.FieldOrderPeriod) {
		fields = append(fields, job.FieldOrderPeriod)
	}
	if m.FieldCleared(job.FieldArea) {
		fields = append(fields, job.FieldArea)
	}
	if m.FieldCleared(job.FieldSummerSchedule) {
		fields = append(fields, job.FieldSummerSchedule)
	}
	if m.FieldCleared(job.FieldWinterSchedule) {
		fields = append(fields, job.FieldWinterSchedule)
	}
	if m.FieldCleared(job.FieldContact) {
		fields = append(fields, job.FieldContact)
	}
	if m.FieldCleared(job.FieldGateCode) {
		fields = append(fields, job.FieldGateCode)
	}
	if m.FieldCleared(job.FieldMapLink) {
		fields = append(fields, job.FieldMapLink)
	}
	if m.FieldCleared(job.FieldAssignedTo) {
		fields = append(fields, job.FieldAssignedTo)
	}
	if m.FieldCleared(job.FieldStartTime) {
		fields = append(fields, job.FieldStartTime)
	}
	if m.FieldCleared(job.FieldFinishTime) {
		fields = append(fields, job.FieldFinishTime)
	}
	if m.FieldCleared(job.FieldPhotos) {
		fields = append(fields, job.FieldPhotos)
	}
	if m.FieldCleared(job.FieldScheduledDate) {
		fields = append(fields, job.FieldScheduledDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldQuote:
		m.ClearQuote()
		return nil
	case job.FieldAddress:
		m.ClearAddress()
		return nil
	case job.FieldOrderNo:
		m.ClearOrderNo()
		return nil
	case job.FieldOrderPeriod:
		m.ClearOrderPeriod()
		return nil
	case job.FieldArea:
		m.ClearArea()
		return nil
	case job.FieldSummerSchedule:
		m.ClearSummerSchedule()
		return nil
	case job.FieldWinterSchedule:
		m.ClearWinterSchedule()
		return nil
	case job.FieldContact:
		m.ClearContact()
		return nil
	case job.FieldGateCode:
		m.ClearGateCode()
		return nil
	case job.FieldMapLink:
		m.ClearMapLink()
		return nil
	case job.FieldAssignedTo:
		m.ClearAssignedTo()
		return nil
	case job.FieldStartTime:
		m.ClearStartTime()
		return nil
	case job.FieldFinishTime:
		m.ClearFinishTime()
		return nil
	case job.FieldPhotos:
		m.ClearPhotos()
		return nil
	case job.FieldScheduledDate:
		m.ClearScheduledDate()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldSiteName:
		m.ResetSiteName()
		return nil
	case job.FieldQuote:
		m.ResetQuote()
		return nil
	case job.FieldAddress:
		m.ResetAddress()
		return nil
	case job.FieldOrderNo:
		m.ResetOrderNo()
		return nil
	case job.FieldOrderPeriod:
		m.ResetOrderPeriod()
		return nil
	case job.FieldArea:
		m.ResetArea()
		return nil
	case job.FieldSummerSchedule:
		m.ResetSummerSchedule()
		return nil
	case job.FieldWinterSchedule:
		m.ResetWinterSchedule()
		return nil
	case job.FieldContact:
		m.ResetContact()
		return nil
	case job.FieldGateCode:
		m.ResetGateCode()
		return nil
	case job.FieldMapLink:
		m.ResetMapLink()
		return nil
	case job.FieldAssignedTo:
		m.ResetAssignedTo()
		return nil
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldStartTime:
		m.ResetStartTime()
		return nil
	case job.FieldFinishTime:
		m.ResetFinishTime()
		return nil
	case job.FieldPhotos:
		m.ResetPhotos()
		return nil
	case job.FieldScheduledDate:
		m.ResetScheduledDate()
		return nil
	case job.FieldPriority:
		m.ResetPriority()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.notes != nil {
		edges = append(edges, job.EdgeNotes)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeNotes:
		ids := make([]ent.Value, 0, len(m.notes))
		for id := range m.notes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removednotes != nil {
		edges = append(edges, job.EdgeNotes)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeNotes:
		ids := make([]ent.Value, 0, len(m.removednotes))
		for id := range m.removednotes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearednotes {
		edges = append(edges, job.EdgeNotes)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	switch name {
	case job.EdgeNotes:
		return m.clearednotes
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	switch name {
	case job.EdgeNotes:
		m.ResetNotes()
		return nil
	}
	return fmt.Errorf("unknown Job edge %s", name)
}

// NoteMutation represents an operation that mutates the Note nodes in the graph.
type NoteMutation struct {
	config
	op            Op
	typ           string
	id            *int
	author_id     *int64
	addauthor_id  *int64
	author_role   *string
	note          *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	job           *int
	clearedjob    bool
	done          bool
	oldValue      func(context.Context) (*Note, error)
	predicates    []predicate.Note
}

var _ ent.Mutation = (*NoteMutation)(nil)

// noteOption allows management of the mutation configuration using functional options.
type noteOption func(*NoteMutation)

// newNoteMutation creates new mutation for the Note entity.
func newNoteMutation(c config, op Op, opts ...noteOption) *NoteMutation {
	m := &NoteMutation{
		config:        c,
		op:            op,
		typ:           TypeNote,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNoteID sets the ID field of the mutation.
func withNoteID(id int) noteOption {
	return func(m *NoteMutation) {
		var (
			err   error
			once  sync.Once
			value *Note
		)
		m.oldValue = func(ctx context.Context) (*Note, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Note.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNote sets the old Note of the mutation.
func withNote(node *Note) noteOption {
	return func(m *NoteMutation) {
		m.oldValue = func(context.Context) (*Note, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NoteMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NoteMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NoteMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NoteMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Note.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *NoteMutation) SetJobID(i int) {
	m.job = &i
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *NoteMutation) JobID() (r int, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the Note entity.
// If the Note object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NoteMutation) OldJobID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *NoteMutation) ResetJobID() {
	m.job = nil
}

// SetAuthorID sets the "author_id" field.
func (m *NoteMutation) SetAuthorID(i int64) {
	m.author_id = &i
	m.addauthor_id = nil
}

// AuthorID returns the value of the "author_id" field in the mutation.
func (m *NoteMutation) AuthorID() (r int64, exists bool) {
	v := m.author_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthorID returns the old "author_id" field's value of the Note entity.
// If the Note object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NoteMutation) OldAuthorID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthorID: %w", err)
	}
	return oldValue.AuthorID, nil
}

// AddAuthorID adds i to the "author_id" field.
func (m *NoteMutation) AddAuthorID(i int64) {
	if m.addauthor_id != nil {
		*m.addauthor_id += i
	} else {
		m.addauthor_id = &i
	}
}

// AddedAuthorID returns the value that was added to the "author_id" field in this mutation.
func (m *NoteMutation) AddedAuthorID() (r int64, exists bool) {
	v := m.addauthor_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetAuthorID resets all changes to the "author_id" field.
func (m *NoteMutation) ResetAuthorID() {
	m.author_id = nil
	m.addauthor_id = nil
}

// SetAuthorRole sets the "author_role" field.
func (m *NoteMutation) SetAuthorRole(s string) {
	m.author_role = &s
}

// AuthorRole returns the value of the "author_role" field in the mutation.
func (m *NoteMutation) AuthorRole() (r string, exists bool) {
	v := m.author_role
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthorRole returns the old "author_role" field's value of the Note entity.
// If the Note object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NoteMutation) OldAuthorRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthorRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthorRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthorRole: %w", err)
	}
	return oldValue.AuthorRole, nil
}

// ResetAuthorRole resets all changes to the "author_role" field.
func (m *NoteMutation) ResetAuthorRole() {
	m.author_role = nil
}

// SetNote sets the "note" field.
func (m *NoteMutation) SetNote(s string) {
	m.note = &s
}

// Note returns the value of the "note" field in the mutation.
func (m *NoteMutation) Note() (r string, exists bool) {
	v := m.note
	if v == nil {
		return
	}
	return *v, true
}

// OldNote returns the old "note" field's value of the Note entity.
// If the Note object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NoteMutation) OldNote(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNote: %w", err)
	}
	return oldValue.Note, nil
}

// ResetNote resets all changes to the "note" field.
func (m *NoteMutation) ResetNote() {
	m.note = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *NoteMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NoteMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Note entity.
// If the Note object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NoteMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NoteMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearJob clears the "job" edge to the Job entity.
func (m *NoteMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[note.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *NoteMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *NoteMutation) JobIDs() (ids []int) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *NoteMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the NoteMutation builder.
func (m *NoteMutation) Where(ps ...predicate.Note) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NoteMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NoteMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Note, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NoteMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NoteMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Note).
func (m *NoteMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NoteMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.job != nil {
		fields = append(fields, note.FieldJobID)
	}
	if m.author_id != nil {
		fields = append(fields, note.FieldAuthorID)
	}
	if m.author_role != nil {
		fields = append(fields, note.FieldAuthorRole)
	}
	if m.note != nil {
		fields = append(fields, note.FieldNote)
	}
	if m.created_at != nil {
		fields = append(fields, note.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NoteMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case note.FieldJobID:
		return m.JobID()
	case note.FieldAuthorID:
		return m.AuthorID()
	case note.FieldAuthorRole:
		return m.AuthorRole()
	case note.FieldNote:
		return m.Note()
	case note.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NoteMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case note.FieldJobID:
		return m.OldJobID(ctx)
	case note.FieldAuthorID:
		return m.OldAuthorID(ctx)
	case note.FieldAuthorRole:
		return m.OldAuthorRole(ctx)
	case note.FieldNote:
		return m.OldNote(ctx)
	case note.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Note field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NoteMutation) SetField(name string, value ent.Value) error {
	switch name {
	case note.FieldJobID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case note.FieldAuthorID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthorID(v)
		return nil
	case note.FieldAuthorRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthorRole(v)
		return nil
	case note.FieldNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNote(v)
		return nil
	case note.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Note field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NoteMutation) AddedFields() []string {
	var fields []string
	if m.addauthor_id != nil {
		fields = append(fields, note.FieldAuthorID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NoteMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case note.FieldAuthorID:
		return m.AddedAuthorID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NoteMutation) AddField(name string, value ent.Value) error {
	switch name {
	case note.FieldAuthorID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAuthorID(v)
		return nil
	}
	return fmt.Errorf("unknown Note numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NoteMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NoteMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NoteMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Note nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NoteMutation) ResetField(name string) error {
	switch name {
	case note.FieldJobID:
		m.ResetJobID()
		return nil
	case note.FieldAuthorID:
		m.ResetAuthorID()
		return nil
	case note.FieldAuthorRole:
		m.ResetAuthorRole()
		return nil
	case note.FieldNote:
		m.ResetNote()
		return nil
	case note.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Note field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NoteMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, note.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NoteMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case note.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NoteMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NoteMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NoteMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, note.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NoteMutation) EdgeCleared(name string) bool {
	switch name {
	case note.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NoteMutation) ClearEdge(name string) error {
	switch name {
	case note.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown Note unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NoteMutation) ResetEdge(name string) error {
	switch name {
	case note.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown Note edge %s", name)
}
