// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/joseph-ayodele/mowbot/gen/ent/job"
	"github.com/joseph-ayodele/mowbot/gen/ent/note"
	"github.com/joseph-ayodele/mowbot/gen/ent/predicate"
)

// JobUpdate is the builder for updating Job entities.
type JobUpdate struct {
	config
	hooks    []Hook
	mutation *JobMutation
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdate) Where(ps ...predicate.Job) *JobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSiteName sets the "site_name" field.
func (_u *JobUpdate) SetSiteName(v string) *JobUpdate {
	_u.mutation.SetSiteName(v)
	return _u
}

// SetNillableSiteName sets the "site_name" field if the given value is not nil.
func (_u *JobUpdate) SetNillableSiteName(v *string) *JobUpdate {
	if v != nil {
		_u.SetSiteName(*v)
	}
	return _u
}

// SetQuote sets the "quote" field.
func (_u *JobUpdate) SetQuote(v string) *JobUpdate {
	_u.mutation.SetQuote(v)
	return _u
}

// SetNillableQuote sets the "quote" field if the given value is not nil.
func (_u *JobUpdate) SetNillableQuote(v *string) *JobUpdate {
	if v != nil {
		_u.SetQuote(*v)
	}
	return _u
}

// ClearQuote clears the value of the "quote" field.
func (_u *JobUpdate) ClearQuote() *JobUpdate {
	_u.mutation.ClearQuote()
	return _u
}

// SetAddress sets the "address" field.
func (_u *JobUpdate) SetAddress(v string) *JobUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *JobUpdate) SetNillableAddress(v *string) *JobUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *JobUpdate) ClearAddress() *JobUpdate {
	_u.mutation.ClearAddress()
	return _u
}

// SetOrderNo sets the "order_no" field.
func (_u *JobUpdate) SetOrderNo(v string) *JobUpdate {
	_u.mutation.SetOrderNo(v)
	return _u
}

// SetNillableOrderNo sets the "order_no" field if the given value is not nil.
func (_u *JobUpdate) SetNillableOrderNo(v *string) *JobUpdate {
	if v != nil {
		_u.SetOrderNo(*v)
	}
	return _u
}

// ClearOrderNo clears the value of the "order_no" field.
func (_u *JobUpdate) ClearOrderNo() *JobUpdate {
	_u.mutation.ClearOrderNo()
	return _u
}

// SetOrderPeriod sets the "order_period" field.
func (_u *JobUpdate) SetOrderPeriod(v string) *JobUpdate {
	_u.mutation.SetOrderPeriod(v)
	return _u
}

// SetNillableOrderPeriod sets the "order_period" field if the given value is not nil.
func (_u *JobUpdate) SetNillableOrderPeriod(v *string) *JobUpdate {
	if v != nil {
		_u.SetOrderPeriod(*v)
	}
	return _u
}

// ClearOrderPeriod clears the value of the "order_period" field.
func (_u *JobUpdate) ClearOrderPeriod() *JobUpdate {
	_u.mutation.ClearOrderPeriod()
	return _u
}

// SetArea sets the "area" field.
func (_u *JobUpdate) SetArea(v string) *JobUpdate {
	_u.mutation.SetArea(v)
	return _u
}

// SetNillableArea sets the "area" field if the given value is not nil.
func (_u *JobUpdate) SetNillableArea(v *string) *JobUpdate {
	if v != nil {
		_u.SetArea(*v)
	}
	return _u
}

// ClearArea clears the value of the "area" field.
func (_u *JobUpdate) ClearArea() *JobUpdate {
	_u.mutation.ClearArea()
	return _u
}

// SetSummerSchedule sets the "summer_schedule" field.
func (_u *JobUpdate) SetSummerSchedule(v string) *JobUpdate {
	_u.mutation.SetSummerSchedule(v)
	return _u
}

// SetNillableSummerSchedule sets the "summer_schedule" field if the given value is not nil.
func (_u *JobUpdate) SetNillableSummerSchedule(v *string) *JobUpdate {
	if v != nil {
		_u.SetSummerSchedule(*v)
	}
	return _u
}

// ClearSummerSchedule clears the value of the "summer_schedule" field.
func (_u *JobUpdate) ClearSummerSchedule() *JobUpdate {
	_u.mutation.ClearSummerSchedule()
	return _u
}

// SetWinterSchedule sets the "winter_schedule" field.
func (_u *JobUpdate) SetWinterSchedule(v string) *JobUpdate {
	_u.mutation.SetWinterSchedule(v)
	return _u
}

// SetNillableWinterSchedule sets the "winter_schedule" field if the given value is not nil.
func (_u *JobUpdate) SetNillableWinterSchedule(v *string) *JobUpdate {
	if v != nil {
		_u.SetWinterSchedule(*v)
	}
	return _u
}

// ClearWinterSchedule clears the value of the "winter_schedule" field.
func (_u *JobUpdate) ClearWinterSchedule() *JobUpdate {
	_u.mutation.ClearWinterSchedule()
	return _u
}

// SetContact sets the "contact" field.
func (_u *JobUpdate) SetContact(v string) *JobUpdate {
	_u.mutation.SetContact(v)
	return _u
}

// SetNillableContact sets the "contact" field if the given value is not nil.
func (_u *JobUpdate) SetNillableContact(v *string) *JobUpdate {
	if v != nil {
		_u.SetContact(*v)
	}
	return _u
}

// ClearContact clears the value of the "contact" field.
func (_u *JobUpdate) ClearContact() *JobUpdate {
	_u.mutation.ClearContact()
	return _u
}

// SetGateCode sets the "gate_code" field.
func (_u *JobUpdate) SetGateCode(v string) *JobUpdate {
	_u.mutation.SetGateCode(v)
	return _u
}

// SetNillableGateCode sets the "gate_code" field if the given value is not nil.
func (_u *JobUpdate) SetNillableGateCode(v *string) *JobUpdate {
	if v != nil {
		_u.SetGateCode(*v)
	}
	return _u
}

// ClearGateCode clears the value of the "gate_code" field.
func (_u *JobUpdate) ClearGateCode() *JobUpdate {
	_u.mutation.ClearGateCode()
	return _u
}

// SetMapLink sets the "map_link" field.
func (_u *JobUpdate) SetMapLink(v string) *JobUpdate {
	_u.mutation.SetMapLink(v)
	return _u
}

// SetNillableMapLink sets the "map_link" field if the given value is not nil.
func (_u *JobUpdate) SetNillableMapLink(v *string) *JobUpdate {
	if v != nil {
		_u.SetMapLink(*v)
	}
	return _u
}

// ClearMapLink clears the value of the "map_link" field.
func (_u *JobUpdate) ClearMapLink() *JobUpdate {
	_u.mutation.ClearMapLink()
	return _u
}

// SetAssignedTo sets the "assigned_to" field.
func (_u *JobUpdate) SetAssignedTo(v int64) *JobUpdate {
	_u.mutation.ResetAssignedTo()
	_u.mutation.SetAssignedTo(v)
	return _u
}

// SetNillableAssignedTo sets the "assigned_to" field if the given value is not nil.
func (_u *JobUpdate) SetNillableAssignedTo(v *int64) *JobUpdate {
	if v != nil {
		_u.SetAssignedTo(*v)
	}
	return _u
}

// AddAssignedTo adds value to the "assigned_to" field.
func (_u *JobUpdate) AddAssignedTo(v int64) *JobUpdate {
	_u.mutation.AddAssignedTo(v)
	return _u
}

// ClearAssignedTo clears the value of the "assigned_to" field.
func (_u *JobUpdate) ClearAssignedTo() *JobUpdate {
	_u.mutation.ClearAssignedTo()
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdate) SetStatus(v string) *JobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStatus(v *string) *JobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *JobUpdate) SetStartTime(v time.Time) *JobUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStartTime(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// ClearStartTime clears the value of the "start_time" field.
func (_u *JobUpdate) ClearStartTime() *JobUpdate {
	_u.mutation.ClearStartTime()
	return _u
}

// SetFinishTime sets the "finish_time" field.
func (_u *JobUpdate) SetFinishTime(v time.Time) *JobUpdate {
	_u.mutation.SetFinishTime(v)
	return _u
}

// SetNillableFinishTime sets the "finish_time" field if the given value is not nil.
func (_u *JobUpdate) SetNillableFinishTime(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetFinishTime(*v)
	}
	return _u
}

// ClearFinishTime clears the value of the "finish_time" field.
func (_u *JobUpdate) ClearFinishTime() *JobUpdate {
	_u.mutation.ClearFinishTime()
	return _u
}

// SetPhotos sets the "photos" field.
func (_u *JobUpdate) SetPhotos(v []string) *JobUpdate {
	_u.mutation.SetPhotos(v)
	return _u
}

// AppendPhotos appends value to the "photos" field.
func (_u *JobUpdate) AppendPhotos(v []string) *JobUpdate {
	_u.mutation.AppendPhotos(v)
	return _u
}

// ClearPhotos clears the value of the "photos" field.
func (_u *JobUpdate) ClearPhotos() *JobUpdate {
	_u.mutation.ClearPhotos()
	return _u
}

// SetScheduledDate sets the "scheduled_date" field.
func (_u *JobUpdate) SetScheduledDate(v string) *JobUpdate {
	_u.mutation.SetScheduledDate(v)
	return _u
}

// SetNillableScheduledDate sets the "scheduled_date" field if the given value is not nil.
func (_u *JobUpdate) SetNillableScheduledDate(v *string) *JobUpdate {
	if v != nil {
		_u.SetScheduledDate(*v)
	}
	return _u
}

// ClearScheduledDate clears the value of the "scheduled_date" field.
func (_u *JobUpdate) ClearScheduledDate() *JobUpdate {
	_u.mutation.ClearScheduledDate()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *JobUpdate) SetPriority(v string) *JobUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *JobUpdate) SetNillablePriority(v *string) *JobUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *JobUpdate) SetCreatedAt(v time.Time) *JobUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCreatedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobUpdate) SetUpdatedAt(v time.Time) *JobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddNoteIDs adds the "notes" edge to the Note entity by IDs.
func (_u *JobUpdate) AddNoteIDs(ids ...int) *JobUpdate {
	_u.mutation.AddNoteIDs(ids...)
	return _u
}

// AddNotes adds the "notes" edges to the Note entity.
func (_u *JobUpdate) AddNotes(v ...*Note) *JobUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNoteIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdate) Mutation() *JobMutation {
	return _u.mutation
}

// ClearNotes clears all "notes" edges to the Note entity.
func (_u *JobUpdate) ClearNotes() *JobUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// RemoveNoteIDs removes the "notes" edge to Note entities by IDs.
func (_u *JobUpdate) RemoveNoteIDs(ids ...int) *JobUpdate {
	_u.mutation.RemoveNoteIDs(ids...)
	return _u
}

// RemoveNotes removes "notes" edges to Note entities.
func (_u *JobUpdate) RemoveNotes(v ...*Note) *JobUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNoteIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := job.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdate) check() error {
	if v, ok := _u.mutation.SiteName(); ok {
		if err := job.SiteNameValidator(v); err != nil {
			return &ValidationError{Name: "site_name", err: fmt.Errorf(`ent: validator failed for field "Job.site_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SiteName(); ok {
		_spec.SetField(job.FieldSiteName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quote(); ok {
		_spec.SetField(job.FieldQuote, field.TypeString, value)
	}
	if _u.mutation.QuoteCleared() {
		_spec.ClearField(job.FieldQuote, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(job.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(job.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.OrderNo(); ok {
		_spec.SetField(job.FieldOrderNo, field.TypeString, value)
	}
	if _u.mutation.OrderNoCleared() {
		_spec.ClearField(job.FieldOrderNo, field.TypeString)
	}
	if value, ok := _u.mutation.OrderPeriod(); ok {
		_spec.SetField(job.FieldOrderPeriod, field.TypeString, value)
	}
	if _u.mutation.OrderPeriodCleared() {
		_spec.ClearField(job.FieldOrderPeriod, field.TypeString)
	}
	if value, ok := _u.mutation.Area(); ok {
		_spec.SetField(job.FieldArea, field.TypeString, value)
	}
	if _u.mutation.AreaCleared() {
		_spec.ClearField(job.FieldArea, field.TypeString)
	}
	if value, ok := _u.mutation.SummerSchedule(); ok {
		_spec.SetField(job.FieldSummerSchedule, field.TypeString, value)
	}
	if _u.mutation.SummerScheduleCleared() {
		_spec.ClearField(job.FieldSummerSchedule, field.TypeString)
	}
	if value, ok := _u.mutation.WinterSchedule(); ok {
		_spec.SetField(job.FieldWinterSchedule, field.TypeString, value)
	}
	if _u.mutation.WinterScheduleCleared() {
		_spec.ClearField(job.FieldWinterSchedule, field.TypeString)
	}
	if value, ok := _u.mutation.Contact(); ok {
		_spec.SetField(job.FieldContact, field.TypeString, value)
	}
	if _u.mutation.ContactCleared() {
		_spec.ClearField(job.FieldContact, field.TypeString)
	}
	if value, ok := _u.mutation.GateCode(); ok {
		_spec.SetField(job.FieldGateCode, field.TypeString, value)
	}
	if _u.mutation.GateCodeCleared() {
		_spec.ClearField(job.FieldGateCode, field.TypeString)
	}
	if value, ok := _u.mutation.MapLink(); ok {
		_spec.SetField(job.FieldMapLink, field.TypeString, value)
	}
	if _u.mutation.MapLinkCleared() {
		_spec.ClearField(job.FieldMapLink, field.TypeString)
	}
	if value, ok := _u.mutation.AssignedTo(); ok {
		_spec.SetField(job.FieldAssignedTo, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAssignedTo(); ok {
		_spec.AddField(job.FieldAssignedTo, field.TypeInt64, value)
	}
	if _u.mutation.AssignedToCleared() {
		_spec.ClearField(job.FieldAssignedTo, field.TypeInt64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(job.FieldStartTime, field.TypeTime, value)
	}
	if _u.mutation.StartTimeCleared() {
		_spec.ClearField(job.FieldStartTime, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishTime(); ok {
		_spec.SetField(job.FieldFinishTime, field.TypeTime, value)
	}
	if _u.mutation.FinishTimeCleared() {
		_spec.ClearField(job.FieldFinishTime, field.TypeTime)
	}
	if value, ok := _u.mutation.Photos(); ok {
		_spec.SetField(job.FieldPhotos, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPhotos(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldPhotos, value)
		})
	}
	if _u.mutation.PhotosCleared() {
		_spec.ClearField(job.FieldPhotos, field.TypeJSON)
	}
	if value, ok := _u.mutation.ScheduledDate(); ok {
		_spec.SetField(job.FieldScheduledDate, field.TypeString, value)
	}
	if _u.mutation.ScheduledDateCleared() {
		_spec.ClearField(job.FieldScheduledDate, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(job.FieldPriority, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.NotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.NotesTable,
			Columns: []string{job.NotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(note.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNotesIDs(); len(nodes) > 0 && !_u.mutation.NotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.NotesTable,
			Columns: []string{job.NotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(note.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NotesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.NotesTable,
			Columns: []string{job.NotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(note.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobUpdateOne is the builder for updating a single Job entity.
type JobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobMutation
}

// SetSiteName sets the "site_name" field.
func (_u *JobUpdateOne) SetSiteName(v string) *JobUpdateOne {
	_u.mutation.SetSiteName(v)
	return _u
}

// SetNillableSiteName sets the "site_name" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableSiteName(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetSiteName(*v)
	}
	return _u
}

// SetQuote sets the "quote" field.
func (_u *JobUpdateOne) SetQuote(v string) *JobUpdateOne {
	_u.mutation.SetQuote(v)
	return _u
}

// SetNillableQuote sets the "quote" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableQuote(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetQuote(*v)
	}
	return _u
}

// ClearQuote clears the value of the "quote" field.
func (_u *JobUpdateOne) ClearQuote() *JobUpdateOne {
	_u.mutation.ClearQuote()
	return _u
}

// SetAddress sets the "address" field.
func (_u *JobUpdateOne) SetAddress(v string) *JobUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableAddress(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *JobUpdateOne) ClearAddress() *JobUpdateOne {
	_u.mutation.ClearAddress()
	return _u
}

// SetOrderNo sets the "order_no" field.
func (_u *JobUpdateOne) SetOrderNo(v string) *JobUpdateOne {
	_u.mutation.SetOrderNo(v)
	return _u
}

// SetNillableOrderNo sets the "order_no" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableOrderNo(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetOrderNo(*v)
	}
	return _u
}

// ClearOrderNo clears the value of the "order_no" field.
func (_u *JobUpdateOne) ClearOrderNo() *JobUpdateOne {
	_u.mutation.ClearOrderNo()
	return _u
}

// SetOrderPeriod sets the "order_period" field.
func (_u *JobUpdateOne) SetOrderPeriod(v string) *JobUpdateOne {
	_u.mutation.SetOrderPeriod(v)
	return _u
}

// SetNillableOrderPeriod sets the "order_period" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableOrderPeriod(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetOrderPeriod(*v)
	}
	return _u
}

// ClearOrderPeriod clears the value of the "order_period" field.
func (_u *JobUpdateOne) ClearOrderPeriod() *JobUpdateOne {
	_u.mutation.ClearOrderPeriod()
	return _u
}

// SetArea sets the "area" field.
func (_u *JobUpdateOne) SetArea(v string) *JobUpdateOne {
	_u.mutation.SetArea(v)
	return _u
}

// SetNillableArea sets the "area" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableArea(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetArea(*v)
	}
	return _u
}

// ClearArea clears the value of the "area" field.
func (_u *JobUpdateOne) ClearArea() *JobUpdateOne {
	_u.mutation.ClearArea()
	return _u
}

// SetSummerSchedule sets the "summer_schedule" field.
func (_u *JobUpdateOne) SetSummerSchedule(v string) *JobUpdateOne {
	_u.mutation.SetSummerSchedule(v)
	return _u
}

// SetNillableSummerSchedule sets the "summer_schedule" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableSummerSchedule(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetSummerSchedule(*v)
	}
	return _u
}

// ClearSummerSchedule clears the value of the "summer_schedule" field.
func (_u *JobUpdateOne) ClearSummerSchedule() *JobUpdateOne {
	_u.mutation.ClearSummerSchedule()
	return _u
}

// SetWinterSchedule sets the "winter_schedule" field.
func (_u *JobUpdateOne) SetWinterSchedule(v string) *JobUpdateOne {
	_u.mutation.SetWinterSchedule(v)
	return _u
}

// SetNillableWinterSchedule sets the "winter_schedule" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableWinterSchedule(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetWinterSchedule(*v)
	}
	return _u
}

// ClearWinterSchedule clears the value of the "winter_schedule" field.
func (_u *JobUpdateOne) ClearWinterSchedule() *JobUpdateOne {
	_u.mutation.ClearWinterSchedule()
	return _u
}

// SetContact sets the "contact" field.
func (_u *JobUpdateOne) SetContact(v string) *JobUpdateOne {
	_u.mutation.SetContact(v)
	return _u
}

// SetNillableContact sets the "contact" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableContact(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetContact(*v)
	}
	return _u
}

// ClearContact clears the value of the "contact" field.
func (_u *JobUpdateOne) ClearContact() *JobUpdateOne {
	_u.mutation.ClearContact()
	return _u
}

// SetGateCode sets the "gate_code" field.
func (_u *JobUpdateOne) SetGateCode(v string) *JobUpdateOne {
	_u.mutation.SetGateCode(v)
	return _u
}

// SetNillableGateCode sets the "gate_code" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableGateCode(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetGateCode(*v)
	}
	return _u
}

// ClearGateCode clears the value of the "gate_code" field.
func (_u *JobUpdateOne) ClearGateCode() *JobUpdateOne {
	_u.mutation.ClearGateCode()
	return _u
}

// SetMapLink sets the "map_link" field.
func (_u *JobUpdateOne) SetMapLink(v string) *JobUpdateOne {
	_u.mutation.SetMapLink(v)
	return _u
}

// SetNillableMapLink sets the "map_link" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableMapLink(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetMapLink(*v)
	}
	return _u
}

// ClearMapLink clears the value of the "map_link" field.
func (_u *JobUpdateOne) ClearMapLink() *JobUpdateOne {
	_u.mutation.ClearMapLink()
	return _u
}

// SetAssignedTo sets the "assigned_to" field.
func (_u *JobUpdateOne) SetAssignedTo(v int64) *JobUpdateOne {
	_u.mutation.ResetAssignedTo()
	_u.mutation.SetAssignedTo(v)
	return _u
}

// SetNillableAssignedTo sets the "assigned_to" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableAssignedTo(v *int64) *JobUpdateOne {
	if v != nil {
		_u.SetAssignedTo(*v)
	}
	return _u
}

// AddAssignedTo adds value to the "assigned_to" field.
func (_u *JobUpdateOne) AddAssignedTo(v int64) *JobUpdateOne {
	_u.mutation.AddAssignedTo(v)
	return _u
}

// ClearAssignedTo clears the value of the "assigned_to" field.
func (_u *JobUpdateOne) ClearAssignedTo() *JobUpdateOne {
	_u.mutation.ClearAssignedTo()
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdateOne) SetStatus(v string) *JobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStatus(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *JobUpdateOne) SetStartTime(v time.Time) *JobUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStartTime(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// ClearStartTime clears the value of the "start_time" field.
func (_u *JobUpdateOne) ClearStartTime() *JobUpdateOne {
	_u.mutation.ClearStartTime()
	return _u
}

// SetFinishTime sets the "finish_time" field.
func (_u *JobUpdateOne) SetFinishTime(v time.Time) *JobUpdateOne {
	_u.mutation.SetFinishTime(v)
	return _u
}

// SetNillableFinishTime sets the "finish_time" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableFinishTime(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetFinishTime(*v)
	}
	return _u
}

// ClearFinishTime clears the value of the "finish_time" field.
func (_u *JobUpdateOne) ClearFinishTime() *JobUpdateOne {
	_u.mutation.ClearFinishTime()
	return _u
}

// SetPhotos sets the "photos" field.
func (_u *JobUpdateOne) SetPhotos(v []string) *JobUpdateOne {
	_u.mutation.SetPhotos(v)
	return _u
}

// AppendPhotos appends value to the "photos" field.
func (_u *JobUpdateOne) AppendPhotos(v []string) *JobUpdateOne {
	_u.mutation.AppendPhotos(v)
	return _u
}

// ClearPhotos clears the value of the "photos" field.
func (_u *JobUpdateOne) ClearPhotos() *JobUpdateOne {
	_u.mutation.ClearPhotos()
	return _u
}

// SetScheduledDate sets the "scheduled_date" field.
func (_u *JobUpdateOne) SetScheduledDate(v string) *JobUpdateOne {
	_u.mutation.SetScheduledDate(v)
	return _u
}

// SetNillableScheduledDate sets the "scheduled_date" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableScheduledDate(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetScheduledDate(*v)
	}
	return _u
}

// ClearScheduledDate clears the value of the "scheduled_date" field.
func (_u *JobUpdateOne) ClearScheduledDate() *JobUpdateOne {
	_u.mutation.ClearScheduledDate()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *JobUpdateOne) SetPriority(v string) *JobUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillablePriority(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *JobUpdateOne) SetCreatedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCreatedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobUpdateOne) SetUpdatedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddNoteIDs adds the "notes" edge to the Note entity by IDs.
func (_u *JobUpdateOne) AddNoteIDs(ids ...int) *JobUpdateOne {
	_u.mutation.AddNoteIDs(ids...)
	return _u
}

// AddNotes adds the "notes" edges to the Note entity.
func (_u *JobUpdateOne) AddNotes(v ...*Note) *JobUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNoteIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdateOne) Mutation() *JobMutation {
	return _u.mutation
}

// ClearNotes clears all "notes" edges to the Note entity.
func (_u *JobUpdateOne) ClearNotes() *JobUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// RemoveNoteIDs removes the "notes" edge to Note entities by IDs.
func (_u *JobUpdateOne) RemoveNoteIDs(ids ...int) *JobUpdateOne {
	_u.mutation.RemoveNoteIDs(ids...)
	return _u
}

// RemoveNotes removes "notes" edges to Note entities.
func (_u *JobUpdateOne) RemoveNotes(v ...*Note) *JobUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNoteIDs(ids...)
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdateOne) Where(ps ...predicate.Job) *JobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobUpdateOne) Select(field string, fields ...string) *JobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Job entity.
func (_u *JobUpdateOne) Save(ctx context.Context) (*Job, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdateOne) SaveX(ctx context.Context) *Job {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := job.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdateOne) check() error {
	if v, ok := _u.mutation.SiteName(); ok {
		if err := job.SiteNameValidator(v); err != nil {
			return &ValidationError{Name: "site_name", err: fmt.Errorf(`ent: validator failed for field "Job.site_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdateOne) sqlSave(ctx context.Context) (_node *Job, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Job.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, job.FieldID)
		for _, f := range fields {
			if !job.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != job.FieldID {
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
	if value, ok := _u.mutation.SiteName(); ok {
		_spec.SetField(job.FieldSiteName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quote(); ok {
		_spec.SetField(job.FieldQuote, field.TypeString, value)
	}
	if _u.mutation.QuoteCleared() {
		_spec.ClearField(job.FieldQuote, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(job.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(job.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.OrderNo(); ok {
		_spec.SetField(job.FieldOrderNo, field.TypeString, value)
	}
	if _u.mutation.OrderNoCleared() {
		_spec.ClearField(job.FieldOrderNo, field.TypeString)
	}
	if value, ok := _u.mutation.OrderPeriod(); ok {
		_spec.SetField(job.FieldOrderPeriod, field.TypeString, value)
	}
	if _u.mutation.OrderPeriodCleared() {
		_spec.ClearField(job.FieldOrderPeriod, field.TypeString)
	}
	if value, ok := _u.mutation.Area(); ok {
		_spec.SetField(job.FieldArea, field.TypeString, value)
	}
	if _u.mutation.AreaCleared() {
		_spec.ClearField(job.FieldArea, field.TypeString)
	}
	if value, ok := _u.mutation.SummerSchedule(); ok {
		_spec.SetField(job.FieldSummerSchedule, field.TypeString, value)
	}
	if _u.mutation.SummerScheduleCleared() {
		_spec.ClearField(job.FieldSummerSchedule, field.TypeString)
	}
	if value, ok := _u.mutation.WinterSchedule(); ok {
		_spec.SetField(job.FieldWinterSchedule, field.TypeString, value)
	}
	if _u.mutation.WinterScheduleCleared() {
		_spec.ClearField(job.FieldWinterSchedule, field.TypeString)
	}
	if value, ok := _u.mutation.Contact(); ok {
		_spec.SetField(job.FieldContact, field.TypeString, value)
	}
	if _u.mutation.ContactCleared() {
		_spec.ClearField(job.FieldContact, field.TypeString)
	}
	if value, ok := _u.mutation.GateCode(); ok {
		_spec.SetField(job.FieldGateCode, field.TypeString, value)
	}
	if _u.mutation.GateCodeCleared() {
		_spec.ClearField(job.FieldGateCode, field.TypeString)
	}
	if value, ok := _u.mutation.MapLink(); ok {
		_spec.SetField(job.FieldMapLink, field.TypeString, value)
	}
	if _u.mutation.MapLinkCleared() {
		_spec.ClearField(job.FieldMapLink, field.TypeString)
	}
	if value, ok := _u.mutation.AssignedTo(); ok {
		_spec.SetField(job.FieldAssignedTo, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAssignedTo(); ok {
		_spec.AddField(job.FieldAssignedTo, field.TypeInt64, value)
	}
	if _u.mutation.AssignedToCleared() {
		_spec.ClearField(job.FieldAssignedTo, field.TypeInt64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(job.FieldStartTime, field.TypeTime, value)
	}
	if _u.mutation.StartTimeCleared() {
		_spec.ClearField(job.FieldStartTime, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishTime(); ok {
		_spec.SetField(job.FieldFinishTime, field.TypeTime, value)
	}
	if _u.mutation.FinishTimeCleared() {
		_spec.ClearField(job.FieldFinishTime, field.TypeTime)
	}
	if value, ok := _u.mutation.Photos(); ok {
		_spec.SetField(job.FieldPhotos, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPhotos(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldPhotos, value)
		})
	}
	if _u.mutation.PhotosCleared() {
		_spec.ClearField(job.FieldPhotos, field.TypeJSON)
	}
	if value, ok := _u.mutation.ScheduledDate(); ok {
		_spec.SetField(job.FieldScheduledDate, field.TypeString, value)
	}
	if _u.mutation.ScheduledDateCleared() {
		_spec.ClearField(job.FieldScheduledDate, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(job.FieldPriority, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.NotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.NotesTable,
			Columns: []string{job.NotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(note.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNotesIDs(); len(nodes) > 0 && !_u.mutation.NotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.NotesTable,
			Columns: []string{job.NotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(note.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NotesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.NotesTable,
			Columns: []string{job.NotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(note.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Job{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
