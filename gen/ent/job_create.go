// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/joseph-ayodele/mowbot/gen/ent/job"
	"github.com/joseph-ayodele/mowbot/gen/ent/note"
)

// JobCreate is the builder for creating a Job entity.
type JobCreate struct {
	config
	mutation *JobMutation
	hooks    []Hook
}

// SetSiteName sets the "site_name" field.
func (_c *JobCreate) SetSiteName(v string) *JobCreate {
	_c.mutation.SetSiteName(v)
	return _c
}

// SetQuote sets the "quote" field.
func (_c *JobCreate) SetQuote(v string) *JobCreate {
	_c.mutation.SetQuote(v)
	return _c
}

// SetNillableQuote sets the "quote" field if the given value is not nil.
func (_c *JobCreate) SetNillableQuote(v *string) *JobCreate {
	if v != nil {
		_c.SetQuote(*v)
	}
	return _c
}

// SetAddress sets the "address" field.
func (_c *JobCreate) SetAddress(v string) *JobCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *JobCreate) SetNillableAddress(v *string) *JobCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetOrderNo sets the "order_no" field.
func (_c *JobCreate) SetOrderNo(v string) *JobCreate {
	_c.mutation.SetOrderNo(v)
	return _c
}

// SetNillableOrderNo sets the "order_no" field if the given value is not nil.
func (_c *JobCreate) SetNillableOrderNo(v *string) *JobCreate {
	if v != nil {
		_c.SetOrderNo(*v)
	}
	return _c
}

// SetOrderPeriod sets the "order_period" field.
func (_c *JobCreate) SetOrderPeriod(v string) *JobCreate {
	_c.mutation.SetOrderPeriod(v)
	return _c
}

// SetNillableOrderPeriod sets the "order_period" field if the given value is not nil.
func (_c *JobCreate) SetNillableOrderPeriod(v *string) *JobCreate {
	if v != nil {
		_c.SetOrderPeriod(*v)
	}
	return _c
}

// SetArea sets the "area" field.
func (_c *JobCreate) SetArea(v string) *JobCreate {
	_c.mutation.SetArea(v)
	return _c
}

// SetNillableArea sets the "area" field if the given value is not nil.
func (_c *JobCreate) SetNillableArea(v *string) *JobCreate {
	if v != nil {
		_c.SetArea(*v)
	}
	return _c
}

// SetSummerSchedule sets the "summer_schedule" field.
func (_c *JobCreate) SetSummerSchedule(v string) *JobCreate {
	_c.mutation.SetSummerSchedule(v)
	return _c
}

// SetNillableSummerSchedule sets the "summer_schedule" field if the given value is not nil.
func (_c *JobCreate) SetNillableSummerSchedule(v *string) *JobCreate {
	if v != nil {
		_c.SetSummerSchedule(*v)
	}
	return _c
}

// SetWinterSchedule sets the "winter_schedule" field.
func (_c *JobCreate) SetWinterSchedule(v string) *JobCreate {
	_c.mutation.SetWinterSchedule(v)
	return _c
}

// SetNillableWinterSchedule sets the "winter_schedule" field if the given value is not nil.
func (_c *JobCreate) SetNillableWinterSchedule(v *string) *JobCreate {
	if v != nil {
		_c.SetWinterSchedule(*v)
	}
	return _c
}

// SetContact sets the "contact" field.
func (_c *JobCreate) SetContact(v string) *JobCreate {
	_c.mutation.SetContact(v)
	return _c
}

// SetNillableContact sets the "contact" field if the given value is not nil.
func (_c *JobCreate) SetNillableContact(v *string) *JobCreate {
	if v != nil {
		_c.SetContact(*v)
	}
	return _c
}

// SetGateCode sets the "gate_code" field.
func (_c *JobCreate) SetGateCode(v string) *JobCreate {
	_c.mutation.SetGateCode(v)
	return _c
}

// SetNillableGateCode sets the "gate_code" field if the given value is not nil.
func (_c *JobCreate) SetNillableGateCode(v *string) *JobCreate {
	if v != nil {
		_c.SetGateCode(*v)
	}
	return _c
}

// SetMapLink sets the "map_link" field.
func (_c *JobCreate) SetMapLink(v string) *JobCreate {
	_c.mutation.SetMapLink(v)
	return _c
}

// SetNillableMapLink sets the "map_link" field if the given value is not nil.
func (_c *JobCreate) SetNillableMapLink(v *string) *JobCreate {
	if v != nil {
		_c.SetMapLink(*v)
	}
	return _c
}

// SetAssignedTo sets the "assigned_to" field.
func (_c *JobCreate) SetAssignedTo(v int64) *JobCreate {
	_c.mutation.SetAssignedTo(v)
	return _c
}

// SetNillableAssignedTo sets the "assigned_to" field if the given value is not nil.
func (_c *JobCreate) SetNillableAssignedTo(v *int64) *JobCreate {
	if v != nil {
		_c.SetAssignedTo(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *JobCreate) SetStatus(v string) *JobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *JobCreate) SetNillableStatus(v *string) *JobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *JobCreate) SetStartTime(v time.Time) *JobCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_c *JobCreate) SetNillableStartTime(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetStartTime(*v)
	}
	return _c
}

// SetFinishTime sets the "finish_time" field.
func (_c *JobCreate) SetFinishTime(v time.Time) *JobCreate {
	_c.mutation.SetFinishTime(v)
	return _c
}

// SetNillableFinishTime sets the "finish_time" field if the given value is not nil.
func (_c *JobCreate) SetNillableFinishTime(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetFinishTime(*v)
	}
	return _c
}

// SetPhotos sets the "photos" field.
func (_c *JobCreate) SetPhotos(v []string) *JobCreate {
	_c.mutation.SetPhotos(v)
	return _c
}

// SetScheduledDate sets the "scheduled_date" field.
func (_c *JobCreate) SetScheduledDate(v string) *JobCreate {
	_c.mutation.SetScheduledDate(v)
	return _c
}

// SetNillableScheduledDate sets the "scheduled_date" field if the given value is not nil.
func (_c *JobCreate) SetNillableScheduledDate(v *string) *JobCreate {
	if v != nil {
		_c.SetScheduledDate(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *JobCreate) SetPriority(v string) *JobCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *JobCreate) SetNillablePriority(v *string) *JobCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *JobCreate) SetCreatedAt(v time.Time) *JobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableCreatedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *JobCreate) SetUpdatedAt(v time.Time) *JobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableUpdatedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddNoteIDs adds the "notes" edge to the Note entity by IDs.
func (_c *JobCreate) AddNoteIDs(ids ...int) *JobCreate {
	_c.mutation.AddNoteIDs(ids...)
	return _c
}

// AddNotes adds the "notes" edges to the Note entity.
func (_c *JobCreate) AddNotes(v ...*Note) *JobCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddNoteIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_c *JobCreate) Mutation() *JobMutation {
	return _c.mutation
}

// Save creates the Job in the database.
func (_c *JobCreate) Save(ctx context.Context) (*Job, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobCreate) SaveX(ctx context.Context) *Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := job.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := job.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := job.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := job.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobCreate) check() error {
	if _, ok := _c.mutation.SiteName(); !ok {
		return &ValidationError{Name: "site_name", err: errors.New(`ent: missing required field "Job.site_name"`)}
	}
	if v, ok := _c.mutation.SiteName(); ok {
		if err := job.SiteNameValidator(v); err != nil {
			return &ValidationError{Name: "site_name", err: fmt.Errorf(`ent: validator failed for field "Job.site_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Job.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Job.priority"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Job.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Job.updated_at"`)}
	}
	return nil
}

func (_c *JobCreate) sqlSave(ctx context.Context) (*Job, error) {
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

func (_c *JobCreate) createSpec() (*Job, *sqlgraph.CreateSpec) {
	var (
		_node = &Job{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(job.Table, sqlgraph.NewFieldSpec(job.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SiteName(); ok {
		_spec.SetField(job.FieldSiteName, field.TypeString, value)
		_node.SiteName = value
	}
	if value, ok := _c.mutation.Quote(); ok {
		_spec.SetField(job.FieldQuote, field.TypeString, value)
		_node.Quote = &value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(job.FieldAddress, field.TypeString, value)
		_node.Address = &value
	}
	if value, ok := _c.mutation.OrderNo(); ok {
		_spec.SetField(job.FieldOrderNo, field.TypeString, value)
		_node.OrderNo = &value
	}
	if value, ok := _c.mutation.OrderPeriod(); ok {
		_spec.SetField(job.FieldOrderPeriod, field.TypeString, value)
		_node.OrderPeriod = &value
	}
	if value, ok := _c.mutation.Area(); ok {
		_spec.SetField(job.FieldArea, field.TypeString, value)
		_node.Area = &value
	}
	if value, ok := _c.mutation.SummerSchedule(); ok {
		_spec.SetField(job.FieldSummerSchedule, field.TypeString, value)
		_node.SummerSchedule = &value
	}
	if value, ok := _c.mutation.WinterSchedule(); ok {
		_spec.SetField(job.FieldWinterSchedule, field.TypeString, value)
		_node.WinterSchedule = &value
	}
	if value, ok := _c.mutation.Contact(); ok {
		_spec.SetField(job.FieldContact, field.TypeString, value)
		_node.Contact = &value
	}
	if value, ok := _c.mutation.GateCode(); ok {
		_spec.SetField(job.FieldGateCode, field.TypeString, value)
		_node.GateCode = &value
	}
	if value, ok := _c.mutation.MapLink(); ok {
		_spec.SetField(job.FieldMapLink, field.TypeString, value)
		_node.MapLink = &value
	}
	if value, ok := _c.mutation.AssignedTo(); ok {
		_spec.SetField(job.FieldAssignedTo, field.TypeInt64, value)
		_node.AssignedTo = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(job.FieldStartTime, field.TypeTime, value)
		_node.StartTime = &value
	}
	if value, ok := _c.mutation.FinishTime(); ok {
		_spec.SetField(job.FieldFinishTime, field.TypeTime, value)
		_node.FinishTime = &value
	}
	if value, ok := _c.mutation.Photos(); ok {
		_spec.SetField(job.FieldPhotos, field.TypeJSON, value)
		_node.Photos = value
	}
	if value, ok := _c.mutation.ScheduledDate(); ok {
		_spec.SetField(job.FieldScheduledDate, field.TypeString, value)
		_node.ScheduledDate = &value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(job.FieldPriority, field.TypeString, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.NotesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// JobCreateBulk is the builder for creating many Job entities in bulk.
type JobCreateBulk struct {
	config
	err      error
	builders []*JobCreate
}

// Save creates the Job entities in the database.
func (_c *JobCreateBulk) Save(ctx context.Context) ([]*Job, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Job, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobMutation)
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
func (_c *JobCreateBulk) SaveX(ctx context.Context) []*Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
