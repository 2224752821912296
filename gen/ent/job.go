// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/joseph-ayodele/mowbot/gen/ent/job"
)

// Job is the model entity for the Job schema.
type Job struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SiteName holds the value of the "site_name" field.
	SiteName string `json:"site_name,omitempty"`
	// Quote holds the value of the "quote" field.
	Quote *string `json:"quote,omitempty"`
	// Address holds the value of the "address" field.
	Address *string `json:"address,omitempty"`
	// OrderNo holds the value of the "order_no" field.
	OrderNo *string `json:"order_no,omitempty"`
	// OrderPeriod holds the value of the "order_period" field.
	OrderPeriod *string `json:"order_period,omitempty"`
	// Area holds the value of the "area" field.
	Area *string `json:"area,omitempty"`
	// SummerSchedule holds the value of the "summer_schedule" field.
	SummerSchedule *string `json:"summer_schedule,omitempty"`
	// WinterSchedule holds the value of the "winter_schedule" field.
	WinterSchedule *string `json:"winter_schedule,omitempty"`
	// Contact holds the value of the "contact" field.
	Contact *string `json:"contact,omitempty"`
	// GateCode holds the value of the "gate_code" field.
	GateCode *string `json:"gate_code,omitempty"`
	// MapLink holds the value of the "map_link" field.
	MapLink *string `json:"map_link,omitempty"`
	// AssignedTo holds the value of the "assigned_to" field.
	AssignedTo *int64 `json:"assigned_to,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// StartTime holds the value of the "start_time" field.
	StartTime *time.Time `json:"start_time,omitempty"`
	// FinishTime holds the value of the "finish_time" field.
	FinishTime *time.Time `json:"finish_time,omitempty"`
	// Photos holds the value of the "photos" field.
	Photos []string `json:"photos,omitempty"`
	// ScheduledDate holds the value of the "scheduled_date" field.
	ScheduledDate *string `json:"scheduled_date,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority string `json:"priority,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the JobQuery when eager-loading is set.
	Edges        JobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// JobEdges holds the relations/edges for other nodes in the graph.
type JobEdges struct {
	// Notes holds the value of the notes edge.
	Notes []*Note `json:"notes,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// NotesOrErr returns the Notes value or an error if the edge
// was not loaded in eager-loading.
func (e JobEdges) NotesOrErr() ([]*Note, error) {
	if e.loadedTypes[0] {
		return e.Notes, nil
	}
	return nil, &NotLoadedError{edge: "notes"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Job) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case job.FieldPhotos:
			values[i] = new([]byte)
		case job.FieldID, job.FieldAssignedTo:
			values[i] = new(sql.NullInt64)
		case job.FieldSiteName, job.FieldQuote, job.FieldAddress, job.FieldOrderNo, job.FieldOrderPeriod, job.FieldArea, job.FieldSummerSchedule, job.FieldWinterSchedule, job.FieldContact, job.FieldGateCode, job.FieldMapLink, job.FieldStatus, job.FieldScheduledDate, job.FieldPriority:
			values[i] = new(sql.NullString)
		case job.FieldStartTime, job.FieldFinishTime, job.FieldCreatedAt, job.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Job fields.
func (_m *Job) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case job.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case job.FieldSiteName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field site_name", values[i])
			} else if value.Valid {
				_m.SiteName = value.String
			}
		case job.FieldQuote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quote", values[i])
			} else if value.Valid {
				_m.Quote = new(string)
				*_m.Quote = value.String
			}
		case job.FieldAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address", values[i])
			} else if value.Valid {
				_m.Address = new(string)
				*_m.Address = value.String
			}
		case job.FieldOrderNo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field order_no", values[i])
			} else if value.Valid {
				_m.OrderNo = new(string)
				*_m.OrderNo = value.String
			}
		case job.FieldOrderPeriod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field order_period", values[i])
			} else if value.Valid {
				_m.OrderPeriod = new(string)
				*_m.OrderPeriod = value.String
			}
		case job.FieldArea:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field area", values[i])
			} else if value.Valid {
				_m.Area = new(string)
				*_m.Area = value.String
			}
		case job.FieldSummerSchedule:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summer_schedule", values[i])
			} else if value.Valid {
				_m.SummerSchedule = new(string)
				*_m.SummerSchedule = value.String
			}
		case job.FieldWinterSchedule:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field winter_schedule", values[i])
			} else if value.Valid {
				_m.WinterSchedule = new(string)
				*_m.WinterSchedule = value.String
			}
		case job.FieldContact:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contact", values[i])
			} else if value.Valid {
				_m.Contact = new(string)
				*_m.Contact = value.String
			}
		case job.FieldGateCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gate_code", values[i])
			} else if value.Valid {
				_m.GateCode = new(string)
				*_m.GateCode = value.String
			}
		case job.FieldMapLink:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field map_link", values[i])
			} else if value.Valid {
				_m.MapLink = new(string)
				*_m.MapLink = value.String
			}
		case job.FieldAssignedTo:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_to", values[i])
			} else if value.Valid {
				_m.AssignedTo = new(int64)
				*_m.AssignedTo = value.Int64
			}
		case job.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case job.FieldStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = new(time.Time)
				*_m.StartTime = value.Time
			}
		case job.FieldFinishTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finish_time", values[i])
			} else if value.Valid {
				_m.FinishTime = new(time.Time)
				*_m.FinishTime = value.Time
			}
		case job.FieldPhotos:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field photos", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Photos); err != nil {
					return fmt.Errorf("unmarshal field photos: %w", err)
				}
			}
		case job.FieldScheduledDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scheduled_date", values[i])
			} else if value.Valid {
				_m.ScheduledDate = new(string)
				*_m.ScheduledDate = value.String
			}
		case job.FieldPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = value.String
			}
		case job.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case job.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Job.
// This includes values selected through modifiers, order, etc.
func (_m *Job) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryNotes queries the "notes" edge of the Job entity.
func (_m *Job) QueryNotes() *NoteQuery {
	return NewJobClient(_m.config).QueryNotes(_m)
}

// Update returns a builder for updating this Job.
// Note that you need to call Job.Unwrap() before calling this method if this Job
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Job) Update() *JobUpdateOne {
	return NewJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Job entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Job) Unwrap() *Job {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Job is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Job) String() string {
	var builder strings.Builder
	builder.WriteString("Job(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("site_name=")
	builder.WriteString(_m.SiteName)
	builder.WriteString(", ")
	if v := _m.Quote; v != nil {
		builder.WriteString("quote=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Address; v != nil {
		builder.WriteString("address=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.OrderNo; v != nil {
		builder.WriteString("order_no=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.OrderPeriod; v != nil {
		builder.WriteString("order_period=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Area; v != nil {
		builder.WriteString("area=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SummerSchedule; v != nil {
		builder.WriteString("summer_schedule=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.WinterSchedule; v != nil {
		builder.WriteString("winter_schedule=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Contact; v != nil {
		builder.WriteString("contact=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.GateCode; v != nil {
		builder.WriteString("gate_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MapLink; v != nil {
		builder.WriteString("map_link=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AssignedTo; v != nil {
		builder.WriteString("assigned_to=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.StartTime; v != nil {
		builder.WriteString("start_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.FinishTime; v != nil {
		builder.WriteString("finish_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("photos=")
	builder.WriteString(fmt.Sprintf("%v", _m.Photos))
	builder.WriteString(", ")
	if v := _m.ScheduledDate; v != nil {
		builder.WriteString("scheduled_date=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(_m.Priority)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Jobs is a parsable slice of Job.
type Jobs []*Job
