// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "site_name", Type: field.TypeString, Unique: true},
		{Name: "quote", Type: field.TypeString, Nullable: true},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "order_no", Type: field.TypeString, Nullable: true},
		{Name: "order_period", Type: field.TypeString, Nullable: true},
		{Name: "area", Type: field.TypeString, Nullable: true},
		{Name: "summer_schedule", Type: field.TypeString, Nullable: true},
		{Name: "winter_schedule", Type: field.TypeString, Nullable: true},
		{Name: "contact", Type: field.TypeString, Nullable: true},
		{Name: "gate_code", Type: field.TypeString, Nullable: true},
		{Name: "map_link", Type: field.TypeString, Nullable: true},
		{Name: "assigned_to", Type: field.TypeInt64, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "start_time", Type: field.TypeTime, Nullable: true},
		{Name: "finish_time", Type: field.TypeTime, Nullable: true},
		{Name: "photos", Type: field.TypeJSON, Nullable: true},
		{Name: "scheduled_date", Type: field.TypeString, Nullable: true},
		{Name: "priority", Type: field.TypeString, Default: "normal"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_assigned_to",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[12]},
			},
			{
				Name:    "job_status",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[13]},
			},
			{
				Name:    "job_site_name",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1]},
			},
		},
	}
	// JobNotesColumns holds the columns for the "job_notes" table.
	JobNotesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "author_id", Type: field.TypeInt64},
		{Name: "author_role", Type: field.TypeString},
		{Name: "note", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeInt},
	}
	// JobNotesTable holds the schema information for the "job_notes" table.
	JobNotesTable = &schema.Table{
		Name:       "job_notes",
		Columns:    JobNotesColumns,
		PrimaryKey: []*schema.Column{JobNotesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "job_notes_jobs_notes",
				Columns:    []*schema.Column{JobNotesColumns[5]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "note_job_id",
				Unique:  false,
				Columns: []*schema.Column{JobNotesColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		JobsTable,
		JobNotesTable,
	}
)

func init() {
	JobsTable.Annotation = &entsql.Annotation{
		Table: "jobs",
	}
	JobNotesTable.ForeignKeys[0].RefTable = JobsTable
	JobNotesTable.Annotation = &entsql.Annotation{
		Table: "job_notes",
	}
}
