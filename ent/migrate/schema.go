// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttributionsColumns holds the columns for the "attributions" table.
	AttributionsColumns = []*schema.Column{
		{Name: "attribution_id", Type: field.TypeString, Unique: true},
		{Name: "stage_name", Type: field.TypeEnum, Enums: []string{"RESEARCH", "SCRIPT", "VOICE", "MUSIC", "VISUAL", "EDITOR", "PUBLISH"}},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "agent_name", Type: field.TypeString},
		{Name: "percentage", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "pipeline_id", Type: field.TypeString},
		{Name: "stage_id", Type: field.TypeString},
	}
	// AttributionsTable holds the schema information for the "attributions" table.
	AttributionsTable = &schema.Table{
		Name:       "attributions",
		Columns:    AttributionsColumns,
		PrimaryKey: []*schema.Column{AttributionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "attributions_pipelines_attributions",
				Columns:    []*schema.Column{AttributionsColumns[6]},
				RefColumns: []*schema.Column{PipelinesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "attributions_stages_attributions",
				Columns:    []*schema.Column{AttributionsColumns[7]},
				RefColumns: []*schema.Column{StagesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "attribution_pipeline_id_stage_name",
				Unique:  true,
				Columns: []*schema.Column{AttributionsColumns[6], AttributionsColumns[1]},
			},
			{
				Name:    "attribution_agent_id",
				Unique:  false,
				Columns: []*schema.Column{AttributionsColumns[2]},
			},
		},
	}
	// PipelinesColumns holds the columns for the "pipelines" table.
	PipelinesColumns = []*schema.Column{
		{Name: "pipeline_id", Type: field.TypeString, Unique: true},
		{Name: "topic", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"DRAFT", "RUNNING", "COMPLETE", "FAILED"}, Default: "DRAFT"},
		{Name: "current_stage", Type: field.TypeEnum, Enums: []string{"RESEARCH", "SCRIPT", "VOICE", "MUSIC", "VISUAL", "EDITOR", "PUBLISH"}, Default: "RESEARCH"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PipelinesTable holds the schema information for the "pipelines" table.
	PipelinesTable = &schema.Table{
		Name:       "pipelines",
		Columns:    PipelinesColumns,
		PrimaryKey: []*schema.Column{PipelinesColumns[0]},
	}
	// StagesColumns holds the columns for the "stages" table.
	StagesColumns = []*schema.Column{
		{Name: "stage_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeEnum, Enums: []string{"RESEARCH", "SCRIPT", "VOICE", "MUSIC", "VISUAL", "EDITOR", "PUBLISH"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"PENDING", "CLAIMED", "RUNNING", "COMPLETE", "FAILED", "SKIPPED"}, Default: "PENDING"},
		{Name: "agent_id", Type: field.TypeString, Nullable: true},
		{Name: "agent_name", Type: field.TypeString, Nullable: true},
		{Name: "output", Type: field.TypeJSON, Nullable: true},
		{Name: "artifacts", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "claimed_at", Type: field.TypeTime, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "pipeline_id", Type: field.TypeString},
	}
	// StagesTable holds the schema information for the "stages" table.
	StagesTable = &schema.Table{
		Name:       "stages",
		Columns:    StagesColumns,
		PrimaryKey: []*schema.Column{StagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "stages_pipelines_stages",
				Columns:    []*schema.Column{StagesColumns[12]},
				RefColumns: []*schema.Column{PipelinesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "stage_pipeline_id_name",
				Unique:  true,
				Columns: []*schema.Column{StagesColumns[12], StagesColumns[1]},
			},
			{
				Name:    "stage_status",
				Unique:  false,
				Columns: []*schema.Column{StagesColumns[2]},
			},
			{
				Name:    "stage_agent_id",
				Unique:  false,
				Columns: []*schema.Column{StagesColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttributionsTable,
		PipelinesTable,
		StagesTable,
	}
)

func init() {
	AttributionsTable.ForeignKeys[0].RefTable = PipelinesTable
	AttributionsTable.ForeignKeys[1].RefTable = StagesTable
	StagesTable.ForeignKeys[0].RefTable = PipelinesTable
}
