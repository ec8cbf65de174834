// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "provider", Type: field.TypeString},
		{Name: "text_model", Type: field.TypeString},
		{Name: "vision_model", Type: field.TypeString, Nullable: true},
		{Name: "vision_instruction", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "text_instruction", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "skip_vision_when_text", Type: field.TypeBool, Default: false},
		{Name: "temperature", Type: field.TypeFloat32, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "output_schema_id", Type: field.TypeInt, Nullable: true},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agents_schema_definitions_output_schema",
				Columns:    []*schema.Column{AgentsColumns[12]},
				RefColumns: []*schema.Column{SchemaDefinitionsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// ExtractionJobsColumns holds the columns for the "extraction_jobs" table.
	ExtractionJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "document_name", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "pages", Type: field.TypeInt, Default: 0},
		{Name: "has_plain_text", Type: field.TypeBool, Default: false},
		{Name: "trace", Type: field.TypeJSON, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "agent_id", Type: field.TypeInt},
	}
	// ExtractionJobsTable holds the schema information for the "extraction_jobs" table.
	ExtractionJobsTable = &schema.Table{
		Name:       "extraction_jobs",
		Columns:    ExtractionJobsColumns,
		PrimaryKey: []*schema.Column{ExtractionJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extraction_jobs_agents_jobs",
				Columns:    []*schema.Column{ExtractionJobsColumns[11]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractionjob_agent_id_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractionJobsColumns[11], ExtractionJobsColumns[2], ExtractionJobsColumns[8]},
			},
		},
	}
	// SchemaDefinitionsColumns holds the columns for the "schema_definitions" table.
	SchemaDefinitionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SchemaDefinitionsTable holds the schema information for the "schema_definitions" table.
	SchemaDefinitionsTable = &schema.Table{
		Name:       "schema_definitions",
		Columns:    SchemaDefinitionsColumns,
		PrimaryKey: []*schema.Column{SchemaDefinitionsColumns[0]},
	}
	// SchemaFieldsColumns holds the columns for the "schema_fields" table.
	SchemaFieldsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "field_type", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "position", Type: field.TypeInt, Default: 0},
		{Name: "list_item_type", Type: field.TypeString, Nullable: true},
		{Name: "definition_id", Type: field.TypeInt},
		{Name: "nested_schema_id", Type: field.TypeInt, Nullable: true},
	}
	// SchemaFieldsTable holds the schema information for the "schema_fields" table.
	SchemaFieldsTable = &schema.Table{
		Name:       "schema_fields",
		Columns:    SchemaFieldsColumns,
		PrimaryKey: []*schema.Column{SchemaFieldsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "schema_fields_schema_definitions_fields",
				Columns:    []*schema.Column{SchemaFieldsColumns[6]},
				RefColumns: []*schema.Column{SchemaDefinitionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "schema_fields_schema_definitions_nested_schema",
				Columns:    []*schema.Column{SchemaFieldsColumns[7]},
				RefColumns: []*schema.Column{SchemaDefinitionsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "schemafield_definition_id_position",
				Unique:  false,
				Columns: []*schema.Column{SchemaFieldsColumns[6], SchemaFieldsColumns[4]},
			},
		},
	}
	// SilosColumns holds the columns for the "silos" table.
	SilosColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "collection", Type: field.TypeString, Unique: true},
		{Name: "embedding_model", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SilosTable holds the schema information for the "silos" table.
	SilosTable = &schema.Table{
		Name:       "silos",
		Columns:    SilosColumns,
		PrimaryKey: []*schema.Column{SilosColumns[0]},
	}
	// ToolServersColumns holds the columns for the "tool_servers" table.
	ToolServersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "transport", Type: field.TypeString},
		{Name: "url", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ToolServersTable holds the schema information for the "tool_servers" table.
	ToolServersTable = &schema.Table{
		Name:       "tool_servers",
		Columns:    ToolServersColumns,
		PrimaryKey: []*schema.Column{ToolServersColumns[0]},
	}
	// AgentSilosColumns holds the columns for the "agent_silos" table.
	AgentSilosColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeInt},
		{Name: "silo_id", Type: field.TypeInt},
	}
	// AgentSilosTable holds the schema information for the "agent_silos" table.
	AgentSilosTable = &schema.Table{
		Name:       "agent_silos",
		Columns:    AgentSilosColumns,
		PrimaryKey: []*schema.Column{AgentSilosColumns[0], AgentSilosColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_silos_agent_id",
				Columns:    []*schema.Column{AgentSilosColumns[0]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "agent_silos_silo_id",
				Columns:    []*schema.Column{AgentSilosColumns[1]},
				RefColumns: []*schema.Column{SilosColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// AgentToolServersColumns holds the columns for the "agent_tool_servers" table.
	AgentToolServersColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeInt},
		{Name: "tool_server_id", Type: field.TypeInt},
	}
	// AgentToolServersTable holds the schema information for the "agent_tool_servers" table.
	AgentToolServersTable = &schema.Table{
		Name:       "agent_tool_servers",
		Columns:    AgentToolServersColumns,
		PrimaryKey: []*schema.Column{AgentToolServersColumns[0], AgentToolServersColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_tool_servers_agent_id",
				Columns:    []*schema.Column{AgentToolServersColumns[0]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "agent_tool_servers_tool_server_id",
				Columns:    []*schema.Column{AgentToolServersColumns[1]},
				RefColumns: []*schema.Column{ToolServersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		ExtractionJobsTable,
		SchemaDefinitionsTable,
		SchemaFieldsTable,
		SilosTable,
		ToolServersTable,
		AgentSilosTable,
		AgentToolServersTable,
	}
)

func init() {
	AgentsTable.ForeignKeys[0].RefTable = SchemaDefinitionsTable
	AgentsTable.Annotation = &entsql.Annotation{
		Table: "agents",
	}
	ExtractionJobsTable.ForeignKeys[0].RefTable = AgentsTable
	ExtractionJobsTable.Annotation = &entsql.Annotation{
		Table: "extraction_jobs",
	}
	SchemaDefinitionsTable.Annotation = &entsql.Annotation{
		Table: "schema_definitions",
	}
	SchemaFieldsTable.ForeignKeys[0].RefTable = SchemaDefinitionsTable
	SchemaFieldsTable.ForeignKeys[1].RefTable = SchemaDefinitionsTable
	SchemaFieldsTable.Annotation = &entsql.Annotation{
		Table: "schema_fields",
	}
	SilosTable.Annotation = &entsql.Annotation{
		Table: "silos",
	}
	ToolServersTable.Annotation = &entsql.Annotation{
		Table: "tool_servers",
	}
	AgentSilosTable.ForeignKeys[0].RefTable = AgentsTable
	AgentSilosTable.ForeignKeys[1].RefTable = SilosTable
	AgentToolServersTable.ForeignKeys[0].RefTable = AgentsTable
	AgentToolServersTable.ForeignKeys[1].RefTable = ToolServersTable
}
