// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ArticlesColumns holds the columns for the "articles" table.
	ArticlesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "updated_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "numero", Type: field.TypeString, Size: 50},
		{Name: "contenido", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "ley_id", Type: field.TypeUUID},
	}
	// ArticlesTable holds the schema information for the "articles" table.
	ArticlesTable = &schema.Table{
		Name:       "articles",
		Columns:    ArticlesColumns,
		PrimaryKey: []*schema.Column{ArticlesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "articles_laws_articulos",
				Columns:    []*schema.Column{ArticlesColumns[5]},
				RefColumns: []*schema.Column{LawsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "article_ley_id_numero",
				Unique:  true,
				Columns: []*schema.Column{ArticlesColumns[5], ArticlesColumns[3]},
			},
		},
	}
	// LawsColumns holds the columns for the "laws" table.
	LawsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "updated_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "nombre", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "descripcion", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// LawsTable holds the schema information for the "laws" table.
	LawsTable = &schema.Table{
		Name:       "laws",
		Columns:    LawsColumns,
		PrimaryKey: []*schema.Column{LawsColumns[0]},
	}
	// LegalReferencesColumns holds the columns for the "legal_references" table.
	LegalReferencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "updated_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "ley_id", Type: field.TypeUUID},
		{Name: "articulo_id", Type: field.TypeUUID, Nullable: true},
		{Name: "report_id", Type: field.TypeUUID},
	}
	// LegalReferencesTable holds the schema information for the "legal_references" table.
	LegalReferencesTable = &schema.Table{
		Name:       "legal_references",
		Columns:    LegalReferencesColumns,
		PrimaryKey: []*schema.Column{LegalReferencesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "legal_references_laws_ley",
				Columns:    []*schema.Column{LegalReferencesColumns[3]},
				RefColumns: []*schema.Column{LawsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "legal_references_articles_articulo",
				Columns:    []*schema.Column{LegalReferencesColumns[4]},
				RefColumns: []*schema.Column{ArticlesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "legal_references_reports_referencias",
				Columns:    []*schema.Column{LegalReferencesColumns[5]},
				RefColumns: []*schema.Column{ReportsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "legalreference_report_id_ley_id_articulo_id",
				Unique:  true,
				Columns: []*schema.Column{LegalReferencesColumns[5], LegalReferencesColumns[3], LegalReferencesColumns[4]},
			},
			{
				Name:    "legalreference_report_id",
				Unique:  false,
				Columns: []*schema.Column{LegalReferencesColumns[5]},
			},
		},
	}
	// ReportsColumns holds the columns for the "reports" table.
	ReportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "updated_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "usuario_id", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "zona", Type: field.TypeString, Size: 100},
		{Name: "distrito", Type: field.TypeString, Size: 100},
		{Name: "circuito", Type: field.TypeString, Size: 100},
		{Name: "direccion", Type: field.TypeString, Size: 255},
		{Name: "horario_jornada", Type: field.TypeString, Size: 50},
		{Name: "hora_reporte", Type: field.TypeString, Size: 20},
		{Name: "fecha", Type: field.TypeString, Size: 20},
		{Name: "novedad", Type: field.TypeString, Size: 2147483647},
		{Name: "parte_informante", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "tipo", Type: field.TypeEnum, Enums: []string{"jefe_manzana", "ciudadano", "uniformado"}, Default: "jefe_manzana"},
		{Name: "estado", Type: field.TypeEnum, Enums: []string{"pendiente", "completado"}, Default: "pendiente"},
		{Name: "ubicacion", Type: field.TypeString, Nullable: true},
		{Name: "documento_pdf", Type: field.TypeString, Nullable: true},
		{Name: "documento_docx", Type: field.TypeString, Nullable: true},
		{Name: "version", Type: field.TypeInt, Default: 1},
	}
	// ReportsTable holds the schema information for the "reports" table.
	ReportsTable = &schema.Table{
		Name:       "reports",
		Columns:    ReportsColumns,
		PrimaryKey: []*schema.Column{ReportsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "report_usuario_id",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[3]},
			},
			{
				Name:    "report_zona",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[4]},
			},
			{
				Name:    "report_distrito",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[5]},
			},
			{
				Name:    "report_circuito",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[6]},
			},
			{
				Name:    "report_estado",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[14]},
			},
			{
				Name:    "report_fecha",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[10]},
			},
		},
	}
	// ReportImagesColumns holds the columns for the "report_images" table.
	ReportImagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "updated_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "file_name", Type: field.TypeString, Size: 512},
		{Name: "original_name", Type: field.TypeString, Size: 255},
		{Name: "orden", Type: field.TypeInt},
		{Name: "report_id", Type: field.TypeUUID},
	}
	// ReportImagesTable holds the schema information for the "report_images" table.
	ReportImagesTable = &schema.Table{
		Name:       "report_images",
		Columns:    ReportImagesColumns,
		PrimaryKey: []*schema.Column{ReportImagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "report_images_reports_imagenes",
				Columns:    []*schema.Column{ReportImagesColumns[6]},
				RefColumns: []*schema.Column{ReportsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "reportimage_report_id_orden",
				Unique:  true,
				Columns: []*schema.Column{ReportImagesColumns[6], ReportImagesColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ArticlesTable,
		LawsTable,
		LegalReferencesTable,
		ReportsTable,
		ReportImagesTable,
	}
)

func init() {
	ArticlesTable.ForeignKeys[0].RefTable = LawsTable
	LegalReferencesTable.ForeignKeys[0].RefTable = LawsTable
	LegalReferencesTable.ForeignKeys[1].RefTable = ArticlesTable
	LegalReferencesTable.ForeignKeys[2].RefTable = ReportsTable
	ReportImagesTable.ForeignKeys[0].RefTable = ReportsTable
}
