package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

type ReportImage struct {
	ent.Schema
}

func (ReportImage) Mixin() []ent.Mixin { return []ent.Mixin{TimeMixin{}} }

func (ReportImage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(newUUIDv7),
		field.UUID("report_id", uuid.UUID{}),
		// Object key in the asset store.
		field.String("file_name").NotEmpty().MaxLen(512),
		field.String("original_name").NotEmpty().MaxLen(255),
		// 1-based, contiguous per report.
		field.Int("orden").Positive(),
	}
}

func (ReportImage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("report", Report.Type).
			Ref("imagenes").
			Field("report_id").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (ReportImage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("report_id", "orden").Unique(),
	}
}
