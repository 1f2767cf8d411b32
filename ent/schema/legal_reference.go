package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// LegalReference links a report to a law and, optionally, one of its articles.
type LegalReference struct {
	ent.Schema
}

func (LegalReference) Mixin() []ent.Mixin { return []ent.Mixin{TimeMixin{}} }

func (LegalReference) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(newUUIDv7),
		field.UUID("report_id", uuid.UUID{}),
		field.UUID("ley_id", uuid.UUID{}),
		field.UUID("articulo_id", uuid.UUID{}).Optional().Nillable(),
	}
}

func (LegalReference) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("report", Report.Type).
			Ref("referencias").
			Field("report_id").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("ley", Law.Type).
			Field("ley_id").
			Unique().
			Required(),
		edge.To("articulo", Article.Type).
			Field("articulo_id").
			Unique(),
	}
}

func (LegalReference) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("report_id", "ley_id", "articulo_id").Unique(),
		index.Fields("report_id"),
	}
}
