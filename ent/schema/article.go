package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

type Article struct {
	ent.Schema
}

func (Article) Mixin() []ent.Mixin { return []ent.Mixin{TimeMixin{}} }

func (Article) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(newUUIDv7),
		field.UUID("ley_id", uuid.UUID{}),
		field.String("numero").NotEmpty().MaxLen(50),
		field.Text("contenido").Optional(),
	}
}

func (Article) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("ley", Law.Type).
			Ref("articulos").
			Field("ley_id").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Article) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ley_id", "numero").Unique(),
	}
}
