package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Law is reference data; the report pipeline reads it but never mutates it.
type Law struct {
	ent.Schema
}

func (Law) Mixin() []ent.Mixin { return []ent.Mixin{TimeMixin{}} }

func (Law) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(newUUIDv7),
		field.String("nombre").NotEmpty().Unique().MaxLen(255),
		field.Text("descripcion").Optional(),
	}
}

func (Law) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("articulos", Article.Type),
	}
}
