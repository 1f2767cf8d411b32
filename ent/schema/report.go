package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

type Report struct {
	ent.Schema
}

func (Report) Mixin() []ent.Mixin { return []ent.Mixin{TimeMixin{}} }

func (Report) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(newUUIDv7),

		// Identity of the submitter as handed over by the auth collaborator.
		// Nil means the report came in through the public form.
		field.String("usuario_id").Optional().Nillable().MaxLen(64).Immutable(),

		field.String("zona").NotEmpty().MaxLen(100),
		field.String("distrito").NotEmpty().MaxLen(100),
		field.String("circuito").NotEmpty().MaxLen(100),
		field.String("direccion").NotEmpty().MaxLen(255),
		field.String("horario_jornada").NotEmpty().MaxLen(50),
		field.String("hora_reporte").NotEmpty().MaxLen(20),
		field.String("fecha").NotEmpty().MaxLen(20),
		field.Text("novedad").NotEmpty(),

		field.String("parte_informante").Optional().MaxLen(255),

		field.Enum("tipo").
			Values("jefe_manzana", "ciudadano", "uniformado").
			Default("jefe_manzana"),

		field.Enum("estado").
			Values("pendiente", "completado").
			Default("pendiente"),

		// WKT POINT at full precision; display rounding happens in the codec.
		field.String("ubicacion").Optional().Nillable(),

		field.String("documento_pdf").Optional().Nillable(),
		field.String("documento_docx").Optional().Nillable(),

		field.Int("version").Default(1).Min(1),
	}
}

func (Report) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("imagenes", ReportImage.Type),
		edge.To("referencias", LegalReference.Type),
	}
}

func (Report) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("usuario_id"),
		index.Fields("zona"),
		index.Fields("distrito"),
		index.Fields("circuito"),
		index.Fields("estado"),
		index.Fields("fecha"),
	}
}
