// Package document turns a sanitized report or curriculum tree into the
// two output formats. Which fields appear is decided once, in the section
// builder, from the sanitized tree; the renderers only lay sections out.
package document

import (
	"fmt"
	"strconv"
	"strings"

	"NovedadesAPI/internal/sanitize"
)

// Section is one labeled block of a rendered document. Scalar sections
// carry Text; list sections carry pre-numbered Items.
type Section struct {
	Label string
	Text  string
	Items []string
}

// Renderer produces one concrete output format from the shared sections.
type Renderer interface {
	Render(title string, sections []Section) ([]byte, error)
	Ext() string
	ContentType() string
}

type fieldSpec struct {
	key   string
	label string
	list  bool
}

var reportFields = []fieldSpec{
	{key: "zona", label: "Zona"},
	{key: "distrito", label: "Distrito"},
	{key: "circuito", label: "Circuito"},
	{key: "direccion", label: "Dirección"},
	{key: "horario_jornada", label: "Horario de jornada"},
	{key: "hora_reporte", label: "Hora del reporte"},
	{key: "fecha", label: "Fecha"},
	{key: "tipo", label: "Tipo de parte"},
	{key: "parte_informante", label: "Parte informante"},
	{key: "coordenadas", label: "Coordenadas"},
	{key: "novedad", label: "Novedad"},
	{key: "imagenes", label: "Imágenes", list: true},
	{key: "referencias_legales", label: "Referencias legales", list: true},
}

var curriculumFields = []fieldSpec{
	{key: "nombre", label: "Nombre"},
	{key: "cedula", label: "Cédula"},
	{key: "fecha_nacimiento", label: "Fecha de nacimiento"},
	{key: "direccion", label: "Dirección"},
	{key: "telefono", label: "Teléfono"},
	{key: "correo", label: "Correo electrónico"},
	{key: "perfil", label: "Perfil"},
	{key: "funciones", label: "Funciones", list: true},
	{key: "logros", label: "Logros", list: true},
	{key: "destrezas", label: "Destrezas", list: true},
	{key: "referencias", label: "Referencias", list: true},
}

// ReportSections builds the section list for an incident report. A field
// appears if and only if it survived sanitizing.
func ReportSections(doc *sanitize.Map) []Section {
	return buildSections(doc, reportFields)
}

// CurriculumSections builds the section list for a curriculum document.
func CurriculumSections(doc *sanitize.Map) []Section {
	return buildSections(doc, curriculumFields)
}

func buildSections(doc *sanitize.Map, fields []fieldSpec) []Section {
	var sections []Section
	for _, f := range fields {
		v, ok := doc.Get(f.key)
		if !ok {
			continue
		}

		if f.list {
			if v.Kind() != sanitize.KindList {
				continue
			}
			items := make([]string, 0, len(v.ListVal()))
			for i, item := range v.ListVal() {
				items = append(items, fmt.Sprintf("%d. %s", i+1, flatten(item)))
			}
			sections = append(sections, Section{Label: f.label, Items: items})
			continue
		}

		sections = append(sections, Section{Label: f.label, Text: flatten(v)})
	}
	return sections
}

func flatten(v sanitize.Value) string {
	switch v.Kind() {
	case sanitize.KindString:
		return v.StringVal()
	case sanitize.KindNumber:
		return strconv.FormatFloat(v.NumberVal(), 'f', -1, 64)
	case sanitize.KindBool:
		if v.BoolVal() {
			return "Sí"
		}
		return "No"
	case sanitize.KindMap:
		parts := make([]string, 0, v.MapVal().Len())
		for _, key := range v.MapVal().Keys() {
			val, _ := v.MapVal().Get(key)
			parts = append(parts, flatten(val))
		}
		return strings.Join(parts, " - ")
	case sanitize.KindList:
		parts := make([]string, 0, len(v.ListVal()))
		for _, item := range v.ListVal() {
			parts = append(parts, flatten(item))
		}
		return strings.Join(parts, ", ")
	}
	return ""
}
