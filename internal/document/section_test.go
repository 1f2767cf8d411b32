package document

import (
	"strings"
	"testing"

	"NovedadesAPI/internal/sanitize"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sanitizedReport(t *testing.T) *sanitize.Map {
	t.Helper()
	in := sanitize.MapOf(sanitize.NewMap().
		Set("zona", sanitize.String("Norte")).
		Set("distrito", sanitize.String("Tarqui")).
		Set("circuito", sanitize.String("N1")).
		Set("direccion", sanitize.String("Av. X")).
		Set("horario_jornada", sanitize.String("08:00-16:00")).
		Set("hora_reporte", sanitize.String("09:15")).
		Set("fecha", sanitize.String("2024-05-01")).
		Set("parte_informante", sanitize.String("")).
		Set("coordenadas", sanitize.String("-2.170998, -79.922356")).
		Set("novedad", sanitize.String("Obstrucción de vía")).
		Set("imagenes", sanitize.List(
			sanitize.String("foto1.jpg"),
			sanitize.String("foto2.jpg"),
		)).
		Set("referencias_legales", sanitize.List()))
	return sanitize.Sanitize(in)
}

func TestReportSectionsConditionalInclusion(t *testing.T) {
	sections := ReportSections(sanitizedReport(t))

	labels := make([]string, 0, len(sections))
	for _, s := range sections {
		labels = append(labels, s.Label)
	}

	assert.Contains(t, labels, "Zona")
	assert.Contains(t, labels, "Novedad")
	assert.Contains(t, labels, "Coordenadas")
	// Empty before sanitizing, so they must not appear.
	assert.NotContains(t, labels, "Parte informante")
	assert.NotContains(t, labels, "Referencias legales")
}

func TestReportSectionsNumbering(t *testing.T) {
	sections := ReportSections(sanitizedReport(t))

	var images *Section
	for i := range sections {
		if sections[i].Label == "Imágenes" {
			images = &sections[i]
		}
	}
	require.NotNil(t, images)
	require.Len(t, images.Items, 2)
	assert.Equal(t, "1. foto1.jpg", images.Items[0])
	assert.Equal(t, "2. foto2.jpg", images.Items[1])
}

func TestReportSectionsKeepFieldOrder(t *testing.T) {
	sections := ReportSections(sanitizedReport(t))
	require.NotEmpty(t, sections)
	assert.Equal(t, "Zona", sections[0].Label)
	last := sections[len(sections)-1]
	assert.Equal(t, "Imágenes", last.Label)
}

func TestCurriculumSections(t *testing.T) {
	in := sanitize.MapOf(sanitize.NewMap().
		Set("nombre", sanitize.String("Juan Pérez")).
		Set("perfil", sanitize.String("")).
		Set("funciones", sanitize.List(
			sanitize.String("Patrullaje"),
			sanitize.String("Atención ciudadana"),
		)).
		Set("destrezas", sanitize.List(sanitize.String(""))).
		Set("referencias", sanitize.List(
			sanitize.MapOf(sanitize.NewMap().
				Set("nombre", sanitize.String("María")).
				Set("telefono", sanitize.String("0999999999"))),
		)))

	sections := CurriculumSections(sanitize.Sanitize(in))

	labels := make([]string, 0, len(sections))
	for _, s := range sections {
		labels = append(labels, s.Label)
	}
	assert.Equal(t, []string{"Nombre", "Funciones", "Referencias"}, labels)

	refs := sections[2]
	require.Len(t, refs.Items, 1)
	assert.Equal(t, "1. María - 0999999999", refs.Items[0])
}

func TestBothRenderersProduceOutputFromSameSections(t *testing.T) {
	sections := ReportSections(sanitizedReport(t))

	for _, r := range []Renderer{NewPDFRenderer(), NewDocxRenderer()} {
		out, err := r.Render("Parte de Novedades", sections)
		require.NoError(t, err, r.Ext())
		assert.NotEmpty(t, out, r.Ext())
	}
}

func TestPDFOutputLooksLikePDF(t *testing.T) {
	out, err := NewPDFRenderer().Render("Parte de Novedades", ReportSections(sanitizedReport(t)))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"))
}

func TestDocxOutputLooksLikeZip(t *testing.T) {
	out, err := NewDocxRenderer().Render("Parte de Novedades", ReportSections(sanitizedReport(t)))
	require.NoError(t, err)
	require.True(t, len(out) > 4)
	assert.Equal(t, []byte{'P', 'K'}, out[:2])
}
