package service

import (
	"NovedadesAPI/internal/document"
	"NovedadesAPI/internal/helper"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCurriculumService() *CurriculumService {
	return NewCurriculumService(document.NewPDFRenderer(), document.NewDocxRenderer())
}

func TestGenerateCurriculumPDF(t *testing.T) {
	svc := newCurriculumService()
	body := []byte(`{
		"nombre": "Juan Perez",
		"cedula": "  ",
		"perfil": "Técnico en seguridad ciudadana",
		"funciones": ["Patrullaje", "Atención de denuncias"]
	}`)

	file, err := svc.Generate(context.Background(), body, "pdf")
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", file.ContentType)
	assert.Equal(t, "hoja_de_vida_juan_perez.pdf", file.FileName)
	require.Greater(t, len(file.Data), 4)
	assert.Equal(t, "%PDF", string(file.Data[:4]))
}

func TestGenerateCurriculumDocxDefaultName(t *testing.T) {
	svc := newCurriculumService()
	body := []byte(`{"perfil": "Sin nombre declarado"}`)

	file, err := svc.Generate(context.Background(), body, "docx")
	require.NoError(t, err)

	assert.Equal(t, "hoja_de_vida.docx", file.FileName)
	assert.Contains(t, file.ContentType, "wordprocessingml")
	require.Greater(t, len(file.Data), 2)
	assert.Equal(t, "PK", string(file.Data[:2]))
}

func TestGenerateCurriculumRejectsBadInput(t *testing.T) {
	svc := newCurriculumService()

	cases := map[string]struct {
		body   string
		format string
	}{
		"malformed json":   {body: `{"nombre": `, format: "pdf"},
		"non-object body":  {body: `[1, 2, 3]`, format: "pdf"},
		"unknown format":   {body: `{"nombre": "Juan"}`, format: "xlsx"},
		"nothing survives": {body: `{"nombre": "", "funciones": []}`, format: "pdf"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Generate(context.Background(), []byte(tc.body), tc.format)
			var appErr *helper.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, http.StatusBadRequest, appErr.Code)
		})
	}
}
