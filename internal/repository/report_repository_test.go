package repository

import (
	"NovedadesAPI/ent"
	"NovedadesAPI/internal/geo"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportAt(zona, distrito, fecha string, wkt string) *ent.Report {
	rep := &ent.Report{
		Zona:     zona,
		Distrito: distrito,
		Fecha:    fecha,
	}
	if wkt != "" {
		rep.Ubicacion = &wkt
	}
	return rep
}

func TestFilterNearby(t *testing.T) {
	// Quito centre; the second point is ~1.1 km north, the third is in
	// Guayaquil, some 270 km away.
	center := geo.Point{Lat: -0.22, Lng: -78.51}
	rows := []*ent.Report{
		reportAt("Norte", "A", "2026-08-01", "POINT(-78.51 -0.22)"),
		reportAt("Norte", "A", "2026-08-02", "POINT(-78.51 -0.21)"),
		reportAt("Sur", "B", "2026-08-03", "POINT(-79.88 -2.17)"),
		reportAt("Sur", "B", "2026-08-04", ""),
		reportAt("Sur", "B", "2026-08-05", "POINT(garbage)"),
	}

	near := filterNearby(rows, center, 5)
	require.Len(t, near, 2)
	assert.Equal(t, "2026-08-01", near[0].Fecha)
	assert.Equal(t, "2026-08-02", near[1].Fecha)

	tight := filterNearby(rows, center, 0.5)
	require.Len(t, tight, 1, "tight radius keeps only the exact point")
	assert.Equal(t, "2026-08-01", tight[0].Fecha)

	assert.Len(t, filterNearby(rows, center, 300), 3, "wide radius reaches the distant point but never the unparseable ones")
}

func TestPaginate(t *testing.T) {
	rows := []*ent.Report{
		reportAt("z", "d", "2026-08-01", ""),
		reportAt("z", "d", "2026-08-02", ""),
		reportAt("z", "d", "2026-08-03", ""),
	}

	page := paginate(rows, 0, 2)
	require.Len(t, page, 2)
	assert.Equal(t, "2026-08-01", page[0].Fecha)

	page = paginate(rows, 1, 2)
	require.Len(t, page, 2)
	assert.Equal(t, "2026-08-02", page[0].Fecha)

	assert.Len(t, paginate(rows, 2, 5), 1, "limit past the end is clamped")
	assert.Empty(t, paginate(rows, 3, 2), "offset at the end yields an empty page")
	assert.Empty(t, paginate(rows, 10, 2), "offset past the end yields an empty page")
	assert.Len(t, paginate(rows, 0, 0), 3, "zero limit means no cap")
}

func TestStatsFrom(t *testing.T) {
	rows := []*ent.Report{
		reportAt("Norte", "Eugenio Espejo", "2026-08-21", ""),
		reportAt("Norte", "Eugenio Espejo", "2026-08-02", ""),
		reportAt("Norte", "La Delicia", "2026-07-30", ""),
		reportAt("Sur", "Eloy Alfaro", "2026-07-01", ""),
		reportAt("Sur", "Eloy Alfaro", "corta", ""),
	}

	stats := statsFrom(rows)

	require.Len(t, stats.PorZona, 2)
	assert.Equal(t, "Norte", stats.PorZona[0].Clave)
	assert.Equal(t, 3, stats.PorZona[0].Total)
	assert.Equal(t, "Sur", stats.PorZona[1].Clave)
	assert.Equal(t, 2, stats.PorZona[1].Total)

	require.Len(t, stats.PorDistrito, 3)
	assert.Equal(t, "Eloy Alfaro", stats.PorDistrito[0].Clave)
	assert.Equal(t, 2, stats.PorDistrito[0].Total)

	// A fecha too short for a YYYY-MM prefix only drops out of the
	// month buckets.
	require.Len(t, stats.PorMes, 2)
	assert.Equal(t, "2026-07", stats.PorMes[0].Clave)
	assert.Equal(t, 2, stats.PorMes[0].Total)
	assert.Equal(t, "2026-08", stats.PorMes[1].Clave)
	assert.Equal(t, 2, stats.PorMes[1].Total)
}
