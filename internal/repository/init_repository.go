package repository

import (
	"NovedadesAPI/ent"
)

type Repository struct {
	Report *ReportRepository
	Legal  *LegalReferenceRepository
	Law    *LawRepository
}

func NewRepository(client *ent.Client) *Repository {
	return &Repository{
		Report: NewReportRepository(client),
		Legal:  NewLegalReferenceRepository(client),
		Law:    NewLawRepository(client),
	}
}
