package repository

import (
	"NovedadesAPI/ent"
	"NovedadesAPI/ent/article"
	"NovedadesAPI/ent/law"
	"context"

	"github.com/google/uuid"
)

// LawRepository reads the legal catalog. The pipeline never mutates it.
type LawRepository struct {
	client *ent.Client
}

func NewLawRepository(client *ent.Client) *LawRepository {
	return &LawRepository{
		client: client,
	}
}

func (r *LawRepository) List(ctx context.Context) ([]*ent.Law, error) {
	return r.client.Law.Query().
		WithArticulos(func(q *ent.ArticleQuery) {
			q.Order(ent.Asc(article.FieldNumero))
		}).
		Order(ent.Asc(law.FieldNombre)).
		All(ctx)
}

func (r *LawRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.client.Law.Query().Where(law.ID(id)).Exist(ctx)
}

func (r *LawRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Law, error) {
	return r.client.Law.Query().
		Where(law.ID(id)).
		WithArticulos(func(q *ent.ArticleQuery) {
			q.Order(ent.Asc(article.FieldNumero))
		}).
		Only(ctx)
}
