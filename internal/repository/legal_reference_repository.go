package repository

import (
	"NovedadesAPI/ent"
	"NovedadesAPI/ent/article"
	"NovedadesAPI/ent/legalreference"
	"context"

	"github.com/google/uuid"
)

type LegalReferenceRepository struct {
	client *ent.Client
}

func NewLegalReferenceRepository(client *ent.Client) *LegalReferenceRepository {
	return &LegalReferenceRepository{
		client: client,
	}
}

// ArticleBelongsToLaw confirms the article exists under the given law.
func (r *LegalReferenceRepository) ArticleBelongsToLaw(ctx context.Context, articuloID, leyID uuid.UUID) (bool, error) {
	return r.client.Article.Query().
		Where(article.ID(articuloID), article.LeyID(leyID)).
		Exist(ctx)
}

// Link records the (report, law, article) association. Re-linking an
// existing triple is a no-op; the bool result reports whether a new row
// was created.
func (r *LegalReferenceRepository) Link(ctx context.Context, reportID, leyID uuid.UUID, articuloID *uuid.UUID) (bool, error) {
	exists, err := r.exists(ctx, reportID, leyID, articuloID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	create := r.client.LegalReference.Create().
		SetReportID(reportID).
		SetLeyID(leyID)
	if articuloID != nil {
		create.SetArticuloID(*articuloID)
	}

	if _, err := create.Save(ctx); err != nil {
		// A concurrent link of the same triple trips the unique index;
		// that still satisfies idempotence.
		if ent.IsConstraintError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *LegalReferenceRepository) exists(ctx context.Context, reportID, leyID uuid.UUID, articuloID *uuid.UUID) (bool, error) {
	query := r.client.LegalReference.Query().
		Where(
			legalreference.ReportID(reportID),
			legalreference.LeyID(leyID),
		)
	if articuloID != nil {
		query = query.Where(legalreference.ArticuloID(*articuloID))
	} else {
		query = query.Where(legalreference.ArticuloIDIsNil())
	}
	return query.Exist(ctx)
}

// Unlink removes the association. With articuloID nil every link for the
// (report, law) pair goes away, whatever its article.
func (r *LegalReferenceRepository) Unlink(ctx context.Context, reportID, leyID uuid.UUID, articuloID *uuid.UUID) (int, error) {
	del := r.client.LegalReference.Delete().
		Where(
			legalreference.ReportID(reportID),
			legalreference.LeyID(leyID),
		)
	if articuloID != nil {
		del = r.client.LegalReference.Delete().
			Where(
				legalreference.ReportID(reportID),
				legalreference.LeyID(leyID),
				legalreference.ArticuloID(*articuloID),
			)
	}
	return del.Exec(ctx)
}

// ListForReport returns the confirmed links with their law and article
// projections, oldest link first.
func (r *LegalReferenceRepository) ListForReport(ctx context.Context, reportID uuid.UUID) ([]*ent.LegalReference, error) {
	return r.client.LegalReference.Query().
		Where(legalreference.ReportID(reportID)).
		WithLey().
		WithArticulo().
		Order(ent.Asc(legalreference.FieldCreatedAt), ent.Asc(legalreference.FieldID)).
		All(ctx)
}

func (r *LegalReferenceRepository) DeleteByReport(ctx context.Context, reportID uuid.UUID) (int, error) {
	return r.client.LegalReference.Delete().
		Where(legalreference.ReportID(reportID)).
		Exec(ctx)
}
