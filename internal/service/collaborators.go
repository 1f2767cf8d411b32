package service

import (
	"NovedadesAPI/ent"
	"NovedadesAPI/internal/model"
	"NovedadesAPI/internal/queue"
	"NovedadesAPI/internal/repository"
	"context"
	"time"

	"github.com/google/uuid"
)

// Collaborator contracts consumed by the services. The concrete
// implementations live in repository, adapter, and queue; tests inject
// in-memory fakes.

type ReportStore interface {
	Create(ctx context.Context, rec repository.CreateReportRecord) (*ent.Report, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Report, error)
	GetWithRelations(ctx context.Context, id uuid.UUID) (*ent.Report, error)
	Update(ctx context.Context, id uuid.UUID, rec repository.UpdateReportRecord) (*ent.Report, error)
	AttachArtifacts(ctx context.Context, id uuid.UUID, version int, pdfKey, docxKey string) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddImage(ctx context.Context, reportID uuid.UUID, fileName, originalName string, orden int) (*ent.ReportImage, error)
	ListImages(ctx context.Context, reportID uuid.UUID) ([]*ent.ReportImage, error)
	DeleteImages(ctx context.Context, reportID uuid.UUID) (int, error)
	ListByOwner(ctx context.Context, owner *model.AuthUser, offset, limit int) ([]*ent.Report, int, error)
	Search(ctx context.Context, owner *model.AuthUser, f model.SearchReportFilter) ([]*ent.Report, int, error)
	Stats(ctx context.Context, owner *model.AuthUser) (*model.ReportStatsDTO, error)
	ListStalePending(ctx context.Context, cutoff time.Time) ([]*ent.Report, error)
}

type LegalStore interface {
	ArticleBelongsToLaw(ctx context.Context, articuloID, leyID uuid.UUID) (bool, error)
	Link(ctx context.Context, reportID, leyID uuid.UUID, articuloID *uuid.UUID) (bool, error)
	Unlink(ctx context.Context, reportID, leyID uuid.UUID, articuloID *uuid.UUID) (int, error)
	ListForReport(ctx context.Context, reportID uuid.UUID) ([]*ent.LegalReference, error)
	DeleteByReport(ctx context.Context, reportID uuid.UUID) (int, error)
}

type LawStore interface {
	List(ctx context.Context) ([]*ent.Law, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Law, error)
}

type AssetGateway interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	PublicURL(key string) string
}

type TaskQueue interface {
	Enqueue(ctx context.Context, task queue.RenderTask) error
}

type CaptchaVerifier interface {
	Verify(token, ip string) error
}
