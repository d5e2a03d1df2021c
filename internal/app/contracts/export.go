package contracts

import (
	"context"
	"rosta-service/internal/pkg/dto/requests"
	"rosta-service/internal/pkg/dto/responses"
)

type ExportUsecase interface {
	CreateExport(ctx context.Context, request *requests.CreateExport) (*responses.Export, error)
}
