package exports

import (
	"context"
	"net/http"
	"time"

	"rosta-service/internal/app/contracts"
	"rosta-service/internal/pkg/constvars"
	"rosta-service/internal/pkg/dto/requests"
	"rosta-service/internal/pkg/exceptions"
	"rosta-service/internal/pkg/utils"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ExportController struct {
	Log           *zap.Logger
	ExportUsecase contracts.ExportUsecase
}

func NewExportController(logger *zap.Logger, exportUsecase contracts.ExportUsecase) *ExportController {
	return &ExportController{
		Log:           logger,
		ExportUsecase: exportUsecase,
	}
}

func (ctrl *ExportController) CreateExport(w http.ResponseWriter, r *http.Request) {
	request := &requests.CreateExport{}

	// Bind body to request
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	// Rendering plus the upload round trip can outlast the default budget.
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.ExportUsecase.CreateExport(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateExportSuccessMessage, response)
}
