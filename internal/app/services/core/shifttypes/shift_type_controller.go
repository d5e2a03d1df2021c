package shifttypes

import (
	"context"
	"net/http"
	"time"

	"rosta-service/internal/app/contracts"
	"rosta-service/internal/pkg/constvars"
	"rosta-service/internal/pkg/dto/requests"
	"rosta-service/internal/pkg/exceptions"
	"rosta-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ShiftTypeController struct {
	Log              *zap.Logger
	ShiftTypeUsecase contracts.ShiftTypeUsecase
}

func NewShiftTypeController(logger *zap.Logger, shiftTypeUsecase contracts.ShiftTypeUsecase) *ShiftTypeController {
	return &ShiftTypeController{
		Log:              logger,
		ShiftTypeUsecase: shiftTypeUsecase,
	}
}

func (ctrl *ShiftTypeController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ShiftTypeUsecase.FindAll(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetShiftTypesSuccessMessage, response)
}

func (ctrl *ShiftTypeController) FindByID(w http.ResponseWriter, r *http.Request) {
	shiftTypeID := chi.URLParam(r, constvars.URLParamShiftTypeID)

	err := utils.ValidateUrlParamID(shiftTypeID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamShiftTypeID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ShiftTypeUsecase.FindByID(ctx, shiftTypeID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetShiftTypesSuccessMessage, response)
}

func (ctrl *ShiftTypeController) Create(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.CreateShiftType)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// Sanitize request
	utils.SanitizeCreateShiftTypeRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ShiftTypeUsecase.Create(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateShiftTypeSuccessMessage, response)
}

func (ctrl *ShiftTypeController) Update(w http.ResponseWriter, r *http.Request) {
	shiftTypeID := chi.URLParam(r, constvars.URLParamShiftTypeID)

	err := utils.ValidateUrlParamID(shiftTypeID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamShiftTypeID))
		return
	}

	// Bind body to request
	request := new(requests.UpdateShiftType)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// Sanitize request
	utils.SanitizeUpdateShiftTypeRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ShiftTypeUsecase.Update(ctx, shiftTypeID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateShiftTypeSuccessMessage, response)
}

func (ctrl *ShiftTypeController) DeleteByID(w http.ResponseWriter, r *http.Request) {
	shiftTypeID := chi.URLParam(r, constvars.URLParamShiftTypeID)

	err := utils.ValidateUrlParamID(shiftTypeID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamShiftTypeID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err = ctrl.ShiftTypeUsecase.DeleteByID(ctx, shiftTypeID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteShiftTypeSuccessMessage, nil)
}
