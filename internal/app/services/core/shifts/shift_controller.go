package shifts

import (
	"context"
	"net/http"
	"strconv"
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

type ShiftController struct {
	Log          *zap.Logger
	ShiftUsecase contracts.ShiftUsecase
}

func NewShiftController(logger *zap.Logger, shiftUsecase contracts.ShiftUsecase) *ShiftController {
	return &ShiftController{
		Log:          logger,
		ShiftUsecase: shiftUsecase,
	}
}

func (ctrl *ShiftController) FindAll(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get(constvars.URLQueryParamYear))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidFormat(err, constvars.URLQueryParamYear))
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get(constvars.URLQueryParamMonth))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidFormat(err, constvars.URLQueryParamMonth))
		return
	}

	request := &requests.GetShifts{Year: year, Month: month}

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ShiftUsecase.FindAll(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetShiftsSuccessMessage, response)
}

func (ctrl *ShiftController) FindByID(w http.ResponseWriter, r *http.Request) {
	shiftID := chi.URLParam(r, constvars.URLParamShiftID)

	err := utils.ValidateUrlParamID(shiftID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamShiftID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ShiftUsecase.FindByID(ctx, shiftID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetShiftsSuccessMessage, response)
}

func (ctrl *ShiftController) Create(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.CreateShift)
	err := json.NewDecoder(r.Body).Decode(&request)
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

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ShiftUsecase.Create(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateShiftSuccessMessage, response)
}

func (ctrl *ShiftController) DeleteByID(w http.ResponseWriter, r *http.Request) {
	shiftID := chi.URLParam(r, constvars.URLParamShiftID)

	err := utils.ValidateUrlParamID(shiftID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamShiftID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err = ctrl.ShiftUsecase.DeleteByID(ctx, shiftID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteShiftSuccessMessage, nil)
}

func (ctrl *ShiftController) BulkCreate(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.BulkCreateShifts)
	err := json.NewDecoder(r.Body).Decode(&request)
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

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ShiftUsecase.BulkCreate(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.BulkCreateShiftsSuccessMessage, response)
}

func (ctrl *ShiftController) BulkDelete(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.BulkShiftDates)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// Sanitize request
	utils.SanitizeBulkShiftDatesRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ShiftUsecase.BulkDelete(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BulkDeleteShiftsSuccessMessage, response)
}
