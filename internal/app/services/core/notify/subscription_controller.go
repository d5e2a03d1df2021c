package notify

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
	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SubscriptionController struct {
	Log                 *zap.Logger
	SubscriptionUsecase contracts.SubscriptionUsecase
}

func NewSubscriptionController(logger *zap.Logger, subscriptionUsecase contracts.SubscriptionUsecase) *SubscriptionController {
	return &SubscriptionController{
		Log:                 logger,
		SubscriptionUsecase: subscriptionUsecase,
	}
}

func (ctrl *SubscriptionController) Create(w http.ResponseWriter, r *http.Request) {
	request := &requests.CreateSubscription{}

	// Bind body to request
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// Sanitize request
	utils.SanitizeCreateSubscriptionRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.SubscriptionUsecase.Create(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateSubscriptionSuccessMessage, response)
}

func (ctrl *SubscriptionController) FindAll(w http.ResponseWriter, r *http.Request) {
	pageStr := r.URL.Query().Get("page")
	pageSizeStr := r.URL.Query().Get("page_size")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page <= 0 {
		page = 1
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize <= 0 {
		pageSize = 10
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, paginationData, err := ctrl.SubscriptionUsecase.FindAll(ctx, page, pageSize)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetSubscriptionsSuccessMessage, paginationData, response)
}

func (ctrl *SubscriptionController) DeleteByID(w http.ResponseWriter, r *http.Request) {
	subscriptionID := chi.URLParam(r, constvars.URLParamSubscriptionID)
	if err := utils.ValidateUrlParamID(subscriptionID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamSubscriptionID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.SubscriptionUsecase.DeleteByID(ctx, subscriptionID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteSubscriptionSuccessMessage, nil)
}
