package calendar

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"rosta-service/internal/app/contracts"
	"rosta-service/internal/pkg/constvars"
	"rosta-service/internal/pkg/dto/requests"
	"rosta-service/internal/pkg/exceptions"
	"rosta-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CalendarController struct {
	Log             *zap.Logger
	CalendarUsecase contracts.CalendarUsecase
}

func NewCalendarController(logger *zap.Logger, calendarUsecase contracts.CalendarUsecase) *CalendarController {
	return &CalendarController{
		Log:             logger,
		CalendarUsecase: calendarUsecase,
	}
}

func (ctrl *CalendarController) GetMonthView(w http.ResponseWriter, r *http.Request) {
	request, err := ctrl.buildMonthViewRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.CalendarUsecase.GetMonthView(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMonthViewSuccessMessage, response)
}

func (ctrl *CalendarController) GetMonthGrid(w http.ResponseWriter, r *http.Request) {
	request, err := ctrl.buildMonthViewRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.CalendarUsecase.GetMonthGrid(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMonthGridSuccessMessage, response)
}

// buildMonthViewRequest assembles the request from the year/month path
// params and the optional presentation query params.
func (ctrl *CalendarController) buildMonthViewRequest(r *http.Request) (*requests.MonthView, error) {
	year, err := strconv.Atoi(chi.URLParam(r, constvars.URLParamYear))
	if err != nil {
		return nil, exceptions.ErrInvalidFormat(err, constvars.URLParamYear)
	}
	month, err := strconv.Atoi(chi.URLParam(r, constvars.URLParamMonth))
	if err != nil {
		return nil, exceptions.ErrInvalidFormat(err, constvars.URLParamMonth)
	}

	request := &requests.MonthView{
		Year:    year,
		Month:   month,
		Mode:    r.URL.Query().Get(constvars.URLQueryParamMode),
		Focused: r.URL.Query().Get(constvars.URLQueryParamFocused),
	}

	if raw := r.URL.Query().Get(constvars.URLQueryParamFirstWeekday); raw != "" {
		firstWeekday, err := strconv.Atoi(raw)
		if err != nil {
			return nil, exceptions.ErrInvalidFormat(err, constvars.URLQueryParamFirstWeekday)
		}
		request.FirstWeekday = firstWeekday
	}

	if raw := r.URL.Query().Get(constvars.URLQueryParamSelected); raw != "" {
		request.Selected = strings.Split(raw, ",")
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	return request, nil
}
