package calendar

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"rosta-service/internal/app/config"
	"rosta-service/internal/app/contracts"
	"rosta-service/internal/pkg/constvars"
	"rosta-service/internal/pkg/dto/requests"
	"rosta-service/internal/pkg/dto/responses"
	"rosta-service/internal/pkg/exceptions"
	"rosta-service/internal/pkg/utils"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

type calendarUsecase struct {
	ShiftRepository  contracts.ShiftRepository
	ShiftTypeUsecase contracts.ShiftTypeUsecase
	DeviceUsecase    contracts.DeviceUsecase
	RedisRepository  contracts.RedisRepository
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger
	location         *time.Location
}

var (
	calendarUsecaseInstance contracts.CalendarUsecase
	onceCalendarUsecase     sync.Once
	calendarUsecaseError    error
)

func NewCalendarUsecase(
	shiftMongoRepository contracts.ShiftRepository,
	shiftTypeUsecase contracts.ShiftTypeUsecase,
	deviceUsecase contracts.DeviceUsecase,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) (contracts.CalendarUsecase, error) {
	onceCalendarUsecase.Do(func() {
		location, err := time.LoadLocation(internalConfig.App.Timezone)
		if err != nil {
			calendarUsecaseError = err
			return
		}
		calendarUsecaseInstance = &calendarUsecase{
			ShiftRepository:  shiftMongoRepository,
			ShiftTypeUsecase: shiftTypeUsecase,
			DeviceUsecase:    deviceUsecase,
			RedisRepository:  redisRepository,
			InternalConfig:   internalConfig,
			Log:              logger,
			location:         location,
		}
	})

	return calendarUsecaseInstance, calendarUsecaseError
}

func (uc *calendarUsecase) GetMonthView(ctx context.Context, request *requests.MonthView) (*responses.MonthView, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("calendarUsecase.GetMonthView called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("year", request.Year),
		zap.Int(constvars.LoggingMonthKey, request.Month),
		zap.String("mode", request.Mode),
	)

	firstWeekday := uc.effectiveFirstWeekday(ctx, requestID, request.FirstWeekday)
	monthAnchor := time.Date(request.Year, time.Month(request.Month), 1, 0, 0, 0, 0, uc.location)
	cells := BuildMonthGrid(monthAnchor, firstWeekday)
	dated := DatedIndices(cells)

	records, err := uc.monthRecords(ctx, requestID, request.Year, time.Month(request.Month))
	if err != nil {
		return nil, err
	}
	aggregates := AggregateByDay(records)

	selected := make([]DayKey, len(request.Selected))
	for i, key := range request.Selected {
		selected[i] = DayKey(key)
	}
	selection := NewSelection(SelectionMode(request.Mode), selected, DayKey(request.Focused))

	response := &responses.MonthView{
		Year:         request.Year,
		Month:        request.Month,
		FirstWeekday: firstWeekday,
		Cells:        make([]responses.MonthCell, len(cells)),
	}
	for i, cell := range cells {
		var aggregate *DayAggregate
		var date string
		if cell.Dated() {
			key := KeyFor(cell.Date)
			date = string(key)
			if dayAggregate, ok := aggregates[key]; ok {
				aggregate = &dayAggregate
			}
		}
		presentation := ClassifyCell(cell, aggregate, selection)
		response.Cells[i] = responses.MonthCell{
			Index:        cell.Index,
			Date:         date,
			Kind:         string(presentation.Kind),
			HasShift:     presentation.HasShift,
			AllDayShift:  presentation.AllDayShift,
			Symbol:       presentation.Symbol,
			Selected:     presentation.Selected,
			SelectedDate: presentation.SelectedDate,
			Action:       string(presentation.Action),
			Edges:        ResolveEdges(cell.Index, dated).Strings(),
		}
	}

	uc.Log.Info("calendarUsecase.GetMonthView succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("first_weekday", firstWeekday),
		zap.Int("record_count", len(records)),
	)
	return response, nil
}

func (uc *calendarUsecase) GetMonthGrid(ctx context.Context, request *requests.MonthView) (*responses.MonthGrid, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("calendarUsecase.GetMonthGrid called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("year", request.Year),
		zap.Int(constvars.LoggingMonthKey, request.Month),
	)

	firstWeekday := uc.effectiveFirstWeekday(ctx, requestID, request.FirstWeekday)
	monthAnchor := time.Date(request.Year, time.Month(request.Month), 1, 0, 0, 0, 0, uc.location)
	cells := BuildMonthGrid(monthAnchor, firstWeekday)
	dated := DatedIndices(cells)

	response := &responses.MonthGrid{
		Year:         request.Year,
		Month:        request.Month,
		FirstWeekday: firstWeekday,
		Cells:        make([]responses.GridCell, len(cells)),
	}
	for i, cell := range cells {
		var date string
		if cell.Dated() {
			date = string(KeyFor(cell.Date))
		}
		response.Cells[i] = responses.GridCell{
			Index: cell.Index,
			Date:  date,
			Edges: ResolveEdges(cell.Index, dated).Strings(),
		}
	}

	uc.Log.Info("calendarUsecase.GetMonthGrid succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("first_weekday", firstWeekday),
	)
	return response, nil
}

// effectiveFirstWeekday resolves the week start in precedence order: the
// request's explicit value, then the calling device's saved setting, then the
// roster-wide default.
func (uc *calendarUsecase) effectiveFirstWeekday(ctx context.Context, requestID string, requested int) int {
	if requested >= 1 && requested <= 7 {
		return requested
	}

	if deviceID := utils.GetDeviceID(ctx); deviceID != "" {
		settings, err := uc.DeviceUsecase.GetSettings(ctx, deviceID)
		if err != nil {
			uc.Log.Warn("calendarUsecase.effectiveFirstWeekday error fetching device settings, falling back to roster default",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingDeviceIDKey, deviceID),
				zap.Error(err),
			)
		} else if settings.FirstWeekday >= 1 && settings.FirstWeekday <= 7 {
			return settings.FirstWeekday
		}
	}

	return uc.InternalConfig.App.FirstWeekday
}

// monthRecords returns the month's shifts joined with their shift-type symbol
// and all-day flag. The per-month list is cached under the current calendar
// version; mutations bump the version, so stale entries are never read again
// and expire on their own TTL.
func (uc *calendarUsecase) monthRecords(ctx context.Context, requestID string, year int, month time.Month) ([]ShiftRecord, error) {
	version, err := uc.calendarVersion(ctx, requestID)
	if err != nil {
		return nil, err
	}
	cacheKey := fmt.Sprintf(constvars.RedisKeyMonthShiftsFormat, version, fmt.Sprintf("%04d-%02d", year, int(month)))

	cached, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err != nil {
		uc.Log.Error("calendarUsecase.monthRecords error retrieving data from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	var records []ShiftRecord
	if cached == "" {
		uc.Log.Info("calendarUsecase.monthRecords no data found in Redis, fetching from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, cacheKey),
		)

		start, end := utils.MonthRange(year, month, uc.location)
		shifts, err := uc.ShiftRepository.FindByDateRange(ctx, start, end)
		if err != nil {
			uc.Log.Error("calendarUsecase.monthRecords error fetching shifts from MongoDB",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}

		shiftTypes, err := uc.ShiftTypeUsecase.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		symbolsByID := make(map[string]responses.ShiftType, len(shiftTypes))
		for _, shiftType := range shiftTypes {
			symbolsByID[shiftType.ID] = shiftType
		}

		records = make([]ShiftRecord, 0, len(shifts))
		for _, shift := range shifts {
			record := ShiftRecord{Date: shift.Date}
			if shiftType, ok := symbolsByID[shift.ShiftTypeID]; ok {
				record.Symbol = shiftType.Symbol
				record.AllDay = shiftType.AllDay
			}
			records = append(records, record)
		}

		ttl := time.Duration(uc.InternalConfig.App.CalendarCacheTTLInSeconds) * time.Second
		err = uc.RedisRepository.Set(ctx, cacheKey, records, ttl)
		if err != nil {
			uc.Log.Error("calendarUsecase.monthRecords error caching data in Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
	} else {
		err = json.Unmarshal([]byte(cached), &records)
		if err != nil {
			uc.Log.Error("calendarUsecase.monthRecords error parsing JSON from Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrCannotParseJSON(err)
		}
	}

	return records, nil
}

func (uc *calendarUsecase) calendarVersion(ctx context.Context, requestID string) (int, error) {
	raw, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyCalendarVersion)
	if err != nil {
		uc.Log.Error("calendarUsecase.calendarVersion error retrieving version from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, err
	}
	if raw == "" {
		return 0, nil
	}
	version, err := strconv.Atoi(raw)
	if err != nil {
		uc.Log.Error("calendarUsecase.calendarVersion error parsing version from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, constvars.RedisKeyCalendarVersion),
			zap.Error(err),
		)
		return 0, exceptions.ErrRedisGet(err)
	}
	return version, nil
}
