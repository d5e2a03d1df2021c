package shifts

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"rosta-service/internal/app/config"
	"rosta-service/internal/app/contracts"
	"rosta-service/internal/app/models"
	"rosta-service/internal/pkg/constvars"
	"rosta-service/internal/pkg/dto/requests"
	"rosta-service/internal/pkg/dto/responses"
	"rosta-service/internal/pkg/exceptions"
	"rosta-service/internal/pkg/utils"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type shiftUsecase struct {
	ShiftRepository     contracts.ShiftRepository
	ShiftTypeRepository contracts.ShiftTypeRepository
	RedisRepository     contracts.RedisRepository
	LockerService       contracts.LockerService
	EventPublisher      contracts.EventPublisher
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
	location            *time.Location
}

var (
	shiftUsecaseInstance contracts.ShiftUsecase
	onceShiftUsecase     sync.Once
	shiftUsecaseError    error
)

func NewShiftUsecase(
	shiftMongoRepository contracts.ShiftRepository,
	shiftTypeMongoRepository contracts.ShiftTypeRepository,
	redisRepository contracts.RedisRepository,
	lockerService contracts.LockerService,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) (contracts.ShiftUsecase, error) {
	onceShiftUsecase.Do(func() {
		location, err := time.LoadLocation(internalConfig.App.Timezone)
		if err != nil {
			shiftUsecaseError = err
			return
		}
		shiftUsecaseInstance = &shiftUsecase{
			ShiftRepository:     shiftMongoRepository,
			ShiftTypeRepository: shiftTypeMongoRepository,
			RedisRepository:     redisRepository,
			LockerService:       lockerService,
			EventPublisher:      eventPublisher,
			InternalConfig:      internalConfig,
			Log:                 logger,
			location:            location,
		}
	})

	return shiftUsecaseInstance, shiftUsecaseError
}

func (uc *shiftUsecase) Create(ctx context.Context, request *requests.CreateShift) (*responses.Shift, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("shiftUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("date", request.Date),
		zap.String(constvars.LoggingShiftTypeIDKey, request.ShiftTypeID),
	)

	date, err := utils.ParseDayKey(request.Date, uc.location)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}

	shiftType, err := uc.ShiftTypeRepository.FindByID(ctx, request.ShiftTypeID)
	if err != nil {
		uc.Log.Error("shiftUsecase.Create error fetching shift type from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if shiftType == nil {
		return nil, exceptions.ErrShiftTypeNotExist(nil)
	}

	unlock, err := uc.lockDays(ctx, requestID, []string{request.Date})
	if err != nil {
		return nil, err
	}
	defer unlock()

	onDay, err := uc.ShiftRepository.FindByDates(ctx, []time.Time{date})
	if err != nil {
		uc.Log.Error("shiftUsecase.Create error fetching shifts from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	for _, existing := range onDay {
		if existing.ShiftTypeID == request.ShiftTypeID {
			return nil, exceptions.ErrDuplicateShift(nil)
		}
	}

	shift := &models.Shift{
		Date:        date,
		ShiftTypeID: request.ShiftTypeID,
		Source:      constvars.ShiftSourceManual,
		Note:        request.Note,
	}
	shift.SetCreatedAtUpdatedAt()

	created, err := uc.ShiftRepository.Create(ctx, shift)
	if err != nil {
		uc.Log.Error("shiftUsecase.Create error inserting data into MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.bumpCalendarVersion(ctx, requestID)
	if err != nil {
		return nil, err
	}

	response := created.ConvertIntoResponse()
	response.ShiftTypeName = shiftType.Name
	response.Symbol = shiftType.Symbol
	response.AllDay = shiftType.AllDay

	uc.publishEvent(ctx, requestID, constvars.EventShiftCreated, response)

	uc.Log.Info("shiftUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingShiftIDKey, created.ID),
	)
	return &response, nil
}

func (uc *shiftUsecase) FindAll(ctx context.Context, request *requests.GetShifts) ([]responses.Shift, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("shiftUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("year", request.Year),
		zap.Int(constvars.LoggingMonthKey, request.Month),
	)

	start, end := utils.MonthRange(request.Year, time.Month(request.Month), uc.location)
	shifts, err := uc.ShiftRepository.FindByDateRange(ctx, start, end)
	if err != nil {
		uc.Log.Error("shiftUsecase.FindAll error fetching data from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response, err := uc.attachShiftTypes(ctx, requestID, shifts)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("shiftUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("shift_count", len(response)),
	)
	return response, nil
}

func (uc *shiftUsecase) FindByID(ctx context.Context, shiftID string) (*responses.Shift, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("shiftUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingShiftIDKey, shiftID),
	)

	shift, err := uc.ShiftRepository.FindByID(ctx, shiftID)
	if err != nil {
		uc.Log.Error("shiftUsecase.FindByID error fetching data from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if shift == nil {
		return nil, exceptions.ErrShiftNotExist(nil)
	}

	enriched, err := uc.attachShiftTypes(ctx, requestID, []models.Shift{*shift})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("shiftUsecase.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingShiftIDKey, shift.ID),
	)
	return &enriched[0], nil
}

func (uc *shiftUsecase) DeleteByID(ctx context.Context, shiftID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("shiftUsecase.DeleteByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingShiftIDKey, shiftID),
	)

	shift, err := uc.ShiftRepository.FindByID(ctx, shiftID)
	if err != nil {
		uc.Log.Error("shiftUsecase.DeleteByID error fetching data from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if shift == nil {
		return exceptions.ErrShiftNotExist(nil)
	}

	err = uc.ShiftRepository.DeleteByID(ctx, shiftID)
	if err != nil {
		uc.Log.Error("shiftUsecase.DeleteByID error deleting data from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	err = uc.bumpCalendarVersion(ctx, requestID)
	if err != nil {
		return err
	}

	uc.publishEvent(ctx, requestID, constvars.EventShiftDeleted, shift.ConvertIntoResponse())

	uc.Log.Info("shiftUsecase.DeleteByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingShiftIDKey, shiftID),
	)
	return nil
}

func (uc *shiftUsecase) BulkCreate(ctx context.Context, request *requests.BulkCreateShifts) (*responses.BulkShiftResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("shiftUsecase.BulkCreate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingShiftTypeIDKey, request.ShiftTypeID),
		zap.Int("date_count", len(request.Dates)),
	)

	shiftType, err := uc.ShiftTypeRepository.FindByID(ctx, request.ShiftTypeID)
	if err != nil {
		uc.Log.Error("shiftUsecase.BulkCreate error fetching shift type from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if shiftType == nil {
		return nil, exceptions.ErrShiftTypeNotExist(nil)
	}

	dayKeys, dates, err := uc.parseDayKeys(request.Dates)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}

	unlock, err := uc.lockDays(ctx, requestID, dayKeys)
	if err != nil {
		return nil, err
	}
	defer unlock()

	existing, err := uc.ShiftRepository.FindByDates(ctx, dates)
	if err != nil {
		uc.Log.Error("shiftUsecase.BulkCreate error fetching shifts from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	taken := make(map[string]struct{}, len(existing))
	for _, shift := range existing {
		if shift.ShiftTypeID == request.ShiftTypeID {
			taken[utils.FormatDayKey(shift.Date)] = struct{}{}
		}
	}

	var toCreate []models.Shift
	var skipped []string
	for i, dayKey := range dayKeys {
		if _, exists := taken[dayKey]; exists {
			skipped = append(skipped, dayKey)
			continue
		}
		shift := models.Shift{
			Date:        dates[i],
			ShiftTypeID: request.ShiftTypeID,
			Source:      constvars.ShiftSourceManual,
		}
		shift.SetCreatedAtUpdatedAt()
		toCreate = append(toCreate, shift)
	}

	created, err := uc.ShiftRepository.CreateMany(ctx, toCreate)
	if err != nil {
		uc.Log.Error("shiftUsecase.BulkCreate error inserting data into MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if len(created) > 0 {
		err = uc.bumpCalendarVersion(ctx, requestID)
		if err != nil {
			return nil, err
		}
	}

	result := &responses.BulkShiftResult{
		Requested: len(request.Dates),
		Affected:  len(created),
		Skipped:   skipped,
	}

	uc.publishEvent(ctx, requestID, constvars.EventShiftsBulkCreated, bulkEventPayload{
		ShiftTypeID: request.ShiftTypeID,
		Dates:       dayKeys,
		Affected:    len(created),
		Skipped:     skipped,
	})

	uc.Log.Info("shiftUsecase.BulkCreate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("created_count", len(created)),
		zap.Int("skipped_count", len(skipped)),
	)
	return result, nil
}

func (uc *shiftUsecase) BulkDelete(ctx context.Context, request *requests.BulkShiftDates) (*responses.BulkShiftResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("shiftUsecase.BulkDelete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("date_count", len(request.Dates)),
	)

	dayKeys, dates, err := uc.parseDayKeys(request.Dates)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}

	unlock, err := uc.lockDays(ctx, requestID, dayKeys)
	if err != nil {
		return nil, err
	}
	defer unlock()

	deleted, err := uc.ShiftRepository.DeleteByDates(ctx, dates)
	if err != nil {
		uc.Log.Error("shiftUsecase.BulkDelete error deleting data from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if deleted > 0 {
		err = uc.bumpCalendarVersion(ctx, requestID)
		if err != nil {
			return nil, err
		}
	}

	result := &responses.BulkShiftResult{
		Requested: len(request.Dates),
		Affected:  int(deleted),
	}

	uc.publishEvent(ctx, requestID, constvars.EventShiftsBulkDeleted, bulkEventPayload{
		Dates:    dayKeys,
		Affected: int(deleted),
	})

	uc.Log.Info("shiftUsecase.BulkDelete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("deleted_count", deleted),
	)
	return result, nil
}

type bulkEventPayload struct {
	ShiftTypeID string   `json:"shift_type_id,omitempty"`
	Dates       []string `json:"dates"`
	Affected    int      `json:"affected"`
	Skipped     []string `json:"skipped,omitempty"`
}

// parseDayKeys normalizes the requested dates: duplicates collapse and the
// result is sorted so day locks are always taken in the same order.
func (uc *shiftUsecase) parseDayKeys(rawDates []string) ([]string, []time.Time, error) {
	seen := make(map[string]struct{}, len(rawDates))
	dayKeys := make([]string, 0, len(rawDates))
	for _, raw := range rawDates {
		if _, duplicate := seen[raw]; duplicate {
			continue
		}
		seen[raw] = struct{}{}
		dayKeys = append(dayKeys, raw)
	}
	sort.Strings(dayKeys)

	dates := make([]time.Time, len(dayKeys))
	for i, dayKey := range dayKeys {
		date, err := utils.ParseDayKey(dayKey, uc.location)
		if err != nil {
			return nil, nil, err
		}
		dates[i] = date
	}
	return dayKeys, dates, nil
}

// lockDays takes the per-day write locks for every key and returns a single
// release function. Keys must already be sorted; two writers touching the
// same days then always collide instead of deadlocking.
func (uc *shiftUsecase) lockDays(ctx context.Context, requestID string, dayKeys []string) (func(), error) {
	ttl := time.Duration(uc.InternalConfig.Session.LockTTLInSeconds) * time.Second

	type heldLock struct {
		key   string
		value string
	}
	held := make([]heldLock, 0, len(dayKeys))
	release := func() {
		for _, lock := range held {
			err := uc.LockerService.Unlock(ctx, lock.key, lock.value)
			if err != nil {
				uc.Log.Warn("shiftUsecase.lockDays error releasing day lock",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingRedisKey, lock.key),
					zap.Error(err),
				)
			}
		}
	}

	for _, dayKey := range dayKeys {
		key := fmt.Sprintf(constvars.RedisKeyDayLockFormat, dayKey)
		acquired, lockValue, err := uc.LockerService.TryLock(ctx, key, ttl)
		if err != nil {
			release()
			uc.Log.Error("shiftUsecase.lockDays error acquiring day lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, key),
				zap.Error(err),
			)
			return nil, err
		}
		if !acquired {
			release()
			return nil, exceptions.ErrDayLocked(nil)
		}
		held = append(held, heldLock{key: key, value: lockValue})
	}

	return release, nil
}

func (uc *shiftUsecase) bumpCalendarVersion(ctx context.Context, requestID string) error {
	err := uc.RedisRepository.Increment(ctx, constvars.RedisKeyCalendarVersion)
	if err != nil {
		uc.Log.Error("shiftUsecase.bumpCalendarVersion error bumping calendar version in Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// publishEvent queues a roster event for subscriber delivery. The write has
// already landed when this runs, so a failed publish only costs the
// notification and is logged instead of failing the request.
func (uc *shiftUsecase) publishEvent(ctx context.Context, requestID, eventType string, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		uc.Log.Error("shiftUsecase.publishEvent error marshalling payload",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventTypeKey, eventType),
			zap.Error(err),
		)
		return
	}

	event := &models.RosterEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().Unix(),
		Payload:    body,
	}
	err = uc.EventPublisher.PublishEvent(ctx, event)
	if err != nil {
		uc.Log.Error("shiftUsecase.publishEvent error publishing event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventTypeKey, eventType),
			zap.Error(err),
		)
	}
}

func (uc *shiftUsecase) attachShiftTypes(ctx context.Context, requestID string, shifts []models.Shift) ([]responses.Shift, error) {
	shiftTypes, err := uc.ShiftTypeRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("shiftUsecase.attachShiftTypes error fetching shift types from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	byID := make(map[string]models.ShiftType, len(shiftTypes))
	for _, shiftType := range shiftTypes {
		byID[shiftType.ID] = shiftType
	}

	response := make([]responses.Shift, len(shifts))
	for i, shift := range shifts {
		response[i] = shift.ConvertIntoResponse()
		if shiftType, ok := byID[shift.ShiftTypeID]; ok {
			response[i].ShiftTypeName = shiftType.Name
			response[i].Symbol = shiftType.Symbol
			response[i].AllDay = shiftType.AllDay
		}
	}
	return response, nil
}
