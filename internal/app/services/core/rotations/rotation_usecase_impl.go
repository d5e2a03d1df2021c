package rotations

import (
	"context"
	"fmt"
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

type rotationUsecase struct {
	RotationRepository  contracts.RotationRepository
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
	rotationUsecaseInstance contracts.RotationUsecase
	onceRotationUsecase     sync.Once
	rotationUsecaseError    error
)

func NewRotationUsecase(
	rotationMongoRepository contracts.RotationRepository,
	shiftMongoRepository contracts.ShiftRepository,
	shiftTypeMongoRepository contracts.ShiftTypeRepository,
	redisRepository contracts.RedisRepository,
	lockerService contracts.LockerService,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) (contracts.RotationUsecase, error) {
	onceRotationUsecase.Do(func() {
		location, err := time.LoadLocation(internalConfig.App.Timezone)
		if err != nil {
			rotationUsecaseError = err
			return
		}
		rotationUsecaseInstance = &rotationUsecase{
			RotationRepository:  rotationMongoRepository,
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

	return rotationUsecaseInstance, rotationUsecaseError
}

func (uc *rotationUsecase) Create(ctx context.Context, request *requests.CreateRotation) (*responses.Rotation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("rotationUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("rotation_name", request.Name),
	)

	err := validateWeekdays(request.Weekdays)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	shiftType, err := uc.ShiftTypeRepository.FindByID(ctx, request.ShiftTypeID)
	if err != nil {
		uc.Log.Error("rotationUsecase.Create error fetching shift type from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if shiftType == nil {
		return nil, exceptions.ErrShiftTypeNotExist(nil)
	}

	rotation := &models.Rotation{
		Name:        request.Name,
		ShiftTypeID: request.ShiftTypeID,
		Weekdays:    request.Weekdays,
		HorizonDays: request.HorizonDays,
		Active:      request.Active,
	}
	rotation.SetCreatedAtUpdatedAt()

	created, err := uc.RotationRepository.Create(ctx, rotation)
	if err != nil {
		uc.Log.Error("rotationUsecase.Create error inserting data into MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if created.Active {
		written, _, err := uc.materializeRotation(ctx, requestID, *created)
		if err != nil {
			return nil, err
		}
		if written > 0 {
			err = uc.bumpCalendarVersion(ctx, requestID)
			if err != nil {
				return nil, err
			}
		}
	}

	response := created.ConvertIntoResponse()

	uc.Log.Info("rotationUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRotationIDKey, created.ID),
	)
	return &response, nil
}

func (uc *rotationUsecase) FindAll(ctx context.Context) ([]responses.Rotation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("rotationUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	rotations, err := uc.RotationRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("rotationUsecase.FindAll error fetching data from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.Rotation, len(rotations))
	for i, eachRotation := range rotations {
		response[i] = eachRotation.ConvertIntoResponse()
	}

	uc.Log.Info("rotationUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("rotation_count", len(response)),
	)
	return response, nil
}

func (uc *rotationUsecase) FindByID(ctx context.Context, rotationID string) (*responses.Rotation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("rotationUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRotationIDKey, rotationID),
	)

	rotation, err := uc.RotationRepository.FindByID(ctx, rotationID)
	if err != nil {
		uc.Log.Error("rotationUsecase.FindByID error fetching data from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if rotation == nil {
		return nil, exceptions.ErrRotationNotExist(nil)
	}

	response := rotation.ConvertIntoResponse()
	return &response, nil
}

func (uc *rotationUsecase) Update(ctx context.Context, rotationID string, request *requests.UpdateRotation) (*responses.Rotation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("rotationUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRotationIDKey, rotationID),
	)

	err := validateWeekdays(request.Weekdays)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	rotation, err := uc.RotationRepository.FindByID(ctx, rotationID)
	if err != nil {
		uc.Log.Error("rotationUsecase.Update error fetching data from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if rotation == nil {
		return nil, exceptions.ErrRotationNotExist(nil)
	}

	shiftType, err := uc.ShiftTypeRepository.FindByID(ctx, request.ShiftTypeID)
	if err != nil {
		uc.Log.Error("rotationUsecase.Update error fetching shift type from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if shiftType == nil {
		return nil, exceptions.ErrShiftTypeNotExist(nil)
	}

	rotation.Name = request.Name
	rotation.ShiftTypeID = request.ShiftTypeID
	rotation.Weekdays = request.Weekdays
	rotation.HorizonDays = request.HorizonDays
	rotation.Active = request.Active
	rotation.SetUpdatedAt()

	updated, err := uc.RotationRepository.UpdateByID(ctx, rotationID, rotation)
	if err != nil {
		uc.Log.Error("rotationUsecase.Update error updating data in MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	// The plan changed: clear the days this rotation laid from today forward
	// and lay them again under the new plan.
	today := utils.StartOfDay(time.Now().In(uc.location))
	removed, err := uc.ShiftRepository.DeleteByRotationID(ctx, rotationID, today)
	if err != nil {
		uc.Log.Error("rotationUsecase.Update error clearing rotation shifts from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	var written int
	if updated.Active {
		written, _, err = uc.materializeRotation(ctx, requestID, *updated)
		if err != nil {
			return nil, err
		}
	}

	if removed > 0 || written > 0 {
		err = uc.bumpCalendarVersion(ctx, requestID)
		if err != nil {
			return nil, err
		}
	}

	response := updated.ConvertIntoResponse()

	uc.Log.Info("rotationUsecase.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRotationIDKey, updated.ID),
		zap.Int64("cleared_count", removed),
		zap.Int("written_count", written),
	)
	return &response, nil
}

func (uc *rotationUsecase) DeleteByID(ctx context.Context, rotationID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("rotationUsecase.DeleteByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRotationIDKey, rotationID),
	)

	rotation, err := uc.RotationRepository.FindByID(ctx, rotationID)
	if err != nil {
		uc.Log.Error("rotationUsecase.DeleteByID error fetching data from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if rotation == nil {
		return exceptions.ErrRotationNotExist(nil)
	}

	err = uc.RotationRepository.DeleteByID(ctx, rotationID)
	if err != nil {
		uc.Log.Error("rotationUsecase.DeleteByID error deleting data from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	// Past days stay on the roster as history; only the laid future goes.
	today := utils.StartOfDay(time.Now().In(uc.location))
	removed, err := uc.ShiftRepository.DeleteByRotationID(ctx, rotationID, today)
	if err != nil {
		uc.Log.Error("rotationUsecase.DeleteByID error clearing rotation shifts from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	if removed > 0 {
		err = uc.bumpCalendarVersion(ctx, requestID)
		if err != nil {
			return err
		}
	}

	uc.Log.Info("rotationUsecase.DeleteByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRotationIDKey, rotationID),
		zap.Int64("cleared_count", removed),
	)
	return nil
}

func (uc *rotationUsecase) Materialize(ctx context.Context) (*responses.MaterializeResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("rotationUsecase.Materialize called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	rotations, err := uc.RotationRepository.FindActive(ctx)
	if err != nil {
		uc.Log.Error("rotationUsecase.Materialize error fetching rotations from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := &responses.MaterializeResult{RotationsSeen: len(rotations)}
	for _, rotation := range rotations {
		written, skipped, err := uc.materializeRotation(ctx, requestID, rotation)
		if err != nil {
			return nil, err
		}
		result.ShiftsWritten += written
		result.DaysSkipped += skipped
	}

	if result.ShiftsWritten > 0 {
		err = uc.bumpCalendarVersion(ctx, requestID)
		if err != nil {
			return nil, err
		}
	}

	uc.publishEvent(ctx, requestID, constvars.EventRotationsExpanded, result)

	uc.Log.Info("rotationUsecase.Materialize succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("rotations_seen", result.RotationsSeen),
		zap.Int("shifts_written", result.ShiftsWritten),
		zap.Int("days_skipped", result.DaysSkipped),
	)
	return result, nil
}

// materializeRotation lays the rotation's days over [today, today+horizon).
// A day is skipped when it already carries a shift of the rotation's type,
// whoever wrote it; that keeps the one-type-per-day rule intact across
// manual writes and repeated runs.
func (uc *rotationUsecase) materializeRotation(ctx context.Context, requestID string, rotation models.Rotation) (int, int, error) {
	today := utils.StartOfDay(time.Now().In(uc.location))
	horizon := horizonFor(rotation, uc.InternalConfig.Rotation.HorizonDays)
	days := expandRotation(rotation, today, today.AddDate(0, 0, horizon))
	if len(days) == 0 {
		return 0, 0, nil
	}

	unlock, err := uc.lockDays(ctx, requestID, days)
	if err != nil {
		return 0, 0, err
	}
	defer unlock()

	existing, err := uc.ShiftRepository.FindByDates(ctx, days)
	if err != nil {
		uc.Log.Error("rotationUsecase.materializeRotation error fetching shifts from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, 0, err
	}
	taken := make(map[string]struct{}, len(existing))
	for _, shift := range existing {
		if shift.ShiftTypeID == rotation.ShiftTypeID {
			taken[utils.FormatDayKey(shift.Date)] = struct{}{}
		}
	}

	var toCreate []models.Shift
	skipped := 0
	for _, day := range days {
		if _, exists := taken[utils.FormatDayKey(day)]; exists {
			skipped++
			continue
		}
		shift := models.Shift{
			Date:        day,
			ShiftTypeID: rotation.ShiftTypeID,
			RotationID:  rotation.ID,
			Source:      constvars.ShiftSourceRotation,
		}
		shift.SetCreatedAtUpdatedAt()
		toCreate = append(toCreate, shift)
	}

	created, err := uc.ShiftRepository.CreateMany(ctx, toCreate)
	if err != nil {
		uc.Log.Error("rotationUsecase.materializeRotation error inserting shifts into MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, 0, err
	}

	return len(created), skipped, nil
}

// lockDays takes the same per-day write locks the shifts service uses, in
// chronological order, and returns one release function.
func (uc *rotationUsecase) lockDays(ctx context.Context, requestID string, days []time.Time) (func(), error) {
	ttl := time.Duration(uc.InternalConfig.Session.LockTTLInSeconds) * time.Second

	type heldLock struct {
		key   string
		value string
	}
	held := make([]heldLock, 0, len(days))
	release := func() {
		for _, lock := range held {
			err := uc.LockerService.Unlock(ctx, lock.key, lock.value)
			if err != nil {
				uc.Log.Warn("rotationUsecase.lockDays error releasing day lock",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingRedisKey, lock.key),
					zap.Error(err),
				)
			}
		}
	}

	for _, day := range days {
		key := fmt.Sprintf(constvars.RedisKeyDayLockFormat, utils.FormatDayKey(day))
		acquired, lockValue, err := uc.LockerService.TryLock(ctx, key, ttl)
		if err != nil {
			release()
			uc.Log.Error("rotationUsecase.lockDays error acquiring day lock",
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

func (uc *rotationUsecase) bumpCalendarVersion(ctx context.Context, requestID string) error {
	err := uc.RedisRepository.Increment(ctx, constvars.RedisKeyCalendarVersion)
	if err != nil {
		uc.Log.Error("rotationUsecase.bumpCalendarVersion error bumping calendar version in Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (uc *rotationUsecase) publishEvent(ctx context.Context, requestID, eventType string, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		uc.Log.Error("rotationUsecase.publishEvent error marshalling payload",
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
		uc.Log.Error("rotationUsecase.publishEvent error publishing event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventTypeKey, eventType),
			zap.Error(err),
		)
	}
}
