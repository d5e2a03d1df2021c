package exports

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
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

	ical "github.com/arran4/golang-ical"
	"go.uber.org/zap"
)

type exportUsecase struct {
	ShiftRepository  contracts.ShiftRepository
	ShiftTypeUsecase contracts.ShiftTypeUsecase
	MinioStorage     contracts.Storage
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger
	location         *time.Location
}

var (
	exportUsecaseInstance contracts.ExportUsecase
	onceExportUsecase     sync.Once
	exportUsecaseError    error
)

func NewExportUsecase(
	shiftMongoRepository contracts.ShiftRepository,
	shiftTypeUsecase contracts.ShiftTypeUsecase,
	minioStorage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) (contracts.ExportUsecase, error) {
	onceExportUsecase.Do(func() {
		location, err := time.LoadLocation(internalConfig.App.Timezone)
		if err != nil {
			exportUsecaseError = err
			return
		}
		exportUsecaseInstance = &exportUsecase{
			ShiftRepository:  shiftMongoRepository,
			ShiftTypeUsecase: shiftTypeUsecase,
			MinioStorage:     minioStorage,
			InternalConfig:   internalConfig,
			Log:              logger,
			location:         location,
		}
	})

	return exportUsecaseInstance, exportUsecaseError
}

func (uc *exportUsecase) CreateExport(ctx context.Context, request *requests.CreateExport) (*responses.Export, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("exportUsecase.CreateExport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("year", request.Year),
		zap.Int("month", request.Month),
		zap.String("format", request.Format),
	)

	start, end := utils.MonthRange(request.Year, time.Month(request.Month), uc.location)
	shifts, err := uc.ShiftRepository.FindByDateRange(ctx, start, end)
	if err != nil {
		uc.Log.Error("exportUsecase.CreateExport error fetching shifts from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	shiftTypes, err := uc.ShiftTypeUsecase.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	typesByID := make(map[string]responses.ShiftType, len(shiftTypes))
	for _, shiftType := range shiftTypes {
		typesByID[shiftType.ID] = shiftType
	}

	var body []byte
	var contentType string
	switch request.Format {
	case constvars.ExportFormatCSV:
		body, err = renderCSV(shifts, typesByID)
		contentType = constvars.MIMETextCSV
	case constvars.ExportFormatICS:
		body, err = uc.renderICS(shifts, typesByID)
		contentType = constvars.MIMETextCalendar
	default:
		return nil, exceptions.ErrExportRender(fmt.Errorf("unknown format %q", request.Format), request.Format)
	}
	if err != nil {
		return nil, exceptions.ErrExportRender(err, request.Format)
	}

	objectName := utils.GenerateExportObjectName(request.Year, time.Month(request.Month), request.Format)
	err = utils.LogOperation(uc.Log, "exports.upload", requestID, func() error {
		_, uploadErr := uc.MinioStorage.UploadObject(
			ctx,
			uc.InternalConfig.Minio.BucketName,
			objectName,
			bytes.NewReader(body),
			int64(len(body)),
			contentType,
		)
		return uploadErr
	})
	if err != nil {
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.Minio.PresignedURLExpiryTimeInHours) * time.Hour
	downloadURL, err := uc.MinioStorage.GetObjectUrlWithExpiryTime(ctx, uc.InternalConfig.Minio.BucketName, objectName, expiry)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("exportUsecase.CreateExport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("object_name", objectName),
		zap.Int("shift_count", len(shifts)),
	)

	return &responses.Export{
		ObjectName:  objectName,
		Format:      request.Format,
		DownloadURL: downloadURL,
		ExpiresAt:   time.Now().Add(expiry),
	}, nil
}

func renderCSV(shifts []models.Shift, typesByID map[string]responses.ShiftType) ([]byte, error) {
	rows := make([][]string, 0, len(shifts)+1)
	rows = append(rows, []string{"date", "weekday", "shift", "symbol", "start", "end", "all_day", "source", "note"})

	for _, shift := range shifts {
		shiftType := typesByID[shift.ShiftTypeID]
		rows = append(rows, []string{
			utils.FormatDayKey(shift.Date),
			shift.Date.Weekday().String(),
			shiftType.Name,
			shiftType.Symbol,
			shiftType.StartClock,
			shiftType.EndClock,
			strconv.FormatBool(shiftType.AllDay),
			shift.Source,
			shift.Note,
		})
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.WriteAll(rows); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// renderICS emits one VEVENT per shift. Shifts of an all-day type (or a type
// without clocks) become date events with an exclusive end; timed shifts whose
// end clock is not after the start clock run into the next day.
func (uc *exportUsecase) renderICS(shifts []models.Shift, typesByID map[string]responses.ShiftType) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//Rosta//Roster Export//EN")

	now := time.Now()
	for _, shift := range shifts {
		shiftType := typesByID[shift.ShiftTypeID]

		event := cal.AddEvent(fmt.Sprintf("%s@rosta-service", shift.ID))
		event.SetDtStampTime(now)
		event.SetSummary(shiftType.Name)
		if shift.Note != "" {
			event.SetDescription(shift.Note)
		}

		day := utils.StartOfDay(shift.Date.In(uc.location))
		if shiftType.AllDay || shiftType.StartClock == "" || shiftType.EndClock == "" {
			event.SetAllDayStartAt(day)
			event.SetAllDayEndAt(day.AddDate(0, 0, 1))
			continue
		}

		startClock, err := utils.ParseClock(shiftType.StartClock)
		if err != nil {
			return nil, err
		}
		endClock, err := utils.ParseClock(shiftType.EndClock)
		if err != nil {
			return nil, err
		}

		eventStart := day.Add(time.Duration(startClock.Hour())*time.Hour + time.Duration(startClock.Minute())*time.Minute)
		eventEnd := day.Add(time.Duration(endClock.Hour())*time.Hour + time.Duration(endClock.Minute())*time.Minute)
		if !eventEnd.After(eventStart) {
			eventEnd = eventEnd.AddDate(0, 0, 1)
		}

		event.SetStartAt(eventStart)
		event.SetEndAt(eventEnd)
	}

	return []byte(cal.Serialize()), nil
}
