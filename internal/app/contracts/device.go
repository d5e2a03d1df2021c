package contracts

import (
	"context"

	"rosta-service/internal/app/models"
	"rosta-service/internal/pkg/dto/requests"
	"rosta-service/internal/pkg/dto/responses"
)

type DeviceUsecase interface {
	Register(ctx context.Context, request *requests.RegisterDevice) (*responses.RegisteredDevice, error)
	// RenewSession exchanges the device secret issued at registration for a
	// fresh session JWT once the old one expires.
	RenewSession(ctx context.Context, request *requests.RenewDeviceSession) (*responses.DeviceSession, error)
	FindAll(ctx context.Context) ([]responses.Device, error)
	GetSettings(ctx context.Context, deviceID string) (*responses.DeviceSettings, error)
	UpdateSettings(ctx context.Context, deviceID string, request *requests.UpdateDeviceSettings) (*responses.DeviceSettings, error)
}

type DeviceRepository interface {
	Create(ctx context.Context, device *models.Device) (*models.Device, error)
	FindAll(ctx context.Context) ([]models.Device, error)
	FindByID(ctx context.Context, deviceID string) (*models.Device, error)
	UpdateSettingsByID(ctx context.Context, deviceID string, settings models.DeviceSettings) (*models.Device, error)
	UpdateLastSeenByID(ctx context.Context, deviceID string) error
}
