package utils

import (
	"rosta-service/internal/pkg/dto/requests"
	"strings"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	sanitizedArray := make([]string, len(input))
	for i, v := range input {
		sanitizedArray[i] = strings.TrimSpace(v)
	}
	return sanitizedArray
}

func SanitizeRegisterDeviceRequest(input *requests.RegisterDevice) {
	input.Name = strings.TrimSpace(input.Name)
	input.Platform = strings.ToLower(strings.TrimSpace(input.Platform))
	input.PairingCode = strings.TrimSpace(input.PairingCode)
}

func SanitizeRenewDeviceSessionRequest(input *requests.RenewDeviceSession) {
	input.DeviceID = strings.TrimSpace(input.DeviceID)
	input.DeviceSecret = strings.TrimSpace(input.DeviceSecret)
}

func SanitizeCreateShiftTypeRequest(input *requests.CreateShiftType) {
	input.Name = strings.TrimSpace(input.Name)
	input.Symbol = strings.TrimSpace(input.Symbol)
	input.Color = strings.ToLower(strings.TrimSpace(input.Color))
}

func SanitizeUpdateShiftTypeRequest(input *requests.UpdateShiftType) {
	input.Name = strings.TrimSpace(input.Name)
	input.Symbol = strings.TrimSpace(input.Symbol)
	input.Color = strings.ToLower(strings.TrimSpace(input.Color))
}

func SanitizeCreateRotationRequest(input *requests.CreateRotation) {
	input.Name = strings.TrimSpace(input.Name)
}

func SanitizeBulkShiftDatesRequest(input *requests.BulkShiftDates) {
	input.Dates = cleanWhiteSpaceFromEachStringOfAnArray(input.Dates)
}

func SanitizeCreateSubscriptionRequest(input *requests.CreateSubscription) {
	input.URL = strings.TrimSpace(input.URL)
	input.Events = cleanWhiteSpaceFromEachStringOfAnArray(input.Events)
}
