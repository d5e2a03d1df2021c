package utils

import (
	"rosta-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRegisterDeviceRequest(t *testing.T) {
	t.Run("Name And Platform Sanitization", func(t *testing.T) {
		request := &requests.RegisterDevice{
			Name:        "  Dana's iPhone  ",
			Platform:    "  iOS  ",
			PairingCode: " 482913 ",
		}

		SanitizeRegisterDeviceRequest(request)

		assert.Equal(t, "Dana's iPhone", request.Name, "name should be trimmed")
		assert.Equal(t, "ios", request.Platform, "platform should be lowercase and trimmed")
		assert.Equal(t, "482913", request.PairingCode, "pairing code should be trimmed")
	})
}

func TestSanitizeCreateShiftTypeRequest(t *testing.T) {
	t.Run("Trims And Lowercases Color", func(t *testing.T) {
		request := &requests.CreateShiftType{
			Name:   "  Night Shift  ",
			Symbol: " N ",
			Color:  "  #FF8800  ",
		}

		SanitizeCreateShiftTypeRequest(request)

		assert.Equal(t, "Night Shift", request.Name)
		assert.Equal(t, "N", request.Symbol)
		assert.Equal(t, "#ff8800", request.Color)
	})

	t.Run("Keeps Multi Rune Symbols", func(t *testing.T) {
		request := &requests.CreateShiftType{
			Name:   "Early",
			Symbol: " 🌅 ",
			Color:  "#aabbcc",
		}

		SanitizeCreateShiftTypeRequest(request)

		assert.Equal(t, "🌅", request.Symbol, "symbol content should only be trimmed, never truncated")
	})
}

func TestSanitizeBulkShiftDatesRequest(t *testing.T) {
	t.Run("Trims Every Date", func(t *testing.T) {
		request := &requests.BulkShiftDates{
			Dates: []string{"  2024-03-10  ", "2024-03-11", " 2024-03-12"},
		}

		SanitizeBulkShiftDatesRequest(request)

		expected := []string{"2024-03-10", "2024-03-11", "2024-03-12"}
		assert.Equal(t, expected, request.Dates)
	})

	t.Run("Empty Dates Array", func(t *testing.T) {
		request := &requests.BulkShiftDates{
			Dates: []string{},
		}

		SanitizeBulkShiftDatesRequest(request)

		assert.Equal(t, []string{}, request.Dates, "empty dates array should remain empty")
	})
}

func TestSanitizeCreateSubscriptionRequest(t *testing.T) {
	t.Run("URL And Events Sanitization", func(t *testing.T) {
		request := &requests.CreateSubscription{
			URL:    "  https://hooks.example.com/roster  ",
			Events: []string{"  shift.created  ", " shift.deleted "},
		}

		SanitizeCreateSubscriptionRequest(request)

		assert.Equal(t, "https://hooks.example.com/roster", request.URL)
		assert.Equal(t, []string{"shift.created", "shift.deleted"}, request.Events)
	})
}
