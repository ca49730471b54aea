package preview_slots

import "github.com/m04kA/SMC-ScheduleService/internal/service/schedule/models"

type ScheduleService interface {
	PreviewSlots(req *models.PreviewSlotsRequest) (*models.PreviewSlotsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
