package handlers

import (
	"net/http"

	"grocli/services/reminder"
	"grocli/utils"

	"github.com/gin-gonic/gin"
)

// DispatchHandler exposes a manual trigger for one dispatch cycle, as an
// operational escape hatch alongside the scheduler.
type DispatchHandler struct {
	Dispatcher *reminder.Dispatcher
}

func NewDispatchHandler(d *reminder.Dispatcher) *DispatchHandler {
	return &DispatchHandler{Dispatcher: d}
}

// RunDispatchHandler executes one reminder dispatch cycle and returns the
// cycle report.
func (h *DispatchHandler) RunDispatchHandler(c *gin.Context) {
	report, err := h.Dispatcher.RunCycle(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Dispatch cycle failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"window":                 report.Window.String(),
		"remindersDue":           report.RemindersDue,
		"delivered":              report.Count(reminder.Delivered),
		"skippedMissingEndpoint": report.Count(reminder.SkippedMissingEndpoint),
		"failedTransiently":      report.Count(reminder.FailedTransiently),
		"failedPermanently":      report.Count(reminder.FailedPermanently),
		"danglingLists":          report.DanglingLists,
		"listErrors":             report.ListErrors,
		"tokenErrors":            report.TokenErrors,
		"deactivated":            report.Deactivated,
	})
}
