package main

import (
	"net/http"
	"time"
)

type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// healthcheckHandler godoc
//
//	@Summary		Healthcheck
//	@Description	Reports archive storage and broker status
//	@Tags			ops
//	@Produce		json
//	@Success		200	{object}	HealthResponse
//	@Failure		503	{object}	HealthResponse
//	@Router			/health [get]
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	dbStatus := "ok"
	if app.storage == nil {
		dbStatus = "error"
	} else if err := app.storage.Ping(r.Context()); err != nil {
		app.logger.Warnw("archive storage ping failed", "backend", app.config.backend, "error", err)
		dbStatus = "error"
	}

	// the broker is optional; without it the archive is read-only
	queueStatus := "disabled"
	if app.broker != nil {
		queueStatus = "ok"
	}

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: app.now(),
		Services: map[string]string{
			"database": dbStatus,
			"queue":    queueStatus,
		},
	}

	if dbStatus != "ok" {
		response.Status = "unhealthy"
		if err := writeJson(w, http.StatusServiceUnavailable, response); err != nil {
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := writeJson(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
