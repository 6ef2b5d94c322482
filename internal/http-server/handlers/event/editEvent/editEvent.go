package editEvent

import (
	"errors"
	"eventService/internal/http-server/middleware/identity"
	"eventService/internal/lib/api/response"
	"eventService/internal/lib/logger/sl"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type EventRequest struct {
	ID          string    `json:"id" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Date        time.Time `json:"date" validate:"required"`
	Budget      float64   `json:"budget" validate:"required,gt=0"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventUpdater
type EventUpdater interface {
	UpdateEvent(id, name, description string, date time.Time, budget float64) (int64, error)
}

func New(log *slog.Logger, eventUpdater EventUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.editEvent.New"

		log = log.With(
			slog.String("op", op),
		)

		user, ok := identity.UserFromContext(r.Context())
		if !ok {
			log.Info("request without identity")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("Unauthorized"))

			return
		}

		if !user.CanManageEvents() {
			log.Info("insufficient permissions", slog.String("user_id", user.ID), slog.String("role", string(user.Role)))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("Insufficient Permissions"))

			return
		}

		var req EventRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		rowsAffected, err := eventUpdater.UpdateEvent(req.ID, req.Name, req.Description, req.Date, req.Budget)
		if err != nil {
			log.Error("failed to update event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Internal Server Error"))

			return
		}

		// несуществующий id не считается ошибкой, только фиксируем
		if rowsAffected == 0 {
			log.Warn("no event matched for update", slog.String("id", req.ID))
		} else {
			log.Info("event updated", slog.String("id", req.ID))
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, response.OK("Event updated!"))
	}
}
