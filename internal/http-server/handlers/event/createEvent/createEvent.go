package createEvent

import (
	"errors"
	"eventService/internal/http-server/middleware/identity"
	"eventService/internal/lib/api/response"
	"eventService/internal/lib/logger/sl"
	"eventService/internal/models"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type EventRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Budget      float64 `json:"budget" validate:"required,gt=0"`
	Image       string  `json:"image" validate:"required"`
	MimeType    string  `json:"mimeType" validate:"required"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventSaver
type EventSaver interface {
	SaveEvent(event models.Event) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ImageSaver
type ImageSaver interface {
	SaveImage(id, mimeType, data string) (string, error)
	Remove(id, mimeType string) error
}

func New(log *slog.Logger, eventSaver EventSaver, imageSaver ImageSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

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

		id := uuid.NewString()

		imageURL, err := imageSaver.SaveImage(id, req.MimeType, req.Image)
		if err != nil {
			log.Error("failed to save image", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Internal Server Error"))

			return
		}

		event := models.Event{
			ID:          id,
			Name:        req.Name,
			Description: req.Description,
			Budget:      req.Budget,
			Image:       imageURL,
			CreatedAt:   time.Now(),
			CreatedBy:   user.ID,
			Closed:      false,
		}

		if err = eventSaver.SaveEvent(event); err != nil {
			log.Error("failed to save event", sl.Err(err))

			// компенсация: не оставляем файл без строки в базе
			if rmErr := imageSaver.Remove(id, req.MimeType); rmErr != nil {
				log.Error("failed to remove orphaned image", sl.Err(rmErr))
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Internal Server Error"))

			return
		}

		log.Info("event created", slog.String("id", id), slog.String("created_by", user.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, response.OK("Event created!"))
	}
}
