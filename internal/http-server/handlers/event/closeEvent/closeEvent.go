package closeEvent

import (
	"encoding/json"
	"eventService/internal/http-server/middleware/identity"
	"eventService/internal/lib/api/response"
	"eventService/internal/lib/logger/sl"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

// Value stays raw so a missing or non-boolean field gets its own message
// instead of a generic decode error. Both true and false are accepted:
// closing is reversible.
type EventRequest struct {
	ID    string          `json:"id"`
	Value json.RawMessage `json:"value"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCloser
type EventCloser interface {
	SetEventClosed(id string, closed bool) (int64, error)
}

func New(log *slog.Logger, eventCloser EventCloser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.closeEvent.New"

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

		if req.ID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("ID is required"))

			return
		}

		// json.Unmarshal("null", &bool) is a no-op without error, so null
		// is checked explicitly
		var value bool
		if len(req.Value) == 0 || string(req.Value) == "null" || json.Unmarshal(req.Value, &value) != nil {
			log.Error("value is not a boolean")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Value must be true/false"))

			return
		}

		rowsAffected, err := eventCloser.SetEventClosed(req.ID, value)
		if err != nil {
			log.Error("failed to set event closed flag", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Internal Server Error"))

			return
		}

		if rowsAffected == 0 {
			log.Warn("no event matched for close", slog.String("id", req.ID))
		} else {
			log.Info("event closed flag set", slog.String("id", req.ID), slog.Bool("closed", value))
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, response.OK("Event closed!"))
	}
}
