package httputils

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/fx"
)

// Handler is a route group that knows how to mount itself on a router.
type Handler interface {
	OnRouter(http.Handler)
}

const HandlerGroupTag = `group:"handlers"`

// AsHandler annotates a handler constructor into the router handler group.
func AsHandler(handler any) any {
	return fx.Annotate(handler, fx.ResultTags(HandlerGroupTag), fx.As(new(Handler)))
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, errorMessage ...string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	json.NewEncoder(w).Encode(ErrorResponse{
		Message: strings.Join(errorMessage, " "),
	})
}

func WriteJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	json.NewEncoder(w).Encode(payload)
}
