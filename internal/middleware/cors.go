package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// WithCORS разрешает запросы с любых origin, включая capacitor://, ionic:// и null
// от мобильных клиентов. Origin возвращается эхом, поэтому credentials работают.
func WithCORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowOriginFunc:  func(*http.Request, string) bool { return true },
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH", "HEAD"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
