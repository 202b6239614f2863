package middleware

import (
	"context"
	"log"
	"net/http"

	handlers "personalsite/internal/handler"
	"personalsite/internal/service"
)

type Middleware func(http.Handler) http.Handler

// AuthMiddleware проверяет сессионную cookie и кладёт claims в контекст.
// Запрос никогда не отклоняется здесь: нет сессии — нет claims,
// решение принимает обработчик.
func AuthMiddleware(authService service.AuthService) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := handlers.ReadAuthCookie(r)

			claims := authService.VerifyToken(token)
			if claims == nil {
				// просроченный или битый токен равнозначен отсутствию cookie
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), handlers.ClaimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("Method: %s, URL: %s", r.Method, r.RequestURI)
		next.ServeHTTP(w, r)
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
