package middlewares

import (
	"context"
	"hospicare-service/internal/pkg/constvars"
	"hospicare-service/internal/pkg/exceptions"
	"hospicare-service/internal/pkg/utils"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Authenticate resolves the bearer JWT to the session payload stored in Redis
// and stashes the raw payload in the request context for the usecases.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

		authorization := r.Header.Get(constvars.HeaderAuthorization)
		if !strings.HasPrefix(authorization, constvars.AuthorizationBearerPrefix) {
			m.Log.Warn("Middlewares.Authenticate missing bearer token",
				zap.String(constvars.LoggingRequestIDKey, requestID))
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authorization, constvars.AuthorizationBearerPrefix)
		sessionID, err := utils.ParseSessionIDFromJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			m.Log.Warn("Middlewares.Authenticate token rejected",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err))
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		sessionData, err := m.SessionService.GetSessionData(r.Context(), sessionID)
		if err != nil {
			m.Log.Warn("Middlewares.Authenticate session lookup failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err))
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, sessionData)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles gates a route to the named roles. It must sit after
// Authenticate on the chain.
func (m *Middlewares) RequireRoles(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

			sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
			if !ok {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrMissingSessionData(nil))
				return
			}

			session, err := m.SessionService.ParseSessionData(r.Context(), sessionData)
			if err != nil {
				utils.BuildErrorResponse(m.Log, w, err)
				return
			}

			if _, ok := allowed[session.Role]; !ok {
				m.Log.Warn("Middlewares.RequireRoles role rejected",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String("role", session.Role))
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleNotPermitted(nil))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
