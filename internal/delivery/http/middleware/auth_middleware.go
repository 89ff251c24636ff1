package middleware

import (
	"log/slog"
	"strings"

	"bizdir/internal/domain/entity"
	domainerrors "bizdir/internal/domain/errors"
	"bizdir/internal/domain/repository"
	"bizdir/internal/domain/service"
	"bizdir/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// identityKey is the echo context key the gate stores the resolved identity
// under. Handlers read it through IdentityFrom, never directly.
const identityKey = "bizdir.identity"

// AuthMiddleware is the single access gate: token verification plus profile
// resolution. Every authenticated route goes through Authenticate; there is
// no second token-parsing path.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenSvc service.TokenService
	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc: params.TokenSvc,
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

// Authenticate validates the bearer token and resolves the subject to a
// stored profile. Any failure on the way, including a store error, denies
// the request; there is no allow-through path.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated.WithDetails("Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrUnauthenticated.WithDetails("token format must be Bearer")
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthenticated.WithDetails("invalid or expired token")
		}

		user, err := m.userRepo.FindBySubject(c.Request().Context(), claims.Subject)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUnauthenticated.WithDetails("no profile for this account")
			}

			m.logger.Error("Profile lookup failed during authentication",
				slog.String("subject", claims.Subject), slog.Any("error", err))

			return domainerrors.NewDatabaseExecuteError(err, "profile lookup failed")
		}

		SetIdentity(c, entity.Identity{
			UserID:  user.ID,
			Subject: user.Subject,
			Email:   user.Email,
			Role:    user.Role,
		})

		return next(c)
	}
}

// RequireRole gates a route group on the stored profile's role. It must run
// after Authenticate.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, err := IdentityFrom(c)
			if err != nil {
				return err
			}

			if identity.Role != requiredRole {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// SetIdentity stores the resolved identity on the request context.
func SetIdentity(c echo.Context, identity entity.Identity) {
	c.Set(identityKey, identity)
}

// IdentityFrom returns the identity the gate resolved for this request.
func IdentityFrom(c echo.Context) (entity.Identity, error) {
	identity, ok := c.Get(identityKey).(entity.Identity)
	if !ok {
		return entity.Identity{}, domainerrors.ErrUnauthenticated.WithDetails("request passed no access gate")
	}

	return identity, nil
}
