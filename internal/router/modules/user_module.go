package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/user-registry/internal/container"
	handlers "github.com/oksasatya/user-registry/internal/interface/http"
	"github.com/oksasatya/user-registry/internal/interface/middleware"
	"github.com/oksasatya/user-registry/pkg/helpers"
)

// UserModule registers the user registry routes under the given group (usually /api):
//
//	POST   /users       create
//	GET    /users       search by name, province, city
//	GET    /users/:id   fetch
//	PUT    /users/:id   replace
//	DELETE /users/:id   remove
//
// Mutating routes require a bearer token when JWT is non-nil.
type UserModule struct {
	Handler   *handlers.UserHandler
	JWT       *helpers.JWTManager
	PerMinute int
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager, perMinute int) *UserModule {
	return &UserModule{Handler: h, JWT: jwt, PerMinute: perMinute}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.Use(middleware.RateLimit(container.GetRedis(), m.PerMinute, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP(), container.GetLogger()))

	users.GET("", m.Handler.SearchUsers)
	users.GET("/:id", m.Handler.GetUser)

	write := users.Group("")
	if m.JWT != nil {
		write.Use(middleware.BearerAuth(m.JWT))
	}
	write.POST("", m.Handler.CreateUser)
	write.PUT("/:id", m.Handler.UpdateUser)
	write.DELETE("/:id", m.Handler.DeleteUser)
}
