package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"coffee-wifi/internal/core/flash"
	"coffee-wifi/internal/core/session"
	"coffee-wifi/internal/domain"
	"coffee-wifi/internal/transport/http/middleware"
)

// Handlers 启动时装配一次，显式持有依赖，不走包级全局
type Handlers struct {
	Cafes domain.CafeRepository
	Users domain.UserRepository
	Sess  *session.Manager
	Flash *flash.Store
	Log   *zap.Logger
}

// render 统一出页面：把待展示的 flash 和当前身份塞进模板数据
func (h *Handlers) render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Flashes"] = h.Flash.PopFrom(c)
	data["User"] = middleware.UserFrom(c)
	if _, ok := data["Errors"]; !ok {
		data["Errors"] = map[string]string{}
	}
	c.HTML(status, name, data)
}

func (h *Handlers) notFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, "404.html", gin.H{"Title": "Not Found"})
}
