package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"coffee-wifi/internal/transport/http/handler"
	mdw "coffee-wifi/internal/transport/http/middleware"
)

// NewWebEngine 组装整条链：限流 → 超时 → 恢复 → 指标 → 访问日志 → 身份解析
func NewWebEngine(l *zap.Logger, h *handler.Handlers, templatesGlob string) *gin.Engine {
	r := gin.New()
	r.LoadHTMLGlob(templatesGlob)

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		cors.Default(),
		mdw.Metrics(),
		mdw.AccessLog(l),
		mdw.CurrentUser(h.Sess, h.Users),
	)

	// 健康检查和指标
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 公共页面
	r.GET("/", h.Home)
	r.GET("/register", h.Register)
	r.POST("/register", h.Register)
	r.GET("/login", h.Login)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)

	// 店铺的增删改要求登录身份
	manage := r.Group("")
	manage.Use(mdw.RequireLogin(h.Flash))
	manage.GET("/new-post", h.NewCafe)
	manage.POST("/new-post", h.NewCafe)
	manage.GET("/edit-post/:post_id", h.EditCafe)
	manage.POST("/edit-post/:post_id", h.EditCafe)
	manage.GET("/report-closed/:cafe_id", h.DeleteCafe)
	manage.POST("/report-closed/:cafe_id", h.DeleteCafe)
	manage.DELETE("/report-closed/:cafe_id", h.DeleteCafe)

	return r
}
