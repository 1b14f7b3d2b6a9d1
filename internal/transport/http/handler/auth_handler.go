package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"coffee-wifi/internal/domain"
	"coffee-wifi/internal/transport/http/forms"
	"coffee-wifi/pkg/utils"
)

// Register GET/POST /register
func (h *Handlers) Register(c *gin.Context) {
	if c.Request.Method == http.MethodGet {
		h.render(c, http.StatusOK, "register.html", gin.H{"Form": forms.RegisterForm{}})
		return
	}

	var form forms.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusUnprocessableEntity, "register.html", gin.H{
			"Form": form, "Errors": forms.FieldErrors(err),
		})
		return
	}

	existing, err := h.Users.FindByEmail(form.Email)
	if err != nil {
		h.Log.Error("lookup user", zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	if existing != nil {
		h.Flash.AddTo(c, "You've already signed up with that email, log in instead!")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	u := &domain.User{
		Email:        form.Email,
		Name:         form.Name,
		PasswordHash: utils.HashPassword(form.Password),
	}
	if err := h.Users.Create(u); err != nil {
		// 并发注册撞唯一键：和先查到已存在走同一条路
		if errors.Is(err, domain.ErrDuplicateEmail) {
			h.Flash.AddTo(c, "You've already signed up with that email, log in instead!")
			c.Redirect(http.StatusSeeOther, "/login")
			return
		}
		h.Log.Error("create user", zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// Login GET/POST /login
// 查无邮箱和密码不对给的是不同文案，但都只带 flash 转回登录页
func (h *Handlers) Login(c *gin.Context) {
	if c.Request.Method == http.MethodGet {
		h.render(c, http.StatusOK, "login.html", gin.H{"Form": forms.LoginForm{}})
		return
	}

	var form forms.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusUnprocessableEntity, "login.html", gin.H{
			"Form": form, "Errors": forms.FieldErrors(err),
		})
		return
	}

	u, err := h.Users.FindByEmail(form.Email)
	if err != nil {
		h.Log.Error("lookup user", zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	if u == nil {
		h.Flash.AddTo(c, "That email does not exist, please try again.")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}
	if !utils.CheckPassword(form.Password, u.PasswordHash) {
		h.Flash.AddTo(c, "Password incorrect, please try again.")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	if err := h.Sess.Login(c, u.ID); err != nil {
		h.Log.Error("issue session", zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// Logout GET /logout  登没登录都能调
func (h *Handlers) Logout(c *gin.Context) {
	h.Sess.Logout(c)
	c.Redirect(http.StatusSeeOther, "/")
}
