package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"coffee-wifi/internal/domain"
	"coffee-wifi/internal/transport/http/forms"
)

// Home GET /  无 search 或 search 为空 → 全量按 id 升序；
// 带 search → 按 location 精确过滤，空结果给一条提示。
func (h *Handlers) Home(c *gin.Context) {
	query := c.Query("search")

	var (
		cafes []domain.Cafe
		err   error
	)
	if query == "" {
		cafes, err = h.Cafes.ListAll()
	} else {
		cafes, err = h.Cafes.ListByLocation(query)
		if err == nil && len(cafes) == 0 {
			h.Flash.AddTo(c, "Sorry, we don't have a cafe at that location.")
		}
	}
	if err != nil {
		h.Log.Error("list cafes", zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	h.render(c, http.StatusOK, "index.html", gin.H{"Cafes": cafes, "Search": query})
}

// NewCafe GET/POST /new-post
func (h *Handlers) NewCafe(c *gin.Context) {
	if c.Request.Method == http.MethodGet {
		h.render(c, http.StatusOK, "cafe_form.html", gin.H{"Title": "Add Cafe", "Form": forms.CafeForm{}})
		return
	}

	var form forms.CafeForm
	if err := c.ShouldBind(&form); err != nil {
		// 校验不过：422 回显表单，不落库，不发 flash
		h.render(c, http.StatusUnprocessableEntity, "cafe_form.html", gin.H{
			"Title": "Add Cafe", "Form": form, "Errors": forms.FieldErrors(err),
		})
		return
	}

	cafe := cafeFromForm(&form)
	if err := h.Cafes.Create(cafe); err != nil {
		if errors.Is(err, domain.ErrDuplicateName) {
			h.Flash.AddTo(c, "A cafe with that name is already listed.")
			h.render(c, http.StatusOK, "cafe_form.html", gin.H{"Title": "Add Cafe", "Form": form})
			return
		}
		h.Log.Error("create cafe", zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// EditCafe GET/POST /edit-post/:post_id  id 不存在 → 404 页
func (h *Handlers) EditCafe(c *gin.Context) {
	id, ok := parseID(c.Param("post_id"))
	if !ok {
		h.notFound(c)
		return
	}
	cafe, err := h.Cafes.FindByID(id)
	if err != nil {
		h.Log.Error("load cafe", zap.Uint("id", id), zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	if cafe == nil {
		h.notFound(c)
		return
	}

	if c.Request.Method == http.MethodGet {
		h.render(c, http.StatusOK, "cafe_form.html", gin.H{
			"Title": "Edit Cafe", "Form": formFromCafe(cafe), "EditID": cafe.ID,
		})
		return
	}

	var form forms.CafeForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusUnprocessableEntity, "cafe_form.html", gin.H{
			"Title": "Edit Cafe", "Form": form, "EditID": cafe.ID, "Errors": forms.FieldErrors(err),
		})
		return
	}

	// 整行覆盖，id 不变
	updated := cafeFromForm(&form)
	updated.ID = cafe.ID
	if err := h.Cafes.Update(updated); err != nil {
		if errors.Is(err, domain.ErrDuplicateName) {
			h.Flash.AddTo(c, "A cafe with that name is already listed.")
			h.render(c, http.StatusOK, "cafe_form.html", gin.H{"Title": "Edit Cafe", "Form": form, "EditID": cafe.ID})
			return
		}
		h.Log.Error("update cafe", zap.Uint("id", id), zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// DeleteCafe GET/POST/DELETE /report-closed/:cafe_id
// id 不存在 → 静默 no-op，照样跳回首页
func (h *Handlers) DeleteCafe(c *gin.Context) {
	id, ok := parseID(c.Param("cafe_id"))
	if !ok {
		h.notFound(c)
		return
	}
	if err := h.Cafes.Delete(id); err != nil {
		h.Log.Error("delete cafe", zap.Uint("id", id), zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func parseID(s string) (uint, bool) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

func cafeFromForm(f *forms.CafeForm) *domain.Cafe {
	return &domain.Cafe{
		Name:         f.Name,
		MapURL:       f.MapURL,
		ImgURL:       f.ImgURL,
		Location:     f.Location,
		Seats:        f.Seats,
		CoffeePrice:  f.CoffeePrice,
		HasSockets:   f.HasSockets,
		HasToilet:    f.HasToilet,
		HasWifi:      f.HasWifi,
		CanTakeCalls: f.CanTakeCalls,
	}
}

func formFromCafe(c *domain.Cafe) forms.CafeForm {
	return forms.CafeForm{
		Name:         c.Name,
		MapURL:       c.MapURL,
		ImgURL:       c.ImgURL,
		Location:     c.Location,
		Seats:        c.Seats,
		CoffeePrice:  c.CoffeePrice,
		HasSockets:   c.HasSockets,
		HasToilet:    c.HasToilet,
		HasWifi:      c.HasWifi,
		CanTakeCalls: c.CanTakeCalls,
	}
}
