package v1

import (
	"net/http"

	"go-form-template/internal/delivery/http/middleware"
	"go-form-template/internal/delivery/http/web"
	"go-form-template/internal/domain"
	"go-form-template/internal/form"
	"go-form-template/pkg/apperror"
	"go-form-template/pkg/formdef"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the server-rendered pages
type PageHandler struct {
	formUC       domain.FormUsecase
	def          *formdef.Definition
	locale       formdef.Locale
	cookieSecure bool
}

// NewPageHandler registers the HTML routes
func NewPageHandler(r gin.IRoutes, submitLimit gin.HandlerFunc, formUC domain.FormUsecase, def *formdef.Definition, locale formdef.Locale, cookieSecure bool) {
	handler := &PageHandler{
		formUC:       formUC,
		def:          def,
		locale:       locale,
		cookieSecure: cookieSecure,
	}

	r.GET("/", handler.Home)
	r.GET("/form", handler.ShowForm)
	r.POST("/form", submitLimit, handler.SubmitForm)
}

// Home renders the landing page
func (h *PageHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", web.NewHomePage(h.locale))
}

// ShowForm mounts a fresh form; loading the page is what resets it
func (h *PageHandler) ShowForm(c *gin.Context) {
	state, err := h.formUC.Mount(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		c.Error(err)
		return
	}

	middleware.SetSession(c, state.SessionID, h.cookieSecure)
	h.render(c, http.StatusOK, state)
}

// SubmitForm validates the posted form and renders it with inline errors or the new snapshot
func (h *PageHandler) SubmitForm(c *gin.Context) {
	ctx := c.Request.Context()

	subscribe, err := form.ParseCheckbox(c.PostForm(domain.FieldSubscribe))
	if err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	values := domain.FormValues{
		Name:      c.PostForm(domain.FieldName),
		Email:     c.PostForm(domain.FieldEmail),
		Category:  c.PostForm(domain.FieldCategory),
		Message:   c.PostForm(domain.FieldMessage),
		Subscribe: subscribe,
	}

	sessionID := middleware.SessionID(c)
	if sessionID == "" {
		sessionID = h.remount(c)
		if sessionID == "" {
			return
		}
	}

	state, err := h.formUC.Submit(ctx, sessionID, values)
	if isStatus(err, http.StatusNotFound) {
		// session expired between page load and submit
		if sessionID = h.remount(c); sessionID == "" {
			return
		}
		state, err = h.formUC.Submit(ctx, sessionID, values)
	}

	switch {
	case err == nil:
		h.render(c, http.StatusOK, state)
	case isStatus(err, http.StatusUnprocessableEntity) && state != nil:
		h.render(c, http.StatusUnprocessableEntity, state)
	default:
		c.Error(err)
	}
}

func (h *PageHandler) remount(c *gin.Context) string {
	state, err := h.formUC.Mount(c.Request.Context(), "")
	if err != nil {
		c.Error(err)
		return ""
	}
	middleware.SetSession(c, state.SessionID, h.cookieSecure)
	return state.SessionID
}

func (h *PageHandler) render(c *gin.Context, code int, state *domain.FormState) {
	page, err := web.NewFormPage(h.def, h.locale, state, middleware.CSRFToken(c))
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	c.HTML(code, "form.html", page)
}
