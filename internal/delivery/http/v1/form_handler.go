package v1

import (
	"errors"
	"net/http"

	"go-form-template/internal/delivery/http/middleware"
	"go-form-template/internal/delivery/http/response"
	"go-form-template/internal/domain"
	"go-form-template/internal/form"
	"go-form-template/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type FormHandler struct {
	formUC       domain.FormUsecase
	cookieSecure bool
}

// EditFieldRequest is the body of a single-field edit
type EditFieldRequest struct {
	Value string `json:"value"`
}

// SubmitResult is returned by an accepted submission
type SubmitResult struct {
	State *domain.FormState `json:"state"`
	Dump  string            `json:"dump"`
}

// NewFormHandler registers the JSON form routes
func NewFormHandler(api *gin.RouterGroup, submitLimit gin.HandlerFunc, formUC domain.FormUsecase, cookieSecure bool) {
	handler := &FormHandler{
		formUC:       formUC,
		cookieSecure: cookieSecure,
	}

	group := api.Group("/form")
	group.POST("", handler.Mount)
	group.GET("", handler.GetState)
	group.PATCH("/fields/:field", handler.EditField)
	group.POST("/submit", submitLimit, handler.Submit)
	group.POST("/validate", handler.Validate)
}

// Mount godoc
// @Summary      Mount Form
// @Description  Start a fresh form under a new session id, discarding the previous session's draft and snapshot.
// @Tags         form
// @Produce      json
// @Param        X-Form-Session  header    string  false  "Previous session id, discarded on mount"
// @Success      201             {object}  response.Response{data=domain.FormState}
// @Router       /form [post]
func (h *FormHandler) Mount(c *gin.Context) {
	state, err := h.formUC.Mount(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		c.Error(err)
		return
	}

	middleware.SetSession(c, state.SessionID, h.cookieSecure)
	response.Success(c, http.StatusCreated, "Form mounted", state)
}

// GetState godoc
// @Summary      Get Form State
// @Description  Return the draft, inline errors and last accepted snapshot of the session's form.
// @Tags         form
// @Produce      json
// @Param        X-Form-Session  header    string  false  "Session id (or form_session cookie)"
// @Success      200             {object}  response.Response{data=domain.FormState}
// @Failure      404             {object}  response.Response
// @Router       /form [get]
func (h *FormHandler) GetState(c *gin.Context) {
	sessionID, ok := requireSession(c)
	if !ok {
		return
	}

	state, err := h.formUC.Get(c.Request.Context(), sessionID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Form state", state)
}

// EditField godoc
// @Summary      Edit Field
// @Description  Change one field of the draft. After a submit attempt the field is re-validated.
// @Tags         form
// @Accept       json
// @Produce      json
// @Param        field           path      string            true   "Field name"  Enums(name, email, category, message, subscribe)
// @Param        body            body      EditFieldRequest  true   "New value"
// @Param        X-Form-Session  header    string            false  "Session id"
// @Success      200             {object}  response.Response{data=domain.FormState}
// @Failure      400             {object}  response.Response
// @Failure      404             {object}  response.Response
// @Router       /form/fields/{field} [patch]
func (h *FormHandler) EditField(c *gin.Context) {
	sessionID, ok := requireSession(c)
	if !ok {
		return
	}

	var req EditFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	state, err := h.formUC.Edit(c.Request.Context(), sessionID, c.Param("field"), req.Value)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Field updated", state)
}

// Submit godoc
// @Summary      Submit Form
// @Description  Validate all five fields at once. On success the snapshot is replaced and echoed back.
// @Tags         form
// @Accept       json
// @Produce      json
// @Param        body            body      domain.FormValues  true   "Form values"
// @Param        X-Form-Session  header    string             false  "Session id"
// @Success      200             {object}  response.Response{data=SubmitResult}
// @Failure      400             {object}  response.Response
// @Failure      404             {object}  response.Response
// @Failure      422             {object}  response.Response
// @Failure      429             {object}  response.Response
// @Router       /form/submit [post]
func (h *FormHandler) Submit(c *gin.Context) {
	sessionID, ok := requireSession(c)
	if !ok {
		return
	}

	var values domain.FormValues
	if err := c.ShouldBindJSON(&values); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	state, err := h.formUC.Submit(c.Request.Context(), sessionID, values)
	if err != nil {
		c.Error(err)
		return
	}

	dump, err := form.Dump(*state.Snapshot)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusOK, "Form submitted", SubmitResult{State: state, Dump: dump})
}

// Validate godoc
// @Summary      Validate Form
// @Description  Check values against every rule without touching any session.
// @Tags         form
// @Accept       json
// @Produce      json
// @Param        body  body      domain.FormValues  true  "Form values"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      422   {object}  response.Response
// @Router       /form/validate [post]
func (h *FormHandler) Validate(c *gin.Context) {
	var values domain.FormValues
	if err := c.ShouldBindJSON(&values); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	if errs := h.formUC.Validate(c.Request.Context(), values); len(errs) > 0 {
		c.Error(apperror.Unprocessable("Please correct the highlighted fields.", errs, errs))
		return
	}

	response.Success(c, http.StatusOK, "All fields are valid", nil)
}

func requireSession(c *gin.Context) (string, bool) {
	sessionID := middleware.SessionID(c)
	if sessionID == "" {
		c.Error(apperror.NotFound("Form session not found. Mount the form first."))
		return "", false
	}
	return sessionID, true
}

// isStatus reports whether err is an AppError with the given code.
func isStatus(err error, code int) bool {
	var appErr *apperror.AppError
	return errors.As(err, &appErr) && appErr.Code == code
}
