package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kpapad/go-qa-backend/internal/services"
)

// credentialsForm is the request body for registration and login.
type credentialsForm struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register godoc
// @ID          register
// @Summary     Register an account
// @Description Creates an account with an argon2id-hashed password. Emails
// @Description are stored lowercase and must be unique.
// @Tags        Accounts
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.credentialsForm  true  "Credentials"
// @Success     201  {object}  map[string]string
// @Failure     400  {object}  handlers.ErrorResponse
// @Failure     409  {object}  handlers.ErrorResponse  "Email already registered"
// @Router      /registration [post]
func (h *Handlers) Register(c *gin.Context) {
	var f credentialsForm
	if err := c.ShouldBindJSON(&f); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "email and password are required")
		return
	}
	acc, err := h.accSvc.Register(c.Request.Context(), f.Email, f.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			fail(c, http.StatusConflict, ErrCodeConflict, "email already registered")
		case errors.Is(err, services.ErrMissingFields):
			fail(c, http.StatusBadRequest, ErrCodeInvalidInput, err.Error())
		default:
			failFromError(c, err)
		}
		return
	}
	ok(c, http.StatusCreated, gin.H{"id": acc.ID, "email": acc.Email})
}

// Login godoc
// @ID          login
// @Summary     Verify account credentials
// @Description Checks the supplied password against the stored argon2id hash.
// @Description Unknown emails and wrong passwords both answer 401 so that the
// @Description endpoint does not leak which emails are registered.
// @Tags        Accounts
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.credentialsForm  true  "Credentials"
// @Success     200  {object}  map[string]string
// @Failure     401  {object}  handlers.ErrorResponse  "Invalid credentials"
// @Router      /login [post]
func (h *Handlers) Login(c *gin.Context) {
	var f credentialsForm
	if err := c.ShouldBindJSON(&f); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "email and password are required")
		return
	}
	acc, err := h.accSvc.Login(c.Request.Context(), f.Email, f.Password)
	if err != nil {
		if errors.Is(err, services.ErrAccountNotFound) || errors.Is(err, services.ErrWrongPassword) {
			fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "invalid credentials")
			return
		}
		failFromError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"email": acc.Email, "status": "ok"})
}
