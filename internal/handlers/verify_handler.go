package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studysimplifier/internal/services"
)

type VerifyHandler struct {
	userService  services.UserService
	verification *services.VerificationService
}

func NewVerifyHandler(userService services.UserService, verification *services.VerificationService) *VerifyHandler {
	return &VerifyHandler{userService: userService, verification: verification}
}

type verifyEmailRequest struct {
	Email string `json:"email" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

// @Summary      E-Mail bestätigen
// @Description  Prüft den Bestätigungscode und gibt bei Erfolg ein Session-Token zurück
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        verify  body      verifyEmailRequest  true  "E-Mail und Code"
// @Success      200     {object}  map[string]interface{}
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /api/auth/verify-email [post]
func (h *VerifyHandler) VerifyEmail(c *gin.Context) {
	var req verifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	user, err := h.userService.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Benutzer nicht gefunden"})
		return
	}

	token, err := h.verification.ValidateCode(c.Request.Context(), user, req.Code)
	if err != nil {
		switch err {
		case services.ErrAlreadyVerified:
			c.JSON(http.StatusBadRequest, gin.H{"msg": "E-Mail-Adresse ist bereits bestätigt"})
		case services.ErrCodeExpired:
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Code ist abgelaufen, bitte neuen Code anfordern"})
		case services.ErrCodeMismatch:
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Ungültiger Code"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Bestätigung fehlgeschlagen"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":   "E-Mail erfolgreich bestätigt",
		"token": token,
		"user":  user.Public(),
	})
}

type resendCodeRequest struct {
	Email string `json:"email" binding:"required"`
}

// @Summary      Code erneut senden
// @Description  Erzeugt einen neuen Bestätigungscode; der alte Code wird ungültig
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        resend  body      resendCodeRequest  true  "E-Mail"
// @Success      200     {object}  map[string]string
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /api/auth/resend-code [post]
func (h *VerifyHandler) ResendCode(c *gin.Context) {
	var req resendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	user, err := h.userService.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Benutzer nicht gefunden"})
		return
	}

	if err := h.verification.ResendCode(c.Request.Context(), user); err != nil {
		if err == services.ErrAlreadyVerified {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "E-Mail-Adresse ist bereits bestätigt"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Code konnte nicht gesendet werden"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Neuer Code wurde gesendet"})
}
