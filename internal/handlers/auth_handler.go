package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"studysimplifier/internal/models"
	"studysimplifier/internal/services"
)

// Profile images arrive as data URLs; anything beyond ~2MB is rejected.
const maxProfileImageBytes = 2000000

type AuthHandler struct {
	userService services.UserService
	authService services.AuthService
}

func NewAuthHandler(userService services.UserService, authService services.AuthService) *AuthHandler {
	return &AuthHandler{userService: userService, authService: authService}
}

// @Summary      Einloggen
// @Description  Authentifiziert den Benutzer und gibt ein Session-Token zurück
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        login  body      models.LoginRequest  true  "Anmeldedaten"
// @Success      200    {object}  map[string]interface{}
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	email := strings.TrimSpace(req.Email)

	user, err := h.userService.GetByEmail(c.Request.Context(), email)
	if err != nil {
		log.Printf("[auth][login] lookup failed for %q: %v", email, err)
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Ungültige Anmeldedaten"})
		return
	}
	if user == nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Ungültige Anmeldedaten"})
		return
	}
	if err := h.authService.CheckPassword(user.PasswordHash, strings.TrimSpace(req.Password)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Ungültige Anmeldedaten"})
		return
	}
	if !user.Verified {
		// a session is only handed out once the email is proven
		c.JSON(http.StatusForbidden, gin.H{
			"msg":               "E-Mail-Adresse ist noch nicht bestätigt",
			"needsVerification": true,
		})
		return
	}

	token, err := h.authService.GenerateSessionToken(user)
	if err != nil {
		log.Printf("[auth][login] token generation failed for user %s: %v", user.ID.Hex(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user.Public(),
	})
}

type registerRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
}

// @Summary      Registrieren
// @Description  Legt einen unbestätigten Benutzer an und verschickt den Bestätigungscode
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        register  body      registerRequest  true  "Registrierungsdaten"
// @Success      200       {object}  map[string]interface{}
// @Failure      400       {object}  map[string]string
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	if req.Email == "" || req.Password == "" || req.FirstName == "" || req.LastName == "" || req.ConfirmPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Bitte alle Felder ausfüllen"})
		return
	}
	if req.Password != req.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Passwörter stimmen nicht überein"})
		return
	}
	if len(req.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Das Passwort muss mindestens 6 Zeichen lang sein"})
		return
	}

	user := &models.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if err := h.userService.Register(c.Request.Context(), user, req.Password); err != nil {
		if err == services.ErrEmailTaken {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Benutzer existiert bereits"})
			return
		}
		log.Printf("[auth][register] failed for %q: %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":               "Registrierung erfolgreich, bitte E-Mail bestätigen",
		"needsVerification": true,
		"user":              user.Public(),
	})
}

// @Summary      Aktueller Benutzer
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.User
// @Failure      404  {object}  map[string]string
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Kein Token, Zugriff verweigert"})
		return
	}
	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Benutzer nicht gefunden"})
		return
	}
	c.JSON(http.StatusOK, user)
}

type updateProfileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// @Summary      Profil aktualisieren
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        profile  body      updateProfileRequest  true  "Profildaten"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  map[string]string
// @Router       /api/auth/update-profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Bitte alle Felder ausfüllen"})
		return
	}

	user, ok := currentUser(c, h.userService)
	if !ok {
		return
	}
	if err := h.authService.CheckPassword(user.PasswordHash, req.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Passwort ist nicht korrekt"})
		return
	}

	if err := h.userService.UpdateProfile(c.Request.Context(), user, req.FirstName, req.LastName, req.Email); err != nil {
		if err == services.ErrEmailTaken {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Ein Benutzer mit dieser E-Mail existiert bereits"})
			return
		}
		log.Printf("[auth][update-profile] failed for user %s: %v", user.ID.Hex(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Fehler beim Aktualisieren des Profils"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"msg":     "Profil erfolgreich aktualisiert",
		"user":    user.Public(),
	})
}

type profileImageRequest struct {
	ProfileImage string `json:"profileImage"`
}

// @Summary      Profilbild aktualisieren
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        image  body      profileImageRequest  true  "Profilbild (Data-URL, leer zum Entfernen)"
// @Success      200    {object}  map[string]interface{}
// @Failure      400    {object}  map[string]string
// @Router       /api/auth/profile-image [put]
func (h *AuthHandler) UpdateProfileImage(c *gin.Context) {
	var req profileImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	if len(req.ProfileImage) > maxProfileImageBytes {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Profilbild ist zu groß. Maximum ist 2MB."})
		return
	}

	user, ok := currentUser(c, h.userService)
	if !ok {
		return
	}
	if err := h.userService.UpdateProfileImage(c.Request.Context(), user, req.ProfileImage); err != nil {
		log.Printf("[auth][profile-image] failed for user %s: %v", user.ID.Hex(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Fehler beim Aktualisieren des Profilbilds"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "profileImage": user.ProfileImage})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// @Summary      Passwort ändern
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        passwords  body      changePasswordRequest  true  "Passwörter"
// @Success      200        {object}  map[string]interface{}
// @Failure      400        {object}  map[string]string
// @Router       /api/auth/change-password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	if req.CurrentPassword == "" || req.NewPassword == "" || req.ConfirmPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Bitte alle Felder ausfüllen"})
		return
	}
	if req.NewPassword != req.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Neue Passwörter stimmen nicht überein"})
		return
	}
	if len(req.NewPassword) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Das neue Passwort muss mindestens 6 Zeichen lang sein"})
		return
	}

	user, ok := currentUser(c, h.userService)
	if !ok {
		return
	}
	if err := h.authService.CheckPassword(user.PasswordHash, req.CurrentPassword); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Aktuelles Passwort ist nicht korrekt"})
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), user, req.NewPassword); err != nil {
		log.Printf("[auth][change-password] failed for user %s: %v", user.ID.Hex(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Fehler beim Ändern des Passworts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "msg": "Passwort erfolgreich geändert"})
}

type deleteAccountRequest struct {
	Password string `json:"password"`
}

// @Summary      Account löschen
// @Description  Löscht den Benutzer samt allen Todos und Links
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        password  body      deleteAccountRequest  true  "Passwort"
// @Success      200       {object}  map[string]interface{}
// @Failure      400       {object}  map[string]string
// @Router       /api/auth/delete-account [delete]
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	var req deleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Passwort ist erforderlich"})
		return
	}

	user, ok := currentUser(c, h.userService)
	if !ok {
		return
	}
	if err := h.authService.CheckPassword(user.PasswordHash, req.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Passwort ist nicht korrekt"})
		return
	}

	if err := h.userService.DeleteAccount(c.Request.Context(), user.ID); err != nil {
		log.Printf("[auth][delete-account] failed for user %s: %v", user.ID.Hex(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "msg": "Account wurde erfolgreich gelöscht"})
}

