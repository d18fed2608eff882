package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"studysimplifier/internal/models"
	"studysimplifier/internal/services"
)

type NotificationHandler struct {
	userService  services.UserService
	authService  services.AuthService
	emailService services.EmailService
	notify       *services.NotificationService
}

func NewNotificationHandler(
	userService services.UserService,
	authService services.AuthService,
	emailService services.EmailService,
	notify *services.NotificationService,
) *NotificationHandler {
	return &NotificationHandler{
		userService:  userService,
		authService:  authService,
		emailService: emailService,
		notify:       notify,
	}
}

// @Summary      Benachrichtigungseinstellungen abrufen
// @Tags         Notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.Notifications
// @Router       /api/notifications/settings [get]
func (h *NotificationHandler) GetSettings(c *gin.Context) {
	user, ok := currentUser(c, h.userService)
	if !ok {
		return
	}
	prefs, err := h.notify.Settings(c.Request.Context(), user)
	if err != nil {
		log.Printf("[notify][settings] fetch failed for user %s: %v", user.ID.Hex(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// @Summary      Benachrichtigungseinstellungen ändern
// @Tags         Notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        settings  body      models.NotificationSettingsUpdate  true  "Geänderte Flags"
// @Success      200       {object}  map[string]interface{}
// @Failure      400       {object}  map[string]string
// @Router       /api/notifications/settings [put]
func (h *NotificationHandler) UpdateSettings(c *gin.Context) {
	var req models.NotificationSettingsUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	user, ok := currentUser(c, h.userService)
	if !ok {
		return
	}
	prefs, err := h.notify.UpdateSettings(c.Request.Context(), user, req)
	if err != nil {
		log.Printf("[notify][settings] update failed for user %s: %v", user.ID.Hex(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "notifications": prefs})
}

// @Summary      Fällige Aufgaben prüfen
// @Description  Stößt den Erinnerungs-Sweep für die nächsten 24 Stunden an
// @Tags         Notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  services.SweepResult
// @Router       /api/notifications/check-tasks [post]
func (h *NotificationHandler) CheckTasks(c *gin.Context) {
	res, err := h.notify.RunDueTaskSweep(c.Request.Context(), time.Now())
	if err != nil {
		log.Printf("[notify][check-tasks] sweep failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "tasksProcessed": res.TasksConsidered})
}

type newFeatureRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// @Summary      Neue Funktion ankündigen
// @Description  Verschickt die Ankündigung an alle Benutzer mit aktivierten Feature-Mails
// @Tags         Notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        feature  body      newFeatureRequest  true  "Titel und Beschreibung"
// @Success      200      {object}  services.BroadcastResult
// @Failure      400      {object}  map[string]string
// @Router       /api/notifications/new-feature [post]
func (h *NotificationHandler) NewFeature(c *gin.Context) {
	var req newFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" || req.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Titel und Beschreibung sind erforderlich"})
		return
	}
	res, err := h.notify.BroadcastNewFeature(c.Request.Context(), req.Title, req.Description)
	if err != nil {
		log.Printf("[notify][new-feature] broadcast failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "usersNotified": res.UsersNotified})
}

type passwordConfirmRequest struct {
	Password string `json:"password"`
}

// @Summary      Test-E-Mail senden
// @Tags         Notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        password  body      passwordConfirmRequest  true  "Passwort"
// @Success      200       {object}  map[string]interface{}
// @Failure      400       {object}  map[string]string
// @Router       /api/notifications/test-email [post]
func (h *NotificationHandler) TestEmail(c *gin.Context) {
	user, ok := h.passwordConfirmedUser(c)
	if !ok {
		return
	}

	err := h.emailService.Send(services.Mail{
		To:      user.Email,
		Subject: "Test Benachrichtigung von Study Simplifier",
		Text: "Hallo " + user.FirstName + ",\n\n" +
			"Dies ist eine Test-Benachrichtigung, um zu überprüfen, ob die E-Mail-Benachrichtigungen funktionieren.\n\n" +
			"Viele Grüße,\nDein Study Simplifier Team",
	})
	if err != nil {
		log.Printf("[notify][test-email] send failed for %s: %v", user.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Test-Email konnte nicht gesendet werden"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Test-Email wurde gesendet"})
}

// @Summary      Desktop-Benachrichtigung testen
// @Description  Verifiziert nur das Passwort; die Benachrichtigung selbst zeigt der Client an
// @Tags         Notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        password  body      passwordConfirmRequest  true  "Passwort"
// @Success      200       {object}  map[string]interface{}
// @Failure      400       {object}  map[string]string
// @Router       /api/notifications/test-desktop [post]
func (h *NotificationHandler) TestDesktop(c *gin.Context) {
	if _, ok := h.passwordConfirmedUser(c); !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Passwort verifiziert, Desktop-Benachrichtigung kann angezeigt werden",
	})
}

func (h *NotificationHandler) passwordConfirmedUser(c *gin.Context) (*models.User, bool) {
	var req passwordConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Passwort ist erforderlich"})
		return nil, false
	}
	user, ok := currentUser(c, h.userService)
	if !ok {
		return nil, false
	}
	if err := h.authService.CheckPassword(user.PasswordHash, req.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Falsches Passwort"})
		return nil, false
	}
	return user, true
}
