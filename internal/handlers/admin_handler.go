package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"studysimplifier/internal/repositories"
)

type AdminHandler struct {
	users         repositories.UserRepository
	todos         repositories.TodoRepository
	links         repositories.LinkRepository
	adminPassword string
}

func NewAdminHandler(
	users repositories.UserRepository,
	todos repositories.TodoRepository,
	links repositories.LinkRepository,
	adminPassword string,
) *AdminHandler {
	return &AdminHandler{
		users:         users,
		todos:         todos,
		links:         links,
		adminPassword: adminPassword,
	}
}

type resetDatabaseRequest struct {
	AdminPassword string `json:"adminPassword"`
}

// @Summary      Datenbank zurücksetzen
// @Description  Löscht alle Benutzer, Todos und Links. Nur mit Admin-Passwort.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        password  body      resetDatabaseRequest  true  "Admin-Passwort"
// @Success      200       {object}  map[string]interface{}
// @Failure      400       {object}  map[string]string
// @Failure      403       {object}  map[string]string
// @Router       /api/admin/reset-database [post]
func (h *AdminHandler) ResetDatabase(c *gin.Context) {
	var req resetDatabaseRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.AdminPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Admin-Passwort ist erforderlich"})
		return
	}
	if h.adminPassword == "" || req.AdminPassword != h.adminPassword {
		c.JSON(http.StatusForbidden, gin.H{"msg": "Zugriff verweigert - Falsches Admin-Passwort"})
		return
	}

	ctx := c.Request.Context()
	if err := h.todos.DeleteAll(ctx); err != nil {
		log.Printf("[admin][reset] todos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}
	if err := h.links.DeleteAll(ctx); err != nil {
		log.Printf("[admin][reset] links: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}
	if err := h.users.DeleteAll(ctx); err != nil {
		log.Printf("[admin][reset] users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"msg":     "Alle Daten wurden erfolgreich gelöscht. Die Datenbank wurde zurückgesetzt.",
	})
}
