package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"studysimplifier/internal/models"
	"studysimplifier/internal/services"
)

type LinkHandler struct {
	linkService services.LinkService
}

func NewLinkHandler(linkService services.LinkService) *LinkHandler {
	return &LinkHandler{linkService: linkService}
}

// @Summary      Links auflisten
// @Tags         Links
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  models.Link
// @Router       /api/links [get]
func (h *LinkHandler) List(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Kein Token, Zugriff verweigert"})
		return
	}
	links, err := h.linkService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}
	c.JSON(http.StatusOK, links)
}

type createLinkRequest struct {
	Title    string `json:"title" binding:"required"`
	URL      string `json:"url" binding:"required"`
	Category string `json:"category"`
	Image    string `json:"image"`
}

// @Summary      Link erstellen
// @Tags         Links
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        link  body      createLinkRequest  true  "Neuer Link"
// @Success      200   {object}  models.Link
// @Failure      400   {object}  map[string]string
// @Router       /api/links [post]
func (h *LinkHandler) Create(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Kein Token, Zugriff verweigert"})
		return
	}
	var req createLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	link, err := h.linkService.Create(c.Request.Context(), &models.Link{
		Title:    req.Title,
		URL:      req.URL,
		Category: req.Category,
		Image:    req.Image,
		UserID:   userID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}
	c.JSON(http.StatusOK, link)
}

// @Summary      Link löschen
// @Tags         Links
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Link-ID"
// @Success      200 {object}  map[string]string
// @Failure      401 {object}  map[string]string
// @Failure      404 {object}  map[string]string
// @Router       /api/links/{id} [delete]
func (h *LinkHandler) Delete(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Kein Token, Zugriff verweigert"})
		return
	}
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Link nicht gefunden"})
		return
	}
	link, err := h.linkService.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}
	if link == nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Link nicht gefunden"})
		return
	}
	if link.UserID != userID {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Nicht autorisiert"})
		return
	}

	if err := h.linkService.Delete(c.Request.Context(), link.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Link entfernt"})
}
