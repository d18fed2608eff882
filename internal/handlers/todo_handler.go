package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"studysimplifier/internal/models"
	"studysimplifier/internal/services"
)

type TodoHandler struct {
	todoService services.TodoService
}

func NewTodoHandler(todoService services.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

// @Summary      Todos auflisten
// @Tags         Todos
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  models.Todo
// @Router       /api/todos [get]
func (h *TodoHandler) List(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Kein Token, Zugriff verweigert"})
		return
	}
	todos, err := h.todoService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}
	c.JSON(http.StatusOK, todos)
}

type createTodoRequest struct {
	Title    string              `json:"title" binding:"required"`
	DueDate  *time.Time          `json:"dueDate"`
	Category string              `json:"category"`
	Color    string              `json:"color"`
	Priority models.TodoPriority `json:"priority"`
}

// @Summary      Todo erstellen
// @Tags         Todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        todo  body      createTodoRequest  true  "Neues Todo"
// @Success      200   {object}  models.Todo
// @Failure      400   {object}  map[string]string
// @Router       /api/todos [post]
func (h *TodoHandler) Create(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Kein Token, Zugriff verweigert"})
		return
	}
	var req createTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	todo, err := h.todoService.Create(c.Request.Context(), &models.Todo{
		Title:    req.Title,
		DueDate:  req.DueDate,
		Category: req.Category,
		Color:    req.Color,
		Priority: req.Priority,
		UserID:   userID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}
	c.JSON(http.StatusOK, todo)
}

type updateTodoRequest struct {
	Title    *string              `json:"title"`
	DueDate  *time.Time           `json:"dueDate"`
	Category *string              `json:"category"`
	Color    *string              `json:"color"`
	Priority *models.TodoPriority `json:"priority"`
}

// @Summary      Todo aktualisieren
// @Description  Ohne Felder im Body wird der Erledigt-Status umgeschaltet
// @Tags         Todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true   "Todo-ID"
// @Param        todo  body      updateTodoRequest  false  "Geänderte Felder"
// @Success      200   {object}  models.Todo
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/todos/{id} [put]
func (h *TodoHandler) Update(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Kein Token, Zugriff verweigert"})
		return
	}
	todo, ok := h.ownedTodo(c, userID)
	if !ok {
		return
	}

	var req updateTodoRequest
	_ = c.ShouldBindJSON(&req)

	if req.Title == nil && req.DueDate == nil && req.Category == nil && req.Color == nil && req.Priority == nil {
		todo.Completed = !todo.Completed
	} else {
		if req.Title != nil {
			todo.Title = *req.Title
		}
		if req.DueDate != nil {
			todo.DueDate = req.DueDate
		}
		if req.Category != nil {
			todo.Category = *req.Category
		}
		if req.Color != nil {
			todo.Color = *req.Color
		}
		if req.Priority != nil {
			todo.Priority = *req.Priority
		}
	}

	if err := h.todoService.Update(c.Request.Context(), todo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}
	c.JSON(http.StatusOK, todo)
}

// @Summary      Todo löschen
// @Tags         Todos
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Todo-ID"
// @Success      200 {object}  map[string]string
// @Failure      401 {object}  map[string]string
// @Failure      404 {object}  map[string]string
// @Router       /api/todos/{id} [delete]
func (h *TodoHandler) Delete(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Kein Token, Zugriff verweigert"})
		return
	}
	todo, ok := h.ownedTodo(c, userID)
	if !ok {
		return
	}
	if err := h.todoService.Delete(c.Request.Context(), todo.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Todo entfernt"})
}

// ownedTodo resolves the :id param and enforces ownership, writing the
// error response itself on failure.
func (h *TodoHandler) ownedTodo(c *gin.Context, userID primitive.ObjectID) (*models.Todo, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Todo nicht gefunden"})
		return nil, false
	}
	todo, err := h.todoService.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return nil, false
	}
	if todo == nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Todo nicht gefunden"})
		return nil, false
	}
	if todo.UserID != userID {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Nicht autorisiert"})
		return nil, false
	}
	return todo, true
}
