package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TodoPriority defines the possible priorities for a todo.
type TodoPriority string

const (
	PriorityLow    TodoPriority = "low"
	PriorityMedium TodoPriority = "medium"
	PriorityHigh   TodoPriority = "high"
)

// DefaultTodoColor is the dashboard's violet accent.
const DefaultTodoColor = "#67329E"

// DefaultCategory is used for todos and links created without one.
const DefaultCategory = "default"

type Todo struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	DueDate   *time.Time         `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	Completed bool               `bson:"completed" json:"completed"`
	Category  string             `bson:"category" json:"category"`
	Color     string             `bson:"color" json:"color"`
	Priority  TodoPriority       `bson:"priority" json:"priority"`
	UserID    primitive.ObjectID `bson:"user" json:"user"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
