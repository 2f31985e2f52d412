package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	Tasks       []Task             `bson:"tasks" json:"tasks"`
}

// Task is embedded in its parent project and is not addressable on its own.
// The ID is unique within the project, not globally.
type Task struct {
	ID        string `bson:"id" json:"id"`
	Title     string `bson:"title" json:"title"`
	Assignee  string `bson:"assignee" json:"assignee"`
	DueDate   string `bson:"dueDate" json:"dueDate"`
	Completed bool   `bson:"completed" json:"completed"`
}
