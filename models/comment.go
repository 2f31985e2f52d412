package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Comment struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User   string             `bson:"user" json:"user"`
	Text   string             `bson:"text" json:"text"`
	Time   string             `bson:"time" json:"time"`
	UserID primitive.ObjectID `bson:"userId" json:"userId"`
}
