package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Option struct {
	ID          string       `json:"_id" bson:"_id"`
	Name        string       `json:"name" bson:"name"`
	Description string       `json:"description" bson:"description"`
	Price       float64      `json:"price" bson:"price"`
	IsAvailable bool         `json:"isAvailable" bson:"isAvailable"`
	ItemID      string       `json:"itemId" bson:"itemId"`
	ItemModel   ResourceKind `json:"itemModel" bson:"itemModel"`
}

func (o Option) Ref() ItemRef {
	return ItemRef{ItemID: o.ItemID, ItemModel: o.ItemModel}
}

type OptionCategory struct {
	ID        string    `json:"_id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Options   []Option  `json:"options" bson:"options"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// OptionInput is one option as submitted. Price accepts a JSON number or a
// numeric string; a missing price leaves Valid false.
type OptionInput struct {
	Name        string              `json:"name" validate:"required,max=200"`
	Description string              `json:"description" validate:"max=2000"`
	Price       decimal.NullDecimal `json:"price"`
	IsAvailable *bool               `json:"isAvailable"`
	ItemID      string              `json:"itemId" validate:"required,mongodb"`
	ItemModel   string              `json:"itemModel" validate:"required,resource_kind"`
}

type CategoryOptionsInput struct {
	Name    string        `json:"name" validate:"required,max=100"`
	Options []OptionInput `json:"options" validate:"required,min=1,dive"`
}
