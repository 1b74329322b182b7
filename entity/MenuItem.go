package entity

import "fmt"

type MenuItem struct {
	Name        string  `json:"name" bson:"name" binding:"required"`
	Description string  `json:"description" bson:"description" binding:"required"`
	Price       float64 `json:"price" bson:"price" binding:"required,gte=0"`
	Category    string  `json:"category" bson:"category" binding:"required"` // Starters / Mains / Desserts by convention
	Image       *string `json:"image" bson:"image,omitempty"`
	Spicy       bool    `json:"spicy" bson:"spicy"`
	Vegetarian  bool    `json:"vegetarian" bson:"vegetarian"`
}

// MenuItemFromDocument projects a raw store document onto the MenuItem
// fields, coercing the store's numeric wire types for price and defaulting
// the optional flags to false and image to null.
func MenuItemFromDocument(doc map[string]any) (MenuItem, error) {
	var item MenuItem
	var err error

	if item.Name, err = docString(doc, "name"); err != nil {
		return MenuItem{}, err
	}
	if item.Description, err = docString(doc, "description"); err != nil {
		return MenuItem{}, err
	}
	if item.Price, err = docFloat(doc, "price"); err != nil {
		return MenuItem{}, err
	}
	if item.Price < 0 {
		return MenuItem{}, fmt.Errorf("price: must not be negative, got %v", item.Price)
	}
	if item.Category, err = docString(doc, "category"); err != nil {
		return MenuItem{}, err
	}
	item.Image = docOptionalString(doc, "image")
	item.Spicy = docBool(doc, "spicy")
	item.Vegetarian = docBool(doc, "vegetarian")

	return item, nil
}
