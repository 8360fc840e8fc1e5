package models

// MenuItem is a single dish and its price.
type MenuItem struct {
	ItemName  string  `json:"itemName"`
	ItemPrice float64 `json:"itemPrice"`
}

// MenuCategory groups menu items, e.g. "Starters".
type MenuCategory struct {
	Category      string     `json:"category"`
	MenuItems     []MenuItem `json:"menuItems"`
	CategoryImage string     `json:"categoryImage,omitempty"`
}

// Caterer is a caterer attached to a venue.
type Caterer struct {
	ID                string       `json:"_id"`
	Mandap            Ref          `json:"mandapId"`
	CatererName       string       `json:"catererName"`
	MenuCategory      MenuCategory `json:"menuCategory"`
	FoodType          string       `json:"foodType"`
	IsCustomizable    bool         `json:"isCustomizable"`
	CustomizableItems []MenuItem   `json:"customizableItems,omitempty"`
	HasTastingSession bool         `json:"hasTastingSession"`
}

// CatererInput is the field set submitted when adding a caterer. The
// backend accepts a single category per request.
type CatererInput struct {
	MandapID          string         `json:"mandapId" binding:"required"`
	CatererName       string         `json:"catererName" binding:"required"`
	MenuCategories    []MenuCategory `json:"menuCategories"`
	FoodType          string         `json:"foodType"`
	IsCustomizable    bool           `json:"isCustomizable"`
	CustomizableItems []MenuItem     `json:"customizableItems,omitempty"`
	HasTastingSession bool           `json:"hasTastingSession"`
}
