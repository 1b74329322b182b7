package entity

type RestaurantInfo struct {
	Name      string   `json:"name" bson:"name" binding:"required"`
	Tagline   string   `json:"tagline" bson:"tagline" binding:"required"`
	Address   string   `json:"address" bson:"address" binding:"required"`
	City      string   `json:"city" bson:"city" binding:"required"`
	Phone     string   `json:"phone" bson:"phone" binding:"required"`
	Email     string   `json:"email" bson:"email" binding:"required"`
	Hours     []string `json:"hours" bson:"hours"` // display order
	HeroImage *string  `json:"hero_image" bson:"hero_image,omitempty"`
}

// RestaurantInfoFromDocument projects a raw store document onto the
// RestaurantInfo fields. Unrecognized keys are dropped; hours defaults to an
// empty list and hero_image to null.
func RestaurantInfoFromDocument(doc map[string]any) (RestaurantInfo, error) {
	var info RestaurantInfo
	var err error

	if info.Name, err = docString(doc, "name"); err != nil {
		return RestaurantInfo{}, err
	}
	if info.Tagline, err = docString(doc, "tagline"); err != nil {
		return RestaurantInfo{}, err
	}
	if info.Address, err = docString(doc, "address"); err != nil {
		return RestaurantInfo{}, err
	}
	if info.City, err = docString(doc, "city"); err != nil {
		return RestaurantInfo{}, err
	}
	if info.Phone, err = docString(doc, "phone"); err != nil {
		return RestaurantInfo{}, err
	}
	if info.Email, err = docString(doc, "email"); err != nil {
		return RestaurantInfo{}, err
	}
	info.Hours = docStringSlice(doc, "hours")
	info.HeroImage = docOptionalString(doc, "hero_image")

	return info, nil
}
