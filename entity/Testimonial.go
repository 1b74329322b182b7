package entity

import "fmt"

type Testimonial struct {
	Name    string  `json:"name" bson:"name" binding:"required"`
	Rating  int     `json:"rating" bson:"rating" binding:"required,gte=1,lte=5"`
	Comment string  `json:"comment" bson:"comment" binding:"required"`
	Avatar  *string `json:"avatar" bson:"avatar,omitempty"`
}

// TestimonialFromDocument projects a raw store document onto the Testimonial
// fields. The rating must land in [1,5] after numeric coercion.
func TestimonialFromDocument(doc map[string]any) (Testimonial, error) {
	var tm Testimonial
	var err error

	if tm.Name, err = docString(doc, "name"); err != nil {
		return Testimonial{}, err
	}
	if tm.Rating, err = docInt(doc, "rating"); err != nil {
		return Testimonial{}, err
	}
	if tm.Rating < 1 || tm.Rating > 5 {
		return Testimonial{}, fmt.Errorf("rating: must be between 1 and 5, got %d", tm.Rating)
	}
	if tm.Comment, err = docString(doc, "comment"); err != nil {
		return Testimonial{}, err
	}
	tm.Avatar = docOptionalString(doc, "avatar")

	return tm, nil
}
