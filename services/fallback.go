// services/fallback.go
package services

import "backend/entity"

// Curated default content served whenever the store yields nothing usable.
// Each function is pure and returns a fresh copy so callers can never
// corrupt the defaults.

func DefaultInfo() entity.RestaurantInfo {
	return entity.RestaurantInfo{
		Name:    "Paprika & Pálinka",
		Tagline: "Authentic Hungarian flavors in the heart of the city",
		Address: "60 Andrassy Ave",
		City:    "Budapest",
		Phone:   "(+36) 1 234 5678",
		Email:   "hello@paprikapalinka.hu",
		Hours: []string{
			"Mon-Thu: 12:00 - 22:00",
			"Fri-Sat: 12:00 - 23:00",
			"Sun: 12:00 - 21:00",
		},
		HeroImage: strPtr("https://images.unsplash.com/photo-1544025162-d76694265947?q=80&w=1400&auto=format&fit=crop"),
	}
}

func DefaultMenu() []entity.MenuItem {
	return []entity.MenuItem{
		{
			Name:        "Gulyásleves (Goulash)",
			Description: "Traditional beef and vegetable soup with paprika.",
			Price:       9.5,
			Category:    "Starters",
			Image:       strPtr("https://images.unsplash.com/photo-1604908176997-4316c2b17178?q=80&w=1200&auto=format&fit=crop"),
		},
		{
			Name:        "Chicken Paprikash",
			Description: "Tender chicken in creamy paprika sauce served with nokedli.",
			Price:       15.0,
			Category:    "Mains",
			Image:       strPtr("https://images.unsplash.com/photo-1559620192-032c4bc4674e?q=80&w=1200&auto=format&fit=crop"),
		},
		{
			Name:        "Fisherman's Soup (Halászlé)",
			Description: "Spicy river fish soup from the Danube.",
			Price:       13.0,
			Category:    "Mains",
		},
		{
			Name:        "Dobos Torte",
			Description: "Layered sponge cake with chocolate buttercream and caramel glaze.",
			Price:       6.5,
			Category:    "Desserts",
			Image:       strPtr("https://images.unsplash.com/photo-1541781774459-bb2af2f05b55?q=80&w=1200&auto=format&fit=crop"),
		},
	}
}

func DefaultTestimonials() []entity.Testimonial {
	return []entity.Testimonial{
		{Name: "Anna", Rating: 5, Comment: "The best goulash I've ever had!"},
		{Name: "Bence", Rating: 4, Comment: "Authentic flavors and cozy atmosphere."},
		{Name: "Éva", Rating: 5, Comment: "Dobos torte was heavenly!"},
	}
}

func strPtr(s string) *string { return &s }
