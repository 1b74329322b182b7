// services/content_service.go
package services

import (
	"context"
	"log"

	"backend/entity"
	"backend/repository"
)

// ContentService serves the read endpoints with the read-with-fallback
// pattern: fetch, project each document onto the entity schema, and serve
// the curated defaults when the store is unavailable, empty, or nothing
// survives projection. Empty and failed reads are deliberately
// indistinguishable to clients.
type ContentService struct {
	Store Gateway
}

func NewContentService(store Gateway) *ContentService {
	return &ContentService{Store: store}
}

// Info returns the first stored restaurant info record, or the default.
func (s *ContentService) Info(ctx context.Context) entity.RestaurantInfo {
	res := s.Store.Fetch(ctx, "restaurantinfo", nil, 1)
	if res.Status == repository.FetchFailed {
		log.Println("info fetch failed, serving default:", res.Err)
	}
	if res.Status == repository.FetchFound {
		info, err := entity.RestaurantInfoFromDocument(res.Docs[0])
		if err == nil {
			return info
		}
		log.Println("skip malformed restaurantinfo document:", err)
	}
	return DefaultInfo()
}

// Menu returns all stored menu items in store order. Malformed documents
// are skipped; the default menu is served only when nothing survives.
func (s *ContentService) Menu(ctx context.Context) []entity.MenuItem {
	res := s.Store.Fetch(ctx, "menuitem", nil, 0)
	if res.Status == repository.FetchFailed {
		log.Println("menu fetch failed, serving default:", res.Err)
	}
	items := make([]entity.MenuItem, 0, len(res.Docs))
	for _, doc := range res.Docs {
		item, err := entity.MenuItemFromDocument(doc)
		if err != nil {
			log.Println("skip malformed menuitem document:", err)
			continue
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return DefaultMenu()
	}
	return items
}

// Testimonials mirrors Menu against the testimonial collection.
func (s *ContentService) Testimonials(ctx context.Context) []entity.Testimonial {
	res := s.Store.Fetch(ctx, "testimonial", nil, 0)
	if res.Status == repository.FetchFailed {
		log.Println("testimonials fetch failed, serving default:", res.Err)
	}
	out := make([]entity.Testimonial, 0, len(res.Docs))
	for _, doc := range res.Docs {
		tm, err := entity.TestimonialFromDocument(doc)
		if err != nil {
			log.Println("skip malformed testimonial document:", err)
			continue
		}
		out = append(out, tm)
	}
	if len(out) == 0 {
		return DefaultTestimonials()
	}
	return out
}
