package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMenuItemFromDocument(t *testing.T) {
	t.Parallel()

	doc := map[string]any{
		"_id":         "ignored",
		"name":        "Chicken Paprikash",
		"description": "Creamy paprika sauce.",
		"price":       15.0,
		"category":    "Mains",
		"kitchen":     "left station", // unrecognized, must be dropped
	}

	item, err := MenuItemFromDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, "Chicken Paprikash", item.Name)
	assert.Equal(t, 15.0, item.Price)
	assert.Equal(t, "Mains", item.Category)
	assert.Nil(t, item.Image)
	assert.False(t, item.Spicy)
	assert.False(t, item.Vegetarian)
}

func TestMenuItemFromDocumentCoercesStoreNumerics(t *testing.T) {
	t.Parallel()

	for name, price := range map[string]any{
		"int32":   int32(12),
		"int64":   int64(12),
		"float64": 12.0,
	} {
		doc := map[string]any{
			"name":        "Halászlé",
			"description": "Spicy fish soup.",
			"price":       price,
			"category":    "Mains",
			"spicy":       true,
		}
		item, err := MenuItemFromDocument(doc)
		require.NoError(t, err, name)
		assert.Equal(t, 12.0, item.Price, name)
		assert.True(t, item.Spicy, name)
	}
}

func TestMenuItemFromDocumentRejectsBadRecords(t *testing.T) {
	t.Parallel()

	cases := map[string]map[string]any{
		"missing name": {
			"description": "x", "price": 1.0, "category": "Mains",
		},
		"price wrong type": {
			"name": "x", "description": "x", "price": "9.50", "category": "Mains",
		},
		"negative price": {
			"name": "x", "description": "x", "price": -1.0, "category": "Mains",
		},
		"nil description": {
			"name": "x", "description": nil, "price": 1.0, "category": "Mains",
		},
	}

	for name, doc := range cases {
		_, err := MenuItemFromDocument(doc)
		assert.Error(t, err, name)
	}
}

func TestRestaurantInfoFromDocument(t *testing.T) {
	t.Parallel()

	doc := map[string]any{
		"name":       "Paprika & Pálinka",
		"tagline":    "Authentic Hungarian flavors",
		"address":    "60 Andrassy Ave",
		"city":       "Budapest",
		"phone":      "(+36) 1 234 5678",
		"email":      "hello@paprikapalinka.hu",
		"hours":      primitive.A{"Mon-Thu: 12:00 - 22:00", "Sun: 12:00 - 21:00"},
		"legacy_key": true,
	}

	info, err := RestaurantInfoFromDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"Mon-Thu: 12:00 - 22:00", "Sun: 12:00 - 21:00"}, info.Hours)
	assert.Nil(t, info.HeroImage)
}

func TestRestaurantInfoFromDocumentMissingRequired(t *testing.T) {
	t.Parallel()

	_, err := RestaurantInfoFromDocument(map[string]any{"name": "only a name"})
	assert.Error(t, err)
}

func TestTestimonialFromDocument(t *testing.T) {
	t.Parallel()

	doc := map[string]any{
		"name":    "Anna",
		"rating":  int32(5),
		"comment": "The best goulash I've ever had!",
		"avatar":  "https://example.com/a.png",
	}

	tm, err := TestimonialFromDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, 5, tm.Rating)
	require.NotNil(t, tm.Avatar)
	assert.Equal(t, "https://example.com/a.png", *tm.Avatar)

	for _, rating := range []any{0, 6, int64(42), 4.5} {
		doc["rating"] = rating
		_, err := TestimonialFromDocument(doc)
		assert.Error(t, err, "rating %v", rating)
	}
}
