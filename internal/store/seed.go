package store

import (
	"github.com/MKhiriev/pizza-specials/models"
	"github.com/shopspring/decimal"
)

// SeedSpecials returns the sample catalog the service starts with. Each call
// issues fresh identifiers from generator.
func SeedSpecials(generator IDGenerator) []models.PizzaSpecial {
	seed := []struct {
		name, price, description, image string
	}{
		{"Basic Cheese Pizza", "9.99", "It's cheesy and delicious. Why wouldn't you want one?", "img/pizzas/cheese.jpg"},
		{"The Baconatorizor", "11.99", "It has EVERY kind of bacon", "img/pizzas/bacon.jpg"},
		{"Classic pepperoni", "10.50", "It's the pizza you grew up with, but Blazing hot!", "img/pizzas/pepperoni.jpg"},
		{"Buffalo chicken", "12.75", "Spicy chicken, hot sauce and bleu cheese, guaranteed to warm you up", "img/pizzas/meaty.jpg"},
		{"Mushroom Lovers", "11.00", "It has mushrooms. Isn't that obvious?", "img/pizzas/mushroom.jpg"},
		{"The Brit", "10.25", "When in London...", "img/pizzas/brit.jpg"},
		{"Veggie Delight", "11.50", "It's like salad, but on a pizza", "img/pizzas/salad.jpg"},
		{"Margherita", "9.99", "Traditional Italian pizza with tomatoes and basil", "img/pizzas/margherita.jpg"},
	}

	specials := make([]models.PizzaSpecial, 0, len(seed))
	for _, s := range seed {
		specials = append(specials, models.PizzaSpecial{
			ID:          generator.Generate(),
			Name:        s.name,
			BasePrice:   decimal.RequireFromString(s.price),
			Description: s.description,
			ImageURL:    s.image,
		})
	}

	return specials
}
