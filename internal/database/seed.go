package database

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/models"
	"gorm.io/gorm"
)

// Seed fills an empty database with sample restaurants, pizzas and menu items.
// It returns false without writing anything when restaurants already exist.
func Seed(ctx context.Context, db *gorm.DB) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Restaurant{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("count restaurants: %w", err)
	}
	if count > 0 {
		log.Info("Database already seeded with initial data")
		return false, nil
	}

	log.Info("Seeding database with initial data")
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		restaurants := []models.Restaurant{
			{Name: "Karen's Pizza Shack", Address: "address1"},
			{Name: "Sanjay's Pizza", Address: "address2"},
			{Name: "Kiki's Pizza", Address: "address3"},
		}
		if err := tx.Create(&restaurants).Error; err != nil {
			return fmt.Errorf("create restaurants: %w", err)
		}

		pizzas := []models.Pizza{
			{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
			{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
			{Name: "Melanie", Ingredients: "Dough, Sauce, Ricotta, Red peppers, Mustard"},
		}
		if err := tx.Create(&pizzas).Error; err != nil {
			return fmt.Errorf("create pizzas: %w", err)
		}

		items := []models.RestaurantPizza{
			{Price: 1, RestaurantID: restaurants[0].ID, PizzaID: pizzas[0].ID},
			{Price: 4, RestaurantID: restaurants[1].ID, PizzaID: pizzas[1].ID},
			{Price: 5, RestaurantID: restaurants[2].ID, PizzaID: pizzas[2].ID},
		}
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("create restaurant pizzas: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	log.Info("Database seeded successfully")
	return true, nil
}
