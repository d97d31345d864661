package services

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/models"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// PizzaService provides methods to interact with the pizza database
type PizzaService interface {
	// ListPizzas retrieves all pizzas ordered by id
	ListPizzas(ctx context.Context) ([]models.Pizza, error)
	// GetPizza retrieves a pizza by its ID
	GetPizza(ctx context.Context, id uint) (models.Pizza, error)
	// DeletePizza deletes a pizza and every restaurant pizza that offers it
	DeletePizza(ctx context.Context, id uint) error
}

// pizzaService is the implementation of the PizzaService interface
type pizzaService struct {
	db *gorm.DB
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{db: db}
}

func (s *pizzaService) ListPizzas(ctx context.Context) ([]models.Pizza, error) {
	pizzas := []models.Pizza{}
	if err := s.db.WithContext(ctx).Order("id").Find(&pizzas).Error; err != nil {
		return nil, fmt.Errorf("list pizzas: %w", err)
	}
	return pizzas, nil
}

func (s *pizzaService) GetPizza(ctx context.Context, id uint) (models.Pizza, error) {
	var pizza models.Pizza
	if err := s.db.WithContext(ctx).First(&pizza, id).Error; err != nil {
		return models.Pizza{}, notFoundOr(err, "Pizza")
	}
	return pizza, nil
}

func (s *pizzaService) DeletePizza(ctx context.Context, id uint) error {
	var removed int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pizza models.Pizza
		if err := tx.First(&pizza, id).Error; err != nil {
			return notFoundOr(err, "Pizza")
		}

		res := tx.Where("pizza_id = ?", id).Delete(&models.RestaurantPizza{})
		if res.Error != nil {
			return fmt.Errorf("delete restaurant pizzas: %w", res.Error)
		}
		removed = res.RowsAffected

		if err := tx.Delete(&pizza).Error; err != nil {
			return fmt.Errorf("delete pizza: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"pizza_id":                  id,
		"restaurant_pizzas_removed": removed,
	}).Info("Pizza deleted")
	return nil
}
