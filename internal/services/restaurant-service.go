package services

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/models"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RestaurantService provides methods to read and delete restaurants
type RestaurantService interface {
	// ListRestaurants retrieves all restaurants ordered by id
	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)
	// GetRestaurant retrieves a restaurant together with its restaurant pizzas
	GetRestaurant(ctx context.Context, id uint) (models.Restaurant, error)
	// DeleteRestaurant deletes a restaurant and all of its restaurant pizzas
	DeleteRestaurant(ctx context.Context, id uint) error
}

type restaurantService struct {
	db *gorm.DB
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(db *gorm.DB) RestaurantService {
	return &restaurantService{db: db}
}

func (s *restaurantService) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	restaurants := []models.Restaurant{}
	if err := s.db.WithContext(ctx).Order("id").Find(&restaurants).Error; err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	return restaurants, nil
}

func (s *restaurantService) GetRestaurant(ctx context.Context, id uint) (models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.WithContext(ctx).
		Preload("RestaurantPizzas", orderByID).
		First(&restaurant, id).Error
	if err != nil {
		return models.Restaurant{}, notFoundOr(err, "Restaurant")
	}
	return restaurant, nil
}

func (s *restaurantService) DeleteRestaurant(ctx context.Context, id uint) error {
	var removed int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := tx.First(&restaurant, id).Error; err != nil {
			return notFoundOr(err, "Restaurant")
		}

		// The schema cascades as well
		res := tx.Where("restaurant_id = ?", id).Delete(&models.RestaurantPizza{})
		if res.Error != nil {
			return fmt.Errorf("delete restaurant pizzas: %w", res.Error)
		}
		removed = res.RowsAffected

		if err := tx.Delete(&restaurant).Error; err != nil {
			return fmt.Errorf("delete restaurant: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"restaurant_id":             id,
		"restaurant_pizzas_removed": removed,
	}).Info("Restaurant deleted")
	return nil
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}
