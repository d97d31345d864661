package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/models"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RestaurantPizzaService manages the priced links between restaurants and pizzas
type RestaurantPizzaService interface {
	// CreateRestaurantPizza validates the input, checks that the pizza and the
	// restaurant exist and stores the association, all in one transaction.
	// The returned value has Pizza and Restaurant loaded.
	CreateRestaurantPizza(ctx context.Context, input models.RestaurantPizzaInput) (models.RestaurantPizza, error)
	// GetRestaurantPizza retrieves an association with its pizza and restaurant
	GetRestaurantPizza(ctx context.Context, id uint) (models.RestaurantPizza, error)
	// DeleteRestaurantPizza removes a single association
	DeleteRestaurantPizza(ctx context.Context, id uint) error
}

type restaurantPizzaService struct {
	db *gorm.DB
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db}
}

func (s *restaurantPizzaService) CreateRestaurantPizza(ctx context.Context, input models.RestaurantPizzaInput) (models.RestaurantPizza, error) {
	var created models.RestaurantPizza

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rp, err := models.NewRestaurantPizza(input)
		if err != nil {
			return err
		}

		var missing []string
		var pizza models.Pizza
		if err := lockForShare(tx).First(&pizza, rp.PizzaID).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("find pizza: %w", err)
			}
			missing = append(missing, models.MsgPizzaNotFound)
		}
		var restaurant models.Restaurant
		if err := lockForShare(tx).First(&restaurant, rp.RestaurantID).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("find restaurant: %w", err)
			}
			missing = append(missing, models.MsgRestaurantNotFound)
		}
		if len(missing) > 0 {
			return &ReferenceError{Missing: missing}
		}

		if err := tx.Omit(clause.Associations).Create(&rp).Error; err != nil {
			return fmt.Errorf("create restaurant pizza: %w", err)
		}
		rp.Pizza = &pizza
		rp.Restaurant = &restaurant
		created = rp
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrIntegrity) && isIntegrityViolation(err) {
			err = fmt.Errorf("%w: %v", ErrIntegrity, err)
		}
		log.WithError(err).Debug("Restaurant pizza not created")
		return models.RestaurantPizza{}, err
	}

	log.WithFields(log.Fields{
		"restaurant_pizza_id": created.ID,
		"pizza_id":            created.PizzaID,
		"restaurant_id":       created.RestaurantID,
		"price":               created.Price,
	}).Info("Restaurant pizza created")
	return created, nil
}

func (s *restaurantPizzaService) GetRestaurantPizza(ctx context.Context, id uint) (models.RestaurantPizza, error) {
	var rp models.RestaurantPizza
	err := s.db.WithContext(ctx).
		Preload("Pizza").
		Preload("Restaurant").
		First(&rp, id).Error
	if err != nil {
		return models.RestaurantPizza{}, notFoundOr(err, "RestaurantPizza")
	}
	return rp, nil
}

func (s *restaurantPizzaService) DeleteRestaurantPizza(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.RestaurantPizza{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete restaurant pizza: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "RestaurantPizza"}
	}
	return nil
}

// lockForShare holds parent rows until the transaction ends so a concurrent
// delete waits and then cascades to the new row. SQLite transactions already
// begin IMMEDIATE and have no row locks.
func lockForShare(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "SHARE"})
	}
	return tx
}
