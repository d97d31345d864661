package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/models"
	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantController handles HTTP requests related to restaurants
type RestaurantController interface {
	// GetAllRestaurants lists all restaurants
	GetAllRestaurants(c *gin.Context)
	// GetRestaurantByID retrieves a restaurant and its menu
	GetRestaurantByID(c *gin.Context)
	// DeleteRestaurant deletes a restaurant and its menu
	DeleteRestaurant(c *gin.Context)
}

type restaurantController struct {
	service services.RestaurantService
}

// NewRestaurantController creates a new instance of RestaurantController
func NewRestaurantController(service services.RestaurantService) RestaurantController {
	return &restaurantController{service: service}
}

// GetAllRestaurants godoc
// @Summary Get all restaurants
// @Description Get a list of all restaurants without their menus
// @Tags restaurants
// @Produce json
// @Success 200 {array} models.Restaurant
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants [get]
func (c *restaurantController) GetAllRestaurants(ctx *gin.Context) {
	restaurants, err := c.service.ListRestaurants(ctx.Request.Context())
	if err != nil {
		respondLookupError(ctx, err, models.MsgRestaurantNotFound)
		return
	}

	records := make([]*models.Record, 0, len(restaurants))
	for _, restaurant := range restaurants {
		records = append(records, restaurant.Serialize(models.Only("id", "name", "address")))
	}
	ctx.JSON(http.StatusOK, records)
}

// GetRestaurantByID godoc
// @Summary Get restaurant by ID
// @Description Get a single restaurant with its restaurant_pizzas
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.Restaurant
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /restaurants/{id} [get]
func (c *restaurantController) GetRestaurantByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "restaurant")
	if !ok {
		return
	}

	restaurant, err := c.service.GetRestaurant(ctx.Request.Context(), id)
	if err != nil {
		respondLookupError(ctx, err, models.MsgRestaurantNotFound)
		return
	}
	ctx.JSON(http.StatusOK, restaurant.Serialize(models.WithRelations()))
}

// DeleteRestaurant godoc
// @Summary Delete a restaurant
// @Description Delete a restaurant by its ID together with its restaurant_pizzas
// @Tags restaurants
// @Param id path int true "Restaurant ID"
// @Success 204
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants/{id} [delete]
func (c *restaurantController) DeleteRestaurant(ctx *gin.Context) {
	id, ok := parseID(ctx, "restaurant")
	if !ok {
		return
	}

	if err := c.service.DeleteRestaurant(ctx.Request.Context(), id); err != nil {
		respondLookupError(ctx, err, models.MsgRestaurantNotFound)
		return
	}
	ctx.Status(http.StatusNoContent)
}
