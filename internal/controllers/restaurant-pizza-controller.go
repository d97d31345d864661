package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/models"
	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantPizzaController handles HTTP requests for restaurant menu items
type RestaurantPizzaController interface {
	// CreateRestaurantPizza puts a pizza on a restaurant's menu at a price
	CreateRestaurantPizza(c *gin.Context)
	// GetRestaurantPizzaByID retrieves a single menu item
	GetRestaurantPizzaByID(c *gin.Context)
	// DeleteRestaurantPizza removes a single menu item
	DeleteRestaurantPizza(c *gin.Context)
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService) RestaurantPizzaController {
	return &restaurantPizzaController{service: service}
}

// CreateRestaurantPizza godoc
// @Summary Create a restaurant pizza
// @Description Link an existing pizza to an existing restaurant with a price between 1 and 30
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body models.RestaurantPizzaInput true "Restaurant pizza"
// @Success 201 {object} models.RestaurantPizza
// @Failure 400 {object} models.ErrorsResponse
// @Failure 404 {object} models.ErrorsResponse
// @Failure 409 {object} models.ErrorsResponse
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var input models.RestaurantPizzaInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewErrorsResponse(bindingErrorMessage(err)))
		return
	}

	rp, err := c.service.CreateRestaurantPizza(ctx.Request.Context(), input)
	if err != nil {
		respondWriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, rp.Serialize(models.WithParents()))
}

// GetRestaurantPizzaByID godoc
// @Summary Get restaurant pizza by ID
// @Description Get a single restaurant pizza with its pizza and restaurant
// @Tags restaurant_pizzas
// @Produce json
// @Param id path int true "RestaurantPizza ID"
// @Success 200 {object} models.RestaurantPizza
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /restaurant_pizzas/{id} [get]
func (c *restaurantPizzaController) GetRestaurantPizzaByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "restaurant pizza")
	if !ok {
		return
	}

	rp, err := c.service.GetRestaurantPizza(ctx.Request.Context(), id)
	if err != nil {
		respondLookupError(ctx, err, models.MsgRestaurantPizzaNotFound)
		return
	}
	ctx.JSON(http.StatusOK, rp.Serialize(models.WithParents()))
}

// DeleteRestaurantPizza godoc
// @Summary Delete a restaurant pizza
// @Description Remove a pizza from a restaurant's menu
// @Tags restaurant_pizzas
// @Param id path int true "RestaurantPizza ID"
// @Success 204
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /restaurant_pizzas/{id} [delete]
func (c *restaurantPizzaController) DeleteRestaurantPizza(ctx *gin.Context) {
	id, ok := parseID(ctx, "restaurant pizza")
	if !ok {
		return
	}

	if err := c.service.DeleteRestaurantPizza(ctx.Request.Context(), id); err != nil {
		respondLookupError(ctx, err, models.MsgRestaurantPizzaNotFound)
		return
	}
	ctx.Status(http.StatusNoContent)
}
