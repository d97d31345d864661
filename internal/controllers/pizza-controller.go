package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/models"
	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/services"
	"github.com/gin-gonic/gin"
)

// PizzaController handles HTTP requests related to pizzas
type PizzaController interface {
	// GetAllPizzas retrieves all pizzas
	GetAllPizzas(c *gin.Context)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(c *gin.Context)
	// DeletePizza deletes a pizza by its ID
	DeletePizza(c *gin.Context)
}

type pizzaController struct {
	service services.PizzaService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService) PizzaController {
	return &pizzaController{service: service}
}

// GetAllPizzas godoc
// @Summary Get all pizzas
// @Description Get a list of all pizzas
// @Tags pizzas
// @Produce json
// @Success 200 {array} models.Pizza
// @Failure 500 {object} models.ErrorResponse
// @Router /pizzas [get]
func (c *pizzaController) GetAllPizzas(ctx *gin.Context) {
	pizzas, err := c.service.ListPizzas(ctx.Request.Context())
	if err != nil {
		respondLookupError(ctx, err, models.MsgPizzaNotFound)
		return
	}

	records := make([]*models.Record, 0, len(pizzas))
	for _, pizza := range pizzas {
		records = append(records, pizza.Serialize(models.Only("id", "name", "ingredients")))
	}
	ctx.JSON(http.StatusOK, records)
}

// GetPizzaByID godoc
// @Summary Get pizza by ID
// @Description Get a single pizza by its ID
// @Tags pizzas
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {object} models.Pizza
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /pizzas/{id} [get]
func (c *pizzaController) GetPizzaByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "pizza")
	if !ok {
		return
	}

	pizza, err := c.service.GetPizza(ctx.Request.Context(), id)
	if err != nil {
		respondLookupError(ctx, err, models.MsgPizzaNotFound)
		return
	}
	ctx.JSON(http.StatusOK, pizza.Serialize())
}

// DeletePizza godoc
// @Summary Delete a pizza
// @Description Delete a pizza by its ID; every restaurant_pizza offering it is removed too
// @Tags pizzas
// @Param id path int true "Pizza ID"
// @Success 204
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /pizzas/{id} [delete]
func (c *pizzaController) DeletePizza(ctx *gin.Context) {
	id, ok := parseID(ctx, "pizza")
	if !ok {
		return
	}

	if err := c.service.DeletePizza(ctx.Request.Context(), id); err != nil {
		respondLookupError(ctx, err, models.MsgPizzaNotFound)
		return
	}
	ctx.Status(http.StatusNoContent)
}
