package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/models"
	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubRestaurantService struct {
	restaurants []models.Restaurant
	err         error
}

func (s *stubRestaurantService) ListRestaurants(context.Context) ([]models.Restaurant, error) {
	return s.restaurants, s.err
}

func (s *stubRestaurantService) GetRestaurant(_ context.Context, id uint) (models.Restaurant, error) {
	if s.err != nil {
		return models.Restaurant{}, s.err
	}
	for _, r := range s.restaurants {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Restaurant{}, &services.NotFoundError{Entity: "Restaurant"}
}

func (s *stubRestaurantService) DeleteRestaurant(ctx context.Context, id uint) error {
	_, err := s.GetRestaurant(ctx, id)
	return err
}

type stubPizzaService struct {
	pizzas []models.Pizza
}

func (s *stubPizzaService) ListPizzas(context.Context) ([]models.Pizza, error) {
	return s.pizzas, nil
}

func (s *stubPizzaService) GetPizza(_ context.Context, id uint) (models.Pizza, error) {
	for _, p := range s.pizzas {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Pizza{}, &services.NotFoundError{Entity: "Pizza"}
}

func (s *stubPizzaService) DeletePizza(ctx context.Context, id uint) error {
	_, err := s.GetPizza(ctx, id)
	return err
}

type stubRestaurantPizzaService struct {
	createErr error
	received  *models.RestaurantPizzaInput
}

func (s *stubRestaurantPizzaService) CreateRestaurantPizza(_ context.Context, input models.RestaurantPizzaInput) (models.RestaurantPizza, error) {
	s.received = &input
	if s.createErr != nil {
		return models.RestaurantPizza{}, s.createErr
	}
	rp, err := models.NewRestaurantPizza(input)
	if err != nil {
		return models.RestaurantPizza{}, err
	}
	rp.ID = 4
	rp.Pizza = &models.Pizza{ID: rp.PizzaID, Name: "Emma", Ingredients: "Dough"}
	rp.Restaurant = &models.Restaurant{ID: rp.RestaurantID, Name: "Kiki's Pizza", Address: "address3"}
	return rp, nil
}

func (s *stubRestaurantPizzaService) GetRestaurantPizza(_ context.Context, id uint) (models.RestaurantPizza, error) {
	return models.RestaurantPizza{}, &services.NotFoundError{Entity: "RestaurantPizza"}
}

func (s *stubRestaurantPizzaService) DeleteRestaurantPizza(_ context.Context, id uint) error {
	return &services.NotFoundError{Entity: "RestaurantPizza"}
}

func perform(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func newRestaurantRouter(service services.RestaurantService) *gin.Engine {
	controller := NewRestaurantController(service)
	router := gin.New()
	router.GET("/restaurants", controller.GetAllRestaurants)
	router.GET("/restaurants/:id", controller.GetRestaurantByID)
	router.DELETE("/restaurants/:id", controller.DeleteRestaurant)
	return router
}

func TestRestaurantController(t *testing.T) {
	service := &stubRestaurantService{restaurants: []models.Restaurant{
		{ID: 1, Name: "Karen's Pizza Shack", Address: "address1", RestaurantPizzas: []models.RestaurantPizza{
			{ID: 1, Price: 1, PizzaID: 1, RestaurantID: 1},
		}},
	}}
	router := newRestaurantRouter(service)

	t.Run("list omits restaurant pizzas", func(t *testing.T) {
		w := perform(router, http.MethodGet, "/restaurants", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `[{"id":1,"name":"Karen's Pizza Shack","address":"address1"}]`, w.Body.String())
	})

	t.Run("get includes restaurant pizzas", func(t *testing.T) {
		w := perform(router, http.MethodGet, "/restaurants/1", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`{"id":1,"name":"Karen's Pizza Shack","address":"address1","restaurant_pizzas":[{"id":1,"price":1,"pizza_id":1,"restaurant_id":1}]}`,
			w.Body.String())
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		w := perform(router, http.MethodGet, "/restaurants/42", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Restaurant not found"}`, w.Body.String())

		w = perform(router, http.MethodDelete, "/restaurants/42", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Restaurant not found"}`, w.Body.String())
	})

	t.Run("non numeric id is 400", func(t *testing.T) {
		w := perform(router, http.MethodGet, "/restaurants/abc", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid restaurant ID format"}`, w.Body.String())
	})

	t.Run("delete answers 204 with an empty body", func(t *testing.T) {
		w := perform(router, http.MethodDelete, "/restaurants/1", "")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("an empty table is an empty array", func(t *testing.T) {
		w := perform(newRestaurantRouter(&stubRestaurantService{}), http.MethodGet, "/restaurants", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `[]`, w.Body.String())
	})

	t.Run("storage failures are 500", func(t *testing.T) {
		failing := newRestaurantRouter(&stubRestaurantService{err: errors.New("disk I/O error")})
		w := perform(failing, http.MethodGet, "/restaurants", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
	})
}

func TestPizzaController(t *testing.T) {
	controller := NewPizzaController(&stubPizzaService{pizzas: []models.Pizza{
		{ID: 1, Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
		{ID: 2, Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
	}})
	router := gin.New()
	router.GET("/pizzas", controller.GetAllPizzas)
	router.GET("/pizzas/:id", controller.GetPizzaByID)
	router.DELETE("/pizzas/:id", controller.DeletePizza)

	w := perform(router, http.MethodGet, "/pizzas", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		`[{"id":1,"name":"Emma","ingredients":"Dough, Tomato Sauce, Cheese"},{"id":2,"name":"Geri","ingredients":"Dough, Tomato Sauce, Cheese, Pepperoni"}]`,
		w.Body.String())

	w = perform(router, http.MethodGet, "/pizzas/2", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":2,"name":"Geri","ingredients":"Dough, Tomato Sauce, Cheese, Pepperoni"}`, w.Body.String())

	w = perform(router, http.MethodGet, "/pizzas/9", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Pizza not found"}`, w.Body.String())

	w = perform(router, http.MethodDelete, "/pizzas/-1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid pizza ID format"}`, w.Body.String())

	w = perform(router, http.MethodDelete, "/pizzas/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCreateRestaurantPizzaController(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		createErr      error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "created with nested parents",
			body:           `{"price": 5, "pizza_id": 1, "restaurant_id": 3}`,
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"id":4,"price":5,"pizza_id":1,"restaurant_id":3,"pizza":{"id":1,"name":"Emma","ingredients":"Dough"},"restaurant":{"id":3,"name":"Kiki's Pizza","address":"address3"}}`,
		},
		{
			name:           "price out of range",
			body:           `{"price": 31, "pizza_id": 1, "restaurant_id": 3}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"errors":["price must be between 1 and 30"]}`,
		},
		{
			name:           "missing fields",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"errors":["price is required","pizza_id is required","restaurant_id is required"]}`,
		},
		{
			name:           "malformed json",
			body:           `{"price": `,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"errors":["Invalid JSON data"]}`,
		},
		{
			name:           "price of the wrong type",
			body:           `{"price": "cheap", "pizza_id": 1, "restaurant_id": 3}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"errors":["price must be an integer"]}`,
		},
		{
			name:           "negative reference",
			body:           `{"price": 5, "pizza_id": -1, "restaurant_id": 3}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"errors":["pizza_id must be a positive integer"]}`,
		},
		{
			name:           "missing parents",
			body:           `{"price": 5, "pizza_id": 98, "restaurant_id": 99}`,
			createErr:      &services.ReferenceError{Missing: []string{"Pizza not found", "Restaurant not found"}},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"errors":["Pizza not found","Restaurant not found"]}`,
		},
		{
			name:           "constraint violation",
			body:           `{"price": 5, "pizza_id": 1, "restaurant_id": 3}`,
			createErr:      fmt.Errorf("%w: FOREIGN KEY constraint failed", services.ErrIntegrity),
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"errors":["Could not save restaurant pizza"]}`,
		},
		{
			name:           "unexpected failure",
			body:           `{"price": 5, "pizza_id": 1, "restaurant_id": 3}`,
			createErr:      errors.New("connection refused"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"errors":["Internal server error"]}`,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			controller := NewRestaurantPizzaController(&stubRestaurantPizzaService{createErr: tt.createErr})
			router := gin.New()
			router.POST("/restaurant_pizzas", controller.CreateRestaurantPizza)

			w := perform(router, http.MethodPost, "/restaurant_pizzas", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestRestaurantPizzaLookups(t *testing.T) {
	controller := NewRestaurantPizzaController(&stubRestaurantPizzaService{})
	router := gin.New()
	router.GET("/restaurant_pizzas/:id", controller.GetRestaurantPizzaByID)
	router.DELETE("/restaurant_pizzas/:id", controller.DeleteRestaurantPizza)

	w := perform(router, http.MethodGet, "/restaurant_pizzas/7", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"RestaurantPizza not found"}`, w.Body.String())

	w = perform(router, http.MethodDelete, "/restaurant_pizzas/7", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = perform(router, http.MethodGet, "/restaurant_pizzas/x", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid restaurant pizza ID format"}`, w.Body.String())
}
