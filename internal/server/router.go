package server

import (
	"context"
	"net/http"
	"time"

	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/config"
	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/controllers"
	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/middleware"
	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/services"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"
)

// NewRouter builds the gin engine with every route of the API.
// The database handle is shared by all services.
func NewRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.TracingEnabled {
		router.Use(otelgin.Middleware(cfg.ServiceName))
	}

	restaurantController := controllers.NewRestaurantController(services.NewRestaurantService(db))
	pizzaController := controllers.NewPizzaController(services.NewPizzaService(db))
	restaurantPizzaController := controllers.NewRestaurantPizzaController(services.NewRestaurantPizzaService(db))

	router.GET("/", indexHandler)
	router.GET("/health", healthCheckHandler(db, cfg.ServiceName))

	router.GET("/restaurants", restaurantController.GetAllRestaurants)
	router.GET("/restaurants/:id", restaurantController.GetRestaurantByID)
	router.DELETE("/restaurants/:id", restaurantController.DeleteRestaurant)

	router.GET("/pizzas", pizzaController.GetAllPizzas)
	router.GET("/pizzas/:id", pizzaController.GetPizzaByID)
	router.DELETE("/pizzas/:id", pizzaController.DeletePizza)

	router.POST("/restaurant_pizzas", restaurantPizzaController.CreateRestaurantPizza)
	router.GET("/restaurant_pizzas/:id", restaurantPizzaController.GetRestaurantPizzaByID)
	router.DELETE("/restaurant_pizzas/:id", restaurantPizzaController.DeleteRestaurantPizza)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

func indexHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<h1>Pizza Restaurants API</h1>"))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service and its database are reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(db *gorm.DB, service string) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, code := "healthy", http.StatusOK
		if err := pingDatabase(c.Request.Context(), db); err != nil {
			status, code = "unhealthy", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"service":   service,
		})
	}
}

func pingDatabase(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}
