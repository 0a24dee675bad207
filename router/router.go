package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-ordering/config"
	"github.com/yeremiapane/restaurant-ordering/controllers"
	"github.com/yeremiapane/restaurant-ordering/middlewares"
	"github.com/yeremiapane/restaurant-ordering/services"
	"github.com/yeremiapane/restaurant-ordering/utils"
)

func SetupRouter(db *gorm.DB, cfg config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := services.RegisterValidations(v); err != nil {
			utils.ErrorLogger.Printf("Error registering validations: %v", err)
		}
	}

	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.CORSOrigin))
	r.Use(middlewares.NewRateLimiter(cfg.RateLimitRPS, time.Second/time.Duration(cfg.RateLimitRPS)).RateLimit())

	// Only image files are served from the upload directory.
	r.Use(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, controllers.UploadsURL+"/") && !controllers.AllowedImage(c.Request.URL.Path) {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	})
	r.Static(controllers.UploadsURL, cfg.UploadDir)

	notes := services.NewNotificationService(db)
	catalog := services.NewCatalogService(db)
	cart := services.NewCartService(db, notes)
	orders := services.NewOrderService(db, notes)
	reports := services.NewReportService(db, cfg.DashboardItemIDs)

	userCtrl := controllers.NewUserController(db)
	itemCtrl := controllers.NewItemController(catalog, cfg.UploadDir)
	cartCtrl := controllers.NewCartController(cart)
	orderCtrl := controllers.NewOrderController(orders)
	adminCtrl := controllers.NewAdminController(reports)
	notificationCtrl := controllers.NewNotificationController(notes)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	strict := middlewares.NewStrictRateLimiter()
	public := r.Group("/")
	public.Use(strict.RateLimit())
	{
		public.POST("/register", userCtrl.Register)
		public.POST(middlewares.LoginPath, userCtrl.Login)
	}

	r.GET("/", itemCtrl.GetAllItems)
	r.GET("/item/:key", itemCtrl.GetItemBySlug)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.RequireAuth())
	{
		auth.POST("/logout", userCtrl.Logout)
		auth.GET("/profile", userCtrl.GetProfile)
		auth.GET("/notifications", notificationCtrl.GetMyNotifications)

		// Items (owner checks happen in the catalog service)
		auth.GET("/item/add", itemCtrl.CreateForm)
		auth.POST("/item/add", itemCtrl.CreateItem)
		auth.GET("/item/:key/edit", itemCtrl.EditForm)
		auth.POST("/item/:key/edit", itemCtrl.UpdateItem)
		auth.POST("/item/:key/delete", itemCtrl.DeleteItem)

		// Cart
		auth.GET("/cart/add/:slug", cartCtrl.AddToCart)
		auth.POST("/cart/add/:slug", cartCtrl.AddToCart)
		auth.GET(controllers.CartPath, cartCtrl.GetCart)
		auth.POST("/cart/:id/delete", cartCtrl.DeleteCartItem)

		// Orders
		auth.POST("/order", orderCtrl.PlaceOrder)
		auth.GET(controllers.OrderDetailsPath, orderCtrl.GetOrderDetails)
	}

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := r.Group("/")
	admin.Use(middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.GET("/admin/view", adminCtrl.GetDeliveredOrders)
		admin.GET("/admin/items", itemCtrl.GetMyItems)
		admin.GET(controllers.ItemListPath, itemCtrl.GetMyItems)
		admin.GET("/admin/pending", adminCtrl.GetPendingOrders)
		admin.GET("/admin/dashboard", adminCtrl.GetDashboardStats)
		admin.PATCH("/admin/orders/:id/deliver", orderCtrl.MarkDelivered)
	}

	return r
}
