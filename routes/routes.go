package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"trends-shop/config"
	"trends-shop/controllers"
	"trends-shop/middleware"
	"trends-shop/repositories"
	"trends-shop/services"
)

func SetupRoutes(router *gin.Engine) {
	userRepo := repositories.NewUserRepository()
	productRepo := repositories.NewProductRepository()
	orderRepo := repositories.NewOrderRepository()
	newsletterRepo := repositories.NewNewsletterRepository()

	mailer, err := services.NewEmailService()
	if err != nil {
		log.Println("Email disabled:", err)
	}

	uploader, err := services.NewCloudinaryService()
	if err != nil {
		log.Println("Cloudinary disabled:", err)
	}

	cfg := config.AppConfig
	checkout := services.NewStripeGateway(cfg.StripeKey, cfg.Currency)
	wallet := services.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpaySecret, cfg.Currency)

	cartSvc := services.NewCartService(userRepo)
	productSvc := services.NewProductService(productRepo, config.RedisClient, uploader)
	orderSvc := services.NewOrderService(orderRepo, userRepo, productRepo, checkout, wallet, mailer, cfg.DeliveryFee)
	chatSvc := services.NewChatbotService(productSvc)
	newsletterSvc := services.NewNewsletterService(newsletterRepo, mailer)

	userCtrl := controllers.NewUserController(userRepo)
	productCtrl := controllers.NewProductController(productSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	chatCtrl := controllers.NewChatController(chatSvc)
	newsletterCtrl := controllers.NewNewsletterController(newsletterSvc)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	api := router.Group("/api")

	user := api.Group("/user")
	{
		user.POST("/register", userCtrl.Register)
		user.POST("/login", userCtrl.Login)
		user.POST("/admin", userCtrl.AdminLogin)
	}

	product := api.Group("/product")
	{
		product.GET("/list", productCtrl.List)
		product.POST("/single", productCtrl.Single)
		product.POST("/add", middleware.AuthMiddleware(), middleware.AdminMiddleware(), productCtrl.Add)
		product.POST("/remove", middleware.AuthMiddleware(), middleware.AdminMiddleware(), productCtrl.Remove)
	}

	cart := api.Group("/cart")
	cart.Use(middleware.AuthMiddleware())
	{
		cart.POST("/get", cartCtrl.Get)
		cart.POST("/add", cartCtrl.Add)
		cart.POST("/update", cartCtrl.Update)
	}

	order := api.Group("/order")
	{
		order.POST("/place", middleware.AuthMiddleware(), orderCtrl.Place)
		order.POST("/stripe", middleware.AuthMiddleware(), orderCtrl.PlaceStripe)
		order.POST("/razorpay", middleware.AuthMiddleware(), orderCtrl.PlaceRazorpay)
		order.POST("/verifyStripe", middleware.AuthMiddleware(), orderCtrl.VerifyStripe)
		order.POST("/verifyRazorpay", middleware.AuthMiddleware(), orderCtrl.VerifyRazorpay)
		order.POST("/userorders", middleware.AuthMiddleware(), orderCtrl.UserOrders)

		order.POST("/list", middleware.AuthMiddleware(), middleware.AdminMiddleware(), orderCtrl.AllOrders)
		order.POST("/status", middleware.AuthMiddleware(), middleware.AdminMiddleware(), orderCtrl.UpdateStatus)
	}

	api.POST("/chat", chatCtrl.Chat)
	api.POST("/newsletter/subscribe", newsletterCtrl.Subscribe)
}
