package routes

import (
	"github.com/chidough14/laravel-react-ecomm/configs"
	"github.com/chidough14/laravel-react-ecomm/controllers"
	"github.com/chidough14/laravel-react-ecomm/middlewares"
	"github.com/chidough14/laravel-react-ecomm/repository"
	"github.com/chidough14/laravel-react-ecomm/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	variationRepo := repository.NewVariationRepository(db)
	cartRepo := repository.NewCartRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	productSvc := services.NewProductService(db, productRepo, userRepo)
	variationSvc := services.NewVariationService(db, variationRepo, productRepo)
	cartSvc := services.NewCartService(db, cartRepo, productRepo, variationRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	productCtrl := controllers.NewProductController(productSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	checkoutCtrl := controllers.NewCheckoutController(cartSvc)
	vendorCtrl := controllers.NewVendorController(productSvc)
	variationCtrl := controllers.NewVariationController(variationSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Website (public)
	r.GET("/products", productCtrl.List)
	r.GET("/products/:slug", productCtrl.Detail)

	// Cart + checkout — guest ใช้ได้ (cookie) user ที่ login ใช้ DB
	cart := r.Group("/cart", middlewares.OptionalAuth(cfg.JWTSecret))
	{
		cart.GET("", cartCtrl.Index)
		cart.GET("/count", cartCtrl.Count)
		cart.POST("/items", cartCtrl.Add)
		cart.PATCH("/items", cartCtrl.UpdateQty)
		cart.DELETE("/items", cartCtrl.Remove)
	}
	r.GET("/checkout", middlewares.OptionalAuth(cfg.JWTSecret), checkoutCtrl.Show)

	// เปิดร้าน (ต้อง login ก่อน role ไหนก็ได้)
	r.POST("/vendor/register", middlewares.AuthMiddleware(cfg.JWTSecret), vendorCtrl.Register)

	// Vendor (vendor/admin)
	vendor := r.Group("/vendor", middlewares.AuthMiddleware(cfg.JWTSecret, "vendor", "admin"))
	{
		vendor.GET("/products", vendorCtrl.Products)
		vendor.POST("/products", vendorCtrl.CreateProduct)
		vendor.PATCH("/products/:id", vendorCtrl.UpdateProduct)

		// variation types + options — ทุก mutation regenerate variations
		vendor.POST("/products/:id/variation-types", variationCtrl.CreateType)
		vendor.PATCH("/variation-types/:id", variationCtrl.UpdateType)
		vendor.DELETE("/variation-types/:id", variationCtrl.DeleteType)
		vendor.POST("/variation-types/:id/options", variationCtrl.CreateOption)
		vendor.PATCH("/options/:id", variationCtrl.UpdateOption)
		vendor.DELETE("/options/:id", variationCtrl.DeleteOption)

		// ราคา/จำนวนราย combination (merge กับ cartesian product)
		vendor.GET("/products/:id/variations", variationCtrl.Forms)
		vendor.PUT("/products/:id/variations", variationCtrl.Save)
	}
}
