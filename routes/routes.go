package routes

import (
	"net/http"

	"vitrin/admin"
	"vitrin/auth"
	"vitrin/cart"
	"vitrin/middleware"
	"vitrin/products"
	"vitrin/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/variantpic/*filepath", http.Dir("static/variantpic"))
}

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/register", auth.Register)
	router.POST("/api/auth/login", auth.Login)
}

func AddProductRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter, api *products.API) {
	router.GET("/api/products", rateLimiter.Limit(api.GetProducts))
	router.GET("/api/products/:id", rateLimiter.Limit(api.GetProduct))
	router.GET("/api/products/:id/variant-images", rateLimiter.Limit(api.GetVariantImages))
	router.GET("/api/products/:id/qr", rateLimiter.Limit(api.GetProductQR))

	// the admin client historically used both verbs for image deletion
	router.POST("/api/variant-images/delete", middleware.RequireRole("admin", api.DeleteVariantImage))
	router.DELETE("/api/variant-images", middleware.RequireRole("admin", api.DeleteVariantImage))
	router.POST("/api/products/:id/variant-images", middleware.RequireRole("admin", api.UploadVariantImage))
}

func AddCartRoutes(router *httprouter.Router, api *cart.API) {
	router.GET("/api/cart", middleware.OptionalAuth(api.GetCart))
	router.POST("/api/cart", middleware.OptionalAuth(api.AddToCart))
	router.PATCH("/api/cart", middleware.OptionalAuth(api.UpdateCartItem))
	router.DELETE("/api/cart", middleware.OptionalAuth(api.RemoveFromCart))
	router.POST("/api/cart/merge", middleware.Authenticate(api.MergeGuestCart))
}

func AddAdminRoutes(router *httprouter.Router, api *admin.API) {
	router.POST("/api/products", middleware.RequireRole("admin", api.CreateProduct))
	router.PUT("/api/products/:id", middleware.RequireRole("admin", api.UpdateProduct))
	router.DELETE("/api/products/:id", middleware.RequireRole("admin", api.DeleteProduct))
	router.GET("/api/admin/catalog/pdf", middleware.RequireRole("admin", admin.ExportCatalogPDF))
	router.GET("/ws/admin/stock", middleware.Authenticate(admin.WatchStock))
}
