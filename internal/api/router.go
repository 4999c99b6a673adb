package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kena741/lolelink-admin/internal/api/handler"
	"github.com/kena741/lolelink-admin/internal/api/metrics"
	"github.com/kena741/lolelink-admin/internal/api/middleware"
	"github.com/kena741/lolelink-admin/internal/core/domain"
	"github.com/kena741/lolelink-admin/internal/core/service"
	"github.com/kena741/lolelink-admin/internal/infrastructure/config"
	mongodb "github.com/kena741/lolelink-admin/internal/infrastructure/db/mongo"
	redisdb "github.com/kena741/lolelink-admin/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("lolelink_http"))

	// --- Row stores, one per backend table ---
	categoryRows := mongodb.NewRowStore(db, "categories")
	subCategoryRows := mongodb.NewRowStore(db, "subcategories")
	serviceRows := mongodb.NewRowStore(db, "services")
	bookingRows := mongodb.NewRowStore(db, "bookings")
	providerRows := mongodb.NewRowStore(db, "providers")
	handymanRows := mongodb.NewRowStore(db, "handymen")
	documentRows := mongodb.NewRowStore(db, "documents")
	withdrawalRows := mongodb.NewRowStore(db, "withdrawals")
	couponRows := mongodb.NewRowStore(db, "coupons")
	taxRows := mongodb.NewRowStore(db, "taxes")
	bannerRows := mongodb.NewRowStore(db, "banners")
	settingRows := mongodb.NewRowStore(db, "payment_settings")

	obs := metrics.CollectionObserver

	// --- Services ---
	denylist := redisdb.NewTokenDenylist(rdb)
	authService := service.NewAuthService(mongodb.NewAuthRepository(db), denylist, cfg.JWTSecret, cfg.TokenTTL)
	catalogService := service.NewCatalogService(categoryRows, subCategoryRows, serviceRows, bookingRows, obs, log)
	bookingService := service.NewBookingService(bookingRows, obs, log)
	providerService := service.NewProviderService(providerRows, handymanRows, documentRows, withdrawalRows, bookingRows, obs, log)
	billingService := service.NewBillingService(couponRows, taxRows, obs, log)
	contentService := service.NewContentService(bannerRows, settingRows, obs, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	providerHandler := handler.NewProviderHandler(providerService)
	billingHandler := handler.NewBillingHandler(billingService)
	contentHandler := handler.NewContentHandler(contentService)

	// --- Public routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Authenticated console routes ---
	v1 := e.Group("/v1", middleware.Auth(cfg.JWTSecret, denylist))
	staff := middleware.RBAC(domain.RoleAdmin, domain.RoleStaff)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	v1.POST("/auth/logout", authHandler.Logout, staff)

	v1.GET("/categories", catalogHandler.ListCategories, staff)
	v1.POST("/categories", catalogHandler.CreateCategory, staff)
	v1.GET("/categories/:id", catalogHandler.GetCategory, staff)
	v1.PATCH("/categories/:id", catalogHandler.UpdateCategory, staff)
	v1.DELETE("/categories/:id", catalogHandler.DeleteCategory, adminOnly)

	v1.GET("/subcategories", catalogHandler.ListSubCategories, staff)
	v1.POST("/subcategories", catalogHandler.CreateSubCategory, staff)
	v1.POST("/subcategories/batch", catalogHandler.CreateSubCategoryBatch, staff)
	v1.PATCH("/subcategories/:id", catalogHandler.UpdateSubCategory, staff)
	v1.DELETE("/subcategories/:id", catalogHandler.DeleteSubCategory, adminOnly)

	v1.GET("/services", catalogHandler.ListServices, staff)
	v1.POST("/services", catalogHandler.CreateService, staff)
	v1.GET("/services/:id", catalogHandler.GetService, staff)
	v1.PATCH("/services/:id", catalogHandler.UpdateService, staff)
	v1.DELETE("/services/:id", catalogHandler.DeleteService, adminOnly)

	v1.GET("/bookings", bookingHandler.List, staff)
	v1.GET("/bookings/:id", bookingHandler.Get, staff)
	v1.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus, staff)

	v1.GET("/providers", providerHandler.ListProviders, staff)
	v1.GET("/providers/:id", providerHandler.GetProvider, staff)
	v1.PATCH("/providers/:id", providerHandler.UpdateProvider, staff)
	v1.DELETE("/providers/:id", providerHandler.DeleteProvider, adminOnly)
	v1.GET("/providers/:id/bookings", providerHandler.ListProviderBookings, staff)
	v1.GET("/providers/:id/handymen", providerHandler.ListProviderHandymen, staff)
	v1.GET("/providers/:id/documents", providerHandler.ListProviderDocuments, staff)

	v1.GET("/handymen", providerHandler.ListHandymen, staff)
	v1.POST("/handymen", providerHandler.CreateHandyman, staff)
	v1.PATCH("/handymen/:id", providerHandler.UpdateHandyman, staff)
	v1.DELETE("/handymen/:id", providerHandler.DeleteHandyman, adminOnly)

	v1.GET("/documents", providerHandler.ListDocuments, staff)
	v1.GET("/documents/grouped", providerHandler.ListDocumentsGrouped, staff)
	v1.PATCH("/documents/:id/status", providerHandler.UpdateDocumentStatus, staff)

	v1.GET("/withdrawals", providerHandler.ListWithdrawals, staff)
	v1.PATCH("/withdrawals/:id/status", providerHandler.UpdateWithdrawalStatus, adminOnly)

	v1.GET("/coupons", billingHandler.ListCoupons, staff)
	v1.POST("/coupons", billingHandler.CreateCoupon, staff)
	v1.PATCH("/coupons/:id", billingHandler.UpdateCoupon, staff)
	v1.DELETE("/coupons/:id", billingHandler.DeleteCoupon, adminOnly)

	v1.GET("/taxes", billingHandler.ListTaxes, staff)
	v1.POST("/taxes", billingHandler.CreateTax, staff)
	v1.PATCH("/taxes/:id", billingHandler.UpdateTax, staff)
	v1.DELETE("/taxes/:id", billingHandler.DeleteTax, adminOnly)

	v1.GET("/banners", contentHandler.ListBanners, staff)
	v1.POST("/banners", contentHandler.CreateBanner, staff)
	v1.PATCH("/banners/:id", contentHandler.UpdateBanner, staff)
	v1.DELETE("/banners/:id", contentHandler.DeleteBanner, adminOnly)

	v1.GET("/payment-settings", contentHandler.GetPaymentSetting, staff)
	v1.PUT("/payment-settings", contentHandler.SavePaymentSetting, adminOnly)

	return e
}
