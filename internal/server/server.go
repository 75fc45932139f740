package server

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/novayra/storefront/internal/activity"
	activitydomain "github.com/novayra/storefront/internal/activity/domain"
	"github.com/novayra/storefront/internal/adminauth"
	adminauthdomain "github.com/novayra/storefront/internal/adminauth/domain"
	"github.com/novayra/storefront/internal/auth"
	authdomain "github.com/novayra/storefront/internal/auth/domain"
	"github.com/novayra/storefront/internal/cart"
	cartdomain "github.com/novayra/storefront/internal/cart/domain"
	"github.com/novayra/storefront/internal/config"
	"github.com/novayra/storefront/internal/contact"
	contactdomain "github.com/novayra/storefront/internal/contact/domain"
	"github.com/novayra/storefront/internal/dashboard"
	dashboarddomain "github.com/novayra/storefront/internal/dashboard/domain"
	"github.com/novayra/storefront/internal/observability"
	"github.com/novayra/storefront/internal/order"
	orderdomain "github.com/novayra/storefront/internal/order/domain"
	"github.com/novayra/storefront/internal/product"
	productdomain "github.com/novayra/storefront/internal/product/domain"
	"github.com/novayra/storefront/internal/providers"
	"github.com/novayra/storefront/internal/providers/pdf"
	"github.com/novayra/storefront/internal/ratelimit"
	"github.com/novayra/storefront/internal/sample"
	sampledomain "github.com/novayra/storefront/internal/sample/domain"
	"github.com/novayra/storefront/internal/settings"
	settingsdomain "github.com/novayra/storefront/internal/settings/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	observability.Module,
	fx.Provide(NewEngine),
	auth.Module,
	adminauth.Module,
	activity.Module,
	product.Module,
	cart.Module,
	order.Module,
	sample.Module,
	contact.Module,
	settings.Module,
	dashboard.Module,
	providers.Module,
	ratelimit.Module,
	fx.Provide(NewServer),
	fx.Invoke(registerRoutes),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, httpMetrics *observability.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestLogger(log))
	r.Use(observability.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine       *gin.Engine
	cfg          config.Config
	log          *zap.Logger
	store        *config.StoreConfigHolder
	authSvc      authdomain.Service
	adminAuthSvc adminauthdomain.Service
	activitySvc  activitydomain.Service
	productSvc   productdomain.Service
	cartSvc      cartdomain.Service
	orderSvc     orderdomain.Service
	sampleSvc    sampledomain.Service
	contactSvc   contactdomain.Service
	settingsSvc  settingsdomain.Service
	dashboardSvc dashboarddomain.Service
	pdfProvider  pdf.Provider
	limiter      *ratelimit.APILimiter
}

type ServerParams struct {
	fx.In

	Gin          *gin.Engine
	Cfg          config.Config
	Log          *zap.Logger
	Store        *config.StoreConfigHolder
	AuthSvc      authdomain.Service
	AdminAuthSvc adminauthdomain.Service
	ActivitySvc  activitydomain.Service
	ProductSvc   productdomain.Service
	CartSvc      cartdomain.Service
	OrderSvc     orderdomain.Service
	SampleSvc    sampledomain.Service
	ContactSvc   contactdomain.Service
	SettingsSvc  settingsdomain.Service
	DashboardSvc dashboarddomain.Service
	PDFProvider  pdf.Provider
	Limiter      *ratelimit.APILimiter `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	return &Server{
		engine:       p.Gin,
		cfg:          p.Cfg,
		log:          p.Log.Named("http.server"),
		store:        p.Store,
		authSvc:      p.AuthSvc,
		adminAuthSvc: p.AdminAuthSvc,
		activitySvc:  p.ActivitySvc,
		productSvc:   p.ProductSvc,
		cartSvc:      p.CartSvc,
		orderSvc:     p.OrderSvc,
		sampleSvc:    p.SampleSvc,
		contactSvc:   p.ContactSvc,
		settingsSvc:  p.SettingsSvc,
		dashboardSvc: p.DashboardSvc,
		pdfProvider:  p.PDFProvider,
		limiter:      p.Limiter,
	}
}

func registerRoutes(s *Server) {
	s.RegisterAPIRoutes()
	s.RegisterAdminRoutes()
	s.RegisterFallback()
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) RegisterAPIRoutes() {
	api := s.engine.Group("/api", s.RateLimit())

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "status": "ok"})
	})

	// -------- Auth --------
	api.POST("/auth/register", s.Register)
	api.POST("/auth/login", s.Login)
	api.GET("/auth/profile", s.AuthRequired(), s.GetProfile)
	api.PUT("/auth/profile", s.AuthRequired(), s.UpdateProfile)

	// -------- Profile --------
	profile := api.Group("/profile", s.AuthRequired())
	{
		profile.GET("", s.GetProfile)
		profile.PUT("", s.UpdateProfile)
		profile.POST("/checkout-data", s.SaveCheckoutData)
	}

	// -------- Catalog --------
	api.GET("/products", s.ListProducts)
	api.GET("/products/:id", s.GetProduct)
	api.GET("/products/category/:category", s.ListProductsByCategory)

	// -------- Cart --------
	cartGroup := api.Group("/cart", s.AuthRequired())
	{
		cartGroup.GET("", s.GetCart)
		cartGroup.GET("/summary", s.CartSummary)
		cartGroup.POST("/add", s.AddToCart)
		cartGroup.PUT("/update/:itemId", s.UpdateCartItem)
		cartGroup.DELETE("/remove/:itemId", s.RemoveCartItem)
		cartGroup.DELETE("/clear", s.ClearCart)
	}

	// -------- Orders --------
	orders := api.Group("/orders", s.AuthRequired())
	{
		orders.POST("/place", s.PlaceOrder)
		orders.GET("/my-orders", s.ListMyOrders)
		orders.GET("/:id", s.GetOrder)
	}

	// -------- Samples --------
	api.POST("/samples/request", s.OptionalAuth(), s.RequestSample)
	api.GET("/samples/my-requests", s.AuthRequired(), s.ListMySampleRequests)

	// -------- Contact --------
	api.POST("/contact/submit", s.SubmitContact)
	api.POST("/contact", s.SubmitContact)
}

func (s *Server) RegisterAdminRoutes() {
	admin := s.engine.Group("/api/admin", s.RateLimit())

	admin.POST("/login", s.AdminLogin)

	authed := admin.Group("", s.AdminAuthRequired())
	{
		authed.POST("/logout", s.AdminLogout)
		authed.GET("/verify", s.AdminVerify)
		authed.GET("/profile", s.AdminProfile)

		// -------- Dashboard --------
		authed.GET("/dashboard/stats", s.DashboardStats)
		authed.GET("/dashboard/activity", s.DashboardActivity)
		authed.GET("/dashboard/recent-orders", s.DashboardRecentOrders)
		authed.GET("/dashboard/low-stock", s.DashboardLowStock)

		// -------- Products --------
		authed.GET("/products", s.AdminListProducts)
		authed.POST("/products", s.AdminCreateProduct)
		authed.GET("/products/stats", s.AdminProductStats)
		authed.GET("/products/:id", s.AdminGetProduct)
		authed.PUT("/products/:id", s.AdminUpdateProduct)
		authed.DELETE("/products/:id", s.AdminDeactivateProduct)
		authed.POST("/products/:id/images", s.AdminAddProductImages)

		// -------- Orders --------
		authed.GET("/orders", s.AdminListOrders)
		authed.GET("/orders/stats", s.AdminOrderStats)
		authed.GET("/orders/:id", s.AdminGetOrder)
		authed.GET("/orders/:id/receipt", s.AdminOrderReceipt)
		authed.PUT("/orders/:id/status", s.AdminUpdateOrderStatus)
		authed.PUT("/orders/:id/payment", s.AdminUpdateOrderPayment)
		authed.PUT("/orders/:id/notes", s.AdminUpdateOrderNotes)

		// -------- Samples --------
		authed.GET("/samples", s.AdminListSamples)
		authed.GET("/samples/stats", s.AdminSampleStats)
		authed.GET("/samples/:id", s.AdminGetSample)
		authed.PUT("/samples/:id/status", s.AdminUpdateSampleStatus)

		// -------- Contact --------
		authed.GET("/contact", s.AdminListContactMessages)
		authed.PUT("/contact/:id/status", s.AdminUpdateContactStatus)

		// -------- Settings --------
		authed.GET("/settings", s.AdminGetSettings)
		authed.PUT("/settings", s.AdminUpdateSettings)
		authed.POST("/settings/reset", s.AdminResetSettings)
		authed.POST("/settings/test-email", s.AdminTestEmail)

		// -------- Activity --------
		authed.GET("/activity", s.AdminListActivity)
	}
}

func (s *Server) RegisterFallback() {
	publicDir := s.cfg.PublicDir

	s.engine.Static("/uploads", s.cfg.UploadDir)

	s.engine.NoRoute(func(c *gin.Context) {
		// Unmatched API paths get the failure envelope, never index.html.
		if strings.HasPrefix(c.Request.URL.Path, "/api/") || c.Request.URL.Path == "/api" {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "API endpoint not found"})
			return
		}

		// static assets
		if fileExists(publicDir, c.Request.URL.Path) {
			c.File(filepath.Join(publicDir, filepath.Clean(c.Request.URL.Path)))
			return
		}

		// SPA fallback
		c.File(filepath.Join(publicDir, "index.html"))
	})
}

func fileExists(publicDir, reqPath string) bool {
	clean := filepath.Clean(reqPath)

	// prevent path traversal
	if clean == "." || clean == "/" || clean == ".." {
		return false
	}

	fullPath := filepath.Join(publicDir, clean)

	info, err := os.Stat(fullPath)
	if err != nil {
		return false
	}

	return !info.IsDir()
}
