package routes

import (
	"net/http"
	"path/filepath"

	"github.com/Youssef-M-Salama/E-Commerce-Website/auth"
	"github.com/Youssef-M-Salama/E-Commerce-Website/cache"
	feedbackcontroller "github.com/Youssef-M-Salama/E-Commerce-Website/controllers/feedback"
	"github.com/Youssef-M-Salama/E-Commerce-Website/controllers/web"
	"github.com/Youssef-M-Salama/E-Commerce-Website/filestore"
	"github.com/Youssef-M-Salama/E-Commerce-Website/middleware"
	"github.com/Youssef-M-Salama/E-Commerce-Website/services"
	"github.com/Youssef-M-Salama/E-Commerce-Website/views"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Options is everything the router needs from the process.
type Options struct {
	DB           *gorm.DB
	Cache        cache.Catalog
	Sessions     *auth.SessionStore
	WebRoot      string
	AllowOrigins []string
	Logger       *zap.Logger
}

// Handlers bundles the services the route groups hand to controllers.
type Handlers struct {
	Env       *web.Env
	Sessions  *auth.SessionStore
	Accounts  *services.AccountService
	Catalog   *services.CatalogService
	Carts     *services.CartService
	Feedback  *services.FeedbackService
	Dashboard *services.DashboardService
	Hub       *feedbackcontroller.Hub
}

// NewHandlers builds the services on top of opts.
func NewHandlers(opts Options) *Handlers {
	files := filestore.New(opts.WebRoot)
	hub := feedbackcontroller.NewHub(opts.Logger.Named("feedback"))

	return &Handlers{
		Env:       &web.Env{Sessions: opts.Sessions, Logger: opts.Logger},
		Sessions:  opts.Sessions,
		Accounts:  services.NewAccountService(opts.DB, files, opts.Logger),
		Catalog:   services.NewCatalogService(opts.DB, opts.Cache, files, opts.Logger),
		Carts:     services.NewCartService(opts.DB, opts.Logger),
		Feedback:  services.NewFeedbackService(opts.DB, hub, opts.Logger),
		Dashboard: services.NewDashboardService(opts.DB),
		Hub:       hub,
	}
}

// NewRouter is the single entry-point that wires middleware, static image
// folders and the Admin and Customer route groups. The returned hub must be
// closed on shutdown.
func NewRouter(opts Options) (*gin.Engine, *feedbackcontroller.Hub) {
	h := NewHandlers(opts)

	r := gin.New()
	r.Use(middleware.Recovery(opts.Logger), middleware.RequestLogger(opts.Logger))
	r.Use(cors.New(corsConfig(opts.AllowOrigins)))
	r.SetHTMLTemplate(views.MustTemplates())
	r.MaxMultipartMemory = 32 << 20

	for _, rule := range []filestore.Rule{filestore.AdminImages, filestore.CustomerImages, filestore.ProductImages} {
		r.Static("/"+rule.Folder, filepath.Join(opts.WebRoot, rule.Folder))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/Customer/Index")
	})

	SetupAdminRoutes(r, h)
	SetupCustomerRoutes(r, h)

	r.NoRoute(func(c *gin.Context) {
		h.Env.Render(c, http.StatusNotFound, "error.html", gin.H{
			"Title":   "Not found",
			"Message": "The page you requested does not exist.",
		})
	})

	return r, h.Hub
}

func corsConfig(origins []string) cors.Config {
	config := cors.DefaultConfig()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		config.AllowAllOrigins = true
		return config
	}
	config.AllowOrigins = origins
	config.AllowCredentials = true
	return config
}
