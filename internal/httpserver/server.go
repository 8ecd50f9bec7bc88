package httpserver

import (
	"catalog/app"
	"catalog/app/category"
	"catalog/app/item"
	"catalog/infra/store"
	"catalog/internal/middleware"
	"catalog/pkg/events"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type Options struct {
	ServiceName        string
	RateLimitPerMinute int
}

type healthChecker interface {
	IsHealthy() bool
}

// New builds the catalog API on db. publisher may be nil, which disables events.
func New(db *sqlx.DB, publisher events.Publisher, opts Options) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		IdleTimeout:  5 * time.Second,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		Concurrency:  256 * 1024,
	})

	categories := app.NewCategoryUseCase(store.NewCategoryStore(db))
	items := app.NewItemUseCase(store.NewItemStore(db))

	fiberApp.Get("/healthz", func(c *fiber.Ctx) error {
		status := fiber.Map{"status": "ok", "database": store.PoolStats(db)}
		if checker, ok := publisher.(healthChecker); ok {
			status["events"] = checker.IsHealthy()
		}
		return c.JSON(status)
	})

	api := fiberApp.Group("/api/v1",
		middleware.NewTraceMiddleware(),
		middleware.NewRateLimitMiddleware(opts.RateLimitPerMinute),
	)

	api.Post("/categories", handle[category.CreateCategoryRequest, category.CreateCategoryResponse](
		category.NewCreateCategoryHandler(categories, publisher, opts.ServiceName)))
	api.Get("/categories", handle[category.GetCategoriesRequest, category.GetCategoriesResponse](
		category.NewGetCategoriesHandler(categories)))
	api.Get("/categories/:id", handle[category.GetCategoryRequest, category.GetCategoryResponse](
		category.NewGetCategoryHandler(categories)))
	api.Put("/categories/:id", handle[category.UpdateCategoryRequest, category.UpdateCategoryResponse](
		category.NewUpdateCategoryHandler(categories, publisher, opts.ServiceName)))

	api.Post("/items", handle[item.CreateItemRequest, item.CreateItemResponse](
		item.NewCreateItemHandler(items, publisher, opts.ServiceName)))
	api.Get("/items", handle[item.GetItemsRequest, item.GetItemsResponse](
		item.NewGetItemsHandler(items)))
	api.Get("/items/:id", handle[item.GetItemRequest, item.GetItemResponse](
		item.NewGetItemHandler(items)))
	api.Put("/items/:id", handle[item.UpdateItemRequest, item.UpdateItemResponse](
		item.NewUpdateItemHandler(items, publisher, opts.ServiceName)))
	api.Patch("/items/:id/name", handle[item.RenameItemRequest, item.RenameItemResponse](
		item.NewRenameItemHandler(items, publisher, opts.ServiceName)))
	api.Delete("/items/:id", handle[item.DeleteItemRequest, item.DeleteItemResponse](
		item.NewDeleteItemHandler(items, publisher, opts.ServiceName)))

	return fiberApp
}

// WaitForShutdown blocks until SIGINT or SIGTERM, then drains the server.
func WaitForShutdown(fiberApp *fiber.App) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	zap.L().Info("Shutting down server...")

	if err := fiberApp.ShutdownWithTimeout(5 * time.Second); err != nil {
		zap.L().Error("Error during server shutdown", zap.Error(err))
	}

	zap.L().Info("Server gracefully stopped")
}
