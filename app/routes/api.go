// Package routes wires the HTTP surface to controllers.
package routes

import (
	"net/http"

	"github.com/shashiranjanraj/rasoi/app/controllers"
	"github.com/shashiranjanraj/rasoi/app/repositories"
	"github.com/shashiranjanraj/rasoi/app/services"
	"github.com/shashiranjanraj/rasoi/internal/store"
	"github.com/shashiranjanraj/rasoi/pkg/metrics"
	"github.com/shashiranjanraj/rasoi/pkg/middleware"
	"github.com/shashiranjanraj/rasoi/pkg/router"
)

// RegisterAPI mounts every route on r, building the repository and service
// graph from the shared store handle.
func RegisterAPI(r *router.Router, s *store.Store) {
	users := repositories.NewUserRepository(s.Collection(store.ColUsers))
	menu := repositories.NewMenuRepository(s.Collection(store.ColMenu))
	reviews := repositories.NewReviewRepository(s.Collection(store.ColReviews))
	carts := repositories.NewCartRepository(s.Collection(store.ColCarts))
	payments := repositories.NewPaymentRepository(s.Collection(store.ColPayments))

	checkout := services.NewPaymentService(payments, carts)
	stats := services.NewStatsService(users, menu, payments)

	authController := controllers.NewAuthController()
	userController := controllers.NewUserController(users)
	menuController := controllers.NewMenuController(menu)
	reviewController := controllers.NewReviewController(reviews)
	cartController := controllers.NewCartController(carts)
	paymentController := controllers.NewPaymentController(payments, checkout)
	statsController := controllers.NewStatsController(stats)

	requireToken := router.Middleware(middleware.RequireToken)
	requireAdmin := router.Middleware(middleware.RequireAdmin(users.IsAdmin))

	r.Get("/", "home", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("Restaurant server is running")) //nolint:errcheck
	})
	r.Get("/metrics", "metrics", metrics.Handler())

	r.Post("/jwt", "auth.token", authController.IssueToken)

	// Users
	r.Get("/users", "users.list", userController.List, requireToken, requireAdmin)
	r.Get("/users/admin/{email}", "users.admin_flag", userController.AdminFlag, requireToken)
	r.Post("/users", "users.create", userController.Create)
	r.Delete("/users/{id}", "users.delete", userController.Delete, requireToken, requireAdmin)
	r.Patch("/users/admin/{id}", "users.promote", userController.Promote, requireToken, requireAdmin)

	// Menu
	r.Get("/menu", "menu.list", menuController.List)
	r.Get("/menu/{id}", "menu.show", menuController.Show)
	r.Post("/menu", "menu.create", menuController.Create, requireToken, requireAdmin)
	r.Patch("/menu/{id}", "menu.update", menuController.Update, requireToken, requireAdmin)
	r.Delete("/menu/{id}", "menu.delete", menuController.Delete, requireToken, requireAdmin)

	// Reviews
	r.Get("/reviews", "reviews.list", reviewController.List)

	// Carts
	r.Post("/carts", "carts.create", cartController.Create)
	r.Get("/carts", "carts.list", cartController.List)
	r.Delete("/carts/{id}", "carts.delete", cartController.Delete)

	// Payments
	r.Get("/payments/{email}", "payments.history", paymentController.History, requireToken)
	r.Post("/create-payment-intent", "payments.intent", paymentController.CreateIntent, requireToken)
	r.Post("/payments", "payments.record", paymentController.Record, requireToken)

	// Admin reporting
	r.Get("/admin-stats", "stats.admin", statsController.Admin, requireToken, requireAdmin)
	r.Get("/order-stats", "stats.orders", statsController.Orders, requireToken, requireAdmin)
}
