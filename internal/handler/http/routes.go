// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Method("GET", "/metrics", promhttp.Handler())
	router.Get("/api/version/", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.withSession)

		r.Get("/login", h.loginPage)
		r.Post("/login", h.login)
		r.Get("/logout", h.logout)

		// pages and form actions of signed-in users
		r.Group(func(r chi.Router) {
			r.Use(requireUser)

			r.Get("/", h.home)

			r.Get("/ingredients", h.ingredientsPage)
			r.Post("/ingredients/add-manual", h.addManualIngredient)
			r.Post("/ingredients/search", h.searchIngredients)
			r.Post("/ingredients/add-from-search", h.addIngredientFromSearch)
			r.Post("/ingredients/toggle-availability", h.toggleIngredientAvailability)
			r.Post("/ingredients/update-quantity", h.updateIngredientQuantity)
			r.Post("/ingredients/remove", h.removeIngredient)
			r.Get("/ingredients/products/{productID}", h.getProductDetails)

			r.Get("/recipes", h.recipesPage)
			r.Post("/recipes/rate", h.rateRecipe)
			r.Post("/recipes/delete", h.deleteRecipe)

			r.Get("/recipes/generate", h.generatePage)
			r.Post("/recipes/generate", h.generateRecipes)
			r.Post("/recipes/generate/save", h.saveGeneratedRecipe)
		})
	})

	router.MethodNotAllowed(hideMethodNotAllowed)

	return router
}
