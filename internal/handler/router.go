// internal/handler/router.go
package handler

import (
	"github.com/agriformation/backoffice/internal/auth"
	"github.com/agriformation/backoffice/internal/middleware"
	"github.com/agriformation/backoffice/internal/model"
	"github.com/go-chi/chi/v5"
)

// Handlers groups every API handler mounted by Mount.
type Handlers struct {
	Auth        *AuthHandler
	Volunteer   *VolunteerHandler
	Admin       *AdminHandler
	Opportunity *OpportunityHandler
	Gallery     *GalleryHandler
}

// Mount registers the /api routes on r.
func Mount(r chi.Router, h Handlers, authn middleware.Authenticator) {
	authenticate := middleware.Authenticate(authn)
	staff := middleware.RequireRoles(auth.Staff...)
	superadmin := middleware.RequireRoles(model.RoleSuperadmin)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.AuditRequest)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.With(authenticate).Get("/me", h.Auth.Me)
			r.With(authenticate, superadmin).Post("/register-admin", h.Auth.RegisterAdmin)
		})

		r.Route("/volunteers", func(r chi.Router) {
			r.Post("/apply", h.Volunteer.Apply)
			r.Group(func(r chi.Router) {
				r.Use(authenticate, middleware.RequireRoles(model.RoleVolunteer))
				r.Get("/profile", h.Volunteer.GetProfile)
				r.Put("/profile", h.Volunteer.UpdateProfile)
			})
		})

		r.Route("/volunteer-calls", func(r chi.Router) {
			r.Get("/", h.Opportunity.ListPublic)
			r.Get("/{id}", h.Opportunity.GetPublic)
			r.With(middleware.OptionalAuth(authn)).Post("/{id}/apply", h.Opportunity.Apply)
		})

		r.Route("/galleries/public", func(r chi.Router) {
			r.Get("/", h.Gallery.ListPublic)
			r.Get("/featured", h.Gallery.Featured)
			r.Get("/categories", h.Gallery.Categories)
			r.Get("/category/{category}", h.Gallery.ListPublicByCategory)
			r.Get("/{id}", h.Gallery.GetPublic)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(authenticate)

			r.Group(func(r chi.Router) {
				r.Use(staff)

				r.Get("/applications", h.Admin.ListApplications)
				r.Put("/applications/{id}/review", h.Admin.ReviewApplication)

				r.Get("/volunteers", h.Admin.ListVolunteers)
				r.Get("/volunteers/{id}", h.Admin.GetVolunteer)
				r.Put("/volunteers/{id}/status", h.Admin.UpdateVolunteerStatus)
				r.Post("/volunteers/{id}/assign", h.Admin.AssignProgram)
				r.Post("/volunteers/{id}/hours", h.Admin.AddHours)

				r.Get("/dashboard/stats", h.Admin.DashboardStats)

				r.Route("/volunteer-calls", func(r chi.Router) {
					r.Get("/stats", h.Opportunity.Stats)
					r.Get("/", h.Opportunity.ListAdmin)
					r.Post("/", h.Opportunity.Create)
					r.Get("/{id}", h.Opportunity.Get)
					r.Put("/{id}", h.Opportunity.Update)
					r.Delete("/{id}", h.Opportunity.Delete)
					r.Put("/{id}/publish", h.Opportunity.TogglePublish)
					r.Put("/{id}/status", h.Opportunity.SetStatus)
					r.Put("/{id}/applications/{applicationId}", h.Opportunity.SetApplicationStatus)
				})

				r.Route("/galleries", func(r chi.Router) {
					r.Get("/stats", h.Gallery.Stats)
					r.Get("/", h.Gallery.ListAdmin)
					r.Post("/", h.Gallery.Create)
					r.Put("/{id}/photos/reorder", h.Gallery.ReorderPhotos)
					r.Post("/{id}/photos", h.Gallery.UploadPhotos)
					r.Put("/{id}/photos/{photoId}", h.Gallery.UpdateCaption)
					r.Delete("/{id}/photos/{photoId}", h.Gallery.DeletePhoto)
					r.Put("/{id}/cover", h.Gallery.SetCover)
					r.Put("/{id}/publish", h.Gallery.TogglePublish)
					r.Get("/{id}", h.Gallery.Get)
					r.Put("/{id}", h.Gallery.Update)
					r.Delete("/{id}", h.Gallery.Delete)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(superadmin)

				r.Get("/users", h.Admin.ListUsers)
				r.Post("/users/create-admin", h.Admin.CreateAdmin)
				r.Put("/users/{id}/role", h.Admin.UpdateUserRole)
				r.Put("/users/{id}/toggle-status", h.Admin.ToggleUserStatus)

				r.Get("/audit-logs", h.Admin.ListAuditLogs)
			})
		})
	})
}
