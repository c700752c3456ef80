// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"openspace/internal/delivery/http/middleware"
	"openspace/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	AccountHandler   *handler.AccountHandler
	CompanyHandler   *handler.CompanyHandler
	JobHandler       *handler.JobHandler
	RecruiterHandler *handler.RecruiterHandler
	TagHandler       *handler.TagHandler
	RatingHandler    *handler.RatingHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	accountHandler   *handler.AccountHandler
	companyHandler   *handler.CompanyHandler
	jobHandler       *handler.JobHandler
	recruiterHandler *handler.RecruiterHandler
	tagHandler       *handler.TagHandler
	ratingHandler    *handler.RatingHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		accountHandler:   params.AccountHandler,
		companyHandler:   params.CompanyHandler,
		jobHandler:       params.JobHandler,
		recruiterHandler: params.RecruiterHandler,
		tagHandler:       params.TagHandler,
		ratingHandler:    params.RatingHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Reads on companies, jobs, tags and ratings are public; everything that
// acts on behalf of an account passes through the auth middleware.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register/applicant", r.authHandler.RegisterApplicant)
		authGroup.POST("/register/company", r.authHandler.RegisterCompany)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Account routes all require authentication; per-account authorization
	// lives in the usecases.
	accountGroup := e.Group("/accounts")
	accountGroup.Use(r.authMiddleware.Authenticate)
	{
		accountGroup.GET("/me", r.accountHandler.Me)
		accountGroup.GET("/me/applications", r.jobHandler.ListOwnApplications)
		accountGroup.GET("/me/companies", r.recruiterHandler.ListOwnCompanies)
		accountGroup.GET("", r.accountHandler.List)
		accountGroup.GET("/:id", r.accountHandler.Get)
		accountGroup.PUT("/:id/profile", r.accountHandler.UpdateProfile)
		accountGroup.POST("/:id/image", r.accountHandler.UploadProfileImage)
		accountGroup.DELETE("/:id", r.accountHandler.Delete)
	}

	// Company routes: public reads, protected writes.
	companyGroup := e.Group("/companies")
	{
		companyGroup.GET("", r.companyHandler.List)
		companyGroup.GET("/:id", r.companyHandler.Get)
		companyGroup.GET("/:id/ratings", r.ratingHandler.ListByCompany)
		companyGroup.GET("/:id/ratings/summary", r.ratingHandler.Summary)
	}
	companyWriteGroup := e.Group("/companies")
	companyWriteGroup.Use(r.authMiddleware.Authenticate)
	{
		companyWriteGroup.PUT("/:id", r.companyHandler.Update)
		companyWriteGroup.POST("/:id/image", r.companyHandler.UploadImage)
		companyWriteGroup.DELETE("/:id", r.companyHandler.Delete)

		companyWriteGroup.GET("/:id/recruiters", r.recruiterHandler.ListByCompany)
		companyWriteGroup.POST("/:id/recruiters", r.recruiterHandler.Assign)
		companyWriteGroup.DELETE("/:id/recruiters/:accountID", r.recruiterHandler.Remove)

		companyWriteGroup.POST("/:id/ratings", r.ratingHandler.Rate)
		companyWriteGroup.DELETE("/:id/ratings/:accountID", r.ratingHandler.Delete)
	}

	// Job routes: public reads, protected writes and applications.
	jobGroup := e.Group("/jobs")
	{
		jobGroup.GET("", r.jobHandler.List)
		jobGroup.GET("/:id", r.jobHandler.Get)
	}
	jobWriteGroup := e.Group("/jobs")
	jobWriteGroup.Use(r.authMiddleware.Authenticate)
	{
		jobWriteGroup.POST("", r.jobHandler.Create)
		jobWriteGroup.PUT("/:id", r.jobHandler.Update)
		jobWriteGroup.POST("/:id/image", r.jobHandler.UploadImage)
		jobWriteGroup.DELETE("/:id", r.jobHandler.Delete)
		jobWriteGroup.POST("/:id/applications", r.jobHandler.Apply)
		jobWriteGroup.GET("/:id/applications", r.jobHandler.ListApplications)
	}

	// Tag routes: public reads, platform-admin or entity-scoped writes.
	tagGroup := e.Group("/tags")
	{
		tagGroup.GET("", r.tagHandler.List)
		tagGroup.GET("/:id/entities/:entityType", r.tagHandler.ListEntityIDs)
	}
	tagWriteGroup := e.Group("/tags")
	tagWriteGroup.Use(r.authMiddleware.Authenticate)
	{
		tagWriteGroup.POST("", r.tagHandler.Create)
		tagWriteGroup.DELETE("/:id", r.tagHandler.Delete)
		tagWriteGroup.POST("/:id/attach", r.tagHandler.Attach)
		tagWriteGroup.POST("/:id/detach", r.tagHandler.Detach)
	}

	// Tags attached to a given entity.
	e.GET("/entities/:entityType/:entityID/tags", r.tagHandler.ListByEntity)
}
