package main

import (
	"fabrika-platform/internal/audit"
	"fabrika-platform/internal/httpapi"
	"fabrika-platform/internal/rbac"

	"github.com/gin-gonic/gin"
)

// registerRoutes wires HTTP routes to handlers.
// Keep this file free of business logic. Handlers should delegate to
// internal modules.
//
// Per-group wrapper order is the request policy: audit logging, then session
// verification, then the role allow-list, then body validation. The request
// logger, panic recovery, and error translation are installed globally in
// main and wrap all of these, so an auth failure short-circuits before
// validation and the business handler ever run.
func registerRoutes(r *gin.Engine, h httpapi.Handlers, session gin.HandlerFunc, auditSvc *audit.Service) {
	// public
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1")

	// SESSION routes. Logout and refresh stay public: both operate on the
	// refresh cookie directly and must work for expired sessions.
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/login", h.BindLogin(), h.Login)
		authGroup.POST("/logout", h.Logout)
		authGroup.POST("/refresh", h.Refresh)
	}

	v1.GET("/me", session, h.Me)

	// CUSTOMER routes. Every role may read; writes need branch_admin or
	// admin (superadmin bypasses all allow-lists).
	read := rbac.RequireAnyRole(rbac.RoleUser, rbac.RoleBranchAdmin, rbac.RoleAdmin)
	write := rbac.RequireAnyRole(rbac.RoleBranchAdmin, rbac.RoleAdmin)

	cust := v1.Group("/customers")
	cust.Use(audit.Middleware(auditSvc, "customer"), session)
	{
		cust.GET("", read, h.ListCustomers)
		cust.GET("/:id", read, h.GetCustomer)
		cust.POST("", write, h.BindCustomer(), h.CreateCustomer)
		cust.PUT("/:id", write, h.BindCustomer(), h.UpdateCustomer)
		cust.DELETE("/:id", write, h.DeleteCustomer)
	}

	// SUPPLIER routes.
	sup := v1.Group("/suppliers")
	sup.Use(audit.Middleware(auditSvc, "supplier"), session)
	{
		sup.GET("", read, h.ListSuppliers)
		sup.GET("/:id", read, h.GetSupplier)
		sup.POST("", write, h.BindSupplier(), h.CreateSupplier)
		sup.PUT("/:id", write, h.BindSupplier(), h.UpdateSupplier)
		sup.DELETE("/:id", write, h.DeleteSupplier)
	}

	// USER administration. The allow-list gates entry; the rbac matrix
	// inside the service decides which roles the actor may hand out.
	usr := v1.Group("/users")
	usr.Use(audit.Middleware(auditSvc, "user"), session,
		rbac.RequireAnyRole(rbac.RoleBranchAdmin, rbac.RoleAdmin))
	{
		usr.GET("", h.ListUsers)
		usr.POST("", h.BindCreateUser(), h.CreateUser)
		usr.DELETE("/:id", h.DeleteUser)
	}
}
