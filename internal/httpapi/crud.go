package httpapi

import (
	"errors"
	"net/http"

	"fabrika-platform/internal/customers"
	"fabrika-platform/internal/httperr"
	"fabrika-platform/internal/suppliers"
	"fabrika-platform/internal/users"
	"fabrika-platform/internal/validate"

	"github.com/gin-gonic/gin"
)

/* ===================== CUSTOMERS ===================== */

func (h Handlers) ListCustomers(c *gin.Context) {
	id, ok := callerIdentity(c)
	if !ok {
		return
	}
	out, err := h.Customers.List(c.Request.Context(), id.CompanyID)
	if err != nil {
		h.customerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "customers": out})
}

func (h Handlers) GetCustomer(c *gin.Context) {
	id, ok := callerIdentity(c)
	if !ok {
		return
	}
	out, err := h.Customers.Get(c.Request.Context(), id.CompanyID, c.Param("id"))
	if err != nil {
		h.customerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "customer": out})
}

func (h Handlers) CreateCustomer(c *gin.Context) {
	id, ok := callerIdentity(c)
	if !ok {
		return
	}
	req := validate.Bound[customerRequest](c)
	out, err := h.Customers.Create(c.Request.Context(), id.CompanyID, customers.CreateRequest{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		h.customerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "customer": out})
}

func (h Handlers) UpdateCustomer(c *gin.Context) {
	id, ok := callerIdentity(c)
	if !ok {
		return
	}
	req := validate.Bound[customerRequest](c)
	out, err := h.Customers.Update(c.Request.Context(), id.CompanyID, c.Param("id"), customers.UpdateRequest{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		h.customerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "customer": out})
}

func (h Handlers) DeleteCustomer(c *gin.Context) {
	id, ok := callerIdentity(c)
	if !ok {
		return
	}
	if err := h.Customers.Delete(c.Request.Context(), id.CompanyID, c.Param("id")); err != nil {
		h.customerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "customer deleted"})
}

func (h Handlers) customerErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, customers.ErrNotFound):
		httperr.Abort(c, httperr.NotFound("customer not found"))
	case errors.Is(err, customers.ErrConflict):
		httperr.Abort(c, httperr.Conflict("a customer with this email already exists"))
	case errors.Is(err, customers.ErrInvalidArgument):
		httperr.Abort(c, httperr.Validation([]string{"customer fields are invalid"}))
	default:
		_ = c.Error(err)
	}
}

/* ===================== SUPPLIERS ===================== */

func (h Handlers) ListSuppliers(c *gin.Context) {
	id, ok := callerIdentity(c)
	if !ok {
		return
	}
	out, err := h.Suppliers.List(c.Request.Context(), id.CompanyID)
	if err != nil {
		h.supplierErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "suppliers": out})
}

func (h Handlers) GetSupplier(c *gin.Context) {
	id, ok := callerIdentity(c)
	if !ok {
		return
	}
	out, err := h.Suppliers.Get(c.Request.Context(), id.CompanyID, c.Param("id"))
	if err != nil {
		h.supplierErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "supplier": out})
}

func (h Handlers) CreateSupplier(c *gin.Context) {
	id, ok := callerIdentity(c)
	if !ok {
		return
	}
	req := validate.Bound[supplierRequest](c)
	out, err := h.Suppliers.Create(c.Request.Context(), id.CompanyID, suppliers.UpsertRequest{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		h.supplierErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "supplier": out})
}

func (h Handlers) UpdateSupplier(c *gin.Context) {
	id, ok := callerIdentity(c)
	if !ok {
		return
	}
	req := validate.Bound[supplierRequest](c)
	out, err := h.Suppliers.Update(c.Request.Context(), id.CompanyID, c.Param("id"), suppliers.UpsertRequest{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		h.supplierErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "supplier": out})
}

func (h Handlers) DeleteSupplier(c *gin.Context) {
	id, ok := callerIdentity(c)
	if !ok {
		return
	}
	if err := h.Suppliers.Delete(c.Request.Context(), id.CompanyID, c.Param("id")); err != nil {
		h.supplierErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "supplier deleted"})
}

func (h Handlers) supplierErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, suppliers.ErrNotFound):
		httperr.Abort(c, httperr.NotFound("supplier not found"))
	case errors.Is(err, suppliers.ErrConflict):
		httperr.Abort(c, httperr.Conflict("a supplier with this email already exists"))
	case errors.Is(err, suppliers.ErrInvalidArgument):
		httperr.Abort(c, httperr.Validation([]string{"supplier fields are invalid"}))
	default:
		_ = c.Error(err)
	}
}

/* ===================== USERS ===================== */

func (h Handlers) ListUsers(c *gin.Context) {
	id, ok := callerIdentity(c)
	if !ok {
		return
	}
	out, err := h.Users.List(c.Request.Context(), id)
	if err != nil {
		h.userErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "users": out})
}

func (h Handlers) CreateUser(c *gin.Context) {
	id, ok := callerIdentity(c)
	if !ok {
		return
	}
	req := validate.Bound[createUserRequest](c)
	out, err := h.Users.Create(c.Request.Context(), id, users.NewUser{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		h.userErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "user": out})
}

func (h Handlers) DeleteUser(c *gin.Context) {
	id, ok := callerIdentity(c)
	if !ok {
		return
	}
	if err := h.Users.Delete(c.Request.Context(), id, c.Param("id")); err != nil {
		h.userErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "user deleted"})
}

func (h Handlers) userErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, users.ErrNotFound):
		httperr.Abort(c, httperr.NotFound("user not found"))
	case errors.Is(err, users.ErrConflict):
		httperr.Abort(c, httperr.Conflict("a user with this email already exists"))
	case errors.Is(err, users.ErrNotAllowed):
		httperr.Abort(c, httperr.Forbidden("your role may not administer that role"))
	case errors.Is(err, users.ErrInvalidArgument):
		httperr.Abort(c, httperr.Validation([]string{"user fields are invalid"}))
	default:
		_ = c.Error(err)
	}
}
