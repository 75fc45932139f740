package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	authdomain "github.com/novayra/storefront/internal/auth/domain"
)

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

func (s *Server) Register(c *gin.Context) {
	var req registerRequest
	if err := bindJSON(c, &req); err != nil {
		AbortWithError(c, err)
		return
	}

	result, err := s.authSvc.Register(c.Request.Context(), authdomain.RegisterRequest{
		Email:     strings.TrimSpace(req.Email),
		Password:  req.Password,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Phone:     strings.TrimSpace(req.Phone),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"token":   result.Token,
		"user":    result.User,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) Login(c *gin.Context) {
	var req loginRequest
	if err := bindJSON(c, &req); err != nil {
		AbortWithError(c, err)
		return
	}

	result, err := s.authSvc.Login(c.Request.Context(), authdomain.LoginRequest{
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   result.Token,
		"user":    result.User,
	})
}

func (s *Server) GetProfile(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	profile, err := s.authSvc.GetProfile(c.Request.Context(), user.ID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": profile})
}

type updateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
}

func (s *Server) UpdateProfile(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req updateProfileRequest
	if err := bindJSON(c, &req); err != nil {
		AbortWithError(c, err)
		return
	}

	err := s.authSvc.UpdateProfile(c.Request.Context(), user.ID, authdomain.UpdateProfileRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile updated"})
}

type checkoutDataRequest struct {
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// SaveCheckoutData persists the shipping details entered at checkout as
// the customer's defaults.
func (s *Server) SaveCheckoutData(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req checkoutDataRequest
	if err := bindJSON(c, &req); err != nil {
		AbortWithError(c, err)
		return
	}

	err := s.authSvc.SaveCheckoutData(c.Request.Context(), user.ID, authdomain.CheckoutDataRequest{
		Phone:      strings.TrimSpace(req.Phone),
		Address:    strings.TrimSpace(req.Address),
		City:       strings.TrimSpace(req.City),
		State:      strings.TrimSpace(req.State),
		PostalCode: strings.TrimSpace(req.PostalCode),
		Country:    strings.TrimSpace(req.Country),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Checkout data saved"})
}
