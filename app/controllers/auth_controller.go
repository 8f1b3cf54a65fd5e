package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"taskboard/app/dto"
	jwtutil "taskboard/app/jwt"
	"taskboard/app/models"
	"taskboard/app/services"
	"taskboard/global"
)

type AuthController struct {
	Users         *services.UserService
	Signer        *jwtutil.Signer
	AdminEmail    string
	AdminPassword string
}

func NewAuthController(users *services.UserService, signer *jwtutil.Signer, adminEmail, adminPassword string) *AuthController {
	return &AuthController{Users: users, Signer: signer, AdminEmail: adminEmail, AdminPassword: adminPassword}
}

func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if err := c.Users.Register(req.Username, req.Email, req.Password); err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			http.Error(w, "Email already registered", http.StatusConflict)
			return
		}
		global.Logger.Error().Err(err).Msg("signup failed")
		http.Error(w, "Error registering user", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write([]byte("User registered successfully"))
}

// Login answers wrong-password and unknown-email identically.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	u, err := c.Users.ValidateCredentials(req.Email, req.Password)
	if err != nil {
		http.Error(w, "Invalid credentials", http.StatusBadRequest)
		return
	}
	token, err := c.Signer.SignUser(u.ID, string(u.Role))
	if err != nil {
		global.Logger.Error().Err(err).Msg("token signing failed")
		http.Error(w, "Error logging in", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(dto.TokenResponse{Token: token})
}

// AdminLogin compares literally against the two configured values. There is
// no stored admin account and no hashing; the admin token carries only the
// role claim.
func (c *AuthController) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Email != c.AdminEmail || req.Password != c.AdminPassword {
		http.Error(w, "Invalid admin credentials", http.StatusForbidden)
		return
	}
	token, err := c.Signer.SignAdmin(string(models.RoleAdmin))
	if err != nil {
		global.Logger.Error().Err(err).Msg("token signing failed")
		http.Error(w, "Error logging in", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(dto.TokenResponse{Token: token})
}
