package http

import (
	"strings"

	"pourpal-backoffice/internal/auth"
)

// loginBody is decoded first so the values can be trimmed before validation.
type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (b loginBody) trimmed() loginReq {
	return loginReq{
		Email:    strings.TrimSpace(b.Email),
		Password: strings.TrimSpace(b.Password),
	}
}

func (r loginReq) toInput() auth.Credentials {
	return auth.Credentials{Email: r.Email, Password: r.Password}
}

type registerAdminBody struct {
	Email string `json:"email"`
}

type registerAdminReq struct {
	Email string `json:"email" binding:"required,email"`
}

func (b registerAdminBody) trimmed() registerAdminReq {
	return registerAdminReq{Email: strings.TrimSpace(b.Email)}
}

type statusResp struct {
	Status int `json:"status"`
}

type profileResp struct {
	Email     string `json:"email"`
	Role      string `json:"role"`
	FullName  string `json:"full_name"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

func newProfileResp(p auth.Profile) profileResp {
	return profileResp{
		Email:     p.Email,
		Role:      p.Role,
		FullName:  p.FullName,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
