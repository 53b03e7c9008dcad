package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/rasoi/pkg/auth"
	"github.com/shashiranjanraj/rasoi/pkg/bind"
	"github.com/shashiranjanraj/rasoi/pkg/logger"
	"github.com/shashiranjanraj/rasoi/pkg/response"
)

// AuthController issues bearer tokens.
type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

type issueTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"  validate:"nullable,max=100"`
}

// IssueToken handles POST /jwt. The token carries only the email claim and
// expires after one hour.
func (c *AuthController) IssueToken(w http.ResponseWriter, r *http.Request) {
	var body issueTokenRequest
	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if errs != nil {
		response.BadRequest(w, bind.FirstError(errs))
		return
	}

	token, err := auth.IssueToken(body.Email)
	if err != nil {
		logger.WithCtx(r.Context()).Error("token signing failed", "error", err)
		response.Internal(w, "Failed to issue token")
		return
	}

	response.OK(w, map[string]string{"token": token})
}
