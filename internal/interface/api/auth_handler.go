package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"flightwarehouse-service/internal/domain/entity"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type oauthURLResponse struct {
	URL string `json:"url"`
}

type googleCodeRequest struct {
	Code string `json:"code"`
}

func (s *Server) handleLogin(w http.ResponseWriter, req *http.Request) {
	var body loginRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", entity.ErrValidation))
		return
	}
	if body.Email == "" || body.Password == "" {
		writeError(w, fmt.Errorf("%w: email and password are required", entity.ErrValidation))
		return
	}

	token, err := s.auth.Login(req.Context(), body.Email, body.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (s *Server) handleGoogleAuthURL(w http.ResponseWriter, req *http.Request) {
	url, err := s.auth.GoogleAuthURL(req.URL.Query().Get("state"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, oauthURLResponse{URL: url})
}

func (s *Server) handleGoogleCallback(w http.ResponseWriter, req *http.Request) {
	code := req.URL.Query().Get("code")
	if code == "" {
		writeError(w, fmt.Errorf("%w: code is required", entity.ErrValidation))
		return
	}

	token, err := s.auth.GoogleExchange(req.Context(), code)
	if err != nil {
		writeError(w, err)
		return
	}

	// Hand the token to the frontend via a fragment redirect when one is
	// configured; fall back to a JSON body otherwise.
	if s.frontend != "" {
		target := strings.TrimRight(s.frontend, "/") + "/#token=" + token
		http.Redirect(w, req, target, http.StatusTemporaryRedirect)
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (s *Server) handleGoogleToken(w http.ResponseWriter, req *http.Request) {
	var body googleCodeRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil || body.Code == "" {
		writeError(w, fmt.Errorf("%w: code is required", entity.ErrValidation))
		return
	}

	token, err := s.auth.GoogleExchange(req.Context(), body.Code)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}
