package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/unrolled/render"

	"github.com/bcheye/fantasy-foundry/controller"
	"github.com/bcheye/fantasy-foundry/db"
	"github.com/bcheye/fantasy-foundry/model"
)

type signupRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	FPLEntryID int32  `json:"fpl_entry_id"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message    string `json:"message"`
	FPLEntryID int32  `json:"fpl_entry_id"`
}

func signupHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			renderStatus(render, w, http.StatusBadRequest, statusError, "invalid request body")
			return
		}

		u := &model.User{
			FirstName:  req.FirstName,
			LastName:   req.LastName,
			Email:      req.Email,
			FPLEntryID: req.FPLEntryID,
		}
		if err := ctrl.Signup(r.Context(), u, req.Password); err != nil {
			if errors.Is(err, db.ErrEmailExists) {
				renderStatus(render, w, http.StatusBadRequest, statusError, "email already registered")
				return
			}
			if errors.Is(err, controller.ErrInvalidSignup) {
				renderStatus(render, w, http.StatusBadRequest, statusError, err.Error())
				return
			}
			renderStatus(render, w, http.StatusInternalServerError, statusError, err.Error())
			return
		}

		render.JSON(w, http.StatusCreated, u)
	}
}

func loginHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			renderStatus(render, w, http.StatusBadRequest, statusError, "invalid request body")
			return
		}

		u, err := ctrl.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, controller.ErrInvalidCredentials) {
				renderStatus(render, w, http.StatusUnauthorized, statusError, "invalid email or password")
				return
			}
			renderStatus(render, w, http.StatusInternalServerError, statusError, err.Error())
			return
		}

		render.JSON(w, http.StatusOK, loginResponse{
			Message:    "login successful",
			FPLEntryID: u.FPLEntryID,
		})
	}
}
