package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	userapp "github.com/vibecommerce/user-service/application/user"
	"github.com/vibecommerce/user-service/constant"
	"github.com/vibecommerce/user-service/model"
	"github.com/vibecommerce/user-service/utils/errors"
	validatorx "github.com/vibecommerce/user-service/utils/validator"
)

type RestHandler struct {
	UserApp userapp.UserApp
}

func NewTransport(UserApp userapp.UserApp) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		UserApp: UserApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	api := mux.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/users", rh.RegisterUser).Methods(http.MethodPost)
	api.HandleFunc("/users", rh.ListUsers).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", rh.GetUser).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", rh.UpdateUser).Methods(http.MethodPatch)
	api.HandleFunc("/users/{id}", rh.DeleteUser).Methods(http.MethodDelete)

	// middleware
	mux.Use(RequestIDMiddleware())
	mux.Use(LoggingMiddleware())

	return mux
}

// RegisterUser handler
// @Summary Register a new user
// @Description Creates a new user and returns the created data
// @Tags Users
// @Accept json
// @Produce json
// @Param request body model.RegisterUserRequest true "Register Request"
// @Success 201 {object} model.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/users [post]
func (s *RestHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "malformed request body"))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, validatorx.Translate(err)))
		return
	}

	res, err := s.UserApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, res)
}

// ListUsers handler
// @Summary Get all users
// @Description Returns all existing users
// @Tags Users
// @Produce json
// @Success 200 {array} model.UserResponse
// @Router /api/v1/users [get]
func (s *RestHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.UserApp.ListAll(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// GetUser handler
// @Summary Get a user by ID
// @Description Retrieves an existing user by ID
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.UserResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/{id} [get]
func (s *RestHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.GetByID(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// UpdateUser handler
// @Summary Partially update a user
// @Description Updates an existing user by ID with partial data
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body model.UpdateUserRequest true "Update Request"
// @Success 200 {object} model.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/users/{id} [patch]
func (s *RestHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "malformed request body"))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, validatorx.Translate(err)))
		return
	}

	res, err := s.UserApp.Update(ctx, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// DeleteUser handler
// @Summary Delete a user
// @Description Deletes a user by ID
// @Tags Users
// @Param id path int true "User ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/{id} [delete]
func (s *RestHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.UserApp.Delete(ctx, id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseID(r *http.Request) (uint64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "id must be a positive integer")
	}
	return id, nil
}
