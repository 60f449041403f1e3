package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	userapp "github.com/muhammadheryan/user-directory/application/user"
	"github.com/muhammadheryan/user-directory/constant"
	"github.com/muhammadheryan/user-directory/model"
	"github.com/muhammadheryan/user-directory/utils/errors"
	validatorx "github.com/muhammadheryan/user-directory/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

const (
	defaultListLimit  = int64(100)
	defaultListOffset = int64(0)
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

	mux.HandleFunc("/health", rh.Health).Methods(http.MethodGet)

	mux.HandleFunc("/users", rh.ListUsers).Methods(http.MethodGet)
	mux.HandleFunc("/users", rh.CreateUser).Methods(http.MethodPost)
	mux.HandleFunc("/users/{id}", rh.GetUser).Methods(http.MethodGet)
	mux.HandleFunc("/users/{id}", rh.UpdateUser).Methods(http.MethodPut)
	mux.HandleFunc("/users/{id}", rh.DeleteUser).Methods(http.MethodDelete)

	// middleware
	mux.Use(LoggingMiddleware())

	return mux
}

// ListUsers handler
// @Summary List users
// @Description List all users ordered by id. Passing limit or offset switches to the paged listing.
// @Tags Users
// @Produce json
// @Param limit query int false "Page size (default 100)"
// @Param offset query int false "Page offset (default 0)"
// @Success 200 {array} model.UserView
// @Failure 500 {object} map[string]string
// @Router /users [get]
func (s *RestHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limitParam := r.URL.Query().Get("limit")
	offsetParam := r.URL.Query().Get("offset")

	// No paging params means the full, unbounded listing. Callers rely on it.
	if limitParam == "" && offsetParam == "" {
		res, err := s.UserApp.List(ctx)
		if err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, res)
		return
	}

	limit := defaultListLimit
	offset := defaultListOffset
	if limitParam != "" {
		v, err := strconv.ParseInt(limitParam, 10, 64)
		if err != nil {
			writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "invalid limit"))
			return
		}
		limit = v
	}
	if offsetParam != "" {
		v, err := strconv.ParseInt(offsetParam, 10, 64)
		if err != nil {
			writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "invalid offset"))
			return
		}
		offset = v
	}

	res, err := s.UserApp.ListPaged(ctx, limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetUser handler
// @Summary Get user
// @Description Get a single user by id
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.UserView
// @Failure 404 {object} map[string]string
// @Router /users/{id} [get]
func (s *RestHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.GetByID(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateUser handler
// @Summary Create user
// @Description Create a new user. Name and email must be non-blank.
// @Tags Users
// @Accept json
// @Produce json
// @Param request body model.UserRequest true "User Request"
// @Success 201 {object} model.UserView
// @Failure 400 {object} map[string]string
// @Router /users [post]
func (s *RestHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, validatorx.Message(err)))
		return
	}

	res, err := s.UserApp.Create(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// UpdateUser handler
// @Summary Update user
// @Description Fully replace a user's fields by id
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body model.UserRequest true "User Request"
// @Success 200 {object} model.UserView
// @Failure 404 {object} map[string]string
// @Router /users/{id} [put]
func (s *RestHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	// Update is not pre-validated; the store's own constraints are the guard.
	res, err := s.UserApp.Update(ctx, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteUser handler
// @Summary Delete user
// @Description Delete a user by id
// @Tags Users
// @Param id path int true "User ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /users/{id} [delete]
func (s *RestHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.UserApp.Delete(ctx, id); err != nil {
		writeError(w, err)
		return
	}

	writeNoContent(w)
}

// Health handler
// @Summary Liveness probe
// @Tags Health
// @Success 200
// @Router /health [get]
func (s *RestHandler) Health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "invalid id")
	}
	return id, nil
}
