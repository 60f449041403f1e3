package transport_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/muhammadheryan/user-directory/constant"
	appmocks "github.com/muhammadheryan/user-directory/mocks/application/user"
	"github.com/muhammadheryan/user-directory/model"
	"github.com/muhammadheryan/user-directory/transport"
	"github.com/muhammadheryan/user-directory/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testCreated = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func sampleView(id int64) *model.UserView {
	return &model.UserView{
		ID:         id,
		Name:       "Test User",
		Email:      "test@example.com",
		Phone:      "081234567890",
		Occupation: "engineer",
		CreatedAt:  testCreated,
	}
}

func doRequest(t *testing.T, app *appmocks.UserApp, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	handler := transport.NewTransport(app)
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func TestListUsers_NoParamsUsesUnboundedListing(t *testing.T) {
	app := appmocks.NewUserApp(t)
	app.
		On("List", mock.Anything).
		Return([]model.UserView{*sampleView(1), *sampleView(2)}, nil).
		Once()

	rec := doRequest(t, app, http.MethodGet, "/users", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var views []model.UserView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	assert.Len(t, views, 2)
}

func TestListUsers_BothParamsUsePagedListing(t *testing.T) {
	app := appmocks.NewUserApp(t)
	app.
		On("ListPaged", mock.Anything, int64(2), int64(1)).
		Return([]model.UserView{*sampleView(2), *sampleView(3)}, nil).
		Once()

	rec := doRequest(t, app, http.MethodGet, "/users?limit=2&offset=1", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListUsers_LimitOnlyDefaultsOffset(t *testing.T) {
	app := appmocks.NewUserApp(t)
	app.
		On("ListPaged", mock.Anything, int64(5), int64(0)).
		Return([]model.UserView{}, nil).
		Once()

	rec := doRequest(t, app, http.MethodGet, "/users?limit=5", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListUsers_OffsetOnlyDefaultsLimit(t *testing.T) {
	app := appmocks.NewUserApp(t)
	app.
		On("ListPaged", mock.Anything, int64(100), int64(7)).
		Return([]model.UserView{}, nil).
		Once()

	rec := doRequest(t, app, http.MethodGet, "/users?offset=7", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListUsers_InvalidLimit(t *testing.T) {
	app := appmocks.NewUserApp(t)

	rec := doRequest(t, app, http.MethodGet, "/users?limit=abc", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid limit", decodeError(t, rec))
}

func TestListUsers_DatabaseErrorIsOpaque(t *testing.T) {
	app := appmocks.NewUserApp(t)
	app.
		On("List", mock.Anything).
		Return(nil, errors.SetCustomError(constant.ErrDatabase)).
		Once()

	rec := doRequest(t, app, http.MethodGet, "/users", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "database error", decodeError(t, rec))
}

func TestGetUser(t *testing.T) {
	app := appmocks.NewUserApp(t)
	app.
		On("GetByID", mock.Anything, int64(7)).
		Return(sampleView(7), nil).
		Once()

	rec := doRequest(t, app, http.MethodGet, "/users/7", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	// UpdatedAt must never appear in the outward payload.
	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Contains(t, raw, "created_at")
	assert.NotContains(t, raw, "updated_at")
}

func TestGetUser_NotFound(t *testing.T) {
	app := appmocks.NewUserApp(t)
	app.
		On("GetByID", mock.Anything, int64(99)).
		Return(nil, errors.SetCustomError(constant.ErrNotFound)).
		Once()

	rec := doRequest(t, app, http.MethodGet, "/users/99", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not found", decodeError(t, rec))
}

func TestGetUser_InvalidID(t *testing.T) {
	app := appmocks.NewUserApp(t)

	rec := doRequest(t, app, http.MethodGet, "/users/abc", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid id", decodeError(t, rec))
}

func TestCreateUser(t *testing.T) {
	req := &model.UserRequest{
		Name:       "Test User",
		Email:      "test@example.com",
		Phone:      "081234567890",
		Occupation: "engineer",
	}

	app := appmocks.NewUserApp(t)
	app.
		On("Create", mock.Anything, req).
		Return(sampleView(1), nil).
		Once()

	body, _ := json.Marshal(req)
	rec := doRequest(t, app, http.MethodPost, "/users", body)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateUser_BlankName(t *testing.T) {
	tests := []struct {
		name string
		req  model.UserRequest
		want string
	}{
		{
			name: "empty name",
			req:  model.UserRequest{Name: "", Email: "x@y.com"},
			want: "name required",
		},
		{
			name: "whitespace-only name",
			req:  model.UserRequest{Name: "   ", Email: "x@y.com"},
			want: "name required",
		},
		{
			name: "empty email",
			req:  model.UserRequest{Name: "Test", Email: "  "},
			want: "email required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The application layer must never be reached.
			app := appmocks.NewUserApp(t)

			body, _ := json.Marshal(tt.req)
			rec := doRequest(t, app, http.MethodPost, "/users", body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.want, decodeError(t, rec))
		})
	}
}

func TestCreateUser_MalformedBody(t *testing.T) {
	app := appmocks.NewUserApp(t)

	rec := doRequest(t, app, http.MethodPost, "/users", []byte(`{not json`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid request", decodeError(t, rec))
}

func TestUpdateUser_SkipsValidation(t *testing.T) {
	// Update is deliberately not validated: a blank name reaches the gateway.
	req := &model.UserRequest{Name: "", Email: ""}

	app := appmocks.NewUserApp(t)
	app.
		On("Update", mock.Anything, int64(3), req).
		Return(sampleView(3), nil).
		Once()

	body, _ := json.Marshal(req)
	rec := doRequest(t, app, http.MethodPut, "/users/3", body)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateUser_NotFound(t *testing.T) {
	req := &model.UserRequest{Name: "X", Email: "x@y.com"}

	app := appmocks.NewUserApp(t)
	app.
		On("Update", mock.Anything, int64(99), req).
		Return(nil, errors.SetCustomError(constant.ErrNotFound)).
		Once()

	body, _ := json.Marshal(req)
	rec := doRequest(t, app, http.MethodPut, "/users/99", body)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not found", decodeError(t, rec))
}

func TestDeleteUser(t *testing.T) {
	app := appmocks.NewUserApp(t)
	app.
		On("Delete", mock.Anything, int64(5)).
		Return(nil).
		Once()

	rec := doRequest(t, app, http.MethodDelete, "/users/5", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
}

func TestDeleteUser_SecondDeleteNotFound(t *testing.T) {
	app := appmocks.NewUserApp(t)
	app.
		On("Delete", mock.Anything, int64(5)).
		Return(nil).
		Once()
	app.
		On("Delete", mock.Anything, int64(5)).
		Return(errors.SetCustomError(constant.ErrNotFound)).
		Once()

	first := doRequest(t, app, http.MethodDelete, "/users/5", nil)
	assert.Equal(t, http.StatusNoContent, first.Code)

	second := doRequest(t, app, http.MethodDelete, "/users/5", nil)
	assert.Equal(t, http.StatusNotFound, second.Code)
	assert.Equal(t, "not found", decodeError(t, second))
}

func TestHealth(t *testing.T) {
	app := appmocks.NewUserApp(t)

	rec := doRequest(t, app, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}
