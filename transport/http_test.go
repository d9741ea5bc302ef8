package transport_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/vibecommerce/user-service/constant"
	appmocks "github.com/vibecommerce/user-service/mocks/application/user"
	"github.com/vibecommerce/user-service/model"
	"github.com/vibecommerce/user-service/transport"
	"github.com/vibecommerce/user-service/utils/errors"
)

func doRequest(t *testing.T, handler http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) transport.ErrorResponse {
	t.Helper()
	var body transport.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body %q: %v", rec.Body.String(), err)
	}
	return body
}

func validRegisterBody() map[string]string {
	return map[string]string{
		"firstName":       "Alice",
		"lastName":        "Johnson",
		"email":           "alice@example.com",
		"address":         "123 Main Street, NY",
		"password":        "MyPass1",
		"confirmPassword": "MyPass1",
	}
}

func TestRegisterUserHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		app := appmocks.NewUserApp(t)
		app.
			On("Register", mock.Anything, mock.MatchedBy(func(req *model.RegisterUserRequest) bool {
				return req.Email == "alice@example.com" && req.Password == "MyPass1"
			})).
			Return(&model.UserResponse{
				ID:        7,
				FirstName: "Alice",
				LastName:  "Johnson",
				Email:     "alice@example.com",
				Address:   "123 Main Street, NY",
				Password:  "*****",
			}, nil).
			Once()
		handler := transport.NewTransport(app)

		rec := doRequest(t, handler, http.MethodPost, "/api/v1/users", validRegisterBody())

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusCreated, rec.Body.String())
		}
		if rec.Header().Get("X-Request-ID") == "" {
			t.Fatal("missing X-Request-ID header")
		}

		var res model.UserResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if res.ID != 7 || res.Password != "*****" {
			t.Fatalf("body = %+v", res)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		app := appmocks.NewUserApp(t)
		handler := transport.NewTransport(app)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/users", bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		body := decodeErrorBody(t, rec)
		if body.Status != http.StatusBadRequest || body.Error != "Bad Request" {
			t.Fatalf("error body = %+v", body)
		}
	})

	t.Run("validation failure never reaches the app", func(t *testing.T) {
		app := appmocks.NewUserApp(t)
		handler := transport.NewTransport(app)

		payload := validRegisterBody()
		payload["firstName"] = "Al"
		rec := doRequest(t, handler, http.MethodPost, "/api/v1/users", payload)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		body := decodeErrorBody(t, rec)
		if body.Message == "" {
			t.Fatal("expected per-field validation message")
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		app := appmocks.NewUserApp(t)
		app.
			On("Register", mock.Anything, mock.AnythingOfType("*model.RegisterUserRequest")).
			Return(nil, errors.SetCustomError(constant.ErrEmailExists)).
			Once()
		handler := transport.NewTransport(app)

		rec := doRequest(t, handler, http.MethodPost, "/api/v1/users", validRegisterBody())

		if rec.Code != http.StatusConflict {
			t.Fatalf("status = %d, want 409", rec.Code)
		}
		body := decodeErrorBody(t, rec)
		if body.Error != "Conflict" || body.Message != "Email is already in use" {
			t.Fatalf("error body = %+v", body)
		}
	})
}

func TestListUsersHandler(t *testing.T) {
	app := appmocks.NewUserApp(t)
	app.
		On("ListAll", mock.Anything).
		Return([]model.UserResponse{
			{ID: 1, FirstName: "Alice", LastName: "Johnson", Email: "alice@example.com", Address: "123 Main Street, NY", Password: "*****"},
			{ID: 2, FirstName: "Bobby", LastName: "Tables", Email: "bobby@example.com", Address: "456 Side Avenue, LA", Password: "*****"},
		}, nil).
		Once()
	handler := transport.NewTransport(app)

	rec := doRequest(t, handler, http.MethodGet, "/api/v1/users", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var res []model.UserResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(res) != 2 || res[0].ID != 1 || res[1].ID != 2 {
		t.Fatalf("body = %+v", res)
	}
}

func TestGetUserHandler(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		app := appmocks.NewUserApp(t)
		app.
			On("GetByID", mock.Anything, uint64(5)).
			Return(&model.UserResponse{ID: 5, FirstName: "Alice", Password: "*****"}, nil).
			Once()
		handler := transport.NewTransport(app)

		rec := doRequest(t, handler, http.MethodGet, "/api/v1/users/5", nil)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		app := appmocks.NewUserApp(t)
		app.
			On("GetByID", mock.Anything, uint64(9)).
			Return(nil, errors.SetCustomErrorMessage(constant.ErrNotFound, "user with id 9 not found")).
			Once()
		handler := transport.NewTransport(app)

		rec := doRequest(t, handler, http.MethodGet, "/api/v1/users/9", nil)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
		body := decodeErrorBody(t, rec)
		if body.Error != "Not Found" || body.Message != "user with id 9 not found" {
			t.Fatalf("error body = %+v", body)
		}
	})

	t.Run("non-numeric id", func(t *testing.T) {
		app := appmocks.NewUserApp(t)
		handler := transport.NewTransport(app)

		rec := doRequest(t, handler, http.MethodGet, "/api/v1/users/abc", nil)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})
}

func TestUpdateUserHandler(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		app := appmocks.NewUserApp(t)
		app.
			On("Update", mock.Anything, uint64(5), mock.MatchedBy(func(req *model.UpdateUserRequest) bool {
				return req.FirstName != nil && *req.FirstName == "NewName" && req.LastName == nil
			})).
			Return(&model.UserResponse{ID: 5, FirstName: "NewName", Password: "*****"}, nil).
			Once()
		handler := transport.NewTransport(app)

		rec := doRequest(t, handler, http.MethodPatch, "/api/v1/users/5", map[string]string{"firstName": "NewName"})

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
		}
	})

	t.Run("empty update never reaches the app", func(t *testing.T) {
		app := appmocks.NewUserApp(t)
		handler := transport.NewTransport(app)

		rec := doRequest(t, handler, http.MethodPatch, "/api/v1/users/5", map[string]string{})

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		body := decodeErrorBody(t, rec)
		if body.Message != "at least one field must be provided" {
			t.Fatalf("message = %q", body.Message)
		}
	})

	t.Run("not found", func(t *testing.T) {
		app := appmocks.NewUserApp(t)
		app.
			On("Update", mock.Anything, uint64(99), mock.AnythingOfType("*model.UpdateUserRequest")).
			Return(nil, errors.SetCustomErrorMessage(constant.ErrNotFound, "user with id 99 not found")).
			Once()
		handler := transport.NewTransport(app)

		rec := doRequest(t, handler, http.MethodPatch, "/api/v1/users/99", map[string]string{"firstName": "NewName"})

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
	})
}

func TestDeleteUserHandler(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		app := appmocks.NewUserApp(t)
		app.
			On("Delete", mock.Anything, uint64(5)).
			Return(nil).
			Once()
		handler := transport.NewTransport(app)

		rec := doRequest(t, handler, http.MethodDelete, "/api/v1/users/5", nil)

		if rec.Code != http.StatusNoContent {
			t.Fatalf("status = %d, want 204", rec.Code)
		}
		if rec.Body.Len() != 0 {
			t.Fatalf("expected empty body, got %q", rec.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		app := appmocks.NewUserApp(t)
		app.
			On("Delete", mock.Anything, uint64(5)).
			Return(errors.SetCustomErrorMessage(constant.ErrNotFound, "user with id 5 not found")).
			Once()
		handler := transport.NewTransport(app)

		rec := doRequest(t, handler, http.MethodDelete, "/api/v1/users/5", nil)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
	})
}
