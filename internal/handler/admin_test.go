package handler_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sakif/volunteerhub/internal/auth"
	"github.com/sakif/volunteerhub/internal/handler"
	"github.com/sakif/volunteerhub/internal/model"
	"github.com/sakif/volunteerhub/internal/repository/kv"
	"github.com/sakif/volunteerhub/internal/service"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestStore(t *testing.T) *kv.Store {
	t.Helper()
	store, err := kv.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newAdminHandler(t *testing.T) *handler.AdminHandler {
	t.Helper()
	logger := testLogger()
	svc := service.NewAdminService(kv.NewAdminRepo(newTestStore(t)), auth.NewPasswordServiceForTest(), logger)
	return handler.NewAdminHandler(svc, logger)
}

func postJSON(t *testing.T, h http.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func TestAdminHandler_HandleCreate(t *testing.T) {
	t.Run("valid signup", func(t *testing.T) {
		h := newAdminHandler(t)

		rr := postJSON(t, h.HandleCreate, "/admins",
			`{"name":"A","email":"a@x.com","password":"p"}`)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var res struct {
			Message string      `json:"message"`
			Admin   model.Admin `json:"admin"`
		}
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
		assert.Equal(t, "Admin created successfully", res.Message)
		assert.Equal(t, "a@x.com", res.Admin.Email)
		assert.NotEmpty(t, res.Admin.ID)
		// The hash goes back to the caller, the plaintext never does.
		assert.NotEqual(t, "p", res.Admin.Password)
	})

	t.Run("duplicate email", func(t *testing.T) {
		h := newAdminHandler(t)

		body := `{"name":"A","email":"a@x.com","password":"p"}`
		first := postJSON(t, h.HandleCreate, "/admins", body)
		assert.Equal(t, http.StatusCreated, first.Code)

		second := postJSON(t, h.HandleCreate, "/admins", body)
		assert.Equal(t, http.StatusBadRequest, second.Code)

		var res struct {
			Error string `json:"error"`
		}
		assert.NoError(t, json.NewDecoder(second.Body).Decode(&res))
		assert.Equal(t, "Admin with the same email already exists.", res.Error)
	})

	t.Run("invalid email format", func(t *testing.T) {
		h := newAdminHandler(t)

		rr := postJSON(t, h.HandleCreate, "/admins",
			`{"name":"A","email":"not-an-email","password":"p"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("malformed JSON body", func(t *testing.T) {
		h := newAdminHandler(t)

		rr := postJSON(t, h.HandleCreate, "/admins", `{"name":`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
