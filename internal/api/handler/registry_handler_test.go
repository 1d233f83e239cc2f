package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/idekita/idekita-api/internal/core/domain"
	"github.com/idekita/idekita-api/internal/core/ports"
)

type stubRegistryService struct {
	checkFn    func(ctx context.Context, handle string) (bool, error)
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.UserProfile, error)
}

func (s *stubRegistryService) CheckAvailability(ctx context.Context, handle string) (bool, error) {
	return s.checkFn(ctx, handle)
}

func (s *stubRegistryService) Register(ctx context.Context, in ports.RegisterInput) (*domain.UserProfile, error) {
	return s.registerFn(ctx, in)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// httpStatusOf unwraps an *echo.HTTPError's status code, or fails the test.
func httpStatusOf(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	return he.Code
}

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("uid", "uid_1")
	c.Set("display_name", "Siti Rahma")
	c.Set("email", "siti@example.com")
	c.Set("photo_url", "https://example.com/p.png")
	return c
}

func TestRegistryHandler_Availability(t *testing.T) {
	e := newTestEcho()
	stub := &stubRegistryService{
		checkFn: func(_ context.Context, handle string) (bool, error) {
			return handle == "sitirahma", nil
		},
	}
	handler := NewRegistryHandler(stub, domain.DefaultHandlePolicy())

	cases := []struct {
		name          string
		handle        string
		wantValid     bool
		wantAvailable bool
	}{
		{"available", "sitirahma", true, true},
		{"taken", "budiman", true, false},
		{"too short", "ab", false, false},
		{"bad charset", "Siti Rahma", false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetPath("/usernames/:handle/availability")
			c.SetParamNames("handle")
			c.SetParamValues(tc.handle)

			if err := handler.Availability(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}

			var resp availabilityResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Valid != tc.wantValid || resp.Available != tc.wantAvailable {
				t.Fatalf("got %+v, want valid=%v available=%v", resp, tc.wantValid, tc.wantAvailable)
			}
		})
	}
}

func TestRegistryHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubRegistryService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (*domain.UserProfile, error) {
			if in.UID != "uid_1" || in.Handle != "sitirahma" || in.DisplayName != "Siti Rahma" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.UserProfile{
				UID:        in.UID,
				Username:   in.Handle,
				DateJoined: time.Now().UTC(),
			}, nil
		},
	}
	handler := NewRegistryHandler(stub, domain.DefaultHandlePolicy())

	body := strings.NewReader(`{"username":"sitirahma"}`)
	req := httptest.NewRequest(http.MethodPost, "/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp profileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Username != "sitirahma" || resp.UID != "uid_1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestRegistryHandler_Register_HandleTaken(t *testing.T) {
	e := newTestEcho()
	stub := &stubRegistryService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (*domain.UserProfile, error) {
			return nil, domain.ErrHandleTaken
		},
	}
	handler := NewRegistryHandler(stub, domain.DefaultHandlePolicy())

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"username":"sitirahma"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)

	// The router's error handler maps this to 409; here the domain error
	// itself is the contract.
	if err := handler.Register(c); !errors.Is(err, domain.ErrHandleTaken) {
		t.Fatalf("got %v, want ErrHandleTaken", err)
	}
}

func TestRegistryHandler_Register_Unauthenticated(t *testing.T) {
	e := newTestEcho()
	stub := &stubRegistryService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (*domain.UserProfile, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewRegistryHandler(stub, domain.DefaultHandlePolicy())

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"username":"sitirahma"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec) // no claims injected

	err := handler.Register(c)
	if got := httpStatusOf(t, err); got != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", got)
	}
}

func TestRegistryHandler_Register_MissingUsername(t *testing.T) {
	e := newTestEcho()
	stub := &stubRegistryService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (*domain.UserProfile, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewRegistryHandler(stub, domain.DefaultHandlePolicy())

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)

	err := handler.Register(c)
	if got := httpStatusOf(t, err); got != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", got)
	}
}
