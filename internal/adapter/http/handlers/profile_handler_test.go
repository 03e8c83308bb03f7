package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"resto_requests/internal/adapter/http/handlers/mocks"
	"resto_requests/internal/domain/entities"
	"resto_requests/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestProfileHandler_GetProfile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProfileUseCase(ctrl)
	h := NewProfileHandler(uc)

	r := testRouter(gigioEmployee())
	r.GET("/v1/me", h.GetProfile)

	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if resp["uid"] != "u-1" || resp["role"] != "employee" {
		t.Fatalf("unexpected response: %v", resp)
	}
}

func TestProfileHandler_SwitchRestaurant(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing restaurant id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProfileUseCase(ctrl)
		h := NewProfileHandler(uc)

		r := testRouter(gigioEmployee())
		r.PUT("/v1/me/restaurant", h.SwitchRestaurant)

		req := httptest.NewRequest(http.MethodPut, "/v1/me/restaurant", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("disallowed switch maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProfileUseCase(ctrl)
		h := NewProfileHandler(uc)

		uc.EXPECT().SwitchRestaurant(gomock.Any(), gomock.Any(), entities.RestaurantTigers).
			Return(entities.UserProfile{}, usecase.ErrSwitchNotAllowed)

		r := testRouter(gigioEmployee())
		r.PUT("/v1/me/restaurant", h.SwitchRestaurant)

		req := httptest.NewRequest(http.MethodPut, "/v1/me/restaurant", bytes.NewBufferString(`{"restaurant_id":"3"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("unknown restaurant maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProfileUseCase(ctrl)
		h := NewProfileHandler(uc)

		uc.EXPECT().SwitchRestaurant(gomock.Any(), gomock.Any(), entities.RestaurantID("99")).
			Return(entities.UserProfile{}, usecase.ErrUnknownRestaurant)

		r := testRouter(gigioEmployee())
		r.PUT("/v1/me/restaurant", h.SwitchRestaurant)

		req := httptest.NewRequest(http.MethodPut, "/v1/me/restaurant", bytes.NewBufferString(`{"restaurant_id":"99"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("switch succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProfileUseCase(ctrl)
		h := NewProfileHandler(uc)

		target := entities.RestaurantTigers
		updated := entities.UserProfile{UID: "m-1", Role: entities.RoleMaintenance, RestaurantID: &target}
		uc.EXPECT().SwitchRestaurant(gomock.Any(), gomock.Any(), entities.RestaurantTigers).Return(updated, nil)

		r := testRouter(entities.UserProfile{UID: "m-1", Role: entities.RoleMaintenance})
		r.PUT("/v1/me/restaurant", h.SwitchRestaurant)

		req := httptest.NewRequest(http.MethodPut, "/v1/me/restaurant", bytes.NewBufferString(`{"restaurant_id":"3"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["restaurant_id"] != "3" {
			t.Fatalf("expected restaurant 3 in response, got %v", resp["restaurant_id"])
		}
	})
}

func TestProfileHandler_UpdateProfile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("blank display name maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProfileUseCase(ctrl)
		h := NewProfileHandler(uc)

		uc.EXPECT().UpdateProfile(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.UserProfile{}, usecase.ErrInvalidProfilePatch)

		r := testRouter(gigioEmployee())
		r.PATCH("/v1/me", h.UpdateProfile)

		req := httptest.NewRequest(http.MethodPatch, "/v1/me", bytes.NewBufferString(`{"display_name":"  "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
