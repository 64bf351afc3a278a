package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"workorder_engine/internal/adapter/http/handlers/mocks"
	"workorder_engine/internal/adapter/http/middleware"
	"workorder_engine/internal/domain/entities"
	"workorder_engine/internal/domain/lifecycle"
	"workorder_engine/internal/domain/nte"
	"workorder_engine/internal/domain/permissions"
	"workorder_engine/internal/usecase"
	"workorder_engine/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var testActor = entities.ActingUser{
	Email:     "ana@acme.com",
	Name:      "Ana",
	Role:      permissions.RoleExternalAdmin,
	ClientRef: "acme",
}

func newWorkOrderRouter(h *WorkOrderHandler) *gin.Engine {
	r := gin.New()
	v1 := r.Group("/v1", middleware.ActingUserMiddleware())
	v1.POST("/work-orders", h.CreateWorkOrder)
	v1.GET("/work-orders", h.ListWorkOrders)
	v1.GET("/work-orders/:id", h.GetWorkOrder)
	v1.PATCH("/work-orders/:id/cancel", h.CancelWorkOrder)
	v1.PATCH("/work-orders/:id/reopen", h.ReopenWorkOrder)
	v1.PATCH("/work-orders/:id/priority", h.ChangePriority)
	v1.GET("/work-orders/:id/nte", h.GetNTEOverview)
	v1.PATCH("/work-orders/:id/nte/:request_key/approve", h.ApproveNTE)
	v1.PATCH("/work-orders/:id/nte/:request_key/deny", h.DenyNTE)
	v1.POST("/work-orders/:id/notes", h.AddNote)
	v1.POST("/work-orders/:id/images", h.AddImage)
	return r
}

func newAuthedRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.HeaderUserEmail, testActor.Email)
	req.Header.Set(middleware.HeaderUserName, testActor.Name)
	req.Header.Set(middleware.HeaderUserRole, string(testActor.Role))
	req.Header.Set(middleware.HeaderClientRef, testActor.ClientRef)
	return req
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, w.Body.String())
	}
	return body
}

func TestWorkOrderHandler_CreateWorkOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders", bytes.NewBufferString(`{}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newAuthedRequest(http.MethodPost, "/v1/work-orders", `{"site_ref":"s1","service_type":"HVAC","description":"leak","priority":"P-9"}`))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc))

		now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
		uc.EXPECT().
			Create(gomock.Any(), gomock.Any(), testActor).
			DoAndReturn(func(_ context.Context, cmd usecase.CreateWorkOrderCommand, _ entities.ActingUser) (usecase.MutationResult, error) {
				if cmd.Priority != entities.PriorityP2 || !cmd.ClientPrice.Equal(decimal.NewFromInt(450)) {
					t.Fatalf("unexpected command %+v", cmd)
				}
				return usecase.MutationResult{WorkOrder: entities.WorkOrder{ID: "NFC-1", Status: entities.StatusNew, CreatedDate: now, Version: 1}}, nil
			})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newAuthedRequest(http.MethodPost, "/v1/work-orders", `{"site_ref":"s1","service_type":"HVAC","description":"leak","priority":"P-2","client_price":"450"}`))

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestWorkOrderHandler_CancelWorkOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newAuthedRequest(http.MethodPatch, "/v1/work-orders/NFC-1/cancel", `{}`))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Details["reason"] != "required" {
			t.Fatalf("expected reason detail, got %+v", body)
		}
	})

	t.Run("committed with notification warning", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc))

		uc.EXPECT().Cancel(gomock.Any(), "NFC-1", "client request", testActor).Return(usecase.MutationResult{
			WorkOrder:          entities.WorkOrder{ID: "NFC-1", Status: entities.StatusCancelled, Version: 2},
			NotificationFailed: true,
			Warnings:           []string{"notification: smtp down"},
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newAuthedRequest(http.MethodPatch, "/v1/work-orders/NFC-1/cancel", `{"reason":" client request "}`))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			WorkOrder struct {
				Status string `json:"status"`
			} `json:"work_order"`
			NotificationFailed bool `json:"notification_failed"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.WorkOrder.Status != "Cancelled" || !body.NotificationFailed {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}

func TestWorkOrderHandler_ErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"validation", &usecase.ValidationError{Field: "reason", Message: "a reopen reason is required"}, http.StatusBadRequest, "VALIDATION_FAILED"},
		{"forbidden", &usecase.AuthorizationError{Role: permissions.RoleEmployee, Permission: permissions.WorkOrderReopen}, http.StatusForbidden, "FORBIDDEN"},
		{"not found", usecase.ErrWorkOrderNotFound, http.StatusNotFound, "WORK_ORDER_NOT_FOUND"},
		{"conflict", &usecase.ConflictError{WorkOrderID: "NFC-1", ExpectedVersion: 2}, http.StatusConflict, "VERSION_CONFLICT"},
		{"transition", &lifecycle.TransitionError{Action: lifecycle.ActionReopen, From: entities.StatusInProgress}, http.StatusUnprocessableEntity, "INVALID_TRANSITION"},
		{"persistence", &usecase.PersistenceError{Op: "update work order", Err: errors.New("throttled")}, http.StatusInternalServerError, "PERSISTENCE_ERROR"},
		{"timeout", &usecase.PersistenceError{Op: "update work order", Err: context.DeadlineExceeded}, http.StatusServiceUnavailable, "STORE_UNAVAILABLE"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIWorkOrderUseCase(ctrl)
			r := newWorkOrderRouter(NewWorkOrderHandler(uc))

			uc.EXPECT().Reopen(gomock.Any(), "NFC-1", "again", testActor).Return(usecase.MutationResult{}, tc.err)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, newAuthedRequest(http.MethodPatch, "/v1/work-orders/NFC-1/reopen", `{"reason":"again"}`))

			if w.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, w.Code)
			}
			if body := decodeError(t, w); body.Code != tc.wantBody {
				t.Fatalf("expected %s, got %+v", tc.wantBody, body)
			}
		})
	}
}

func TestMapWorkOrderError_NTE(t *testing.T) {
	if got := mapWorkOrderError(nte.ErrAlreadyResponded); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409, got %d", got.HTTPStatus)
	}
	if got := mapWorkOrderError(nte.ErrRequestNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", got.HTTPStatus)
	}
	if got := mapWorkOrderError(nte.ErrNotSentToClient); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", got.HTTPStatus)
	}
	if got := mapWorkOrderError(usecase.ErrActingUserRequired); got.HTTPStatus != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", got.HTTPStatus)
	}
	if got := mapWorkOrderError(errors.New("boom")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", got.HTTPStatus)
	}
}

func TestWorkOrderHandler_NTE(t *testing.T) {
	gin.SetMode(gin.TestMode)
	key := entities.NTEKey(time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC))

	t.Run("approve", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc))

		uc.EXPECT().ApproveNTE(gomock.Any(), "NFC-1", key, testActor).Return(usecase.MutationResult{
			WorkOrder: entities.WorkOrder{ID: "NFC-1", ClientPrice: decimal.NewFromInt(800)},
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newAuthedRequest(http.MethodPatch, "/v1/work-orders/NFC-1/nte/"+key+"/approve", ``))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("approve twice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc))

		uc.EXPECT().ApproveNTE(gomock.Any(), "NFC-1", key, testActor).Return(usecase.MutationResult{}, nte.ErrAlreadyResponded)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newAuthedRequest(http.MethodPatch, "/v1/work-orders/NFC-1/nte/"+key+"/approve", ``))

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("deny requires reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newAuthedRequest(http.MethodPatch, "/v1/work-orders/NFC-1/nte/"+key+"/deny", `{"reason":""}`))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("overview", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc))

		uc.EXPECT().NTEOverview(gomock.Any(), "NFC-1", testActor).Return(nte.Overview{WorkOrderID: "NFC-1", Currency: "USD"}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newAuthedRequest(http.MethodGet, "/v1/work-orders/NFC-1/nte", ``))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestWorkOrderHandler_ReadsAndNotes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "NFC-1", testActor).Return(entities.WorkOrder{ID: "NFC-1", Status: entities.StatusCompleted}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newAuthedRequest(http.MethodGet, "/v1/work-orders/NFC-1", ``))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("allowed actions follow the caller's role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc))

		employee := testActor
		employee.Role = permissions.RoleEmployee
		uc.EXPECT().GetByID(gomock.Any(), "NFC-1", employee).Return(entities.WorkOrder{ID: "NFC-1", Status: entities.StatusInProgress}, nil)

		req := newAuthedRequest(http.MethodGet, "/v1/work-orders/NFC-1", ``)
		req.Header.Set(middleware.HeaderUserRole, string(permissions.RoleEmployee))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			AllowedActions []string `json:"allowed_actions"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.AllowedActions == nil || len(body.AllowedActions) != 0 {
			t.Fatalf("employee must not be offered admin actions, got %v", body.AllowedActions)
		}
	})

	t.Run("list uses query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc))

		uc.EXPECT().ListByClient(gomock.Any(), "acme", testActor).Return([]entities.WorkOrder{{ID: "NFC-1"}, {ID: "NFC-2"}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newAuthedRequest(http.MethodGet, "/v1/work-orders?client_ref=acme", ``))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var items []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &items)
		if len(items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(items))
		}
	})

	t.Run("note", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc))

		uc.EXPECT().AddNote(gomock.Any(), "NFC-1", "call before arriving", entities.NotePriorityHigh, testActor).
			Return(usecase.MutationResult{WorkOrder: entities.WorkOrder{ID: "NFC-1"}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newAuthedRequest(http.MethodPost, "/v1/work-orders/NFC-1/notes", `{"body":"call before arriving","priority":"High"}`))

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("priority", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc))

		uc.EXPECT().ChangePriority(gomock.Any(), "NFC-1", entities.PriorityP1, testActor).
			Return(usecase.MutationResult{WorkOrder: entities.WorkOrder{ID: "NFC-1", Priority: entities.PriorityP1}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newAuthedRequest(http.MethodPatch, "/v1/work-orders/NFC-1/priority", `{"priority":"P-1"}`))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestWorkOrderHandler_AddImage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newUpload := func(t *testing.T, field string) *http.Request {
		t.Helper()
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fw, err := mw.CreateFormFile(field, "leak.png")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		_, _ = fw.Write([]byte("\x89PNG\r\n\x1a\nrest-of-image"))
		_ = mw.Close()

		req := newAuthedRequest(http.MethodPost, "/v1/work-orders/NFC-1/images", "")
		req.Body = httptestBody(buf.Bytes())
		req.ContentLength = int64(buf.Len())
		req.Header.Set("Content-Type", mw.FormDataContentType())
		return req
	}

	t.Run("missing file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newUpload(t, "other"))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc))

		uc.EXPECT().AddImage(gomock.Any(), "NFC-1", gomock.Any(), testActor).
			DoAndReturn(func(_ context.Context, _ string, up usecase.ImageUpload, _ entities.ActingUser) (usecase.MutationResult, error) {
				if up.FileName != "leak.png" || up.ContentType != "image/png" || len(up.Data) == 0 {
					t.Fatalf("unexpected upload %s %s %d", up.FileName, up.ContentType, len(up.Data))
				}
				return usecase.MutationResult{WorkOrder: entities.WorkOrder{ID: "NFC-1", Images: []string{"https://cdn/x.png"}}}, nil
			})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newUpload(t, "file"))

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}
