package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"construction_dashboard/internal/adapter/http/handlers/mocks"
	"construction_dashboard/internal/domain/entities"
	"construction_dashboard/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newAgreementRouter(t *testing.T) (*gin.Engine, *mocks.MockIAgreementUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIAgreementUseCase(ctrl)
	h := NewAgreementHandler(uc)

	r := gin.New()
	r.POST("/v1/agreements", h.Create)
	r.GET("/v1/agreements", h.List)
	r.GET("/v1/agreements/:id", h.Get)
	r.PUT("/v1/agreements/:id", h.Update)
	r.DELETE("/v1/agreements/:id", h.Delete)
	r.GET("/v1/agreements/:id/preview", h.Preview)
	r.POST("/v1/projects/:id/agreements/:agreementId/generate", h.Generate)
	r.GET("/v1/projects/:id/agreements/:agreementId/print", h.Print)
	return r, uc
}

func TestAgreementHandler_Generate(t *testing.T) {
	t.Run("unknown project", func(t *testing.T) {
		r, uc := newAgreementRouter(t)
		uc.EXPECT().Generate(gomock.Any(), "NOPE", "AGR001").Return("", usecase.ErrProjectNotFound)

		w := perform(r, http.MethodPost, "/v1/projects/NOPE/agreements/AGR001/generate", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newAgreementRouter(t)
		uc.EXPECT().Generate(gomock.Any(), "PRJ001", "AGR001").Return("<p>Rajesh Sharma</p>", nil)

		w := perform(r, http.MethodPost, "/v1/projects/PRJ001/agreements/AGR001/generate", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["html"] != "<p>Rajesh Sharma</p>" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestAgreementHandler_PrintAndPreview(t *testing.T) {
	r, uc := newAgreementRouter(t)
	uc.EXPECT().Print(gomock.Any(), "PRJ001", "AGR001").Return("<!DOCTYPE html><html></html>", nil)
	uc.EXPECT().Preview(gomock.Any(), "AGR001").Return(usecase.AgreementPreview{HTML: "<p>x</p>", BudgetInWords: "Twenty Five Lakh Only"}, nil)

	w := perform(r, http.MethodGet, "/v1/projects/PRJ001/agreements/AGR001/print", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/html") {
		t.Fatalf("unexpected content type %q", w.Header().Get("Content-Type"))
	}

	w = perform(r, http.MethodGet, "/v1/agreements/AGR001/preview", "")
	var body map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if w.Code != http.StatusOK || body["budgetInWords"] != "Twenty Five Lakh Only" {
		t.Fatalf("unexpected preview %d %s", w.Code, w.Body.String())
	}
}

func TestAgreementHandler_CRUD(t *testing.T) {
	t.Run("create requires content", func(t *testing.T) {
		r, _ := newAgreementRouter(t)
		w := perform(r, http.MethodPost, "/v1/agreements", `{"name":"Standard"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		r, uc := newAgreementRouter(t)
		a := entities.Agreement{ID: "AGR001", Name: "Standard", TemplateContent: "{{CLIENT_NAME}}"}
		uc.EXPECT().Create(gomock.Any(), entities.Agreement{Name: "Standard", TemplateContent: "{{CLIENT_NAME}}"}).Return(a, nil)
		uc.EXPECT().Update(gomock.Any(), entities.Agreement{ID: "AGR001", Name: "Standard", TemplateContent: "{{PROJECT_NAME}}"}).Return(a, nil)
		uc.EXPECT().GetByID(gomock.Any(), "AGR001").Return(a, nil)
		uc.EXPECT().List(gomock.Any()).Return([]entities.Agreement{a}, nil)
		uc.EXPECT().Delete(gomock.Any(), "AGR001").Return(nil)

		if w := perform(r, http.MethodPost, "/v1/agreements", `{"name":"Standard","templateContent":"{{CLIENT_NAME}}"}`); w.Code != http.StatusCreated {
			t.Fatalf("create: expected 201, got %d", w.Code)
		}
		if w := perform(r, http.MethodPut, "/v1/agreements/AGR001", `{"name":"Standard","templateContent":"{{PROJECT_NAME}}"}`); w.Code != http.StatusOK {
			t.Fatalf("update: expected 200, got %d", w.Code)
		}
		if w := perform(r, http.MethodGet, "/v1/agreements/AGR001", ""); w.Code != http.StatusOK {
			t.Fatalf("get: expected 200, got %d", w.Code)
		}
		if w := perform(r, http.MethodGet, "/v1/agreements", ""); w.Code != http.StatusOK {
			t.Fatalf("list: expected 200, got %d", w.Code)
		}
		if w := perform(r, http.MethodDelete, "/v1/agreements/AGR001", ""); w.Code != http.StatusNoContent {
			t.Fatalf("delete: expected 204, got %d", w.Code)
		}
	})
}
