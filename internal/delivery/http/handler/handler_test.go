package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"neuroclinic/config"
	"neuroclinic/internal/delivery/dto"
	"neuroclinic/internal/delivery/http/middleware"
	"neuroclinic/internal/domain/entity"
	"neuroclinic/internal/domain/repository"
	"neuroclinic/internal/form"
	"neuroclinic/internal/usecase"
	"neuroclinic/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEntityUsecase struct {
	listReq   *dto.ListRequest
	createReq *dto.CreateRecordRequest
	changeReq *dto.FieldChangeRequest
	list      *dto.ListResponse
	created   *dto.SubmissionResponse
	err       error

	deactivated uuid.UUID
	paid        *dto.MarkPaidRequest
}

func (s *stubEntityUsecase) Entity() entity.Type { return entity.TypePatient }

func (s *stubEntityUsecase) List(_ context.Context, req *dto.ListRequest) (*dto.ListResponse, error) {
	s.listReq = req
	return s.list, s.err
}

func (s *stubEntityUsecase) Create(_ context.Context, req *dto.CreateRecordRequest) (*dto.SubmissionResponse, error) {
	s.createReq = req
	return s.created, s.err
}

func (s *stubEntityUsecase) Form(context.Context) (*dto.FormResponse, error) {
	return &dto.FormResponse{Entity: "patients"}, s.err
}

func (s *stubEntityUsecase) ChangeField(_ context.Context, req *dto.FieldChangeRequest) (*dto.FieldChangeResponse, error) {
	s.changeReq = req
	return &dto.FieldChangeResponse{Values: req.Values}, s.err
}

func (s *stubEntityUsecase) Deactivate(_ context.Context, id uuid.UUID) error {
	s.deactivated = id
	return s.err
}

func (s *stubEntityUsecase) MarkPaid(_ context.Context, id uuid.UUID, req *dto.MarkPaidRequest) error {
	s.paid = req
	return s.err
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestEntityHandlerListParsesQuery(t *testing.T) {
	uc := &stubEntityUsecase{list: &dto.ListResponse{Items: []string{}, Total: 0}}
	h := NewEntityHandler(uc, validator.NewValidator())

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/appointments?search=ana&status=confirmed", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.listReq)
	assert.Equal(t, "ana", uc.listReq.Search)
	assert.Equal(t, map[string]string{"status": "confirmed"}, uc.listReq.Filters)

	body := decode(t, rec)
	assert.True(t, body.Success)
	assert.JSONEq(t, `{"items":[],"total":0,"filtered":0}`, string(body.Data))
}

func TestEntityHandlerListErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"read failure", &repository.StoreError{Class: repository.ClassTransport, Message: "connection refused"}, http.StatusServiceUnavailable},
		{"permission", &repository.StoreError{Class: repository.ClassPermission, Message: "denied"}, http.StatusForbidden},
		{"invalid filter", usecase.ErrInvalidFilter, http.StatusBadRequest},
		{"unexpected", context.DeadlineExceeded, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewEntityHandler(&stubEntityUsecase{err: tt.err}, validator.NewValidator())
			rec := httptest.NewRecorder()
			h.List(rec, httptest.NewRequest(http.MethodGet, "/patients", nil))

			assert.Equal(t, tt.want, rec.Code)
			assert.False(t, decode(t, rec).Success)
		})
	}
}

func TestEntityHandlerCreate(t *testing.T) {
	uc := &stubEntityUsecase{created: &dto.SubmissionResponse{
		Notification: dto.NotificationResponse{Title: "Paciente cadastrado com sucesso!", Variant: "default"},
	}}
	h := NewEntityHandler(uc, validator.NewValidator())

	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/patients", strings.NewReader(`{"values":{"full_name":"Ana"}}`)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Ana", uc.createReq.Values["full_name"])
	assert.Equal(t, "Paciente cadastrado com sucesso!", decode(t, rec).Message)
}

func TestEntityHandlerCreateRejectsBadBodies(t *testing.T) {
	h := NewEntityHandler(&stubEntityUsecase{}, validator.NewValidator())

	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/patients", strings.NewReader(`{`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/patients", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Validation failed", decode(t, rec).Message)
}

func TestEntityHandlerCreateErrors(t *testing.T) {
	identityID := uuid.New()
	failure := form.Notification{Title: "Erro ao cadastrar profissional", Description: "duplicate key", Variant: form.VariantDestructive}

	tests := []struct {
		name      string
		err       error
		want      int
		wantError string
	}{
		{
			name:      "validation",
			err:       &form.ValidationError{Fields: map[string]string{"full_name": "full_name is required"}},
			want:      http.StatusBadRequest,
			wantError: `{"full_name":"full_name is required"}`,
		},
		{
			name: "in flight",
			err:  form.ErrSubmissionInFlight,
			want: http.StatusConflict,
		},
		{
			name: "constraint",
			err: &usecase.SubmissionError{
				Notification: failure,
				Err:          &repository.StoreError{Class: repository.ClassConstraint, Message: "duplicate key"},
			},
			want:      http.StatusConflict,
			wantError: `{"title":"Erro ao cadastrar profissional","description":"duplicate key","variant":"destructive"}`,
		},
		{
			name: "partial failure",
			err: &usecase.SubmissionError{
				Notification: failure,
				Err: &usecase.PartialFailureError{
					IdentityID: identityID,
					Cause:      &repository.StoreError{Class: repository.ClassConstraint, Message: "duplicate key"},
					Cleanup:    usecase.CleanupSucceeded,
				},
			},
			want: http.StatusBadGateway,
			wantError: `{"notification":{"title":"Erro ao cadastrar profissional","description":"duplicate key","variant":"destructive"},` +
				`"identity_id":"` + identityID.String() + `","cleanup":"succeeded"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewEntityHandler(&stubEntityUsecase{err: tt.err}, validator.NewValidator())
			rec := httptest.NewRecorder()
			h.Create(rec, httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"values":{}}`)))

			assert.Equal(t, tt.want, rec.Code)
			if tt.wantError != "" {
				assert.JSONEq(t, tt.wantError, string(decode(t, rec).Error))
			}
		})
	}
}

func TestPatientHandlerDeactivate(t *testing.T) {
	uc := &stubEntityUsecase{}
	h := NewPatientHandler(uc, validator.NewValidator())
	id := uuid.New()

	req := mux.SetURLVars(httptest.NewRequest(http.MethodPost, "/", nil), map[string]string{"id": id.String()})
	rec := httptest.NewRecorder()
	h.Deactivate(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, uc.deactivated)

	req = mux.SetURLVars(httptest.NewRequest(http.MethodPost, "/", nil), map[string]string{"id": "nope"})
	rec = httptest.NewRecorder()
	h.Deactivate(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	uc.err = usecase.ErrPatientNotFound
	req = mux.SetURLVars(httptest.NewRequest(http.MethodPost, "/", nil), map[string]string{"id": id.String()})
	rec = httptest.NewRecorder()
	h.Deactivate(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAccountHandlerMarkPaid(t *testing.T) {
	uc := &stubEntityUsecase{}
	h := NewAccountHandler(uc, validator.NewValidator())
	vars := map[string]string{"id": uuid.NewString()}

	rec := httptest.NewRecorder()
	h.MarkPaid(rec, mux.SetURLVars(httptest.NewRequest(http.MethodPost, "/", nil), vars))
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.paid)

	rec = httptest.NewRecorder()
	h.MarkPaid(rec, mux.SetURLVars(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"payment_method":"cheque"}`)), vars))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.MarkPaid(rec, mux.SetURLVars(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"payment_date":"2024-13-01"}`)), vars))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFormHandler(t *testing.T) {
	uc := &stubEntityUsecase{}
	h := NewFormHandler(usecase.Registry{"patients": uc}, validator.NewValidator())

	rec := httptest.NewRecorder()
	h.GetForm(rec, mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"entity": "patients"}))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.GetForm(rec, mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"entity": "invoices"}))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	body := strings.NewReader(`{"values":{"price":"10"},"field":"specialty_id","value":"x"}`)
	h.ChangeField(rec, mux.SetURLVars(httptest.NewRequest(http.MethodPost, "/", body), map[string]string{"entity": "patients"}))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "specialty_id", uc.changeReq.Field)

	uc.err = form.ErrUnknownField
	rec = httptest.NewRecorder()
	body = strings.NewReader(`{"field":"colour","value":"red"}`)
	h.ChangeField(rec, mux.SetURLVars(httptest.NewRequest(http.MethodPost, "/", body), map[string]string{"entity": "patients"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessionHandlerReportsMode(t *testing.T) {
	h := NewSessionHandler(config.ModeDevelopment)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req = req.WithContext(middleware.WithPrincipal(req.Context(), entity.DeveloperPrincipal))
	rec := httptest.NewRecorder()
	h.GetCurrentUser(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var session dto.SessionResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &session))
	assert.Equal(t, "development", session.Mode)
	assert.Equal(t, entity.DeveloperPrincipal.ID, session.UserID)
	assert.Equal(t, "admin", session.Role)

	rec = httptest.NewRecorder()
	h.GetCurrentUser(rec, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
