package cancel_appointment

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments"
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments/models"
)

type fakeService struct {
	gotID  int64
	gotReq *models.CancelRequest
	err    error
}

func (f *fakeService) Cancel(_ context.Context, id int64, req *models.CancelRequest) (*models.AppointmentResponse, error) {
	f.gotID = id
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.AppointmentResponse{ID: id, Status: string(domain.StatusCancelled)}, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, id, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/appointments/"+id+"/cancel", bytes.NewBufferString(body))
	req = mux.SetURLVars(req, map[string]string{"appointmentId": id})
	req = req.WithContext(middleware.WithIdentity(req.Context(), domain.Identity{UserID: "client-1", Role: domain.RoleClient}))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Cancel(t *testing.T) {
	t.Run("with reason", func(t *testing.T) {
		svc := &fakeService{}
		rec := serve(NewHandler(svc, noopLogger{}), "7", `{"cancellationReason":"imprevisto"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(7), svc.gotID)
		require.NotNil(t, svc.gotReq.CancellationReason)
		assert.Equal(t, "imprevisto", *svc.gotReq.CancellationReason)
		assert.Equal(t, "client-1", svc.gotReq.Identity.UserID)
	})

	t.Run("without body", func(t *testing.T) {
		svc := &fakeService{}
		rec := serve(NewHandler(svc, noopLogger{}), "7", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, svc.gotReq.CancellationReason)
	})

	t.Run("error mapping", func(t *testing.T) {
		tests := []struct {
			err  error
			want int
		}{
			{appointments.ErrAppointmentNotFound, http.StatusNotFound},
			{appointments.ErrAccessDenied, http.StatusForbidden},
			{appointments.ErrCannotCancel, http.StatusConflict},
			{appointments.ErrInternal, http.StatusServiceUnavailable},
		}
		for _, tt := range tests {
			rec := serve(NewHandler(&fakeService{err: tt.err}, noopLogger{}), "7", "")
			assert.Equal(t, tt.want, rec.Code, tt.err.Error())
		}
	})

	t.Run("bad id", func(t *testing.T) {
		rec := serve(NewHandler(&fakeService{}, noopLogger{}), "abc", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
