package handler

import (
	"context"

	"medical-appointments-api/internal/delivery/dto"

	"github.com/stretchr/testify/mock"
)

type mockAppointmentUsecase struct {
	mock.Mock
}

func (m *mockAppointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*dto.AppointmentResponse)
	return res, args.Error(1)
}

func (m *mockAppointmentUsecase) GetAppointment(ctx context.Context, id int64) (*dto.AppointmentResponse, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*dto.AppointmentResponse)
	return res, args.Error(1)
}

func (m *mockAppointmentUsecase) ListAppointments(ctx context.Context, query dto.PageQuery) ([]dto.AppointmentResponse, error) {
	args := m.Called(ctx, query)
	res, _ := args.Get(0).([]dto.AppointmentResponse)
	return res, args.Error(1)
}

func (m *mockAppointmentUsecase) UpdateAppointment(ctx context.Context, id int64, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	args := m.Called(ctx, id, req)
	res, _ := args.Get(0).(*dto.AppointmentResponse)
	return res, args.Error(1)
}

func (m *mockAppointmentUsecase) UpdateAppointmentStatus(ctx context.Context, id int64, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentStatusResponse, error) {
	args := m.Called(ctx, id, req)
	res, _ := args.Get(0).(*dto.AppointmentStatusResponse)
	return res, args.Error(1)
}

func (m *mockAppointmentUsecase) CancelAppointment(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockPatientUsecase struct {
	mock.Mock
}

func (m *mockPatientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*dto.PatientResponse)
	return res, args.Error(1)
}

func (m *mockPatientUsecase) GetPatient(ctx context.Context, id int64) (*dto.PatientResponse, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*dto.PatientResponse)
	return res, args.Error(1)
}

func (m *mockPatientUsecase) ListPatients(ctx context.Context, query dto.PageQuery) ([]dto.PatientResponse, error) {
	args := m.Called(ctx, query)
	res, _ := args.Get(0).([]dto.PatientResponse)
	return res, args.Error(1)
}

func (m *mockPatientUsecase) UpdatePatient(ctx context.Context, id int64, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	args := m.Called(ctx, id, req)
	res, _ := args.Get(0).(*dto.PatientResponse)
	return res, args.Error(1)
}

func (m *mockPatientUsecase) DeletePatient(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockDoctorUsecase struct {
	mock.Mock
}

func (m *mockDoctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*dto.DoctorResponse)
	return res, args.Error(1)
}

func (m *mockDoctorUsecase) GetDoctor(ctx context.Context, id int64) (*dto.DoctorResponse, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*dto.DoctorResponse)
	return res, args.Error(1)
}

func (m *mockDoctorUsecase) ListDoctors(ctx context.Context, query dto.PageQuery, specialtyID *int64) ([]dto.DoctorResponse, error) {
	args := m.Called(ctx, query, specialtyID)
	res, _ := args.Get(0).([]dto.DoctorResponse)
	return res, args.Error(1)
}

func (m *mockDoctorUsecase) UpdateDoctor(ctx context.Context, id int64, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	args := m.Called(ctx, id, req)
	res, _ := args.Get(0).(*dto.DoctorResponse)
	return res, args.Error(1)
}

func (m *mockDoctorUsecase) DeleteDoctor(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockDoctorUsecase) ListSpecialties(ctx context.Context) ([]dto.SpecialtyResponse, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).([]dto.SpecialtyResponse)
	return res, args.Error(1)
}

type mockInvoiceUsecase struct {
	mock.Mock
}

func (m *mockInvoiceUsecase) CreateInvoice(ctx context.Context, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*dto.InvoiceResponse)
	return res, args.Error(1)
}

func (m *mockInvoiceUsecase) GetInvoice(ctx context.Context, id int64) (*dto.InvoiceResponse, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*dto.InvoiceResponse)
	return res, args.Error(1)
}

func (m *mockInvoiceUsecase) ListInvoices(ctx context.Context, query dto.PageQuery) ([]dto.InvoiceResponse, error) {
	args := m.Called(ctx, query)
	res, _ := args.Get(0).([]dto.InvoiceResponse)
	return res, args.Error(1)
}

func (m *mockInvoiceUsecase) UpdateInvoiceStatus(ctx context.Context, id int64, req *dto.UpdateInvoiceStatusRequest) (*dto.InvoiceStatusResponse, error) {
	args := m.Called(ctx, id, req)
	res, _ := args.Get(0).(*dto.InvoiceStatusResponse)
	return res, args.Error(1)
}

func (m *mockInvoiceUsecase) ListPaymentMethods(ctx context.Context) ([]dto.PaymentMethodResponse, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).([]dto.PaymentMethodResponse)
	return res, args.Error(1)
}
