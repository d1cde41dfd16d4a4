package usecase

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"medical-appointments-api/config"
	"medical-appointments-api/internal/domain/entity"
	"medical-appointments-api/internal/domain/repository"
	"medical-appointments-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// memStore is an in-memory stand-in for the database. The foreign-key
// cascades of the schema are reproduced in the delete methods.
type memStore struct {
	nextID       int64
	patients     map[int64]entity.Patient
	doctors      map[int64]entity.Doctor
	specialties  map[int64]entity.Specialty
	schedules    map[int64]entity.Schedule
	appointments map[int64]entity.Appointment
	records      map[int64]entity.ClinicalRecord
	invoices     map[int64]entity.Invoice
	methods      map[int64]entity.PaymentMethod
	accounts     map[int64]entity.Account
	audits       []entity.AuditLog

	failAccountCreate error
}

func newMemStore() *memStore {
	return &memStore{
		patients:     map[int64]entity.Patient{},
		doctors:      map[int64]entity.Doctor{},
		specialties:  map[int64]entity.Specialty{},
		schedules:    map[int64]entity.Schedule{},
		appointments: map[int64]entity.Appointment{},
		records:      map[int64]entity.ClinicalRecord{},
		invoices:     map[int64]entity.Invoice{},
		methods:      map[int64]entity.PaymentMethod{},
		accounts:     map[int64]entity.Account{},
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *memStore) snapshot() *memStore {
	return &memStore{
		nextID:            s.nextID,
		patients:          copyMap(s.patients),
		doctors:           copyMap(s.doctors),
		specialties:       copyMap(s.specialties),
		schedules:         copyMap(s.schedules),
		appointments:      copyMap(s.appointments),
		records:           copyMap(s.records),
		invoices:          copyMap(s.invoices),
		methods:           copyMap(s.methods),
		accounts:          copyMap(s.accounts),
		audits:            append([]entity.AuditLog(nil), s.audits...),
		failAccountCreate: s.failAccountCreate,
	}
}

func (s *memStore) restore(snap *memStore) {
	*s = *snap
}

func (s *memStore) deleteAppointment(id int64) {
	delete(s.appointments, id)
	for invoiceID, invoice := range s.invoices {
		if invoice.AppointmentID == id {
			delete(s.invoices, invoiceID)
		}
	}
	for recordID, record := range s.records {
		if record.AppointmentID != nil && *record.AppointmentID == id {
			record.AppointmentID = nil
			s.records[recordID] = record
		}
	}
}

// fakeTransactor rolls the store back when fn fails.
type fakeTransactor struct {
	store *memStore
}

func (t *fakeTransactor) DB(ctx context.Context) *gorm.DB {
	return nil
}

func (t *fakeTransactor) WithinTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	snap := t.store.snapshot()
	if err := fn(nil); err != nil {
		t.store.restore(snap)
		return err
	}
	return nil
}

type fakePatientRepo struct{ s *memStore }

func (r *fakePatientRepo) Create(db *gorm.DB, patient *entity.Patient) error {
	patient.ID = r.s.id()
	r.s.patients[patient.ID] = *patient
	return nil
}

func (r *fakePatientRepo) FindByID(db *gorm.DB, id int64) (*entity.Patient, error) {
	if p, ok := r.s.patients[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *fakePatientRepo) FindByDocument(db *gorm.DB, documentID string) (*entity.Patient, error) {
	for _, p := range r.s.patients {
		if p.DocumentID == documentID {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *fakePatientRepo) FindByEmail(db *gorm.DB, email string) (*entity.Patient, error) {
	for _, p := range r.s.patients {
		if p.Email == email {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *fakePatientRepo) FindAll(db *gorm.DB, page entity.Page) ([]entity.Patient, error) {
	var all []entity.Patient
	for _, p := range r.s.patients {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return window(all, page), nil
}

func (r *fakePatientRepo) Update(db *gorm.DB, patient *entity.Patient) error {
	r.s.patients[patient.ID] = *patient
	return nil
}

func (r *fakePatientRepo) Delete(db *gorm.DB, id int64) (int64, error) {
	if _, ok := r.s.patients[id]; !ok {
		return 0, nil
	}
	delete(r.s.patients, id)
	for appointmentID, a := range r.s.appointments {
		if a.PatientID == id {
			r.s.deleteAppointment(appointmentID)
		}
	}
	for recordID, rec := range r.s.records {
		if rec.PatientID == id {
			delete(r.s.records, recordID)
		}
	}
	return 1, nil
}

type fakeDoctorRepo struct{ s *memStore }

func (r *fakeDoctorRepo) withSpecialty(d entity.Doctor) *entity.Doctor {
	if sp, ok := r.s.specialties[d.SpecialtyID]; ok {
		d.Specialty = &sp
	}
	return &d
}

func (r *fakeDoctorRepo) Create(db *gorm.DB, doctor *entity.Doctor) error {
	doctor.ID = r.s.id()
	stored := *doctor
	stored.Specialty = nil
	r.s.doctors[doctor.ID] = stored
	return nil
}

func (r *fakeDoctorRepo) FindByID(db *gorm.DB, id int64) (*entity.Doctor, error) {
	if d, ok := r.s.doctors[id]; ok {
		return r.withSpecialty(d), nil
	}
	return nil, nil
}

func (r *fakeDoctorRepo) LockByID(db *gorm.DB, id int64) (*entity.Doctor, error) {
	return r.FindByID(db, id)
}

func (r *fakeDoctorRepo) find(match func(entity.Doctor) bool) (*entity.Doctor, error) {
	for _, d := range r.s.doctors {
		if match(d) {
			return r.withSpecialty(d), nil
		}
	}
	return nil, nil
}

func (r *fakeDoctorRepo) FindByDocument(db *gorm.DB, documentID string) (*entity.Doctor, error) {
	return r.find(func(d entity.Doctor) bool { return d.DocumentID == documentID })
}

func (r *fakeDoctorRepo) FindByEmail(db *gorm.DB, email string) (*entity.Doctor, error) {
	return r.find(func(d entity.Doctor) bool { return d.Email == email })
}

func (r *fakeDoctorRepo) FindByLicense(db *gorm.DB, license string) (*entity.Doctor, error) {
	return r.find(func(d entity.Doctor) bool { return d.License == license })
}

func (r *fakeDoctorRepo) FindAll(db *gorm.DB, filter entity.DoctorFilter) ([]entity.Doctor, error) {
	var all []entity.Doctor
	for _, d := range r.s.doctors {
		if filter.SpecialtyID != nil && (d.SpecialtyID != *filter.SpecialtyID || !d.Active) {
			continue
		}
		all = append(all, *r.withSpecialty(d))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return window(all, filter.Page), nil
}

func (r *fakeDoctorRepo) Update(db *gorm.DB, doctor *entity.Doctor) error {
	stored := *doctor
	stored.Specialty = nil
	r.s.doctors[doctor.ID] = stored
	return nil
}

func (r *fakeDoctorRepo) Delete(db *gorm.DB, id int64) (int64, error) {
	if _, ok := r.s.doctors[id]; !ok {
		return 0, nil
	}
	delete(r.s.doctors, id)
	for scheduleID, sc := range r.s.schedules {
		if sc.DoctorID == id {
			delete(r.s.schedules, scheduleID)
		}
	}
	for appointmentID, a := range r.s.appointments {
		if a.DoctorID == id {
			r.s.deleteAppointment(appointmentID)
		}
	}
	for recordID, rec := range r.s.records {
		if rec.DoctorID == id {
			delete(r.s.records, recordID)
		}
	}
	return 1, nil
}

type fakeSpecialtyRepo struct{ s *memStore }

func (r *fakeSpecialtyRepo) FindByID(db *gorm.DB, id int64) (*entity.Specialty, error) {
	if sp, ok := r.s.specialties[id]; ok {
		return &sp, nil
	}
	return nil, nil
}

func (r *fakeSpecialtyRepo) FindAll(db *gorm.DB) ([]entity.Specialty, error) {
	var all []entity.Specialty
	for _, sp := range r.s.specialties {
		all = append(all, sp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}

type fakeScheduleRepo struct{ s *memStore }

func (r *fakeScheduleRepo) Create(db *gorm.DB, schedule *entity.Schedule) error {
	schedule.ID = r.s.id()
	r.s.schedules[schedule.ID] = *schedule
	return nil
}

func (r *fakeScheduleRepo) FindByID(db *gorm.DB, id int64) (*entity.Schedule, error) {
	if sc, ok := r.s.schedules[id]; ok {
		return &sc, nil
	}
	return nil, nil
}

func dayIndex(day entity.Weekday) int {
	for i, d := range entity.Weekdays {
		if d == day {
			return i
		}
	}
	return len(entity.Weekdays)
}

func (r *fakeScheduleRepo) FindActiveByDoctor(db *gorm.DB, doctorID int64) ([]entity.Schedule, error) {
	var all []entity.Schedule
	for _, sc := range r.s.schedules {
		if sc.DoctorID == doctorID && sc.Active {
			all = append(all, sc)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if di, dj := dayIndex(all[i].Day), dayIndex(all[j].Day); di != dj {
			return di < dj
		}
		return all[i].StartTime < all[j].StartTime
	})
	return all, nil
}

func (r *fakeScheduleRepo) FindActiveByDoctorAndDay(db *gorm.DB, doctorID int64, day entity.Weekday) ([]entity.Schedule, error) {
	all, _ := r.FindActiveByDoctor(db, doctorID)
	var out []entity.Schedule
	for _, sc := range all {
		if sc.Day == day {
			out = append(out, sc)
		}
	}
	return out, nil
}

func (r *fakeScheduleRepo) Update(db *gorm.DB, schedule *entity.Schedule) error {
	r.s.schedules[schedule.ID] = *schedule
	return nil
}

func (r *fakeScheduleRepo) Delete(db *gorm.DB, id int64) (int64, error) {
	if _, ok := r.s.schedules[id]; !ok {
		return 0, nil
	}
	delete(r.s.schedules, id)
	return 1, nil
}

type fakeAppointmentRepo struct{ s *memStore }

func (r *fakeAppointmentRepo) Create(db *gorm.DB, appointment *entity.Appointment) error {
	appointment.ID = r.s.id()
	stored := *appointment
	stored.Patient, stored.Doctor = nil, nil
	r.s.appointments[appointment.ID] = stored
	return nil
}

func (r *fakeAppointmentRepo) FindByID(db *gorm.DB, id int64) (*entity.Appointment, error) {
	a, ok := r.s.appointments[id]
	if !ok {
		return nil, nil
	}
	if p, ok := r.s.patients[a.PatientID]; ok {
		a.Patient = &p
	}
	if d, ok := r.s.doctors[a.DoctorID]; ok {
		a.Doctor = &d
	}
	return &a, nil
}

func (r *fakeAppointmentRepo) FindAll(db *gorm.DB, page entity.Page) ([]entity.Appointment, error) {
	var all []entity.Appointment
	for id := range r.s.appointments {
		a, _ := r.FindByID(db, id)
		all = append(all, *a)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	return window(all, page), nil
}

func (r *fakeAppointmentRepo) FindHoldingSlot(db *gorm.DB, doctorID int64, date time.Time, clock string) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range r.s.appointments {
		if a.HoldsSlot() && a.SameSlot(doctorID, date, clock) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) Update(db *gorm.DB, appointment *entity.Appointment) error {
	stored := *appointment
	stored.Patient, stored.Doctor = nil, nil
	r.s.appointments[appointment.ID] = stored
	return nil
}

func (r *fakeAppointmentRepo) UpdateStatus(db *gorm.DB, id int64, status entity.AppointmentStatus) error {
	a := r.s.appointments[id]
	a.Status = status
	r.s.appointments[id] = a
	return nil
}

type fakeRecordRepo struct{ s *memStore }

func (r *fakeRecordRepo) Create(db *gorm.DB, record *entity.ClinicalRecord) error {
	record.ID = r.s.id()
	r.s.records[record.ID] = *record
	return nil
}

func (r *fakeRecordRepo) FindByPatient(db *gorm.DB, patientID int64) ([]entity.ClinicalRecord, error) {
	var out []entity.ClinicalRecord
	for _, rec := range r.s.records {
		if rec.PatientID == patientID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].RecordedAt.Equal(out[j].RecordedAt) {
			return out[i].RecordedAt.After(out[j].RecordedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

type fakeInvoiceRepo struct{ s *memStore }

func (r *fakeInvoiceRepo) Create(db *gorm.DB, invoice *entity.Invoice) error {
	invoice.ID = r.s.id()
	stored := *invoice
	stored.PaymentMethod = nil
	r.s.invoices[invoice.ID] = stored
	return nil
}

func (r *fakeInvoiceRepo) FindByID(db *gorm.DB, id int64) (*entity.Invoice, error) {
	if inv, ok := r.s.invoices[id]; ok {
		if m, ok := r.s.methods[inv.PaymentMethodID]; ok {
			inv.PaymentMethod = &m
		}
		return &inv, nil
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) FindByAppointment(db *gorm.DB, appointmentID int64) (*entity.Invoice, error) {
	for _, inv := range r.s.invoices {
		if inv.AppointmentID == appointmentID {
			return &inv, nil
		}
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) FindAll(db *gorm.DB, page entity.Page) ([]entity.Invoice, error) {
	var all []entity.Invoice
	for id := range r.s.invoices {
		inv, _ := r.FindByID(db, id)
		all = append(all, *inv)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	return window(all, page), nil
}

func (r *fakeInvoiceRepo) UpdateStatus(db *gorm.DB, id int64, status entity.InvoiceStatus) error {
	inv := r.s.invoices[id]
	inv.Status = status
	r.s.invoices[id] = inv
	return nil
}

type fakePaymentMethodRepo struct{ s *memStore }

func (r *fakePaymentMethodRepo) FindByID(db *gorm.DB, id int64) (*entity.PaymentMethod, error) {
	if m, ok := r.s.methods[id]; ok {
		return &m, nil
	}
	return nil, nil
}

func (r *fakePaymentMethodRepo) FindActive(db *gorm.DB) ([]entity.PaymentMethod, error) {
	var out []entity.PaymentMethod
	for _, m := range r.s.methods {
		if m.Active {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeAccountRepo struct{ s *memStore }

func (r *fakeAccountRepo) Create(db *gorm.DB, account *entity.Account) error {
	if r.s.failAccountCreate != nil {
		return r.s.failAccountCreate
	}
	account.ID = r.s.id()
	r.s.accounts[account.ID] = *account
	return nil
}

func (r *fakeAccountRepo) FindByID(db *gorm.DB, id int64) (*entity.Account, error) {
	if a, ok := r.s.accounts[id]; ok {
		return &a, nil
	}
	return nil, nil
}

func (r *fakeAccountRepo) FindByEmail(db *gorm.DB, email string) (*entity.Account, error) {
	for _, a := range r.s.accounts {
		if a.Email == email {
			return &a, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) FindByReference(db *gorm.DB, role entity.Role, referenceID int64) (*entity.Account, error) {
	for _, a := range r.s.accounts {
		if a.Role == role && a.ReferenceID != nil && *a.ReferenceID == referenceID {
			return &a, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) Update(db *gorm.DB, account *entity.Account) error {
	r.s.accounts[account.ID] = *account
	return nil
}

func (r *fakeAccountRepo) DeleteByReference(db *gorm.DB, role entity.Role, referenceID int64) (int64, error) {
	var n int64
	for id, a := range r.s.accounts {
		if a.Role == role && a.ReferenceID != nil && *a.ReferenceID == referenceID {
			delete(r.s.accounts, id)
			n++
		}
	}
	return n, nil
}

type fakeAuditRepo struct{ s *memStore }

func (r *fakeAuditRepo) Create(db *gorm.DB, log *entity.AuditLog) error {
	log.ID = r.s.id()
	r.s.audits = append(r.s.audits, *log)
	return nil
}

func (r *fakeAuditRepo) FindAll(db *gorm.DB, page entity.Page) ([]entity.AuditLog, error) {
	all := append([]entity.AuditLog(nil), r.s.audits...)
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	return window(all, page), nil
}

func (r *fakeAuditRepo) FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error) {
	for _, l := range r.s.audits {
		if l.ID == id {
			return &l, nil
		}
	}
	return nil, nil
}

type fakeSessionStore struct {
	active    map[string]bool
	revokeAll []int64
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{active: map[string]bool{}}
}

func sessionID(accountID int64, tokenID string) string {
	return fmt.Sprintf("%d:%s", accountID, tokenID)
}

func (f *fakeSessionStore) Register(ctx context.Context, accountID int64, tokenID string, ttl time.Duration) error {
	f.active[sessionID(accountID, tokenID)] = true
	return nil
}

func (f *fakeSessionStore) IsActive(ctx context.Context, accountID int64, tokenID string) (bool, error) {
	return f.active[sessionID(accountID, tokenID)], nil
}

func (f *fakeSessionStore) Revoke(ctx context.Context, accountID int64, tokenID string) error {
	delete(f.active, sessionID(accountID, tokenID))
	return nil
}

func (f *fakeSessionStore) RevokeAll(ctx context.Context, accountID int64) error {
	f.revokeAll = append(f.revokeAll, accountID)
	return nil
}

func window[T any](items []T, page entity.Page) []T {
	if page.Offset >= len(items) {
		return []T{}
	}
	end := page.Offset + page.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[page.Offset:end]
}

// testEnv wires every usecase against one memStore.
type testEnv struct {
	store        *memStore
	sessions     *fakeSessionStore
	patients     *patientUsecase
	doctors      *doctorUsecase
	schedules    *scheduleUsecase
	appointments *appointmentUsecase
	records      *clinicalRecordUsecase
	invoices     *invoiceUsecase
	audit        *auditLogUsecase
}

var fixedNow = time.Date(2030, 3, 11, 10, 0, 0, 0, time.UTC) // a Monday

func newTestEnv() *testEnv {
	log := logrus.New()
	log.SetOutput(io.Discard)

	store := newMemStore()
	store.specialties[1] = entity.Specialty{ID: 1, Name: "Medicina General"}
	store.specialties[2] = entity.Specialty{ID: 2, Name: "Cardiología"}
	store.methods[1] = entity.PaymentMethod{ID: 1, Name: "Efectivo", Active: true}
	store.methods[2] = entity.PaymentMethod{ID: 2, Name: "Cheque", Active: false}
	store.nextID = 100

	tx := &fakeTransactor{store: store}
	sessions := newFakeSessionStore()
	pagination := config.PaginationConfig{MaxLimit: 100}

	patientRepo := &fakePatientRepo{s: store}
	doctorRepo := &fakeDoctorRepo{s: store}
	specialtyRepo := &fakeSpecialtyRepo{s: store}
	scheduleRepo := &fakeScheduleRepo{s: store}
	appointmentRepo := &fakeAppointmentRepo{s: store}
	recordRepo := &fakeRecordRepo{s: store}
	invoiceRepo := &fakeInvoiceRepo{s: store}
	methodRepo := &fakePaymentMethodRepo{s: store}
	accountRepo := &fakeAccountRepo{s: store}
	var auditRepo repository.AuditLogRepository = &fakeAuditRepo{s: store}
	auditService := service.NewAuditService(log, auditRepo)

	now := func() time.Time { return fixedNow }

	patients := NewPatientUsecase(log, tx, patientRepo, accountRepo, auditService, sessions, pagination).(*patientUsecase)
	patients.now = now
	patients.hashCost = 4

	doctors := NewDoctorUsecase(log, tx, doctorRepo, specialtyRepo, accountRepo, auditService, sessions, pagination).(*doctorUsecase)
	doctors.hashCost = 4

	appointments := NewAppointmentUsecase(log, tx, appointmentRepo, patientRepo, doctorRepo, auditService,
		config.AppointmentConfig{}, pagination).(*appointmentUsecase)
	appointments.now = now

	records := NewClinicalRecordUsecase(log, tx, recordRepo, patientRepo, doctorRepo, appointmentRepo, auditService).(*clinicalRecordUsecase)
	records.now = now

	invoices := NewInvoiceUsecase(log, tx, invoiceRepo, appointmentRepo, methodRepo, auditService, pagination).(*invoiceUsecase)
	invoices.now = now

	return &testEnv{
		store:        store,
		sessions:     sessions,
		patients:     patients,
		doctors:      doctors,
		schedules:    NewScheduleUsecase(log, tx, scheduleRepo, doctorRepo, auditService).(*scheduleUsecase),
		appointments: appointments,
		records:      records,
		invoices:     invoices,
		audit:        NewAuditLogUsecase(log, tx, auditRepo, pagination).(*auditLogUsecase),
	}
}
