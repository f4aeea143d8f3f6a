package appointments

import (
	"context"
	"fmt"
	"hospicare-service/internal/app/models"
	"hospicare-service/internal/pkg/constvars"
	"hospicare-service/internal/pkg/dto/requests"
	"hospicare-service/internal/pkg/exceptions"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeAppointmentStore struct {
	mu              sync.Mutex
	appointments    map[string]*models.Appointment
	failStatusWrite bool
}

func newFakeAppointmentStore(appointments ...*models.Appointment) *fakeAppointmentStore {
	store := &fakeAppointmentStore{appointments: make(map[string]*models.Appointment)}
	for _, appointment := range appointments {
		store.appointments[appointment.ID] = appointment
	}
	return store
}

func (s *fakeAppointmentStore) Insert(ctx context.Context, appointment *models.Appointment) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := fmt.Sprintf("appointment-%d", len(s.appointments)+1)
	appointment.ID = id
	s.appointments[id] = appointment
	return id, nil
}

func (s *fakeAppointmentStore) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	appointment, ok := s.appointments[appointmentID]
	if !ok {
		return nil, nil
	}
	copied := *appointment
	return &copied, nil
}

func (s *fakeAppointmentStore) FindAll(ctx context.Context, queryParams *requests.QueryParams) ([]models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	appointments := make([]models.Appointment, 0, len(s.appointments))
	for _, appointment := range s.appointments {
		appointments = append(appointments, *appointment)
	}
	return appointments, nil
}

func (s *fakeAppointmentStore) UpdateStatus(ctx context.Context, appointmentID string, status models.AppointmentStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failStatusWrite {
		return fmt.Errorf("write failed")
	}
	s.appointments[appointmentID].Status = status
	return nil
}

func (s *fakeAppointmentStore) UpdateStatusAndRoom(ctx context.Context, appointmentID string, status models.AppointmentStatus, room string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failStatusWrite {
		return fmt.Errorf("write failed")
	}
	s.appointments[appointmentID].Status = status
	s.appointments[appointmentID].Room = room
	return nil
}

type fakeQueueStore struct {
	mu      sync.Mutex
	entries []models.QueueEntry
	nextID  int
}

func (s *fakeQueueStore) Insert(ctx context.Context, entry *models.QueueEntry) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	entry.ID = fmt.Sprintf("entry-%d", s.nextID)
	s.entries = append(s.entries, *entry)
	return entry.ID, nil
}

func (s *fakeQueueStore) Delete(ctx context.Context, entryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, entry := range s.entries {
		if entry.ID == entryID {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("entry %s not found", entryID)
}

func (s *fakeQueueStore) UpdateStatusByAppointment(ctx context.Context, appointmentID string, status models.QueueEntryStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.entries {
		if s.entries[i].AppointmentID == appointmentID {
			s.entries[i].Status = status
		}
	}
	return nil
}

func (s *fakeQueueStore) CountByRoomAndDate(ctx context.Context, room, date string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, entry := range s.entries {
		if entry.Room == room && entry.Date == date {
			count++
		}
	}
	return count, nil
}

func (s *fakeQueueStore) FindByRoomAndDate(ctx context.Context, room, date string) ([]models.QueueEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var entries []models.QueueEntry
	for _, entry := range s.entries {
		if entry.Room == room && entry.Date == date {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

type fakePatientStore struct{}

func (s *fakePatientStore) Insert(ctx context.Context, patient *models.PatientProfile) (string, error) {
	return "", nil
}

func (s *fakePatientStore) FindByID(ctx context.Context, patientID string) (*models.PatientProfile, error) {
	return nil, nil
}

func (s *fakePatientStore) FindByIdentityNumber(ctx context.Context, identityNumber string) (*models.PatientProfile, error) {
	return nil, nil
}

func (s *fakePatientStore) FindAll(ctx context.Context, queryParams *requests.QueryParams) ([]models.PatientProfile, error) {
	return nil, nil
}

// fakeLocker grants at most one holder per key, like the redis SET NX lock.
type fakeLocker struct {
	mu     sync.Mutex
	held   map[string]string
	nextID int
}

func newFakeLocker() *fakeLocker {
	return &fakeLocker{held: make(map[string]string)}
}

func (l *fakeLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, taken := l.held[key]; taken {
		return false, "", nil
	}
	l.nextID++
	value := fmt.Sprintf("lock-%d", l.nextID)
	l.held[key] = value
	return true, value, nil
}

func (l *fakeLocker) Unlock(ctx context.Context, key, lockValue string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[key] == lockValue {
		delete(l.held, key)
	}
	return nil
}

func newAppointmentFixture(id string, status models.AppointmentStatus) *models.Appointment {
	return &models.Appointment{
		ID:               id,
		PatientProfileID: "patient-1",
		DoctorID:         "doctor-1",
		DepartmentID:     "department-1",
		ScheduledAt:      time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC),
		Type:             models.AppointmentTypeOffline,
		Status:           status,
	}
}

func TestAppointmentUsecase_Transition(t *testing.T) {
	t.Run("rejects a transition the lifecycle does not allow", func(t *testing.T) {
		store := newFakeAppointmentStore(newAppointmentFixture("appointment-1", models.AppointmentPendingConfirmation))
		usecase := &appointmentUsecase{
			AppointmentRepository: store,
			PatientRepository:     &fakePatientStore{},
			Log:                   zap.NewNop(),
		}

		appointment, err := usecase.Transition(context.Background(), "appointment-1", models.AppointmentCompleted)

		assert.Nil(t, appointment)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, models.AppointmentPendingConfirmation, store.appointments["appointment-1"].Status)
	})

	t.Run("rejects an unknown target status", func(t *testing.T) {
		store := newFakeAppointmentStore(newAppointmentFixture("appointment-1", models.AppointmentPendingConfirmation))
		usecase := &appointmentUsecase{
			AppointmentRepository: store,
			PatientRepository:     &fakePatientStore{},
			Log:                   zap.NewNop(),
		}

		appointment, err := usecase.Transition(context.Background(), "appointment-1", models.AppointmentStatus("archived"))

		assert.Nil(t, appointment)
		assert.Error(t, err)
	})

	t.Run("waiting for doctor is never reachable via a plain transition", func(t *testing.T) {
		store := newFakeAppointmentStore(newAppointmentFixture("appointment-1", models.AppointmentConfirmed))
		usecase := &appointmentUsecase{
			AppointmentRepository: store,
			PatientRepository:     &fakePatientStore{},
			Log:                   zap.NewNop(),
		}

		appointment, err := usecase.Transition(context.Background(), "appointment-1", models.AppointmentWaitingForDoctor)

		assert.Nil(t, appointment)
		assert.Error(t, err)
		assert.Equal(t, models.AppointmentConfirmed, store.appointments["appointment-1"].Status)
	})

	t.Run("applies an allowed transition", func(t *testing.T) {
		store := newFakeAppointmentStore(newAppointmentFixture("appointment-1", models.AppointmentPendingCancel))
		usecase := &appointmentUsecase{
			AppointmentRepository: store,
			PatientRepository:     &fakePatientStore{},
			Log:                   zap.NewNop(),
		}

		appointment, err := usecase.Transition(context.Background(), "appointment-1", models.AppointmentCanceled)

		assert.NoError(t, err)
		assert.Equal(t, models.AppointmentCanceled, appointment.Status)
		assert.Equal(t, models.AppointmentCanceled, store.appointments["appointment-1"].Status)
	})

	t.Run("starting the visit marks the queue entry served", func(t *testing.T) {
		store := newFakeAppointmentStore(newAppointmentFixture("appointment-1", models.AppointmentWaitingForDoctor))
		queueStore := &fakeQueueStore{entries: []models.QueueEntry{
			{ID: "entry-1", AppointmentID: "appointment-1", Position: 1, Room: "101", Status: models.QueueEntryQueued},
		}}
		usecase := &appointmentUsecase{
			AppointmentRepository: store,
			QueueRepository:       queueStore,
			PatientRepository:     &fakePatientStore{},
			Log:                   zap.NewNop(),
		}

		appointment, err := usecase.Transition(context.Background(), "appointment-1", models.AppointmentInProgress)

		assert.NoError(t, err)
		assert.Equal(t, models.AppointmentInProgress, appointment.Status)
		assert.Equal(t, models.QueueEntryServed, queueStore.entries[0].Status)
		assert.Equal(t, 1, queueStore.entries[0].Position)
	})

	t.Run("returns not found for a missing appointment", func(t *testing.T) {
		store := newFakeAppointmentStore()
		usecase := &appointmentUsecase{
			AppointmentRepository: store,
			PatientRepository:     &fakePatientStore{},
			Log:                   zap.NewNop(),
		}

		appointment, err := usecase.Transition(context.Background(), "missing", models.AppointmentConfirmed)

		assert.Nil(t, appointment)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestAppointmentUsecase_PushToQueue(t *testing.T) {
	t.Run("assigns unique positions under concurrent pushes", func(t *testing.T) {
		const pushers = 5

		fixtures := make([]*models.Appointment, 0, pushers)
		for i := 1; i <= pushers; i++ {
			fixtures = append(fixtures, newAppointmentFixture(fmt.Sprintf("appointment-%d", i), models.AppointmentConfirmed))
		}
		store := newFakeAppointmentStore(fixtures...)
		queueStore := &fakeQueueStore{}
		usecase := &appointmentUsecase{
			AppointmentRepository: store,
			QueueRepository:       queueStore,
			PatientRepository:     &fakePatientStore{},
			LockService:           newFakeLocker(),
			Log:                   zap.NewNop(),
		}

		positions := make(chan int, pushers)
		var wg sync.WaitGroup
		for i := 1; i <= pushers; i++ {
			wg.Add(1)
			go func(appointmentID string) {
				defer wg.Done()
				response, err := usecase.PushToQueue(context.Background(), appointmentID, &requests.PushToQueueRequest{Room: "101"})
				assert.NoError(t, err)
				if response != nil {
					positions <- response.QueueEntry.Position
				}
			}(fmt.Sprintf("appointment-%d", i))
		}
		wg.Wait()
		close(positions)

		var got []int
		for position := range positions {
			got = append(got, position)
		}
		sort.Ints(got)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, got)

		for i := 1; i <= pushers; i++ {
			appointment := store.appointments[fmt.Sprintf("appointment-%d", i)]
			assert.Equal(t, models.AppointmentWaitingForDoctor, appointment.Status)
			assert.Equal(t, "101", appointment.Room)
		}
	})

	t.Run("removes the queue entry when the status write fails", func(t *testing.T) {
		store := newFakeAppointmentStore(newAppointmentFixture("appointment-1", models.AppointmentConfirmed))
		store.failStatusWrite = true
		queueStore := &fakeQueueStore{}
		usecase := &appointmentUsecase{
			AppointmentRepository: store,
			QueueRepository:       queueStore,
			PatientRepository:     &fakePatientStore{},
			LockService:           newFakeLocker(),
			Log:                   zap.NewNop(),
		}

		response, err := usecase.PushToQueue(context.Background(), "appointment-1", &requests.PushToQueueRequest{Room: "101"})

		assert.Nil(t, response)
		assert.Error(t, err)
		assert.Empty(t, queueStore.entries)
		assert.Equal(t, models.AppointmentConfirmed, store.appointments["appointment-1"].Status)
	})

	t.Run("rejects an appointment that is not confirmed", func(t *testing.T) {
		store := newFakeAppointmentStore(newAppointmentFixture("appointment-1", models.AppointmentPendingConfirmation))
		queueStore := &fakeQueueStore{}
		usecase := &appointmentUsecase{
			AppointmentRepository: store,
			QueueRepository:       queueStore,
			PatientRepository:     &fakePatientStore{},
			LockService:           newFakeLocker(),
			Log:                   zap.NewNop(),
		}

		response, err := usecase.PushToQueue(context.Background(), "appointment-1", &requests.PushToQueueRequest{Room: "101"})

		assert.Nil(t, response)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Empty(t, queueStore.entries)
	})

	t.Run("rejects an appointment without an assigned doctor", func(t *testing.T) {
		fixture := newAppointmentFixture("appointment-1", models.AppointmentConfirmed)
		fixture.DoctorID = ""
		store := newFakeAppointmentStore(fixture)
		usecase := &appointmentUsecase{
			AppointmentRepository: store,
			QueueRepository:       &fakeQueueStore{},
			PatientRepository:     &fakePatientStore{},
			LockService:           newFakeLocker(),
			Log:                   zap.NewNop(),
		}

		response, err := usecase.PushToQueue(context.Background(), "appointment-1", &requests.PushToQueueRequest{Room: "101"})

		assert.Nil(t, response)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.ErrClientAppointmentMissingDoctor, customErr.ClientMessage)
	})
}
