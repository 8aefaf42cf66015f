package handler_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"care-info-api/internal/model"
	"care-info-api/internal/store"
)

// fakeStore mimics the Postgres store: unique emails, silent no-op updates
// and deletes of missing ids, and no slot exclusivity.
type fakeStore struct {
	mu           sync.Mutex
	users        map[string]model.User
	doctors      map[string]model.Doctor
	appointments map[string]model.Appointment
	order        []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:        map[string]model.User{},
		doctors:      map[string]model.Doctor{},
		appointments: map[string]model.Appointment{},
	}
}

func (f *fakeStore) Ping(ctx context.Context) error { return nil }

func (f *fakeStore) CreateUser(ctx context.Context, u *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return store.ErrDuplicateEmail
		}
	}
	f.users[u.ID] = *u
	f.order = append(f.order, u.ID)
	return nil
}

func (f *fakeStore) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) UserByID(ctx context.Context, id string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

func (f *fakeStore) ListUsers(ctx context.Context) ([]model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.User{}
	for _, id := range f.order {
		if u, ok := f.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateUser(ctx context.Context, u *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if cur, ok := f.users[u.ID]; ok {
		cur.Name, cur.Email, cur.Phone = u.Name, u.Email, u.Phone
		f.users[u.ID] = cur
	}
	return nil
}

func (f *fakeStore) DeleteUser(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, id)
	return nil
}

func (f *fakeStore) ListDoctors(ctx context.Context) ([]model.Doctor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.Doctor{}
	for _, d := range f.doctors {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeStore) CreateDoctor(ctx context.Context, d *model.Doctor) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.doctors[d.ID] = *d
	return nil
}

func (f *fakeStore) UpdateDoctor(ctx context.Context, d *model.Doctor) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.doctors[d.ID]; ok {
		f.doctors[d.ID] = *d
	}
	return nil
}

func (f *fakeStore) DeleteDoctor(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.doctors, id)
	return nil
}

func (f *fakeStore) CreateAppointment(ctx context.Context, a *model.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appointments[a.ID] = *a
	return nil
}

func (f *fakeStore) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.Appointment{}
	for _, a := range f.appointments {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}

func (f *fakeStore) BookedSlots(ctx context.Context, doctor string) ([]model.Slot, error) {
	apts, _ := f.ListAppointments(ctx)
	seen := map[model.Slot]bool{}
	out := []model.Slot{}
	for _, a := range apts {
		s := model.Slot{Date: a.Date, Time: a.Time}
		if a.Doctor == doctor && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateAppointment(ctx context.Context, a *model.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if cur, ok := f.appointments[a.ID]; ok {
		a.CreatedAt = cur.CreatedAt
		f.appointments[a.ID] = *a
	}
	return nil
}

func (f *fakeStore) DeleteAppointment(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.appointments, id)
	return nil
}

// brokenStore fails every call that reaches the database.
type brokenStore struct {
	*fakeStore
	err error
}

func newBrokenStore() *brokenStore {
	return &brokenStore{fakeStore: newFakeStore(), err: errors.New("connection refused")}
}

func (b *brokenStore) Ping(ctx context.Context) error { return b.err }

func (b *brokenStore) CreateUser(ctx context.Context, u *model.User) error { return b.err }

func (b *brokenStore) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	return nil, b.err
}

func (b *brokenStore) ListUsers(ctx context.Context) ([]model.User, error) { return nil, b.err }

func (b *brokenStore) UpdateUser(ctx context.Context, u *model.User) error { return b.err }

func (b *brokenStore) DeleteUser(ctx context.Context, id string) error { return b.err }

func (b *brokenStore) ListDoctors(ctx context.Context) ([]model.Doctor, error) { return nil, b.err }

func (b *brokenStore) CreateDoctor(ctx context.Context, d *model.Doctor) error { return b.err }

func (b *brokenStore) UpdateDoctor(ctx context.Context, d *model.Doctor) error { return b.err }

func (b *brokenStore) DeleteDoctor(ctx context.Context, id string) error { return b.err }

func (b *brokenStore) CreateAppointment(ctx context.Context, a *model.Appointment) error {
	return b.err
}

func (b *brokenStore) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	return nil, b.err
}

func (b *brokenStore) BookedSlots(ctx context.Context, doctor string) ([]model.Slot, error) {
	return nil, b.err
}

func (b *brokenStore) UpdateAppointment(ctx context.Context, a *model.Appointment) error {
	return b.err
}

func (b *brokenStore) DeleteAppointment(ctx context.Context, id string) error { return b.err }
