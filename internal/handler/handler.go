package handler

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"care-info-api/internal/model"
)

// Store is everything the HTTP layer needs from persistence. *store.Store
// satisfies it.
type Store interface {
	Ping(ctx context.Context) error

	CreateUser(ctx context.Context, u *model.User) error
	UserByEmail(ctx context.Context, email string) (*model.User, error)
	UserByID(ctx context.Context, id string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, u *model.User) error
	DeleteUser(ctx context.Context, id string) error

	ListDoctors(ctx context.Context) ([]model.Doctor, error)
	CreateDoctor(ctx context.Context, d *model.Doctor) error
	UpdateDoctor(ctx context.Context, d *model.Doctor) error
	DeleteDoctor(ctx context.Context, id string) error

	CreateAppointment(ctx context.Context, a *model.Appointment) error
	ListAppointments(ctx context.Context) ([]model.Appointment, error)
	BookedSlots(ctx context.Context, doctor string) ([]model.Slot, error)
	UpdateAppointment(ctx context.Context, a *model.Appointment) error
	DeleteAppointment(ctx context.Context, id string) error
}

type Handler struct {
	store    Store
	secret   string
	tokenTTL time.Duration
	log      logrus.FieldLogger
}

func New(st Store, secret string, tokenTTL time.Duration, log logrus.FieldLogger) *Handler {
	return &Handler{store: st, secret: secret, tokenTTL: tokenTTL, log: log}
}
