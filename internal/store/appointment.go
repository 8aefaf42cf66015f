package store

import (
	"context"

	"care-info-api/internal/model"
)

// CreateAppointment inserts unconditionally. Nothing stops two bookings of
// the same doctor, date and time.
func (s *Store) CreateAppointment(ctx context.Context, a *model.Appointment) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO appointments (id, name, email, phone, doctor, hospital, "date", "time")
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		a.ID, a.Name, a.Email, a.Phone, a.Doctor, a.Hospital, a.Date, a.Time,
	)
	return err
}

func (s *Store) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, email, phone, doctor, hospital, "date", "time", created_at
		 FROM appointments
		 ORDER BY "date", "time"`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Appointment{}
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(
			&a.ID, &a.Name, &a.Email, &a.Phone, &a.Doctor,
			&a.Hospital, &a.Date, &a.Time, &a.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// BookedSlots returns the distinct (date, time) pairs already booked for doctor.
func (s *Store) BookedSlots(ctx context.Context, doctor string) ([]model.Slot, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT DISTINCT "date", "time" FROM appointments
		 WHERE doctor = $1
		 ORDER BY "date", "time"`, doctor)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Slot{}
	for rows.Next() {
		var sl model.Slot
		if err := rows.Scan(&sl.Date, &sl.Time); err != nil {
			return nil, err
		}
		out = append(out, sl)
	}
	return out, rows.Err()
}

func (s *Store) UpdateAppointment(ctx context.Context, a *model.Appointment) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE appointments
		 SET name=$1, email=$2, phone=$3, doctor=$4, hospital=$5, "date"=$6, "time"=$7
		 WHERE id=$8`,
		a.Name, a.Email, a.Phone, a.Doctor, a.Hospital, a.Date, a.Time, a.ID,
	)
	return err
}

func (s *Store) DeleteAppointment(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM appointments WHERE id=$1`, id)
	return err
}
