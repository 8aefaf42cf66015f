package store

import (
	"context"

	"care-info-api/internal/model"
)

func (s *Store) ListDoctors(ctx context.Context) ([]model.Doctor, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, specialty, phone, email, location, education
		 FROM doctors ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Doctor{}
	for rows.Next() {
		var d model.Doctor
		if err := rows.Scan(&d.ID, &d.Name, &d.Specialty, &d.Phone,
			&d.Email, &d.Location, &d.Education); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *Store) CreateDoctor(ctx context.Context, d *model.Doctor) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO doctors (id, name, specialty, phone, email, location, education)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		d.ID, d.Name, d.Specialty, d.Phone, d.Email, d.Location, d.Education,
	)
	return err
}

// UpdateDoctor overwrites every field by id; zero rows matched still succeeds.
func (s *Store) UpdateDoctor(ctx context.Context, d *model.Doctor) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE doctors
		 SET name=$1, specialty=$2, phone=$3, email=$4, location=$5, education=$6
		 WHERE id=$7`,
		d.Name, d.Specialty, d.Phone, d.Email, d.Location, d.Education, d.ID,
	)
	return err
}

func (s *Store) DeleteDoctor(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM doctors WHERE id=$1`, id)
	return err
}
