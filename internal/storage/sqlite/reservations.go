package sqlite

import (
	"database/sql"
	"errors"
	"time"

	apperr "github.com/ryancast1/reservations/internal/errors"
	"github.com/ryancast1/reservations/internal/models"
)

const reservationColumns = "id, guest_name, room, check_in, check_out, created_at"

func scanReservation(row interface{ Scan(...any) error }) (models.Reservation, error) {
	var r models.Reservation
	var room string
	err := row.Scan(&r.ID, &r.GuestName, &room, &r.CheckIn, &r.CheckOut, &r.CreatedAt)
	if err != nil {
		return models.Reservation{}, err
	}
	r.Room = models.Room(room)
	return r, nil
}

func (s *Store) AddReservation(res models.Reservation) error {
	if res.CreatedAt == "" {
		res.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	_, err := s.db.Exec(`
		INSERT INTO reservations (id, guest_name, room, check_in, check_out, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		res.ID, res.GuestName, string(res.Room), res.CheckIn, res.CheckOut, res.CreatedAt)
	return apperr.NewRepository("insert", err)
}

func (s *Store) GetReservation(id string) (models.Reservation, error) {
	row := s.db.QueryRow(`
		SELECT `+reservationColumns+`
		FROM reservations WHERE id = ?`, id)

	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Reservation{}, apperr.ErrNotFound
		}
		return models.Reservation{}, apperr.NewRepository("get", err)
	}
	return res, nil
}

func (s *Store) GetAllReservations() ([]models.Reservation, error) {
	rows, err := s.db.Query(`
		SELECT ` + reservationColumns + `
		FROM reservations ORDER BY check_in ASC`)
	if err != nil {
		return nil, apperr.NewRepository("list", err)
	}
	defer rows.Close()

	return collectReservations(rows, "list")
}

func (s *Store) UpdateReservation(res models.Reservation) error {
	result, err := s.db.Exec(`
		UPDATE reservations
		SET guest_name = ?, room = ?, check_in = ?, check_out = ?
		WHERE id = ?`,
		res.GuestName, string(res.Room), res.CheckIn, res.CheckOut, res.ID)
	if err != nil {
		return apperr.NewRepository("update", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperr.NewRepository("update", err)
	}
	if affected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteReservation(id string) error {
	result, err := s.db.Exec("DELETE FROM reservations WHERE id = ?", id)
	if err != nil {
		return apperr.NewRepository("delete", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperr.NewRepository("delete", err)
	}
	if affected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// FindOverlapping implements the strict half-open overlap test
// (a1 < b2 AND b1 < a2) as a single predicate over both the candidate room
// and the all-rooms blockout overlay.
func (s *Store) FindOverlapping(room models.Room, checkIn, checkOut, excludeID string) ([]models.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE (room = ? OR room = ?)
		  AND check_in < ? AND check_out > ?`
	args := []any{string(room), string(models.RoomAll), checkOut, checkIn}
	if excludeID != "" {
		query += " AND id != ?"
		args = append(args, excludeID)
	}
	query += " ORDER BY check_in ASC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, apperr.NewRepository("find-overlapping", err)
	}
	defer rows.Close()

	return collectReservations(rows, "find-overlapping")
}

func (s *Store) FindInRange(start, end string) ([]models.Reservation, error) {
	rows, err := s.db.Query(`
		SELECT `+reservationColumns+`
		FROM reservations
		WHERE check_in < ? AND check_out > ?
		ORDER BY check_in ASC`, end, start)
	if err != nil {
		return nil, apperr.NewRepository("find-in-range", err)
	}
	defer rows.Close()

	return collectReservations(rows, "find-in-range")
}

func collectReservations(rows *sql.Rows, op string) ([]models.Reservation, error) {
	var out []models.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, apperr.NewRepository(op, err)
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.NewRepository(op, err)
	}
	return out, nil
}
