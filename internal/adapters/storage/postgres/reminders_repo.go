package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-care-reminders/internal/domain/reminders"
)

// RemindersRepo filtra siempre por pets.owner_user_id; un id ajeno es ErrNotFound.
type RemindersRepo struct {
	db *sql.DB
}

func NewRemindersRepo(db *sql.DB) *RemindersRepo {
	return &RemindersRepo{db: db}
}

const reminderColumns = `
	r.id, r.pet_id,
	r.type, r.title,
	r.due_date, r.is_recurring, r.frequency_months,
	r.status`

const insertReminder = `
	INSERT INTO reminders (
		id, pet_id,
		type, title,
		due_date, is_recurring, frequency_months,
		status
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func execInsert(ctx context.Context, ex execer, it reminders.Reminder) error {
	_, err := ex.ExecContext(ctx, insertReminder,
		it.ID,
		it.PetID,
		string(it.Type),
		it.Title,
		it.DueDate,
		it.IsRecurring,
		toNullInt(it.FrequencyMonths),
		string(it.Status),
	)
	return err
}

// BulkInsert usa una sola transacción: o entran todos o ninguno.
func (r *RemindersRepo) BulkInsert(ctx context.Context, items []reminders.Reminder) (err error) {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, it := range items {
		if err = execInsert(ctx, tx, it); err != nil {
			return fmt.Errorf("insert reminder %s: %w", it.ID, err)
		}
	}

	return tx.Commit()
}

func (r *RemindersRepo) Create(ctx context.Context, it reminders.Reminder) error {
	return execInsert(ctx, r.db, it)
}

func (r *RemindersRepo) GetByID(ctx context.Context, userID, id string) (reminders.Reminder, error) {
	userID, id = strings.TrimSpace(userID), strings.TrimSpace(id)
	if userID == "" || id == "" {
		return reminders.Reminder{}, reminders.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+reminderColumns+`
		FROM reminders r
		JOIN pets p ON p.id = r.pet_id
		WHERE r.id = $1 AND p.owner_user_id = $2
	`, id, userID)

	it, err := scanReminder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return reminders.Reminder{}, reminders.ErrNotFound
		}
		return reminders.Reminder{}, err
	}
	return it, nil
}

func (r *RemindersRepo) ListByPet(ctx context.Context, userID, petID string) ([]reminders.Reminder, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+reminderColumns+`
		FROM reminders r
		JOIN pets p ON p.id = r.pet_id
		WHERE r.pet_id = $1 AND p.owner_user_id = $2
		ORDER BY r.due_date ASC, r.id ASC
	`, strings.TrimSpace(petID), strings.TrimSpace(userID))
	if err != nil {
		return nil, err
	}
	return collectReminders(rows)
}

func (r *RemindersRepo) ListByUser(ctx context.Context, userID string, filter reminders.ListFilter) ([]reminders.Reminder, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, nil
	}

	where, args := userWhere(userID, filter)
	argN := len(args) + 1

	var sb strings.Builder
	sb.WriteString(`
		SELECT ` + reminderColumns + `
		FROM reminders r
		JOIN pets p ON p.id = r.pet_id
		WHERE ` + where)
	sb.WriteString(" ORDER BY r.due_date ASC, r.id ASC")
	sb.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argN, argN+1))
	args = append(args, filter.EffectiveLimit(), filter.EffectiveOffset())

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	return collectReminders(rows)
}

func (r *RemindersRepo) CountByUser(ctx context.Context, userID string, filter reminders.ListFilter) (int, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return 0, nil
	}

	where, args := userWhere(userID, filter)
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM reminders r
		JOIN pets p ON p.id = r.pet_id
		WHERE `+where, args...).Scan(&n)
	return n, err
}

// SummaryByUser cuenta en una sola pasada con COUNT(*) FILTER; no carga filas.
// La ventana de "vence hoy" sale de reminders.DayBounds para coincidir con IsDueToday.
func (r *RemindersRepo) SummaryByUser(ctx context.Context, userID, petID string, now time.Time) (reminders.Summary, error) {
	userID, petID = strings.TrimSpace(userID), strings.TrimSpace(petID)
	if userID == "" {
		return reminders.Summary{}, nil
	}

	dayStart, dayEnd := reminders.DayBounds(now)
	args := []any{userID, string(reminders.StatusPending), string(reminders.StatusCompleted), now, dayStart, dayEnd}

	q := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE r.status = $2),
			COUNT(*) FILTER (WHERE r.status = $3),
			COUNT(*) FILTER (WHERE r.status = $2 AND r.due_date < $4),
			COUNT(*) FILTER (WHERE r.status = $2 AND r.due_date >= $5 AND r.due_date < $6)
		FROM reminders r
		JOIN pets p ON p.id = r.pet_id
		WHERE p.owner_user_id = $1`
	if petID != "" {
		q += " AND r.pet_id = $7"
		args = append(args, petID)
	}

	var s reminders.Summary
	err := r.db.QueryRowContext(ctx, q, args...).Scan(
		&s.Total,
		&s.Pending,
		&s.Completed,
		&s.Overdue,
		&s.DueToday,
	)
	if err != nil {
		return reminders.Summary{}, err
	}
	return s, nil
}

// userWhere arma el WHERE de ListByUser/CountByUser; $1 es siempre el dueño.
func userWhere(userID string, filter reminders.ListFilter) (string, []any) {
	var sb strings.Builder
	sb.WriteString("p.owner_user_id = $1")

	args := []any{userID}
	argN := 2

	if strings.TrimSpace(filter.PetID) != "" {
		sb.WriteString(fmt.Sprintf(" AND r.pet_id = $%d", argN))
		args = append(args, strings.TrimSpace(filter.PetID))
		argN++
	}

	if filter.Status != "" {
		sb.WriteString(fmt.Sprintf(" AND r.status = $%d", argN))
		args = append(args, string(filter.Status))
		argN++
	}

	// types filter
	if len(filter.Types) > 0 {
		placeholders := make([]string, 0, len(filter.Types))
		for _, t := range filter.Types {
			placeholders = append(placeholders, fmt.Sprintf("$%d", argN))
			args = append(args, string(t))
			argN++
		}
		sb.WriteString(" AND r.type IN (" + strings.Join(placeholders, ",") + ")")
	}

	if filter.DueFrom != nil {
		sb.WriteString(fmt.Sprintf(" AND r.due_date >= $%d", argN))
		args = append(args, *filter.DueFrom)
		argN++
	}
	if filter.DueBefore != nil {
		sb.WriteString(fmt.Sprintf(" AND r.due_date < $%d", argN))
		args = append(args, *filter.DueBefore)
	}

	return sb.String(), args
}

// UpdateStatus es un UPDATE de una fila acotado por dueño; last-write-wins.
func (r *RemindersRepo) UpdateStatus(ctx context.Context, userID, id string, status reminders.Status) (reminders.Reminder, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE reminders AS r
		SET status = $3
		FROM pets p
		WHERE r.id = $1 AND p.id = r.pet_id AND p.owner_user_id = $2
		RETURNING `+reminderColumns,
		strings.TrimSpace(id), strings.TrimSpace(userID), string(status),
	)

	it, err := scanReminder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return reminders.Reminder{}, reminders.ErrNotFound
		}
		return reminders.Reminder{}, err
	}
	return it, nil
}

func (r *RemindersRepo) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM reminders AS r
		USING pets p
		WHERE r.id = $1 AND p.id = r.pet_id AND p.owner_user_id = $2
	`, strings.TrimSpace(id), strings.TrimSpace(userID))
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return reminders.ErrNotFound
	}
	return nil
}

func collectReminders(rows *sql.Rows) ([]reminders.Reminder, error) {
	defer rows.Close()

	out := make([]reminders.Reminder, 0)
	for rows.Next() {
		it, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func scanReminder(s rowScanner) (reminders.Reminder, error) {
	var it reminders.Reminder
	var typ, status string
	var freq sql.NullInt64
	if err := s.Scan(
		&it.ID,
		&it.PetID,
		&typ,
		&it.Title,
		&it.DueDate,
		&it.IsRecurring,
		&freq,
		&status,
	); err != nil {
		return reminders.Reminder{}, err
	}

	it.Type = reminders.Type(typ)
	it.Status = reminders.Status(status)
	if freq.Valid {
		n := int(freq.Int64)
		it.FrequencyMonths = &n
	}
	return it, nil
}

func toNullInt(n *int) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*n), Valid: true}
}
