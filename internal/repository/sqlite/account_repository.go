package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"consulting-api/internal/domain"
	"consulting-api/internal/repository"
)

const createAccountsTable = `
CREATE TABLE IF NOT EXISTS accounts (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role TEXT NOT NULL,
	status TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	last_login DATETIME,
	failed_attempts INTEGER NOT NULL DEFAULT 0,
	locked_until DATETIME
);
`

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) repository.AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createAccountsTable); err != nil {
		return fmt.Errorf("create accounts table: %w", err)
	}
	return nil
}

func (r *AccountRepository) Create(ctx context.Context, acct *domain.Account) (string, error) {
	if acct.ID == "" {
		acct.ID = uuid.NewString()
	}
	if acct.Role == "" {
		acct.Role = domain.RoleMember
	}
	if acct.Status == "" {
		acct.Status = domain.AccountActive
	}
	if acct.CreatedAt.IsZero() {
		acct.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, `
INSERT INTO accounts (id, name, email, password_hash, role, status, created_at, last_login, failed_attempts, locked_until)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		acct.ID,
		acct.Name,
		acct.Email,
		acct.PasswordHash,
		string(acct.Role),
		string(acct.Status),
		acct.CreatedAt,
		nullableTime(acct.LastLogin),
		acct.FailedAttempts,
		nullableTime(acct.LockedUntil),
	)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return "", repository.ErrDuplicateEmail
		}
		return "", fmt.Errorf("insert account: %w", err)
	}
	return acct.ID, nil
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	row := r.db.QueryRowContext(ctx, selectAccount+`WHERE email = ?`, email)
	return scanAccount(row)
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	row := r.db.QueryRowContext(ctx, selectAccount+`WHERE id = ?`, id)
	return scanAccount(row)
}

func (r *AccountRepository) List(ctx context.Context) ([]domain.Account, error) {
	rows, err := r.db.QueryContext(ctx, selectAccount+`ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		acct, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *acct)
	}
	return accounts, rows.Err()
}

// RecordFailedAttempt increments the failure counter and arms the lock in a
// single statement so concurrent failed logins cannot lose an increment.
func (r *AccountRepository) RecordFailedAttempt(ctx context.Context, id string, lockThreshold int, lockUntil time.Time) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE accounts
SET failed_attempts = failed_attempts + 1,
    locked_until = CASE WHEN failed_attempts + 1 >= ? THEN ? ELSE locked_until END
WHERE id = ?`,
		lockThreshold,
		lockUntil,
		id,
	)
	if err != nil {
		return fmt.Errorf("record failed attempt: %w", err)
	}
	return requireModified(res)
}

func (r *AccountRepository) ResetLoginState(ctx context.Context, id string, lastLogin time.Time) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE accounts
SET failed_attempts = 0, locked_until = NULL, last_login = ?
WHERE id = ?`,
		lastLogin,
		id,
	)
	if err != nil {
		return fmt.Errorf("reset login state: %w", err)
	}
	return requireModified(res)
}

func (r *AccountRepository) UpdatePasswordHash(ctx context.Context, id string, hash string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE accounts SET password_hash = ? WHERE id = ?`, hash, id)
	if err != nil {
		return fmt.Errorf("update password hash: %w", err)
	}
	return requireModified(res)
}

func (r *AccountRepository) UpdateProfile(ctx context.Context, id string, upd domain.AccountUpdate) error {
	var sets []string
	var args []any
	if upd.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *upd.Name)
	}
	if upd.Role != nil {
		sets = append(sets, "role = ?")
		args = append(args, string(*upd.Role))
	}
	if upd.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*upd.Status))
	}
	if len(sets) == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return nil
	}

	args = append(args, id)
	res, err := r.db.ExecContext(ctx, `UPDATE accounts SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	return requireModified(res)
}

func (r *AccountRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `UPDATE accounts SET last_login = ? WHERE id = ?`, at, id)
	if err != nil {
		return fmt.Errorf("touch last login: %w", err)
	}
	return requireModified(res)
}

const selectAccount = `
SELECT id, name, email, password_hash, role, status, created_at, last_login, failed_attempts, locked_until
FROM accounts
`

func scanAccount(row interface {
	Scan(dest ...any) error
}) (*domain.Account, error) {
	var (
		acct        domain.Account
		role        string
		status      string
		lastLogin   sql.NullTime
		lockedUntil sql.NullTime
	)
	if err := row.Scan(
		&acct.ID,
		&acct.Name,
		&acct.Email,
		&acct.PasswordHash,
		&role,
		&status,
		&acct.CreatedAt,
		&lastLogin,
		&acct.FailedAttempts,
		&lockedUntil,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan account: %w", err)
	}
	acct.Role = domain.Role(role)
	acct.Status = domain.AccountStatus(status)
	if lastLogin.Valid {
		t := lastLogin.Time
		acct.LastLogin = &t
	}
	if lockedUntil.Valid {
		t := lockedUntil.Time
		acct.LockedUntil = &t
	}
	return &acct, nil
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func requireModified(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
