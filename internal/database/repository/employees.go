package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/showcase/internal/database"
	"github.com/jask/showcase/internal/directory"
)

// EmployeeRepo handles employees.
type EmployeeRepo struct {
	db *sql.DB
}

func NewEmployeeRepo(db *sql.DB) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

const upsertEmployee = `
	INSERT INTO employees(id, name, email, department, position, salary, hire_date, status)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 email=excluded.email,
	 department=excluded.department,
	 position=excluded.position,
	 salary=excluded.salary,
	 hire_date=excluded.hire_date,
	 status=excluded.status;
	`

func (r *EmployeeRepo) Upsert(ctx context.Context, e directory.Employee) error {
	_, err := r.db.ExecContext(ctx, upsertEmployee,
		e.ID, e.Name, e.Email, e.Department, e.Position, e.Salary, e.HireDate, string(e.Status))
	return err
}

// UpsertAll writes every record in one transaction.
func (r *EmployeeRepo) UpsertAll(ctx context.Context, records []directory.Employee) error {
	return database.WithTx(r.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, upsertEmployee)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for _, e := range records {
			if _, err := stmt.ExecContext(ctx,
				e.ID, e.Name, e.Email, e.Department, e.Position, e.Salary, e.HireDate, string(e.Status)); err != nil {
				return fmt.Errorf("employee %d: %w", e.ID, err)
			}
		}
		return nil
	})
}

func (r *EmployeeRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM employees`).Scan(&n)
	return n, err
}

// List returns every employee ordered by id.
func (r *EmployeeRepo) List(ctx context.Context) ([]directory.Employee, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, name, email, department, position, salary, hire_date, status
	FROM employees ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []directory.Employee
	for rows.Next() {
		var e directory.Employee
		var status string
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Department, &e.Position, &e.Salary, &e.HireDate, &status); err != nil {
			return nil, err
		}
		if e.Status, err = directory.ParseStatus(status); err != nil {
			return nil, fmt.Errorf("employee %d: %w", e.ID, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// SeedIfEmpty inserts records only when the table has no rows. It reports
// whether anything was written.
func (r *EmployeeRepo) SeedIfEmpty(ctx context.Context, records []directory.Employee) (bool, error) {
	n, err := r.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	if err := r.UpsertAll(ctx, records); err != nil {
		return false, err
	}
	return true, nil
}
