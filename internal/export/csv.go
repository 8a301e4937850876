// Package export writes directory views to CSV files.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jask/showcase/internal/directory"
)

var header = []string{"ID", "Name", "Email", "Department", "Position", "Salary", "Hire Date", "Status"}

// FileName returns the export file name for a moment in time.
func FileName(now time.Time) string {
	return fmt.Sprintf("employees-%s.csv", now.Format("20060102-150405"))
}

// WriteCSV writes records, in the given order, to a new file in dir and
// returns its path.
func WriteCSV(dir string, records []directory.Employee, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir export dir: %w", err)
	}
	path := filepath.Join(dir, FileName(now))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create export: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return "", err
	}
	for _, e := range records {
		row := []string{
			strconv.Itoa(e.ID),
			e.Name,
			e.Email,
			e.Department,
			e.Position,
			strconv.Itoa(e.Salary),
			e.HireDate,
			string(e.Status),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("write employee %d: %w", e.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush export: %w", err)
	}
	return path, f.Close()
}
