package export

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/showcase/internal/dataset"
	"github.com/jask/showcase/internal/directory"
)

func TestWriteCSVKeepsViewOrder(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	d := directory.New(dataset.Builtin())
	q := directory.NewQuery(5)
	q.SetDepartment("Engineering")
	q.ToggleSort(directory.FieldSalary)
	view := d.Apply(q)

	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	path, err := WriteCSV(dir, view.Sorted, now)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "employees-20240309-140507.csv"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Equal(t, header, rows[0])
	require.Len(t, rows, 5)
	var names []string
	for _, r := range rows[1:] {
		names = append(names, r[1])
	}
	require.Equal(t, []string{"Michael Brown", "Robert Garcia", "Lisa Anderson", "John Smith"}, names)
	require.Equal(t, []string{"3", "Michael Brown", "michael.brown@company.com", "Engineering", "Frontend Developer", "68000", "2023-03-10", "Active"}, rows[1])
}

func TestWriteCSVRefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := WriteCSV(dir, nil, now)
	require.NoError(t, err)
	_, err = WriteCSV(dir, nil, now)
	require.True(t, errors.Is(err, os.ErrExist), "err = %v", err)
}
