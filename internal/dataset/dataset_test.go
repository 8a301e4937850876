package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/showcase/internal/config"
	"github.com/jask/showcase/internal/directory"
	"github.com/jask/showcase/internal/logger"
)

func TestBuiltinIsValid(t *testing.T) {
	records := Builtin()
	require.Len(t, records, 12)
	require.NoError(t, Check(records))
}

func TestParseYAML(t *testing.T) {
	records, err := ParseYAML([]byte(`
employees:
  - id: 1
    name: Ada Lovelace
    email: ada@company.com
    department: Engineering
    position: Analyst
    salary: 91000
    hire_date: "2020-02-03"
    status: On Leave
`))
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, directory.StatusOnLeave, records[0].Status)
	require.Equal(t, "2020-02-03", records[0].HireDate)
}

func TestParseYAMLRejectsBadRows(t *testing.T) {
	cases := map[string]struct {
		doc  string
		want error
	}{
		"duplicate": {`
employees:
  - {id: 1, name: A, hire_date: "2020-01-01", status: Active}
  - {id: 1, name: B, hire_date: "2020-01-01", status: Active}
`, ErrDuplicateID},
		"status": {`
employees:
  - {id: 1, name: A, hire_date: "2020-01-01", status: Retired}
`, directory.ErrInvalidStatus},
		"date": {`
employees:
  - {id: 1, name: A, hire_date: "01/02/2020", status: Active}
`, ErrInvalidRow},
		"missing id": {`
employees:
  - {name: A, hire_date: "2020-01-01", status: Active}
`, ErrInvalidRow},
	}
	for name, tc := range cases {
		_, err := ParseYAML([]byte(tc.doc))
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: err = %v, want %v", name, err, tc.want)
		}
	}
}

func TestLoadSources(t *testing.T) {
	ctx := context.Background()
	log := logger.New()
	dir := t.TempDir()

	cfg := config.Default()
	records, err := Load(ctx, cfg, log)
	require.NoError(t, err)
	require.Len(t, records, 12)

	path := filepath.Join(dir, "people.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
employees:
  - {id: 7, name: Grace Hopper, email: grace@company.com, department: IT, position: Admiral, salary: 1, hire_date: "1943-01-01", status: Active}
`), 0o644))
	cfg.Dataset.Source = config.SourceYAML
	cfg.Dataset.Path = path
	records, err = Load(ctx, cfg, log)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "Grace Hopper", records[0].Name)

	cfg.Dataset.Source = config.SourceSQLite
	cfg.Database.Path = filepath.Join(dir, "showcase.db")
	cfg.Database.Migrations, err = filepath.Abs("../database/migrations")
	require.NoError(t, err)
	records, err = Load(ctx, cfg, log)
	require.NoError(t, err)
	require.Equal(t, Builtin(), records)

	cfg.Dataset.Source = "csv"
	_, err = Load(ctx, cfg, log)
	require.ErrorIs(t, err, config.ErrUnknownSource)
}
