package dataset

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jask/showcase/internal/directory"
)

var (
	ErrDuplicateID = errors.New("duplicate employee id")
	ErrInvalidRow  = errors.New("invalid employee row")
)

type yamlFile struct {
	Employees []directory.Employee `yaml:"employees"`
}

// LoadYAML reads an employee list from a file shaped like
//
//	employees:
//	  - id: 1
//	    name: John Smith
//	    ...
func LoadYAML(path string) ([]directory.Employee, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return ParseYAML(data)
}

// ParseYAML decodes and checks an employee list.
func ParseYAML(data []byte) ([]directory.Employee, error) {
	var f yamlFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	if err := Check(f.Employees); err != nil {
		return nil, err
	}
	return f.Employees, nil
}

// Check validates records and normalises their status spelling.
func Check(records []directory.Employee) error {
	seen := make(map[int]bool, len(records))
	for i := range records {
		e := &records[i]
		if e.ID <= 0 || e.Name == "" {
			return fmt.Errorf("%w: row %d needs id and name", ErrInvalidRow, i+1)
		}
		if seen[e.ID] {
			return fmt.Errorf("%w: %d", ErrDuplicateID, e.ID)
		}
		seen[e.ID] = true
		if e.Salary < 0 {
			return fmt.Errorf("%w: employee %d has negative salary", ErrInvalidRow, e.ID)
		}
		if _, err := time.Parse(time.DateOnly, e.HireDate); err != nil {
			return fmt.Errorf("%w: employee %d hire_date %q", ErrInvalidRow, e.ID, e.HireDate)
		}
		st, err := directory.ParseStatus(string(e.Status))
		if err != nil {
			return fmt.Errorf("employee %d: %w", e.ID, err)
		}
		e.Status = st
	}
	return nil
}
