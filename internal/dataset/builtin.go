package dataset

import "github.com/jask/showcase/internal/directory"

// Builtin returns the demo employee set.
func Builtin() []directory.Employee {
	return []directory.Employee{
		{ID: 1, Name: "John Smith", Email: "john.smith@company.com", Department: "Engineering", Position: "Senior Developer", Salary: 85000, HireDate: "2022-01-15", Status: directory.StatusActive},
		{ID: 2, Name: "Sarah Johnson", Email: "sarah.johnson@company.com", Department: "Marketing", Position: "Marketing Manager", Salary: 72000, HireDate: "2021-08-20", Status: directory.StatusActive},
		{ID: 3, Name: "Michael Brown", Email: "michael.brown@company.com", Department: "Engineering", Position: "Frontend Developer", Salary: 68000, HireDate: "2023-03-10", Status: directory.StatusActive},
		{ID: 4, Name: "Emily Davis", Email: "emily.davis@company.com", Department: "HR", Position: "HR Specialist", Salary: 55000, HireDate: "2022-06-01", Status: directory.StatusOnLeave},
		{ID: 5, Name: "David Wilson", Email: "david.wilson@company.com", Department: "Sales", Position: "Sales Representative", Salary: 60000, HireDate: "2021-11-15", Status: directory.StatusActive},
		{ID: 6, Name: "Lisa Anderson", Email: "lisa.anderson@company.com", Department: "Engineering", Position: "DevOps Engineer", Salary: 78000, HireDate: "2022-09-05", Status: directory.StatusInactive},
		{ID: 7, Name: "James Taylor", Email: "james.taylor@company.com", Department: "Finance", Position: "Financial Analyst", Salary: 65000, HireDate: "2023-01-20", Status: directory.StatusActive},
		{ID: 8, Name: "Jennifer Martinez", Email: "jennifer.martinez@company.com", Department: "Marketing", Position: "Content Specialist", Salary: 58000, HireDate: "2022-04-12", Status: directory.StatusActive},
		{ID: 9, Name: "Robert Garcia", Email: "robert.garcia@company.com", Department: "Engineering", Position: "Backend Developer", Salary: 75000, HireDate: "2021-12-08", Status: directory.StatusActive},
		{ID: 10, Name: "Mary Rodriguez", Email: "mary.rodriguez@company.com", Department: "Sales", Position: "Sales Manager", Salary: 82000, HireDate: "2021-05-30", Status: directory.StatusActive},
		{ID: 11, Name: "William Lee", Email: "william.lee@company.com", Department: "IT", Position: "System Administrator", Salary: 70000, HireDate: "2022-10-18", Status: directory.StatusActive},
		{ID: 12, Name: "Patricia Thompson", Email: "patricia.thompson@company.com", Department: "HR", Position: "HR Manager", Salary: 80000, HireDate: "2021-07-14", Status: directory.StatusActive},
	}
}
