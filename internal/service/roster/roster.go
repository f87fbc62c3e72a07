package roster

import (
	"context"
	"strings"

	"github.com/shiftease/shiftease-web/internal/domain/user"
)

// Service owns the employee directory screen logic: listing, search
// filtering and the mutations dispatched from table rows.
type Service struct {
	users user.Gateway
}

func NewService(users user.Gateway) *Service {
	return &Service{users: users}
}

// List fetches all employees and applies the search filter.
func (s *Service) List(ctx context.Context, query string) ([]user.Employee, error) {
	employees, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(employees, query), nil
}

// Filter matches a case-insensitive substring against first name, last
// name, the "first last" concatenation, email and department. An empty
// query keeps every row.
func Filter(employees []user.Employee, query string) []user.Employee {
	search := strings.ToLower(strings.TrimSpace(query))
	if search == "" {
		return employees
	}

	matched := make([]user.Employee, 0, len(employees))
	for _, emp := range employees {
		full := strings.ToLower(emp.FirstName + " " + emp.LastName)
		if strings.Contains(strings.ToLower(emp.FirstName), search) ||
			strings.Contains(strings.ToLower(emp.LastName), search) ||
			strings.Contains(full, search) ||
			strings.Contains(strings.ToLower(emp.Email), search) ||
			strings.Contains(strings.ToLower(emp.Department), search) {
			matched = append(matched, emp)
		}
	}
	return matched
}

// Find locates an employee by canonical key.
func Find(employees []user.Employee, id string) (user.Employee, bool) {
	for _, emp := range employees {
		if emp.Key() == id {
			return emp, true
		}
	}
	return user.Employee{}, false
}

func (s *Service) Create(ctx context.Context, req user.CreateEmployeeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.users.Create(ctx, req)
}

func (s *Service) Update(ctx context.Context, id string, req user.UpdateEmployeeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.users.Update(ctx, id, req)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}

func (s *Service) Profile(ctx context.Context) (user.Employee, error) {
	return s.users.Profile(ctx)
}

// UpdateProfile saves the signed-in user's own record. The id comes
// from the fetched profile, never from the form.
func (s *Service) UpdateProfile(ctx context.Context, profile user.Employee, req user.UpdateEmployeeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.users.Update(ctx, profile.Key(), req)
}
