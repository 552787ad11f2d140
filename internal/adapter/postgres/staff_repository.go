package postgres

import (
	"context"
	"fmt"

	"github.com/YerlanK/brigade/internal/domain"
	"github.com/YerlanK/brigade/internal/interfaces"
)

type staffRepository struct {
	db DB
}

func NewStaffRepository(db DB) interfaces.StaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, name, role, is_active
		FROM staff
		WHERE id = $1
	`

	var user domain.User
	err := r.db.QueryRow(ctx, query, id).Scan(&user.ID, &user.Name, &user.Role, &user.IsActive)
	if err != nil {
		return nil, fmt.Errorf("staff member not found: %w", err)
	}

	return &user, nil
}

func (r *staffRepository) ListActive(ctx context.Context) ([]domain.User, error) {
	query := `
		SELECT id, name, role, is_active
		FROM staff
		WHERE is_active = true
		ORDER BY id ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Role, &user.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan staff member: %w", err)
		}
		users = append(users, user)
	}

	return users, nil
}
