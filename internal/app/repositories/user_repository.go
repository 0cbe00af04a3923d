package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/deniz/technexus/internal/app/models"
	"github.com/deniz/technexus/internal/pkg/apperrors"
)

var userColumns = []string{
	"id", "email", "username", "hashed_password", "full_name",
	"bio", "profile_image", "is_active", "interests",
	"saved_events", "saved_opportunities", "created_at", "updated_at",
}

// UserRepository handles database operations for user accounts
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.HashedPassword,
		&user.FullName,
		&user.Bio,
		&user.ProfileImage,
		&user.IsActive,
		&user.Interests,
		&user.SavedEvents,
		&user.SavedOpportunities,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user and fills in the generated fields
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := squirrel.Insert("users").
		Columns("email", "username", "hashed_password", "full_name").
		Values(user.Email, user.Username, user.HashedPassword, user.FullName).
		Suffix("RETURNING id, is_active, interests, saved_events, saved_opportunities, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID,
		&user.IsActive,
		&user.Interests,
		&user.SavedEvents,
		&user.SavedOpportunities,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := squirrel.Select(userColumns...).
		From("users").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return user, nil
}

// GetByUsernameOrEmail retrieves a user whose username or email matches the
// given identifier. Login accepts either form.
func (r *UserRepository) GetByUsernameOrEmail(ctx context.Context, identifier string) (*models.User, error) {
	query := squirrel.Select(userColumns...).
		From("users").
		Where(squirrel.Or{
			squirrel.Eq{"username": identifier},
			squirrel.Eq{"email": identifier},
		}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return user, nil
}

// EmailExists checks if an email is already taken by a user other than
// excludeID. Pass 0 to check against all users.
func (r *UserRepository) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 AND id <> $2)`,
		email, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error executing query: %w", err)
	}
	return exists, nil
}

// UsernameExists checks if a username is already taken
func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error executing query: %w", err)
	}
	return exists, nil
}

// UpdateProfile persists the editable profile fields and refreshes the
// updated_at timestamp on the model.
func (r *UserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	query := squirrel.Update("users").
		Set("email", user.Email).
		Set("full_name", user.FullName).
		Set("bio", user.Bio).
		Set("interests", user.Interests).
		Set("profile_image", user.ProfileImage).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where("id = ?", user.ID).
		Suffix("RETURNING updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&user.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error executing query: %w", err)
	}
	return nil
}

// ToggleSavedEvent adds the event ID to the user's saved list, or removes it
// when already present. Done in a single statement so concurrent toggles
// cannot duplicate entries. Returns the membership state after the toggle.
func (r *UserRepository) ToggleSavedEvent(ctx context.Context, userID, eventID int64) (bool, error) {
	return r.toggleSaved(ctx, "saved_events", userID, eventID)
}

// ToggleSavedOpportunity behaves like ToggleSavedEvent for the saved
// opportunities list.
func (r *UserRepository) ToggleSavedOpportunity(ctx context.Context, userID, opportunityID int64) (bool, error) {
	return r.toggleSaved(ctx, "saved_opportunities", userID, opportunityID)
}

func (r *UserRepository) toggleSaved(ctx context.Context, column string, userID, entityID int64) (bool, error) {
	// column is one of two internal constants, never user input
	sql := fmt.Sprintf(`UPDATE users
		SET %[1]s = CASE
			WHEN $2 = ANY(%[1]s) THEN array_remove(%[1]s, $2)
			ELSE array_append(%[1]s, $2)
		END,
		updated_at = NOW()
		WHERE id = $1
		RETURNING $2 = ANY(%[1]s)`, column)

	var saved bool
	if err := r.db.QueryRow(ctx, sql, userID, entityID).Scan(&saved); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, apperrors.ErrUserNotFound
		}
		return false, fmt.Errorf("error executing query: %w", err)
	}
	return saved, nil
}
