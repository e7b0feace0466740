package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/MKhiriev/go-recipe-share/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user accounts and password reset tokens stored in the "users"
// table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CreateUser persists a new user record and returns it with the
// server-assigned fields (UserID, Role default, CreatedAt, UpdatedAt).
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - check violation (unknown role) → [ErrConstraintViolation].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID, &user.Role, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		switch r.db.classify(err) {
		case ClassUniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		case ClassCheckViolation:
			return models.User{}, fmt.Errorf("%w: %w", ErrConstraintViolation, err)
		default:
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return user, nil
}

// FindUserByID retrieves a user by primary key.
// Returns [ErrNoUserWasFound] when no row matches.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	query, args, err := buildSelectUserByIDQuery(r.db.builder, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "*userRepository.FindUserByID", ErrNoUserWasFound, query, args...)
}

// FindUserByEmail retrieves a user by email.
// Returns [ErrNoUserWasFound] when no row matches.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	query, args, err := buildSelectUserByEmailQuery(r.db.builder, email)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "*userRepository.FindUserByEmail", ErrNoUserWasFound, query, args...)
}

// FindAllUsers returns every user ordered by id.
func (r *userRepository) FindAllUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllUsersQuery(r.db.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindAllUsers").Msg("error querying users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.FindAllUsers").Msg("error scanning user")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// UpdateUserRole sets the role of a user and returns the updated record.
// Returns [ErrNoUserWasFound] when the user does not exist and
// [ErrConstraintViolation] when the database rejects the role.
func (r *userRepository) UpdateUserRole(ctx context.Context, userID int64, role models.Role) (models.User, error) {
	query, args, err := buildUpdateUserRoleQuery(r.db.builder, userID, role, r.now())
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execAffectingOne(ctx, "*userRepository.UpdateUserRole", ErrNoUserWasFound, query, args...); err != nil {
		return models.User{}, err
	}

	return r.FindUserByID(ctx, userID)
}

// DeleteUser removes a user. Recipes and ratings of the user are removed by
// the ON DELETE CASCADE foreign keys.
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	query, args, err := buildDeleteUserQuery(r.db.builder, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "*userRepository.DeleteUser", ErrNoUserWasFound, query, args...)
}

// SetResetToken implements [UserRepository]. A second request simply
// overwrites the first token.
func (r *userRepository) SetResetToken(ctx context.Context, userID int64, token string, expires time.Time) error {
	query, args, err := buildSetResetTokenQuery(r.db.builder, userID, token, expires.UTC(), r.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "*userRepository.SetResetToken", ErrNoUserWasFound, query, args...)
}

// FindUserByResetToken implements [UserRepository].
// Returns [ErrResetTokenNotFound] for unknown or expired tokens.
func (r *userRepository) FindUserByResetToken(ctx context.Context, token string, now time.Time) (models.User, error) {
	query, args, err := buildSelectUserByResetTokenQuery(r.db.builder, token, now.UTC())
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "*userRepository.FindUserByResetToken", ErrResetTokenNotFound, query, args...)
}

// ConsumeResetToken implements [UserRepository].
// Returns [ErrResetTokenNotFound] when the guarded UPDATE matches no row.
func (r *userRepository) ConsumeResetToken(ctx context.Context, token string, now time.Time, passwordHash string) error {
	query, args, err := buildConsumeResetTokenQuery(r.db.builder, token, now.UTC(), passwordHash)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "*userRepository.ConsumeResetToken", ErrResetTokenNotFound, query, args...)
}

func (r *userRepository) findOne(ctx context.Context, funcName string, notFound error, query string, args ...any) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, notFound
		}
		log.Err(err).Str("func", funcName).Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

func (r *userRepository) execAffectingOne(ctx context.Context, funcName string, notFound error, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing statement")
		if r.db.classify(err) == ClassCheckViolation {
			return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.UserID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.ResetToken,
		&user.ResetTokenExpires,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	return user, err
}
