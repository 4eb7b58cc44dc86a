package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/utils"
	"github.com/MKhiriev/go-user-auth/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the SQL implementation of [UserRepository]. The same code
// serves PostgreSQL and SQLite; the [DB] dialect picks placeholders.
//
// All methods obtain a context-scoped logger via [logger.FromContext].
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts the account with a fresh UUID and a UTC creation time.
//
// Error handling:
//   - unique violation on email (PostgreSQL 23505 or SQLite
//     SQLITE_CONSTRAINT_UNIQUE) → [ErrUserAlreadyExists];
//   - any other driver error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.UserAccount) (models.UserAccount, error) {
	log := logger.FromContext(ctx)

	user.ID = utils.NewID()
	user.CreatedAt = time.Now().UTC()

	query, args, err := buildCreateUserQuery(r.db.dialect, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.UserAccount{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	// create user in db
	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		if isUniqueViolation(err) {
			return models.UserAccount{}, ErrUserAlreadyExists
		}
		return models.UserAccount{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

func (r *userRepository) FindUsersByEmail(ctx context.Context, email string) ([]models.UserAccount, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUsersByEmailQuery(r.db.dialect, email)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUsersByEmail").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUsersByEmail").Msg("error querying users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.UserAccount, 0, 1)
	for rows.Next() {
		var user models.UserAccount
		if err = rows.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt); err != nil {
			log.Err(err).Str("func", "*userRepository.FindUsersByEmail").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUsersByEmail").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

func isUniqueViolation(err error) bool {
	return postgresError(err) == pgerrcode.UniqueViolation || isSQLiteUniqueViolation(err)
}
