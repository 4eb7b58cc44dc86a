package store

import (
	"github.com/MKhiriev/go-user-auth/migrations"
	"github.com/MKhiriev/go-user-auth/models"
	sq "github.com/Masterminds/squirrel"
)

var usersTable = models.UserAccount{}.TableName()

var userColumns = []string{"id", "email", "password", "created_at"}

func statementBuilder(dialect string) sq.StatementBuilderType {
	if dialect == migrations.DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}

	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func buildFindUsersByEmailQuery(dialect, email string) (string, []any, error) {
	return statementBuilder(dialect).
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildCreateUserQuery(dialect string, user models.UserAccount) (string, []any, error) {
	return statementBuilder(dialect).
		Insert(usersTable).
		Columns(userColumns...).
		Values(user.ID, user.Email, user.PasswordHash, user.CreatedAt).
		ToSql()
}
