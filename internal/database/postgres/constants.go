package postgres

// PostgreSQL error codes checked by the repositories
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)
