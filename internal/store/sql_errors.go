package store

// ErrorClass is the result type returned by [ErrorClassificator.Classify].
// It groups driver error codes into the few categories repositories react to.
type ErrorClass int

const (
	// ClassUnknown covers every error that has no dedicated handling.
	ClassUnknown ErrorClass = iota

	// ClassUniqueViolation is a duplicate value in a UNIQUE column or index.
	ClassUniqueViolation

	// ClassForeignKeyViolation is a reference to a missing parent row.
	ClassForeignKeyViolation

	// ClassCheckViolation is a rejected CHECK or NOT NULL constraint.
	ClassCheckViolation

	// ClassRetryable marks transient failures (lost connection, deadlock,
	// busy database) that may succeed when attempted again.
	ClassRetryable
)

// String implements fmt.Stringer for log output.
func (c ErrorClass) String() string {
	switch c {
	case ClassUniqueViolation:
		return "unique_violation"
	case ClassForeignKeyViolation:
		return "foreign_key_violation"
	case ClassCheckViolation:
		return "check_violation"
	case ClassRetryable:
		return "retryable"
	default:
		return "unknown"
	}
}
