package stopwatch

import "github.com/NikitaCOEUR/stopwatch/internal/derrors"

var (
	// ErrNotInitialized matches errors returned when no time source mode was set
	ErrNotInitialized = derrors.NewNotInitializedError("clock not initialized to a time taking mode")

	// ErrNotFound matches errors returned for names that were never started
	ErrNotFound = derrors.NewNotFoundError("", "performance not initialized")
)

func notFound(name string) error {
	return derrors.NewNotFoundError(name, "performance not initialized: "+name)
}
