package hero

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Error types
var (
	// ErrValidation is matched by every validation failure
	ErrValidation = errors.New("validation failed")

	// ErrPrimaryHeroNotFound indicates a primary shelf was not found
	ErrPrimaryHeroNotFound = errors.New("primary hero not found")

	// ErrSecondaryHeroNotFound indicates a secondary shelf was not found
	ErrSecondaryHeroNotFound = errors.New("secondary hero not found")

	// ErrModuleNotFound indicates a secondary shelf module was not found
	ErrModuleNotFound = errors.New("secondary hero module not found")

	// ErrDiscoveryItemNotFound indicates a discovery item was not found
	ErrDiscoveryItemNotFound = errors.New("discovery item not found")

	// ErrAddonNotFound indicates an add-on was not found
	ErrAddonNotFound = errors.New("addon not found")

	// ErrDuplicateDiscoveryItem indicates a discovery item already has a primary shelf
	ErrDuplicateDiscoveryItem = errors.New("discovery item already has a primary hero")
)

// Validation messages raised by the record-level checks.
const (
	MsgExternalNeedsHomepage  = "External primary shelves need a homepage defined in addon details."
	MsgOnlyRecommended        = "Only recommended add-ons can be enabled for non-external primary shelves."
	MsgOnlyEnabledPrimary     = "You can't disable the only enabled primary shelf."
	MsgOnlyEnabledSecondary   = "You can't disable the only enabled secondary shelf."
	MsgCTABothOrNeither       = "Both the call to action URL and text must be defined, or neither, for enabled shelves."
	MsgFieldRequired          = "This field cannot be blank."
	MsgInvalidChoice          = "Select a valid choice. %s is not one of the available choices."
	MsgMaxLength              = "Ensure this value has at most %d characters (it has %d)."
	MsgDiscoveryItemNotFound  = "Discovery item does not exist."
	MsgDiscoveryItemTaken     = "Primary hero with this discovery item already exists."
	MsgSecondaryShelfNotFound = "Secondary shelf does not exist."
	MsgAddonNotFound          = "Addon does not exist."
)

// ValidationError is a single validation failure. Field is empty for
// failures that concern the record as a whole.
type ValidationError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ValidationErrors collects the failures found while validating a record.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

func (e ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

// Messages returns the messages of the collected errors in order.
func (e ValidationErrors) Messages() []string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Message)
	}
	return msgs
}

func newValidationError(message string) error {
	return ValidationErrors{{Message: message}}
}

// ShelfError represents an error related to a shelf operation
type ShelfError struct {
	Kind string
	ID   uuid.UUID
	Op   string
	Err  error
}

func (e *ShelfError) Error() string {
	return fmt.Sprintf("%s operation %s failed for %s: %v", e.Kind, e.Op, e.ID, e.Err)
}

func (e *ShelfError) Unwrap() error {
	return e.Err
}

// ChoiceSourceError represents an error listing the values of a choice source
type ChoiceSourceError struct {
	Source   string
	Location string
	Err      error
}

func (e *ChoiceSourceError) Error() string {
	return fmt.Sprintf("listing choices from %s source %s failed: %v", e.Source, e.Location, e.Err)
}

func (e *ChoiceSourceError) Unwrap() error {
	return e.Err
}
