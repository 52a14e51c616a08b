package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this user"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError represents a request that is valid but cannot be applied to the current state
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// DeliveryError reports that a notification could not be delivered to a user.
type DeliveryError struct {
	UserID string
	Kind   string
	Cause  error
}

func (e *DeliveryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("delivery of %s to %s failed: %v", e.Kind, e.UserID, e.Cause)
	}
	return fmt.Sprintf("delivery of %s to %s failed: recipient unreachable", e.Kind, e.UserID)
}

// Unwrap exposes the transport error, if any
func (e *DeliveryError) Unwrap() error {
	return e.Cause
}

// Is makes ErrDeliveryFailed match every delivery failure. Other delivery
// sentinels such as ErrCaptainUnreachable only match themselves.
func (e *DeliveryError) Is(target error) bool {
	return target == ErrDeliveryFailed
}

// ProvisioningError reports a failed resource teardown. It never blocks deregistration.
type ProvisioningError struct {
	TeamNumber int
	Cause      error
}

func (e *ProvisioningError) Error() string {
	return fmt.Sprintf("provisioning teardown for team %d failed: %v", e.TeamNumber, e.Cause)
}

// Unwrap exposes the underlying hook error
func (e *ProvisioningError) Unwrap() error {
	return e.Cause
}

// Is matches any ProvisioningError
func (e *ProvisioningError) Is(target error) bool {
	_, ok := target.(*ProvisioningError)
	return ok
}

// Entity Not Found Errors
var (
	ErrTeamNotFound        = &NotFoundError{Entity: "team"}
	ErrJoinRequestNotFound = &NotFoundError{Entity: "join request"}
	ErrAdminNotFound       = &NotFoundError{Entity: "admin"}
)

// Already Exists Errors
var (
	ErrAlreadyInTeam = &AlreadyExistsError{Entity: "team membership", Context: "for this user"}
	ErrAdminExists   = &AlreadyExistsError{Entity: "admin", Context: ""}
)

// Team State Errors
var (
	ErrNotInTeam           = &ConflictError{Message: "user is not in a team"}
	ErrTeamFull            = &ConflictError{Message: "team is full"}
	ErrAtCapacity          = &ConflictError{Message: "maximum number of teams reached, request a capacity increase"}
	ErrNoSlotsAvailable    = &ConflictError{Message: "no team numbers available, request a capacity increase"}
	ErrNotClosed           = &ConflictError{Message: "team number is not closed"}
	ErrAlreadyClosed       = &ConflictError{Message: "team number is already closed"}
	ErrJoinRequestExpired  = &ConflictError{Message: "join request has expired"}
	ErrInvalidTeamNumber   = &ConflictError{Message: "team number is outside the configured range"}
	ErrTeamSizeBelowRoster = &ConflictError{Message: "max team size is below the member count of an active team"}
	ErrTeamNotReady        = &ConflictError{Message: "team is still being created, try again"}
	ErrInvalidCommand      = &ValidationError{Field: "kind", Message: "unknown command"}
	ErrInvalidSettings     = &ValidationError{Field: "settings", Message: "values must be positive"}
)

// Authorization Errors
var (
	ErrUnauthorized = &AuthorizationError{Message: "caller is not an admin"}
	ErrNotCaptain   = &AuthorizationError{Message: "only the team captain can do this"}
)

// Authentication Errors
var (
	ErrMissingIdentity = &AuthenticationError{Message: "user identity not found in request"}
	ErrInvalidToken    = &AuthenticationError{Message: "invalid token"}
)

// Delivery and provisioning sentinels, for errors.Is
var (
	ErrDeliveryFailed     = &DeliveryError{}
	ErrCaptainUnreachable = &DeliveryError{Kind: "join_requested", UserID: "team captain"}
	ErrProvisioningFailed = &ProvisioningError{}
)

// Configuration Errors
var (
	ErrJenkinsNotConfigured = &ConfigurationError{Message: "jenkins teardown job is not configured"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsDelivery checks if an error is a DeliveryError
func IsDelivery(err error) bool {
	var deliveryErr *DeliveryError
	return errors.As(err, &deliveryErr)
}

// IsProvisioning checks if an error is a ProvisioningError
func IsProvisioning(err error) bool {
	var provErr *ProvisioningError
	return errors.As(err, &provErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewDeliveryError creates a DeliveryError for a failed notification
func NewDeliveryError(userID, kind string, cause error) error {
	return &DeliveryError{UserID: userID, Kind: kind, Cause: cause}
}

// NewProvisioningError creates a ProvisioningError for a failed teardown
func NewProvisioningError(teamNumber int, cause error) error {
	return &ProvisioningError{TeamNumber: teamNumber, Cause: cause}
}
