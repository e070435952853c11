// internal/domain/errors.go
package domain

import "errors"

// Kind classifies an error for transport mapping. User-facing messages stay
// compatible with the historical API; handlers switch on the kind instead of
// parsing message strings.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindConflict
	KindValidation
	KindUnauthorized
	KindForbidden
)

// Error is a domain failure with a stable kind and a user-facing message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func NotFound(msg string) *Error     { return &Error{Kind: KindNotFound, Message: msg} }
func Conflict(msg string) *Error     { return &Error{Kind: KindConflict, Message: msg} }
func Validation(msg string) *Error   { return &Error{Kind: KindValidation, Message: msg} }
func Unauthorized(msg string) *Error { return &Error{Kind: KindUnauthorized, Message: msg} }
func Forbidden(msg string) *Error    { return &Error{Kind: KindForbidden, Message: msg} }

// KindOf extracts the kind of err, or KindInternal for non-domain errors.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// Account errors
	ErrUserNotFound       = NotFound("Utilisateur non trouvé")
	ErrEmailAlreadyExists = Conflict("Un compte existe déjà avec cet email")
	ErrInvalidCredentials = Unauthorized("Email ou mot de passe incorrect")
	ErrAdminImmutable     = Forbidden("Impossible de modifier le rôle d'un administrateur")
	ErrAdminUndeletable   = Forbidden("Impossible de désactiver un compte administrateur")
	ErrNotAProfessional   = Validation("L'utilisateur n'est pas un professionnel")

	// Assignment errors, message texts kept from the historical API
	ErrCaseNotFound         = NotFound("Cas non trouvé")
	ErrCaseAlreadyAssigned  = Conflict("Ce cas est déjà assigné")
	ErrProfessionalNotFound = NotFound("Professionnel non trouvé")
	ErrProfessionalInactive = Conflict("Ce professionnel n'est pas actif")
	ErrEmergencyNotFound    = NotFound("Urgence non trouvée")
	ErrEmergencyAssigned    = Conflict("Cette urgence est déjà assignée")
	ErrProfessionalBusy     = Conflict("Impossible de supprimer un professionnel ayant des cas actifs")

	// Resource errors
	ErrHousingNotFound      = NotFound("Logement non trouvé")
	ErrStructureNotFound    = NotFound("Structure non trouvée")
	ErrShelterNotFound      = NotFound("Hébergement non trouvé")
	ErrRequestNotFound      = NotFound("Demande non trouvée")
	ErrDonationNotFound     = NotFound("Don non trouvé")
	ErrMessageNotFound      = NotFound("Message non trouvé")
	ErrAlertNotFound        = NotFound("Alerte non trouvée")
	ErrConversationNotFound = NotFound("Conversation non trouvée")
)
