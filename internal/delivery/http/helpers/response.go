package helpers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"soccerslotmanager/internal/domain"
)

// APIError is the error body of every failed request. Detail is the
// user-facing message, historically in French.
// swagger:model APIError
type APIError struct {
	Detail string `json:"detail"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and encodes data.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteDetail writes an APIError body with the given status and detail message.
func WriteDetail(w http.ResponseWriter, statusCode int, detail string) {
	WriteJSON(w, statusCode, APIError{Detail: detail})
}

// statusOf maps a domain sentinel to its HTTP status and French detail.
// Unmapped errors fall through to a generic 500.
func statusOf(err error) (int, string, bool) {
	switch {
	case errors.Is(err, domain.ErrAuthRequired):
		return http.StatusUnauthorized, "Authentification requise.", true
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Identifiants invalides.", true
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Vous n'avez pas la permission d'effectuer cette action.", true
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "Utilisateur non trouvé.", true
	case errors.Is(err, domain.ErrSlotNotFound):
		return http.StatusNotFound, "Créneau non trouvé.", true
	case errors.Is(err, domain.ErrParticipantNotFound):
		return http.StatusNotFound, "Participant non trouvé.", true
	case errors.Is(err, domain.ErrTokenNotFound):
		return http.StatusNotFound, "Jeton d'invitation non trouvé ou déjà utilisé.", true
	case errors.Is(err, domain.ErrTokenExpired):
		return http.StatusBadRequest, "Jeton d'invitation expiré.", true
	case errors.Is(err, domain.ErrSlotFull):
		return http.StatusBadRequest, "Le créneau est complet (10 joueurs maximum).", true
	case errors.Is(err, domain.ErrAlreadyRegistered):
		return http.StatusBadRequest, "Vous êtes déjà inscrit pour ce match.", true
	case errors.Is(err, domain.ErrDuplicateGuestName):
		return http.StatusBadRequest, "Un invité porte déjà ce nom.", true
	case errors.Is(err, domain.ErrInvalidGuestName):
		return http.StatusBadRequest, "Le nom de l'invité doit contenir entre 1 et 100 caractères.", true
	case errors.Is(err, domain.ErrRegistrationClosed):
		return http.StatusBadRequest, "Les inscriptions sont fermées (du lundi 12h00 au mercredi 20h00).", true
	case errors.Is(err, domain.ErrInvalidPIN):
		return http.StatusBadRequest, "Le code PIN doit contenir exactement 4 chiffres.", true
	case errors.Is(err, domain.ErrDuplicateUsername):
		return http.StatusBadRequest, "Ce nom d'utilisateur est déjà pris.", true
	case errors.Is(err, domain.ErrInvalidTeamSize):
		return http.StatusBadRequest, "Chaque équipe doit contenir exactement 5 joueurs.", true
	case errors.Is(err, domain.ErrTeamOverlap):
		return http.StatusBadRequest, "Les équipes doivent être disjointes.", true
	case errors.Is(err, domain.ErrUnknownParticipant):
		return http.StatusBadRequest, "Un identifiant ne correspond à aucun participant du créneau.", true
	case errors.Is(err, domain.ErrInvalidScore):
		return http.StatusBadRequest, "Les scores doivent être des entiers positifs ou nuls.", true
	}
	return http.StatusInternalServerError, "Erreur serveur.", false
}

// WriteDomainError maps a service error to its HTTP response. Business-rule
// failures become 4xx with their French detail; anything else is logged and
// returned as a generic 500 without leaking internals.
func WriteDomainError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status, detail, known := statusOf(err)
	if !known && logger != nil {
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	}
	WriteDetail(w, status, detail)
}

// Validator is implemented by request DTOs that support validation.
// Validate returns a slice of error messages; nil or empty means valid.
type Validator interface {
	Validate() []string
}

// DecodeAndValidate decodes the request body into dest (with DisallowUnknownFields)
// and, if dest implements Validator, runs Validate(). Malformed bodies and
// validation failures are request-shape errors and get a 422.
// Callers should return immediately when DecodeAndValidate returns false.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		WriteDetail(w, http.StatusUnprocessableEntity, "Corps de requête invalide : "+err.Error())
		return false
	}
	if v, ok := dest.(Validator); ok {
		if errs := v.Validate(); len(errs) > 0 {
			WriteDetail(w, http.StatusUnprocessableEntity, strings.Join(errs, " ; "))
			return false
		}
	}
	return true
}

// UsernameParam reads the identity query parameter. Its absence is a
// request-shape failure (422); the caller resolves whether it names a real
// user. Callers should return immediately when ok is false.
func UsernameParam(w http.ResponseWriter, r *http.Request) (username string, ok bool) {
	username = strings.TrimSpace(r.URL.Query().Get("username"))
	if username == "" {
		WriteDetail(w, http.StatusUnprocessableEntity, "Le paramètre username est requis.")
		return "", false
	}
	return username, true
}
