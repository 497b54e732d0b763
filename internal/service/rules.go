package service

import (
	"fmt"
	"strconv"
	"unicode/utf16"

	"github.com/go-playground/validator/v10"

	"socialmedia/internal/apperr"
)

const (
	MinPasswordLength = 4
	MaxMessageLength  = 255
	// MaxColumnLength is the VARCHAR width of the username and password
	// columns, counted in characters by Postgres.
	MaxColumnLength = 255
)

var (
	validate = newValidator()

	passwordRule    = fmt.Sprintf("utf16min=%d", MinPasswordLength)
	messageTextRule = fmt.Sprintf("utf16max=%d", MaxMessageLength)
	columnRule      = fmt.Sprintf("max=%d", MaxColumnLength)
)

var (
	errBlankUsername   = apperr.InvalidRequest("Username cannot be blank")
	errLongUsername    = apperr.InvalidRequest("Username cannot be over 255 characters")
	errShortPassword   = apperr.InvalidRequest("Password has to be at least 4 characters long")
	errLongPassword    = apperr.InvalidRequest("Password cannot be over 255 characters")
	errDuplicateUser   = apperr.DuplicateResource("A user with this username already exists.")
	errBadCredentials  = apperr.ResourceNotFound("No account was found with given credentials")
	errUnknownAccount  = apperr.ResourceNotFound("Account with this ID does not exist")
	errInvalidAuthor   = apperr.InvalidRequest("Message needs to be posted by a valid user.")
	errBlankMessage    = apperr.InvalidRequest("Message cannot be blank.")
	errLongMessage     = apperr.InvalidRequest("Message cannot be over 255 characters.")
	errUnknownMessage  = apperr.ResourceNotFound("Message with this ID does not exist")
	errPatchMissingMsg = apperr.InvalidRequest("Cannot update a message with this ID because it does not exist.")
)

// utf16min and utf16max measure strings in UTF-16 code units, so a
// character outside the Basic Multilingual Plane counts as two.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("utf16min", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		return err == nil && utf16Len(fl.Field().String()) >= limit
	})
	v.RegisterValidation("utf16max", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		return err == nil && utf16Len(fl.Field().String()) <= limit
	})
	return v
}

func utf16Len(s string) int {
	return len(utf16.Encode([]rune(s)))
}

func checkUsername(username string) error {
	if validate.Var(username, "required") != nil {
		return errBlankUsername
	}
	if validate.Var(username, columnRule) != nil {
		return errLongUsername
	}
	return nil
}

func checkPassword(password string) error {
	if validate.Var(password, passwordRule) != nil {
		return errShortPassword
	}
	if validate.Var(password, columnRule) != nil {
		return errLongPassword
	}
	return nil
}

// The UTF-16 limit is never looser than the character-counted VARCHAR(255).
func checkMessageText(text string) error {
	if validate.Var(text, "required") != nil {
		return errBlankMessage
	}
	if validate.Var(text, messageTextRule) != nil {
		return errLongMessage
	}
	return nil
}
