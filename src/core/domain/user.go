package domain

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var usernamePattern = regexp.MustCompile(`^\w+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
	return v
}

// RegisterUser is a validated sign-up request.
type RegisterUser struct {
	Username string `validate:"max=50,username"`
	Password string
	Fullname string
}

// NewRegisterUser validates a registration payload {username, password, fullname}.
// Beyond presence and type, the username is limited to 50 characters of
// letters, digits and underscores.
func NewRegisterUser(p Payload) (*RegisterUser, error) {
	v, err := RequireStrings("REGISTER_USER", p, "username", "password", "fullname")
	if err != nil {
		return nil, err
	}
	u := &RegisterUser{Username: v["username"], Password: v["password"], Fullname: v["fullname"]}

	if err := validate.Struct(u); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			switch verrs[0].Tag() {
			case "max":
				return nil, NewValidationError("REGISTER_USER.USERNAME_LIMIT_CHAR", "username", "username exceeds 50 characters")
			case "username":
				return nil, NewValidationError("REGISTER_USER.USERNAME_CONTAIN_RESTRICTED_CHARACTER", "username", "username contains restricted characters")
			}
		}
		return nil, err
	}
	return u, nil
}

// RegisteredUser is the result of a successful registration.
type RegisteredUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
}

// UserLogin is a validated login request.
type UserLogin struct {
	Username string
	Password string
}

// NewUserLogin validates a login payload {username, password}.
func NewUserLogin(p Payload) (*UserLogin, error) {
	v, err := RequireStrings("USER_LOGIN", p, "username", "password")
	if err != nil {
		return nil, err
	}
	return &UserLogin{Username: v["username"], Password: v["password"]}, nil
}

// NewAuth is a freshly issued token pair.
type NewAuth struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
