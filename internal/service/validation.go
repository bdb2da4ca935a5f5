package service

import (
	"net/mail"
	"strings"
)

// FieldError describe la primera regla de validación incumplida.
type FieldError struct {
	Field   string `json:"path"`
	Message string `json:"message"`
}

// SignupPayload es el cuerpo validado de POST /user/signup.
type SignupPayload struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// SigninPayload es el cuerpo validado de POST /user/signin.
type SigninPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// WeatherPayload es el cuerpo validado de GET /weather/.
type WeatherPayload struct {
	Location string `json:"location"`
}

// ValidateSignup evalúa las reglas de registro en orden de declaración y
// devuelve solo el primer incumplimiento.
func ValidateSignup(p SignupPayload) *FieldError {
	if len(p.Username) < 5 {
		return &FieldError{Field: "username", Message: "Username is required with minimum 5 characters"}
	}
	if !isValidEmail(p.Email) {
		return &FieldError{Field: "email", Message: "Invalid email"}
	}
	if len(p.Password) < 8 {
		return &FieldError{Field: "password", Message: "Password must be at least 8 characters long"}
	}
	if !hasPasswordComplexity(p.Password) {
		return &FieldError{Field: "password", Message: "Password should contain at least 1 UPPERCASE, 1 lowercase and 1 number"}
	}
	if p.FirstName == "" {
		return &FieldError{Field: "firstName", Message: "First Name is a required field"}
	}
	if p.LastName == "" {
		return &FieldError{Field: "lastName", Message: "Last Name is a required field"}
	}
	return nil
}

// ValidateSignin solo exige presencia; la complejidad no se reevalúa al entrar.
func ValidateSignin(p SigninPayload) *FieldError {
	if p.Username == "" {
		return &FieldError{Field: "username", Message: "Username is required"}
	}
	if p.Password == "" {
		return &FieldError{Field: "password", Message: "Password is required"}
	}
	return nil
}

// ValidateWeather valida la consulta de clima.
func ValidateWeather(p WeatherPayload) *FieldError {
	if p.Location == "" {
		return &FieldError{Field: "location", Message: "Location is required"}
	}
	return nil
}

func isValidEmail(addr string) bool {
	if addr == "" {
		return false
	}
	parsed, err := mail.ParseAddress(addr)
	if err != nil || parsed.Address != addr {
		return false
	}
	// RFC 5322 admite "a@b", pero una cuenta registrable necesita un dominio
	// con punto.
	at := strings.LastIndex(addr, "@")
	return at >= 0 && strings.Contains(addr[at+1:], ".")
}

// hasPasswordComplexity exige al menos una minúscula, una mayúscula y un
// dígito, y solo admite letras y dígitos ASCII en todo el password.
func hasPasswordComplexity(password string) bool {
	var lower, upper, digit bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			return false
		}
	}
	return lower && upper && digit
}
