package httperr

import "errors"

// BusinessError distingue un rechazo de negocio (resultado negativo normal)
// de una falla inesperada del sistema. Nunca debe confundirse un rechazo
// con un error de la base.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func IsAnyBusiness(err error) bool {
	var be BusinessError
	return errors.As(err, &be)
}
