package http

import "github.com/go-playground/validator/v10"

// validate es seguro para uso concurrente y cachea la metadata de los structs.
var validate = validator.New(validator.WithRequiredStructEnabled())
