package internal

import "github.com/go-playground/validator/v10"

// Validator checks the `validate` tags of decoded configuration structs.
var Validator = validator.New(validator.WithRequiredStructEnabled())
