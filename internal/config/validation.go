package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks struct tags first, then rules that span several fields.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return formatValidationError(err)
	}

	if cfg.Storage.Type == "s3" && cfg.Storage.S3.Bucket == "" {
		return errors.New("storage.s3.bucket: required when storage.type is s3")
	}
	if cfg.Storage.Type == "local" && cfg.Storage.Path == "" {
		return errors.New("storage.path: required when storage.type is local")
	}

	return nil
}

// formatValidationError reports the first failing field. Values are left out
// since several fields hold secrets.
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		e := validationErrs[0]
		return fmt.Errorf("%s: validation failed on '%s' tag", e.Namespace(), e.Tag())
	}
	return err
}
