// Package validation validates configuration structs by `validate` tag,
// reporting failures as INVALID_CONFIG errors with per-field details.
//
//	type Config struct {
//	    Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
//	}
//	err := validation.ValidateStruct(cfg)
package validation
