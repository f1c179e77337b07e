package cli

import (
	"fmt"

	"github.com/skssh/skssh/internal/errors"
)

// requiredFlagError builds the standard error for a missing required flag.
// Validation happens here rather than via cobra's MarkFlagRequired so the
// message carries a suggestion in the usual error format.
func requiredFlagError(flag, suggestion string) error {
	return errors.New(errors.ErrConfig,
		fmt.Sprintf("%s is required", flag),
		suggestion)
}
