package core

// missingTypeMessage is the fixed message reported when a create request
// carries no project type.
const missingTypeMessage = "a project type is required (--type app|lib)"

// CreateArgs is the validatable portion of a create request.
type CreateArgs struct {
	Type string
}

// ValidationResult reports a validation outcome as data, never as an
// error: callers present Message directly without exception handling.
type ValidationResult struct {
	Validated bool
	Message   string
}

// ValidateCreateCommand checks a create request. Pure: no I/O, no registry
// lookups. It fails only when the project type is absent or empty.
func ValidateCreateCommand(args CreateArgs) ValidationResult {
	if args.Type == "" {
		return ValidationResult{Validated: false, Message: missingTypeMessage}
	}
	return ValidationResult{Validated: true}
}
