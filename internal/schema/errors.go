package schema

import "fmt"

// CircularError reports a definition that transitively references itself.
// Resolution never guesses: the build fails naming the offending id.
type CircularError struct {
	DefinitionID int
}

func (e *CircularError) Error() string {
	return fmt.Sprintf("circular schema reference: definition %d is already being resolved", e.DefinitionID)
}

// NotFoundError reports a reference to a definition id the registry cannot resolve.
type NotFoundError struct {
	DefinitionID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("schema definition %d not found", e.DefinitionID)
}
