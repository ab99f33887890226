// Package contact gates contact-form submissions. Validation is the whole
// externally observable contract; delivery (email, CRM, storage) is an
// explicit collaborator boundary behind the Deliverer interface.
package contact

// Submission is a candidate contact-form payload.
type Submission struct {
	Name    string
	Email   string
	Phone   string
	Message string
}
