package dto

type CreateEmailTemplateRequest struct {
	Name      string   `json:"name" validate:"required"`
	Subject   string   `json:"subject" validate:"required"`
	Body      string   `json:"body" validate:"required"`
	Variables []string `json:"variables"`
	IsActive  *bool    `json:"isActive"`
}

type UpdateEmailTemplateRequest struct {
	Name      *string  `json:"name"`
	Subject   *string  `json:"subject"`
	Body      *string  `json:"body"`
	Variables []string `json:"variables"`
	IsActive  *bool    `json:"isActive"`
}

// SendEmailRequest either names a stored template (with variable values to
// substitute) or carries a raw subject/body pair.
type SendEmailRequest struct {
	To           string            `json:"to" validate:"required,email"`
	TemplateName string            `json:"templateName"`
	Variables    map[string]string `json:"variables"`
	Subject      string            `json:"subject"`
	Body         string            `json:"body"`
}

type SendEmailResponse struct {
	Success bool `json:"success"`
}
