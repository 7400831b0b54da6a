package services

// Capability tags the action an authenticated user is attempting. Each
// endpoint authorizes under exactly one capability.
type Capability string

const (
	CapCreateQuestion     Capability = "CREATE_QUESTION"
	CapGetAllQuestions    Capability = "GET_ALL_QUESTIONS"
	CapCheckQuestion      Capability = "CHECK_QUESTION"
	CapDeleteQuestion     Capability = "DELETE_QUESTION"
	CapGetQuestionsByUser Capability = "GET_QUESTION_BY_USER"
	CapCreateAnswer       Capability = "CREATE_ANSWER"
	CapCheckAnswer        Capability = "CHECK_ANSWER"
	CapDeleteAnswer       Capability = "DELETE_ANSWER"
	CapGetAllAnswers      Capability = "GET_ALL_ANSWERS"
	CapUserProfile        Capability = "USER_PROFILE"
	CapAdminDeleteUser    Capability = "ADMIN_DELETE_USER"
)

// AdminOnly reports whether the capability requires the admin role outright.
// Ownership-scoped capabilities are enforced by the owning service once the
// resource is loaded.
func (c Capability) AdminOnly() bool { return c == CapAdminDeleteUser }
