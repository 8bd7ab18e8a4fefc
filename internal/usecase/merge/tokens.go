package merge

// Placeholder tokens understood by agreement templates.
const (
	TokenProjectName     = "{{PROJECT_NAME}}"
	TokenClientName      = "{{CLIENT_NAME}}"
	TokenClientAddress   = "{{CLIENT_ADDRESS}}"
	TokenProjectDuration = "{{PROJECT_DURATION}}"
	TokenEstimatedBudget = "{{ESTIMATED_BUDGET}}"
	TokenAgreementDate   = "{{AGREEMENT_DATE}}"
	TokenNumberOfFloors  = "{{NUMBER_OF_FLOORS}}"
	TokenEstimationTable = "{{ESTIMATION_TABLE}}"
)

// KnownTokens lists every token Render substitutes.
var KnownTokens = []string{
	TokenProjectName,
	TokenClientName,
	TokenClientAddress,
	TokenProjectDuration,
	TokenEstimatedBudget,
	TokenAgreementDate,
	TokenNumberOfFloors,
	TokenEstimationTable,
}

// AgreementDateLayout is how {{AGREEMENT_DATE}} is printed (dd/mm/yyyy).
const AgreementDateLayout = "02/01/2006"
