package store

// RenewalStatus is the coarse lifecycle outcome of a policy term.
type RenewalStatus string

const (
	RenewalStatusPending       RenewalStatus = "Pending"
	RenewalStatusInProgress    RenewalStatus = "InProgress"
	RenewalStatusRenewed       RenewalStatus = "Renewed"
	RenewalStatusLost          RenewalStatus = "Lost"
	RenewalStatusNotInterested RenewalStatus = "NotInterested"
)

// IsValid reports whether the status is one of the closed set.
func (s RenewalStatus) IsValid() bool {
	switch s {
	case RenewalStatusPending, RenewalStatusInProgress, RenewalStatusRenewed,
		RenewalStatusLost, RenewalStatusNotInterested:
		return true
	}
	return false
}

// IsClosed reports whether the status excludes the policy from the
// actionable renewal queue.
func (s RenewalStatus) IsClosed() bool {
	switch s {
	case RenewalStatusRenewed, RenewalStatusLost, RenewalStatusNotInterested:
		return true
	}
	return false
}

// RenewalStage is the finer-grained sales-pipeline position within an
// in-progress renewal.
type RenewalStage string

const (
	RenewalStageNew             RenewalStage = "New"
	RenewalStageContacted       RenewalStage = "Contacted"
	RenewalStageFollowUp        RenewalStage = "FollowUp"
	RenewalStageQuoteSent       RenewalStage = "QuoteSent"
	RenewalStageNegotiation     RenewalStage = "Negotiation"
	RenewalStageAccepted        RenewalStage = "Accepted"
	RenewalStagePaymentPending  RenewalStage = "PaymentPending"
	RenewalStagePaymentReceived RenewalStage = "PaymentReceived"
	RenewalStagePolicyIssued    RenewalStage = "PolicyIssued"
	RenewalStageClosed          RenewalStage = "Closed"
)

// IsValid reports whether the stage is one of the closed set.
func (s RenewalStage) IsValid() bool {
	switch s {
	case RenewalStageNew, RenewalStageContacted, RenewalStageFollowUp,
		RenewalStageQuoteSent, RenewalStageNegotiation, RenewalStageAccepted,
		RenewalStagePaymentPending, RenewalStagePaymentReceived,
		RenewalStagePolicyIssued, RenewalStageClosed:
		return true
	}
	return false
}

// InteractionType is the channel an agent used to reach the customer.
type InteractionType string

const (
	InteractionTypeCall     InteractionType = "Call"
	InteractionTypeWhatsApp InteractionType = "WhatsApp"
	InteractionTypeSystem   InteractionType = "System"
)

// IsValid reports whether the type is one of the closed set.
func (t InteractionType) IsValid() bool {
	switch t {
	case InteractionTypeCall, InteractionTypeWhatsApp, InteractionTypeSystem:
		return true
	}
	return false
}

// InteractionOutcome is the result code an agent records for a touch.
type InteractionOutcome string

const (
	OutcomeContacted        InteractionOutcome = "Contacted"
	OutcomeCallbackLater    InteractionOutcome = "CallbackLater"
	OutcomeQuoteSent        InteractionOutcome = "QuoteSent"
	OutcomeNegotiating      InteractionOutcome = "Negotiating"
	OutcomeAccepted         InteractionOutcome = "Accepted"
	OutcomePaymentPending   InteractionOutcome = "PaymentPending"
	OutcomePaymentReceived  InteractionOutcome = "PaymentReceived"
	OutcomeRenewed          InteractionOutcome = "Renewed"
	OutcomeNotInterested    InteractionOutcome = "NotInterested"
	OutcomeRenewedElsewhere InteractionOutcome = "RenewedElsewhere"
	OutcomeNoAnswer         InteractionOutcome = "NoAnswer"
	OutcomeWrongNumber      InteractionOutcome = "WrongNumber"
)

// IsValid reports whether the outcome is one of the closed set.
func (o InteractionOutcome) IsValid() bool {
	switch o {
	case OutcomeContacted, OutcomeCallbackLater, OutcomeQuoteSent,
		OutcomeNegotiating, OutcomeAccepted, OutcomePaymentPending,
		OutcomePaymentReceived, OutcomeRenewed, OutcomeNotInterested,
		OutcomeRenewedElsewhere, OutcomeNoAnswer, OutcomeWrongNumber:
		return true
	}
	return false
}

// IsLoss reports whether the outcome terminates the renewal as lost.
func (o InteractionOutcome) IsLoss() bool {
	return o == OutcomeNotInterested || o == OutcomeRenewedElsewhere
}

// Payment mode constants recorded by the renewal transactor.
const (
	PaymentModeCash   = "cash"
	PaymentModeUPI    = "upi"
	PaymentModeCard   = "card"
	PaymentModeCheque = "cheque"
	PaymentModeOnline = "online"
)

// ValidPaymentMode reports whether m is a supported payment mode.
func ValidPaymentMode(m string) bool {
	switch m {
	case PaymentModeCash, PaymentModeUPI, PaymentModeCard, PaymentModeCheque, PaymentModeOnline:
		return true
	}
	return false
}
