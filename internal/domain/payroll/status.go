package payroll

// PayslipStatus enum
type PayslipStatus string

const (
	StatusGenerated PayslipStatus = "Généré"
	StatusSent      PayslipStatus = "Envoyé"
	StatusValidated PayslipStatus = "Validé"
)

var statusRank = map[PayslipStatus]int{
	StatusGenerated: 0,
	StatusSent:      1,
	StatusValidated: 2,
}

// IsValid reports whether s is one of the known lifecycle states.
func (s PayslipStatus) IsValid() bool {
	_, ok := statusRank[s]
	return ok
}

// CheckTransition enforces the forward-only lifecycle
// Généré → Envoyé → Validé. Skipping ahead is allowed, re-applying the
// current state is an idempotent no-op, and any backward move fails with
// ErrInvalidStatusTransition.
func CheckTransition(from, to PayslipStatus) error {
	fromRank, ok := statusRank[from]
	if !ok {
		return ErrInvalidStatus
	}
	toRank, ok := statusRank[to]
	if !ok {
		return ErrInvalidStatus
	}
	if toRank < fromRank {
		return ErrInvalidStatusTransition
	}
	return nil
}
