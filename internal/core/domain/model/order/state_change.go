package order

// StateDomain identifies which derived state an observer notification is about.
type StateDomain string

const (
	// StateDomainPayment marks a change of the order's payment state.
	StateDomainPayment StateDomain = "payment"

	// StateDomainShipment marks a change of the order's shipment state.
	StateDomainShipment StateDomain = "shipment"
)

// StateChange is a fire-and-forget notification recorded on the order when a
// derived state changes value. External observers (audit trails, history
// logging) consume these; nothing in the recalculation core reads them back.
type StateChange struct {
	Domain StateDomain
	From   string
	To     string
}
