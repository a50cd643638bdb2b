package order

// Children is the current snapshot of collaborator-owned child records
// belonging to one order. Recalculation is a pure function of this snapshot:
// running it twice with unchanged children yields identical order state.
//
// Collection order matters for payments: the last element is the most
// recently added payment, whose status drives failure classification.
// Repositories must return payments ordered by creation time.
type Children struct {
	Payments  []*Payment
	LineItems []*LineItem
	Shipments []*Shipment
}

// LastPayment returns the most recently added payment, or nil when the order
// has no payments.
func (c Children) LastPayment() *Payment {
	if len(c.Payments) == 0 {
		return nil
	}
	return c.Payments[len(c.Payments)-1]
}
