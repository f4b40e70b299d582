package domain

// Broadcast event names pushed to connected clients after each mutation.
// Events carry no payload; clients re-fetch the affected collection.
const (
	EventProductUpdated   = "productUpdated"
	EventPechinchaUpdated = "pechinchaUpdated"
	EventPedidoUpdated    = "pedidoUpdated"
	EventReviewUpdated    = "reviewUpdated"
)

// Events lists every broadcast topic the realtime hub relays.
var Events = []string{
	EventProductUpdated,
	EventPechinchaUpdated,
	EventPedidoUpdated,
	EventReviewUpdated,
}
