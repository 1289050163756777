package service

// CartEvent is the post-mutation notification handed to subscribers. The
// presentation layer listens here instead of being called inline from the
// mutation path.
type CartEvent struct {
	Kind          EventKind
	SessionID     string
	ProductName   string
	Quantity      int
	TotalQuantity int
}

type EventKind string

const (
	EventItemAdded   EventKind = "item_added"
	EventItemRemoved EventKind = "item_removed"
	EventItemUpdated EventKind = "item_updated"
	EventCartCleared EventKind = "cart_cleared"
)

type Subscriber func(CartEvent)
