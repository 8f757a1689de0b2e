// Package cart implements the client-local shopping cart. A Cart lives in a
// single session: the server never sees it until its lines are submitted to
// POST /api/orders at checkout.
package cart

import (
	"time"

	"github.com/harshrathod2434/Madras-Meals/models"
)

// Notification timing for the transient "item added" toast. UI affordance
// only; auto-dismiss after Timeout, exit animation runs for ExitDelay.
const (
	NotificationTimeout   = 3500 * time.Millisecond
	NotificationExitDelay = 500 * time.Millisecond
)

// Notification is emitted every time an item is added.
type Notification struct {
	ItemName  string
	Timeout   time.Duration
	ExitDelay time.Duration
}

// Line is one cart entry: a catalog reference plus quantity, with the listed
// price kept alongside so totals can be shown without a server round trip.
// The server recomputes the real total from the catalog at checkout.
type Line struct {
	MenuItemID uint
	Name       string
	Price      float64
	Quantity   int
}

// CheckoutLine is the wire shape POST /api/orders expects per item.
type CheckoutLine struct {
	MenuItem uint `json:"menuItem"`
	Quantity int  `json:"quantity"`
}

// Cart is an ordered collection of lines. Not safe for concurrent use; a cart
// belongs to exactly one session.
type Cart struct {
	lines    []Line
	notifier func(Notification)
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// NewWithNotifier returns an empty cart that calls notify on every Add.
func NewWithNotifier(notify func(Notification)) *Cart {
	return &Cart{notifier: notify}
}

// Add puts one unit of item in the cart. Adding an item already present
// increments its quantity instead of appending a duplicate line.
func (c *Cart) Add(item models.MenuItem) {
	found := false
	for i := range c.lines {
		if c.lines[i].MenuItemID == item.ID {
			c.lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		c.lines = append(c.lines, Line{
			MenuItemID: item.ID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   1,
		})
	}
	if c.notifier != nil {
		c.notifier(Notification{
			ItemName:  item.Name,
			Timeout:   NotificationTimeout,
			ExitDelay: NotificationExitDelay,
		})
	}
}

// UpdateQuantity sets the quantity for a line. A quantity of zero or less
// removes the line.
func (c *Cart) UpdateQuantity(menuItemID uint, qty int) {
	if qty <= 0 {
		c.Remove(menuItemID)
		return
	}
	for i := range c.lines {
		if c.lines[i].MenuItemID == menuItemID {
			c.lines[i].Quantity = qty
			return
		}
	}
}

// Remove drops the line for menuItemID, if present.
func (c *Cart) Remove(menuItemID uint) {
	for i := range c.lines {
		if c.lines[i].MenuItemID == menuItemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// TotalItems returns the total unit count across all lines.
func (c *Cart) TotalItems() int {
	total := 0
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

// TotalPrice sums price × quantity over all lines. Recomputed on every call.
func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, l := range c.lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// Lines returns a copy of the cart contents in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// CheckoutLines converts the cart into the order-creation payload.
func (c *Cart) CheckoutLines() []CheckoutLine {
	out := make([]CheckoutLine, 0, len(c.lines))
	for _, l := range c.lines {
		out = append(out, CheckoutLine{MenuItem: l.MenuItemID, Quantity: l.Quantity})
	}
	return out
}
