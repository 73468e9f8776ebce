// Package display holds pure presentation helpers: status color tokens,
// date rendering and money rendering. Nothing here touches the network.
package display

import "spicytrolly/internal/models"

// Color is a theme token the view layer maps to an actual style.
type Color string

const (
	ColorDefault Color = "default"
	ColorWarning Color = "warning"
	ColorInfo    Color = "info"
	ColorPrimary Color = "primary"
	ColorSuccess Color = "success"
	ColorError   Color = "error"
)

// StatusColor maps an order status to its display color. The function
// is total: an unknown status falls back to ColorDefault rather than
// failing, so extending the status set never breaks rendering.
func StatusColor(status models.OrderStatus) Color {
	switch status {
	case models.OrderPending:
		return ColorWarning
	case models.OrderConfirmed:
		return ColorInfo
	case models.OrderPreparing:
		return ColorPrimary
	case models.OrderCompleted:
		return ColorSuccess
	case models.OrderCancelled:
		return ColorError
	default:
		return ColorDefault
	}
}
