package cart

import (
	"encoding/json"
	"fmt"
	"time"

	"vitrin/models"
	"vitrin/rdx"

	"github.com/redis/go-redis/v9"
)

const (
	guestCartKeyPrefix = "guest_cart:"
	guestCartTTL       = 30 * 24 * time.Hour
)

func guestCartKey(guestID string) string {
	return guestCartKeyPrefix + guestID
}

// LoadGuestCart reads the guest's cart from Redis; a missing key is an
// empty cart, not an error.
func LoadGuestCart(guestID string) (*models.Cart, error) {
	raw, err := rdx.RdxGet(guestCartKey(guestID))
	if err == redis.Nil {
		return &models.Cart{Items: []models.CartItem{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("guest cart read: %w", err)
	}
	var c models.Cart
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return nil, fmt.Errorf("guest cart decode: %w", err)
	}
	if c.Items == nil {
		c.Items = []models.CartItem{}
	}
	return &c, nil
}

// SaveGuestCart persists the cart after every mutation. Guest carts expire
// after thirty days of inactivity.
func SaveGuestCart(guestID string, c *models.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("guest cart encode: %w", err)
	}
	return rdx.RdxSetWithTTL(guestCartKey(guestID), string(data), guestCartTTL)
}

func ClearGuestCart(guestID string) error {
	return rdx.RdxDel(guestCartKey(guestID))
}
