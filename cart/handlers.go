package cart

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"vitrin/db"
	"vitrin/models"
	"vitrin/products"
	"vitrin/utils"
	"vitrin/variant"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// API bundles the cart handlers around the injected product catalog, used
// for server-side pricing and stock checks.
type API struct {
	catalog *products.Cache
}

func NewAPI(catalog *products.Cache) *API {
	return &API{catalog: catalog}
}

type addPayload struct {
	ProductID  string                    `json:"productId"`
	VariantID  string                    `json:"variantId,omitempty"`
	Attributes models.SelectedAttributes `json:"attributes,omitempty"`
	Quantity   int                       `json:"quantity"`
}

type updatePayload struct {
	ProductID string `json:"productId"`
	VariantID string `json:"variantId"`
	Quantity  int    `json:"quantity"`
	Action    string `json:"action,omitempty"` // "decrement", "increment" or "set"
}

type removePayload struct {
	ProductID string `json:"productId,omitempty"`
	VariantID string `json:"variantId,omitempty"`
}

// owner resolves who the cart belongs to: the authenticated user when a
// token was presented, the guest id header otherwise.
func owner(r *http.Request) (userID, guestID string) {
	return utils.GetUserIDFromRequest(r), utils.GetGuestIDFromRequest(r)
}

func loadCart(ctx context.Context, userID, guestID string) (*models.Cart, error) {
	if userID != "" {
		var c models.Cart
		err := db.CartCollection.FindOne(ctx, bson.M{"userId": userID}).Decode(&c)
		if err == mongo.ErrNoDocuments {
			return &models.Cart{UserID: userID, Items: []models.CartItem{}}, nil
		}
		if err != nil {
			return nil, err
		}
		if c.Items == nil {
			c.Items = []models.CartItem{}
		}
		return &c, nil
	}
	return LoadGuestCart(guestID)
}

func saveCart(ctx context.Context, userID, guestID string, c *models.Cart) error {
	if userID != "" {
		c.UserID = userID
		opts := options.Replace().SetUpsert(true)
		_, err := db.CartCollection.ReplaceOne(ctx, bson.M{"userId": userID}, c, opts)
		return err
	}
	return SaveGuestCart(guestID, c)
}

// requestedQuantity defaults an omitted quantity to one, then applies the
// product's floor. The flag fires only when the floor itself raised the
// value, never for the default.
func requestedQuantity(p *models.Product, requested int) (int, bool) {
	if requested < 1 {
		requested = 1
	}
	return variant.ClampQuantity(p, requested)
}

// GetCart returns the full authoritative cart for the caller.
func (a *API) GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, guestID := owner(r)
	if userID == "" && guestID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	c, err := loadCart(ctx, userID, guestID)
	if err != nil {
		log.Println("GetCart load error:", err)
		http.Error(w, "Could not retrieve cart", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, c)
}

// AddToCart prices the submitted combination server-side, merges it into
// the cart (never duplicating an equivalent combination) and returns the
// authoritative cart. When stock caps the requested quantity the response
// carries partialStock so the storefront can show its informational toast.
func (a *API) AddToCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload addPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("AddToCart decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if payload.ProductID == "" {
		http.Error(w, "Missing productId", http.StatusBadRequest)
		return
	}

	userID, guestID := owner(r)
	if userID == "" && guestID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	p, err := a.catalog.Get(ctx, payload.ProductID)
	if err != nil {
		log.Println("AddToCart product lookup error:", err)
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	quantity, minApplied := requestedQuantity(p, payload.Quantity)

	partial := false
	if limit := availableStock(p, payload.Attributes); limit >= 0 && quantity > limit {
		if limit == 0 {
			http.Error(w, "Out of stock", http.StatusConflict)
			return
		}
		quantity = limit
		partial = true
	}

	line := models.SelectedVariant{
		VariantID:  payload.VariantID,
		Attributes: payload.Attributes,
		Quantity:   quantity,
		Price:      variant.PriceForSelection(p, payload.Attributes),
	}
	line.SKU = p.SKU
	if v := variant.MatchVariant(p, payload.Attributes); v != nil {
		if v.SKU != "" {
			line.SKU = v.SKU
		}
		line.Image = v.Image
	}

	c, err := loadCart(ctx, userID, guestID)
	if err != nil {
		log.Println("AddToCart load error:", err)
		http.Error(w, "Could not retrieve cart", http.StatusInternalServerError)
		return
	}

	image := ""
	if len(p.Images) > 0 {
		image = p.Images[0]
	}
	AddSelection(c, p.ProductID, p.Name, image, p.Currency, line)

	if err := saveCart(ctx, userID, guestID, c); err != nil {
		log.Println("AddToCart save error:", err)
		http.Error(w, "Failed to add to cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"cart":               c,
		"partialStock":       partial,
		"minQuantityApplied": minApplied,
	})
}

// UpdateCartItem changes one line's quantity. Decrements below the
// product's quantity floor are rejected with a distinguished payload; a
// directly entered value is clamped up instead.
func (a *API) UpdateCartItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload updatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("UpdateCartItem decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if payload.ProductID == "" || payload.VariantID == "" {
		http.Error(w, "Missing productId or variantId", http.StatusBadRequest)
		return
	}

	userID, guestID := owner(r)
	if userID == "" && guestID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	quantity := payload.Quantity
	minApplied := false
	if quantity > 0 {
		p, err := a.catalog.Get(ctx, payload.ProductID)
		if err != nil {
			log.Println("UpdateCartItem product lookup error:", err)
			http.Error(w, "Product not found", http.StatusNotFound)
			return
		}
		if payload.Action == "decrement" {
			if err := variant.CheckDecrement(p, quantity); err != nil {
				utils.RespondWithJSON(w, http.StatusUnprocessableEntity, utils.M{
					"error":       "min_quantity",
					"minQuantity": variant.MinQuantity(p),
				})
				return
			}
		} else {
			quantity, minApplied = variant.ClampQuantity(p, quantity)
		}
	}

	c, err := loadCart(ctx, userID, guestID)
	if err != nil {
		log.Println("UpdateCartItem load error:", err)
		http.Error(w, "Could not retrieve cart", http.StatusInternalServerError)
		return
	}
	if !SetLineQuantity(c, payload.ProductID, payload.VariantID, quantity) {
		http.Error(w, "Cart line not found", http.StatusNotFound)
		return
	}
	if err := saveCart(ctx, userID, guestID, c); err != nil {
		log.Println("UpdateCartItem save error:", err)
		http.Error(w, "Failed to update cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"cart":               c,
		"minQuantityApplied": minApplied,
	})
}

// RemoveFromCart drops a line, an item, or the whole cart when the body is
// empty.
func (a *API) RemoveFromCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload removePayload
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&payload)
	}

	userID, guestID := owner(r)
	if userID == "" && guestID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	c, err := loadCart(ctx, userID, guestID)
	if err != nil {
		log.Println("RemoveFromCart load error:", err)
		http.Error(w, "Could not retrieve cart", http.StatusInternalServerError)
		return
	}

	switch {
	case payload.ProductID == "":
		c.Items = []models.CartItem{}
		Recompute(c)
	case payload.VariantID == "":
		if !RemoveItem(c, payload.ProductID) {
			http.Error(w, "Cart item not found", http.StatusNotFound)
			return
		}
	default:
		if !RemoveLine(c, payload.ProductID, payload.VariantID) {
			http.Error(w, "Cart line not found", http.StatusNotFound)
			return
		}
	}

	if err := saveCart(ctx, userID, guestID, c); err != nil {
		log.Println("RemoveFromCart save error:", err)
		http.Error(w, "Failed to update cart", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, c)
}

// availableStock returns how many units of the selected combination can be
// reserved, or -1 when nothing tracks stock for it.
func availableStock(p *models.Product, sel models.SelectedAttributes) int {
	if v := variant.MatchVariant(p, sel); v != nil && v.StockQuantity != nil {
		return int(*v.StockQuantity)
	}
	if cfg := p.VariantConfig; cfg != nil && cfg.PrimaryAttribute != "" {
		if picked := sel[cfg.PrimaryAttribute]; len(picked) == 1 {
			for _, v := range p.Variants {
				for _, pv := range v.PrimaryValues {
					if pv.Value == picked[0] && pv.Quantity != nil {
						return int(*pv.Quantity)
					}
				}
			}
		}
	}
	if p.Stock > 0 {
		return p.Stock
	}
	return -1
}
