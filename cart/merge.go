package cart

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"vitrin/models"
	"vitrin/rdx"
	"vitrin/utils"

	"github.com/julienschmidt/httprouter"
)

const mergeFlagTTL = 24 * time.Hour

type mergePayload struct {
	GuestID string            `json:"guestId"`
	Items   []models.CartItem `json:"items"`
}

// mergeStore is the storage surface the merge sequence runs against. The
// handler wires it to Redis and Mongo; tests substitute in-memory funcs.
type mergeStore struct {
	acquire    func(userID, guestID string) (bool, error)
	release    func(userID, guestID string) error
	loadUser   func(ctx context.Context, userID string) (*models.Cart, error)
	saveUser   func(ctx context.Context, userID string, c *models.Cart) error
	loadGuest  func(guestID string) (*models.Cart, error)
	clearGuest func(guestID string) error
}

func defaultMergeStore() mergeStore {
	flagKey := func(userID, guestID string) string {
		return "cart_merge_done:" + userID + ":" + guestID
	}
	return mergeStore{
		acquire: func(userID, guestID string) (bool, error) {
			return rdx.RdxSetNX(flagKey(userID, guestID), "1", mergeFlagTTL)
		},
		release: func(userID, guestID string) error {
			return rdx.RdxDel(flagKey(userID, guestID))
		},
		loadUser: func(ctx context.Context, userID string) (*models.Cart, error) {
			return loadCart(ctx, userID, "")
		},
		saveUser: func(ctx context.Context, userID string, c *models.Cart) error {
			return saveCart(ctx, userID, "", c)
		},
		loadGuest:  LoadGuestCart,
		clearGuest: ClearGuestCart,
	}
}

// mergeGuest folds guest items into the user's cart exactly once per
// (user, guest) pair. The one-shot flag only counts once the merged cart is
// persisted: any failure between acquiring the flag and saving releases it
// again, so a retry re-runs the merge instead of seeing a false
// already-merged.
func mergeGuest(ctx context.Context, s mergeStore, userID, guestID string, items []models.CartItem) (string, *models.Cart, error) {
	won, err := s.acquire(userID, guestID)
	if err != nil {
		return "", nil, err
	}
	if !won {
		c, err := s.loadUser(ctx, userID)
		if err != nil {
			return "", nil, err
		}
		return "already-merged", c, nil
	}

	if len(items) == 0 {
		// the client may post an empty body and rely on the server copy
		if guest, err := s.loadGuest(guestID); err == nil {
			items = guest.Items
		}
	}

	c, err := s.loadUser(ctx, userID)
	if err != nil {
		if relErr := s.release(userID, guestID); relErr != nil {
			log.Println("merge flag release error:", relErr)
		}
		return "", nil, err
	}

	for _, item := range items {
		for _, line := range item.Variants {
			AddSelection(c, item.ProductID, item.ProductName, item.Image, item.Currency, line)
		}
	}

	if err := s.saveUser(ctx, userID, c); err != nil {
		if relErr := s.release(userID, guestID); relErr != nil {
			log.Println("merge flag release error:", relErr)
		}
		return "", nil, err
	}

	if err := s.clearGuest(guestID); err != nil {
		log.Println("guest cart clear error:", err)
	}
	return "merged", c, nil
}

// MergeGuestCart folds a guest cart into the signed-in user's server cart
// using the same dedup rule as add-to-cart, so nothing duplicates. The
// merge is one-shot per (user, guest) pair; a client re-sending on every
// render gets an idempotent no-op. The guest cart key is cleared on merge
// so a stale local copy cannot re-merge after the flag expires.
func (a *API) MergeGuestCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var payload mergePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("MergeGuestCart decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if payload.GuestID == "" {
		http.Error(w, "Missing guestId", http.StatusBadRequest)
		return
	}

	status, c, err := mergeGuest(ctx, defaultMergeStore(), userID, payload.GuestID, payload.Items)
	if err != nil {
		log.Println("MergeGuestCart error:", err)
		http.Error(w, "Merge failed", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": status, "cart": c})
}
