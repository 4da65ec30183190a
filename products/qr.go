package products

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetProductQR renders a share QR code pointing at the storefront's
// product page.
func (a *API) GetProductQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id := ps.ByName("id")
	if _, err := a.catalog.Get(ctx, id); err != nil {
		if err == mongo.ErrNoDocuments {
			http.Error(w, "Product not found", http.StatusNotFound)
			return
		}
		log.Println("GetProductQR lookup error:", err)
		http.Error(w, "Could not load product", http.StatusInternalServerError)
		return
	}

	base := os.Getenv("STOREFRONT_URL")
	if base == "" {
		base = "http://localhost:3000"
	}

	png, err := qrcode.Encode(base+"/products/"+id, qrcode.Medium, 256)
	if err != nil {
		log.Println("GetProductQR encode error:", err)
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
