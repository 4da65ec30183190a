package products

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"vitrin/db"
	"vitrin/models"
	"vitrin/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// GetVariantImages lists the attribute-combination images for a product.
func (a *API) GetVariantImages(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{"productid": ps.ByName("id")}
	cursor, err := db.VariantImageCollection.Find(ctx, filter)
	if err != nil {
		log.Println("GetVariantImages find error:", err)
		http.Error(w, "Could not list variant images", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var images []models.VariantImage
	if err := cursor.All(ctx, &images); err != nil {
		log.Println("GetVariantImages cursor error:", err)
		http.Error(w, "Error reading variant images", http.StatusInternalServerError)
		return
	}
	if images == nil {
		images = []models.VariantImage{}
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 && limit < len(images) {
			images = images[:limit]
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"variantImages": images})
}

// DeleteVariantImage removes every image record for (productId, imageUrl)
// and answers with the remaining count. Registered on POST and DELETE; the
// admin client historically used both.
func (a *API) DeleteVariantImage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload struct {
		ProductID string `json:"productId"`
		ImageURL  string `json:"imageUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("DeleteVariantImage decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if payload.ProductID == "" || payload.ImageURL == "" {
		http.Error(w, "Missing productId or imageUrl", http.StatusBadRequest)
		return
	}

	filter := bson.M{"productid": payload.ProductID, "imageUrl": payload.ImageURL}
	if _, err := db.VariantImageCollection.DeleteMany(ctx, filter); err != nil {
		log.Println("DeleteVariantImage delete error:", err)
		http.Error(w, "Failed to delete variant image", http.StatusInternalServerError)
		return
	}

	remaining, err := db.VariantImageCollection.CountDocuments(ctx, bson.M{"productid": payload.ProductID})
	if err != nil {
		log.Println("DeleteVariantImage count error:", err)
		http.Error(w, "Failed to count variant images", http.StatusInternalServerError)
		return
	}

	a.catalog.InvalidateAfter(payload.ProductID, 500*time.Millisecond)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"remainingImages": remaining})
}

// FindImageForAttributes picks the image whose criteria match the given
// attribute selection: the current multi-criteria form first, then the
// legacy single-attribute form.
func FindImageForAttributes(images []models.VariantImage, attrs models.SelectedAttributes) *models.VariantImage {
	for i := range images {
		img := &images[i]
		if len(img.Attributes) == 0 {
			continue
		}
		all := true
		for _, ref := range img.Attributes {
			if !attrs[ref.Name].Contains(ref.Value) {
				all = false
				break
			}
		}
		if all {
			return img
		}
	}
	for i := range images {
		img := &images[i]
		if img.Attribute == nil {
			continue
		}
		if attrs[img.Attribute.Name].Contains(img.Attribute.Value) {
			return img
		}
	}
	return nil
}
