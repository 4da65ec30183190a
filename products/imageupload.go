package products

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"vitrin/db"
	"vitrin/models"
	"vitrin/utils"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	_ "golang.org/x/image/webp"
)

const (
	variantPicDir = "static/variantpic"
	thumbWidth    = 300
)

// UploadVariantImage accepts a multipart image for a product, stores the
// original plus a resized thumbnail, and records which attribute
// combination the image illustrates (the attributes form field is a JSON
// array of {name,value} pairs).
func (a *API) UploadVariantImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	productID := ps.ByName("id")
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "Missing image file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")
	switch mimeType {
	case "image/jpeg", "image/png", "image/webp", "image/gif":
	default:
		http.Error(w, "Unsupported image type", http.StatusBadRequest)
		return
	}

	img, err := imaging.Decode(file)
	if err != nil {
		log.Println("UploadVariantImage decode error:", err)
		http.Error(w, "Cannot decode image", http.StatusBadRequest)
		return
	}

	if err := os.MkdirAll(variantPicDir, 0o755); err != nil {
		log.Println("UploadVariantImage mkdir error:", err)
		http.Error(w, "Storage failure", http.StatusInternalServerError)
		return
	}

	name := uuid.NewString()
	fullPath := filepath.Join(variantPicDir, name+".jpg")
	thumbPath := filepath.Join(variantPicDir, name+"_thumb.jpg")

	if err := imaging.Save(img, fullPath); err != nil {
		log.Println("UploadVariantImage save error:", err)
		http.Error(w, "Storage failure", http.StatusInternalServerError)
		return
	}
	thumb := imaging.Resize(img, thumbWidth, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, thumbPath); err != nil {
		log.Println("UploadVariantImage thumb error:", err)
		http.Error(w, "Storage failure", http.StatusInternalServerError)
		return
	}

	record := models.VariantImage{
		ImageID:   name,
		ProductID: productID,
		ImageURL:  "/" + fullPath,
		VariantID: r.FormValue("variantId"),
		CreatedAt: time.Now(),
	}
	if raw := r.FormValue("attributes"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &record.Attributes); err != nil {
			http.Error(w, "Invalid attributes field", http.StatusBadRequest)
			return
		}
	}

	if _, err := db.VariantImageCollection.InsertOne(ctx, record); err != nil {
		log.Println("UploadVariantImage insert error:", err)
		http.Error(w, "Failed to store variant image", http.StatusInternalServerError)
		return
	}

	a.catalog.InvalidateAfter(productID, 500*time.Millisecond)
	utils.RespondWithJSON(w, http.StatusCreated, record)
}
