// Package admin carries the product editor endpoints: full-replace product
// saves with config normalization, the catalog PDF export, and the stock
// watch stream.
package admin

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"vitrin/db"
	"vitrin/models"
	"vitrin/products"
	"vitrin/utils"
	"vitrin/variant"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// API bundles the admin product handlers around the injected catalog
// cache, invalidated after every save.
type API struct {
	catalog *products.Cache
}

func NewAPI(catalog *products.Cache) *API {
	return &API{catalog: catalog}
}

// ValidateProduct blocks a save before any write. These are the fields the
// admin form cannot leave empty.
func ValidateProduct(p *models.Product) error {
	switch {
	case p.Name == "":
		return errors.New("name is required")
	case p.Price <= 0:
		return errors.New("price is required")
	case p.Category == "":
		return errors.New("category is required")
	case p.Brand == "":
		return errors.New("brand is required")
	}
	return nil
}

// PrepareProduct normalizes the draft exactly the way the product detail
// page expects to read it back: legacy config types rewritten,
// attributeOrder covering every referenced attribute, variant prices
// coerced with the product price as fallback, variant ids filled in.
func PrepareProduct(p *models.Product) {
	variant.NormalizeConfig(p)
	for i := range p.Variants {
		v := &p.Variants[i]
		if v.VariantID == "" {
			v.VariantID = uuid.NewString()
		}
		if float64(v.Price) <= 0 {
			v.Price = models.FlexFloat(p.Price)
		}
	}
}

// CreateProduct stores a new product from the admin form.
func (a *API) CreateProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var p models.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		log.Println("CreateProduct decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if err := ValidateProduct(&p); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if p.ProductID == "" {
		p.ProductID = uuid.NewString()
	}
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	PrepareProduct(&p)

	if _, err := db.ProductCollection.InsertOne(ctx, p); err != nil {
		log.Println("CreateProduct insert error:", err)
		http.Error(w, "Failed to create product", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, p)
}

// UpdateProduct is a full replace: the admin form always submits the whole
// draft, never a partial patch.
func (a *API) UpdateProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id := ps.ByName("id")
	var p models.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		log.Println("UpdateProduct decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if err := ValidateProduct(&p); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	p.ProductID = id
	p.UpdatedAt = time.Now()
	PrepareProduct(&p)

	opts := options.Replace().SetUpsert(false)
	res, err := db.ProductCollection.ReplaceOne(ctx, bson.M{"productid": id}, p, opts)
	if err != nil {
		log.Println("UpdateProduct replace error:", err)
		http.Error(w, "Failed to update product", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	a.catalog.InvalidateAfter(id, 500*time.Millisecond)
	BroadcastStockUpdate(&p)

	utils.RespondWithJSON(w, http.StatusOK, p)
}

// DeleteProduct removes a product and its variant image records.
func (a *API) DeleteProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id := ps.ByName("id")
	res, err := db.ProductCollection.DeleteOne(ctx, bson.M{"productid": id})
	if err != nil {
		log.Println("DeleteProduct error:", err)
		http.Error(w, "Failed to delete product", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	if _, err := db.VariantImageCollection.DeleteMany(ctx, bson.M{"productid": id}); err != nil {
		log.Println("DeleteProduct image cleanup error:", err)
	}

	a.catalog.Invalidate(id)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "deleted"})
}
