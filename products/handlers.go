// Package products serves the storefront product read surface: listing,
// detail with normalized variant config, variant images, and share QR
// codes.
package products

import (
	"context"
	"log"
	"net/http"
	"time"

	"vitrin/db"
	"vitrin/models"
	"vitrin/utils"
	"vitrin/variant"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// API bundles the product handlers around the injected catalog cache.
type API struct {
	catalog *Cache
}

func NewAPI(catalog *Cache) *API {
	return &API{catalog: catalog}
}

func fetchProduct(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	if err := db.ProductCollection.FindOne(ctx, bson.M{"productid": id}).Decode(&p); err != nil {
		return nil, err
	}
	variant.NormalizeConfig(&p)
	return &p, nil
}

// GetProducts lists products with optional category/brand/search filters
// and offset pagination. minimal=true strips variants for grid views.
func (a *API) GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	opts := utils.ParseQueryOptions(r)

	filter := bson.M{}
	if opts.Category != "" {
		filter["category"] = opts.Category
	}
	if opts.Brand != "" {
		filter["brand"] = opts.Brand
	}
	if opts.Search != "" {
		filter["name"] = bson.M{"$regex": opts.Search, "$options": "i"}
	}

	total, err := db.ProductCollection.CountDocuments(ctx, filter)
	if err != nil {
		log.Println("GetProducts count error:", err)
		http.Error(w, "Could not list products", http.StatusInternalServerError)
		return
	}

	findOpts := options.Find().
		SetSkip(int64(opts.Offset)).
		SetLimit(int64(opts.Limit)).
		SetSort(bson.M{"createdAt": -1})
	// enriched=true forces full documents even when minimal is set.
	if opts.Minimal && !opts.Enriched {
		findOpts.SetProjection(bson.M{"variants": 0, "variantConfig": 0, "specifications": 0})
	}

	cursor, err := db.ProductCollection.Find(ctx, filter, findOpts)
	if err != nil {
		log.Println("GetProducts find error:", err)
		http.Error(w, "Could not list products", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var list []models.Product
	if err := cursor.All(ctx, &list); err != nil {
		log.Println("GetProducts cursor error:", err)
		http.Error(w, "Error reading products", http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []models.Product{}
	}
	if !opts.Minimal || opts.Enriched {
		for i := range list {
			variant.NormalizeConfig(&list[i])
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"products": list,
		"pagination": models.Pagination{
			Total:  total,
			Limit:  opts.Limit,
			Offset: opts.Offset,
		},
	})
}

// GetProduct returns the full product, variant config normalized. Unknown
// ids answer a JSON 404 the storefront renders as its not-found page.
func (a *API) GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id := ps.ByName("id")
	p, err := a.catalog.Get(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Product not found")
			return
		}
		log.Println("GetProduct error:", err)
		http.Error(w, "Could not load product", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, p)
}
