package admin

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"vitrin/db"
	"vitrin/models"
	"vitrin/variant"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"go.mongodb.org/mongo-driver/bson"
)

// ExportCatalogPDF renders a price list over every product, one line per
// primary-value tier, for offline review.
func ExportCatalogPDF(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	cursor, err := db.ProductCollection.Find(ctx, bson.M{})
	if err != nil {
		log.Println("ExportCatalogPDF find error:", err)
		http.Error(w, "Could not list products", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var list []models.Product
	if err := cursor.All(ctx, &list); err != nil {
		log.Println("ExportCatalogPDF cursor error:", err)
		http.Error(w, "Error reading products", http.StatusInternalServerError)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Product Catalog")
	pdf.Ln(12)

	for i := range list {
		p := &list[i]
		variant.NormalizeConfig(p)

		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, fmt.Sprintf("%s (%s)", p.Name, p.Brand))
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 10)
		pdf.Cell(0, 6, fmt.Sprintf("Base price: %.2f  Stock: %d", p.Price, p.Stock))
		pdf.Ln(6)

		for _, v := range p.Variants {
			for _, pv := range v.PrimaryValues {
				label := pv.Value
				if pv.Attribute != "" {
					label = pv.Attribute + " " + pv.Value
				}
				line := fmt.Sprintf("  %s: %.2f", label, float64(pv.Price))
				if pv.Quantity != nil {
					line += fmt.Sprintf(" (qty %d)", int(*pv.Quantity))
				}
				pdf.Cell(0, 5, line)
				pdf.Ln(5)
			}
		}
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Println("ExportCatalogPDF output error:", err)
		http.Error(w, "Failed to render PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="catalog.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
