package products

import (
	"testing"

	"vitrin/models"
)

func TestFindImageForAttributesMultiCriteria(t *testing.T) {
	images := []models.VariantImage{
		{ImageURL: "/a.jpg", Attributes: []models.AttributeRef{
			{Name: "color", Value: "red"},
			{Name: "size", Value: "L"},
		}},
		{ImageURL: "/b.jpg", Attributes: []models.AttributeRef{
			{Name: "color", Value: "blue"},
		}},
	}

	attrs := models.SelectedAttributes{"color": {"red"}, "size": {"L"}}
	img := FindImageForAttributes(images, attrs)
	if img == nil || img.ImageURL != "/a.jpg" {
		t.Fatalf("got %+v", img)
	}

	// one criterion not satisfied: no match
	attrs = models.SelectedAttributes{"color": {"red"}}
	if img := FindImageForAttributes(images, attrs); img != nil {
		t.Fatalf("expected nil, got %+v", img)
	}
}

func TestFindImageForAttributesLegacySingle(t *testing.T) {
	images := []models.VariantImage{
		{ImageURL: "/old.jpg", Attribute: &models.AttributeRef{Name: "color", Value: "red"}},
	}
	attrs := models.SelectedAttributes{"color": {"red", "blue"}}
	img := FindImageForAttributes(images, attrs)
	if img == nil || img.ImageURL != "/old.jpg" {
		t.Fatalf("got %+v", img)
	}
}
