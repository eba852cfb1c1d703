package catalog_test

import (
	"testing"

	"github.com/fizikfinito/fizikfinito/internal/domain/catalog"
)

func TestResolve_BarePathPicksFirstCategoryAndSubcategory(t *testing.T) {
	d := seedData()
	s := catalog.Resolve(d, nil)

	if s.Category != "Mekanik" {
		t.Errorf("Category = %q, want Mekanik", s.Category)
	}
	if s.Subcategory == nil || s.Subcategory.Name != "Kuvvet" {
		t.Errorf("Subcategory = %+v, want Kuvvet", s.Subcategory)
	}
	if !s.SubDefaulted {
		t.Error("SubDefaulted = false, want true for an implicit subcategory")
	}
	if s.Experiment != nil {
		t.Errorf("Experiment = %+v, want nil", s.Experiment)
	}
	if s.ContentType != catalog.ContentExperiment {
		t.Errorf("ContentType = %q, want experiment", s.ContentType)
	}
}

func TestResolve_FullPathSelectsExperiment(t *testing.T) {
	d := seedData()
	s := catalog.Resolve(d, catalog.Segments("/Mekanik/Kuvvet/Newton-Yasalari/Deney-1"))

	if s.Category != "Mekanik" {
		t.Errorf("Category = %q, want Mekanik", s.Category)
	}
	if s.Subcategory == nil || s.Subcategory.Name != "Kuvvet" {
		t.Errorf("Subcategory = %+v, want Kuvvet", s.Subcategory)
	}
	if s.Experiment == nil {
		t.Fatal("Experiment = nil, want Deney 1")
	}
	if s.Experiment.Name != "Deney 1" || s.Experiment.Topic != "Newton Yasalari" {
		t.Errorf("Experiment = %q under %q, want Deney 1 under Newton Yasalari",
			s.Experiment.Name, s.Experiment.Topic)
	}
}

func TestResolve_UnknownSegmentsFallBack(t *testing.T) {
	d := seedData()

	tests := []struct {
		name    string
		path    string
		wantCat string
		wantSub string
	}{
		{"unknown category", "/Kimya", "Mekanik", "Kuvvet"},
		{"unknown subcategory", "/Elektrik/Kuvvet", "Elektrik", "Devreler"},
		{"unknown experiment", "/Mekanik/Kuvvet/Newton-Yasalari/Yok", "Mekanik", "Kuvvet"},
	}
	for _, tt := range tests {
		s := catalog.Resolve(d, catalog.Segments(tt.path))
		if s.Category != tt.wantCat {
			t.Errorf("%s: Category = %q, want %q", tt.name, s.Category, tt.wantCat)
		}
		if s.Subcategory == nil || s.Subcategory.Name != tt.wantSub {
			t.Errorf("%s: Subcategory = %+v, want %q", tt.name, s.Subcategory, tt.wantSub)
		}
		if s.Experiment != nil {
			t.Errorf("%s: Experiment = %+v, want nil", tt.name, s.Experiment)
		}
	}
}

func TestResolve_TopicWithoutExperimentIgnored(t *testing.T) {
	d := seedData()
	s := catalog.Resolve(d, catalog.Segments("/Mekanik/Kuvvet/Newton-Yasalari"))

	if s.Experiment != nil {
		t.Errorf("Experiment = %+v, want nil for a 3-segment path", s.Experiment)
	}
}

func TestResolve_SentinelFirstWhenPresent(t *testing.T) {
	d := seedData().WithAllCategories()
	s := catalog.Resolve(d, nil)

	if s.Category != catalog.AllCategories {
		t.Errorf("Category = %q, want %q", s.Category, catalog.AllCategories)
	}
	if s.Subcategory == nil || s.Subcategory.Name != "Kuvvet" {
		t.Errorf("Subcategory = %+v, want first overall (Kuvvet)", s.Subcategory)
	}
}

func TestResolve_EmptyData(t *testing.T) {
	s := catalog.Resolve(catalog.Data{}, catalog.Segments("/Mekanik"))

	if s.Category != "" || s.Subcategory != nil || s.Experiment != nil {
		t.Errorf("state = %+v, want empty selections on empty data", s)
	}
}
