package catalog_test

import (
	"testing"

	"github.com/fizikfinito/fizikfinito/internal/domain/catalog"
)

// seedData builds a small two-category catalog used across the tests.
func seedData() catalog.Data {
	return catalog.Data{
		Categories: []catalog.Category{
			{Name: "Mekanik"},
			{Name: "Elektrik"},
		},
		Subcategories: []catalog.Subcategory{
			{Name: "Kuvvet", Category: "Mekanik"},
			{Name: "Enerji", Category: "Mekanik"},
			{Name: "Devreler", Category: "Elektrik"},
		},
		Topics: []catalog.Topic{
			{Name: "Newton Yasalari", Subcategory: "Kuvvet"},
			{Name: "Basit Makineler", Subcategory: "Kuvvet"},
			{Name: "Ohm Yasasi", Subcategory: "Devreler"},
		},
		Experiments: []catalog.Experiment{
			{Name: "Deney 1", Topic: "Newton Yasalari", ExperimentText: "Bir deney.", MaterialsText: "İp, makara", VideoURL: "https://youtube.com/shorts/abc"},
			{Name: "Deney 2", Topic: "Newton Yasalari", ExperimentText: "?", MaterialsText: "?", VideoURL: "?"},
			{Name: "Devre Deneyi", Topic: "Ohm Yasasi", ExperimentText: "Akım ölçümü.", MaterialsText: "Pil, ampul", VideoURL: "https://youtube.com/watch?v=xyz"},
		},
	}
}

func initialState(t *testing.T, d catalog.Data, path string) catalog.State {
	t.Helper()
	return catalog.Resolve(d, catalog.Segments(path))
}

func TestApply_SelectCategory_SubcategoryAlwaysBelongs(t *testing.T) {
	d := seedData()
	s := initialState(t, d, "/")

	for _, cat := range []string{"Elektrik", "Mekanik", "Elektrik"} {
		s = catalog.Apply(d, s, catalog.SelectCategory{Name: cat})
		if s.Category != cat {
			t.Fatalf("Category = %q, want %q", s.Category, cat)
		}
		if s.Subcategory != nil && s.Subcategory.Category != cat {
			t.Errorf("subcategory %q belongs to %q, want %q",
				s.Subcategory.Name, s.Subcategory.Category, cat)
		}
	}
}

func TestApply_SelectCategory_DifferentParentClearsDeeperSelections(t *testing.T) {
	d := seedData()
	s := initialState(t, d, "/Mekanik/Kuvvet/Newton-Yasalari/Deney-1")
	if s.Experiment == nil {
		t.Fatal("precondition: experiment should be selected")
	}

	s = catalog.Apply(d, s, catalog.SelectCategory{Name: "Elektrik"})

	if s.Subcategory == nil || s.Subcategory.Name != "Devreler" {
		t.Errorf("Subcategory = %+v, want first under Elektrik (Devreler)", s.Subcategory)
	}
	if s.Experiment != nil {
		t.Errorf("Experiment = %+v, want nil after category switch", s.Experiment)
	}
	if got := catalog.Path(s); got != "/Elektrik" {
		t.Errorf("Path = %q, want one-segment /Elektrik after category switch", got)
	}
}

func TestApply_SelectCategory_SameParentKeepsSubcategory(t *testing.T) {
	d := seedData()
	s := initialState(t, d, "/Mekanik/Enerji")
	if s.Subcategory == nil || s.Subcategory.Name != "Enerji" {
		t.Fatalf("precondition: Subcategory = %+v, want Enerji", s.Subcategory)
	}

	s = catalog.Apply(d, s, catalog.SelectCategory{Name: "Mekanik"})

	if s.Subcategory == nil || s.Subcategory.Name != "Enerji" {
		t.Errorf("Subcategory = %+v, want Enerji preserved on reselect", s.Subcategory)
	}
}

func TestApply_SelectSubcategory_ClearsTopicAndExperiment(t *testing.T) {
	d := seedData()
	s := initialState(t, d, "/Mekanik/Kuvvet/Newton-Yasalari/Deney-1")
	if s.Experiment == nil {
		t.Fatal("precondition: experiment should be selected")
	}

	s = catalog.Apply(d, s, catalog.SelectSubcategory{Name: "Enerji"})

	if s.Subcategory == nil || s.Subcategory.Name != "Enerji" {
		t.Errorf("Subcategory = %+v, want Enerji", s.Subcategory)
	}
	if s.Experiment != nil {
		t.Errorf("Experiment = %+v, want nil after subcategory change", s.Experiment)
	}
}

func TestApply_SelectExperiment_ToggleOff(t *testing.T) {
	d := seedData()
	s := initialState(t, d, "/Mekanik/Kuvvet")

	s = catalog.Apply(d, s, catalog.SelectExperiment{Topic: "Newton Yasalari", Name: "Deney 1"})
	if s.Experiment == nil || s.Experiment.Name != "Deney 1" {
		t.Fatalf("Experiment = %+v, want Deney 1 selected", s.Experiment)
	}

	s = catalog.Apply(d, s, catalog.SelectExperiment{Topic: "Newton Yasalari", Name: "Deney 1"})
	if s.Experiment != nil {
		t.Errorf("Experiment = %+v, want nil after second click (toggle off)", s.Experiment)
	}
}

func TestApply_SelectTopic_ClearsExperimentAndCollapses(t *testing.T) {
	d := seedData()
	s := initialState(t, d, "/Mekanik/Kuvvet/Newton-Yasalari/Deney-1")
	if s.Experiment == nil {
		t.Fatal("precondition: experiment should be selected")
	}
	s = catalog.Apply(d, s, catalog.ToggleExpanded{})
	if !s.Expanded {
		t.Fatal("precondition: Expanded should be true")
	}

	s = catalog.Apply(d, s, catalog.SelectTopic{Name: "Newton Yasalari"})

	if s.Experiment != nil {
		t.Errorf("Experiment = %+v, want nil after topic click", s.Experiment)
	}
	if s.Expanded {
		t.Error("Expanded = true, want collapsed after topic click")
	}
	if s.Subcategory == nil || s.Subcategory.Name != "Kuvvet" {
		t.Errorf("Subcategory = %+v, want Kuvvet preserved", s.Subcategory)
	}
}

func TestApply_SelectExperiment_SwitchCollapsesExpanded(t *testing.T) {
	d := seedData()
	s := initialState(t, d, "/Mekanik/Kuvvet")
	s = catalog.Apply(d, s, catalog.SelectExperiment{Topic: "Newton Yasalari", Name: "Deney 1"})
	s = catalog.Apply(d, s, catalog.ToggleExpanded{})
	if !s.Expanded {
		t.Fatal("precondition: Expanded should be true")
	}

	s = catalog.Apply(d, s, catalog.SelectExperiment{Topic: "Newton Yasalari", Name: "Deney 2"})

	if s.Experiment == nil || s.Experiment.Name != "Deney 2" {
		t.Fatalf("Experiment = %+v, want Deney 2", s.Experiment)
	}
	if s.Expanded {
		t.Error("Expanded = true, want collapsed after switching experiments")
	}
}

func TestApply_SelectContentType_CollapsesExpanded(t *testing.T) {
	d := seedData()
	s := initialState(t, d, "/Mekanik/Kuvvet")
	s = catalog.Apply(d, s, catalog.SelectExperiment{Topic: "Newton Yasalari", Name: "Deney 1"})
	s = catalog.Apply(d, s, catalog.ToggleExpanded{})

	s = catalog.Apply(d, s, catalog.SelectContentType{Type: catalog.ContentMaterials})

	if s.ContentType != catalog.ContentMaterials {
		t.Errorf("ContentType = %q, want materials", s.ContentType)
	}
	if s.Expanded {
		t.Error("Expanded = true, want collapsed after tab switch")
	}
}

func TestApply_UnknownSubcategoryFallsBackToFirstSibling(t *testing.T) {
	d := seedData()
	s := initialState(t, d, "/Elektrik")

	s = catalog.Apply(d, s, catalog.SelectSubcategory{Name: "Kuvvet"}) // belongs to Mekanik

	if s.Subcategory == nil || s.Subcategory.Name != "Devreler" {
		t.Errorf("Subcategory = %+v, want fallback to Devreler", s.Subcategory)
	}
}

func TestApply_AllCategoriesAdmitsEverySubcategory(t *testing.T) {
	d := seedData().WithAllCategories()
	s := catalog.Resolve(d, nil)
	if s.Category != catalog.AllCategories {
		t.Fatalf("Category = %q, want sentinel on bare path", s.Category)
	}

	s = catalog.Apply(d, s, catalog.SelectSubcategory{Name: "Devreler"})
	if s.Subcategory == nil || s.Subcategory.Name != "Devreler" {
		t.Errorf("Subcategory = %+v, want Devreler under sentinel", s.Subcategory)
	}
}

func TestNormalize_RepairsForeignSubcategory(t *testing.T) {
	d := seedData()
	bad := catalog.State{
		Category:    "Elektrik",
		Subcategory: &catalog.Subcategory{Name: "Kuvvet", Category: "Mekanik"},
		ContentType: catalog.ContentExperiment,
	}

	s := catalog.Normalize(d, bad)

	if s.Subcategory == nil || s.Subcategory.Category != "Elektrik" {
		t.Errorf("Subcategory = %+v, want one belonging to Elektrik", s.Subcategory)
	}
}

func TestNormalize_UnknownCategoryResetsToFirst(t *testing.T) {
	d := seedData()
	s := catalog.Normalize(d, catalog.State{Category: "Yok", ContentType: catalog.ContentExperiment})

	if s.Category != "Mekanik" {
		t.Errorf("Category = %q, want first category Mekanik", s.Category)
	}
}
